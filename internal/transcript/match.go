// Copyright (c) 2025-2026 Callscope Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package transcript

// In this file: participant role classification and phrase-to-participant
// matching.  A phrase matches a participant only when their role classes are
// equal and the phrase start falls inside the participant's presence
// interval.

import "strings"

// RoleClass partitions participant purposes into the inside of the contact
// centre, the outside, and everything unrecognised.
type RoleClass int

const (
	RoleUnknown RoleClass = iota
	RoleInternal
	RoleExternal
)

// internalPurposes are the purposes that place a party inside the contact
// centre.  System parties (IVR, ACD, voicemail, fax) count as internal.
var internalPurposes = map[string]bool{
	"user":      true,
	"agent":     true,
	"internal":  true,
	"acd":       true,
	"ivr":       true,
	"voicemail": true,
	"fax":       true,
}

// roleClassOf classifies a participant purpose.  Comparison is case
// insensitive.
func roleClassOf(purpose string) RoleClass {
	switch p := strings.ToLower(purpose); {
	case internalPurposes[p]:
		return RoleInternal
	case p == "external" || p == "customer":
		return RoleExternal
	default:
		return RoleUnknown
	}
}

// phraseClassOf classifies a phrase's own purpose label.  Transcribed
// phrases carry only the two generic labels; anything else is unknown and
// matches no participant.
func phraseClassOf(purpose string) RoleClass {
	switch strings.ToLower(purpose) {
	case "internal":
		return RoleInternal
	case "external":
		return RoleExternal
	default:
		return RoleUnknown
	}
}

// matchParticipant finds the first participant whose role class equals the
// phrase's and whose presence interval [StartTimeMs, EndTimeMs) contains the
// phrase start.  Participants with an incomplete interval never match.
// Returns nil when nothing matches, including when the phrase class is
// unknown.
func matchParticipant(p Phrase, participants []Participant) *Participant {
	class := phraseClassOf(p.ParticipantPurpose)
	if class == RoleUnknown {
		return nil
	}
	for i := range participants {
		cand := &participants[i]
		if cand.StartTimeMs == 0 || cand.EndTimeMs == 0 {
			continue
		}
		if roleClassOf(cand.ParticipantPurpose) != class {
			continue
		}
		if p.StartTimeMs >= cand.StartTimeMs && p.StartTimeMs < cand.EndTimeMs {
			return cand
		}
	}
	return nil
}

// FriendlyPurpose maps a raw purpose to the display name used in the
// rendered record.  Unrecognised purposes pass through unchanged.
func FriendlyPurpose(purpose string) string {
	switch strings.ToLower(purpose) {
	case "internal", "user", "agent":
		return "Agent"
	case "external", "customer":
		return "Customer"
	case "acd":
		return "ACD"
	case "ivr":
		return "IVR"
	case "voicemail":
		return "Voicemail"
	case "fax":
		return "Fax"
	default:
		return purpose
	}
}
