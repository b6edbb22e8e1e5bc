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

// In this file: flattening bundles into utterances and rendering the
// time-aligned table.

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// BuildUtterances flattens the bundles of one conversation into a single
// chronology.  Bundle and transcript order is preserved; phrases are not
// re-sorted across transcripts.
func BuildUtterances(bundles []Bundle) []Utterance {
	var out []Utterance
	for _, b := range bundles {
		for _, t := range b.Transcripts {
			sentiments := sentimentIndex(t)
			for _, p := range t.Phrases {
				u := Utterance{
					Text:                p.Text,
					StartMs:             p.StartTimeMs,
					ConversationStartMs: b.ConversationStartTime,
				}
				if p.DecoratedText != "" {
					u.Text = p.DecoratedText
				}
				if part := matchParticipant(p, b.Participants); part != nil {
					u.Speaker = FriendlyPurpose(part.ParticipantPurpose)
				} else {
					u.Speaker = FriendlyPurpose(p.ParticipantPurpose)
				}
				if v, ok := sentiments[p.PhraseIndex]; ok {
					s := v
					u.Sentiment = &s
				}
				out = append(out, u)
			}
		}
	}
	return out
}

// offsetLabel renders the utterance offset as minutes and seconds.  Minutes
// are total minutes and may exceed 59.  When either timestamp is missing, or
// the offset would be negative, the placeholder is returned.
func offsetLabel(u Utterance) string {
	if u.StartMs == 0 || u.ConversationStartMs == 0 {
		return "--:--"
	}
	off := u.StartMs - u.ConversationStartMs
	if off < 0 {
		return "--:--"
	}
	secs := off / 1000
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// Render formats the utterances as an aligned table.  The Sentiment column
// appears only when at least one utterance carries a sentiment value.
// Returns the empty string for an empty chronology.
func Render(utterances []Utterance) string {
	if len(utterances) == 0 {
		return ""
	}
	withSentiment := false
	for _, u := range utterances {
		if u.Sentiment != nil {
			withSentiment = true
			break
		}
	}
	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
	if withSentiment {
		fmt.Fprintln(tw, "Time\tWho\tSentiment\tUtterance")
		for _, u := range utterances {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", offsetLabel(u), u.Speaker, SentimentLabel(u.Sentiment), u.Text)
		}
	} else {
		fmt.Fprintln(tw, "Time\tWho\tUtterance")
		for _, u := range utterances {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", offsetLabel(u), u.Speaker, u.Text)
		}
	}
	tw.Flush()
	// tabwriter pads the last column too; trim trailing spaces per line.
	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	for i, ln := range lines {
		lines[i] = strings.TrimRight(ln, " ")
	}
	return strings.Join(lines, "\n")
}
