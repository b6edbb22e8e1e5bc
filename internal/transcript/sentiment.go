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

// In this file: the sentiment join.  Sentiment annotations live beside the
// phrases within the same transcript and are joined by phrase index.

// sentimentIndex builds the phrase-index lookup for one transcript.
// Entries without a phrase index are unaddressable and are skipped.  On
// duplicate indices the last entry wins.
func sentimentIndex(t Transcript) map[int]int {
	if t.Analytics == nil || len(t.Analytics.Sentiment) == 0 {
		return nil
	}
	m := make(map[int]int, len(t.Analytics.Sentiment))
	for _, s := range t.Analytics.Sentiment {
		if s.PhraseIndex == nil {
			continue
		}
		m[*s.PhraseIndex] = s.Sentiment
	}
	return m
}

// SentimentLabel renders a joined sentiment value.  Unresolved (nil) and
// out-of-range values render as the empty string.
func SentimentLabel(v *int) string {
	if v == nil {
		return ""
	}
	switch *v {
	case 1:
		return "Positive"
	case 0:
		return "Neutral"
	case -1:
		return "Negative"
	default:
		return ""
	}
}
