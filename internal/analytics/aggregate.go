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

package analytics

// In this file: aggregation of fetched conversation detail records into the
// shapes the tools return.  All functions here are pure; aggregation never
// fails on well-formed input and silently skips records without the fields
// it needs.

import (
	"math"
	"sort"

	"github.com/callscope/callscope/internal/genesys"
)

// maxWrapUpExamples caps the example conversation IDs kept per wrap-up code.
const maxWrapUpExamples = 5

// QueueUsed reports whether any segment of any session of any participant of
// the conversation was routed through the given queue.
func QueueUsed(conv *genesys.Conversation, queueID string) bool {
	for _, p := range conv.Participants {
		for _, s := range p.Sessions {
			for _, seg := range s.Segments {
				if seg.QueueID == queueID {
					return true
				}
			}
		}
	}
	return false
}

// CountByQueue counts, for each target queue, the conversations that touched
// it.  Queue membership is not exclusive: a conversation that was routed
// through two of the target queues increments both counters, once each.
func CountByQueue(convs []genesys.Conversation, queueIDs []string) map[string]int {
	counts := make(map[string]int, len(queueIDs))
	for i := range convs {
		for _, id := range queueIDs {
			if QueueUsed(&convs[i], id) {
				counts[id]++
			}
		}
	}
	return counts
}

// ConversationIDs extracts the conversation identifiers of the records,
// skipping records that have none.
func ConversationIDs(convs []genesys.Conversation) []string {
	ids := make([]string, 0, len(convs))
	for _, c := range convs {
		if c.ConversationID == "" {
			continue
		}
		ids = append(ids, c.ConversationID)
	}
	return ids
}

// SampleEvenly selects up to sampleSize items evenly spaced across list,
// preserving relative order.  For a list of length L and sample size S the
// selected indices are floor(i*L/S) for i in [0,S), which makes the result
// deterministic across repeated calls.  If the list is no longer than the
// sample size it is returned unchanged.
func SampleEvenly[T any](list []T, sampleSize int) []T {
	if len(list) <= sampleSize {
		return list
	}
	step := float64(len(list)) / float64(sampleSize)
	out := make([]T, sampleSize)
	for i := range out {
		out[i] = list[int(math.Floor(float64(i)*step))]
	}
	return out
}

// Count is a keyed counter entry.
type Count struct {
	Key string
	N   int
}

// TopCounts returns the entries of m sorted by descending count (ties
// broken by key) truncated to at most n entries; n <= 0 means all.
func TopCounts(m map[string]int, n int) []Count {
	out := make([]Count, 0, len(m))
	for k, v := range m {
		out = append(out, Count{Key: k, N: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].N != out[j].N {
			return out[i].N > out[j].N
		}
		return out[i].Key < out[j].Key
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// WrapUpStats aggregates the occurrences of one wrap-up code.
type WrapUpStats struct {
	Code string
	// N counts wrapped-up segments carrying the code.
	N int
	// Percentage is N relative to the total number of conversations,
	// rounded to whole percent.
	Percentage int
	// Queues and MediaTypes break N down by the segment's queue and the
	// session's media type.
	Queues     map[string]int
	MediaTypes map[string]int
	// Examples holds up to five example conversation IDs.
	Examples []string
}

// WrapUpReport is the result of WrapUpBreakdown.
type WrapUpReport struct {
	// Stats is sorted by descending count.
	Stats []WrapUpStats
	// Total is the total number of conversations in the input.
	Total int
	// Wrapped counts segments that carried a wrap-up code.
	Wrapped int
}

// Coverage returns the share of wrapped-up segments relative to the total
// conversation count, in whole percent.
func (r *WrapUpReport) Coverage() int {
	return percentage(r.Wrapped, r.Total)
}

// WrapUpBreakdown groups conversations by the wrap-up codes of their
// segments, with per-code queue and media type sub-breakdowns and example
// conversation IDs.
func WrapUpBreakdown(convs []genesys.Conversation) *WrapUpReport {
	byCode := make(map[string]*WrapUpStats)
	rep := &WrapUpReport{}

	for _, conv := range convs {
		for _, part := range conv.Participants {
			for _, sess := range part.Sessions {
				for _, seg := range sess.Segments {
					if seg.WrapUpCode == "" {
						continue
					}
					st, ok := byCode[seg.WrapUpCode]
					if !ok {
						st = &WrapUpStats{
							Code:       seg.WrapUpCode,
							Queues:     make(map[string]int),
							MediaTypes: make(map[string]int),
						}
						byCode[seg.WrapUpCode] = st
					}
					st.N++
					st.Queues[orUnknown(seg.QueueID)]++
					st.MediaTypes[orUnknown(sess.MediaType)]++
					if len(st.Examples) < maxWrapUpExamples {
						st.Examples = append(st.Examples, orUnknown(conv.ConversationID))
					}
					rep.Wrapped++
				}
			}
		}
		rep.Total++
	}

	for _, st := range byCode {
		st.Percentage = percentage(st.N, rep.Total)
		rep.Stats = append(rep.Stats, *st)
	}
	sort.Slice(rep.Stats, func(i, j int) bool {
		if rep.Stats[i].N != rep.Stats[j].N {
			return rep.Stats[i].N > rep.Stats[j].N
		}
		return rep.Stats[i].Code < rep.Stats[j].Code
	})
	return rep
}

func percentage(n, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(n) / float64(total) * 100))
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
