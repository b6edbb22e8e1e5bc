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

// Package timewin validates and normalises the start/end time windows that
// every analytics tool accepts.
package timewin

import (
	"errors"
	"time"
)

var (
	// ErrInvalidStart is returned when the start instant does not parse.
	ErrInvalidStart = errors.New("startDate is not a valid ISO-8601 date")
	// ErrInvalidEnd is returned when the end instant does not parse.
	ErrInvalidEnd = errors.New("endDate is not a valid ISO-8601 date")
	// ErrStartNotBeforeEnd is returned when start >= end.
	ErrStartNotBeforeEnd = errors.New("start date must be before end date")
	// ErrStartInFuture is returned when the start instant is after now.
	ErrStartInFuture = errors.New("start date must not be in the future")
)

// Window is a validated time window.  Start < End always holds, and End is
// never in the future.
type Window struct {
	Start time.Time
	End   time.Time
}

// Parse validates the pair of ISO-8601 instants against the reference
// instant now.  Start is validated strictly; a future End is silently
// clamped to now (a normalisation, not an error).  Parse is a pure function
// of its inputs.
func Parse(startStr, endStr string, now time.Time) (Window, error) {
	start, err := time.Parse(time.RFC3339, startStr)
	if err != nil {
		return Window{}, ErrInvalidStart
	}
	end, err := time.Parse(time.RFC3339, endStr)
	if err != nil {
		return Window{}, ErrInvalidEnd
	}
	if start.After(now) {
		return Window{}, ErrStartInFuture
	}
	if end.After(now) {
		end = now
	}
	if !start.Before(end) {
		return Window{}, ErrStartNotBeforeEnd
	}
	return Window{Start: start.UTC(), End: end.UTC()}, nil
}

// Interval renders the window as the platform's ISO-8601 interval string,
// e.g. "2024-01-01T00:00:00Z/2024-01-07T23:59:59Z".
func (w Window) Interval() string {
	return w.Start.Format(time.RFC3339) + "/" + w.End.Format(time.RFC3339)
}

// Days renders the window as a date range, e.g. "2024-01-01 to 2024-01-07".
func (w Window) Days() string {
	return w.Start.Format(time.DateOnly) + " to " + w.End.Format(time.DateOnly)
}
