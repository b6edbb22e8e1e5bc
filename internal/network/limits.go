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

package network

// In this file: API request limits and the limiter constructor.

import (
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/time/rate"
)

// Limits contains the client-side request limits for the platform API.
// Genesys Cloud enforces a per-token rate limit of 300 requests per minute;
// the defaults leave headroom below it.
type Limits struct {
	// PerMinute is the sustained request rate in requests per minute.
	PerMinute int `json:"per_minute" validate:"required,gte=1,lte=3000"`
	// Burst is the allowed burst of requests in requests per second.
	Burst uint `json:"burst" validate:"required,gte=1"`
	// Retries is the number of retries for transient request failures.
	Retries int `json:"retries" validate:"required,gte=1"`
}

// DefLimits are the default limits applied when none are given.
var DefLimits = Limits{
	PerMinute: 240,
	Burst:     1,
	Retries:   3,
}

var validate = validator.New()

// Validate checks the limits struct for validity.
func (l *Limits) Validate() error {
	return validate.Struct(l)
}

// Limiter returns a rate limiter configured according to the limits.
func (l *Limits) Limiter() *rate.Limiter {
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(l.PerMinute)), int(l.Burst))
}
