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

package genesys

// In this file: API error type and error classification.

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// codeNotAuthorized is the error code the platform returns together with
// HTTP 403 when the OAuth client lacks a required permission.
const codeNotAuthorized = "not.authorized"

// APIError is an error response of the platform API.
type APIError struct {
	// Status is the HTTP status code of the response.
	Status int `json:"status"`
	// Code is the platform error code, e.g. "not.authorized".
	Code string `json:"code"`
	// Message is the human readable message from the error body.
	Message string `json:"message"`
	// ContextID correlates the error with platform-side logs.
	ContextID string `json:"contextId"`

	// retryAfter is the parsed Retry-After response header value, set only
	// for 429 responses.
	retryAfter time.Duration
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("platform API error: %s (code=%s, status=%d)", e.Message, e.Code, e.Status)
	}
	return fmt.Sprintf("platform API error: %s (status=%d)", e.Message, e.Status)
}

// HTTPStatusCode returns the HTTP status code of the response.  It makes
// APIError recognisable by the retry machinery as a server error.
func (e *APIError) HTTPStatusCode() int {
	return e.Status
}

// RetryAfter reports the server-requested delay before the request may be
// repeated.  It is only meaningful for rate limited (429) responses.
func (e *APIError) RetryAfter() time.Duration {
	return e.retryAfter
}

// IsUnauthorized reports whether err is the platform's "not authorized"
// error: HTTP 403 with the not.authorized error code.  Tools surface these
// with a fixed remediation message instead of the raw error text.
func IsUnauthorized(err error) bool {
	var ae *APIError
	if !errors.As(err, &ae) {
		return false
	}
	return ae.Status == http.StatusForbidden && ae.Code == codeNotAuthorized
}

// IsNotFound reports whether err is an HTTP 404 response.
func IsNotFound(err error) bool {
	var ae *APIError
	if !errors.As(err, &ae) {
		return false
	}
	return ae.Status == http.StatusNotFound
}
