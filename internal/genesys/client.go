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

// Package genesys is a client of the subset of the Genesys Cloud Platform
// API that the server consumes: analytics conversation detail jobs, routing
// queue search, speech and text analytics, and conversation recordings.
package genesys

// In this file: HTTP client, OAuth client-credentials token management, and
// the request plumbing shared by the endpoint methods.

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/callscope/callscope/internal/network"
)

// tokenExpiryMargin is subtracted from the advertised token lifetime so that
// a token is refreshed before it expires mid-request.
const tokenExpiryMargin = time.Minute

// Client is the platform API client.  The zero value is not usable, use
// NewClient.  Authentication state is owned by the client instance; there is
// no process-wide state, so independent clients can be used concurrently.
type Client struct {
	cl     *http.Client
	apiURL string
	authURL string

	clientID     string
	clientSecret string

	lim     *rate.Limiter
	retries int
	logger  *slog.Logger

	mu     sync.Mutex // guards token and expiry
	token  string
	expiry time.Time
}

// ClientOption is the signature of the Client option-setting function.
type ClientOption func(*Client)

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(cl *http.Client) ClientOption {
	return func(c *Client) {
		if cl != nil {
			c.cl = cl
		}
	}
}

// WithLimits sets the request limits for the client.
func WithLimits(l network.Limits) ClientOption {
	return func(c *Client) {
		if l.Validate() == nil {
			c.lim = l.Limiter()
			c.retries = l.Retries
		}
	}
}

// WithLogger sets the logger for the client.
func WithLogger(lg *slog.Logger) ClientOption {
	return func(c *Client) {
		if lg != nil {
			c.logger = lg
		}
	}
}

// WithEndpoints overrides the API and login base URLs.  Used in tests to
// point the client at a test server.
func WithEndpoints(apiURL, authURL string) ClientOption {
	return func(c *Client) {
		c.apiURL = strings.TrimSuffix(apiURL, "/")
		c.authURL = strings.TrimSuffix(authURL, "/")
	}
}

// NewClient creates a platform API client for the given region (e.g.
// "mypurecloud.com", "mypurecloud.ie") and OAuth client credentials.  No
// network calls are made until the first request.
func NewClient(region, clientID, clientSecret string, opt ...ClientOption) *Client {
	c := &Client{
		cl:           http.DefaultClient,
		apiURL:       "https://api." + region,
		authURL:      "https://login." + region,
		clientID:     clientID,
		clientSecret: clientSecret,
		lim:          network.DefLimits.Limiter(),
		retries:      network.DefLimits.Retries,
		logger:       slog.Default(),
	}
	for _, fn := range opt {
		fn(c)
	}
	return c
}

// tokenResponse is the OAuth token endpoint response.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// Login performs the OAuth client-credentials grant and stores the access
// token.  It is called automatically before the first request and whenever
// the stored token is about to expire.
func (c *Client) Login(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.login(ctx)
}

// login is the lock-free part of Login; c.mu must be held.
func (c *Client) login(ctx context.Context) error {
	form := url.Values{"grant_type": {"client_credentials"}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.authURL+"/oauth/token", strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.SetBasicAuth(c.clientID, c.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.cl.Do(req)
	if err != nil {
		return fmt.Errorf("token request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("token request: %w", apiError(resp))
	}

	var tok tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return fmt.Errorf("token response: %w", err)
	}
	if tok.AccessToken == "" {
		return fmt.Errorf("token response: empty access token")
	}

	c.token = tok.AccessToken
	c.expiry = time.Now().Add(time.Duration(tok.ExpiresIn)*time.Second - tokenExpiryMargin)
	c.logger.DebugContext(ctx, "authenticated with platform", "expires_in", tok.ExpiresIn)
	return nil
}

// bearer returns a valid access token, logging in if the stored one is
// missing or expired.
func (c *Client) bearer(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.token == "" || time.Now().After(c.expiry) {
		if err := c.login(ctx); err != nil {
			return "", err
		}
	}
	return c.token, nil
}

// do executes an authenticated request against the API and decodes the JSON
// response into out (which may be nil).  Transient failures are retried
// within the client's limits.  It returns the HTTP status code of the final
// response.
func (c *Client) do(ctx context.Context, method, path string, q url.Values, body, out any) (int, error) {
	var reqBody []byte
	if body != nil {
		var err error
		reqBody, err = json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("encode request: %w", err)
		}
	}

	u := c.apiURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	var status int
	err := network.WithRetry(ctx, c.lim, c.retries, func() error {
		tok, err := c.bearer(ctx)
		if err != nil {
			return err
		}

		var rdr io.Reader
		if reqBody != nil {
			rdr = bytes.NewReader(reqBody)
		}
		req, err := http.NewRequestWithContext(ctx, method, u, rdr)
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+tok)
		req.Header.Set("Accept", "application/json")
		if reqBody != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.cl.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		status = resp.StatusCode

		if resp.StatusCode >= http.StatusBadRequest {
			return apiError(resp)
		}
		if out == nil || resp.StatusCode == http.StatusAccepted || resp.StatusCode == http.StatusNoContent {
			// drain so the connection can be reused.
			_, _ = io.Copy(io.Discard, resp.Body)
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	})
	if err != nil {
		return status, err
	}
	return status, nil
}

// apiError constructs an *APIError from an error response.  The platform
// reports errors as a JSON body with message, code and status; if the body
// is not parseable the status line is used instead.
func apiError(resp *http.Response) error {
	ae := &APIError{Status: resp.StatusCode}
	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err == nil && len(data) > 0 {
		_ = json.Unmarshal(data, ae)
	}
	ae.Status = resp.StatusCode // the body may carry a stale status field
	if ae.Message == "" {
		ae.Message = resp.Status
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		ae.retryAfter = retryAfter(resp.Header.Get("Retry-After"))
	}
	return ae
}

// defRetryAfter is used when a 429 response has no usable Retry-After header.
const defRetryAfter = 30 * time.Second

func retryAfter(value string) time.Duration {
	secs, err := strconv.Atoi(value)
	if err != nil || secs < 0 {
		return defRetryAfter
	}
	return time.Duration(secs) * time.Second
}

// FetchURL retrieves the JSON payload behind a pre-signed URL into out.
// Pre-signed URLs embed their own authorisation, so no bearer token is sent
// and no retry is attempted.
func (c *Client) FetchURL(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	resp, err := c.cl.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return apiError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	return nil
}
