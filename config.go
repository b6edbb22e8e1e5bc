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

package callscope

// In this file: session configuration and environment loading.

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/callscope/callscope/internal/network"
)

// Environment variables recognised by ConfigFromEnv.
const (
	EnvRegion       = "GENESYSCLOUD_REGION"
	EnvClientID     = "GENESYSCLOUD_OAUTHCLIENT_ID"
	EnvClientSecret = "GENESYSCLOUD_OAUTHCLIENT_SECRET"
)

// Config holds the Genesys Cloud connection parameters.  All fields are
// required.
type Config struct {
	// Region is the regional API domain, e.g. "mypurecloud.com" or
	// "mypurecloud.ie".
	Region string `validate:"required,hostname"`
	// ClientID and ClientSecret are the OAuth client-credentials pair.
	ClientID     string `validate:"required"`
	ClientSecret string `validate:"required"`
}

// configEnv maps Config field names to the environment variables they are
// loaded from, for error reporting.
var configEnv = map[string]string{
	"Region":       EnvRegion,
	"ClientID":     EnvClientID,
	"ClientSecret": EnvClientSecret,
}

var validate = validator.New()

// Validate checks that the configuration is complete.  The returned error
// names the environment variable for each failing field.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var vErr validator.ValidationErrors
	if !errors.As(err, &vErr) {
		return err
	}
	var msgs []error
	for _, fe := range vErr {
		if env, ok := configEnv[fe.Field()]; ok {
			msgs = append(msgs, fmt.Errorf("%s environment variable is missing or invalid", env))
			continue
		}
		msgs = append(msgs, fe)
	}
	return errors.Join(msgs...)
}

// ConfigFromEnv assembles the configuration from the environment.  It does
// not validate; call Validate (New does it for you).
func ConfigFromEnv() Config {
	return Config{
		Region:       os.Getenv(EnvRegion),
		ClientID:     os.Getenv(EnvClientID),
		ClientSecret: os.Getenv(EnvClientSecret),
	}
}

// config is the option set for the Session.
type config struct {
	limits network.Limits
}

// defConfig is the default options used when initialising a session.
var defConfig = config{
	limits: network.DefLimits,
}
