package callscope

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callscope/callscope/internal/genesys"
	"github.com/callscope/callscope/internal/network"
)

var testConfig = Config{
	Region:       "mypurecloud.com",
	ClientID:     "id",
	ClientSecret: "secret",
}

// tokenServer fakes the OAuth token endpoint.
func tokenServer(t *testing.T, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "tok",
			"token_type":   "bearer",
			"expires_in":   3600,
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNew(t *testing.T) {
	t.Run("authenticates and returns a usable session", func(t *testing.T) {
		srv := tokenServer(t, http.StatusOK)

		s, err := New(t.Context(), testConfig,
			WithClientOptions(genesys.WithEndpoints(srv.URL, srv.URL)),
		)
		require.NoError(t, err)
		assert.NotNil(t, s.Client())
		assert.NotNil(t, s.Server())
	})
	t.Run("authentication failure returns AuthError", func(t *testing.T) {
		srv := tokenServer(t, http.StatusUnauthorized)

		_, err := New(t.Context(), testConfig,
			WithClientOptions(genesys.WithEndpoints(srv.URL, srv.URL)),
		)
		require.Error(t, err)
		var ae *AuthError
		assert.ErrorAs(t, err, &ae)
	})
	t.Run("incomplete configuration", func(t *testing.T) {
		_, err := New(t.Context(), Config{Region: "mypurecloud.com"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "configuration error")
	})
	t.Run("invalid limits are rejected", func(t *testing.T) {
		srv := tokenServer(t, http.StatusOK)

		_, err := New(t.Context(), testConfig,
			WithClientOptions(genesys.WithEndpoints(srv.URL, srv.URL)),
			WithLimits(network.Limits{PerMinute: -1}),
		)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "API limits failed validation")
	})
}
