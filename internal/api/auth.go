package api

import (
	"crypto/subtle"
	"fmt"
	"net/http"

	"github.com/FocuswithJustin/JuniperCite/internal/logging"
)

// minAPIKeyLength is the shortest accepted API key.
const minAPIKeyLength = 16

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	Enabled bool
	APIKey  string
}

// Validate checks that an enabled configuration carries a usable key.
func (c AuthConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.APIKey == "" {
		return fmt.Errorf("API key is required when authentication is enabled")
	}
	if len(c.APIKey) < minAPIKeyLength {
		return fmt.Errorf("API key must be at least %d characters (got %d)", minAPIKeyLength, len(c.APIKey))
	}
	return nil
}

// AuthMiddleware requires an X-API-Key header matching cfg.APIKey when
// authentication is enabled. /health is always public.
func AuthMiddleware(cfg AuthConfig, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !cfg.Enabled || r.URL.Path == "/health" || r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		key := r.Header.Get("X-API-Key")
		switch {
		case key == "":
			logging.WarnContext(r.Context(), "unauthorized_request", "path", r.URL.Path, "reason", "missing API key")
			respondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Missing X-API-Key header")
			return
		case subtle.ConstantTimeCompare([]byte(key), []byte(cfg.APIKey)) != 1:
			logging.WarnContext(r.Context(), "unauthorized_request", "path", r.URL.Path, "reason", "invalid API key")
			respondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid API key")
			return
		}
		next.ServeHTTP(w, r)
	})
}
