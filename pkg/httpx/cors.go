package httpx

import (
	"net/http"
	"strings"
)

// CORSConfig controls the headers written by CORS.
type CORSConfig struct {
	AllowOrigin  string
	AllowMethods []string
	AllowHeaders []string
}

// DefaultCORSConfig is permissive: any origin, the methods the API serves,
// and the two request headers clients need.
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowOrigin: "*",
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}
}

// CORS sets the configured headers on every response and answers preflight
// OPTIONS requests with 200 without calling the next handler.
func CORS(cfg CORSConfig) Middleware {
	if cfg.AllowOrigin == "" {
		cfg.AllowOrigin = "*"
	}
	methods := strings.Join(cfg.AllowMethods, ", ")
	headers := strings.Join(cfg.AllowHeaders, ", ")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", cfg.AllowOrigin)
			h.Set("Access-Control-Allow-Methods", methods)
			h.Set("Access-Control-Allow-Headers", headers)
			if cfg.AllowOrigin != "*" {
				h.Add("Vary", "Origin")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
