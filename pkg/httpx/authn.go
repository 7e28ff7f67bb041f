package httpx

import (
	"net/http"
	"strings"

	"github.com/wad01/wad/pkg/jwtx"
	"github.com/wad01/wad/pkg/slogx"
)

const bearerPrefix = "Bearer "

// VerifyRequest extracts the bearer token from r and verifies it. It returns
// false for a missing or malformed header, a token that fails verification,
// or a token without an email claim. It never panics on hostile input.
func VerifyRequest(v jwtx.Verifier, r *http.Request) (Identity, bool) {
	if v == nil {
		return Identity{}, false
	}

	authz := r.Header.Get("Authorization")
	if len(authz) < len(bearerPrefix) || !strings.EqualFold(authz[:len(bearerPrefix)], bearerPrefix) {
		return Identity{}, false
	}

	raw := strings.TrimSpace(authz[len(bearerPrefix):])
	if raw == "" {
		return Identity{}, false
	}

	claims, err := v.Verify(raw)
	if err != nil {
		slogx.FromContext(r.Context()).Debug("jwt verify failed", "err", err)
		return Identity{}, false
	}

	email := strings.TrimSpace(claims.Email)
	if email == "" {
		return Identity{}, false
	}

	return Identity{
		Email:    email,
		Subject:  claims.Subject,
		Username: claims.Username,
	}, true
}

// AuthnMiddleware rejects requests without a valid bearer token and injects
// the caller's Identity into the request context otherwise.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := VerifyRequest(v, r)
			if !ok {
				w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
				WriteMessage(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := WithIdentity(r.Context(), id)
			ctx = slogx.WithAttrs(ctx, "user_email", id.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
