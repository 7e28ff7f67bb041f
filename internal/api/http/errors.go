package http

import (
	"errors"
	"net/http"

	"github.com/wad01/wad/internal/api/service"
	"github.com/wad01/wad/pkg/httpx"
	"github.com/wad01/wad/pkg/slogx"
)

const msgInternal = "Internal server error"

// writeServiceError maps a service error onto the API's status codes. Only
// validation messages reach the client verbatim; everything unexpected is
// logged and answered with a generic 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		httpx.WriteMessage(w, http.StatusBadRequest, verr.Message)
	case errors.Is(err, service.ErrNotFound):
		httpx.WriteMessage(w, http.StatusNotFound, notFound)
	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, msgInternal)
	}
}

// identity returns the caller verified by httpx.AuthnMiddleware. It writes a
// 401 and returns false when the handler is reached without one.
func identity(w http.ResponseWriter, r *http.Request) (httpx.Identity, bool) {
	id, ok := httpx.IdentityFromContext(r.Context())
	if !ok || id.Email == "" {
		httpx.WriteMessage(w, http.StatusUnauthorized, "Unauthorized")
		return httpx.Identity{}, false
	}
	return id, true
}
