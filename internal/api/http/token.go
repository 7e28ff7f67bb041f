package http

import (
	"errors"
	"net/http"

	"github.com/wad01/wad/internal/api/service"
	"github.com/wad01/wad/pkg/httpx"
	"github.com/wad01/wad/pkg/slogx"
	"github.com/wad01/wad/pkg/wadsdk"
)

type TokenHandler struct {
	TokenService *service.TokenService
}

// ServeHTTP exchanges email and password for a bearer token.
//
//	@Summary		Issue access token
//	@Description	Returns a signed JWT carrying the user's email claim, for use as "Authorization: Bearer <token>".
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		wadsdk.TokenRequest		true	"Credentials"
//	@Success		200		{object}	wadsdk.TokenResponse
//	@Failure		400		{object}	wadsdk.MessageResponse	"Invalid JSON body"
//	@Failure		401		{object}	wadsdk.MessageResponse	"Invalid credentials"
//	@Failure		500		{object}	wadsdk.MessageResponse
//	@Router			/auth/token [post].
func (h *TokenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req wadsdk.TokenRequest
	if err := httpx.DecodeJSON(http.MaxBytesReader(w, r.Body, maxJSONBody), &req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	tok, err := h.TokenService.IssueToken(r.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteMessage(w, http.StatusUnauthorized, "Invalid credentials")
		return
	case err != nil:
		slogx.FromContext(r.Context()).Error("failed to issue token", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, msgInternal)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, wadsdk.TokenResponse{
		AccessToken: tok.Token,
		TokenType:   "Bearer",
		ExpiresIn:   int(tok.ExpiresIn.Seconds()),
	})
}
