package http

import (
	"net/http"

	"github.com/wad01/wad/internal/api/service"
	"github.com/wad01/wad/pkg/httpx"
	"github.com/wad01/wad/pkg/wadsdk"
)

// EnvProduction disables development-only endpoints.
const EnvProduction = "prod"

type SeedHandler struct {
	UserService *service.UserService
	Env         string
}

// ServeHTTP creates or resets the development test account.
//
//	@Summary		Seed test user
//	@Description	Upserts test@example.com / password123. Not available when ENV=prod.
//	@Tags			Admin
//	@Produce		json
//	@Success		200	{object}	wadsdk.SeedResponse
//	@Failure		404	{object}	wadsdk.MessageResponse	"Not available in production"
//	@Failure		500	{object}	wadsdk.MessageResponse
//	@Router			/admin/seed-test-user [post].
func (h *SeedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.Env == EnvProduction {
		httpx.WriteMessage(w, http.StatusNotFound, "Not available in production")
		return
	}

	email, err := h.UserService.SeedTestUser(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Not found")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, wadsdk.SeedResponse{Message: "Test user ready", Email: email})
}
