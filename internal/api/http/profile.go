package http

import (
	"net/http"

	"github.com/wad01/wad/internal/api/domain"
	"github.com/wad01/wad/internal/api/service"
	"github.com/wad01/wad/pkg/httpx"
	"github.com/wad01/wad/pkg/wadsdk"
)

// maxJSONBody bounds JSON request bodies.
const maxJSONBody = 64 << 10

type ProfileHandler struct {
	ProfileService *service.ProfileService
}

// HandleGet returns the caller's profile.
//
//	@Summary		Get profile
//	@Description	Returns the profile of the user identified by the token's email claim. Password, username and status are never included.
//	@Tags			Profile
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	wadsdk.ProfileResponse
//	@Failure		401	{object}	wadsdk.MessageResponse	"Missing or invalid token"
//	@Failure		404	{object}	wadsdk.MessageResponse	"User not found"
//	@Failure		500	{object}	wadsdk.MessageResponse
//	@Router			/user/profile [get].
func (h *ProfileHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	p, err := h.ProfileService.GetProfile(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "User not found")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, profileResponse(p))
}

// HandlePatch updates the caller's first and last name.
//
//	@Summary		Update profile
//	@Description	Sets firstname and/or lastname. Values are trimmed and must not be empty. Other fields are ignored.
//	@Tags			Profile
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		wadsdk.UpdateProfileRequest	true	"Fields to change"
//	@Success		200		{object}	wadsdk.UpdateProfileResponse
//	@Failure		400		{object}	wadsdk.MessageResponse	"Invalid first name, Invalid last name, No updatable profile fields provided"
//	@Failure		401		{object}	wadsdk.MessageResponse
//	@Failure		404		{object}	wadsdk.MessageResponse	"User not found"
//	@Failure		500		{object}	wadsdk.MessageResponse
//	@Router			/user/profile [patch].
func (h *ProfileHandler) HandlePatch(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	var patch service.ProfilePatch
	if err := httpx.DecodeJSON(http.MaxBytesReader(w, r.Body, maxJSONBody), &patch); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	p, err := h.ProfileService.UpdateProfile(r.Context(), id, patch)
	if err != nil {
		writeServiceError(w, r, err, "User not found")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, wadsdk.UpdateProfileResponse{
		Message: "Profile updated successfully",
		Profile: profileResponse(p),
	})
}

func profileResponse(p domain.Profile) wadsdk.ProfileResponse {
	return wadsdk.ProfileResponse{
		ID:           p.ID,
		Firstname:    p.Firstname,
		Lastname:     p.Lastname,
		Email:        p.Email,
		ProfileImage: p.ProfileImage,
	}
}
