package http

import (
	"net/http"
	"strconv"

	"github.com/wad01/wad/internal/api/domain"
	"github.com/wad01/wad/internal/api/service"
	"github.com/wad01/wad/pkg/httpx"
	"github.com/wad01/wad/pkg/wadsdk"
)

// UsersHandler serves the user document CRUD endpoints.
type UsersHandler struct {
	UserService *service.UserService
}

// HandleList handles GET /user
//
//	@Summary		List users
//	@Description	Returns one page of users. Passwords are never included.
//	@Tags			Users
//	@Produce		json
//	@Param			page	query		int	false	"Page number (default 1)"
//	@Param			limit	query		int	false	"Page size (default 10, max 100)"
//	@Success		200		{object}	wadsdk.ListUsersResponse
//	@Failure		500		{object}	wadsdk.MessageResponse
//	@Router			/user [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page, err := h.UserService.List(r.Context(), pageFromQuery(r))
	if err != nil {
		writeServiceError(w, r, err, "Not found")
		return
	}

	users := make([]wadsdk.UserResponse, len(page.Users))
	for i, u := range page.Users {
		users[i] = wadsdk.UserResponse{
			ID:           u.ID,
			Username:     u.Username,
			Email:        u.Email,
			Firstname:    u.Firstname,
			Lastname:     u.Lastname,
			ProfileImage: u.ProfileImage,
			Status:       u.Status,
			CreatedAt:    u.CreatedAt,
			UpdatedAt:    u.UpdatedAt,
		}
	}

	httpx.WriteJSON(w, http.StatusOK, wadsdk.ListUsersResponse{
		Users:      users,
		Total:      page.Total,
		Page:       page.Page.Page,
		Limit:      page.Page.Limit,
		TotalPages: page.Page.TotalPages(page.Total),
	})
}

// HandleCreate handles POST /user
//
//	@Summary		Create user
//	@Description	Creates an ACTIVE user. username, email and password are mandatory; the password is stored as a bcrypt hash.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		wadsdk.CreateUserRequest	true	"New user"
//	@Success		200		{object}	wadsdk.CreateUserResponse
//	@Failure		400		{object}	wadsdk.MessageResponse	"Missing mandatory data, Duplicate Username!!, Duplicate Email!!"
//	@Failure		500		{object}	wadsdk.MessageResponse
//	@Router			/user [post].
func (h *UsersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req wadsdk.CreateUserRequest
	if err := httpx.DecodeJSON(http.MaxBytesReader(w, r.Body, maxJSONBody), &req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	id, err := h.UserService.Create(r.Context(), service.CreateUserInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
	})
	if err != nil {
		writeServiceError(w, r, err, "Not found")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, wadsdk.CreateUserResponse{ID: id})
}

// HandleUpdate handles PUT /user/{id}
//
//	@Summary		Update user
//	@Description	Partial update of username, email, firstname, lastname and status. Other fields are ignored.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"User id"
//	@Param			request	body		wadsdk.UpdateUserRequest	true	"Fields to change"
//	@Success		200		{object}	wadsdk.MessageResponse		"User updated"
//	@Failure		400		{object}	wadsdk.MessageResponse
//	@Failure		404		{object}	wadsdk.MessageResponse	"User not found"
//	@Router			/user/{id} [put].
func (h *UsersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req wadsdk.UpdateUserRequest
	if err := httpx.DecodeJSON(http.MaxBytesReader(w, r.Body, maxJSONBody), &req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	err := h.UserService.Update(r.Context(), r.PathValue("id"), domain.UserUpdate{
		Username:  req.Username,
		Email:     req.Email,
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Status:    req.Status,
	})
	if err != nil {
		writeServiceError(w, r, err, "User not found")
		return
	}

	httpx.WriteMessage(w, http.StatusOK, "User updated")
}

// HandleDelete handles DELETE /user/{id}
//
//	@Summary		Delete user
//	@Tags			Users
//	@Produce		json
//	@Param			id	path		string					true	"User id"
//	@Success		200	{object}	wadsdk.MessageResponse	"User deleted"
//	@Failure		400	{object}	wadsdk.MessageResponse	"Invalid id"
//	@Failure		404	{object}	wadsdk.MessageResponse	"User not found"
//	@Router			/user/{id} [delete].
func (h *UsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.UserService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err, "User not found")
		return
	}

	httpx.WriteMessage(w, http.StatusOK, "User deleted")
}

// pageFromQuery reads ?page and ?limit. Unparseable values fall back to the
// defaults applied by service.Page.Normalize.
func pageFromQuery(r *http.Request) service.Page {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	return service.Page{Page: page, Limit: limit}
}
