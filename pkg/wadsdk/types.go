package wadsdk

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// MessageResponse is returned by every error and by endpoints that only
// acknowledge.
type MessageResponse struct {
	Message string `json:"message"`
}

// ============================================================================
// Token Types
// ============================================================================

// TokenRequest is the body of POST /auth/token.
type TokenRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse carries a bearer access token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`

	// TokenType is always "Bearer"
	TokenType string `json:"token_type"`

	// ExpiresIn is the lifetime of the access token in seconds
	ExpiresIn int `json:"expires_in"`
}

// ============================================================================
// Profile Types
// ============================================================================

// ProfileResponse is the sanitized view of the caller's user document.
type ProfileResponse struct {
	ID        string `json:"_id"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`

	// ProfileImage is the public path of the linked image, null when none
	ProfileImage *string `json:"profileImage"`
}

// UpdateProfileRequest is the body of PATCH /user/profile. Nil fields are
// omitted from the request.
type UpdateProfileRequest struct {
	Firstname *string `json:"firstname,omitempty"`
	Lastname  *string `json:"lastname,omitempty"`
}

type UpdateProfileResponse struct {
	Message string          `json:"message"`
	Profile ProfileResponse `json:"profile"`
}

// ImageResponse is returned after a successful upload.
type ImageResponse struct {
	ImageURL string `json:"imageUrl"`
}

// ============================================================================
// User Types
// ============================================================================

// UserResponse is a user document as listed by GET /user. It never carries
// the password hash.
type UserResponse struct {
	ID           string    `json:"_id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Firstname    string    `json:"firstname"`
	Lastname     string    `json:"lastname"`
	ProfileImage *string   `json:"profileImage"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type ListUsersResponse struct {
	Users      []UserResponse `json:"users"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int64          `json:"totalPages"`
}

type CreateUserRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
}

type CreateUserResponse struct {
	ID string `json:"id"`
}

// UpdateUserRequest is a partial update; absent fields are left untouched.
type UpdateUserRequest struct {
	Username  *string `json:"username,omitempty"`
	Email     *string `json:"email,omitempty"`
	Firstname *string `json:"firstname,omitempty"`
	Lastname  *string `json:"lastname,omitempty"`
	Status    *string `json:"status,omitempty"`
}

// SeedResponse is returned by POST /admin/seed-test-user.
type SeedResponse struct {
	Message string `json:"message"`
	Email   string `json:"email"`
}

// ============================================================================
// Item Types
// ============================================================================

// Price is an item price. It decodes from a JSON number or a numeric string
// and always encodes as a number.
type Price float64

func (p *Price) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("wadsdk: price %q is not a number", s)
		}
		*p = Price(f)
		return nil
	}

	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("wadsdk: price: %w", err)
	}
	*p = Price(f)
	return nil
}

type ItemResponse struct {
	ID           string  `json:"_id"`
	ItemName     string  `json:"itemName"`
	ItemCategory string  `json:"itemCategory"`
	ItemPrice    float64 `json:"itemPrice"`
	Status       string  `json:"status"`
}

type ListItemsResponse struct {
	Items      []ItemResponse `json:"items"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int64          `json:"totalPages"`
}

type CreateItemRequest struct {
	ItemName     string `json:"itemName"`
	ItemCategory string `json:"itemCategory"`
	ItemPrice    Price  `json:"itemPrice"`
	Status       string `json:"status,omitempty"`
}

// CreateItemResponse echoes the stored item with its new id.
type CreateItemResponse struct {
	ID           string  `json:"id"`
	ItemName     string  `json:"itemName"`
	ItemCategory string  `json:"itemCategory"`
	ItemPrice    float64 `json:"itemPrice"`
	Status       string  `json:"status"`
}

type UpdateItemRequest struct {
	ItemName     *string `json:"itemName,omitempty"`
	ItemCategory *string `json:"itemCategory,omitempty"`
	ItemPrice    *Price  `json:"itemPrice,omitempty"`
	Status       *string `json:"status,omitempty"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse is returned by /livez and /readyz. Checks is only set by
// /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime,omitempty"`
	Version string        `json:"version,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of each backing service.
type HealthChecks struct {
	Database string `json:"database"`
	Assets   string `json:"assets"`
}
