package wadsdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// SDKClient is a client for the wad API. It performs unauthenticated calls
// and creates authenticated Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a client for the API at baseURL.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// IssueToken exchanges email and password for an access token.
func (c *SDKClient) IssueToken(ctx context.Context, email, password string) (*TokenResponse, error) {
	var tok TokenResponse
	err := c.doJSON(ctx, http.MethodPost, "/auth/token", "", TokenRequest{Email: email, Password: password}, &tok)
	if err != nil {
		return nil, err
	}
	return &tok, nil
}

// Authenticate issues a token and wraps it in a Session.
func (c *SDKClient) Authenticate(ctx context.Context, email, password string) (*Session, error) {
	tok, err := c.IssueToken(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return c.NewSession(tok.AccessToken), nil
}

// SeedTestUser creates or resets the development test account.
func (c *SDKClient) SeedTestUser(ctx context.Context) (*SeedResponse, error) {
	var out SeedResponse
	if err := c.doJSON(ctx, http.MethodPost, "/admin/seed-test-user", "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListUsers returns one page of users. Zero page or limit use the server
// defaults.
func (c *SDKClient) ListUsers(ctx context.Context, page, limit int) (*ListUsersResponse, error) {
	var out ListUsersResponse
	if err := c.doJSON(ctx, http.MethodGet, "/user"+pageQuery(page, limit), "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *SDKClient) CreateUser(ctx context.Context, req CreateUserRequest) (string, error) {
	var out CreateUserResponse
	if err := c.doJSON(ctx, http.MethodPost, "/user", "", req, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

func (c *SDKClient) UpdateUser(ctx context.Context, id string, req UpdateUserRequest) error {
	return c.doJSON(ctx, http.MethodPut, "/user/"+url.PathEscape(id), "", req, nil)
}

func (c *SDKClient) DeleteUser(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/user/"+url.PathEscape(id), "", nil, nil)
}

// ListItems returns one page of items.
func (c *SDKClient) ListItems(ctx context.Context, page, limit int) (*ListItemsResponse, error) {
	var out ListItemsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/item"+pageQuery(page, limit), "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *SDKClient) CreateItem(ctx context.Context, req CreateItemRequest) (*CreateItemResponse, error) {
	var out CreateItemResponse
	if err := c.doJSON(ctx, http.MethodPost, "/item", "", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *SDKClient) UpdateItem(ctx context.Context, id string, req UpdateItemRequest) error {
	return c.doJSON(ctx, http.MethodPut, "/item/"+url.PathEscape(id), "", req, nil)
}

func (c *SDKClient) DeleteItem(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/item/"+url.PathEscape(id), "", nil, nil)
}

func pageQuery(page, limit int) string {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}
