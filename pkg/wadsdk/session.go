package wadsdk

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
)

// Session performs profile operations with a fixed bearer token. Tokens are
// not refreshed; issue a new Session when the token expires.
type Session struct {
	client      *SDKClient
	accessToken string
}

// NewSession wraps an access token issued elsewhere.
func (c *SDKClient) NewSession(accessToken string) *Session {
	return &Session{client: c, accessToken: accessToken}
}

// AccessToken returns the bearer token used by the session.
func (s *Session) AccessToken() string { return s.accessToken }

// GetProfile returns the caller's profile.
func (s *Session) GetProfile(ctx context.Context) (*ProfileResponse, error) {
	var out ProfileResponse
	if err := s.client.doJSON(ctx, http.MethodGet, "/user/profile", s.accessToken, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile changes the caller's names and returns the stored profile.
func (s *Session) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*ProfileResponse, error) {
	var out UpdateProfileResponse
	if err := s.client.doJSON(ctx, http.MethodPatch, "/user/profile", s.accessToken, req, &out); err != nil {
		return nil, err
	}
	return &out.Profile, nil
}

// UploadImage sends r as the "file" part with the given media type and
// returns the public path of the stored image.
func (s *Session) UploadImage(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, strings.ReplaceAll(filename, `"`, "")))
	h.Set("Content-Type", contentType)

	part, err := mw.CreatePart(h)
	if err != nil {
		return "", fmt.Errorf("failed to create form part: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", fmt.Errorf("failed to write form part: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("failed to close form: %w", err)
	}

	resp, err := s.client.doRequest(ctx, http.MethodPost, "/user/profile/image", &buf,
		map[string]string{"Content-Type": mw.FormDataContentType()}, s.accessToken)
	if err != nil {
		return "", err
	}

	var out ImageResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return "", err
	}
	return out.ImageURL, nil
}

// DeleteImage removes the caller's image. It succeeds when there is none.
func (s *Session) DeleteImage(ctx context.Context) error {
	return s.client.doJSON(ctx, http.MethodDelete, "/user/profile/image", s.accessToken, nil, nil)
}

// FetchImage downloads a public image path returned by UploadImage.
func (c *SDKClient) FetchImage(ctx context.Context, path string) ([]byte, string, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, path, nil, nil, "")
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, "", parseErrorResponse(resp, body)
	}
	return body, resp.Header.Get("Content-Type"), nil
}
