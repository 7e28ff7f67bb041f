// Package wadsdk is the Go client for the wad API and the home of its wire
// types, which the server handlers encode directly.
//
// Unauthenticated calls go through an SDKClient:
//
//	c := wadsdk.NewSDKClient("http://localhost:8080")
//	health, err := c.GetReadiness(ctx)
//
// Profile operations need a Session, obtained by exchanging credentials for
// a bearer token or by wrapping a token issued elsewhere:
//
//	s, err := c.Authenticate(ctx, "test@example.com", "password123")
//	profile, err := s.GetProfile(ctx)
//	url, err := s.UploadImage(ctx, "avatar.png", "image/png", file)
//
// Failed calls return *APIError carrying the HTTP status and the server's
// message:
//
//	var apiErr *wadsdk.APIError
//	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
//		// no profile for this identity
//	}
package wadsdk
