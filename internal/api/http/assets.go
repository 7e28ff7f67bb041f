package http

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/wad01/wad/internal/api/assets"
	"github.com/wad01/wad/pkg/httpx"
	"github.com/wad01/wad/pkg/slogx"
)

// AssetHandler serves stored profile images. Names are unique per upload so
// responses are cacheable forever.
type AssetHandler struct {
	Assets assets.Store
}

// ServeHTTP streams one asset.
//
//	@Summary		Get profile image
//	@Tags			Assets
//	@Produce		image/jpeg,image/png,image/gif,image/webp
//	@Param			name	path	string	true	"Asset name"
//	@Success		200		{file}	binary
//	@Failure		404	{object}	wadsdk.MessageResponse
//	@Router			/profile-images/{name} [get].
func (h *AssetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if !assets.ValidName(name) {
		httpx.WriteMessage(w, http.StatusNotFound, "Not found")
		return
	}

	rc, info, err := h.Assets.Open(r.Context(), name)
	if err != nil {
		if errors.Is(err, assets.ErrNotFound) {
			httpx.WriteMessage(w, http.StatusNotFound, "Not found")
			return
		}
		slogx.FromContext(r.Context()).Error("failed to open asset", "asset", name, "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, msgInternal)
		return
	}
	defer rc.Close()

	contentType := info.ContentType
	if contentType == "" {
		contentType = assets.ContentTypeFor(name)
	}

	hdr := w.Header()
	hdr.Set("Content-Type", contentType)
	hdr.Set("X-Content-Type-Options", "nosniff")
	hdr.Set("Cache-Control", "public, max-age=31536000, immutable")
	if info.Size > 0 {
		hdr.Set("Content-Length", strconv.FormatInt(info.Size, 10))
	}
	w.WriteHeader(http.StatusOK)

	if r.Method == http.MethodHead {
		return
	}
	if _, err := io.Copy(w, rc); err != nil {
		slogx.FromContext(r.Context()).Warn("asset stream interrupted", "asset", name, "err", err)
	}
}
