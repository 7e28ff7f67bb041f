package http

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/wad01/wad/internal/api/service"
	"github.com/wad01/wad/pkg/httpx"
	"github.com/wad01/wad/pkg/slogx"
	"github.com/wad01/wad/pkg/wadsdk"
)

// uploadField is the multipart field carrying the image.
const uploadField = "file"

type ProfileImageHandler struct {
	ImageService   *service.ImageService
	MaxUploadBytes int64
}

// HandleUpload stores a new profile image for the caller.
//
//	@Summary		Upload profile image
//	@Description	Accepts a multipart form with a "file" part of type image/jpeg, image/png, image/gif or image/webp. Replaces any previous image.
//	@Tags			Profile
//	@Security		BearerAuth
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file	formData	file	true	"Image file"
//	@Success		200		{object}	wadsdk.ImageResponse
//	@Failure		400		{object}	wadsdk.MessageResponse	"Invalid form data, No file uploaded, Only image files allowed, File too large"
//	@Failure		401		{object}	wadsdk.MessageResponse
//	@Failure		404		{object}	wadsdk.MessageResponse	"User not found"
//	@Failure		500		{object}	wadsdk.MessageResponse
//	@Router			/user/profile/image [post].
func (h *ProfileImageHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.MaxUploadBytes)

	mr, err := r.MultipartReader()
	if err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	part, err := nextFilePart(mr)
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			httpx.WriteMessage(w, http.StatusBadRequest, "File too large")
		case errors.Is(err, service.ErrNoFile):
			httpx.WriteMessage(w, http.StatusBadRequest, "No file uploaded")
		default:
			httpx.WriteMessage(w, http.StatusBadRequest, "Invalid form data")
		}
		return
	}
	defer part.Close()

	path, err := h.ImageService.UploadImage(r.Context(), id, service.Upload{
		ContentType: part.Header.Get("Content-Type"),
		Body:        part,
	})
	if err != nil {
		writeUploadError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, wadsdk.ImageResponse{ImageURL: path})
}

// nextFilePart skips form values until the file part. service.ErrNoFile when
// the form has none.
func nextFilePart(mr *multipart.Reader) (*multipart.Part, error) {
	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			return nil, service.ErrNoFile
		}
		if err != nil {
			return nil, err
		}
		if part.FormName() == uploadField && part.FileName() != "" {
			return part, nil
		}
		_ = part.Close()
	}
}

func writeUploadError(w http.ResponseWriter, r *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		httpx.WriteMessage(w, http.StatusBadRequest, "File too large")
	case errors.Is(err, service.ErrNoFile):
		httpx.WriteMessage(w, http.StatusBadRequest, "No file uploaded")
	case errors.Is(err, service.ErrUnsupportedMediaType):
		httpx.WriteMessage(w, http.StatusBadRequest, "Only image files allowed")
	default:
		writeServiceError(w, r, err, "User not found")
	}
}

// HandleDelete removes the caller's profile image.
//
//	@Summary		Delete profile image
//	@Description	Unlinks and deletes the caller's profile image. Succeeds when there is no image.
//	@Tags			Profile
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	wadsdk.MessageResponse	"OK"
//	@Failure		401	{object}	wadsdk.MessageResponse
//	@Failure		500	{object}	wadsdk.MessageResponse
//	@Router			/user/profile/image [delete].
func (h *ProfileImageHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	if err := h.ImageService.DeleteImage(r.Context(), id); err != nil {
		slogx.FromContext(r.Context()).Error("failed to delete profile image", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, msgInternal)
		return
	}

	httpx.WriteMessage(w, http.StatusOK, "OK")
}
