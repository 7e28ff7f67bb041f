package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/wad01/wad/internal/api/assets"
	"github.com/wad01/wad/internal/api/store"
	"github.com/wad01/wad/pkg/httpx"
	"github.com/wad01/wad/pkg/slogx"
)

// Upload is one uploaded file. ContentType is the media type the client
// declared for the part; the client filename is never used.
type Upload struct {
	ContentType string
	Body        io.Reader
}

type ImageService struct {
	Store  store.Store
	Assets assets.Store
}

// UploadImage stores the upload under a fresh name, links it to the caller
// and returns its public path. A previously linked asset is removed once the
// new link is in place. If linking fails after the write the new asset is
// left behind.
func (s *ImageService) UploadImage(ctx context.Context, id httpx.Identity, up Upload) (string, error) {
	log := slogx.FromContext(ctx)

	if up.Body == nil {
		return "", ErrNoFile
	}

	ext, ok := assets.ExtensionFor(up.ContentType)
	if !ok {
		return "", ErrUnsupportedMediaType
	}

	current, err := s.Store.Users().FindProfile(ctx, id.Email)
	if err != nil {
		return "", storeErr("upload image: find user", err)
	}

	name, err := assets.NewName(ext)
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}

	if err := s.Assets.Put(ctx, name, up.ContentType, up.Body); err != nil {
		return "", fmt.Errorf("upload image: store asset: %w", err)
	}

	path := assets.PublicPath(name)
	if err := s.Store.Users().SetProfileImage(ctx, id.Email, &path, time.Now().UTC()); err != nil {
		log.Error("profile image stored but not linked", "asset", name, "err", err)
		return "", storeErr("upload image: link asset", err)
	}

	if current.ProfileImage != nil && *current.ProfileImage != path {
		s.removePrevious(ctx, *current.ProfileImage)
	}

	log.Info("profile image uploaded", "asset", name)
	return path, nil
}

// removePrevious deletes a replaced asset. Failures leave an orphan and are
// only logged.
func (s *ImageService) removePrevious(ctx context.Context, path string) {
	log := slogx.FromContext(ctx)

	name, ok := assets.NameFromPath(path)
	if !ok {
		log.Warn("previous profile image path not recognised", "path", path)
		return
	}

	if err := s.Assets.Remove(ctx, name); err != nil && !errors.Is(err, assets.ErrNotFound) {
		log.Warn("failed to remove replaced profile image", "asset", name, "err", err)
	}
}

// DeleteImage unlinks and removes the caller's image. It succeeds when there
// is nothing to delete, including when the user document does not exist.
func (s *ImageService) DeleteImage(ctx context.Context, id httpx.Identity) error {
	log := slogx.FromContext(ctx)

	current, err := s.Store.Users().FindProfile(ctx, id.Email)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("delete image: find user: %w", err)
	}
	if current.ProfileImage == nil {
		return nil
	}

	if name, ok := assets.NameFromPath(*current.ProfileImage); ok {
		err := s.Assets.Remove(ctx, name)
		switch {
		case errors.Is(err, assets.ErrNotFound):
			log.Warn("profile image already absent", "asset", name)
		case err != nil:
			return fmt.Errorf("delete image: remove asset: %w", err)
		}
	} else {
		log.Warn("profile image path not recognised, clearing reference only", "path", *current.ProfileImage)
	}

	err = s.Store.Users().SetProfileImage(ctx, id.Email, nil, time.Now().UTC())
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("delete image: clear reference: %w", err)
	}

	log.Info("profile image deleted")
	return nil
}
