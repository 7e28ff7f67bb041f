package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// LocalStore keeps assets as files in a single directory.
type LocalStore struct {
	dir string
}

var _ Store = (*LocalStore)(nil)

// NewLocalStore uses dir, creating it if needed.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("assets: create dir: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Dir is the directory holding the assets.
func (s *LocalStore) Dir() string { return s.dir }

func (s *LocalStore) path(name string) (string, error) {
	if !ValidName(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return filepath.Join(s.dir, name), nil
}

// Put writes to a temporary file and renames it into place, so readers never
// observe a partial asset.
func (s *LocalStore) Put(_ context.Context, name, _ string, r io.Reader) error {
	dst, err := s.path(name)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return fmt.Errorf("assets: create temp: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := io.Copy(tmp, r); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("assets: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("assets: close: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o640); err != nil {
		return fmt.Errorf("assets: chmod: %w", err)
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return fmt.Errorf("assets: rename: %w", err)
	}
	return nil
}

func (s *LocalStore) Open(_ context.Context, name string) (io.ReadCloser, Info, error) {
	p, err := s.path(name)
	if err != nil {
		return nil, Info{}, err
	}

	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, Info{}, ErrNotFound
		}
		return nil, Info{}, fmt.Errorf("assets: open: %w", err)
	}

	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, Info{}, fmt.Errorf("assets: stat: %w", err)
	}

	return f, Info{ContentType: ContentTypeFor(name), Size: st.Size()}, nil
}

func (s *LocalStore) Remove(_ context.Context, name string) error {
	p, err := s.path(name)
	if err != nil {
		return err
	}

	if err := os.Remove(p); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrNotFound
		}
		return fmt.Errorf("assets: remove: %w", err)
	}
	return nil
}

// Ping checks that the directory still exists.
func (s *LocalStore) Ping(_ context.Context) error {
	st, err := os.Stat(s.dir)
	if err != nil {
		return fmt.Errorf("assets: stat dir: %w", err)
	}
	if !st.IsDir() {
		return fmt.Errorf("assets: %s is not a directory", s.dir)
	}
	return nil
}
