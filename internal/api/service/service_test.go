package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/wad01/wad/internal/api/assets"
	"github.com/wad01/wad/internal/api/domain"
	"github.com/wad01/wad/internal/api/store/drivers/sqlite"
	"github.com/wad01/wad/pkg/cryptox"
	"github.com/wad01/wad/pkg/httpx"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	s, err := sqlite.NewStore(filepath.Join(t.TempDir(), "wad.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func seedUser(t *testing.T, s *sqlite.Store, username, email, password string) string {
	t.Helper()

	hash, err := cryptox.HashPassword(password)
	require.NoError(t, err)

	id, err := s.Users().Create(context.Background(), domain.NewUser{
		Username:     username,
		Email:        email,
		Firstname:    "Ada",
		Lastname:     "Lovelace",
		PasswordHash: hash,
		Status:       domain.StatusActive,
	}, time.Now())
	require.NoError(t, err)
	return id
}

func identity(email string) httpx.Identity {
	return httpx.Identity{Email: email}
}

func ptr[T any](v T) *T { return &v }

// memAssets is an in-memory assets.Store that counts calls and can be told
// to fail removals.
type memAssets struct {
	mu        sync.Mutex
	files     map[string][]byte
	puts      int
	removes   int
	removeErr error
}

func newMemAssets() *memAssets {
	return &memAssets{files: map[string][]byte{}}
}

func (m *memAssets) Put(_ context.Context, name, _ string, r io.Reader) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.puts++
	m.files[name] = b
	return nil
}

func (m *memAssets) Open(_ context.Context, name string) (io.ReadCloser, assets.Info, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.files[name]
	if !ok {
		return nil, assets.Info{}, assets.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(b)), assets.Info{ContentType: assets.ContentTypeFor(name), Size: int64(len(b))}, nil
}

func (m *memAssets) Remove(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removes++
	if m.removeErr != nil {
		return m.removeErr
	}
	if _, ok := m.files[name]; !ok {
		return assets.ErrNotFound
	}
	delete(m.files, name)
	return nil
}

func (m *memAssets) Ping(context.Context) error { return nil }

func (m *memAssets) has(path string) bool {
	name, ok := assets.NameFromPath(path)
	if !ok {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok = m.files[name]
	return ok
}

var errBoom = errors.New("boom")
