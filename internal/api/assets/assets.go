// Package assets stores profile images. A Store holds opaque, server-chosen
// names; the public path of an asset is "/profile-images/<name>".
package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/wad01/wad/pkg/cryptox"
)

// PathPrefix is the URL path under which stored assets are served.
const PathPrefix = "/profile-images/"

// ErrNotFound is returned when the named asset does not exist.
var ErrNotFound = errors.New("assets: not found")

// ErrInvalidName is returned for names that could escape the store.
var ErrInvalidName = errors.New("assets: invalid name")

// Info describes a stored asset.
type Info struct {
	ContentType string
	Size        int64
}

// Store is a flat content store keyed by asset name.
type Store interface {
	// Put writes r under name, replacing nothing: names are unique.
	Put(ctx context.Context, name, contentType string, r io.Reader) error

	// Open returns the asset contents. The caller closes the reader.
	Open(ctx context.Context, name string) (io.ReadCloser, Info, error)

	// Remove deletes the asset. ErrNotFound when it is already absent.
	Remove(ctx context.Context, name string) error

	// Ping reports whether the backing storage is reachable.
	Ping(ctx context.Context) error
}

// extensions maps every accepted media type to the stored file extension.
var extensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/gif":  "gif",
	"image/webp": "webp",
}

// ExtensionFor returns the extension for an accepted image media type.
// Parameters such as "; charset=" are ignored.
func ExtensionFor(contentType string) (string, bool) {
	mt, _, _ := strings.Cut(contentType, ";")
	ext, ok := extensions[strings.ToLower(strings.TrimSpace(mt))]
	return ext, ok
}

// ContentTypeFor is the inverse of ExtensionFor, used when serving.
func ContentTypeFor(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return "application/octet-stream"
	}
	ext := strings.ToLower(name[i+1:])
	for mt, e := range extensions {
		if e == ext {
			return mt
		}
	}
	return "application/octet-stream"
}

// NewName returns "<uuid>-<16 hex chars>.<ext>".
func NewName(ext string) (string, error) {
	suffix, err := cryptox.RandomHex(8)
	if err != nil {
		return "", fmt.Errorf("assets: name: %w", err)
	}
	return uuid.NewString() + "-" + suffix + "." + ext, nil
}

// PublicPath is the path stored on the user document and served over HTTP.
func PublicPath(name string) string {
	return PathPrefix + name
}

// NameFromPath extracts the asset name from a public path. It rejects paths
// outside PathPrefix and names that fail ValidName.
func NameFromPath(path string) (string, bool) {
	name, ok := strings.CutPrefix(path, PathPrefix)
	if !ok || !ValidName(name) {
		return "", false
	}
	return name, true
}

// ValidName reports whether name is a single safe path element. Dot files
// are rejected; the local store keeps in-flight uploads under such names.
func ValidName(name string) bool {
	if name == "" || name[0] == '.' || len(name) > 255 {
		return false
	}
	for _, c := range name {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-', c == '_', c == '.':
		default:
			return false
		}
	}
	return !strings.Contains(name, "..")
}
