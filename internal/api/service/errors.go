package service

import (
	"errors"
	"fmt"

	"github.com/wad01/wad/internal/api/store"
)

var (
	ErrNotFound             = errors.New("not_found")
	ErrInvalidCredentials   = errors.New("invalid_credentials")
	ErrUnsupportedMediaType = errors.New("unsupported_media_type")
	ErrNoFile               = errors.New("no_file")
)

// ValidationError is a client error whose Message is safe to return as-is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(msg string) error { return &ValidationError{Message: msg} }

// storeErr maps store sentinels onto service errors and wraps everything
// else with op for logging.
func storeErr(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, store.ErrInvalidID):
		return invalid("Invalid id")
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
