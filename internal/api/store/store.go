package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wad01/wad/internal/api/domain"
)

var (
	ErrNotFound  = errors.New("store: not found")
	ErrDuplicate = errors.New("store: duplicate key")
	ErrInvalidID = errors.New("store: invalid id")
)

// DuplicateError reports a unique-index violation on Field ("username" or
// "email"). It matches ErrDuplicate with errors.Is.
type DuplicateError struct {
	Field string
}

func (e *DuplicateError) Error() string {
	if e.Field == "" {
		return ErrDuplicate.Error()
	}
	return fmt.Sprintf("%s on %s", ErrDuplicate, e.Field)
}

func (e *DuplicateError) Is(target error) bool { return target == ErrDuplicate }

// Store is the root data access interface implemented by the sqlite and
// mongo drivers. Each call is a single-document operation; there are no
// transactions spanning documents.
type Store interface {
	Users() Users
	Items() Items

	// Migrate brings the schema (sqlite) or indexes (mongo) up to date. It
	// is idempotent.
	Migrate(ctx context.Context) error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error

	// Close releases the underlying connection.
	Close() error
}

type Users interface {
	// FindProfile returns the profile projection of the user with email.
	FindProfile(ctx context.Context, email string) (domain.Profile, error)

	// FindByEmail returns the full document, password hash included. Only
	// token issuance uses it.
	FindByEmail(ctx context.Context, email string) (domain.User, error)

	// UpdateProfile writes the profile fields by email. ErrNotFound when no
	// document matched.
	UpdateProfile(ctx context.Context, email string, upd domain.ProfileUpdate) error

	// SetProfileImage sets (or with nil, clears) the image path by email and
	// bumps updatedAt. ErrNotFound when no document matched.
	SetProfileImage(ctx context.Context, email string, path *string, at time.Time) error

	// List returns a page of users in insertion order, without passwords.
	List(ctx context.Context, skip, limit int) ([]domain.User, error)
	Count(ctx context.Context) (int64, error)

	// Create inserts a user and returns its id. Unique violations surface as
	// *DuplicateError.
	Create(ctx context.Context, u domain.NewUser, at time.Time) (string, error)

	// UpdateByID applies a partial update. ErrNotFound when unmatched.
	UpdateByID(ctx context.Context, id string, upd domain.UserUpdate) error

	// DeleteByID removes a user. ErrNotFound when unmatched.
	DeleteByID(ctx context.Context, id string) error

	// UpsertByEmail creates or overwrites the user keyed by email.
	UpsertByEmail(ctx context.Context, u domain.NewUser, at time.Time) error
}

type Items interface {
	List(ctx context.Context, skip, limit int) ([]domain.Item, error)
	Count(ctx context.Context) (int64, error)

	// Create inserts an item and returns its id.
	Create(ctx context.Context, it domain.Item) (string, error)

	// UpdateByID applies a partial update. ErrNotFound when unmatched.
	UpdateByID(ctx context.Context, id string, upd domain.ItemUpdate) error

	// DeleteByID removes an item. ErrNotFound when unmatched.
	DeleteByID(ctx context.Context, id string) error
}
