package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/wad01/wad/internal/api/domain"
	"github.com/wad01/wad/internal/api/store"
	"github.com/wad01/wad/pkg/cryptox"
	"github.com/wad01/wad/pkg/slogx"
)

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

// Page is a skip/limit window over a collection.
type Page struct {
	Page  int
	Limit int
}

// Normalize applies the defaults and bounds used by every listing.
func (p Page) Normalize() Page {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	// Keep (Page-1)*Limit within int so far pages stay empty instead of wrapping.
	if maxPage := math.MaxInt/p.Limit + 1; p.Page > maxPage {
		p.Page = maxPage
	}
	return p
}

func (p Page) skip() int { return (p.Page - 1) * p.Limit }

// TotalPages is ceil(total / limit).
func (p Page) TotalPages(total int64) int64 {
	if p.Limit <= 0 {
		return 0
	}
	return (total + int64(p.Limit) - 1) / int64(p.Limit)
}

type UserPage struct {
	Users []domain.User
	Total int64
	Page  Page
}

// CreateUserInput is the body of a user creation request.
type CreateUserInput struct {
	Username  string
	Email     string
	Password  string
	Firstname string
	Lastname  string
}

// Seed account for local development and UI tests.
const (
	SeedEmail    = "test@example.com"
	SeedUsername = "testuser"
	SeedPassword = "password123"
)

type UserService struct {
	Store store.Store
}

// List returns one page of users without password hashes.
func (s *UserService) List(ctx context.Context, p Page) (UserPage, error) {
	p = p.Normalize()

	users, err := s.Store.Users().List(ctx, p.skip(), p.Limit)
	if err != nil {
		return UserPage{}, storeErr("list users", err)
	}
	total, err := s.Store.Users().Count(ctx)
	if err != nil {
		return UserPage{}, storeErr("count users", err)
	}

	return UserPage{Users: users, Total: total, Page: p}, nil
}

// Create hashes the password and inserts an ACTIVE user.
func (s *UserService) Create(ctx context.Context, in CreateUserInput) (string, error) {
	if strings.TrimSpace(in.Username) == "" || strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return "", invalid("Missing mandatory data")
	}

	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		return "", invalid("Invalid password")
	}

	id, err := s.Store.Users().Create(ctx, domain.NewUser{
		Username:     in.Username,
		Email:        in.Email,
		Firstname:    in.Firstname,
		Lastname:     in.Lastname,
		PasswordHash: hash,
		Status:       domain.StatusActive,
	}, time.Now().UTC())
	if err != nil {
		return "", duplicateErr("create user", err)
	}

	slogx.FromContext(ctx).Info("user created", "user_id", id)
	return id, nil
}

// Update applies a partial update. Password changes are not accepted here.
func (s *UserService) Update(ctx context.Context, id string, upd domain.UserUpdate) error {
	if err := s.Store.Users().UpdateByID(ctx, id, upd); err != nil {
		return duplicateErr("update user", err)
	}
	return nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.Store.Users().DeleteByID(ctx, id); err != nil {
		return storeErr("delete user", err)
	}
	slogx.FromContext(ctx).Info("user deleted", "user_id", id)
	return nil
}

// SeedTestUser creates or resets the seed account and returns its email.
func (s *UserService) SeedTestUser(ctx context.Context) (string, error) {
	hash, err := cryptox.HashPassword(SeedPassword)
	if err != nil {
		return "", fmt.Errorf("seed test user: %w", err)
	}

	err = s.Store.Users().UpsertByEmail(ctx, domain.NewUser{
		Username:     SeedUsername,
		Email:        SeedEmail,
		Firstname:    "Test",
		Lastname:     "User",
		PasswordHash: hash,
		Status:       domain.StatusActive,
	}, time.Now().UTC())
	if err != nil {
		return "", duplicateErr("seed test user", err)
	}

	return SeedEmail, nil
}

func duplicateErr(op string, err error) error {
	var dup *store.DuplicateError
	if errors.As(err, &dup) {
		switch dup.Field {
		case "username":
			return invalid("Duplicate Username!!")
		case "email":
			return invalid("Duplicate Email!!")
		default:
			return invalid("Duplicate key")
		}
	}
	return storeErr(op, err)
}
