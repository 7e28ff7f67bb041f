package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/wad01/wad/internal/api/store"
	"github.com/wad01/wad/pkg/cryptox"
	"github.com/wad01/wad/pkg/jwtx"
	"github.com/wad01/wad/pkg/slogx"
)

// dummyHash is compared against when the email is unknown so both failure
// paths cost one bcrypt comparison.
const dummyHash = "$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5BWX4Z3lVXf5KZUUCc7eQnQ3Dq6vS"

// AccessToken is an issued bearer token.
type AccessToken struct {
	Token     string
	ExpiresIn time.Duration
}

type TokenService struct {
	Store     store.Store
	Signer    jwtx.Signer
	Issuer    string
	AccessTTL time.Duration
}

// IssueToken exchanges email and password for a signed access token carrying
// the email claim. Unknown email and wrong password both return
// ErrInvalidCredentials.
func (s *TokenService) IssueToken(ctx context.Context, email, password string) (AccessToken, error) {
	log := slogx.FromContext(ctx)

	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return AccessToken{}, ErrInvalidCredentials
	}

	user, err := s.Store.Users().FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_ = cryptox.VerifyPassword(password, dummyHash)
			return AccessToken{}, ErrInvalidCredentials
		}
		return AccessToken{}, fmt.Errorf("issue token: find user: %w", err)
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		log.Info("token request rejected", "user_id", user.ID)
		return AccessToken{}, ErrInvalidCredentials
	}

	ttl := s.AccessTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}

	claims := jwtx.NewAccessClaims(user.ID, user.Email, user.Username, ttl, s.Issuer, time.Now().UTC())
	token, err := s.Signer.Sign(claims)
	if err != nil {
		return AccessToken{}, fmt.Errorf("issue token: sign: %w", err)
	}

	log.Info("access token issued", "user_id", user.ID, "jti", claims.ID)
	return AccessToken{Token: token, ExpiresIn: ttl}, nil
}
