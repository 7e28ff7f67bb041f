package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wad01/wad/internal/api/domain"
)

func decodePatch(t *testing.T, body string) ProfilePatch {
	t.Helper()
	var p ProfilePatch
	require.NoError(t, json.Unmarshal([]byte(body), &p))
	return p
}

func TestGetProfile(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	id := seedUser(t, s, "ada", "ada@example.com", "secret-password")
	svc := &ProfileService{Store: s}

	p, err := svc.GetProfile(ctx, identity("ada@example.com"))
	require.NoError(t, err)
	require.Equal(t, domain.Profile{
		ID:        id,
		Firstname: "Ada",
		Lastname:  "Lovelace",
		Email:     "ada@example.com",
	}, p)

	_, err = svc.GetProfile(ctx, identity("nobody@example.com"))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateProfile_TrimsAndEchoes(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seedUser(t, s, "ada", "ada@example.com", "secret-password")
	svc := &ProfileService{Store: s}

	p, err := svc.UpdateProfile(ctx, identity("ada@example.com"), decodePatch(t, `{"firstname":" Al "}`))
	require.NoError(t, err)
	require.Equal(t, "Al", p.Firstname)
	require.Equal(t, "Lovelace", p.Lastname)

	stored, err := s.Users().FindProfile(ctx, "ada@example.com")
	require.NoError(t, err)
	require.Equal(t, "Al", stored.Firstname)
}

func TestUpdateProfile_IgnoresUnknownFields(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seedUser(t, s, "ada", "ada@example.com", "secret-password")
	svc := &ProfileService{Store: s}

	_, err := svc.UpdateProfile(ctx, identity("ada@example.com"),
		decodePatch(t, `{"lastname":"Byron","email":"evil@example.com","status":"BANNED"}`))
	require.NoError(t, err)

	u, err := s.Users().FindByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	require.Equal(t, "Byron", u.Lastname)
	require.Equal(t, domain.StatusActive, u.Status)
}

func TestUpdateProfile_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
		msg  string
	}{
		{"empty first name", `{"firstname":""}`, "Invalid first name"},
		{"blank first name", `{"firstname":"   "}`, "Invalid first name"},
		{"null first name", `{"firstname":null}`, "Invalid first name"},
		{"numeric first name", `{"firstname":42}`, "Invalid first name"},
		{"blank last name", `{"firstname":"Al","lastname":"\t"}`, "Invalid last name"},
		{"no fields", `{}`, "No updatable profile fields provided"},
		{"only unknown fields", `{"username":"x"}`, "No updatable profile fields provided"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			s := newTestStore(t)
			seedUser(t, s, "ada", "ada@example.com", "secret-password")
			svc := &ProfileService{Store: s}

			before, err := s.Users().FindByEmail(ctx, "ada@example.com")
			require.NoError(t, err)

			_, err = svc.UpdateProfile(ctx, identity("ada@example.com"), decodePatch(t, tt.body))
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			require.Equal(t, tt.msg, verr.Message)

			after, err := s.Users().FindByEmail(ctx, "ada@example.com")
			require.NoError(t, err)
			require.Equal(t, before, after)
		})
	}
}

func TestUpdateProfile_UnknownUser(t *testing.T) {
	s := newTestStore(t)
	svc := &ProfileService{Store: s}

	_, err := svc.UpdateProfile(context.Background(), identity("nobody@example.com"), decodePatch(t, `{"firstname":"Al"}`))
	require.ErrorIs(t, err, ErrNotFound)
}
