package service

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/wad01/wad/internal/api/domain"
	"github.com/wad01/wad/internal/api/store"
	"github.com/wad01/wad/pkg/httpx"
	"github.com/wad01/wad/pkg/slogx"
)

// PatchField records whether a JSON member was present and its raw value,
// so that absent, null and non-string values can be told apart.
type PatchField struct {
	Set bool
	Raw json.RawMessage
}

func (f *PatchField) UnmarshalJSON(b []byte) error {
	f.Set = true
	f.Raw = append(f.Raw[:0], b...)
	return nil
}

// String returns the trimmed value when the field holds a JSON string with
// at least one non-space character.
func (f PatchField) String() (string, bool) {
	raw := bytes.TrimSpace(f.Raw)
	if len(raw) == 0 || raw[0] != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

// ProfilePatch is the body of a profile update. Members other than
// firstname and lastname are ignored.
type ProfilePatch struct {
	Firstname PatchField `json:"firstname"`
	Lastname  PatchField `json:"lastname"`
}

type ProfileService struct {
	Store store.Store
}

// GetProfile returns the caller's profile. ErrNotFound when no user document
// carries the identity's email.
func (s *ProfileService) GetProfile(ctx context.Context, id httpx.Identity) (domain.Profile, error) {
	p, err := s.Store.Users().FindProfile(ctx, id.Email)
	if err != nil {
		return domain.Profile{}, storeErr("get profile", err)
	}
	return p, nil
}

// UpdateProfile validates patch, writes the present names and returns the
// profile as stored after the write. Nothing is written when validation
// fails.
func (s *ProfileService) UpdateProfile(ctx context.Context, id httpx.Identity, patch ProfilePatch) (domain.Profile, error) {
	upd := domain.ProfileUpdate{}

	if patch.Firstname.Set {
		v, ok := patch.Firstname.String()
		if !ok {
			return domain.Profile{}, invalid("Invalid first name")
		}
		upd.Firstname = &v
	}

	if patch.Lastname.Set {
		v, ok := patch.Lastname.String()
		if !ok {
			return domain.Profile{}, invalid("Invalid last name")
		}
		upd.Lastname = &v
	}

	if upd.Firstname == nil && upd.Lastname == nil {
		return domain.Profile{}, invalid("No updatable profile fields provided")
	}

	upd.UpdatedAt = time.Now().UTC()
	if err := s.Store.Users().UpdateProfile(ctx, id.Email, upd); err != nil {
		return domain.Profile{}, storeErr("update profile", err)
	}

	slogx.FromContext(ctx).Info("profile updated",
		"firstname_set", upd.Firstname != nil,
		"lastname_set", upd.Lastname != nil,
	)

	return s.GetProfile(ctx, id)
}
