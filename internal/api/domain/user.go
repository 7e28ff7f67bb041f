package domain

import "time"

// StatusActive is the status given to newly created users and items.
const StatusActive = "ACTIVE"

type User struct {
	ID           string
	Username     string
	Email        string
	Firstname    string
	Lastname     string
	PasswordHash string  // bcrypt encoded
	ProfileImage *string // public path, nil when no image is linked
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser is the input for creating a user document.
type NewUser struct {
	Username     string
	Email        string
	Firstname    string
	Lastname     string
	PasswordHash string
	Status       string
}

// UserUpdate is a partial update of a user document. Nil fields are left
// untouched.
type UserUpdate struct {
	Username  *string
	Email     *string
	Firstname *string
	Lastname  *string
	Status    *string
}

// IsEmpty reports whether no field is set.
func (u UserUpdate) IsEmpty() bool {
	return u.Username == nil && u.Email == nil && u.Firstname == nil && u.Lastname == nil && u.Status == nil
}
