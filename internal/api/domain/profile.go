package domain

import "time"

// Profile is the user-facing projection of a user document. It never carries
// the password hash, username or status.
type Profile struct {
	ID           string
	Firstname    string
	Lastname     string
	Email        string
	ProfileImage *string
}

// ProfileUpdate sets the editable profile fields of a user. Nil names are
// left untouched. UpdatedAt is always written.
type ProfileUpdate struct {
	Firstname *string
	Lastname  *string
	UpdatedAt time.Time
}
