package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/wad01/wad/internal/api/domain"
	"github.com/wad01/wad/internal/api/store"
	"github.com/wad01/wad/pkg/idx"
)

type usersRepo struct {
	db *sql.DB
}

const userColumns = `id, username, email, firstname, lastname, password_hash, profile_image, status, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (domain.User, error) {
	var (
		u     domain.User
		image sql.NullString
	)
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.Firstname, &u.Lastname,
		&u.PasswordHash, &image, &u.Status, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, err
	}
	u.ProfileImage = mapNullStringPtr(image)
	return u, nil
}

func (r *usersRepo) FindProfile(ctx context.Context, email string) (domain.Profile, error) {
	var (
		p     domain.Profile
		image sql.NullString
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, firstname, lastname, email, profile_image FROM users WHERE email = ?`,
		email,
	).Scan(&p.ID, &p.Firstname, &p.Lastname, &p.Email, &image)
	if err != nil {
		return domain.Profile{}, mapNotFound(err)
	}
	p.ProfileImage = mapNullStringPtr(image)
	return p, nil
}

func (r *usersRepo) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email))
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) UpdateProfile(ctx context.Context, email string, upd domain.ProfileUpdate) error {
	var set setClause
	if upd.Firstname != nil {
		set.add("firstname", *upd.Firstname)
	}
	if upd.Lastname != nil {
		set.add("lastname", *upd.Lastname)
	}
	set.add("updated_at", utc(upd.UpdatedAt))

	args := append(set.args, email)
	return expectOneRow(r.db.ExecContext(ctx,
		`UPDATE users SET `+set.sql()+` WHERE email = ?`, args...))
}

func (r *usersRepo) SetProfileImage(ctx context.Context, email string, path *string, at time.Time) error {
	return expectOneRow(r.db.ExecContext(ctx,
		`UPDATE users SET profile_image = ?, updated_at = ? WHERE email = ?`,
		mapOptionalString(path), utc(at), email,
	))
}

func (r *usersRepo) List(ctx context.Context, skip, limit int) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY id LIMIT ? OFFSET ?`, limit, skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]domain.User, 0, limit)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		// never leaves the store
		u.PasswordHash = ""
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *usersRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n)
	return n, err
}

func (r *usersRepo) Create(ctx context.Context, u domain.NewUser, at time.Time) (string, error) {
	id := idx.NewAt(at).String()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, username, email, firstname, lastname, password_hash, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, u.Username, u.Email, u.Firstname, u.Lastname, u.PasswordHash, u.Status, utc(at), utc(at),
	)
	if err != nil {
		return "", mapWriteError(err)
	}
	return id, nil
}

func (r *usersRepo) UpdateByID(ctx context.Context, id string, upd domain.UserUpdate) error {
	var set setClause
	if upd.Username != nil {
		set.add("username", *upd.Username)
	}
	if upd.Email != nil {
		set.add("email", *upd.Email)
	}
	if upd.Firstname != nil {
		set.add("firstname", *upd.Firstname)
	}
	if upd.Lastname != nil {
		set.add("lastname", *upd.Lastname)
	}
	if upd.Status != nil {
		set.add("status", *upd.Status)
	}

	if set.empty() {
		return r.exists(ctx, id)
	}

	args := append(set.args, id)
	return expectOneRow(r.db.ExecContext(ctx,
		`UPDATE users SET `+set.sql()+` WHERE id = ?`, args...))
}

func (r *usersRepo) DeleteByID(ctx context.Context, id string) error {
	return expectOneRow(r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id))
}

func (r *usersRepo) UpsertByEmail(ctx context.Context, u domain.NewUser, at time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, username, email, firstname, lastname, password_hash, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (email) DO UPDATE SET
		     username      = excluded.username,
		     firstname     = excluded.firstname,
		     lastname      = excluded.lastname,
		     password_hash = excluded.password_hash,
		     status        = excluded.status,
		     updated_at    = excluded.updated_at`,
		idx.NewAt(at).String(), u.Username, u.Email, u.Firstname, u.Lastname, u.PasswordHash, u.Status, utc(at), utc(at),
	)
	return mapWriteError(err)
}

func (r *usersRepo) exists(ctx context.Context, id string) error {
	var one int
	err := r.db.QueryRowContext(ctx, `SELECT 1 FROM users WHERE id = ?`, id).Scan(&one)
	return mapNotFound(err)
}

var _ store.Users = (*usersRepo)(nil)
