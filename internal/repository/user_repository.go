package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/library-reservation/internal/model"
)

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

const userColumns = "id,email,password,active,name,phone,address,created_at,updated_at"

// Create inserts a user and assigns it a fresh UUID.  The Password field
// must already contain the digest, not the plaintext.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	u.ID = uuid.NewString()
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (id, email, password, active, name, phone, address) VALUES (?,?,?,?,?,?,?)",
		u.ID, u.Email, u.Password, u.Active, u.Name, u.Phone, u.Address)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrEmailExists
		}
		return err
	}
	return nil
}

// FindByCredentials fetches the single user whose email AND password
// digest both match exactly.  Login depends on this being one combined
// equality predicate: a record matches only when both fields are equal
// simultaneously, never on partial or substring matches.  Returns
// sql.ErrNoRows when no record matches.
func (r *UserRepo) FindByCredentials(ctx context.Context, email, digest string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE email = ? AND password = ? LIMIT 1",
		email, digest)
	return scanUser(row)
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id string) (model.User, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = ? LIMIT 1", id)
	return scanUser(row)
}

// Update persists all mutable fields of a previously loaded user and
// stamps updated_at.  The caller performs the merge; this method writes
// the whole row.
func (r *UserRepo) Update(ctx context.Context, u *model.User) error {
	now := time.Now().UTC()
	_, err := r.DB.ExecContext(ctx,
		"UPDATE users SET email=?, password=?, active=?, name=?, phone=?, address=?, updated_at=? WHERE id=?",
		u.Email, u.Password, u.Active, u.Name, u.Phone, u.Address, now, u.ID)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrEmailExists
		}
		return err
	}
	u.UpdatedAt = &now
	return nil
}

// Delete removes a user by id.  sql.ErrNoRows is returned when the user
// did not exist.
func (r *UserRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM users WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func scanUser(row *sql.Row) (model.User, error) {
	var u model.User
	var created, updated sql.NullTime
	err := row.Scan(&u.ID, &u.Email, &u.Password, &u.Active, &u.Name, &u.Phone, &u.Address, &created, &updated)
	if err != nil {
		return model.User{}, err
	}
	if created.Valid {
		t := created.Time
		u.CreatedAt = &t
	}
	if updated.Valid {
		t := updated.Time
		u.UpdatedAt = &t
	}
	return u, nil
}
