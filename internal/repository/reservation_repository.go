package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/library-reservation/internal/model"
)

type ReservationRepo struct{ DB *sql.DB }

func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{DB: db} }

const reservationColumns = "id,user_id,book_id,reservation_date,return_date,created_at,updated_at"

// List returns every reservation, newest first.
func (r *ReservationRepo) List(ctx context.Context) ([]model.Reservation, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+reservationColumns+" FROM reservations ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Reservation, 0)
	for rows.Next() {
		var res model.Reservation
		var resDate, retDate, created, updated sql.NullTime
		if err := rows.Scan(&res.ID, &res.UserID, &res.BookID, &resDate, &retDate, &created, &updated); err != nil {
			return nil, err
		}
		fillReservationTimes(&res, resDate, retDate, created, updated)
		out = append(out, res)
	}
	return out, rows.Err()
}

// GetByID fetches a reservation by id.
func (r *ReservationRepo) GetByID(ctx context.Context, id string) (model.Reservation, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+reservationColumns+" FROM reservations WHERE id = ? LIMIT 1", id)
	var res model.Reservation
	var resDate, retDate, created, updated sql.NullTime
	if err := row.Scan(&res.ID, &res.UserID, &res.BookID, &resDate, &retDate, &created, &updated); err != nil {
		return model.Reservation{}, err
	}
	fillReservationTimes(&res, resDate, retDate, created, updated)
	return res, nil
}

// Create inserts a reservation under a fresh UUID.  The user and book
// foreign keys are enforced by the database; a violation is surfaced as
// ErrBadRelation.
func (r *ReservationRepo) Create(ctx context.Context, res *model.Reservation) error {
	res.ID = uuid.NewString()
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO reservations (id, user_id, book_id, reservation_date, return_date) VALUES (?,?,?,?,?)",
		res.ID, res.UserID, res.BookID, res.ReservationDate, res.ReturnDate)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1452") {
			return ErrBadRelation
		}
		return err
	}
	return nil
}

// Update persists all mutable fields of a previously loaded reservation
// and stamps updated_at.
func (r *ReservationRepo) Update(ctx context.Context, res *model.Reservation) error {
	now := time.Now().UTC()
	_, err := r.DB.ExecContext(ctx,
		"UPDATE reservations SET user_id=?, book_id=?, reservation_date=?, return_date=?, updated_at=? WHERE id=?",
		res.UserID, res.BookID, res.ReservationDate, res.ReturnDate, now, res.ID)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1452") {
			return ErrBadRelation
		}
		return err
	}
	res.UpdatedAt = &now
	return nil
}

// Delete removes a reservation by id.  sql.ErrNoRows is returned when
// it did not exist.
func (r *ReservationRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM reservations WHERE id = ?", id)
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

func fillReservationTimes(res *model.Reservation, resDate, retDate, created, updated sql.NullTime) {
	if resDate.Valid {
		t := resDate.Time
		res.ReservationDate = &t
	}
	if retDate.Valid {
		t := retDate.Time
		res.ReturnDate = &t
	}
	if created.Valid {
		t := created.Time
		res.CreatedAt = &t
	}
	if updated.Valid {
		t := updated.Time
		res.UpdatedAt = &t
	}
}
