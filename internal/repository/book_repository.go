package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/library-reservation/internal/model"
)

type BookRepo struct{ DB *sql.DB }

func NewBookRepo(db *sql.DB) *BookRepo { return &BookRepo{DB: db} }

const bookColumns = "id,title,author,year_of_publication,available,created_at,updated_at"

// List returns every book in the catalogue.
func (r *BookRepo) List(ctx context.Context) ([]model.Book, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT "+bookColumns+" FROM books ORDER BY title")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	books := make([]model.Book, 0)
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

// GetByID fetches a book by id.
func (r *BookRepo) GetByID(ctx context.Context, id string) (model.Book, error) {
	row := r.DB.QueryRowContext(ctx, "SELECT "+bookColumns+" FROM books WHERE id = ? LIMIT 1", id)
	var b model.Book
	var created, updated sql.NullTime
	if err := row.Scan(&b.ID, &b.Title, &b.Author, &b.YearOfPublication, &b.Available, &created, &updated); err != nil {
		return model.Book{}, err
	}
	assignTimes(&b.CreatedAt, &b.UpdatedAt, created, updated)
	return b, nil
}

// Create inserts a book under a fresh UUID.
func (r *BookRepo) Create(ctx context.Context, b *model.Book) error {
	b.ID = uuid.NewString()
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO books (id, title, author, year_of_publication, available) VALUES (?,?,?,?,?)",
		b.ID, b.Title, b.Author, b.YearOfPublication, b.Available)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrTitleExists
		}
		return err
	}
	return nil
}

// Update persists all mutable fields of a previously loaded book and
// stamps updated_at.
func (r *BookRepo) Update(ctx context.Context, b *model.Book) error {
	now := time.Now().UTC()
	_, err := r.DB.ExecContext(ctx,
		"UPDATE books SET title=?, author=?, year_of_publication=?, available=?, updated_at=? WHERE id=?",
		b.Title, b.Author, b.YearOfPublication, b.Available, now, b.ID)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrTitleExists
		}
		return err
	}
	b.UpdatedAt = &now
	return nil
}

// Delete removes a book by id.  sql.ErrNoRows is returned when the book
// did not exist.
func (r *BookRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM books WHERE id = ?", id)
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

func scanBook(rows *sql.Rows) (model.Book, error) {
	var b model.Book
	var created, updated sql.NullTime
	if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.YearOfPublication, &b.Available, &created, &updated); err != nil {
		return model.Book{}, err
	}
	assignTimes(&b.CreatedAt, &b.UpdatedAt, created, updated)
	return b, nil
}

// assignTimes converts nullable DB timestamps into the optional pointer
// fields used on the models.
func assignTimes(createdDst, updatedDst **time.Time, created, updated sql.NullTime) {
	if created.Valid {
		t := created.Time
		*createdDst = &t
	}
	if updated.Valid {
		t := updated.Time
		*updatedDst = &t
	}
}
