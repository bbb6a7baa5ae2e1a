package model

import "time"

// Book represents a row in the `books` table.  Titles are unique so the
// same edition cannot be catalogued twice.  Available reflects whether
// the book can currently be reserved.
//
// Fields:
//
//	ID                – UUID primary key, string encoded.
//	Title             – unique book title.
//	Author            – author name.
//	YearOfPublication – publication year.
//	Available         – whether the book can be reserved.
//	CreatedAt         – timestamp of creation.
//	UpdatedAt         – timestamp of last update (nullable).
type Book struct {
	ID                string     `json:"id"`                  // books.id
	Title             string     `json:"title"`               // books.title
	Author            string     `json:"author"`              // books.author
	YearOfPublication int        `json:"year_of_publication"` // books.year_of_publication
	Available         bool       `json:"available"`           // books.available
	CreatedAt         *time.Time `json:"created_at"`          // books.created_at
	UpdatedAt         *time.Time `json:"updated_at"`          // books.updated_at
}
