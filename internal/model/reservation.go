package model

import "time"

// Reservation records that a user has a specific book on loan.  It
// references both the user and the book by foreign key.
//
// Fields:
//
//	ID              – UUID primary key, string encoded.
//	UserID          – user holding the reservation.
//	BookID          – book being reserved.
//	ReservationDate – when the loan started (nullable).
//	ReturnDate      – when the book is due back (nullable).
//	CreatedAt       – timestamp of creation.
//	UpdatedAt       – timestamp of last update (nullable).
type Reservation struct {
	ID              string     `json:"id"`               // reservations.id
	UserID          string     `json:"user_id"`          // reservations.user_id
	BookID          string     `json:"book_id"`          // reservations.book_id
	ReservationDate *time.Time `json:"reservation_date"` // reservations.reservation_date
	ReturnDate      *time.Time `json:"return_date"`      // reservations.return_date
	CreatedAt       *time.Time `json:"created_at"`       // reservations.created_at
	UpdatedAt       *time.Time `json:"updated_at"`       // reservations.updated_at
}
