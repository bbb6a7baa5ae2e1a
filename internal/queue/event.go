// Package queue defines message payloads exchanged over the message broker.
package queue

// ReservationCreatedEvent is published when a reservation is successfully
// inserted.  It carries enough information for downstream consumers to
// log or notify without querying the primary database.  Timestamps are
// RFC3339 strings; absent dates are empty.
type ReservationCreatedEvent struct {
	ReservationID   string `json:"reservation_id"`
	UserID          string `json:"user_id"`
	BookID          string `json:"book_id"`
	ReservationDate string `json:"reservation_date,omitempty"`
	ReturnDate      string `json:"return_date,omitempty"`
	CreatedAt       string `json:"created_at"`
}
