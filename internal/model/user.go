package model

import "time"

// User represents an application user record as stored in the `users`
// table.  The Password field holds the one-way digest of the account
// password, never the plaintext; it is excluded from JSON responses.
//
// Fields:
//
//	ID        – UUID primary key, string encoded.  Doubles as the JWT subject.
//	Email     – unique email address, the login identifier.
//	Password  – hex digest of the password (see utils.HashPassword).
//	Active    – whether the account is active.
//	Name      – optional display name.
//	Phone     – optional phone number.
//	Address   – optional postal address.
//	CreatedAt – timestamp of creation.
//	UpdatedAt – timestamp of last update (nullable).
type User struct {
	ID        string     `json:"id"`         // users.id
	Email     string     `json:"email"`      // users.email
	Password  string     `json:"-"`          // users.password (digest, never serialized)
	Active    bool       `json:"active"`     // users.active
	Name      *string    `json:"name"`       // users.name (nullable)
	Phone     *string    `json:"phone"`      // users.phone (nullable)
	Address   *string    `json:"address"`    // users.address (nullable)
	CreatedAt *time.Time `json:"created_at"` // users.created_at
	UpdatedAt *time.Time `json:"updated_at"` // users.updated_at
}
