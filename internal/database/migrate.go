package database

import (
	"context"
	"database/sql"
	"fmt"
)

// schema holds the idempotent DDL for the three application tables.
// Reservations carry foreign keys to both users and books; book titles
// and user emails are unique.  Statements run in order because the
// reservations table references the other two.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS books (
		id CHAR(36) NOT NULL PRIMARY KEY,
		title VARCHAR(255) NOT NULL UNIQUE,
		author VARCHAR(255) NOT NULL,
		year_of_publication INT NOT NULL,
		available BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMP NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NULL
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS users (
		id CHAR(36) NOT NULL PRIMARY KEY,
		email VARCHAR(255) NOT NULL UNIQUE,
		password VARCHAR(255) NOT NULL,
		active BOOLEAN NOT NULL DEFAULT TRUE,
		name VARCHAR(255) NULL,
		phone VARCHAR(64) NULL,
		address VARCHAR(255) NULL,
		created_at TIMESTAMP NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NULL
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS reservations (
		id CHAR(36) NOT NULL PRIMARY KEY,
		user_id CHAR(36) NOT NULL,
		book_id CHAR(36) NOT NULL,
		reservation_date TIMESTAMP NULL,
		return_date TIMESTAMP NULL,
		created_at TIMESTAMP NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NULL,
		CONSTRAINT fk_reservations_user FOREIGN KEY (user_id) REFERENCES users (id),
		CONSTRAINT fk_reservations_book FOREIGN KEY (book_id) REFERENCES books (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// seedAdmin inserts the bootstrap account so a fresh database is usable
// immediately.  The stored digest is the hash of "admin".  INSERT IGNORE
// keeps the statement idempotent across restarts.
const seedAdmin = `INSERT IGNORE INTO users (id, email, password, active)
	VALUES (UUID(), 'admin@localhost', '21232f297a57a5a743894a0e4a801fc3', TRUE)`

// Migrate creates the application tables if they do not exist and seeds
// the admin user.  It is called once at startup, before the HTTP server
// begins accepting requests.
func Migrate(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate statement %d: %w", i, err)
		}
	}
	if _, err := db.ExecContext(ctx, seedAdmin); err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}
	return nil
}
