package repository

import "errors"

// Sentinel errors surfaced by the repositories.  Handlers translate these
// into HTTP status codes; sql.ErrNoRows passes through untouched for
// "record does not exist".
var (
	ErrEmailExists = errors.New("email already exists")
	ErrTitleExists = errors.New("title already exists")
	ErrBadRelation = errors.New("referenced user or book does not exist")
)
