package store

import "errors"

var (
	ErrEntryExists         = errors.New("entry already exists")
	ErrRecordNotFound      = errors.New("record not found")
	ErrConstraintViolation = errors.New("database constraint violation")
)
