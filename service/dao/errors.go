package dao

import "errors"

// Store errors shared by every record kind kept behind Service.
var (
	// ErrNotFound is returned when no record is stored under the key.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidID is returned when a record has an empty key, e.g. a session without ID.
	ErrInvalidID = errors.New("record key is empty")
	// ErrNilEntity is returned when saving a nil record.
	ErrNilEntity = errors.New("record is nil")
)
