// Package dao defines storage contracts for caller side records such as
// shell sessions. Implementations live in sub packages.
package dao

import "context"

// Service keeps records of type T under keys of type K.
type Service[K comparable, T any] interface {
	// Save stores a copy of t under its key, replacing any previous record.
	Save(ctx context.Context, t *T) error
	// Load returns a copy of the record or ErrNotFound.
	Load(ctx context.Context, id K) (*T, error)
	// Delete removes the record or returns ErrNotFound.
	Delete(ctx context.Context, id K) error
	// List returns copies of the records accepted by every parameter.
	List(ctx context.Context, parameters ...*Parameter) ([]*T, error)
}
