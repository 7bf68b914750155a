package store

import "errors"

var (
	// ErrInvalidID is returned when an operation receives an id that
	// cannot identify an entity (zero or negative).
	ErrInvalidID = errors.New("store: id must be a positive integer")

	// ErrUnknownID is returned by Save when the entity carries an id
	// that is not present in the store. Save never inserts under a
	// caller-chosen id; an unknown id means the caller holds a stale
	// reference.
	ErrUnknownID = errors.New("store: no entity with the given id")
)
