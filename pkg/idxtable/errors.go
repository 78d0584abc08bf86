package idxtable

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidPool is returned for a pool that is not a set of integers.
	ErrInvalidPool = errors.New("invalid id pool")
	// ErrOutOfPool is returned for an id outside of the pool of the table.
	ErrOutOfPool = errors.New("id out of pool")
	ErrExists    = errors.New("entry already exists")
	ErrNotFound  = errors.New("entry not found")
	// ErrExhausted is returned when no free ids are left to satisfy a claim.
	ErrExhausted = errors.New("no free entry found")
)
