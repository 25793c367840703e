package repository

import "errors"

// Store-level sentinel errors. Uniqueness violations are reported by the
// database constraint, never by a preceding read, so concurrent writers cannot
// both succeed.
var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrDuplicateSlot  = errors.New("slot already booked")
)
