package model

import "time"

// User represents a registered account. ResetToken and ResetExpires are set
// together while a password recovery is pending and cleared together when the
// token is consumed.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	ResetToken   *string
	ResetExpires *time.Time
	CreatedAt    time.Time
}
