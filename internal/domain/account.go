package domain

import "time"

// Account is the domain entity for a registered user account.
// PasswordDigest is opaque and never serialized outward.
type Account struct {
	ID             int64
	Username       string
	PasswordDigest string
	CreatedAt      time.Time
}
