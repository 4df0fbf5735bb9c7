package domain

import (
	"strings"
	"time"
)

// Apartment types.
const (
	TypeRent = "rent"
	TypeSale = "sale"
)

// Occupancy statuses.
const (
	StatusEmpty  = "empty"
	StatusRented = "rented"
)

// householdDoneMark signals "household tasks done". It is stored as a
// prefix of the household note itself, so old rows stay readable.
const householdDoneMark = "✔"

// Apartment is the domain entity for a listing record.
// Not tied to Gin, Postgres or Redis.
type Apartment struct {
	ID          int64
	Type        string
	Agent       string
	Number      string
	Description string
	Status      string
	Household   string
	Photo       string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HouseholdDone reports whether the household note carries the done mark.
func HouseholdDone(household string) bool {
	return strings.HasPrefix(strings.TrimSpace(household), householdDoneMark)
}

// SetHouseholdDone returns the household note with the done mark added or
// removed. Both directions are idempotent: marking a marked note or
// stripping an unmarked one returns the input unchanged, and the mark is
// never duplicated.
func SetHouseholdDone(household string, done bool) string {
	trimmed := strings.TrimSpace(household)
	marked := strings.HasPrefix(trimmed, householdDoneMark)
	switch {
	case done && !marked:
		return strings.TrimSpace(householdDoneMark + " " + trimmed)
	case !done && marked:
		return strings.TrimSpace(strings.TrimPrefix(trimmed, householdDoneMark))
	default:
		return household
	}
}
