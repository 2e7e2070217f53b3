// services/errors.go - Typed errors shared across the service layer
package services

import "errors"

var (
	// ErrDeadlinePassed is returned when a pick is submitted at or
	// after the tournament's start instant.
	ErrDeadlinePassed = errors.New("pick deadline has passed")

	// ErrUnknownZone is returned when a tournament references a time
	// zone name the zone database cannot resolve. Every computation
	// touching that tournament fails with it; nothing falls back
	// silently.
	ErrUnknownZone = errors.New("unknown time zone")

	// ErrWriteConflict is returned when two submissions for the same
	// member and tournament raced and the retry also lost.
	ErrWriteConflict = errors.New("pick write conflict")

	// ErrStaleTimestamp is returned when a new ledger row failed to
	// advance past the previous row's timestamp. The write is treated
	// as not having happened.
	ErrStaleTimestamp = errors.New("pick timestamp did not advance")

	// ErrNotFound is returned when a member, league, or tournament
	// reference does not resolve.
	ErrNotFound = errors.New("not found")
)
