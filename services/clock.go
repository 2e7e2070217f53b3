// services/clock.go - Clock and time zone localization
package services

import (
	"fmt"
	"time"
)

// DefaultTimeZone is used when a tournament row carries no zone name.
// A fixed zone, not the server zone, so behavior does not depend on
// where the binary happens to run.
const DefaultTimeZone = "America/New_York"

// Clock supplies "now". Handlers and services take it as a dependency
// so tests can pin time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the system time in UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// FixedClock always returns the same instant.
type FixedClock struct {
	Instant time.Time
}

func (c FixedClock) Now() time.Time {
	return c.Instant.UTC()
}

// LoadZone resolves an IANA zone name, falling back to DefaultTimeZone
// for the empty string. An unresolvable name is a configuration error
// on the tournament row, reported as ErrUnknownZone.
func LoadZone(name string) (*time.Location, error) {
	if name == "" {
		name = DefaultTimeZone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownZone, name)
	}
	return loc, nil
}

// Localize combines a civil date and an optional "HH:MM" time-of-day
// in the named zone and returns the UTC instant. A nil time-of-day
// means midnight. The zone's offset at that civil moment applies,
// seasonal shifts included.
func Localize(date time.Time, timeOfDay *string, zoneName string) (time.Time, error) {
	loc, err := LoadZone(zoneName)
	if err != nil {
		return time.Time{}, err
	}

	hour, minute := 0, 0
	if timeOfDay != nil && *timeOfDay != "" {
		parsed, err := time.Parse("15:04", *timeOfDay)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid time of day %q: %w", *timeOfDay, err)
		}
		hour, minute = parsed.Hour(), parsed.Minute()
	}

	local := time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, loc)
	return local.UTC(), nil
}
