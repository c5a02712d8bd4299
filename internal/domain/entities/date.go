package entities

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

const (
	dateLayout     = "02-01-2006"
	dateTimeLayout = "02-01-2006 - 15:04"
)

var (
	// ErrInvalidDateFormat is returned when the input is not shaped like DD-MM-YYYY.
	ErrInvalidDateFormat = errors.New("invalid date format")
	// ErrNonexistentDate is returned for well-formed input naming no calendar day, like 31-02-2024.
	ErrNonexistentDate = errors.New("date does not exist")
	// ErrFutureDate is returned when the input date lies after the current moment.
	ErrFutureDate = errors.New("date is in the future")
)

var inputDatePattern = regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`)

// FormatDate renders t as DD-MM-YYYY, appending " - HH:MM" when withTime is set.
// The location carried by t is used as is.
func FormatDate(t time.Time, withTime bool) string {
	if withTime {
		return t.Format(dateTimeLayout)
	}
	return t.Format(dateLayout)
}

// Target selects which publish dates a filter keeps.
type Target struct {
	All bool
	Day time.Time
}

// AllDates is the target matching every resolved entry.
func AllDates() Target {
	return Target{All: true}
}

// OnDay returns a target matching the calendar day of day.
func OnDay(day time.Time) Target {
	return Target{Day: day}
}

// Label renders the target for user-facing messages.
func (t Target) Label() string {
	if t.All {
		return "any date"
	}
	return FormatDate(t.Day, false)
}

// ParseInputDate turns a line typed by the user into a filter target.
// Only empty input selects every date. Anything else, whitespace included,
// must be a DD-MM-YYYY calendar date in loc that does not lie after now.
func ParseInputDate(input string, loc *time.Location, now time.Time) (Target, error) {
	if input == "" {
		return AllDates(), nil
	}

	if !inputDatePattern.MatchString(input) {
		return Target{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, input)
	}

	day, err := time.ParseInLocation(dateLayout, input, loc)
	if err != nil {
		return Target{}, fmt.Errorf("%w: %q", ErrNonexistentDate, input)
	}

	if day.After(now) {
		return Target{}, fmt.Errorf("%w: %q", ErrFutureDate, input)
	}

	return OnDay(day), nil
}

// SameDay reports whether a and b fall on the same calendar day in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}
