package mealplan

import (
	"fmt"
	"time"
)

// dateLayout is the only accepted date form.
const dateLayout = "2006-01-02"

// Date is a calendar day with no time-of-day or zone component.
type Date struct {
	t time.Time
}

// ParseDate parses a strict YYYY-MM-DD date. Out-of-range components
// (e.g. 2022-15-22) and loose forms (2022-1-2) fail with ErrInvalidDate;
// there is no best-effort guessing.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	// time.Parse normalizes some near-miss inputs; require an exact
	// round-trip so only canonical dates are accepted.
	if t.Format(dateLayout) != s {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date{t: t}, nil
}

// MustDate is a test and literal helper that panics on an invalid date.
func MustDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return d.t.Format(dateLayout)
}

// IsZero reports whether the date is the zero value.
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// AddDays returns the date n calendar days later (earlier for negative n).
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// After reports whether d falls after other.
func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

// Equal reports whether two dates are the same calendar day.
func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// DaysSince returns the number of calendar days from other to d.
func (d Date) DaysSince(other Date) int {
	return int(d.t.Sub(other.t) / (24 * time.Hour))
}

// MarshalText encodes the date for TOML serialization.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes a strict YYYY-MM-DD date.
func (d *Date) UnmarshalText(data []byte) error {
	parsed, err := ParseDate(string(data))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DateRange is an inclusive [Start, End] span of calendar days.
type DateRange struct {
	Start Date
	End   Date
}

// NewRange builds the range covering days consecutive dates from start.
func NewRange(start Date, days int) (DateRange, error) {
	if days < 1 {
		return DateRange{}, fmt.Errorf("%w: range must cover at least one day", ErrInvalidRange)
	}
	return DateRange{Start: start, End: start.AddDays(days - 1)}, nil
}

// Validate fails with ErrInvalidRange when start falls after end.
func (r DateRange) Validate() error {
	if r.Start.After(r.End) {
		return fmt.Errorf("%w: %s is after %s", ErrInvalidRange, r.Start, r.End)
	}
	return nil
}

// Days returns the number of days covered by the range.
func (r DateRange) Days() int {
	return r.End.DaysSince(r.Start) + 1
}

// Contains reports whether d falls within the range.
func (r DateRange) Contains(d Date) bool {
	return !d.t.Before(r.Start.t) && !d.t.After(r.End.t)
}
