// Package clock formats the footer's local time and drives owner-scoped
// periodic ticks.
package clock

import (
	"fmt"
	"time"

	// Embedded zone data so the fixed display zone resolves on hosts without
	// a tz database.
	_ "time/tzdata"
)

const (
	// DefaultZone is the display zone of the footer clock.
	DefaultZone = "Asia/Kolkata"

	// Layout is the 24-hour display format. It always renders 8 columns.
	Layout = "15:04:05"

	// Placeholder is shown before the first tick arrives.
	Placeholder = "--:--:--"
)

// Clock renders wall-clock time in a fixed zone.
type Clock struct {
	loc *time.Location
	now func() time.Time
}

// New returns a clock for the named IANA zone. An empty zone selects
// DefaultZone.
func New(zone string) (*Clock, error) {
	if zone == "" {
		zone = DefaultZone
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("load time zone %q: %w", zone, err)
	}
	return &Clock{loc: loc, now: time.Now}, nil
}

// Must is like New but panics on an unknown zone.
func Must(zone string) *Clock {
	c, err := New(zone)
	if err != nil {
		panic(err)
	}
	return c
}

// Location returns the display zone.
func (c *Clock) Location() *time.Location {
	return c.loc
}

// Format renders t as HH:MM:SS in the display zone.
func (c *Clock) Format(t time.Time) string {
	if t.IsZero() {
		return Placeholder
	}
	return t.In(c.loc).Format(Layout)
}

// Now renders the current time.
func (c *Clock) Now() string {
	return c.Format(c.now())
}
