package domain

import (
	"strings"
	"sync"
	"time"

	// Embedded IANA database so named zones resolve on hosts without one.
	_ "time/tzdata"
)

// DateTimeProvider supplies "now" and the relative days derived from it in
// a fixed location. Dates are midnight of the calendar day in Location().
//
// Implementations must keep Tomorrow() == Today()+1 day and
// Yesterday() == Today()-1 day, counted in calendar days of Location().
type DateTimeProvider interface {
	Location() *time.Location
	Now() time.Time
	Today() time.Time
	Tomorrow() time.Time
	Yesterday() time.Time
}

// FixedProvider is a DateTimeProvider frozen at one instant.
type FixedProvider struct {
	now time.Time
	loc *time.Location
}

// NewFixedProvider creates a provider that always reports now, viewed in loc.
// A nil loc means UTC.
func NewFixedProvider(now time.Time, loc *time.Location) *FixedProvider {
	if loc == nil {
		loc = time.UTC
	}
	return &FixedProvider{now: now.In(loc), loc: loc}
}

func (f *FixedProvider) Location() *time.Location { return f.loc }
func (f *FixedProvider) Now() time.Time           { return f.now }
func (f *FixedProvider) Today() time.Time         { return dayOffset(f.now, 0) }
func (f *FixedProvider) Tomorrow() time.Time      { return dayOffset(f.now, 1) }
func (f *FixedProvider) Yesterday() time.Time     { return dayOffset(f.now, -1) }

// SystemProvider reads its clock once, on first use, and answers every
// later query from that reading.
type SystemProvider struct {
	loc   *time.Location
	clock func() time.Time

	once sync.Once
	now  time.Time
}

// SystemOption configures a SystemProvider.
type SystemOption func(*SystemProvider)

// WithClock replaces time.Now as the clock source.
func WithClock(clock func() time.Time) SystemOption {
	return func(s *SystemProvider) {
		s.clock = clock
	}
}

// NewSystemProvider creates a provider backed by the real clock in loc.
// A nil loc means time.Local.
func NewSystemProvider(loc *time.Location, opts ...SystemOption) *SystemProvider {
	if loc == nil {
		loc = time.Local
	}
	s := &SystemProvider{
		loc:   loc,
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *SystemProvider) Location() *time.Location { return s.loc }

func (s *SystemProvider) Now() time.Time {
	s.once.Do(func() {
		s.now = s.clock().In(s.loc)
	})
	return s.now
}

func (s *SystemProvider) Today() time.Time     { return dayOffset(s.Now(), 0) }
func (s *SystemProvider) Tomorrow() time.Time  { return dayOffset(s.Now(), 1) }
func (s *SystemProvider) Yesterday() time.Time { return dayOffset(s.Now(), -1) }

// dayOffset returns midnight of the calendar day days away from t, in
// t's location. time.Date normalizes month and year rollover.
func dayOffset(t time.Time, days int) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+days, 0, 0, 0, 0, t.Location())
}

// LoadLocation resolves a timezone name. "" and "Local" mean the host
// zone, "UTC" means UTC, anything else is an IANA name such as
// "Asia/Tokyo".
func LoadLocation(name string) (*time.Location, error) {
	switch strings.TrimSpace(name) {
	case "", "Local", "local":
		return time.Local, nil
	case "UTC", "utc":
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(strings.TrimSpace(name))
	if err != nil {
		return nil, ErrTimezone.WithDetails(name).WithCause(err)
	}
	return loc, nil
}
