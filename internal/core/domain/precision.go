package domain

import (
	"fmt"
	"math"
	"time"

	"github.com/yndnr/ut-go/pkg/lookup"
)

// Precision is the unit a raw timestamp counts since the Unix epoch.
type Precision int

const (
	PrecisionSecond Precision = iota
	PrecisionMillisecond
	PrecisionMicrosecond
	PrecisionNanosecond
)

// DefaultPrecision applies when neither flags nor configuration name one.
const DefaultPrecision = PrecisionSecond

// Representable instants are limited to years 0001..9999 so that every
// formatted year has exactly four digits.
const (
	MinUnixSeconds int64 = -62135596800 // 0001-01-01T00:00:00Z
	MaxUnixSeconds int64 = 253402300799 // 9999-12-31T23:59:59Z
)

var precisions = []Precision{
	PrecisionSecond,
	PrecisionMillisecond,
	PrecisionMicrosecond,
	PrecisionNanosecond,
}

// Precisions returns every precision in declaration order.
func Precisions() []Precision {
	out := make([]Precision, len(precisions))
	copy(out, precisions)
	return out
}

// String returns the canonical name used for lookup.
func (p Precision) String() string {
	switch p {
	case PrecisionSecond:
		return "second"
	case PrecisionMillisecond:
		return "millisecond"
	case PrecisionMicrosecond:
		return "microsecond"
	case PrecisionNanosecond:
		return "nanosecond"
	default:
		return fmt.Sprintf("Precision(%d)", int(p))
	}
}

// Scale returns the number of units per second.
func (p Precision) Scale() int64 {
	switch p {
	case PrecisionMillisecond:
		return 1_000
	case PrecisionMicrosecond:
		return 1_000_000
	case PrecisionNanosecond:
		return 1_000_000_000
	default:
		return 1
	}
}

// PreferredFormat returns the time layout used to display instants
// parsed under p.
func (p Precision) PreferredFormat() string {
	switch p {
	case PrecisionMillisecond:
		return "2006-01-02 15:04:05.000"
	case PrecisionMicrosecond:
		return "2006-01-02 15:04:05.000000"
	case PrecisionNanosecond:
		return "2006-01-02 15:04:05.000000000"
	default:
		return "2006-01-02 15:04:05"
	}
}

// Format renders t with the preferred layout of p.
func (p Precision) Format(t time.Time) string {
	return t.Format(p.PreferredFormat())
}

// split converts raw units into whole seconds and a non-negative
// nanosecond remainder. Flooring keeps pre-epoch values exact.
func (p Precision) split(raw int64) (sec, nsec int64) {
	scale := p.Scale()
	sec, rem := raw/scale, raw%scale
	if rem < 0 {
		sec--
		rem += scale
	}
	return sec, rem * (1_000_000_000 / scale)
}

// ParseTimestamp interprets raw as a count of p units since the epoch and
// returns the instant in loc. The conversion is exact for every int64 at
// millisecond and finer precisions; at second precision callers should
// check CheckRange first, since seconds near the int64 limits cannot be
// represented by time.Time.
func (p Precision) ParseTimestamp(loc *time.Location, raw int64) time.Time {
	sec, nsec := p.split(raw)
	if loc == nil {
		loc = time.UTC
	}
	return time.Unix(sec, nsec).In(loc)
}

// CheckRange reports ErrTimestampOutOfRange when raw, read under p, falls
// outside years 0001..9999.
func (p Precision) CheckRange(raw int64) error {
	sec, _ := p.split(raw)
	if sec < MinUnixSeconds || sec > MaxUnixSeconds {
		return ErrTimestampOutOfRange.WithDetails(
			fmt.Sprintf("%d %ss is outside years 0001..9999", raw, p))
	}
	return nil
}

// Timestamp converts t back to a raw count of p units since the epoch,
// flooring any finer fraction.
func (p Precision) Timestamp(t time.Time) (int64, error) {
	sec := t.Unix()
	if sec < MinUnixSeconds || sec > MaxUnixSeconds {
		return 0, ErrTimestampOutOfRange.WithDetails(t.UTC().Format(time.RFC3339))
	}

	switch p {
	case PrecisionMillisecond:
		return t.UnixMilli(), nil
	case PrecisionMicrosecond:
		return t.UnixMicro(), nil
	case PrecisionNanosecond:
		// Only nanoseconds can leave the int64 range inside 0001..9999.
		if t.Before(minNanoInstant) || t.After(maxNanoInstant) {
			return 0, ErrTimestampOutOfRange.WithDetails(
				fmt.Sprintf("%s does not fit in int64 nanoseconds", t.UTC().Format(time.RFC3339Nano)))
		}
		return t.UnixNano(), nil
	default:
		return sec, nil
	}
}

var (
	minNanoInstant = time.Unix(0, math.MinInt64)
	maxNanoInstant = time.Unix(0, math.MaxInt64)
)

// FindPrecision resolves an exact, case-sensitive precision name.
func FindPrecision(name string) (Precision, error) {
	p, err := lookup.ByName("precision", name, precisions)
	if err != nil {
		return p, ErrPrecision.WithCause(err)
	}
	return p, nil
}

// FindPrecisionOpt resolves an optional precision name. A nil name yields
// (0, false, nil).
func FindPrecisionOpt(name *string) (Precision, bool, error) {
	p, ok, err := lookup.ByNameOpt("precision", name, precisions)
	if err != nil {
		return p, false, ErrPrecision.WithCause(err)
	}
	return p, ok, nil
}

// FindPrecisionFold resolves a precision name ignoring case. It is meant
// for configuration values, not for command-line input.
func FindPrecisionFold(name string) (Precision, error) {
	p, err := lookup.ByNameFold("precision", name, precisions)
	if err != nil {
		return p, ErrPrecision.WithCause(err)
	}
	return p, nil
}
