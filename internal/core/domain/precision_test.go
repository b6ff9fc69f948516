package domain

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yndnr/ut-go/pkg/lookup"
)

func TestFindPrecision(t *testing.T) {
	tests := []struct {
		name string
		want Precision
	}{
		{"second", PrecisionSecond},
		{"millisecond", PrecisionMillisecond},
		{"microsecond", PrecisionMicrosecond},
		{"nanosecond", PrecisionNanosecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindPrecision(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			name := tt.name
			opt, ok, err := FindPrecisionOpt(&name)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, got, opt)
		})
	}
}

func TestFindPrecision_NotFound(t *testing.T) {
	for _, name := range []string{"", "sec", "Second", "MILLISECOND", "hour", "ms"} {
		t.Run(name, func(t *testing.T) {
			_, err := FindPrecision(name)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrPrecision)
			assert.ErrorIs(t, err, lookup.ErrNotFound)
			for _, p := range Precisions() {
				assert.Contains(t, err.Error(), p.String())
			}
		})
	}
}

func TestFindPrecisionOpt_Nil(t *testing.T) {
	p, ok, err := FindPrecisionOpt(nil)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, Precision(0), p)
}

func TestFindPrecisionFold(t *testing.T) {
	got, err := FindPrecisionFold("MilliSecond")
	require.NoError(t, err)
	assert.Equal(t, PrecisionMillisecond, got)

	_, err = FindPrecisionFold("minute")
	assert.ErrorIs(t, err, ErrPrecision)
}

func TestPrecisions_Closed(t *testing.T) {
	all := Precisions()
	require.Len(t, all, 4)

	seen := make(map[string]bool)
	for _, p := range all {
		assert.False(t, seen[p.String()], "duplicate name %q", p)
		seen[p.String()] = true
	}

	// Callers get a copy.
	all[0] = PrecisionNanosecond
	assert.Equal(t, PrecisionSecond, Precisions()[0])
}

func TestPrecision_ParseTimestamp(t *testing.T) {
	tests := []struct {
		name      string
		precision Precision
		raw       int64
		want      string
	}{
		{"epoch", PrecisionSecond, 0, "1970-01-01 00:00:00"},
		{"one second before epoch", PrecisionSecond, -1, "1969-12-31 23:59:59"},
		{"seconds", PrecisionSecond, 1234567890, "2009-02-13 23:31:30"},
		{"millis", PrecisionMillisecond, 1234567890123, "2009-02-13 23:31:30.123"},
		{"millis before epoch", PrecisionMillisecond, -1, "1969-12-31 23:59:59.999"},
		{"micros", PrecisionMicrosecond, 1234567890123456, "2009-02-13 23:31:30.123456"},
		{"micros before epoch", PrecisionMicrosecond, -1500000, "1969-12-31 23:59:58.500000"},
		{"nanos", PrecisionNanosecond, 1234567890123456789, "2009-02-13 23:31:30.123456789"},
		{"nanos min int64", PrecisionNanosecond, math.MinInt64, "1677-09-21 00:12:43.145224192"},
		{"nanos max int64", PrecisionNanosecond, math.MaxInt64, "2262-04-11 23:47:16.854775807"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.precision.ParseTimestamp(time.UTC, tt.raw)
			assert.Equal(t, tt.want, tt.precision.Format(got))
		})
	}
}

func TestPrecision_ParseTimestamp_Scale(t *testing.T) {
	oneSecond := PrecisionSecond.ParseTimestamp(time.UTC, 1)

	assert.True(t, oneSecond.Equal(PrecisionMillisecond.ParseTimestamp(time.UTC, 1_000)))
	assert.True(t, oneSecond.Equal(PrecisionMicrosecond.ParseTimestamp(time.UTC, 1_000_000)))
	assert.True(t, oneSecond.Equal(PrecisionNanosecond.ParseTimestamp(time.UTC, 1_000_000_000)))
}

func TestPrecision_ParseTimestamp_Location(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	got := PrecisionSecond.ParseTimestamp(tokyo, 0)
	assert.Equal(t, "1970-01-01 09:00:00", PrecisionSecond.Format(got))
	assert.Equal(t, tokyo, got.Location())

	// nil location falls back to UTC
	got = PrecisionSecond.ParseTimestamp(nil, 0)
	assert.Equal(t, time.UTC, got.Location())
}

func TestPrecision_CheckRange(t *testing.T) {
	tests := []struct {
		name      string
		precision Precision
		raw       int64
		wantErr   bool
	}{
		{"max second", PrecisionSecond, MaxUnixSeconds, false},
		{"past max second", PrecisionSecond, MaxUnixSeconds + 1, true},
		{"min second", PrecisionSecond, MinUnixSeconds, false},
		{"before min second", PrecisionSecond, MinUnixSeconds - 1, true},
		{"int64 max seconds", PrecisionSecond, math.MaxInt64, true},
		{"int64 min seconds", PrecisionSecond, math.MinInt64, true},
		{"max millis", PrecisionMillisecond, MaxUnixSeconds*1_000 + 999, false},
		{"past max millis", PrecisionMillisecond, (MaxUnixSeconds + 1) * 1_000, true},
		{"min millis", PrecisionMillisecond, MinUnixSeconds * 1_000, false},
		{"before min millis", PrecisionMillisecond, MinUnixSeconds*1_000 - 1, true},
		{"int64 max micros", PrecisionMicrosecond, math.MaxInt64, true},
		{"int64 max nanos", PrecisionNanosecond, math.MaxInt64, false},
		{"int64 min nanos", PrecisionNanosecond, math.MinInt64, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.precision.CheckRange(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrTimestampOutOfRange)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPrecision_CheckRange_Formats(t *testing.T) {
	max := PrecisionSecond.ParseTimestamp(time.UTC, MaxUnixSeconds)
	assert.Equal(t, "9999-12-31 23:59:59", PrecisionSecond.Format(max))

	min := PrecisionSecond.ParseTimestamp(time.UTC, MinUnixSeconds)
	assert.Equal(t, "0001-01-01 00:00:00", PrecisionSecond.Format(min))
}

func TestPrecision_Timestamp(t *testing.T) {
	instant := time.Date(2009, 2, 13, 23, 31, 30, 123456789, time.UTC)

	tests := []struct {
		precision Precision
		want      int64
	}{
		{PrecisionSecond, 1234567890},
		{PrecisionMillisecond, 1234567890123},
		{PrecisionMicrosecond, 1234567890123456},
		{PrecisionNanosecond, 1234567890123456789},
	}

	for _, tt := range tests {
		t.Run(tt.precision.String(), func(t *testing.T) {
			got, err := tt.precision.Timestamp(instant)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			back := tt.precision.ParseTimestamp(time.UTC, got)
			want := instant.Truncate(time.Second / time.Duration(tt.precision.Scale()))
			assert.True(t, want.Equal(back), "round trip: got %v, want %v", back, want)
		})
	}
}

func TestPrecision_Timestamp_OutOfRange(t *testing.T) {
	_, err := PrecisionNanosecond.Timestamp(time.Date(3000, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrTimestampOutOfRange)

	_, err = PrecisionSecond.Timestamp(time.Date(10000, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrTimestampOutOfRange)

	got, err := PrecisionSecond.Timestamp(time.Date(3000, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, int64(32503680000), got)
}

func TestPrecision_PreferredFormat(t *testing.T) {
	tests := []struct {
		precision Precision
		want      string
	}{
		{PrecisionSecond, "2006-01-02 15:04:05"},
		{PrecisionMillisecond, "2006-01-02 15:04:05.000"},
		{PrecisionMicrosecond, "2006-01-02 15:04:05.000000"},
		{PrecisionNanosecond, "2006-01-02 15:04:05.000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.precision.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.precision.PreferredFormat())
		})
	}
}

func TestPrecision_String_Unknown(t *testing.T) {
	assert.Equal(t, "Precision(42)", Precision(42).String())
	assert.Equal(t, int64(1), Precision(42).Scale())
}
