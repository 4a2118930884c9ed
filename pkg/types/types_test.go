package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "plain HH:MM", input: "19:00", want: "19:00"},
		{name: "with seconds", input: "19:00:00", want: "19:00"},
		{name: "pads hour", input: "9:05", want: "09:05"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "last minute", input: "23:59", want: "23:59"},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "12:60", wantErr: true},
		{name: "garbage", input: "noon", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeStringArithmetic(t *testing.T) {
	ts, err := NewTimeStringFromString("19:00")
	require.NoError(t, err)

	later, err := ts.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("20:30"), later)

	diff, err := later.DiffMinutes(ts)
	require.NoError(t, err)
	assert.Equal(t, 90, diff)

	diff, err = ts.DiffMinutes(later)
	require.NoError(t, err)
	assert.Equal(t, -90, diff)

	assert.True(t, ts.IsBefore(later))
	assert.True(t, later.IsAfter(ts))
	assert.False(t, ts.IsBefore(ts))
	assert.False(t, ts.IsAfter(ts))
}

func TestTimeStringAddMinutesRejectsMidnightWrap(t *testing.T) {
	ts, err := NewTimeStringFromString("23:30")
	require.NoError(t, err)

	_, err = ts.AddMinutes(45)
	assert.Error(t, err, "operating hours never cross midnight")

	_, err = ts.AddMinutes(-24 * 60)
	assert.Error(t, err)
}

func TestParseDateString(t *testing.T) {
	d, err := ParseDateString("2025-05-08")
	require.NoError(t, err)
	assert.Equal(t, DateString("2025-05-08"), d)

	_, err = ParseDateString("2025-13-01")
	assert.Error(t, err)

	_, err = ParseDateString("08.05.2025")
	assert.Error(t, err)

	_, err = ParseDateString("")
	assert.Error(t, err)
}

func TestDateStringRoundTrip(t *testing.T) {
	d := NewDateString(time.Date(2025, time.May, 8, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, DateString("2025-05-08"), d, "time-of-day must not leak into the key")

	wd, err := d.Weekday()
	require.NoError(t, err)
	assert.Equal(t, time.Thursday, wd)

	next, err := d.AddDays(24)
	require.NoError(t, err)
	assert.Equal(t, DateString("2025-06-01"), next)

	prev, err := d.AddDays(-8)
	require.NoError(t, err)
	assert.Equal(t, DateString("2025-04-30"), prev)

	assert.True(t, prev.Before(d))
	assert.False(t, d.Before(prev))
}

func TestDateStringScan(t *testing.T) {
	var d DateString
	require.NoError(t, d.Scan(time.Date(2025, time.May, 8, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, DateString("2025-05-08"), d)

	require.NoError(t, d.Scan("2025-05-09"))
	assert.Equal(t, DateString("2025-05-09"), d)

	assert.Error(t, d.Scan(42))
}

func TestTimeStringScan(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.Scan("18:30:00"))
	assert.Equal(t, TimeString("18:30"), ts)

	require.NoError(t, ts.Scan(time.Date(0, 1, 1, 9, 15, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("09:15"), ts)

	assert.Error(t, ts.Scan(3.14))
}
