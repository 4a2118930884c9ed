package types

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeString represents a civil time of day in "HH:MM" format.
// It carries no date and no timezone: the value is interpreted in the
// restaurant's local operating day. Values are compared by minute offset
// from midnight, never through time.Time, so differing representations
// ("19:00" vs "19:00:00") cannot produce mismatches.
type TimeString string

// NewTimeString creates a TimeString from the clock portion of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// NewTimeStringFromString parses "HH:MM" or "HH:MM:SS" into a TimeString.
// Seconds, when present, are discarded. Malformed input is an error:
// callers must fail fast rather than substitute a default time.
func NewTimeStringFromString(s string) (TimeString, error) {
	h, m, err := splitClock(s)
	if err != nil {
		return "", err
	}
	return TimeString(fmt.Sprintf("%02d:%02d", h, m)), nil
}

// NewTimeStringFromMinutes converts minutes from midnight into a TimeString.
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= 24*60 {
		return "", fmt.Errorf("types: minutes %d outside of a single day", minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

func splitClock(s string) (hour, minute int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, 0, fmt.Errorf("types: invalid time %q, want HH:MM or HH:MM:SS", s)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("types: invalid hour in %q", s)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("types: invalid minute in %q", s)
	}
	if len(parts) == 3 {
		sec, err := strconv.Atoi(parts[2])
		if err != nil || sec < 0 || sec > 59 {
			return 0, 0, fmt.Errorf("types: invalid second in %q", s)
		}
	}
	return hour, minute, nil
}

// Minutes returns the offset from midnight in minutes.
func (t TimeString) Minutes() (int, error) {
	h, m, err := splitClock(string(t))
	if err != nil {
		return 0, err
	}
	return h*60 + m, nil
}

// AddMinutes returns the time shifted forward by delta minutes.
// The result must stay within the same civil day: crossing midnight is
// not defined for restaurant operating hours and returns an error.
func (t TimeString) AddMinutes(delta int) (TimeString, error) {
	minutes, err := t.Minutes()
	if err != nil {
		return "", err
	}
	return NewTimeStringFromMinutes(minutes + delta)
}

// DiffMinutes returns t - other in minutes (negative when t is earlier).
func (t TimeString) DiffMinutes(other TimeString) (int, error) {
	a, err := t.Minutes()
	if err != nil {
		return 0, err
	}
	b, err := other.Minutes()
	if err != nil {
		return 0, err
	}
	return a - b, nil
}

// IsBefore reports whether t is strictly earlier than other.
// Malformed values compare as not-before; validation happens at the parse
// boundary, so both operands are expected to be canonical here.
func (t TimeString) IsBefore(other TimeString) bool {
	a, errA := t.Minutes()
	b, errB := other.Minutes()
	if errA != nil || errB != nil {
		return false
	}
	return a < b
}

// IsAfter reports whether t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	a, errA := t.Minutes()
	b, errB := other.Minutes()
	if errA != nil || errB != nil {
		return false
	}
	return a > b
}

// String returns the canonical "HH:MM" form.
func (t TimeString) String() string {
	return string(t)
}

// WithSeconds returns the "HH:MM:SS" wire form used by the booking API.
func (t TimeString) WithSeconds() string {
	return string(t) + ":00"
}

// Value implements driver.Valuer for TIME columns.
func (t TimeString) Value() (driver.Value, error) {
	if _, err := t.Minutes(); err != nil {
		return nil, err
	}
	return t.WithSeconds(), nil
}

// Scan implements sql.Scanner. Postgres TIME columns arrive as time.Time,
// string or []byte depending on the driver path.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	default:
		return fmt.Errorf("types: cannot scan %T into TimeString", src)
	}
}
