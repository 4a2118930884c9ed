package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// DateString represents a civil calendar date in canonical "YYYY-MM-DD"
// form with zero-padded month and day. It is the only comparison key used
// between calendar cells and booking dates: two DateStrings are equal iff
// they name the same civil day, regardless of how the values were built.
// No timezone arithmetic is ever applied to a DateString.
type DateString string

// NewDateString creates a DateString from the calendar portion of t.
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(dateLayout))
}

// NewDateStringFromParts builds a DateString from year/month/day.
func NewDateStringFromParts(year int, month time.Month, day int) DateString {
	return DateString(fmt.Sprintf("%04d-%02d-%02d", year, month, day))
}

// ParseDateString validates s against the canonical layout.
// Malformed input is an error: substituting a default date silently is
// exactly the class of bug this type exists to remove.
func ParseDateString(s string) (DateString, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return "", fmt.Errorf("types: invalid date %q, want YYYY-MM-DD: %v", s, err)
	}
	// time.Parse accepts some non-canonical spellings of the same layout;
	// re-format so the stored key is always zero-padded.
	return NewDateString(t), nil
}

// Time returns the date as a UTC midnight time.Time for range queries.
func (d DateString) Time() (time.Time, error) {
	t, err := time.Parse(dateLayout, string(d))
	if err != nil {
		return time.Time{}, fmt.Errorf("types: invalid date %q: %v", string(d), err)
	}
	return t, nil
}

// Date returns the year/month/day components.
func (d DateString) Date() (year int, month time.Month, day int, err error) {
	t, terr := d.Time()
	if terr != nil {
		return 0, 0, 0, terr
	}
	y, m, dd := t.Date()
	return y, m, dd, nil
}

// Weekday returns the day of week for the date.
func (d DateString) Weekday() (time.Weekday, error) {
	t, err := d.Time()
	if err != nil {
		return 0, err
	}
	return t.Weekday(), nil
}

// AddDays returns the date shifted by days (negative moves backwards).
func (d DateString) AddDays(days int) (DateString, error) {
	t, err := d.Time()
	if err != nil {
		return "", err
	}
	return NewDateString(t.AddDate(0, 0, days)), nil
}

// Before reports whether d is strictly earlier than other.
// Canonical zero-padded form makes lexicographic order the calendar order.
func (d DateString) Before(other DateString) bool {
	return string(d) < string(other)
}

// String returns the canonical "YYYY-MM-DD" form.
func (d DateString) String() string {
	return string(d)
}

// Value implements driver.Valuer for DATE columns.
func (d DateString) Value() (driver.Value, error) {
	t, err := d.Time()
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Scan implements sql.Scanner.
func (d *DateString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = ""
		return nil
	case time.Time:
		*d = NewDateString(v)
		return nil
	case string:
		parsed, err := ParseDateString(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		parsed, err := ParseDateString(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("types: cannot scan %T into DateString", src)
	}
}
