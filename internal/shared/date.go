package shared

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"book-management/internal/shared/fault"
)

// DateFormat is the wire pattern for all calendar dates: dd-MM-yyyy.
const DateFormat = "02-01-2006"

// Date is a calendar date without a time zone. On the wire it is a JSON
// string in DateFormat; in the database it maps to a DATE column. The zero
// value marshals as null and counts as absent for validation.
type Date struct {
	time.Time
}

// DateOf truncates t to its calendar date, anchored at midnight UTC.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// Today is the server's current calendar date.
func Today() Date {
	return DateOf(time.Now())
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(DateFormat) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: date must be a string", fault.ErrMalformedBody)
	}
	// Two-digit day and month, four-digit year. time.Parse alone accepts
	// unpadded components, so the length is checked first.
	if len(raw) != len(DateFormat) {
		return fmt.Errorf("%w: invalid date %q, want dd-MM-yyyy", fault.ErrMalformedBody, raw)
	}
	t, err := time.ParseInLocation(DateFormat, raw, time.UTC)
	if err != nil {
		return fmt.Errorf("%w: invalid date %q, want dd-MM-yyyy", fault.ErrMalformedBody, raw)
	}
	*d = Date{t}
	return nil
}

// Scan implements sql.Scanner for DATE columns.
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = DateOf(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into shared.Date", src)
	}
}

// Value implements driver.Valuer.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time, nil
}
