package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar day carried as YYYY-MM-DD in storage, in JSON and in
// calendar bucket keys. The postgres driver hands date columns back as
// time.Time; Scan normalizes every representation to the one wire format.
type Date string

func (d Date) Value() (driver.Value, error) {
	return string(d), nil
}

func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = ""
	case time.Time:
		*d = Date(v.Format(dateLayout))
	case []byte:
		*d = normalizeDate(string(v))
	case string:
		*d = normalizeDate(v)
	default:
		return fmt.Errorf("unsupported date value of type %T", value)
	}
	return nil
}

// normalizeDate trims timestamp representations down to the date part.
func normalizeDate(s string) Date {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return Date(t.Format(dateLayout))
	}
	return Date(s)
}
