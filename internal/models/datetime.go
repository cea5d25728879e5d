package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// DateTime is a timestamp that unmarshals from either an RFC 3339
// string or a bare date ("2006-01-02") and always marshals as RFC 3339.
type DateTime struct {
	time.Time
}

func (d *DateTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" || s == "" {
		return nil
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("invalid datetime %q", s)
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Time.Format(time.RFC3339) + `"`), nil
}

// Scan implements sql.Scanner.
func (d *DateTime) Scan(value any) error {
	switch v := value.(type) {
	case time.Time:
		d.Time = v
		return nil
	case nil:
		return nil
	default:
		return fmt.Errorf("cannot scan %T into DateTime", value)
	}
}

// Value implements driver.Valuer.
func (d DateTime) Value() (driver.Value, error) {
	return d.Time, nil
}
