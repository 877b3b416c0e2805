package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// clockLayouts accepts optional seconds and fractions on input so that a
// sub-minute value can be parsed and then rejected with a precise message
// instead of a generic parse error.
var clockLayouts = []string{"15:04:05.999999999", "15:04:05", "15:04"}

// Date is a calendar day without a time component, stored in a DATE column
// and rendered as "2006-01-02" in JSON.
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

func (d Date) String() string {
	return d.t.Format(dateLayout)
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.t.Format(dateLayout))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("visit date must be a string: %w", err)
	}
	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		return fmt.Errorf("visit date must use the %s format: %w", dateLayout, err)
	}
	d.t = parsed
	return nil
}

func (d Date) Value() (driver.Value, error) {
	return d.t, nil
}

func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		d.t = time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, time.UTC)
		return nil
	case []byte:
		return d.scanString(string(v))
	case string:
		return d.scanString(v)
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

func (d *Date) scanString(raw string) error {
	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		return fmt.Errorf("cannot scan %q into Date: %w", raw, err)
	}
	d.t = parsed
	return nil
}

// ClockTime is a time of day with minute precision, stored in a TIME column.
// Values with non-zero seconds or fractions are rejected on input; output
// always carries the ":00" seconds for interoperability.
type ClockTime struct {
	t time.Time
}

func NewClockTime(hour, minute int) ClockTime {
	return ClockTime{t: time.Date(0, time.January, 1, hour, minute, 0, 0, time.UTC)}
}

func (c ClockTime) Hour() int {
	return c.t.Hour()
}

func (c ClockTime) Minute() int {
	return c.t.Minute()
}

func (c ClockTime) Equal(other ClockTime) bool {
	return c.t.Equal(other.t)
}

func (c ClockTime) String() string {
	return c.t.Format("15:04:05")
}

func (c ClockTime) IsZero() bool {
	return c.t.IsZero()
}

func (c ClockTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.t.Format("15:04:05"))
}

func (c *ClockTime) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("visit time must be a string: %w", err)
	}
	parsed, err := parseClock(raw)
	if err != nil {
		return err
	}
	if parsed.Second() != 0 || parsed.Nanosecond() != 0 {
		return fmt.Errorf("visit time must fall on a whole minute: %q", raw)
	}
	c.t = time.Date(0, time.January, 1, parsed.Hour(), parsed.Minute(), 0, 0, time.UTC)
	return nil
}

func (c ClockTime) Value() (driver.Value, error) {
	return c.t.Format("15:04:05"), nil
}

func (c *ClockTime) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		c.t = time.Date(0, time.January, 1, v.Hour(), v.Minute(), v.Second(), v.Nanosecond(), time.UTC)
		return nil
	case []byte:
		return c.scanString(string(v))
	case string:
		return c.scanString(v)
	default:
		return fmt.Errorf("cannot scan %T into ClockTime", src)
	}
}

func (c *ClockTime) scanString(raw string) error {
	parsed, err := parseClock(raw)
	if err != nil {
		return fmt.Errorf("cannot scan %q into ClockTime: %w", raw, err)
	}
	c.t = time.Date(0, time.January, 1, parsed.Hour(), parsed.Minute(), parsed.Second(), parsed.Nanosecond(), time.UTC)
	return nil
}

func parseClock(raw string) (time.Time, error) {
	for _, layout := range clockLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("visit time must use the HH:MM format: %q", raw)
}
