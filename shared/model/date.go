package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"eyeslot/shared/constant"
	"fmt"
	"time"
)

const hoursPerDay = 24

var errUnsupportedDate = errors.New("unsupported date value")

// Date is a calendar day without a time zone, stored in a Postgres DATE column.
// It is held as midnight UTC so day arithmetic never crosses a DST boundary.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the calendar day t falls on in t's own location.
func DateOf(t time.Time) Date {
	return NewDate(t.Date())
}

func ParseDate(value string) (Date, error) {
	t, err := time.Parse(constant.CalendarLayout, value)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", value, err)
	}

	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format(constant.CalendarLayout)
}

// DaysAfter reports how many calendar days d lies after other; negative when before.
func (d Date) DaysAfter(other Date) int {
	return int(d.Sub(other.Time).Hours() / hoursPerDay)
}

func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = DateOf(v)
	case []byte:
		return d.parse(string(v))
	case string:
		return d.parse(v)
	default:
		return fmt.Errorf("%w: %T", errUnsupportedDate, src)
	}

	return nil
}

func (d *Date) parse(value string) error {
	if len(value) > len(constant.CalendarLayout) {
		value = value[:len(constant.CalendarLayout)]
	}

	parsed, err := ParseDate(value)
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String()) //nolint:wrapcheck
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}

	return d.parse(value)
}
