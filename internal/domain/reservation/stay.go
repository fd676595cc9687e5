package reservation

import (
	"fmt"
	"time"

	"staybook/internal/pkg/errs"
)

const DateLayout = "2006-01-02"

// Stay is the half-open date range [checkIn, checkOut).
type Stay struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStay(checkIn, checkOut time.Time) (Stay, error) {
	in, out := CalendarDate(checkIn), CalendarDate(checkOut)
	if !in.Before(out) {
		return Stay{}, errs.ConflictInput("check_out", "check_out must be after check_in")
	}
	return Stay{checkIn: in, checkOut: out}, nil
}

func ParseStay(checkIn, checkOut string) (Stay, error) {
	in, err := ParseDate("check_in", checkIn)
	if err != nil {
		return Stay{}, err
	}
	out, err := ParseDate("check_out", checkOut)
	if err != nil {
		return Stay{}, err
	}
	return NewStay(in, out)
}

// ParseDate reads a YYYY-MM-DD calendar date; field names the input in the error.
func ParseDate(field, v string) (time.Time, error) {
	t, err := time.Parse(DateLayout, v)
	if err != nil {
		return time.Time{}, errs.ConflictInput(field, fmt.Sprintf("%s must be a date in %s form", field, DateLayout))
	}
	return t, nil
}

// CalendarDate drops the clock part and pins the date to UTC.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s Stay) CheckIn() time.Time  { return s.checkIn }
func (s Stay) CheckOut() time.Time { return s.checkOut }

func (s Stay) Nights() int {
	return int(s.checkOut.Sub(s.checkIn).Hours() / 24)
}

func (s Stay) Overlaps(other Stay) bool {
	return s.checkIn.Before(other.checkOut) && other.checkIn.Before(s.checkOut)
}

func (s Stay) String() string {
	return fmt.Sprintf("[%s,%s)", s.checkIn.Format(DateLayout), s.checkOut.Format(DateLayout))
}
