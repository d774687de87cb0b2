package booking

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidStayRange = errors.New("check-out must be after check-in")

// StayRange is a half-open civil date range [CheckIn, CheckOut).
// A guest occupying [Jun 1, Jun 5) leaves the room free for a stay
// beginning Jun 5.
type StayRange struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayRange(checkIn, checkOut time.Time) (StayRange, error) {
	in := TruncateToDate(checkIn)
	out := TruncateToDate(checkOut)
	if !out.After(in) {
		return StayRange{}, ErrInvalidStayRange
	}
	return StayRange{checkIn: in, checkOut: out}, nil
}

func (r StayRange) CheckIn() time.Time {
	return r.checkIn
}

func (r StayRange) CheckOut() time.Time {
	return r.checkOut
}

func (r StayRange) IsZero() bool {
	return r.checkIn.IsZero() && r.checkOut.IsZero()
}

// Overlaps reports whether the two ranges share at least one night.
// Touching ranges (one checks out the day the other checks in) do not
// conflict under half-open semantics.
func (r StayRange) Overlaps(other StayRange) bool {
	return other.checkIn.Before(r.checkOut) && other.checkOut.After(r.checkIn)
}

func (r StayRange) StartsBefore(day time.Time) bool {
	return r.checkIn.Before(TruncateToDate(day))
}

// EndedBefore reports whether the stay is entirely in the past as of day.
func (r StayRange) EndedBefore(day time.Time) bool {
	return r.checkOut.Before(TruncateToDate(day))
}

func (r StayRange) Nights() int {
	return int(r.checkOut.Sub(r.checkIn).Hours() / 24)
}

func (r StayRange) String() string {
	return fmt.Sprintf("[%s,%s)", r.checkIn.Format(time.DateOnly), r.checkOut.Format(time.DateOnly))
}

func TruncateToDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Dollars() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) Mul(n int64) Money {
	return Money{cents: m.cents * n}
}
