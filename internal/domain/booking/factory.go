package booking

import (
	"errors"

	"hotel-management-system/internal/pkg/clock"

	"github.com/google/uuid"
)

var ErrCheckInPast = errors.New("check-in date cannot be in the past")

// RoomSpec carries the room attributes billing depends on, captured at
// commit time so later rate changes never rewrite an issued receipt.
type RoomSpec struct {
	ID        uuid.UUID
	RateCents int64
}

type Factory struct {
	clock clock.Clock
}

func NewFactory(c clock.Clock) *Factory {
	return &Factory{clock: c}
}

// CreateBooking builds a Confirmed booking and its receipt in one step.
// The total is nights x nightly rate; nights are clamped to a minimum of
// one so a same-day turnaround is never billed as zero.
func (f *Factory) CreateBooking(room RoomSpec, guestID uuid.UUID, stay StayRange) (*Booking, *Receipt, error) {
	if stay.StartsBefore(clock.Today(f.clock)) {
		return nil, nil, ErrCheckInPast
	}

	b := NewBooking(room.ID, guestID, stay)

	nights := stay.Nights()
	if nights < 1 {
		nights = 1
	}
	total := NewMoney(room.RateCents).Mul(int64(nights))

	return b, NewReceipt(b.ID(), total), nil
}
