package shared

import (
	"time"

	"hotel-management-system/internal/domain/booking"

	"github.com/google/uuid"
)

// Minimal snapshots for command-side reads; the query side has its own
// richer view models.

type RoomSnapshot struct {
	ID        uuid.UUID
	Number    string
	RoomType  string
	RateCents int64
	Available bool
}

type BookingSnapshot struct {
	ID        uuid.UUID
	RoomID    uuid.UUID
	GuestID   uuid.UUID
	CheckIn   time.Time
	CheckOut  time.Time
	Status    booking.Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Stay rebuilds the value object; snapshots always hold a persisted,
// already-validated range.
func (b *BookingSnapshot) Stay() booking.StayRange {
	stay, err := booking.NewStayRange(b.CheckIn, b.CheckOut)
	if err != nil {
		return booking.StayRange{}
	}
	return stay
}

func (b *BookingSnapshot) ToEntity() *booking.Booking {
	return booking.ReconstructBooking(b.ID, b.RoomID, b.GuestID, b.Stay(), b.Status, b.CreatedAt, b.UpdatedAt)
}

type GuestSnapshot struct {
	ID          uuid.UUID
	PrincipalID uuid.UUID
	Name        string
	Email       string
	Phone       string
}
