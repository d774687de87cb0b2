package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotCancellable = errors.New("booking is not in a cancellable state")
	ErrNotEditable    = errors.New("booking is not in an editable state")
)

type Booking struct {
	id        uuid.UUID
	roomID    uuid.UUID
	guestID   uuid.UUID
	stay      StayRange
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

func NewBooking(roomID, guestID uuid.UUID, stay StayRange) *Booking {
	return &Booking{
		id:      uuid.New(),
		roomID:  roomID,
		guestID: guestID,
		stay:    stay,
		status:  StatusConfirmed,
	}
}

func ReconstructBooking(
	id, roomID, guestID uuid.UUID,
	stay StayRange,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		roomID:    roomID,
		guestID:   guestID,
		stay:      stay,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (b *Booking) IsActive() bool {
	return b.status == StatusConfirmed
}

// HasExpired reports whether a Confirmed booking should be promoted to
// Completed: its checkout date is strictly before the given day.
func (b *Booking) HasExpired(day time.Time) bool {
	return b.status == StatusConfirmed && b.stay.EndedBefore(day)
}

// CoversOrAfter reports whether the stay still blocks the room on day:
// any Confirmed booking with checkout on or after day keeps the room
// unavailable.
func (b *Booking) CoversOrAfter(day time.Time) bool {
	return b.status == StatusConfirmed && !b.stay.EndedBefore(day)
}

func (b *Booking) Cancel() error {
	if b.status != StatusConfirmed {
		return ErrNotCancellable
	}
	b.status = StatusCancelled
	return nil
}

func (b *Booking) Complete() {
	if b.status == StatusConfirmed {
		b.status = StatusCompleted
	}
}

func (b *Booking) Reschedule(roomID uuid.UUID, stay StayRange) error {
	if b.status != StatusConfirmed {
		return ErrNotEditable
	}
	b.roomID = roomID
	b.stay = stay
	return nil
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) RoomID() uuid.UUID    { return b.roomID }
func (b *Booking) GuestID() uuid.UUID   { return b.guestID }
func (b *Booking) Stay() StayRange      { return b.stay }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }

// Receipt is created together with its booking (1:1) and deleted when
// the booking is deleted or cancelled.
type Receipt struct {
	id        uuid.UUID
	bookingID uuid.UUID
	total     Money
	createdAt time.Time
}

func NewReceipt(bookingID uuid.UUID, total Money) *Receipt {
	return &Receipt{
		id:        uuid.New(),
		bookingID: bookingID,
		total:     total,
	}
}

func ReconstructReceipt(id, bookingID uuid.UUID, total Money, createdAt time.Time) *Receipt {
	return &Receipt{
		id:        id,
		bookingID: bookingID,
		total:     total,
		createdAt: createdAt,
	}
}

func (r *Receipt) ID() uuid.UUID        { return r.id }
func (r *Receipt) BookingID() uuid.UUID { return r.bookingID }
func (r *Receipt) Total() Money         { return r.total }
func (r *Receipt) CreatedAt() time.Time { return r.createdAt }
