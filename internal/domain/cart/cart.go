package cart

import (
	"context"
	"errors"
	"time"

	"hotel-management-system/internal/domain/booking"

	"github.com/google/uuid"
)

var ErrNoStayRange = errors.New("cart has no stay range")

// Cart is a per-guest staging area: candidate room ids plus one shared
// proposed stay range. It is an explicit value passed through the store,
// not ambient session state, so the commit path stays testable. Nothing
// here checks availability; a stale selection is caught at commit time.
type Cart struct {
	RoomIDs  []uuid.UUID `json:"room_ids"`
	CheckIn  time.Time   `json:"check_in"`
	CheckOut time.Time   `json:"check_out"`
}

func New() *Cart {
	return &Cart{}
}

func (c *Cart) HasStay() bool {
	return !c.CheckIn.IsZero() && !c.CheckOut.IsZero()
}

func (c *Cart) Stay() (booking.StayRange, error) {
	if !c.HasStay() {
		return booking.StayRange{}, ErrNoStayRange
	}
	return booking.NewStayRange(c.CheckIn, c.CheckOut)
}

// SetStay replaces the shared range for every staged room; the cart
// holds exactly one proposed range at a time.
func (c *Cart) SetStay(stay booking.StayRange) {
	c.CheckIn = stay.CheckIn()
	c.CheckOut = stay.CheckOut()
}

// Add is idempotent; staging the same room twice is a no-op.
func (c *Cart) Add(roomID uuid.UUID) {
	if c.Contains(roomID) {
		return
	}
	c.RoomIDs = append(c.RoomIDs, roomID)
}

// Remove is idempotent.
func (c *Cart) Remove(roomID uuid.UUID) {
	for i, id := range c.RoomIDs {
		if id == roomID {
			c.RoomIDs = append(c.RoomIDs[:i], c.RoomIDs[i+1:]...)
			return
		}
	}
}

func (c *Cart) Contains(roomID uuid.UUID) bool {
	for _, id := range c.RoomIDs {
		if id == roomID {
			return true
		}
	}
	return false
}

func (c *Cart) IsEmpty() bool {
	return len(c.RoomIDs) == 0
}

// Clear drops both the selections and the range; called after commit and
// on abandonment.
func (c *Cart) Clear() {
	c.RoomIDs = nil
	c.CheckIn = time.Time{}
	c.CheckOut = time.Time{}
}

// Store keeps carts keyed by guest id. Implementations must return
// (nil, nil) for an absent cart; commit clears the entry so a stale cart
// can never be replayed into duplicate bookings.
type Store interface {
	Get(ctx context.Context, guestID uuid.UUID) (*Cart, error)
	Put(ctx context.Context, guestID uuid.UUID, c *Cart) error
	Clear(ctx context.Context, guestID uuid.UUID) error
}
