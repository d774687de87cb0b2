package response

import (
	"time"

	"hotel-management-system/internal/domain/cart"

	"github.com/google/uuid"
)

type CartResponse struct {
	RoomIDs  []uuid.UUID `json:"roomIds"`
	CheckIn  *string     `json:"checkIn,omitempty"`
	CheckOut *string     `json:"checkOut,omitempty"`
}

func FromCart(c *cart.Cart) *CartResponse {
	resp := &CartResponse{RoomIDs: c.RoomIDs}
	if resp.RoomIDs == nil {
		resp.RoomIDs = []uuid.UUID{}
	}
	if c.HasStay() {
		checkIn := c.CheckIn.Format(time.DateOnly)
		checkOut := c.CheckOut.Format(time.DateOnly)
		resp.CheckIn = &checkIn
		resp.CheckOut = &checkOut
	}
	return resp
}
