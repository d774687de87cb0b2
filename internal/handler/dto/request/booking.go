package request

import (
	"time"

	"hotel-management-system/internal/usecase/commands"

	"github.com/google/uuid"
)

// UpdateBookingRequest carries a partial edit: absent fields keep the
// booking's current value.
type UpdateBookingRequest struct {
	RoomID   *uuid.UUID `json:"room_id,omitempty"`
	CheckIn  *string    `json:"check_in,omitempty"`
	CheckOut *string    `json:"check_out,omitempty"`
}

func (r UpdateBookingRequest) ToParams() (commands.UpdateBookingParams, error) {
	params := commands.UpdateBookingParams{RoomID: r.RoomID}

	if r.CheckIn != nil {
		t, err := time.Parse(time.DateOnly, *r.CheckIn)
		if err != nil {
			return commands.UpdateBookingParams{}, err
		}
		params.CheckIn = &t
	}
	if r.CheckOut != nil {
		t, err := time.Parse(time.DateOnly, *r.CheckOut)
		if err != nil {
			return commands.UpdateBookingParams{}, err
		}
		params.CheckOut = &t
	}
	return params, nil
}
