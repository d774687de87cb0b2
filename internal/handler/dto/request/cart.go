package request

import (
	"time"

	"github.com/google/uuid"
)

type AddCartRoomRequest struct {
	RoomID   uuid.UUID `json:"room_id" binding:"required"`
	CheckIn  string    `json:"check_in" binding:"required"`
	CheckOut string    `json:"check_out" binding:"required"`
}

// StayDates parses the civil dates; range validation belongs to the
// use case, only the format is checked here.
func (r AddCartRoomRequest) StayDates() (time.Time, time.Time, error) {
	checkIn, err := time.Parse(time.DateOnly, r.CheckIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	checkOut, err := time.Parse(time.DateOnly, r.CheckOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return checkIn, checkOut, nil
}
