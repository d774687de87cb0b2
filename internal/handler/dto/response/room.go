package response

import (
	"hotel-management-system/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomResponse struct {
	ID        uuid.UUID `json:"id"`
	Number    string    `json:"number"`
	RoomType  string    `json:"roomType"`
	RateCents int64     `json:"rateCents"`
	Available bool      `json:"available"`
}

func FromRoomView(rm *queries.RoomView) *RoomResponse {
	return &RoomResponse{
		ID:        rm.ID,
		Number:    rm.Number,
		RoomType:  rm.RoomType,
		RateCents: rm.RateCents,
		Available: rm.Available,
	}
}
