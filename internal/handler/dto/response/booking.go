package response

import (
	"time"

	"hotel-management-system/internal/usecase/commands"
	"hotel-management-system/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID           uuid.UUID `json:"id"`
	RoomID       uuid.UUID `json:"roomId"`
	RoomNumber   string    `json:"roomNumber"`
	GuestID      uuid.UUID `json:"guestId"`
	GuestName    string    `json:"guestName"`
	CheckIn      string    `json:"checkIn"`
	CheckOut     string    `json:"checkOut"`
	Status       string    `json:"status"`
	ReceiptTotal *int64    `json:"receiptTotalCents,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:           rm.ID,
		RoomID:       rm.RoomID,
		RoomNumber:   rm.RoomNumber,
		GuestID:      rm.GuestID,
		GuestName:    rm.GuestName,
		CheckIn:      rm.CheckIn.Format(time.DateOnly),
		CheckOut:     rm.CheckOut.Format(time.DateOnly),
		Status:       rm.Status,
		ReceiptTotal: rm.ReceiptTotal,
		CreatedAt:    rm.CreatedAt,
	}
}

type ConfirmedBookingResponse struct {
	BookingID  uuid.UUID `json:"bookingId"`
	ReceiptID  uuid.UUID `json:"receiptId"`
	RoomID     uuid.UUID `json:"roomId"`
	RoomNumber string    `json:"roomNumber"`
	CheckIn    string    `json:"checkIn"`
	CheckOut   string    `json:"checkOut"`
	Nights     int       `json:"nights"`
	TotalCents int64     `json:"totalCents"`
}

// ConfirmResponse reports partial success: committed bookings alongside
// the room ids lost to a concurrent commit.
type ConfirmResponse struct {
	Committed      []ConfirmedBookingResponse `json:"committed"`
	SkippedRoomIDs []uuid.UUID                `json:"skippedRoomIds"`
}

func FromConfirmResult(rm *commands.ConfirmResult) *ConfirmResponse {
	resp := &ConfirmResponse{
		Committed:      make([]ConfirmedBookingResponse, 0, len(rm.Committed)),
		SkippedRoomIDs: rm.SkippedRoomIDs,
	}
	if resp.SkippedRoomIDs == nil {
		resp.SkippedRoomIDs = []uuid.UUID{}
	}
	for _, b := range rm.Committed {
		resp.Committed = append(resp.Committed, ConfirmedBookingResponse{
			BookingID:  b.BookingID,
			ReceiptID:  b.ReceiptID,
			RoomID:     b.RoomID,
			RoomNumber: b.RoomNumber,
			CheckIn:    b.Stay.CheckIn().Format(time.DateOnly),
			CheckOut:   b.Stay.CheckOut().Format(time.DateOnly),
			Nights:     b.Nights,
			TotalCents: b.TotalCents,
		})
	}
	return resp
}
