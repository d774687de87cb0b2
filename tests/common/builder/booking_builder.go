//go:build unit || e2e

package builder

import (
	"time"

	"hotel-management-system/internal/domain/booking"
	reqdto "hotel-management-system/internal/handler/dto/request"
	"hotel-management-system/internal/usecase/commands"
	"hotel-management-system/internal/usecase/queries"
	"hotel-management-system/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	BookingID  uuid.UUID
	RoomID     uuid.UUID
	RoomNumber string
	GuestID    uuid.UUID
	GuestName  string
	CheckIn    time.Time
	CheckOut   time.Time
	Status     string
	RateCents  int64
	CreatedAt  time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		BookingID:  uuid.New(),
		RoomID:     uuid.New(),
		RoomNumber: "101",
		GuestID:    uuid.New(),
		GuestName:  "Demo Guest",
		CheckIn:    time.Date(2026, 6, 5, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
		Status:     "confirmed",
		RateCents:  9000,
		CreatedAt:  time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) Nights() int {
	return int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
}

func (b *BookingBuilder) TotalCents() int64 {
	return b.RateCents * int64(b.Nights())
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	total := b.TotalCents()
	return &queries.BookingView{
		ID:           b.BookingID,
		RoomID:       b.RoomID,
		RoomNumber:   b.RoomNumber,
		GuestID:      b.GuestID,
		GuestName:    b.GuestName,
		CheckIn:      b.CheckIn,
		CheckOut:     b.CheckOut,
		Status:       b.Status,
		ReceiptTotal: &total,
		CreatedAt:    b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildSnapshot() shared.BookingSnapshot {
	return shared.BookingSnapshot{
		ID:       b.BookingID,
		RoomID:   b.RoomID,
		GuestID:  b.GuestID,
		CheckIn:  b.CheckIn,
		CheckOut: b.CheckOut,
	}
}

func (b *BookingBuilder) BuildUpdateRequestDTO() reqdto.UpdateBookingRequest {
	checkIn := b.CheckIn.Format(time.DateOnly)
	checkOut := b.CheckOut.Format(time.DateOnly)
	roomID := b.RoomID
	return reqdto.UpdateBookingRequest{
		RoomID:   &roomID,
		CheckIn:  &checkIn,
		CheckOut: &checkOut,
	}
}

func (b *BookingBuilder) BuildAddCartRequestDTO() reqdto.AddCartRoomRequest {
	return reqdto.AddCartRoomRequest{
		RoomID:   b.RoomID,
		CheckIn:  b.CheckIn.Format(time.DateOnly),
		CheckOut: b.CheckOut.Format(time.DateOnly),
	}
}

func (b *BookingBuilder) BuildConfirmResult() *commands.ConfirmResult {
	stay, _ := booking.NewStayRange(b.CheckIn, b.CheckOut)
	return &commands.ConfirmResult{
		Committed: []commands.ConfirmedBooking{
			{
				BookingID:  b.BookingID,
				ReceiptID:  uuid.New(),
				RoomID:     b.RoomID,
				RoomNumber: b.RoomNumber,
				Stay:       stay,
				Nights:     b.Nights(),
				TotalCents: b.TotalCents(),
			},
		},
		SkippedRoomIDs: []uuid.UUID{},
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithGuestID(guestID uuid.UUID) *BookingBuilder {
	b.GuestID = guestID
	return b
}

func (b *BookingBuilder) WithRoomID(roomID uuid.UUID) *BookingBuilder {
	b.RoomID = roomID
	return b
}

func (b *BookingBuilder) WithRoomNumber(number string) *BookingBuilder {
	b.RoomNumber = number
	return b
}

func (b *BookingBuilder) WithStay(checkIn, checkOut time.Time) *BookingBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *BookingBuilder) WithStatus(status string) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithRateCents(cents int64) *BookingBuilder {
	b.RateCents = cents
	return b
}

func (b *BookingBuilder) AsCancelled() *BookingBuilder {
	b.Status = "cancelled"
	return b
}

func (b *BookingBuilder) AsCompleted() *BookingBuilder {
	b.Status = "completed"
	return b
}
