package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type RoomView struct {
	ID        uuid.UUID `json:"id"`
	Number    string    `json:"number"`
	RoomType  string    `json:"room_type"`
	RateCents int64     `json:"rate_cents"`
	Available bool      `json:"available"`
}

type BookingView struct {
	ID           uuid.UUID `json:"id"`
	RoomID       uuid.UUID `json:"room_id"`
	RoomNumber   string    `json:"room_number"`
	GuestID      uuid.UUID `json:"guest_id"`
	GuestName    string    `json:"guest_name"`
	CheckIn      time.Time `json:"check_in"`
	CheckOut     time.Time `json:"check_out"`
	Status       string    `json:"status"`
	ReceiptTotal *int64    `json:"receipt_total_cents,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type RevenueSummary struct {
	TotalCents     int64            `json:"total_cents"`
	ConfirmedCount int64            `json:"confirmed_count"`
	Monthly        []MonthlyRevenue `json:"monthly"`
}

type MonthlyRevenue struct {
	Year  int   `json:"year"`
	Month int   `json:"month"`
	Cents int64 `json:"cents"`
}

// Read store ports implemented by infra/readstore.

type BookingReadStore interface {
	ViewByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByGuest(ctx context.Context, guestID uuid.UUID) ([]*BookingView, error)
	// Search filters by guest name / room number substring and optional
	// status; empty arguments mean no filter.
	Search(ctx context.Context, term, status string) ([]*BookingView, error)
}

type RevenueReadStore interface {
	Summary(ctx context.Context) (*RevenueSummary, error)
}
