package notify

import (
	"context"
	"encoding/json"
	"time"

	"hotel-management-system/internal/infra/db"
	"hotel-management-system/internal/infra/repository"
	"hotel-management-system/internal/pkg/clock"
	"hotel-management-system/internal/pkg/errs"
	"hotel-management-system/internal/usecase/commands"
	"hotel-management-system/internal/usecase/shared"
)

const (
	jobKindEmail      = "email"
	topicConfirmation = "reservation.confirmed"
)

// JobNotifier queues one consolidated confirmation per commit as a
// notification job; a separate worker drains the queue. Enqueue failures
// are reported to the caller but never undo the commit.
type JobNotifier struct {
	jobs  *repository.NotificationRepository
	clock clock.Clock
}

func NewJobNotifier(dbtx db.DBTX, clk clock.Clock) *JobNotifier {
	return &JobNotifier{
		jobs:  repository.NewNotificationRepository(dbtx),
		clock: clk,
	}
}

type confirmationPayload struct {
	GuestName  string        `json:"guest_name"`
	Email      string        `json:"email"`
	Bookings   []bookingLine `json:"bookings"`
	TotalCents int64         `json:"total_cents"`
}

type bookingLine struct {
	BookingID  string `json:"booking_id"`
	RoomNumber string `json:"room_number"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	Nights     int    `json:"nights"`
	TotalCents int64  `json:"total_cents"`
}

func (n *JobNotifier) SendConfirmation(ctx context.Context, to *shared.GuestSnapshot, committed []commands.ConfirmedBooking) error {
	payload := confirmationPayload{
		GuestName: to.Name,
		Email:     to.Email,
		Bookings:  make([]bookingLine, 0, len(committed)),
	}
	for _, b := range committed {
		payload.Bookings = append(payload.Bookings, bookingLine{
			BookingID:  b.BookingID.String(),
			RoomNumber: b.RoomNumber,
			CheckIn:    b.Stay.CheckIn().Format(time.DateOnly),
			CheckOut:   b.Stay.CheckOut().Format(time.DateOnly),
			Nights:     b.Nights,
			TotalCents: b.TotalCents,
		})
		payload.TotalCents += b.TotalCents
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrap(err, "failed to encode confirmation payload")
	}

	if err := n.jobs.CreateJob(ctx, jobKindEmail, topicConfirmation, data, n.clock.Now()); err != nil {
		return errs.Wrap(err, "failed to enqueue confirmation")
	}
	return nil
}
