package commands

import (
	"context"
	"errors"
	"log/slog"

	"hotel-management-system/internal/domain/booking"
	"hotel-management-system/internal/domain/cart"
	"hotel-management-system/internal/infra"
	"hotel-management-system/internal/pkg/clock"
	"hotel-management-system/internal/pkg/errs"
	"hotel-management-system/internal/usecase/shared"

	"github.com/google/uuid"
)

type ConfirmedBooking struct {
	BookingID  uuid.UUID
	ReceiptID  uuid.UUID
	RoomID     uuid.UUID
	RoomNumber string
	Stay       booking.StayRange
	Nights     int
	TotalCents int64
}

// ConfirmResult reports partial success: a multi-room cart is never
// torpedoed by one stale entry. SkippedRoomIDs tells the caller which
// selections were lost to a race.
type ConfirmResult struct {
	Committed      []ConfirmedBooking
	SkippedRoomIDs []uuid.UUID
}

// Notifier is the external notification collaborator. Fire-and-forget:
// a delivery failure must never roll back a commit.
type Notifier interface {
	SendConfirmation(ctx context.Context, to *shared.GuestSnapshot, committed []ConfirmedBooking) error
}

type ReservationCommands interface {
	Confirm(ctx context.Context, guestID uuid.UUID) (*ConfirmResult, error)
}

type reservationCommandsImpl struct {
	uow      shared.UnitOfWork
	carts    cart.Store
	factory  *booking.Factory
	notifier Notifier
	clock    clock.Clock
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	carts cart.Store,
	factory *booking.Factory,
	notifier Notifier,
	clk clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:      uow,
		carts:    carts,
		factory:  factory,
		notifier: notifier,
		clock:    clk,
	}
}

// Confirm atomically converts the guest's staged cart into durable
// Booking+Receipt pairs, re-validating every room against its Confirmed
// bookings at commit time. All room-state writes go through this single
// transaction; the per-room row locks make two guests racing for the
// same room resolve to exactly one winner.
func (r *reservationCommandsImpl) Confirm(ctx context.Context, guestID uuid.UUID) (*ConfirmResult, error) {
	cc, err := r.carts.Get(ctx, guestID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load cart")
	}
	if cc == nil || cc.IsEmpty() {
		return nil, ErrEmptyCart
	}

	stay, err := cc.Stay()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRange)
	}
	today := clock.Today(r.clock)
	if stay.StartsBefore(today) {
		return nil, errs.Mark(errs.New("check-in date is in the past"), ErrInvalidRange)
	}

	result := &ConfirmResult{}
	var guestContact *shared.GuestSnapshot

	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Rebuilt on retry: a conflicting transaction may have changed
		// which rooms are still free.
		result.Committed = result.Committed[:0]
		result.SkippedRoomIDs = result.SkippedRoomIDs[:0]

		if err := shared.Reconcile(ctx, tx, today); err != nil {
			return err
		}

		g, err := tx.Guests().FindByID(ctx, guestID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrNotFound)
			}
			return err
		}
		guestContact = g

		locked, err := tx.Rooms().LockByIDs(ctx, cc.RoomIDs)
		if err != nil {
			return err
		}
		roomsByID := make(map[uuid.UUID]*shared.RoomSnapshot, len(locked))
		for _, rm := range locked {
			roomsByID[rm.ID] = rm
		}

		for _, roomID := range cc.RoomIDs {
			rm, ok := roomsByID[roomID]
			if !ok {
				// Room deleted since staging; treat like any other stale entry.
				result.SkippedRoomIDs = append(result.SkippedRoomIDs, roomID)
				continue
			}

			existing, err := tx.Bookings().ConfirmedByRoom(ctx, roomID)
			if err != nil {
				return err
			}
			if conflicts(existing, stay) {
				result.SkippedRoomIDs = append(result.SkippedRoomIDs, roomID)
				continue
			}

			b, receipt, err := r.factory.CreateBooking(
				booking.RoomSpec{ID: rm.ID, RateCents: rm.RateCents},
				guestID,
				stay,
			)
			if err != nil {
				return errs.Mark(err, ErrInvalidRange)
			}

			if err := tx.Bookings().Create(ctx, b); err != nil {
				return err
			}
			if err := tx.Receipts().Create(ctx, receipt); err != nil {
				return err
			}
			if err := tx.Rooms().SetAvailability(ctx, rm.ID, false); err != nil {
				return err
			}

			result.Committed = append(result.Committed, ConfirmedBooking{
				BookingID:  b.ID(),
				ReceiptID:  receipt.ID(),
				RoomID:     rm.ID,
				RoomNumber: rm.Number,
				Stay:       stay,
				Nights:     receiptNights(stay),
				TotalCents: receipt.Total().Cents(),
			})
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, shared.ErrTxConflict) {
			return nil, errs.Mark(err, ErrCommitFailed)
		}
		return nil, err
	}

	// The cart must be invalidated on commit so a stale replay cannot
	// produce duplicate bookings.
	if err := r.carts.Clear(ctx, guestID); err != nil {
		slog.Warn("failed to clear cart after commit", "guest_id", guestID, "error", err.Error())
	}

	// One consolidated confirmation for the whole cart, not per room.
	if len(result.Committed) > 0 {
		if err := r.notifier.SendConfirmation(ctx, guestContact, result.Committed); err != nil {
			slog.Warn("confirmation notification failed", "guest_id", guestID, "error", err.Error())
		}
	}

	return result, nil
}

func conflicts(existing []*shared.BookingSnapshot, candidate booking.StayRange) bool {
	for _, b := range existing {
		if b.Status != booking.StatusConfirmed {
			continue
		}
		if b.Stay().Overlaps(candidate) {
			return true
		}
	}
	return false
}

func receiptNights(stay booking.StayRange) int {
	nights := stay.Nights()
	if nights < 1 {
		nights = 1
	}
	return nights
}
