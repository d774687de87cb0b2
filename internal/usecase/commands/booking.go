package commands

import (
	"context"
	"errors"
	"time"

	"hotel-management-system/internal/domain/booking"
	"hotel-management-system/internal/infra"
	"hotel-management-system/internal/pkg/clock"
	"hotel-management-system/internal/pkg/errs"
	"hotel-management-system/internal/usecase/shared"

	"github.com/google/uuid"
)

type UpdateBookingParams struct {
	RoomID   *uuid.UUID
	CheckIn  *time.Time
	CheckOut *time.Time
}

type BookingCommands interface {
	Cancel(ctx context.Context, actor Actor, bookingID uuid.UUID) error
	Update(ctx context.Context, actor Actor, bookingID uuid.UUID, params UpdateBookingParams) error
	Delete(ctx context.Context, actor Actor, bookingID uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{
		uow:   uow,
		clock: clk,
	}
}

// Cancel moves a Confirmed booking to Cancelled, removes its receipt and
// releases the room unless another Confirmed booking still covers
// today-or-later. Guests may only cancel their own bookings; staff may
// cancel any.
func (b *bookingCommandsImpl) Cancel(ctx context.Context, actor Actor, bookingID uuid.UUID) error {
	today := clock.Today(b.clock)

	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := shared.Reconcile(ctx, tx, today); err != nil {
			return err
		}

		snap, err := b.loadBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if !actor.CanManage(snap.GuestID) {
			return ErrForbidden
		}

		entity := snap.ToEntity()
		if err := entity.Cancel(); err != nil {
			return errs.Mark(err, ErrBookingFinalized)
		}

		if err := tx.Bookings().UpdateStatus(ctx, bookingID, entity.Status()); err != nil {
			return err
		}
		if err := tx.Receipts().DeleteByBookingID(ctx, bookingID); err != nil {
			return err
		}

		return releaseRoomIfIdle(ctx, tx, snap.RoomID, today)
	})
	return translateTxErr(err)
}

// Update edits a booking's dates and/or moves it to another room. The
// overlap check re-runs against all other Confirmed bookings on the
// target room, excluding the booking itself; a room move releases the
// old room and reserves the new one. Staff capability required.
func (b *bookingCommandsImpl) Update(ctx context.Context, actor Actor, bookingID uuid.UUID, params UpdateBookingParams) error {
	if !actor.Staff {
		return ErrForbidden
	}
	today := clock.Today(b.clock)

	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := shared.Reconcile(ctx, tx, today); err != nil {
			return err
		}

		snap, err := b.loadBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if snap.Status != booking.StatusConfirmed {
			return ErrBookingFinalized
		}

		oldRoomID := snap.RoomID
		newRoomID := oldRoomID
		if params.RoomID != nil {
			newRoomID = *params.RoomID
		}

		newStay := snap.Stay()
		if params.CheckIn != nil || params.CheckOut != nil {
			checkIn := snap.CheckIn
			checkOut := snap.CheckOut
			if params.CheckIn != nil {
				checkIn = *params.CheckIn
			}
			if params.CheckOut != nil {
				checkOut = *params.CheckOut
			}
			newStay, err = booking.NewStayRange(checkIn, checkOut)
			if err != nil {
				return errs.Mark(err, ErrInvalidRange)
			}
		}

		locked, err := tx.Rooms().LockByIDs(ctx, []uuid.UUID{oldRoomID, newRoomID})
		if err != nil {
			return err
		}
		var newRoom *shared.RoomSnapshot
		for _, rm := range locked {
			if rm.ID == newRoomID {
				newRoom = rm
			}
		}
		if newRoom == nil {
			return errs.Mark(errs.New("target room does not exist"), ErrNotFound)
		}

		others, err := tx.Bookings().ConfirmedByRoom(ctx, newRoomID)
		if err != nil {
			return err
		}
		for _, other := range others {
			if other.ID == bookingID {
				continue
			}
			if other.Stay().Overlaps(newStay) {
				return ErrRoomConflict
			}
		}

		entity := snap.ToEntity()
		if err := entity.Reschedule(newRoomID, newStay); err != nil {
			return errs.Mark(err, ErrBookingFinalized)
		}
		if err := tx.Bookings().Update(ctx, entity); err != nil {
			return err
		}

		// The receipt follows the booking: re-billed at the target
		// room's current rate for the new stay length.
		total := booking.NewMoney(newRoom.RateCents).Mul(int64(receiptNights(newStay)))
		if err := tx.Receipts().UpdateTotalByBookingID(ctx, bookingID, total.Cents()); err != nil {
			return err
		}

		if !newStay.EndedBefore(today) {
			if err := tx.Rooms().SetAvailability(ctx, newRoomID, false); err != nil {
				return err
			}
		}
		if oldRoomID != newRoomID {
			if err := releaseRoomIfIdle(ctx, tx, oldRoomID, today); err != nil {
				return err
			}
		}
		return nil
	})
	return translateTxErr(err)
}

// Delete removes the booking and its receipt entirely and releases the
// room if no other active Confirmed booking remains. Staff only.
func (b *bookingCommandsImpl) Delete(ctx context.Context, actor Actor, bookingID uuid.UUID) error {
	if !actor.Staff {
		return ErrForbidden
	}
	today := clock.Today(b.clock)

	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := b.loadBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}

		if _, err := tx.Rooms().LockByIDs(ctx, []uuid.UUID{snap.RoomID}); err != nil {
			return err
		}
		if err := tx.Receipts().DeleteByBookingID(ctx, bookingID); err != nil {
			return err
		}
		if err := tx.Bookings().Delete(ctx, bookingID); err != nil {
			return err
		}

		return releaseRoomIfIdle(ctx, tx, snap.RoomID, today)
	})
	return translateTxErr(err)
}

func (b *bookingCommandsImpl) loadBooking(ctx context.Context, tx shared.Tx, id uuid.UUID) (*shared.BookingSnapshot, error) {
	snap, err := tx.Bookings().FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrNotFound)
		}
		return nil, err
	}
	return snap, nil
}

// releaseRoomIfIdle flips the room back to available unless another
// Confirmed booking on it still covers today-or-later.
func releaseRoomIfIdle(ctx context.Context, tx shared.Tx, roomID uuid.UUID, today time.Time) error {
	remaining, err := tx.Bookings().ConfirmedByRoom(ctx, roomID)
	if err != nil {
		return err
	}
	for _, other := range remaining {
		if !other.Stay().EndedBefore(today) {
			return nil
		}
	}
	return tx.Rooms().SetAvailability(ctx, roomID, true)
}

func translateTxErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, shared.ErrTxConflict) {
		return errs.Mark(err, ErrCommitFailed)
	}
	return err
}
