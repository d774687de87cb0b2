package queries

import (
	"context"

	"hotel-management-system/internal/infra"
	"hotel-management-system/internal/pkg/clock"
	"hotel-management-system/internal/pkg/errs"
	"hotel-management-system/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrNotOwner        = errs.New("booking belongs to another guest")
)

type BookingQueries interface {
	// GetByID returns the booking view if the actor owns it or is staff.
	GetByID(ctx context.Context, actorGuestID uuid.UUID, staff bool, id uuid.UUID) (*BookingView, error)
	ListByGuest(ctx context.Context, guestID uuid.UUID) ([]*BookingView, error)
	// SearchAdmin lists bookings filtered by guest name / room number and
	// status, for the staff screens.
	SearchAdmin(ctx context.Context, term, status string) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBookingQueries(store BookingReadStore, uow shared.UnitOfWork, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{
		store: store,
		uow:   uow,
		clock: clk,
	}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actorGuestID uuid.UUID, staff bool, id uuid.UUID) (*BookingView, error) {
	q.reconcile(ctx)

	view, err := q.store.ViewByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBookingNotFound)
		}
		return nil, err
	}
	if !staff && view.GuestID != actorGuestID {
		return nil, ErrNotOwner
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByGuest(ctx context.Context, guestID uuid.UUID) ([]*BookingView, error) {
	q.reconcile(ctx)
	return q.store.ListByGuest(ctx, guestID)
}

func (q *bookingQueriesImpl) SearchAdmin(ctx context.Context, term, status string) ([]*BookingView, error) {
	q.reconcile(ctx)
	return q.store.Search(ctx, term, status)
}

// Statuses are promoted on read so a listing never shows a stay that
// ended yesterday as Confirmed. A reconcile failure only degrades
// freshness, it never blocks the read itself.
func (q *bookingQueriesImpl) reconcile(ctx context.Context) {
	today := clock.Today(q.clock)
	_ = q.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return shared.Reconcile(ctx, tx, today)
	})
}
