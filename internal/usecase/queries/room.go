package queries

import (
	"context"
	"time"

	"hotel-management-system/internal/domain/booking"
	"hotel-management-system/internal/pkg/clock"
	"hotel-management-system/internal/pkg/errs"
	"hotel-management-system/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrInvalidSearchRange = errs.New("invalid search range")

type RoomQueries interface {
	// SearchAvailable returns rooms with no Confirmed booking
	// overlapping the requested range. Absent dates yield an empty list.
	SearchAvailable(ctx context.Context, checkIn, checkOut *time.Time) ([]*RoomView, error)
}

type roomQueriesImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRoomQueries(uow shared.UnitOfWork, clk clock.Clock) RoomQueries {
	return &roomQueriesImpl{
		uow:   uow,
		clock: clk,
	}
}

// The cached availability flag is not self-updating, so reconciliation
// and the overlap filtering run inside one transaction; presenting stale
// availability here would invite commit-time skips the guest could have
// avoided.
func (q *roomQueriesImpl) SearchAvailable(ctx context.Context, checkIn, checkOut *time.Time) ([]*RoomView, error) {
	if checkIn == nil || checkOut == nil {
		return []*RoomView{}, nil
	}

	stay, err := booking.NewStayRange(*checkIn, *checkOut)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSearchRange)
	}

	today := clock.Today(q.clock)
	var views []*RoomView

	err = q.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := shared.Reconcile(ctx, tx, today); err != nil {
			return err
		}

		rooms, err := tx.Rooms().FindAll(ctx)
		if err != nil {
			return err
		}
		active, err := tx.Bookings().ConfirmedFrom(ctx, today)
		if err != nil {
			return err
		}

		blocked := make(map[uuid.UUID]bool)
		for _, b := range active {
			if b.Stay().Overlaps(stay) {
				blocked[b.RoomID] = true
			}
		}

		views = make([]*RoomView, 0, len(rooms))
		for _, rm := range rooms {
			if blocked[rm.ID] {
				continue
			}
			views = append(views, &RoomView{
				ID:        rm.ID,
				Number:    rm.Number,
				RoomType:  rm.RoomType,
				RateCents: rm.RateCents,
				Available: rm.Available,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return views, nil
}
