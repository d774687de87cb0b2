package commands

import (
	"context"
	"time"

	"hotel-management-system/internal/domain/booking"
	"hotel-management-system/internal/domain/cart"
	"hotel-management-system/internal/infra"
	"hotel-management-system/internal/pkg/clock"
	"hotel-management-system/internal/pkg/errs"
	"hotel-management-system/internal/usecase/shared"

	"github.com/google/uuid"
)

type CartCommands interface {
	AddRoom(ctx context.Context, guestID, roomID uuid.UUID, checkIn, checkOut time.Time) (*cart.Cart, error)
	RemoveRoom(ctx context.Context, guestID, roomID uuid.UUID) (*cart.Cart, error)
	Get(ctx context.Context, guestID uuid.UUID) (*cart.Cart, error)
	Abandon(ctx context.Context, guestID uuid.UUID) error
}

type cartCommandsImpl struct {
	carts cart.Store
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCartCommands(carts cart.Store, uow shared.UnitOfWork, clk clock.Clock) CartCommands {
	return &cartCommandsImpl{
		carts: carts,
		uow:   uow,
		clock: clk,
	}
}

// AddRoom stages a room under the shared proposed range. Staging never
// checks availability; the room may already be taken and that is fine —
// the Transactor re-validates at commit time because availability can
// change between staging and confirmation. Only the range itself and the
// room's existence are validated here.
func (c *cartCommandsImpl) AddRoom(ctx context.Context, guestID, roomID uuid.UUID, checkIn, checkOut time.Time) (*cart.Cart, error) {
	stay, err := booking.NewStayRange(checkIn, checkOut)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRange)
	}
	if stay.StartsBefore(clock.Today(c.clock)) {
		return nil, errs.Mark(errs.New("check-in date is in the past"), ErrInvalidRange)
	}

	if err := c.roomExists(ctx, roomID); err != nil {
		return nil, err
	}

	cc, err := c.carts.Get(ctx, guestID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load cart")
	}
	if cc == nil {
		cc = cart.New()
	}

	// One shared range per cart: a new range applies to every staged room.
	cc.SetStay(stay)
	cc.Add(roomID)

	if err := c.carts.Put(ctx, guestID, cc); err != nil {
		return nil, errs.Wrap(err, "failed to store cart")
	}
	return cc, nil
}

func (c *cartCommandsImpl) RemoveRoom(ctx context.Context, guestID, roomID uuid.UUID) (*cart.Cart, error) {
	cc, err := c.carts.Get(ctx, guestID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load cart")
	}
	if cc == nil {
		return cart.New(), nil
	}

	cc.Remove(roomID)

	if err := c.carts.Put(ctx, guestID, cc); err != nil {
		return nil, errs.Wrap(err, "failed to store cart")
	}
	return cc, nil
}

func (c *cartCommandsImpl) Get(ctx context.Context, guestID uuid.UUID) (*cart.Cart, error) {
	cc, err := c.carts.Get(ctx, guestID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load cart")
	}
	if cc == nil {
		return cart.New(), nil
	}
	return cc, nil
}

func (c *cartCommandsImpl) Abandon(ctx context.Context, guestID uuid.UUID) error {
	if err := c.carts.Clear(ctx, guestID); err != nil {
		return errs.Wrap(err, "failed to clear cart")
	}
	return nil
}

func (c *cartCommandsImpl) roomExists(ctx context.Context, roomID uuid.UUID) error {
	return c.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Rooms().FindByID(ctx, roomID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrNotFound)
			}
			return errs.Wrap(err, "failed to load room")
		}
		return nil
	})
}
