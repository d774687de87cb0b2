//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hotel-management-system/internal/domain/booking"
	"hotel-management-system/internal/domain/cart"
	"hotel-management-system/internal/infra/cartstore"
	"hotel-management-system/internal/pkg/clock"
	"hotel-management-system/internal/usecase/commands"
	"hotel-management-system/internal/usecase/shared"
	"hotel-management-system/tests/common/fake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cartFixture struct {
	uow     *fake.UnitOfWork
	carts   cart.Store
	svc     commands.CartCommands
	guestID uuid.UUID
}

func newCartFixture(t *testing.T, now time.Time) *cartFixture {
	t.Helper()

	f := &cartFixture{
		uow:     fake.NewUnitOfWork(),
		carts:   cartstore.NewMemoryStore(),
		guestID: uuid.New(),
	}
	f.svc = commands.NewCartCommands(f.carts, f.uow, clock.NewMockClock(now))
	return f
}

func (f *cartFixture) addRoom() uuid.UUID {
	id := uuid.New()
	f.uow.AddRoom(shared.RoomSnapshot{
		ID: id, Number: "101", RoomType: "single", RateCents: 9000, Available: true,
	})
	return id
}

func TestCartAddRoom(t *testing.T) {
	today := date(2026, 6, 1)

	t.Run("staging an unavailable-looking room is allowed", func(t *testing.T) {
		f := newCartFixture(t, today)
		roomID := uuid.New()
		// Cached flag false and an active booking: staging must not care.
		f.uow.AddRoom(shared.RoomSnapshot{ID: roomID, Number: "101", RoomType: "single", RateCents: 9000, Available: false})
		f.uow.AddBooking(shared.BookingSnapshot{
			ID: uuid.New(), RoomID: roomID, GuestID: uuid.New(),
			CheckIn: date(2026, 6, 5), CheckOut: date(2026, 6, 10),
			Status: booking.StatusConfirmed,
		})

		cc, err := f.svc.AddRoom(context.Background(), f.guestID, roomID, date(2026, 6, 5), date(2026, 6, 10))
		require.NoError(t, err)
		assert.True(t, cc.Contains(roomID))
	})

	t.Run("invalid range is rejected", func(t *testing.T) {
		f := newCartFixture(t, today)
		roomID := f.addRoom()

		_, err := f.svc.AddRoom(context.Background(), f.guestID, roomID, date(2026, 6, 10), date(2026, 6, 5))
		assert.ErrorIs(t, err, commands.ErrInvalidRange)

		_, err = f.svc.AddRoom(context.Background(), f.guestID, roomID, date(2026, 6, 5), date(2026, 6, 5))
		assert.ErrorIs(t, err, commands.ErrInvalidRange)
	})

	t.Run("past check-in is rejected at staging", func(t *testing.T) {
		f := newCartFixture(t, today)
		roomID := f.addRoom()

		_, err := f.svc.AddRoom(context.Background(), f.guestID, roomID, date(2026, 5, 28), date(2026, 5, 30))
		assert.ErrorIs(t, err, commands.ErrInvalidRange)
	})

	t.Run("unknown room is rejected", func(t *testing.T) {
		f := newCartFixture(t, today)

		_, err := f.svc.AddRoom(context.Background(), f.guestID, uuid.New(), date(2026, 6, 5), date(2026, 6, 10))
		assert.ErrorIs(t, err, commands.ErrNotFound)
	})

	t.Run("a new range replaces the shared one for every staged room", func(t *testing.T) {
		f := newCartFixture(t, today)
		roomA := f.addRoom()
		roomB := f.addRoom()

		_, err := f.svc.AddRoom(context.Background(), f.guestID, roomA, date(2026, 6, 5), date(2026, 6, 10))
		require.NoError(t, err)

		cc, err := f.svc.AddRoom(context.Background(), f.guestID, roomB, date(2026, 7, 1), date(2026, 7, 3))
		require.NoError(t, err)

		assert.Len(t, cc.RoomIDs, 2)
		stay, err := cc.Stay()
		require.NoError(t, err)
		assert.True(t, stay.CheckIn().Equal(date(2026, 7, 1)))
		assert.True(t, stay.CheckOut().Equal(date(2026, 7, 3)))
	})
}

func TestCartRemoveAndAbandon(t *testing.T) {
	today := date(2026, 6, 1)
	f := newCartFixture(t, today)
	roomA := f.addRoom()
	roomB := f.addRoom()

	_, err := f.svc.AddRoom(context.Background(), f.guestID, roomA, date(2026, 6, 5), date(2026, 6, 10))
	require.NoError(t, err)
	_, err = f.svc.AddRoom(context.Background(), f.guestID, roomB, date(2026, 6, 5), date(2026, 6, 10))
	require.NoError(t, err)

	t.Run("remove keeps the rest of the cart", func(t *testing.T) {
		cc, err := f.svc.RemoveRoom(context.Background(), f.guestID, roomA)
		require.NoError(t, err)
		assert.False(t, cc.Contains(roomA))
		assert.True(t, cc.Contains(roomB))
	})

	t.Run("remove on an absent cart yields an empty cart", func(t *testing.T) {
		cc, err := f.svc.RemoveRoom(context.Background(), uuid.New(), roomA)
		require.NoError(t, err)
		assert.True(t, cc.IsEmpty())
	})

	t.Run("abandon drops everything", func(t *testing.T) {
		require.NoError(t, f.svc.Abandon(context.Background(), f.guestID))

		cc, err := f.svc.Get(context.Background(), f.guestID)
		require.NoError(t, err)
		assert.True(t, cc.IsEmpty())
		assert.False(t, cc.HasStay())
	})
}
