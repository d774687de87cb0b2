//go:build unit

package booking

import (
	"testing"
	"time"

	"hotel-management-system/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingCancel(t *testing.T) {
	stay := mustStay(t, date(2026, 6, 1), date(2026, 6, 5))

	t.Run("confirmed booking can be cancelled", func(t *testing.T) {
		b := NewBooking(uuid.New(), uuid.New(), stay)
		require.NoError(t, b.Cancel())
		assert.Equal(t, StatusCancelled, b.Status())
	})

	t.Run("cancelled booking cannot be cancelled again", func(t *testing.T) {
		b := NewBooking(uuid.New(), uuid.New(), stay)
		require.NoError(t, b.Cancel())
		assert.ErrorIs(t, b.Cancel(), ErrNotCancellable)
	})

	t.Run("completed booking cannot be cancelled", func(t *testing.T) {
		b := NewBooking(uuid.New(), uuid.New(), stay)
		b.Complete()
		assert.ErrorIs(t, b.Cancel(), ErrNotCancellable)
	})
}

func TestBookingReschedule(t *testing.T) {
	stay := mustStay(t, date(2026, 6, 1), date(2026, 6, 5))
	newStay := mustStay(t, date(2026, 7, 1), date(2026, 7, 3))

	t.Run("confirmed booking can move room and dates", func(t *testing.T) {
		b := NewBooking(uuid.New(), uuid.New(), stay)
		newRoom := uuid.New()

		require.NoError(t, b.Reschedule(newRoom, newStay))
		assert.Equal(t, newRoom, b.RoomID())
		assert.Equal(t, newStay, b.Stay())
	})

	t.Run("cancelled booking is not editable", func(t *testing.T) {
		b := NewBooking(uuid.New(), uuid.New(), stay)
		require.NoError(t, b.Cancel())
		assert.ErrorIs(t, b.Reschedule(uuid.New(), newStay), ErrNotEditable)
	})
}

func TestBookingExpiry(t *testing.T) {
	stay := mustStay(t, date(2026, 6, 1), date(2026, 6, 5))
	b := NewBooking(uuid.New(), uuid.New(), stay)

	assert.False(t, b.HasExpired(date(2026, 6, 5)))
	assert.True(t, b.HasExpired(date(2026, 6, 6)))
	assert.True(t, b.CoversOrAfter(date(2026, 6, 5)))
	assert.False(t, b.CoversOrAfter(date(2026, 6, 6)))

	b.Complete()
	assert.False(t, b.HasExpired(date(2026, 6, 6)), "only confirmed bookings expire")
	assert.False(t, b.CoversOrAfter(date(2026, 6, 5)), "completed bookings do not block the room")
}

func TestFactoryCreateBooking(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	factory := NewFactory(clock.NewMockClock(now))
	room := RoomSpec{ID: uuid.New(), RateCents: 9000}
	guestID := uuid.New()

	t.Run("total is nightly rate times nights", func(t *testing.T) {
		stay := mustStay(t, date(2026, 6, 5), date(2026, 6, 10))

		b, receipt, err := factory.CreateBooking(room, guestID, stay)
		require.NoError(t, err)

		assert.Equal(t, StatusConfirmed, b.Status())
		assert.Equal(t, room.ID, b.RoomID())
		assert.Equal(t, guestID, b.GuestID())
		assert.Equal(t, b.ID(), receipt.BookingID())
		assert.Equal(t, int64(45000), receipt.Total().Cents(), "5 nights at 9000 cents")
	})

	t.Run("check-in today is allowed", func(t *testing.T) {
		stay := mustStay(t, date(2026, 6, 1), date(2026, 6, 2))

		_, _, err := factory.CreateBooking(room, guestID, stay)
		assert.NoError(t, err)
	})

	t.Run("check-in in the past is rejected", func(t *testing.T) {
		stay := mustStay(t, date(2026, 5, 30), date(2026, 6, 2))

		_, _, err := factory.CreateBooking(room, guestID, stay)
		assert.ErrorIs(t, err, ErrCheckInPast)
	})

	t.Run("single-night stay bills one night", func(t *testing.T) {
		stay := mustStay(t, date(2026, 6, 2), date(2026, 6, 3))

		_, receipt, err := factory.CreateBooking(room, guestID, stay)
		require.NoError(t, err)
		assert.Equal(t, int64(9000), receipt.Total().Cents())
	})
}
