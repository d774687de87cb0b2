package shared

import (
	"context"
	"time"

	"hotel-management-system/internal/domain/booking"
	"hotel-management-system/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrTxConflict marks a transaction that still failed on a write
// conflict after the internal retry; callers surface it as CommitFailed.
var ErrTxConflict = errs.New("transaction write conflict")

type UnitOfWork interface {
	// Within: read-committed transaction; write conflicts are retried
	// once before the error is surfaced marked with ErrTxConflict.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Rooms() RoomRepository
	Bookings() BookingRepository
	Receipts() ReceiptRepository
	Guests() GuestRepository
	Notifications() NotificationRepository
}

type RoomRepository interface {
	// LockByIDs loads rooms in a stable id order under FOR UPDATE so two
	// commits locking an overlapping set of rooms cannot deadlock.
	// Missing ids are simply absent from the result.
	LockByIDs(ctx context.Context, ids []uuid.UUID) ([]*RoomSnapshot, error)
	FindByID(ctx context.Context, id uuid.UUID) (*RoomSnapshot, error)
	FindAll(ctx context.Context) ([]*RoomSnapshot, error)
	SetAvailability(ctx context.Context, id uuid.UUID, available bool) error
	// ReconcileAvailability recomputes the cached flag for every room
	// where it drifted from "no Confirmed booking ending today or later"
	// and reports how many rows actually changed.
	ReconcileAvailability(ctx context.Context, today time.Time) (int64, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	ConfirmedByRoom(ctx context.Context, roomID uuid.UUID) ([]*BookingSnapshot, error)
	// ConfirmedFrom returns every Confirmed booking whose checkout is on
	// or after the given day, across all rooms.
	ConfirmedFrom(ctx context.Context, day time.Time) ([]*BookingSnapshot, error)
	Update(ctx context.Context, b *booking.Booking) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error
	Delete(ctx context.Context, id uuid.UUID) error
	// CompleteExpired promotes Confirmed bookings with checkout strictly
	// before the given day and reports how many rows changed.
	CompleteExpired(ctx context.Context, day time.Time) (int64, error)
}

type ReceiptRepository interface {
	Create(ctx context.Context, r *booking.Receipt) error
	UpdateTotalByBookingID(ctx context.Context, bookingID uuid.UUID, totalCents int64) error
	DeleteByBookingID(ctx context.Context, bookingID uuid.UUID) error
}

type GuestRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*GuestSnapshot, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}
