package repository

import (
	"context"
	"time"

	"hotel-management-system/internal/domain/booking"
	"hotel-management-system/internal/infra"
	"hotel-management-system/internal/infra/db"
	"hotel-management-system/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

const bookingColumns = `id, room_id, guest_id, check_in, check_out, status, created_at, updated_at`

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO bookings (id, room_id, guest_id, check_in, check_out, status)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		b.ID(), b.RoomID(), b.GuestID(), b.Stay().CheckIn(), b.Stay().CheckOut(), b.Status())
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err, writeKind(err))
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)

	snap, err := scanBooking(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return snap, nil
}

func (r *BookingRepository) ConfirmedByRoom(ctx context.Context, roomID uuid.UUID) ([]*shared.BookingSnapshot, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE room_id = $1 AND status = $2 ORDER BY check_in`,
		roomID, booking.StatusConfirmed)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list confirmed bookings by room", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *BookingRepository) ConfirmedFrom(ctx context.Context, day time.Time) ([]*shared.BookingSnapshot, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE status = $1 AND check_out >= $2 ORDER BY room_id, check_in`,
		booking.StatusConfirmed, day)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list confirmed bookings", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE bookings
		SET room_id = $2, check_in = $3, check_out = $4, status = $5, updated_at = now()
		WHERE id = $1`,
		b.ID(), b.RoomID(), b.Stay().CheckIn(), b.Stay().CheckOut(), b.Status())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err, writeKind(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1`,
		id, status)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

// CompleteExpired promotes every Confirmed booking whose stay already
// ended. Running it twice in a row is a no-op the second time.
func (r *BookingRepository) CompleteExpired(ctx context.Context, day time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE bookings
		SET status = $1, updated_at = now()
		WHERE status = $2 AND check_out < $3`,
		booking.StatusCompleted, booking.StatusConfirmed, day)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to complete expired bookings", err)
	}
	return tag.RowsAffected(), nil
}

func scanBooking(row rowScanner) (*shared.BookingSnapshot, error) {
	var snap shared.BookingSnapshot
	err := row.Scan(
		&snap.ID, &snap.RoomID, &snap.GuestID,
		&snap.CheckIn, &snap.CheckOut, &snap.Status,
		&snap.CreatedAt, &snap.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

func collectBookings(rows pgx.Rows) ([]*shared.BookingSnapshot, error) {
	var result []*shared.BookingSnapshot
	for rows.Next() {
		snap, err := scanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		result = append(result, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read bookings", err)
	}
	return result, nil
}
