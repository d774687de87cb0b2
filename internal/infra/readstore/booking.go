package readstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hotel-management-system/internal/infra"
	"hotel-management-system/internal/infra/db"
	"hotel-management-system/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// BookingReadStore serves the query side straight from the pool; it
// never participates in command transactions.
type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

const bookingViewSelect = `
	SELECT b.id, b.room_id, r.number, b.guest_id, g.name,
	       b.check_in, b.check_out, b.status, rc.total_cents, b.created_at
	FROM bookings b
	JOIN rooms r ON r.id = b.room_id
	JOIN guests g ON g.id = b.guest_id
	LEFT JOIN receipts rc ON rc.booking_id = b.id`

func (s *BookingReadStore) ViewByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := s.db.QueryRow(ctx, bookingViewSelect+` WHERE b.id = $1`, id)

	view, err := scanBookingView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load booking view", err)
	}
	return view, nil
}

func (s *BookingReadStore) ListByGuest(ctx context.Context, guestID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := s.db.Query(ctx,
		bookingViewSelect+` WHERE b.guest_id = $1 ORDER BY b.created_at DESC`, guestID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by guest", err)
	}
	defer rows.Close()

	return collectBookingViews(rows)
}

func (s *BookingReadStore) Search(ctx context.Context, term, status string) ([]*queries.BookingView, error) {
	var (
		conds []string
		args  []any
	)
	if term != "" {
		args = append(args, "%"+term+"%")
		conds = append(conds, fmt.Sprintf("(g.name ILIKE $%d OR r.number ILIKE $%d)", len(args), len(args)))
	}
	if status != "" {
		args = append(args, status)
		conds = append(conds, fmt.Sprintf("b.status = $%d", len(args)))
	}

	query := bookingViewSelect
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY b.created_at DESC"

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search bookings", err)
	}
	defer rows.Close()

	return collectBookingViews(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBookingView(row rowScanner) (*queries.BookingView, error) {
	var view queries.BookingView
	err := row.Scan(
		&view.ID, &view.RoomID, &view.RoomNumber, &view.GuestID, &view.GuestName,
		&view.CheckIn, &view.CheckOut, &view.Status, &view.ReceiptTotal, &view.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func collectBookingViews(rows pgx.Rows) ([]*queries.BookingView, error) {
	result := []*queries.BookingView{}
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking view", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking views", err)
	}
	return result, nil
}
