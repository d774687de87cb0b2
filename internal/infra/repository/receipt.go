package repository

import (
	"context"

	"hotel-management-system/internal/domain/booking"
	"hotel-management-system/internal/infra"
	"hotel-management-system/internal/infra/db"

	"github.com/google/uuid"
)

type ReceiptRepository struct {
	db db.DBTX
}

func NewReceiptRepository(dbtx db.DBTX) *ReceiptRepository {
	return &ReceiptRepository{db: dbtx}
}

func (r *ReceiptRepository) Create(ctx context.Context, receipt *booking.Receipt) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO receipts (id, booking_id, total_cents)
		VALUES ($1, $2, $3)`,
		receipt.ID(), receipt.BookingID(), receipt.Total().Cents())
	if err != nil {
		return infra.WrapRepoErr("failed to create receipt", err, writeKind(err))
	}
	return nil
}

func (r *ReceiptRepository) UpdateTotalByBookingID(ctx context.Context, bookingID uuid.UUID, totalCents int64) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE receipts SET total_cents = $2 WHERE booking_id = $1`,
		bookingID, totalCents)
	if err != nil {
		return infra.WrapRepoErr("failed to update receipt total", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("receipt not found", nil, infra.KindNotFound)
	}
	return nil
}

// DeleteByBookingID is tolerant of a missing row: cancellation paths may
// run it after the receipt was already removed.
func (r *ReceiptRepository) DeleteByBookingID(ctx context.Context, bookingID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM receipts WHERE booking_id = $1`, bookingID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete receipt", err)
	}
	return nil
}
