package shared

import (
	"context"
	"log/slog"
	"time"

	"hotel-management-system/internal/pkg/errs"
)

// Reconcile brings booking statuses and cached room availability in line
// with the current date: Confirmed bookings whose checkout has passed
// become Completed, and each room's `available` flag is recomputed as
// "no Confirmed booking ending today or later". Only drifted rows are
// written, so running it twice with no time elapsed is a no-op.
//
// The cached flag is not self-updating; callers run this inside the same
// transaction as any availability read or conflict check that follows.
func Reconcile(ctx context.Context, tx Tx, today time.Time) error {
	completed, err := tx.Bookings().CompleteExpired(ctx, today)
	if err != nil {
		return errs.Wrap(err, "failed to complete expired bookings")
	}

	flipped, err := tx.Rooms().ReconcileAvailability(ctx, today)
	if err != nil {
		return errs.Wrap(err, "failed to reconcile room availability")
	}

	if completed > 0 || flipped > 0 {
		slog.Debug("availability reconciled",
			"bookings_completed", completed,
			"rooms_flipped", flipped)
	}

	return nil
}
