package uow

import (
	"context"
	"crypto/rand"
	"errors"
	"log/slog"
	"math/big"
	"time"

	"hotel-management-system/internal/infra/repository"
	"hotel-management-system/internal/pkg/errs"
	"hotel-management-system/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"

	// One retry before the conflict is surfaced to the caller.
	maxRetries  = 1
	baseBackoff = 20 * time.Millisecond
)

type PostgresUnitOfWork struct {
	pool *pgxpool.Pool
}

func NewPostgresUnitOfWork(pool *pgxpool.Pool) *PostgresUnitOfWork {
	return &PostgresUnitOfWork{pool: pool}
}

func (u *PostgresUnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			slog.Warn("retrying transaction after write conflict", "attempt", attempt)
			sleepWithJitter(ctx, attempt)
		}

		lastErr = u.runInTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
		if lastErr == nil || !isRetryable(lastErr) {
			return lastErr
		}
	}
	return errs.Mark(lastErr, shared.ErrTxConflict)
}

func (u *PostgresUnitOfWork) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted, AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUnitOfWork) runInTx(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgtx, err := u.pool.BeginTx(ctx, opts)
	if err != nil {
		return errs.Wrap(err, "failed to begin transaction")
	}
	defer func() {
		// Rollback after a successful commit is a harmless no-op.
		_ = pgtx.Rollback(ctx)
	}()

	if err := fn(ctx, newTx(pgtx)); err != nil {
		return err
	}

	if err := pgtx.Commit(ctx); err != nil {
		return errs.Wrap(err, "failed to commit transaction")
	}
	return nil
}

func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgErrCodeSerializationFailure || pgErr.Code == pgErrCodeDeadlockDetected
}

func sleepWithJitter(ctx context.Context, attempt int) {
	backoff := baseBackoff << uint(attempt-1)
	if n, err := rand.Int(rand.Reader, big.NewInt(int64(backoff))); err == nil {
		backoff += time.Duration(n.Int64())
	}
	select {
	case <-ctx.Done():
	case <-time.After(backoff):
	}
}

// tx hands out repositories bound to the same pgx transaction. Repos
// are built lazily so read-only paths pay only for what they touch.
type tx struct {
	conn pgx.Tx

	rooms         *repository.RoomRepository
	bookings      *repository.BookingRepository
	receipts      *repository.ReceiptRepository
	guests        *repository.GuestRepository
	notifications *repository.NotificationRepository
}

func newTx(conn pgx.Tx) *tx {
	return &tx{conn: conn}
}

func (t *tx) Rooms() shared.RoomRepository {
	if t.rooms == nil {
		t.rooms = repository.NewRoomRepository(t.conn)
	}
	return t.rooms
}

func (t *tx) Bookings() shared.BookingRepository {
	if t.bookings == nil {
		t.bookings = repository.NewBookingRepository(t.conn)
	}
	return t.bookings
}

func (t *tx) Receipts() shared.ReceiptRepository {
	if t.receipts == nil {
		t.receipts = repository.NewReceiptRepository(t.conn)
	}
	return t.receipts
}

func (t *tx) Guests() shared.GuestRepository {
	if t.guests == nil {
		t.guests = repository.NewGuestRepository(t.conn)
	}
	return t.guests
}

func (t *tx) Notifications() shared.NotificationRepository {
	if t.notifications == nil {
		t.notifications = repository.NewNotificationRepository(t.conn)
	}
	return t.notifications
}
