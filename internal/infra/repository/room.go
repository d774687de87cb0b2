package repository

import (
	"context"
	"sort"
	"time"

	"hotel-management-system/internal/domain/room"
	"hotel-management-system/internal/infra"
	"hotel-management-system/internal/infra/db"
	"hotel-management-system/internal/usecase/shared"

	"github.com/google/uuid"
)

type RoomRepository struct {
	db db.DBTX
}

func NewRoomRepository(dbtx db.DBTX) *RoomRepository {
	return &RoomRepository{db: dbtx}
}

const roomColumns = `id, number, room_type, rate_cents, available`

// Create is used by seeding and admin tooling; the reservation flows
// themselves never add rooms.
func (r *RoomRepository) Create(ctx context.Context, rm *room.Room) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO rooms (id, number, room_type, rate_cents, available)
		VALUES ($1, $2, $3, $4, $5)`,
		rm.ID(), rm.Number(), rm.RoomType(), rm.RateCents(), rm.Available())
	if err != nil {
		return infra.WrapRepoErr("failed to create room", err, writeKind(err))
	}
	return nil
}

// LockByIDs acquires the per-room row locks in ascending id order so two
// commits over intersecting room sets always lock in the same sequence.
func (r *RoomRepository) LockByIDs(ctx context.Context, ids []uuid.UUID) ([]*shared.RoomSnapshot, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	ordered := make([]string, len(ids))
	for i, id := range ids {
		ordered[i] = id.String()
	}
	sort.Strings(ordered)

	rows, err := r.db.Query(ctx,
		`SELECT `+roomColumns+` FROM rooms WHERE id = ANY($1::uuid[]) ORDER BY id FOR UPDATE`,
		ordered)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock rooms", err)
	}
	defer rows.Close()

	var result []*shared.RoomSnapshot
	for rows.Next() {
		snap, err := scanRoom(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan room", err)
		}
		result = append(result, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read locked rooms", err)
	}
	return result, nil
}

func (r *RoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*shared.RoomSnapshot, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+roomColumns+` FROM rooms WHERE id = $1`, id)

	snap, err := scanRoom(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}
	return snap, nil
}

func (r *RoomRepository) FindAll(ctx context.Context) ([]*shared.RoomSnapshot, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+roomColumns+` FROM rooms ORDER BY number`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find all rooms", err)
	}
	defer rows.Close()

	var result []*shared.RoomSnapshot
	for rows.Next() {
		snap, err := scanRoom(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan room", err)
		}
		result = append(result, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read rooms", err)
	}
	return result, nil
}

func (r *RoomRepository) SetAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE rooms SET available = $2, updated_at = now() WHERE id = $1`,
		id, available)
	if err != nil {
		return infra.WrapRepoErr("failed to update room availability", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

// ReconcileAvailability rewrites the cached flag only where it drifted,
// keeping the operation idempotent.
func (r *RoomRepository) ReconcileAvailability(ctx context.Context, today time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE rooms r
		SET available = sub.should_be, updated_at = now()
		FROM (
			SELECT r2.id,
			       NOT EXISTS (
			           SELECT 1 FROM bookings b
			           WHERE b.room_id = r2.id
			             AND b.status = 'confirmed'
			             AND b.check_out >= $1
			       ) AS should_be
			FROM rooms r2
		) sub
		WHERE sub.id = r.id
		  AND r.available IS DISTINCT FROM sub.should_be`,
		today)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to reconcile room availability", err)
	}
	return tag.RowsAffected(), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRoom(row rowScanner) (*shared.RoomSnapshot, error) {
	var snap shared.RoomSnapshot
	err := row.Scan(&snap.ID, &snap.Number, &snap.RoomType, &snap.RateCents, &snap.Available)
	if err != nil {
		return nil, err
	}
	return &snap, nil
}
