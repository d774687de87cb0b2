package repository

import (
	"context"

	"hotel-management-system/internal/domain/guest"
	"hotel-management-system/internal/infra"
	"hotel-management-system/internal/infra/db"
	"hotel-management-system/internal/usecase/shared"

	"github.com/google/uuid"
)

type GuestRepository struct {
	db db.DBTX
}

func NewGuestRepository(dbtx db.DBTX) *GuestRepository {
	return &GuestRepository{db: dbtx}
}

// Create is used by seeding and by the identity-sync tooling that maps
// principals to guest records.
func (r *GuestRepository) Create(ctx context.Context, g *guest.Guest) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO guests (id, principal_id, name, email, phone)
		VALUES ($1, $2, $3, $4, $5)`,
		g.ID(), g.PrincipalID(), g.Name(), g.Email(), g.Phone())
	if err != nil {
		return infra.WrapRepoErr("failed to create guest", err, writeKind(err))
	}
	return nil
}

func (r *GuestRepository) FindByID(ctx context.Context, id uuid.UUID) (*shared.GuestSnapshot, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, principal_id, name, email, phone FROM guests WHERE id = $1`, id)

	var snap shared.GuestSnapshot
	err := row.Scan(&snap.ID, &snap.PrincipalID, &snap.Name, &snap.Email, &snap.Phone)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("guest not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find guest by ID", err)
	}
	return &snap, nil
}
