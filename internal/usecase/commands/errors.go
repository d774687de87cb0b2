package commands

import (
	"hotel-management-system/internal/pkg/errs"

	"github.com/google/uuid"
)

// Error taxonomy of the reservation engine. A room lost to a race is NOT
// an error: partial success is the designed outcome and is reported as
// data (SkippedRoomIDs), never as an exception.
var (
	ErrInvalidRange     = errs.New("invalid stay range")
	ErrEmptyCart        = errs.New("cart is empty")
	ErrRoomConflict     = errs.New("room already booked for an overlapping stay")
	ErrNotFound         = errs.New("not found")
	ErrForbidden        = errs.New("forbidden")
	ErrCommitFailed     = errs.New("commit failed")
	ErrBookingFinalized = errs.New("booking already cancelled or completed")
)

// Actor is the explicit authorization predicate: who is asking, and
// whether they carry the staff capability. Ownership checks live here
// instead of in role dispatch spread across handlers.
type Actor struct {
	GuestID uuid.UUID
	Staff   bool
}

func (a Actor) CanManage(ownerID uuid.UUID) bool {
	return a.Staff || a.GuestID == ownerID
}
