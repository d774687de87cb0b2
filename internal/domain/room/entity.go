package room

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyRoomNumber = errors.New("room number cannot be empty")
	ErrEmptyRoomType   = errors.New("room type cannot be empty")
	ErrNegativeRate    = errors.New("nightly rate cannot be negative")
)

// Room caches a derived `available` flag; the flag is only meaningful
// after reconciliation and is owned by the reservation engine, never
// mutated by callers directly.
type Room struct {
	id        uuid.UUID
	number    string
	roomType  string
	rateCents int64
	available bool
	createdAt time.Time
	updatedAt time.Time
}

func NewRoom(number, roomType string, rateCents int64) (*Room, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, ErrEmptyRoomNumber
	}
	roomType = strings.TrimSpace(roomType)
	if roomType == "" {
		return nil, ErrEmptyRoomType
	}
	if rateCents < 0 {
		return nil, ErrNegativeRate
	}

	return &Room{
		id:        uuid.New(),
		number:    number,
		roomType:  roomType,
		rateCents: rateCents,
		available: true,
	}, nil
}

func ReconstructRoom(
	id uuid.UUID,
	number, roomType string,
	rateCents int64,
	available bool,
	createdAt, updatedAt time.Time,
) *Room {
	return &Room{
		id:        id,
		number:    number,
		roomType:  roomType,
		rateCents: rateCents,
		available: available,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *Room) ID() uuid.UUID        { return r.id }
func (r *Room) Number() string       { return r.number }
func (r *Room) RoomType() string     { return r.roomType }
func (r *Room) RateCents() int64     { return r.rateCents }
func (r *Room) Available() bool      { return r.available }
func (r *Room) CreatedAt() time.Time { return r.createdAt }
func (r *Room) UpdatedAt() time.Time { return r.updatedAt }
