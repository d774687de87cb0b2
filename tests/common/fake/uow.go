//go:build unit

// Package fake provides an in-memory persistence layer implementing the
// command-side ports, so use case behavior is testable without postgres.
// Within serializes transactions on one mutex, which mirrors the
// serialization the per-room row locks provide in production.
package fake

import (
	"context"
	"sort"
	"sync"
	"time"

	"hotel-management-system/internal/domain/booking"
	"hotel-management-system/internal/infra"
	"hotel-management-system/internal/usecase/shared"

	"github.com/google/uuid"
)

type UnitOfWork struct {
	mu    sync.Mutex
	state *State

	// FailWrites makes every Within call fail with the given error, to
	// exercise conflict handling.
	FailWrites error
}

// State is the shared backing store; snapshots are copied in and out so
// tests cannot mutate it accidentally.
type State struct {
	Rooms    map[uuid.UUID]*shared.RoomSnapshot
	Bookings map[uuid.UUID]*shared.BookingSnapshot
	Receipts map[uuid.UUID]*receiptRow // keyed by booking id
	Guests   map[uuid.UUID]*shared.GuestSnapshot
	Jobs     []NotificationJob
}

type receiptRow struct {
	ID         uuid.UUID
	BookingID  uuid.UUID
	TotalCents int64
}

type NotificationJob struct {
	Kind    string
	Topic   string
	Payload []byte
	RunAt   time.Time
}

func NewUnitOfWork() *UnitOfWork {
	return &UnitOfWork{
		state: &State{
			Rooms:    make(map[uuid.UUID]*shared.RoomSnapshot),
			Bookings: make(map[uuid.UUID]*shared.BookingSnapshot),
			Receipts: make(map[uuid.UUID]*receiptRow),
			Guests:   make(map[uuid.UUID]*shared.GuestSnapshot),
		},
	}
}

func (u *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.FailWrites != nil {
		return u.FailWrites
	}

	working := u.state.clone()
	if err := fn(ctx, &tx{state: working}); err != nil {
		return err
	}
	u.state = working
	return nil
}

func (u *UnitOfWork) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	// Reads run on a copy; nothing is published back.
	return fn(ctx, &tx{state: u.state.clone()})
}

// Mutators below seed state between transactions.

func (u *UnitOfWork) AddRoom(snap shared.RoomSnapshot) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.state.Rooms[snap.ID] = &snap
}

func (u *UnitOfWork) AddGuest(snap shared.GuestSnapshot) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.state.Guests[snap.ID] = &snap
}

func (u *UnitOfWork) AddBooking(snap shared.BookingSnapshot) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.state.Bookings[snap.ID] = &snap
}

func (u *UnitOfWork) AddReceipt(bookingID uuid.UUID, totalCents int64) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.state.Receipts[bookingID] = &receiptRow{ID: uuid.New(), BookingID: bookingID, TotalCents: totalCents}
}

// Accessors for assertions.

func (u *UnitOfWork) Room(id uuid.UUID) shared.RoomSnapshot {
	u.mu.Lock()
	defer u.mu.Unlock()
	return *u.state.Rooms[id]
}

func (u *UnitOfWork) Booking(id uuid.UUID) (shared.BookingSnapshot, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	b, ok := u.state.Bookings[id]
	if !ok {
		return shared.BookingSnapshot{}, false
	}
	return *b, true
}

func (u *UnitOfWork) BookingsByRoom(roomID uuid.UUID) []shared.BookingSnapshot {
	u.mu.Lock()
	defer u.mu.Unlock()
	var out []shared.BookingSnapshot
	for _, b := range u.state.Bookings {
		if b.RoomID == roomID {
			out = append(out, *b)
		}
	}
	return out
}

func (u *UnitOfWork) ReceiptTotal(bookingID uuid.UUID) (int64, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	r, ok := u.state.Receipts[bookingID]
	if !ok {
		return 0, false
	}
	return r.TotalCents, true
}

func (u *UnitOfWork) Notifications() []NotificationJob {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]NotificationJob(nil), u.state.Jobs...)
}

func (s *State) clone() *State {
	out := &State{
		Rooms:    make(map[uuid.UUID]*shared.RoomSnapshot, len(s.Rooms)),
		Bookings: make(map[uuid.UUID]*shared.BookingSnapshot, len(s.Bookings)),
		Receipts: make(map[uuid.UUID]*receiptRow, len(s.Receipts)),
		Guests:   make(map[uuid.UUID]*shared.GuestSnapshot, len(s.Guests)),
		Jobs:     append([]NotificationJob(nil), s.Jobs...),
	}
	for id, r := range s.Rooms {
		copied := *r
		out.Rooms[id] = &copied
	}
	for id, b := range s.Bookings {
		copied := *b
		out.Bookings[id] = &copied
	}
	for id, r := range s.Receipts {
		copied := *r
		out.Receipts[id] = &copied
	}
	for id, g := range s.Guests {
		copied := *g
		out.Guests[id] = &copied
	}
	return out
}

type tx struct {
	state *State
}

func (t *tx) Rooms() shared.RoomRepository                 { return &roomRepo{state: t.state} }
func (t *tx) Bookings() shared.BookingRepository           { return &bookingRepo{state: t.state} }
func (t *tx) Receipts() shared.ReceiptRepository           { return &receiptRepo{state: t.state} }
func (t *tx) Guests() shared.GuestRepository               { return &guestRepo{state: t.state} }
func (t *tx) Notifications() shared.NotificationRepository { return &notificationRepo{state: t.state} }

type roomRepo struct {
	state *State
}

func (r *roomRepo) LockByIDs(_ context.Context, ids []uuid.UUID) ([]*shared.RoomSnapshot, error) {
	ordered := append([]uuid.UUID(nil), ids...)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].String() < ordered[j].String() })

	var out []*shared.RoomSnapshot
	for _, id := range ordered {
		if snap, ok := r.state.Rooms[id]; ok {
			copied := *snap
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *roomRepo) FindByID(_ context.Context, id uuid.UUID) (*shared.RoomSnapshot, error) {
	snap, ok := r.state.Rooms[id]
	if !ok {
		return nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	copied := *snap
	return &copied, nil
}

func (r *roomRepo) FindAll(_ context.Context) ([]*shared.RoomSnapshot, error) {
	out := make([]*shared.RoomSnapshot, 0, len(r.state.Rooms))
	for _, snap := range r.state.Rooms {
		copied := *snap
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out, nil
}

func (r *roomRepo) SetAvailability(_ context.Context, id uuid.UUID, available bool) error {
	snap, ok := r.state.Rooms[id]
	if !ok {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	snap.Available = available
	return nil
}

func (r *roomRepo) ReconcileAvailability(_ context.Context, today time.Time) (int64, error) {
	var changed int64
	for id, rm := range r.state.Rooms {
		shouldBe := true
		for _, b := range r.state.Bookings {
			if b.RoomID == id && b.Status == booking.StatusConfirmed && !b.Stay().EndedBefore(today) {
				shouldBe = false
				break
			}
		}
		if rm.Available != shouldBe {
			rm.Available = shouldBe
			changed++
		}
	}
	return changed, nil
}

type bookingRepo struct {
	state *State
}

func (r *bookingRepo) Create(_ context.Context, b *booking.Booking) error {
	r.state.Bookings[b.ID()] = &shared.BookingSnapshot{
		ID:       b.ID(),
		RoomID:   b.RoomID(),
		GuestID:  b.GuestID(),
		CheckIn:  b.Stay().CheckIn(),
		CheckOut: b.Stay().CheckOut(),
		Status:   b.Status(),
	}
	return nil
}

func (r *bookingRepo) FindByID(_ context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	snap, ok := r.state.Bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	copied := *snap
	return &copied, nil
}

func (r *bookingRepo) ConfirmedByRoom(_ context.Context, roomID uuid.UUID) ([]*shared.BookingSnapshot, error) {
	var out []*shared.BookingSnapshot
	for _, b := range r.state.Bookings {
		if b.RoomID == roomID && b.Status == booking.StatusConfirmed {
			copied := *b
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *bookingRepo) ConfirmedFrom(_ context.Context, day time.Time) ([]*shared.BookingSnapshot, error) {
	var out []*shared.BookingSnapshot
	for _, b := range r.state.Bookings {
		if b.Status == booking.StatusConfirmed && !b.Stay().EndedBefore(day) {
			copied := *b
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *bookingRepo) Update(_ context.Context, b *booking.Booking) error {
	snap, ok := r.state.Bookings[b.ID()]
	if !ok {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	snap.RoomID = b.RoomID()
	snap.CheckIn = b.Stay().CheckIn()
	snap.CheckOut = b.Stay().CheckOut()
	snap.Status = b.Status()
	return nil
}

func (r *bookingRepo) UpdateStatus(_ context.Context, id uuid.UUID, status booking.Status) error {
	snap, ok := r.state.Bookings[id]
	if !ok {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	snap.Status = status
	return nil
}

func (r *bookingRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.state.Bookings[id]; !ok {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	delete(r.state.Bookings, id)
	return nil
}

func (r *bookingRepo) CompleteExpired(_ context.Context, day time.Time) (int64, error) {
	var changed int64
	for _, b := range r.state.Bookings {
		if b.Status == booking.StatusConfirmed && b.Stay().EndedBefore(day) {
			b.Status = booking.StatusCompleted
			changed++
		}
	}
	return changed, nil
}

type receiptRepo struct {
	state *State
}

func (r *receiptRepo) Create(_ context.Context, receipt *booking.Receipt) error {
	r.state.Receipts[receipt.BookingID()] = &receiptRow{
		ID:         receipt.ID(),
		BookingID:  receipt.BookingID(),
		TotalCents: receipt.Total().Cents(),
	}
	return nil
}

func (r *receiptRepo) UpdateTotalByBookingID(_ context.Context, bookingID uuid.UUID, totalCents int64) error {
	row, ok := r.state.Receipts[bookingID]
	if !ok {
		return infra.WrapRepoErr("receipt not found", nil, infra.KindNotFound)
	}
	row.TotalCents = totalCents
	return nil
}

func (r *receiptRepo) DeleteByBookingID(_ context.Context, bookingID uuid.UUID) error {
	delete(r.state.Receipts, bookingID)
	return nil
}

type guestRepo struct {
	state *State
}

func (r *guestRepo) FindByID(_ context.Context, id uuid.UUID) (*shared.GuestSnapshot, error) {
	snap, ok := r.state.Guests[id]
	if !ok {
		return nil, infra.WrapRepoErr("guest not found", nil, infra.KindNotFound)
	}
	copied := *snap
	return &copied, nil
}

type notificationRepo struct {
	state *State
}

func (r *notificationRepo) CreateJob(_ context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	r.state.Jobs = append(r.state.Jobs, NotificationJob{Kind: kind, Topic: topic, Payload: payload, RunAt: runAt})
	return nil
}
