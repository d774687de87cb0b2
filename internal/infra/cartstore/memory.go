package cartstore

import (
	"context"
	"sync"

	"hotel-management-system/internal/domain/cart"

	"github.com/google/uuid"
)

// MemoryStore is the single-process fallback used when no Redis address
// is configured, and by tests.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[uuid.UUID]cart.Cart
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[uuid.UUID]cart.Cart)}
}

func (s *MemoryStore) Get(_ context.Context, guestID uuid.UUID) (*cart.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.carts[guestID]
	if !ok {
		return nil, nil
	}
	copied := c
	copied.RoomIDs = append([]uuid.UUID(nil), c.RoomIDs...)
	return &copied, nil
}

func (s *MemoryStore) Put(_ context.Context, guestID uuid.UUID, c *cart.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *c
	stored.RoomIDs = append([]uuid.UUID(nil), c.RoomIDs...)
	s.carts[guestID] = stored
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, guestID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, guestID)
	return nil
}
