package cart

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	"camrent-backend/internal/domain"
	"camrent-backend/internal/logger"
	"camrent-backend/internal/repository"
)

// Store owns all live carts, one per session key, and mirrors every mutation
// to the durable snapshot store so a cart survives a restart. Constructed
// once at application start and never torn down.
type Store struct {
	mu        sync.Mutex
	carts     map[string]*Cart
	snapshots repository.CartSnapshotRepository
}

func NewStore(snapshots repository.CartSnapshotRepository) *Store {
	return &Store{
		carts:     make(map[string]*Cart),
		snapshots: snapshots,
	}
}

// get returns the live cart for key, loading it from the snapshot mirror on
// first access. A missing or corrupt snapshot falls back to an empty cart;
// that is logged but never surfaced to the caller.
func (s *Store) get(ctx context.Context, key string) *Cart {
	if c, ok := s.carts[key]; ok {
		return c
	}

	c := New()
	payload, err := s.snapshots.Load(ctx, key)
	if err == nil {
		restored, rerr := Restore(payload)
		if rerr != nil {
			logger.Warn("Cart snapshot unreadable, starting empty", "session", key, "error", rerr)
		} else {
			c = restored
		}
	} else if !errors.Is(err, sql.ErrNoRows) {
		logger.Warn("Cart snapshot load failed, starting empty", "session", key, "error", err)
	}

	s.carts[key] = c
	return c
}

// persist mirrors the cart to durable storage. The in-memory cart is the
// source of truth for the session; a failed mirror write is logged and does
// not fail the mutation, matching the browser local-storage model.
func (s *Store) persist(ctx context.Context, key string, c *Cart) {
	payload, err := c.Serialize()
	if err != nil {
		logger.Error("Failed to serialize cart snapshot", "session", key, "error", err)
		return
	}
	if err := s.snapshots.Save(ctx, key, payload); err != nil {
		logger.Warn("Failed to persist cart snapshot", "session", key, "error", err)
	}
}

// Lines returns the cart contents for key.
func (s *Store) Lines(ctx context.Context, key string) []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.get(ctx, key).Lines()
}

// Totals returns the cart's total cost and item count.
func (s *Store) Totals(ctx context.Context, key string) (int32, int32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.get(ctx, key)
	return c.TotalCents(), c.ItemCount()
}

// Add applies the merge-and-overwrite-duration add policy and persists.
func (s *Store) Add(ctx context.Context, key string, item *domain.Equipment, duration domain.RentalDuration, rentDate, returnDate string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.get(ctx, key)
	if err := c.Add(item, duration, rentDate, returnDate); err != nil {
		return err
	}
	s.persist(ctx, key, c)
	return nil
}

// UpdateQuantity sets a line's quantity (<=0 removes) and persists.
func (s *Store) UpdateQuantity(ctx context.Context, key string, equipmentID, quantity int32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.get(ctx, key)
	if err := c.UpdateQuantity(equipmentID, quantity); err != nil {
		return err
	}
	s.persist(ctx, key, c)
	return nil
}

// Remove deletes a line and persists.
func (s *Store) Remove(ctx context.Context, key string, equipmentID int32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.get(ctx, key)
	c.Remove(equipmentID)
	s.persist(ctx, key, c)
}

// Clear empties the cart and persists the empty snapshot.
func (s *Store) Clear(ctx context.Context, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.get(ctx, key)
	c.Clear()
	s.persist(ctx, key, c)
}
