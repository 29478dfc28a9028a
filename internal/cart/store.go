// Package cart owns the shopping cart: an ordered collection of line items,
// at most one per (product ID, retailer) pair, persisted in full on every
// mutation and restored in full at construction.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/royalbee/storefront/internal/domain"
	"github.com/royalbee/storefront/internal/storage"
)

// PersistError reports a failed write-through to the key-value store. The
// in-memory mutation has still been applied; persisted and in-memory state
// diverge until the next successful write.
type PersistError struct {
	Op  string
	Err error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("cart %s: persisting cart failed: %v", e.Op, e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }

// Store is the sole owner and mutator of the cart. Safe for concurrent use.
type Store struct {
	mu     sync.Mutex
	items  []domain.CartLineItem
	kv     storage.KV
	logger *zap.Logger
}

// NewStore restores the persisted cart from kv, or starts empty when none
// has been saved yet. A corrupt persisted cart is an error, not silently
// discarded.
func NewStore(ctx context.Context, kv storage.KV, logger *zap.Logger) (*Store, error) {
	s := &Store{kv: kv, logger: logger}

	raw, err := kv.Get(ctx, storage.KeyCart)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to restore cart: %w", err)
	}

	if err := json.Unmarshal(raw, &s.items); err != nil {
		return nil, fmt.Errorf("failed to decode persisted cart: %w", err)
	}

	return s, nil
}

// AddItem merges the product/retailer pair into the cart: an existing line
// gains one unit, otherwise a new line with quantity 1 is appended.
func (s *Store) AddItem(ctx context.Context, product domain.Product, retailer string, unitPrice float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Product.ID == product.ID && s.items[i].Retailer == retailer {
			s.items[i].Quantity++
			return s.persist(ctx, "add")
		}
	}

	s.items = append(s.items, domain.CartLineItem{
		Product:   product.Snapshot(),
		Retailer:  retailer,
		Quantity:  1,
		UnitPrice: unitPrice,
	})
	return s.persist(ctx, "add")
}

// RemoveItem drops the matching line item. Removing an absent item is a
// no-op, not an error.
func (s *Store) RemoveItem(ctx context.Context, productID, retailer string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.removeLocked(ctx, productID, retailer)
}

// SetQuantity overwrites the line's quantity. Zero or negative removes the
// line entirely, so a quantity stored in the cart is always >= 1.
func (s *Store) SetQuantity(ctx context.Context, productID, retailer string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		return s.removeLocked(ctx, productID, retailer)
	}

	for i := range s.items {
		if s.items[i].Product.ID == productID && s.items[i].Retailer == retailer {
			s.items[i].Quantity = quantity
			return s.persist(ctx, "set quantity")
		}
	}
	return nil
}

// Clear empties the cart. Used only after a confirmed order.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	return s.persist(ctx, "clear")
}

// TotalPrice recomputes the cart total on every call so it always reflects
// current state.
func (s *Store) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, item := range s.items {
		total += item.Subtotal()
	}
	return total
}

// ItemCount is the sum of quantities, not the number of distinct lines.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// Len is the number of distinct line items.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.items)
}

// Items returns a copy of the line items in insertion order.
func (s *Store) Items() []domain.CartLineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.CartLineItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) removeLocked(ctx context.Context, productID, retailer string) error {
	for i := range s.items {
		if s.items[i].Product.ID == productID && s.items[i].Retailer == retailer {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return s.persist(ctx, "remove")
		}
	}
	return nil
}

// persist writes the whole cart through to storage. Callers hold s.mu.
func (s *Store) persist(ctx context.Context, op string) error {
	raw, err := json.Marshal(s.items)
	if err != nil {
		return &PersistError{Op: op, Err: err}
	}
	if err := s.kv.Set(ctx, storage.KeyCart, raw); err != nil {
		s.logger.Error("Failed to persist cart", zap.String("op", op), zap.Error(err))
		return &PersistError{Op: op, Err: err}
	}
	return nil
}
