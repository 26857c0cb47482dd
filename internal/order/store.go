// Package order owns the order collection. Orders enter the store only
// through the startup seed; the single mutation is a status overwrite.
package order

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"
)

var (
	ErrNotFound      = errors.New("order not found")
	ErrUnknownStatus = errors.New("unknown order status")
)

type Repository interface {
	Orders(ctx context.Context) ([]Order, error)
	Order(ctx context.Context, id string) (*Order, error)
	SetStatus(ctx context.Context, id string, status Status) (*Order, error)
}

type Store struct {
	mu     sync.RWMutex
	orders []Order
	now    func() time.Time
}

func NewStore(orders []Order) *Store {
	s := &Store{
		orders: make([]Order, len(orders)),
		now:    time.Now,
	}
	for i, o := range orders {
		s.orders[i] = o.clone()
	}
	return s
}

// WithClock overrides the store clock, for tests.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// Orders returns a snapshot sorted by CreatedAt descending. The ordering is
// part of the contract, not incidental.
func (s *Store) Orders(ctx context.Context) ([]Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Order, len(s.orders))
	for i, o := range s.orders {
		out[i] = o.clone()
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Store) Order(ctx context.Context, id string) (*Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			o := s.orders[i].clone()
			return &o, nil
		}
	}
	return nil, ErrNotFound
}

// SetStatus overwrites the status of an existing order and advances
// UpdatedAt. It accepts any known status; the forward-progression rule is
// Next's business, not the store's.
func (s *Store) SetStatus(ctx context.Context, id string, status Status) (*Order, error) {
	if !Known(status) {
		return nil, ErrUnknownStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID != id {
			continue
		}
		s.orders[i].Status = status
		s.orders[i].UpdatedAt = s.now()
		o := s.orders[i].clone()
		return &o, nil
	}
	return nil, ErrNotFound
}
