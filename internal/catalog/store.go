// Package catalog owns the product and category collections of the admin
// panel. The store is in-memory and seeded once at startup; every read hands
// back a copy so callers cannot mutate store state through a snapshot.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("product not found")
	ErrInvalid  = errors.New("invalid product")
)

type Repository interface {
	Products(ctx context.Context) ([]Product, error)
	Search(ctx context.Context, q string) ([]Product, error)
	Product(ctx context.Context, id string) (*Product, error)
	CreateProduct(ctx context.Context, in CreateProduct) (*Product, error)
	UpdateProduct(ctx context.Context, id string, patch ProductPatch) (*Product, error)
	DeleteProduct(ctx context.Context, id string) (bool, error)
	Categories(ctx context.Context) ([]Category, error)
}

type Store struct {
	mu         sync.RWMutex
	products   []Product
	categories []Category
	now        func() time.Time
}

// NewStore builds a store over the given seed records. Categories are fixed
// for the lifetime of the store; there is no runtime create/delete for them.
func NewStore(products []Product, categories []Category) *Store {
	s := &Store{
		products:   make([]Product, len(products)),
		categories: make([]Category, len(categories)),
		now:        time.Now,
	}
	copy(s.products, products)
	copy(s.categories, categories)
	return s
}

// WithClock overrides the store clock, for tests.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// Products returns a snapshot of the collection in insertion order.
func (s *Store) Products(ctx context.Context) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

func (s *Store) Product(ctx context.Context, id string) (*Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.products {
		if s.products[i].ID == id {
			p := s.products[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Store) CreateProduct(ctx context.Context, in CreateProduct) (*Product, error) {
	if err := validateCreate(in); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	p := Product{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Category:  in.Category,
		Price:     in.Price,
		Stock:     in.Stock,
		Unit:      in.Unit,
		Image:     in.Image,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.products = append(s.products, p)
	return &p, nil
}

// UpdateProduct merges the non-nil patch fields into the existing record and
// advances UpdatedAt. A rejected patch leaves the record untouched.
func (s *Store) UpdateProduct(ctx context.Context, id string, patch ProductPatch) (*Product, error) {
	if err := validatePatch(patch); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		p := &s.products[i]
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Category != nil {
			p.Category = *patch.Category
		}
		if patch.Price != nil {
			p.Price = *patch.Price
		}
		if patch.Stock != nil {
			p.Stock = *patch.Stock
		}
		if patch.Unit != nil {
			p.Unit = *patch.Unit
		}
		if patch.Image != nil {
			p.Image = *patch.Image
		}
		p.UpdatedAt = s.now()
		out := *p
		return &out, nil
	}
	return nil, ErrNotFound
}

func (s *Store) DeleteProduct(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) Categories(ctx context.Context) ([]Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Category, len(s.categories))
	copy(out, s.categories)
	return out, nil
}

// Search returns products whose name or category contains q,
// case-insensitively, preserving insertion order.
func (s *Store) Search(ctx context.Context, q string) ([]Product, error) {
	q = strings.ToLower(strings.TrimSpace(q))

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Product
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Category), q) {
			out = append(out, p)
		}
	}
	return out, nil
}

func validateCreate(in CreateProduct) error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalid)
	}
	if in.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", ErrInvalid)
	}
	if in.Stock < 0 {
		return fmt.Errorf("%w: stock must not be negative", ErrInvalid)
	}
	return nil
}

func validatePatch(patch ProductPatch) error {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalid)
	}
	if patch.Price != nil && patch.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", ErrInvalid)
	}
	if patch.Stock != nil && *patch.Stock < 0 {
		return fmt.Errorf("%w: stock must not be negative", ErrInvalid)
	}
	return nil
}
