package repositories

import (
	"fmt"
	"sync"

	"futurewear/internal/errs"
	"futurewear/internal/models"
)

// MemoryProductRepository is an insertion-ordered, in-memory implementation
// of ProductRepository. The catalog is deliberately non-durable; mutations
// are serialized with a mutex because id assignment (max+1) and slice
// mutation are not atomic across concurrent writers.
type MemoryProductRepository struct {
	products []models.Product
	mu       sync.RWMutex
}

// NewMemoryProductRepository creates an empty MemoryProductRepository.
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{}
}

// GetAll returns all products in insertion order.
func (r *MemoryProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// GetByID returns the product with the given id.
func (r *MemoryProductRepository) GetByID(id int) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, fmt.Errorf("product with ID %d: %w", id, errs.ErrNotFound)
}

// Create assigns the next id (max existing id + 1, or 1 for an empty store)
// and appends the product.
func (r *MemoryProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	maxID := 0
	for _, p := range r.products {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	product.ID = maxID + 1
	r.products = append(r.products, *product)
	return nil
}

// Update overwrites the provided fields of an existing product. The id is
// immutable; it can never be changed by an update.
func (r *MemoryProductRepository) Update(id int, updates models.ProductUpdate) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == id {
			updates.Apply(&r.products[i])
			updated := r.products[i]
			return &updated, nil
		}
	}
	return nil, fmt.Errorf("product with ID %d: %w", id, errs.ErrNotFound)
}

// Delete removes the product with the given id. No cascading effects.
func (r *MemoryProductRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("product with ID %d: %w", id, errs.ErrNotFound)
}
