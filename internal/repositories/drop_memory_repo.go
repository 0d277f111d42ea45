package repositories

import (
	"fmt"
	"sync"

	"futurewear/internal/errs"
	"futurewear/internal/models"
)

// MemoryDropRepository is an insertion-ordered, in-memory implementation of
// DropRepository.
type MemoryDropRepository struct {
	drops []models.Drop
	mu    sync.RWMutex
}

// NewMemoryDropRepository creates an empty MemoryDropRepository.
func NewMemoryDropRepository() *MemoryDropRepository {
	return &MemoryDropRepository{}
}

// GetAll returns all drops in insertion order.
func (r *MemoryDropRepository) GetAll() ([]models.Drop, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Drop, len(r.drops))
	copy(out, r.drops)
	return out, nil
}

// GetByID returns the drop with the given id.
func (r *MemoryDropRepository) GetByID(id int) (*models.Drop, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, d := range r.drops {
		if d.ID == id {
			found := d
			return &found, nil
		}
	}
	return nil, fmt.Errorf("drop with ID %d: %w", id, errs.ErrNotFound)
}

// Create assigns the next id (max existing id + 1) and appends the drop.
func (r *MemoryDropRepository) Create(drop *models.Drop) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	maxID := 0
	for _, d := range r.drops {
		if d.ID > maxID {
			maxID = d.ID
		}
	}
	drop.ID = maxID + 1
	r.drops = append(r.drops, *drop)
	return nil
}

// Update overwrites the provided fields of an existing drop; the id is
// immutable.
func (r *MemoryDropRepository) Update(id int, updates models.DropUpdate) (*models.Drop, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.drops {
		if r.drops[i].ID == id {
			updates.Apply(&r.drops[i])
			updated := r.drops[i]
			return &updated, nil
		}
	}
	return nil, fmt.Errorf("drop with ID %d: %w", id, errs.ErrNotFound)
}

// Delete removes the drop with the given id.
func (r *MemoryDropRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.drops {
		if r.drops[i].ID == id {
			r.drops = append(r.drops[:i], r.drops[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("drop with ID %d: %w", id, errs.ErrNotFound)
}
