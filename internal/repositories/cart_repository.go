package repositories

import (
	"sync"

	"futurewear/internal/models"
)

// CartRepository persists the cart's items list across restarts. Only the
// items are persisted; the cart's open/closed visibility never is. Load is
// called once at startup, Save after every cart mutation.
type CartRepository interface {
	Load() ([]models.CartItem, error)
	Save(items []models.CartItem) error
}

// MemoryCartRepository is a non-durable CartRepository, used in tests and
// as a fallback when no database is configured.
type MemoryCartRepository struct {
	items []models.CartItem
	mu    sync.Mutex
}

// NewMemoryCartRepository creates an empty MemoryCartRepository.
func NewMemoryCartRepository() *MemoryCartRepository {
	return &MemoryCartRepository{}
}

// Load returns the last saved items list.
func (r *MemoryCartRepository) Load() ([]models.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.CartItem, len(r.items))
	copy(out, r.items)
	return out, nil
}

// Save replaces the stored items list.
func (r *MemoryCartRepository) Save(items []models.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = make([]models.CartItem, len(items))
	copy(r.items, items)
	return nil
}
