package services

import (
	"log"
	"sync"

	"futurewear/internal/models"
	"futurewear/internal/repositories"
)

// CartService holds the cart state: a list of lines keyed by (id, size) and
// an open/closed visibility flag. The items list is persisted through the
// repository after every mutation; the visibility flag never is, so a fresh
// load always starts closed. Save failures are logged and swallowed, so the
// in-memory cart stays correct for the current session even when
// durability fails.
type CartService struct {
	repo repositories.CartRepository

	mu     sync.Mutex
	items  []models.CartItem
	isOpen bool
}

// NewCartService creates a CartService and restores the saved items list.
// A failed load starts the cart empty.
func NewCartService(repo repositories.CartRepository) *CartService {
	s := &CartService{repo: repo}
	items, err := repo.Load()
	if err != nil {
		log.Printf("Failed to load cart items, starting empty: %v", err)
		return s
	}
	s.items = items
	return s
}

// AddItem merges the item into an existing (id, size) line by summing
// quantities, or appends a new line. Quantity is taken as given; callers
// are responsible for passing a positive amount.
func (s *CartService) AddItem(item models.CartItem, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == item.ID && s.items[i].Size == item.Size {
			s.items[i].Quantity += quantity
			s.persistLocked()
			return
		}
	}
	item.Quantity = quantity
	s.items = append(s.items, item)
	s.persistLocked()
}

// RemoveItem removes every line with the given id, regardless of size.
func (s *CartService) RemoveItem(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = filterLines(s.items, func(item models.CartItem) bool {
		return item.ID != id
	})
	s.persistLocked()
}

// RemoveItemSized removes only the line matching both id and the exact
// size. Passing "" matches only lines that have no size; use RemoveItem to
// drop all sizes of an id. The two calls are deliberately distinct.
func (s *CartService) RemoveItemSized(id int, size string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = filterLines(s.items, func(item models.CartItem) bool {
		return !(item.ID == id && item.Size == size)
	})
	s.persistLocked()
}

// UpdateQuantity sets the quantity of every line with the given id. A
// quantity of zero or less removes those lines instead.
func (s *CartService) UpdateQuantity(id, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(id)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = quantity
		}
	}
	s.persistLocked()
}

// UpdateQuantitySized sets the quantity of the line matching id and the
// exact size. A quantity of zero or less removes that line instead.
func (s *CartService) UpdateQuantitySized(id, quantity int, size string) {
	if quantity <= 0 {
		s.RemoveItemSized(id, size)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id && s.items[i].Size == size {
			s.items[i].Quantity = quantity
		}
	}
	s.persistLocked()
}

// Clear empties the items list unconditionally.
func (s *CartService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.persistLocked()
}

// Items returns a copy of the current lines.
func (s *CartService) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// TotalItems sums the quantities across all lines.
func (s *CartService) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice sums price x quantity across all lines, using each line's
// snapshotted price.
func (s *CartService) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0.0
	for _, item := range s.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// Open makes the cart visible.
func (s *CartService) Open() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isOpen = true
}

// Close hides the cart.
func (s *CartService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isOpen = false
}

// Toggle flips the cart's visibility.
func (s *CartService) Toggle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isOpen = !s.isOpen
}

// IsOpen reports the cart's visibility. Purely presentational; it gates
// none of the operations above.
func (s *CartService) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isOpen
}

// persistLocked saves the items list, swallowing failures. Callers must
// hold the mutex.
func (s *CartService) persistLocked() {
	items := make([]models.CartItem, len(s.items))
	copy(items, s.items)
	if err := s.repo.Save(items); err != nil {
		log.Printf("Failed to persist cart items: %v", err)
	}
}

func filterLines(items []models.CartItem, keep func(models.CartItem) bool) []models.CartItem {
	out := items[:0]
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
