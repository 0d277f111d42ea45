package repositories

import (
	"futurewear/internal/models"
)

// DropRepository defines the interface for drop data access. Drops live in
// their own id space, independent from products.
type DropRepository interface {
	GetAll() ([]models.Drop, error)
	GetByID(id int) (*models.Drop, error)
	Create(drop *models.Drop) error
	Update(id int, updates models.DropUpdate) (*models.Drop, error)
	Delete(id int) error
}
