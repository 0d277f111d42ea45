package repositories

import (
	"futurewear/internal/models"
)

// ProductRepository defines the interface for product data access.
// GetAll returns products in insertion order. Lookups on a missing id
// return errs.ErrNotFound.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id int) (*models.Product, error)
	Create(product *models.Product) error
	Update(id int, updates models.ProductUpdate) (*models.Product, error)
	Delete(id int) error
}
