package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"futurewear/internal/errs"
	"futurewear/internal/models"
	"futurewear/internal/repositories"
)

func TestMemoryProductRepository_CreateAssignsSequentialIDs(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()

	first := models.Product{Name: "OVERSIZED COTTON SHIRT", Price: 89, Category: models.CategoryTop}
	second := models.Product{Name: "FUTURE TECH JACKET", Price: 299, Category: models.CategoryTop}

	assert.NoError(t, repo.Create(&first))
	assert.NoError(t, repo.Create(&second))
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)

	// Deleting an entity never frees its id for reuse: the next id is
	// always max existing id + 1.
	assert.NoError(t, repo.Delete(2))
	third := models.Product{Name: "CYBER HOODIE", Price: 129, Category: models.CategoryTop}
	assert.NoError(t, repo.Create(&third))
	assert.Equal(t, 2, third.ID)
}

func TestMemoryProductRepository_GetAllPreservesInsertionOrder(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()
	names := []string{"B", "A", "C"}
	for _, name := range names {
		p := models.Product{Name: name, Category: models.CategoryTop}
		assert.NoError(t, repo.Create(&p))
	}

	products, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, products, 3)
	for i, name := range names {
		assert.Equal(t, name, products[i].Name)
	}
}

func TestMemoryProductRepository_GetByID(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()
	p := models.Product{Name: "CYBER HOODIE", Price: 129, Category: models.CategoryTop}
	assert.NoError(t, repo.Create(&p))

	found, err := repo.GetByID(p.ID)
	assert.NoError(t, err)
	assert.Equal(t, "CYBER HOODIE", found.Name)

	_, err = repo.GetByID(99)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestMemoryProductRepository_UpdateOverwritesOnlyProvidedFields(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()
	p := models.Product{Name: "CYBER HOODIE", Price: 129, Category: models.CategoryTop, Description: "original"}
	assert.NoError(t, repo.Create(&p))

	newPrice := 99.0
	updated, err := repo.Update(p.ID, models.ProductUpdate{Price: &newPrice})
	assert.NoError(t, err)
	assert.Equal(t, 99.0, updated.Price)
	assert.Equal(t, "CYBER HOODIE", updated.Name)
	assert.Equal(t, "original", updated.Description)
	assert.Equal(t, p.ID, updated.ID)

	_, err = repo.Update(42, models.ProductUpdate{Price: &newPrice})
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestMemoryProductRepository_Delete(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()
	p := models.Product{Name: "CYBER HOODIE", Category: models.CategoryTop}
	assert.NoError(t, repo.Create(&p))

	assert.NoError(t, repo.Delete(p.ID))
	assert.ErrorIs(t, repo.Delete(p.ID), errs.ErrNotFound)

	products, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Empty(t, products)
}

func TestMemoryDropRepository_IndependentIDSpace(t *testing.T) {
	productRepo := repositories.NewMemoryProductRepository()
	dropRepo := repositories.NewMemoryDropRepository()

	p := models.Product{Name: "OVERSIZED COTTON SHIRT", Category: models.CategoryTop}
	assert.NoError(t, productRepo.Create(&p))
	assert.NoError(t, productRepo.Create(&models.Product{Name: "FUTURE TECH JACKET", Category: models.CategoryTop}))

	d := models.Drop{Name: "DROP 01 - SHADOW PARKA", Availability: models.AvailabilityAvailable}
	assert.NoError(t, dropRepo.Create(&d))
	assert.Equal(t, 1, d.ID)
}

func TestMemoryDropRepository_CRUD(t *testing.T) {
	repo := repositories.NewMemoryDropRepository()
	d := models.Drop{Name: "DROP 01 - SHADOW PARKA", Price: 349, Availability: models.AvailabilityAvailable}
	assert.NoError(t, repo.Create(&d))

	soon := models.AvailabilityComingSoon
	updated, err := repo.Update(d.ID, models.DropUpdate{Availability: &soon})
	assert.NoError(t, err)
	assert.Equal(t, models.AvailabilityComingSoon, updated.Availability)
	assert.Equal(t, 349.0, updated.Price)

	_, err = repo.GetByID(7)
	assert.ErrorIs(t, err, errs.ErrNotFound)

	assert.NoError(t, repo.Delete(d.ID))
	drops, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Empty(t, drops)
}
