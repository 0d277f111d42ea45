package services_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"futurewear/internal/models"
	"futurewear/internal/query"
	"futurewear/internal/repositories"
	"futurewear/internal/services"
)

// MockEventPublisher is a mock implementation of services.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishCatalogEvent(entity, action string, id int) error {
	args := m.Called(entity, action, id)
	return args.Error(0)
}

// MockProductRepository is a mock implementation of
// repositories.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll() ([]models.Product, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id int) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(id int, updates models.ProductUpdate) (*models.Product, error) {
	args := m.Called(id, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Delete(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

func seededProductRepo() repositories.ProductRepository {
	repo := repositories.NewMemoryProductRepository()
	seed := []models.Product{
		{Name: "CYBER HOODIE", Price: 129, Category: models.CategoryTop, IsNew: true},
		{Name: "FUTURE TECH JACKET", Price: 299, Category: models.CategoryTop, IsBestseller: true},
		{Name: "DISTRESSED DENIM JEANS", Price: 179, Category: models.CategoryBottom, IsOnSale: true},
		{Name: "VINTAGE STRAIGHT DENIM", Price: 159, Category: models.CategoryBottom},
	}
	for i := range seed {
		_ = repo.Create(&seed[i])
	}
	return repo
}

func TestProductService_ListRunsSearchFilterSortPaginate(t *testing.T) {
	service := services.NewProductService(seededProductRepo(), nil)

	bottom := models.CategoryBottom
	items, pagination, err := service.List(services.ListProductsParams{
		Search:   "denim",
		Category: &bottom,
		SortBy:   "price",
		Order:    query.OrderAsc,
		Page:     1,
		PageSize: 10,
	})

	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "VINTAGE STRAIGHT DENIM", items[0].Name)
	assert.Equal(t, "DISTRESSED DENIM JEANS", items[1].Name)
	assert.Equal(t, 2, pagination.TotalItems)
	assert.Equal(t, 1, pagination.TotalPages)
}

func TestProductService_ListPaginatesAfterFiltering(t *testing.T) {
	service := services.NewProductService(seededProductRepo(), nil)

	items, pagination, err := service.List(services.ListProductsParams{
		SortBy:   "id",
		Order:    query.OrderAsc,
		Page:     2,
		PageSize: 3,
	})

	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 4, items[0].ID)
	assert.Equal(t, 4, pagination.TotalItems)
	assert.Equal(t, 2, pagination.TotalPages)
	assert.False(t, pagination.HasNextPage)
	assert.True(t, pagination.HasPreviousPage)
}

func TestProductService_ExportSkipsPagination(t *testing.T) {
	service := services.NewProductService(seededProductRepo(), nil)

	isOnSale := true
	products, err := service.Export(services.ListProductsParams{
		IsOnSale: &isOnSale,
		Page:     7,
		PageSize: 1,
	})

	assert.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, "DISTRESSED DENIM JEANS", products[0].Name)
}

func TestProductService_CreatePublishesEvent(t *testing.T) {
	events := new(MockEventPublisher)
	events.On("PublishCatalogEvent", "product", "created", 1).Return(nil).Once()
	service := services.NewProductService(repositories.NewMemoryProductRepository(), events)

	product, err := service.Create(models.ProductInput{
		Name:     "CHUNKY SNEAKERS",
		Price:    219,
		Category: models.CategoryBottom,
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, product.ID)
	events.AssertExpectations(t)
}

func TestProductService_UpdateAndDeletePublishEvents(t *testing.T) {
	events := new(MockEventPublisher)
	events.On("PublishCatalogEvent", "product", "created", 1).Return(nil).Once()
	events.On("PublishCatalogEvent", "product", "updated", 1).Return(nil).Once()
	events.On("PublishCatalogEvent", "product", "deleted", 1).Return(nil).Once()
	service := services.NewProductService(repositories.NewMemoryProductRepository(), events)

	_, err := service.Create(models.ProductInput{Name: "CYBER HOODIE", Price: 129, Category: models.CategoryTop})
	assert.NoError(t, err)

	newPrice := 119.0
	updated, err := service.Update(1, models.ProductUpdate{Price: &newPrice})
	assert.NoError(t, err)
	assert.Equal(t, 119.0, updated.Price)

	assert.NoError(t, service.Delete(1))
	events.AssertExpectations(t)
}

func TestProductService_PublishFailureDoesNotFailOperation(t *testing.T) {
	events := new(MockEventPublisher)
	events.On("PublishCatalogEvent", "product", "created", 1).
		Return(fmt.Errorf("broker unavailable")).Once()
	service := services.NewProductService(repositories.NewMemoryProductRepository(), events)

	product, err := service.Create(models.ProductInput{
		Name:     "CYBER HOODIE",
		Price:    129,
		Category: models.CategoryTop,
	})

	assert.NoError(t, err)
	assert.NotNil(t, product)
	events.AssertExpectations(t)
}

func TestProductService_NoPublisherIsFine(t *testing.T) {
	service := services.NewProductService(repositories.NewMemoryProductRepository(), nil)

	_, err := service.Create(models.ProductInput{Name: "CYBER HOODIE", Price: 129, Category: models.CategoryTop})
	assert.NoError(t, err)
	assert.NoError(t, service.Delete(1))
}

func TestProductService_FailedMutationPublishesNothing(t *testing.T) {
	repo := new(MockProductRepository)
	repo.On("Delete", 42).Return(fmt.Errorf("not found"))
	events := new(MockEventPublisher)
	service := services.NewProductService(repo, events)

	assert.Error(t, service.Delete(42))
	events.AssertNotCalled(t, "PublishCatalogEvent", mock.Anything, mock.Anything, mock.Anything)
}
