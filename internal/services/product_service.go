package services

import (
	"log"

	"futurewear/internal/models"
	"futurewear/internal/query"
	"futurewear/internal/repositories"
)

// EventPublisher announces catalog mutations to interested consumers.
// Publishing is fire-and-forget: failures are logged, never surfaced.
type EventPublisher interface {
	PublishCatalogEvent(entity, action string, id int) error
}

// ListProductsParams are the query parameters for a product listing.
// Nil filter fields impose no constraint.
type ListProductsParams struct {
	Search       string
	Category     *models.Category
	IsNew        *bool
	IsBestseller *bool
	IsOnSale     *bool
	SortBy       string
	Order        query.SortOrder
	Page         int
	PageSize     int
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo   repositories.ProductRepository
	events EventPublisher
}

// NewProductService creates a new ProductService. The publisher may be nil
// when catalog events are disabled.
func NewProductService(repo repositories.ProductRepository, events EventPublisher) *ProductService {
	return &ProductService{
		repo:   repo,
		events: events,
	}
}

// List runs search, then filter, then sort, and returns one page with its
// metadata.
func (s *ProductService) List(params ListProductsParams) ([]models.Product, query.Pagination, error) {
	products, err := s.repo.GetAll()
	if err != nil {
		return nil, query.Pagination{}, err
	}

	products = query.SearchProducts(products, params.Search)
	products = query.FilterProducts(products, query.ProductFilterOptions{
		Category:     params.Category,
		IsNew:        params.IsNew,
		IsBestseller: params.IsBestseller,
		IsOnSale:     params.IsOnSale,
	})
	products = query.SortProducts(products, params.SortBy, params.Order)

	items, pagination := query.Paginate(products, params.Page, params.PageSize)
	return items, pagination, nil
}

// Export runs search and filter (no pagination) and returns the flat list
// for the spreadsheet writer.
func (s *ProductService) Export(params ListProductsParams) ([]models.Product, error) {
	products, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}

	products = query.SearchProducts(products, params.Search)
	products = query.FilterProducts(products, query.ProductFilterOptions{
		Category:     params.Category,
		IsNew:        params.IsNew,
		IsBestseller: params.IsBestseller,
		IsOnSale:     params.IsOnSale,
	})
	return products, nil
}

// GetAll retrieves all products in insertion order.
func (s *ProductService) GetAll() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetByID retrieves a single product by its id.
func (s *ProductService) GetByID(id int) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// Create adds a new product; the store assigns the id. Repeated calls
// create duplicate entities, there is no idempotency key.
func (s *ProductService) Create(input models.ProductInput) (*models.Product, error) {
	product := input.Product()
	if err := s.repo.Create(&product); err != nil {
		return nil, err
	}
	s.publish("created", product.ID)
	return &product, nil
}

// Update overwrites the provided fields of an existing product.
func (s *ProductService) Update(id int, updates models.ProductUpdate) (*models.Product, error) {
	product, err := s.repo.Update(id, updates)
	if err != nil {
		return nil, err
	}
	s.publish("updated", id)
	return product, nil
}

// Delete removes a product by its id.
func (s *ProductService) Delete(id int) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.publish("deleted", id)
	return nil
}

func (s *ProductService) publish(action string, id int) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishCatalogEvent("product", action, id); err != nil {
		log.Printf("Failed to publish product %s event for id %d: %v", action, id, err)
	}
}
