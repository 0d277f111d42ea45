package services

import (
	"log"

	"futurewear/internal/models"
	"futurewear/internal/query"
	"futurewear/internal/repositories"
)

// ListDropsParams are the query parameters for a drop listing.
type ListDropsParams struct {
	Search       string
	Availability *models.Availability
	SortBy       string
	Order        query.SortOrder
	Page         int
	PageSize     int
}

// DropService handles business logic related to drops.
type DropService struct {
	repo   repositories.DropRepository
	events EventPublisher
}

// NewDropService creates a new DropService. The publisher may be nil when
// catalog events are disabled.
func NewDropService(repo repositories.DropRepository, events EventPublisher) *DropService {
	return &DropService{
		repo:   repo,
		events: events,
	}
}

// List runs search, then filter, then sort, and returns one page with its
// metadata.
func (s *DropService) List(params ListDropsParams) ([]models.Drop, query.Pagination, error) {
	drops, err := s.repo.GetAll()
	if err != nil {
		return nil, query.Pagination{}, err
	}

	drops = query.SearchDrops(drops, params.Search)
	drops = query.FilterDrops(drops, query.DropFilterOptions{
		Availability: params.Availability,
	})
	drops = query.SortDrops(drops, params.SortBy, params.Order)

	items, pagination := query.Paginate(drops, params.Page, params.PageSize)
	return items, pagination, nil
}

// Export runs search and filter (no pagination) and returns the flat list
// for the spreadsheet writer.
func (s *DropService) Export(params ListDropsParams) ([]models.Drop, error) {
	drops, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}

	drops = query.SearchDrops(drops, params.Search)
	drops = query.FilterDrops(drops, query.DropFilterOptions{
		Availability: params.Availability,
	})
	return drops, nil
}

// GetAll retrieves all drops in insertion order.
func (s *DropService) GetAll() ([]models.Drop, error) {
	return s.repo.GetAll()
}

// GetByID retrieves a single drop by its id.
func (s *DropService) GetByID(id int) (*models.Drop, error) {
	return s.repo.GetByID(id)
}

// Create adds a new drop; the store assigns the id.
func (s *DropService) Create(input models.DropInput) (*models.Drop, error) {
	drop := input.Drop()
	if err := s.repo.Create(&drop); err != nil {
		return nil, err
	}
	s.publish("created", drop.ID)
	return &drop, nil
}

// Update overwrites the provided fields of an existing drop.
func (s *DropService) Update(id int, updates models.DropUpdate) (*models.Drop, error) {
	drop, err := s.repo.Update(id, updates)
	if err != nil {
		return nil, err
	}
	s.publish("updated", id)
	return drop, nil
}

// Delete removes a drop by its id.
func (s *DropService) Delete(id int) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.publish("deleted", id)
	return nil
}

func (s *DropService) publish(action string, id int) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishCatalogEvent("drop", action, id); err != nil {
		log.Printf("Failed to publish drop %s event for id %d: %v", action, id, err)
	}
}
