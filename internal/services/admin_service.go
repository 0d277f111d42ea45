package services

import (
	"sync"
	"time"

	"futurewear/internal/models"
	"futurewear/internal/repositories"
)

// ProductStats are the dashboard counters for products.
type ProductStats struct {
	Total       int `json:"total"`
	NewArrivals int `json:"newArrivals"`
	Bestsellers int `json:"bestsellers"`
	OnSale      int `json:"onSale"`
}

// DropStats are the dashboard counters for drops.
type DropStats struct {
	Total      int `json:"total"`
	Available  int `json:"available"`
	ComingSoon int `json:"comingSoon"`
}

// Stats is the admin dashboard summary.
type Stats struct {
	Products ProductStats `json:"products"`
	Drops    DropStats    `json:"drops"`
}

// AdminService serves the back-office dashboard stats and holds the admin
// profile and settings. Profile and settings are in-memory only.
type AdminService struct {
	productRepo repositories.ProductRepository
	dropRepo    repositories.DropRepository

	mu       sync.Mutex
	profile  models.AdminProfile
	settings models.AdminSettings
}

// NewAdminService creates an AdminService with default profile and
// settings.
func NewAdminService(productRepo repositories.ProductRepository, dropRepo repositories.DropRepository) *AdminService {
	now := time.Now()
	return &AdminService{
		productRepo: productRepo,
		dropRepo:    dropRepo,
		profile: models.AdminProfile{
			Username:  "admin",
			Email:     "admin@futurewear.com",
			UpdatedAt: now,
		},
		settings: models.AdminSettings{
			Notifications: models.NotificationSettings{Email: true},
			Security:      models.SecuritySettings{SessionTimeout: 30},
			Preferences:   models.PreferenceSettings{Language: "en", Timezone: "UTC"},
			UpdatedAt:     now,
		},
	}
}

// Stats computes the dashboard counters from the current stores.
func (s *AdminService) Stats() (*Stats, error) {
	products, err := s.productRepo.GetAll()
	if err != nil {
		return nil, err
	}
	drops, err := s.dropRepo.GetAll()
	if err != nil {
		return nil, err
	}

	stats := &Stats{}
	stats.Products.Total = len(products)
	for _, p := range products {
		if p.IsNew {
			stats.Products.NewArrivals++
		}
		if p.IsBestseller {
			stats.Products.Bestsellers++
		}
		if p.IsOnSale {
			stats.Products.OnSale++
		}
	}

	stats.Drops.Total = len(drops)
	for _, d := range drops {
		switch d.Availability {
		case models.AvailabilityAvailable:
			stats.Drops.Available++
		case models.AvailabilityComingSoon:
			stats.Drops.ComingSoon++
		}
	}
	return stats, nil
}

// Profile returns the current admin profile.
func (s *AdminService) Profile() models.AdminProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// UpdateProfile replaces the editable profile fields.
func (s *AdminService) UpdateProfile(input models.AdminProfileInput) models.AdminProfile {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profile.Username = input.Username
	s.profile.Email = input.Email
	s.profile.FirstName = input.FirstName
	s.profile.LastName = input.LastName
	s.profile.Bio = input.Bio
	s.profile.Avatar = input.Avatar
	s.profile.UpdatedAt = time.Now()
	return s.profile
}

// Settings returns the current admin settings.
func (s *AdminService) Settings() models.AdminSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// UpdateSettings applies the provided sections, leaving nil sections
// untouched.
func (s *AdminService) UpdateSettings(update models.AdminSettingsUpdate) models.AdminSettings {
	s.mu.Lock()
	defer s.mu.Unlock()

	if update.Notifications != nil {
		s.settings.Notifications = *update.Notifications
	}
	if update.Security != nil {
		s.settings.Security = *update.Security
	}
	if update.Preferences != nil {
		s.settings.Preferences = *update.Preferences
	}
	s.settings.UpdatedAt = time.Now()
	return s.settings
}
