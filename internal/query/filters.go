// Package query contains the pure list-processing primitives shared by the
// storefront and the admin back office: search, filter, sort and paginate.
// The stages compose in a fixed order: search, then filter, then sort.
package query

import (
	"sort"
	"strings"

	"futurewear/internal/models"
)

// SortOrder is the direction of a sort.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// ProductFilterOptions holds optional equality predicates for products.
// Nil fields impose no constraint; set fields are ANDed together.
type ProductFilterOptions struct {
	Category     *models.Category
	IsNew        *bool
	IsBestseller *bool
	IsOnSale     *bool
}

// DropFilterOptions holds optional equality predicates for drops.
type DropFilterOptions struct {
	Availability *models.Availability
}

// SearchProducts returns the products whose name or description contains
// the query, case-insensitively. A blank query returns the list unchanged.
func SearchProducts(products []models.Product, q string) []models.Product {
	if strings.TrimSpace(q) == "" {
		return products
	}
	q = strings.ToLower(q)
	matched := make([]models.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			matched = append(matched, p)
		}
	}
	return matched
}

// FilterProducts keeps the products matching every set predicate.
func FilterProducts(products []models.Product, opts ProductFilterOptions) []models.Product {
	matched := make([]models.Product, 0, len(products))
	for _, p := range products {
		if opts.Category != nil && p.Category != *opts.Category {
			continue
		}
		if opts.IsNew != nil && p.IsNew != *opts.IsNew {
			continue
		}
		if opts.IsBestseller != nil && p.IsBestseller != *opts.IsBestseller {
			continue
		}
		if opts.IsOnSale != nil && p.IsOnSale != *opts.IsOnSale {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}

// SortProducts returns a copy of the list stably sorted by the given key
// (id, name, price or category). An unknown key sorts by id ascending
// regardless of the requested order.
func SortProducts(products []models.Product, sortBy string, order SortOrder) []models.Product {
	sorted := make([]models.Product, len(products))
	copy(sorted, products)

	var less func(a, b models.Product) bool
	switch sortBy {
	case "name":
		less = func(a, b models.Product) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	case "price":
		less = func(a, b models.Product) bool { return a.Price < b.Price }
	case "category":
		less = func(a, b models.Product) bool { return a.Category < b.Category }
	case "id":
		less = func(a, b models.Product) bool { return a.ID < b.ID }
	default:
		order = OrderAsc
		less = func(a, b models.Product) bool { return a.ID < b.ID }
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if order == OrderDesc {
			return less(sorted[j], sorted[i])
		}
		return less(sorted[i], sorted[j])
	})
	return sorted
}

// SearchDrops returns the drops whose name or description contains the
// query, case-insensitively. A blank query returns the list unchanged.
func SearchDrops(drops []models.Drop, q string) []models.Drop {
	if strings.TrimSpace(q) == "" {
		return drops
	}
	q = strings.ToLower(q)
	matched := make([]models.Drop, 0, len(drops))
	for _, d := range drops {
		if strings.Contains(strings.ToLower(d.Name), q) ||
			strings.Contains(strings.ToLower(d.Description), q) {
			matched = append(matched, d)
		}
	}
	return matched
}

// FilterDrops keeps the drops matching every set predicate.
func FilterDrops(drops []models.Drop, opts DropFilterOptions) []models.Drop {
	matched := make([]models.Drop, 0, len(drops))
	for _, d := range drops {
		if opts.Availability != nil && d.Availability != *opts.Availability {
			continue
		}
		matched = append(matched, d)
	}
	return matched
}

// SortDrops returns a copy of the list stably sorted by the given key
// (id, name, price or availability). An unknown key sorts by id ascending
// regardless of the requested order.
func SortDrops(drops []models.Drop, sortBy string, order SortOrder) []models.Drop {
	sorted := make([]models.Drop, len(drops))
	copy(sorted, drops)

	var less func(a, b models.Drop) bool
	switch sortBy {
	case "name":
		less = func(a, b models.Drop) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	case "price":
		less = func(a, b models.Drop) bool { return a.Price < b.Price }
	case "availability":
		less = func(a, b models.Drop) bool { return a.Availability < b.Availability }
	case "id":
		less = func(a, b models.Drop) bool { return a.ID < b.ID }
	default:
		order = OrderAsc
		less = func(a, b models.Drop) bool { return a.ID < b.ID }
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if order == OrderDesc {
			return less(sorted[j], sorted[i])
		}
		return less(sorted[i], sorted[j])
	})
	return sorted
}
