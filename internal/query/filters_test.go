package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"futurewear/internal/models"
	"futurewear/internal/query"
)

func sampleProducts() []models.Product {
	return []models.Product{
		{ID: 1, Name: "OVERSIZED COTTON SHIRT", Description: "Premium oversized cotton shirt", Price: 89, Category: models.CategoryTop, IsNew: true},
		{ID: 2, Name: "FUTURE TECH JACKET", Description: "Waterproof tech jacket", Price: 299, Category: models.CategoryTop, IsBestseller: true},
		{ID: 3, Name: "DISTRESSED DENIM JEANS", Description: "Vintage-inspired distressed denim", Price: 179, Category: models.CategoryMid, IsOnSale: true},
		{ID: 4, Name: "CHUNKY SNEAKERS", Description: "Retro-inspired chunky sneakers", Price: 179, Category: models.CategoryBottom, IsNew: true},
	}
}

func productIDs(products []models.Product) []int {
	ids := make([]int, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}

func TestSearchProducts(t *testing.T) {
	products := sampleProducts()

	// Blank and whitespace queries leave the list untouched.
	assert.Equal(t, products, query.SearchProducts(products, ""))
	assert.Equal(t, products, query.SearchProducts(products, "   "))

	// Case-insensitive substring over name or description.
	result := query.SearchProducts(products, "jacket")
	assert.Len(t, result, 1)
	assert.Equal(t, 2, result[0].ID)

	result = query.SearchProducts(products, "VINTAGE")
	assert.Len(t, result, 1)
	assert.Equal(t, 3, result[0].ID)

	assert.Empty(t, query.SearchProducts(products, "balaclava"))
}

func TestSearchProducts_Idempotent(t *testing.T) {
	products := sampleProducts()
	once := query.SearchProducts(products, "denim")
	twice := query.SearchProducts(once, "denim")
	assert.Equal(t, once, twice)
}

func TestFilterProducts(t *testing.T) {
	products := sampleProducts()

	// No criteria, no constraint.
	assert.Len(t, query.FilterProducts(products, query.ProductFilterOptions{}), 4)

	top := models.CategoryTop
	result := query.FilterProducts(products, query.ProductFilterOptions{Category: &top})
	assert.Len(t, result, 2)

	// Criteria are ANDed.
	isNew := true
	result = query.FilterProducts(products, query.ProductFilterOptions{Category: &top, IsNew: &isNew})
	assert.Len(t, result, 1)
	assert.Equal(t, 1, result[0].ID)

	// False is a real constraint, not "absent".
	notNew := false
	result = query.FilterProducts(products, query.ProductFilterOptions{IsNew: &notNew})
	assert.Len(t, result, 2)
}

func TestSortProducts(t *testing.T) {
	products := sampleProducts()

	sorted := query.SortProducts(products, "price", query.OrderAsc)
	assert.Equal(t, []int{1, 3, 4, 2}, productIDs(sorted))

	sorted = query.SortProducts(products, "name", query.OrderAsc)
	assert.Equal(t, []int{4, 3, 2, 1}, productIDs(sorted))

	sorted = query.SortProducts(products, "id", query.OrderDesc)
	assert.Equal(t, []int{4, 3, 2, 1}, productIDs(sorted))

	// The input list must not be mutated.
	assert.Equal(t, []int{1, 2, 3, 4}, productIDs(products))
}

func TestSortProducts_StableOnTies(t *testing.T) {
	products := sampleProducts()

	// Products 3 and 4 share a price; they must keep their relative order
	// in both directions.
	asc := query.SortProducts(products, "price", query.OrderAsc)
	assert.Equal(t, []int{1, 3, 4, 2}, productIDs(asc))

	desc := query.SortProducts(products, "price", query.OrderDesc)
	assert.Equal(t, []int{2, 3, 4, 1}, productIDs(desc))
}

func TestSortProducts_UnknownKeyFallsBackToIDAscending(t *testing.T) {
	products := sampleProducts()

	sorted := query.SortProducts(products, "stock", query.OrderDesc)
	assert.Equal(t, []int{1, 2, 3, 4}, productIDs(sorted))
}

func TestSearchAndFilterDrops(t *testing.T) {
	drops := []models.Drop{
		{ID: 1, Name: "DROP 01 - SHADOW PARKA", Description: "Limited-run technical parka", Price: 349, Availability: models.AvailabilityAvailable},
		{ID: 2, Name: "DROP 01 - PHANTOM CARGO", Description: "Limited-run cargo pant", Price: 189, Availability: models.AvailabilityAvailable},
		{ID: 3, Name: "DROP 02 - ECLIPSE CREWNECK", Description: "Heavyweight crewneck", Price: 139, Availability: models.AvailabilityComingSoon},
	}

	result := query.SearchDrops(drops, "parka")
	assert.Len(t, result, 1)
	assert.Equal(t, 1, result[0].ID)

	avail := models.AvailabilityAvailable
	result = query.FilterDrops(drops, query.DropFilterOptions{Availability: &avail})
	assert.Len(t, result, 2)

	sorted := query.SortDrops(drops, "price", query.OrderDesc)
	assert.Equal(t, 1, sorted[0].ID)
	assert.Equal(t, 3, sorted[2].ID)

	sorted = query.SortDrops(drops, "availability", query.OrderAsc)
	assert.Equal(t, models.AvailabilityAvailable, sorted[0].Availability)
	assert.Equal(t, models.AvailabilityComingSoon, sorted[2].Availability)
}
