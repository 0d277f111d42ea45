package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"futurewear/internal/query"
)

func intRange(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestPaginate_EmptyList(t *testing.T) {
	items, pagination := query.Paginate([]int{}, 1, 10)

	assert.Empty(t, items)
	assert.Equal(t, 0, pagination.TotalItems)
	assert.Equal(t, 0, pagination.TotalPages)
	assert.False(t, pagination.HasNextPage)
	assert.False(t, pagination.HasPreviousPage)
}

func TestPaginate_TwentyThreeItems(t *testing.T) {
	list := intRange(23)

	items, pagination := query.Paginate(list, 1, 10)
	assert.Len(t, items, 10)
	assert.Equal(t, 23, pagination.TotalItems)
	assert.Equal(t, 3, pagination.TotalPages)
	assert.True(t, pagination.HasNextPage)
	assert.False(t, pagination.HasPreviousPage)

	items, pagination = query.Paginate(list, 3, 10)
	assert.Len(t, items, 3)
	assert.False(t, pagination.HasNextPage)
	assert.True(t, pagination.HasPreviousPage)

	// A page past the end is empty, not an error.
	items, pagination = query.Paginate(list, 4, 10)
	assert.Empty(t, items)
	assert.False(t, pagination.HasNextPage)
	assert.True(t, pagination.HasPreviousPage)
}

func TestPaginate_ClampsPageAndPageSize(t *testing.T) {
	list := intRange(5)

	items, pagination := query.Paginate(list, 0, 2)
	assert.Equal(t, 1, pagination.Page)
	assert.Equal(t, []int{1, 2}, items)

	items, pagination = query.Paginate(list, -3, 0)
	assert.Equal(t, 1, pagination.Page)
	assert.Equal(t, 1, pagination.PageSize)
	assert.Equal(t, []int{1}, items)
}

func TestPaginate_PageLengthNeverExceedsPageSize(t *testing.T) {
	list := intRange(17)
	for page := 1; page <= 5; page++ {
		items, _ := query.Paginate(list, page, 4)
		assert.LessOrEqual(t, len(items), 4)
	}
}

func TestPaginate_ConcatenatingPagesReconstructsList(t *testing.T) {
	list := intRange(23)

	var rebuilt []int
	_, pagination := query.Paginate(list, 1, 7)
	for page := 1; page <= pagination.TotalPages; page++ {
		items, _ := query.Paginate(list, page, 7)
		rebuilt = append(rebuilt, items...)
	}
	assert.Equal(t, list, rebuilt)
}
