package paginator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdjust(t *testing.T) {
	q := PaginateQuery{Page: 0, Limit: 0}
	q.Adjust()
	assert.Equal(t, PaginateQuery{Page: DefaultPage, Limit: DefaultLimit}, q)

	q = PaginateQuery{Page: 3, Limit: 1000}
	q.Adjust()
	assert.Equal(t, MaxLimit, q.Limit)
	assert.Equal(t, 2*MaxLimit, q.Offset())
}

func TestSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	page, p := Slice(items, PaginateQuery{Page: 2, Limit: 3})
	assert.Equal(t, []int{4, 5, 6}, page)
	assert.Equal(t, Paginator{Total: 7, Count: 3, PerPage: 3, CurrentPage: 2}, p)

	resp := p.ToResponse()
	assert.Equal(t, 3, resp.TotalPages)
	assert.True(t, resp.HasNext)
	assert.True(t, resp.HasPrev)

	page, p = Slice(items, PaginateQuery{Page: 3, Limit: 3})
	assert.Equal(t, []int{7}, page)
	assert.False(t, p.HasNextPage())

	page, p = Slice(items, PaginateQuery{Page: 9, Limit: 3})
	assert.Empty(t, page)
	assert.Equal(t, 0, p.Count)
}

func TestSliceEmpty(t *testing.T) {
	page, p := Slice([]string(nil), PaginateQuery{})
	assert.Empty(t, page)
	assert.Equal(t, 0, p.TotalPages())
	assert.False(t, p.HasPreviousPage())
}
