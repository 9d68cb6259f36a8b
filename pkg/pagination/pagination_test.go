package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		params      PaginationParams
		wantPage    int
		wantPerPage int
	}{
		{"defaults for zero values", PaginationParams{}, 1, 15},
		{"negative page resets to first", PaginationParams{Page: -3, PerPage: 20}, 1, 20},
		{"per page capped at 100", PaginationParams{Page: 2, PerPage: 500}, 2, 100},
		{"valid values pass through", PaginationParams{Page: 3, PerPage: 25}, 3, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.params.Validate()
			assert.Equal(t, tt.wantPage, tt.params.Page)
			assert.Equal(t, tt.wantPerPage, tt.params.PerPage)
		})
	}
}

func TestOffset(t *testing.T) {
	params := PaginationParams{Page: 3, PerPage: 15}
	assert.Equal(t, 30, params.Offset())

	first := PaginationParams{Page: 1, PerPage: 15}
	assert.Equal(t, 0, first.Offset())
}

func TestNewPagination(t *testing.T) {
	t.Run("middle page has both neighbours", func(t *testing.T) {
		p := NewPagination(2, 10, 35)
		assert.Equal(t, 4, p.TotalPages)
		assert.True(t, p.HasNext)
		assert.True(t, p.HasPrev)
	})

	t.Run("last page has no next", func(t *testing.T) {
		p := NewPagination(4, 10, 35)
		assert.False(t, p.HasNext)
		assert.True(t, p.HasPrev)
	})

	t.Run("empty result has zero pages", func(t *testing.T) {
		p := NewPagination(1, 10, 0)
		assert.Equal(t, 0, p.TotalPages)
		assert.False(t, p.HasNext)
		assert.False(t, p.HasPrev)
	})
}
