package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginationMeta(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		total     int64
		wantPages int
	}{
		{"three rows limit two", 1, 2, 3, 2},
		{"second of two pages", 2, 2, 3, 2},
		{"exact multiple", 1, 10, 30, 3},
		{"partial single page", 1, 12, 5, 1},
		{"one row", 1, 10, 1, 1},
		{"empty result", 1, 10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := paginationMeta(tt.page, tt.limit, tt.total)
			assert.Equal(t, tt.page, meta["page"])
			assert.Equal(t, tt.limit, meta["limit"])
			assert.Equal(t, tt.total, meta["total"])
			assert.Equal(t, tt.wantPages, meta["pages"])
		})
	}
}
