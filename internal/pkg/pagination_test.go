package pkg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPagination(t *testing.T) {
	cases := []struct {
		name     string
		pageStr  string
		total    int64
		size     int
		wantPage int
		wantTot  int
	}{
		{"first page", "1", 12, 10, 1, 2},
		{"second page", "2", 12, 10, 2, 2},
		{"beyond range clamps", "99", 12, 10, 2, 2},
		{"zero treated as first", "0", 12, 10, 1, 2},
		{"negative treated as first", "-3", 12, 10, 1, 2},
		{"non numeric treated as first", "abc", 12, 10, 1, 2},
		{"empty treated as first", "", 12, 10, 1, 2},
		{"empty set is one empty page", "1", 0, 10, 1, 1},
		{"exact multiple", "3", 30, 10, 3, 3},
		{"default size fallback", "1", 5, 0, 1, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pg := NewPagination(tc.pageStr, tc.total, tc.size)
			require.Equal(t, tc.wantPage, pg.Page)
			require.Equal(t, tc.wantTot, pg.TotalPages)
		})
	}
}

func TestPaginationOffsetAndNav(t *testing.T) {
	pg := NewPagination("2", 12, 10)
	require.Equal(t, 10, pg.Offset())
	require.False(t, pg.HasNext())
	require.True(t, pg.HasPrev())

	first := NewPagination("1", 12, 10)
	require.Equal(t, 0, first.Offset())
	require.True(t, first.HasNext())
	require.False(t, first.HasPrev())

	empty := NewPagination("1", 0, 10)
	require.False(t, empty.HasNext())
	require.False(t, empty.HasPrev())
}
