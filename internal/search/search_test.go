package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuviart/storefront/internal/models"
)

type staticCatalog []models.Artwork

func (c staticCatalog) Search(query string) []models.Artwork {
	return c
}

func TestLocalSearchPagination(t *testing.T) {
	t.Parallel()

	catalog := staticCatalog{
		{ID: 1, Title: "Shree Krishn"},
		{ID: 2, Title: "Mahadev"},
		{ID: 3, Title: "Ganesha"},
	}
	s := NewService(nil, Index, catalog)

	total, page, err := s.Search(context.Background(), "a", 0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, page, 2)
	assert.Equal(t, uint(1), page[0].ID)

	total, page, err = s.Search(context.Background(), "a", 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, page, 1)
	assert.Equal(t, uint(3), page[0].ID)

	// Past the end is an empty page, not an error.
	total, page, err = s.Search(context.Background(), "a", 10, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Empty(t, page)
}
