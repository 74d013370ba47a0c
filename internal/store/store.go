// Package store keeps the in-memory working copies of the artwork and
// testimonial collections. The backend owns the data; a store is only ever
// as fresh as its last Refresh. When the backend is unreachable the artwork
// and public-testimonial reads fall back to the hardcoded mock dataset so
// the storefront keeps rendering.
package store

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/yuviart/storefront/internal/backend"
	"github.com/yuviart/storefront/internal/logging"
	"github.com/yuviart/storefront/internal/mockdata"
	"github.com/yuviart/storefront/internal/models"
)

type ArtworkStore struct {
	mu       sync.RWMutex
	client   *backend.Client
	mockMode bool
	artworks []models.Artwork
	fallback bool
	loading  bool
}

func NewArtworkStore(client *backend.Client, mockMode bool) *ArtworkStore {
	return &ArtworkStore{client: client, mockMode: mockMode}
}

// Refresh replaces the cached collection with a fresh fetch. An unreachable
// backend is not an error for reads: the store switches to the mock dataset
// and reports healthy. Rejections (non-2xx) surface to the caller.
func (s *ArtworkStore) Refresh(ctx context.Context) error {
	l := logging.FromContext(ctx).With("store", "artworks")

	if s.mockMode {
		s.replace(mockdata.Artworks(), true)
		return nil
	}

	s.setLoading(true)
	defer s.setLoading(false)

	artworks, err := s.client.Artworks(ctx)
	if err != nil {
		if errors.Is(err, backend.ErrUnavailable) {
			l.Warn("artworks_fetch_failed", "reason", "backend unavailable, serving mock data", "error", err)
			s.replace(mockdata.Artworks(), true)
			return nil
		}
		l.Error("artworks_fetch_failed", "error", err)
		return err
	}

	s.replace(artworks, false)
	return nil
}

func (s *ArtworkStore) replace(artworks []models.Artwork, fallback bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.artworks = artworks
	s.fallback = fallback
}

func (s *ArtworkStore) setLoading(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = v
}

func (s *ArtworkStore) All() []models.Artwork {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Artwork, len(s.artworks))
	copy(out, s.artworks)
	return out
}

func (s *ArtworkStore) Get(id uint) (models.Artwork, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.artworks {
		if a.ID == id {
			return a, true
		}
	}
	return models.Artwork{}, false
}

// ByCategory matches against the full category list, so a multi-category
// artwork shows up under each of its categories. "all" returns everything.
func (s *ArtworkStore) ByCategory(category string) []models.Artwork {
	if category == "all" || category == "" {
		return s.All()
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Artwork
	for _, a := range s.artworks {
		if a.Category.Has(category) {
			out = append(out, a)
		}
	}
	return out
}

// Search is the in-memory substring filter used when Elasticsearch is not
// configured. Case-insensitive over title and description.
func (s *ArtworkStore) Search(query string) []models.Artwork {
	q := strings.ToLower(query)
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Artwork
	for _, a := range s.artworks {
		if strings.Contains(strings.ToLower(a.Title), q) ||
			strings.Contains(strings.ToLower(a.Description), q) {
			out = append(out, a)
		}
	}
	return out
}

func (s *ArtworkStore) Fallback() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fallback
}

func (s *ArtworkStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}
