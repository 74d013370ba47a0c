// Package search answers artwork text queries. With Elasticsearch configured
// it runs a fuzzy multi_match over title and description; without it the
// catalog store's substring scan serves the same endpoint.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/yuviart/storefront/internal/models"
)

const Index = "artwork"

type Catalog interface {
	Search(query string) []models.Artwork
}

type Service struct {
	es      *elasticsearch.Client
	index   string
	catalog Catalog
}

func NewService(es *elasticsearch.Client, index string, catalog Catalog) *Service {
	return &Service{es: es, index: index, catalog: catalog}
}

func (s *Service) Search(ctx context.Context, query string, from, size int) (int64, []models.Artwork, error) {
	if s.es == nil {
		return s.searchLocal(query, from, size)
	}

	body := map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":     query,
				"fields":    []string{"title^2", "description"},
				"fuzziness": "AUTO",
			},
		},
		"from": from,
		"size": size,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return 0, nil, fmt.Errorf("encode search query: %w", err)
	}

	res, err := s.es.Search(
		s.es.Search.WithContext(ctx),
		s.es.Search.WithIndex(s.index),
		s.es.Search.WithBody(&buf),
	)
	if err != nil {
		return 0, nil, fmt.Errorf("search: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return 0, nil, fmt.Errorf("search: %s", res.Status())
	}

	var r struct {
		Hits struct {
			Total struct{ Value int64 }             `json:"total"`
			Hits  []struct{ Source models.Artwork } `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return 0, nil, fmt.Errorf("decode search response: %w", err)
	}

	artworks := make([]models.Artwork, len(r.Hits.Hits))
	for i, hit := range r.Hits.Hits {
		artworks[i] = hit.Source
	}
	return r.Hits.Total.Value, artworks, nil
}

func (s *Service) searchLocal(query string, from, size int) (int64, []models.Artwork, error) {
	matches := s.catalog.Search(query)
	total := int64(len(matches))

	if from >= len(matches) {
		return total, []models.Artwork{}, nil
	}
	end := from + size
	if end > len(matches) {
		end = len(matches)
	}
	return total, matches[from:end], nil
}

// IndexArtworks refreshes the search index with the current catalog. A nil
// ES client makes this a no-op since the local path reads the store live.
func (s *Service) IndexArtworks(ctx context.Context, artworks []models.Artwork) error {
	if s.es == nil {
		return nil
	}

	for _, artwork := range artworks {
		data, err := json.Marshal(artwork)
		if err != nil {
			return fmt.Errorf("encode artwork %d: %w", artwork.ID, err)
		}
		res, err := s.es.Index(
			s.index,
			bytes.NewReader(data),
			s.es.Index.WithContext(ctx),
			s.es.Index.WithDocumentID(strconv.FormatUint(uint64(artwork.ID), 10)),
		)
		if err != nil {
			return fmt.Errorf("index artwork %d: %w", artwork.ID, err)
		}
		res.Body.Close()
		if res.IsError() {
			return fmt.Errorf("index artwork %d: %s", artwork.ID, res.Status())
		}
	}
	return nil
}
