package store

import (
	"context"
	"errors"
	"sync"

	"github.com/yuviart/storefront/internal/backend"
	"github.com/yuviart/storefront/internal/logging"
	"github.com/yuviart/storefront/internal/mockdata"
	"github.com/yuviart/storefront/internal/models"
)

type TestimonialStore struct {
	mu       sync.RWMutex
	client   *backend.Client
	mockMode bool
	approved []models.Testimonial
	all      []models.Testimonial
	fallback bool
}

func NewTestimonialStore(client *backend.Client, mockMode bool) *TestimonialStore {
	return &TestimonialStore{client: client, mockMode: mockMode}
}

// Refresh fetches the public (approved) testimonial list, falling back to
// the mock set when the backend is unreachable.
func (s *TestimonialStore) Refresh(ctx context.Context) error {
	l := logging.FromContext(ctx).With("store", "testimonials")

	if s.mockMode {
		s.mu.Lock()
		s.approved = mockdata.Testimonials()
		s.fallback = true
		s.mu.Unlock()
		return nil
	}

	testimonials, err := s.client.Testimonials(ctx)
	if err != nil {
		if errors.Is(err, backend.ErrUnavailable) {
			l.Warn("testimonials_fetch_failed", "reason", "backend unavailable, serving mock data", "error", err)
			s.mu.Lock()
			s.approved = mockdata.Testimonials()
			s.fallback = true
			s.mu.Unlock()
			return nil
		}
		l.Error("testimonials_fetch_failed", "error", err)
		return err
	}

	s.mu.Lock()
	s.approved = testimonials
	s.fallback = false
	s.mu.Unlock()
	return nil
}

// RefreshAll fetches the admin view (approved and pending). No mock
// fallback here: the moderation queue is meaningless without the backend.
func (s *TestimonialStore) RefreshAll(ctx context.Context) error {
	testimonials, err := s.client.AllTestimonials(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.all = testimonials
	s.mu.Unlock()
	return nil
}

func (s *TestimonialStore) Approved() []models.Testimonial {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Testimonial, len(s.approved))
	copy(out, s.approved)
	return out
}

func (s *TestimonialStore) All() []models.Testimonial {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Testimonial, len(s.all))
	copy(out, s.all)
	return out
}

func (s *TestimonialStore) Pending() []models.Testimonial {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Testimonial
	for _, t := range s.all {
		if !t.Approved {
			out = append(out, t)
		}
	}
	return out
}

func (s *TestimonialStore) Fallback() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fallback
}
