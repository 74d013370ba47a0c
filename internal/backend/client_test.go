package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuviart/storefront/internal/models"
)

func TestArtworksListAndGet(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/artworks":
			json.NewEncoder(w).Encode([]models.Artwork{
				{ID: 1, Title: "Shree Krishn", Category: models.CategoryList{"paintings"}, Price: 2000},
			})
		case "/artworks/1":
			json.NewEncoder(w).Encode(models.Artwork{ID: 1, Title: "Shree Krishn"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	ctx := context.Background()

	artworks, err := client.Artworks(ctx)
	require.NoError(t, err)
	require.Len(t, artworks, 1)
	assert.Equal(t, "Shree Krishn", artworks[0].Title)
	assert.Equal(t, "paintings", artworks[0].Category.Primary())

	artwork, err := client.Artwork(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, uint(1), artwork.ID)

	_, err = client.Artwork(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUnreachableBackend(t *testing.T) {
	t.Parallel()

	// A freshly closed test server guarantees a connection error.
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Artworks(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestRejectedResponseCarriesMessage(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.AdminLogin(context.Background(), "a@b.c", "wrong")

	var rejected *RejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, http.StatusUnauthorized, rejected.Status)
	assert.Equal(t, "Invalid credentials", rejected.Message)
}

func TestCreateTestimonialPostsJSON(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/testimonials", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in models.Testimonial
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		in.ID = 9
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(in)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	created, err := client.CreateTestimonial(context.Background(), models.Testimonial{
		Name: "Priya", Email: "priya@example.com", Rating: 5, Text: "Wonderful work, truly divine!",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(9), created.ID)
	assert.Equal(t, "Priya", created.Name)
}

func TestCreateArtworkWithImageMultipart(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/artworks/with-image", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(8<<20))

		assert.Equal(t, "Mahadev", r.FormValue("title"))
		assert.Equal(t, "paintings", r.FormValue("category"))
		assert.Equal(t, "2500", r.FormValue("price"))
		assert.Equal(t, "true", r.FormValue("available"))

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "mahadev.jpg", header.Filename)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Artwork{ID: 15, Title: "Mahadev"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	created, err := client.CreateArtworkWithImage(context.Background(), ArtworkUpload{
		Title:       "Mahadev",
		Description: "Lord Shiva in meditation",
		Category:    "paintings",
		Price:       2500,
		Rating:      5,
		Available:   true,
		ImageName:   "mahadev.jpg",
		Image:       []byte("fake image bytes"),
	})
	require.NoError(t, err)
	assert.Equal(t, uint(15), created.ID)
}

func TestUpdateOrderStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/orders/3/status", r.URL.Path)
		assert.Equal(t, "COMPLETED", r.URL.Query().Get("status"))
		json.NewEncoder(w).Encode(models.Order{ID: 3, Status: "COMPLETED"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	order, err := client.UpdateOrderStatus(context.Background(), 3, "COMPLETED")
	require.NoError(t, err)
	assert.Equal(t, "COMPLETED", order.Status)
}
