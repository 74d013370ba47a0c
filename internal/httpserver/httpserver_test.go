package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yuviart/storefront/internal/backend"
	"github.com/yuviart/storefront/internal/cart"
	"github.com/yuviart/storefront/internal/hash"
	"github.com/yuviart/storefront/internal/mockdata"
	"github.com/yuviart/storefront/internal/models"
	"github.com/yuviart/storefront/internal/session"
	"github.com/yuviart/storefront/internal/store"
)

func testSessions(t *testing.T) *session.Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&session.Entry{}))
	return session.NewStore(db)
}

func deadBackend(t *testing.T) *backend.Client {
	t.Helper()
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	return backend.NewClient(srv.URL)
}

func jsonRequest(method, target string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestTestimonialSubmitValidation(t *testing.T) {
	t.Parallel()

	h := &TestimonialHandler{Client: deadBackend(t)}
	e := echo.New()

	req := jsonRequest(http.MethodPost, "/api/v1/testimonials", map[string]any{
		"name": "A", "email": "bad", "rating": 5, "text": "short",
	})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Submit(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	errs, ok := body["errors"].(map[string]any)
	require.True(t, ok)
	assert.Len(t, errs, 3)
	assert.Equal(t, "Please enter a valid email", errs["email"])
}

func TestTestimonialSubmitForwards(t *testing.T) {
	t.Parallel()

	backendSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/testimonials", r.URL.Path)
		var in models.Testimonial
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		in.ID = 4
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(in)
	}))
	defer backendSrv.Close()

	h := &TestimonialHandler{Client: backend.NewClient(backendSrv.URL)}
	e := echo.New()

	req := jsonRequest(http.MethodPost, "/api/v1/testimonials", map[string]any{
		"name": "Priya Sharma", "email": "priya@example.com", "rating": 5,
		"text": "Beautiful work, the colors are stunning!",
	})
	rec := httptest.NewRecorder()

	require.NoError(t, h.Submit(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestArtworkListServesFallback(t *testing.T) {
	t.Parallel()

	artworks := store.NewArtworkStore(deadBackend(t), false)
	require.NoError(t, artworks.Refresh(context.Background()))

	h := &ArtworkHandler{Store: artworks}
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/artworks", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.List(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["fallback"])
	assert.Len(t, body["artworks"], mockdata.ArtworkCount)
}

func TestArtworkGet(t *testing.T) {
	t.Parallel()

	artworks := store.NewArtworkStore(deadBackend(t), true)
	require.NoError(t, artworks.Refresh(context.Background()))

	h := &ArtworkHandler{Store: artworks}
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/v1/artworks/:id")
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var artwork models.Artwork
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &artwork))
	assert.Equal(t, "Shree Krishn", artwork.Title)

	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("999")
	err := h.Get(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}

func TestAdminLoginStatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		status      int
		wantMessage string
	}{
		{name: "wrong password", status: http.StatusUnauthorized, wantMessage: "Invalid credentials"},
		{name: "unknown account", status: http.StatusNotFound, wantMessage: "Account not found"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			backendSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer backendSrv.Close()

			h := &AuthHandler{Client: backend.NewClient(backendSrv.URL), Sessions: testSessions(t)}
			e := echo.New()
			req := jsonRequest(http.MethodPost, "/api/v1/admin/login", map[string]string{
				"email": "admin@yuviart.com", "password": "wrongpass",
			})
			rec := httptest.NewRecorder()

			err := h.AdminLogin(e.NewContext(req, rec))
			var httpErr *echo.HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, tt.status, httpErr.Code)
			assert.Equal(t, tt.wantMessage, httpErr.Message)
		})
	}
}

func TestAdminLoginOfflineFallback(t *testing.T) {
	t.Parallel()

	passwordHash, err := hash.HashPassword("supersecret")
	require.NoError(t, err)

	sessions := testSessions(t)
	h := &AuthHandler{
		Client:            deadBackend(t),
		Sessions:          sessions,
		AdminEmail:        "admin@yuviart.com",
		AdminPasswordHash: passwordHash,
	}
	e := echo.New()

	req := jsonRequest(http.MethodPost, "/api/v1/admin/login", map[string]string{
		"email": "admin@yuviart.com", "password": "supersecret",
	})
	rec := httptest.NewRecorder()

	require.NoError(t, h.AdminLogin(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	token, _ := body["token"].(string)
	assert.NotEmpty(t, token)

	stored, admin, err := sessions.AdminSession(context.Background())
	require.NoError(t, err)
	assert.Equal(t, token, stored)
	assert.Equal(t, "admin@yuviart.com", admin.Email)

	// Wrong password on the offline path reads as an unreachable backend,
	// not an auth verdict the collaborator never gave.
	req = jsonRequest(http.MethodPost, "/api/v1/admin/login", map[string]string{
		"email": "admin@yuviart.com", "password": "wrongpass",
	})
	err = h.AdminLogin(e.NewContext(req, httptest.NewRecorder()))
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusServiceUnavailable, httpErr.Code)
}

func TestAdminGuard(t *testing.T) {
	t.Parallel()

	sessions := testSessions(t)
	require.NoError(t, sessions.AdminLogin(context.Background(), "valid-token", models.Admin{ID: 1}))

	guard := &AdminGuard{Sessions: sessions}
	e := echo.New()
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	run := func(authorization string) error {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/dashboard", nil)
		if authorization != "" {
			req.Header.Set(echo.HeaderAuthorization, authorization)
		}
		return guard.Middleware(next)(e.NewContext(req, httptest.NewRecorder()))
	}

	var httpErr *echo.HTTPError
	require.ErrorAs(t, run(""), &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)

	require.ErrorAs(t, run("Bearer stale-token"), &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)

	assert.NoError(t, run("Bearer valid-token"))
}

func TestCartFlow(t *testing.T) {
	t.Parallel()

	artworks := store.NewArtworkStore(deadBackend(t), true)
	require.NoError(t, artworks.Refresh(context.Background()))

	h := &CartHandler{
		Manager:  cart.NewManager(),
		Store:    artworks,
		Client:   deadBackend(t),
		MockMode: true,
	}
	e := echo.New()

	withSession := func(req *http.Request) *http.Request {
		req.AddCookie(&http.Cookie{Name: cartCookie, Value: "test-session"})
		return req
	}

	// Add the same artwork twice plus another one.
	for _, id := range []uint{1, 1, 2} {
		req := withSession(jsonRequest(http.MethodPost, "/api/v1/cart", map[string]uint{"artworkId": id}))
		rec := httptest.NewRecorder()
		require.NoError(t, h.Add(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	rec := httptest.NewRecorder()
	require.NoError(t, h.Get(e.NewContext(withSession(httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)), rec)))
	assert.Len(t, decodeBody(t, rec)["items"], 3)

	// Removing artwork 1 drops both copies.
	req := withSession(httptest.NewRequest(http.MethodDelete, "/", nil))
	rec = httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.Remove(c))
	body := decodeBody(t, rec)
	assert.Equal(t, float64(2), body["removed"])
	assert.Len(t, body["items"], 1)

	// Mock checkout drains the cart.
	req = withSession(jsonRequest(http.MethodPost, "/api/v1/cart/checkout", map[string]string{
		"customerName": "Priya", "customerEmail": "priya@example.com",
	}))
	rec = httptest.NewRecorder()
	require.NoError(t, h.Checkout(e.NewContext(req, rec)))
	body = decodeBody(t, rec)
	assert.Equal(t, true, body["mock"])
	assert.Equal(t, float64(1), body["itemCount"])

	// The drained cart is evicted from the manager, not kept around.
	assert.Equal(t, 0, h.Manager.Len())

	rec = httptest.NewRecorder()
	require.NoError(t, h.Get(e.NewContext(withSession(httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)), rec)))
	assert.Empty(t, decodeBody(t, rec)["items"])
	assert.Equal(t, 0, h.Manager.Len())
}

func TestPendingArtworkRoundTrip(t *testing.T) {
	t.Parallel()

	h := &AuthHandler{Sessions: testSessions(t)}
	e := echo.New()

	draft := `{"title":"Mahadev","price":2500}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/pending-artwork", bytes.NewBufferString(draft))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h.SavePendingArtwork(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	require.NoError(t, h.TakePendingArtwork(e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, draft, rec.Body.String())

	err := h.TakePendingArtwork(e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), httptest.NewRecorder()))
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}

func TestUserSignupIssuesToken(t *testing.T) {
	t.Parallel()

	sessions := testSessions(t)
	h := &AuthHandler{Sessions: sessions, JWTSecret: []byte("test-secret")}
	e := echo.New()

	req := jsonRequest(http.MethodPost, "/api/v1/signup", map[string]string{
		"name": "Priya", "email": "priya@example.com",
		"password": "secret1", "confirmPassword": "secret1",
	})
	rec := httptest.NewRecorder()
	require.NoError(t, h.Signup(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.NotEmpty(t, body["token"])

	_, user, err := sessions.UserSession(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "priya@example.com", user.Email)
}

func TestContactValidation(t *testing.T) {
	t.Parallel()

	h := &ContactHandler{Client: deadBackend(t), MockMode: true}
	e := echo.New()

	req := jsonRequest(http.MethodPost, "/api/v1/contact", map[string]string{})
	rec := httptest.NewRecorder()
	require.NoError(t, h.Submit(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = jsonRequest(http.MethodPost, "/api/v1/contact", map[string]string{
		"name": "Priya", "email": "priya@example.com", "artType": "portrait",
		"message": "Looking for a custom family portrait",
	})
	rec = httptest.NewRecorder()
	require.NoError(t, h.Submit(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestOrdersByEmail(t *testing.T) {
	t.Parallel()

	backendSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/orders/customer/rahul@example.com", r.URL.Path)
		json.NewEncoder(w).Encode([]models.Order{{ID: 3, CustomerEmail: "rahul@example.com", Status: "PENDING"}})
	}))
	defer backendSrv.Close()

	h := &OrderHandler{Client: backend.NewClient(backendSrv.URL)}
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders?email=rahul@example.com", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.ByEmail(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var orders []models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, uint(3), orders[0].ID)

	// A malformed email is rejected before any backend call.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/orders?email=nope", nil)
	rec = httptest.NewRecorder()
	require.NoError(t, h.ByEmail(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestArtworkListCategoryRoutesToBackend(t *testing.T) {
	t.Parallel()

	backendSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/artworks":
			json.NewEncoder(w).Encode([]models.Artwork{
				{ID: 1, Title: "Ganesha", Category: models.CategoryList{"paintings"}},
			})
		case "/artworks/category/paintings":
			// The backend sees a record the cache has not picked up yet.
			json.NewEncoder(w).Encode([]models.Artwork{
				{ID: 1, Title: "Ganesha", Category: models.CategoryList{"paintings"}},
				{ID: 2, Title: "Durga Maa", Category: models.CategoryList{"paintings"}},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer backendSrv.Close()

	client := backend.NewClient(backendSrv.URL)
	artworks := store.NewArtworkStore(client, false)
	require.NoError(t, artworks.Refresh(context.Background()))

	h := &ArtworkHandler{Store: artworks, Client: client}
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/artworks?category=paintings", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.List(e.NewContext(req, rec)))

	body := decodeBody(t, rec)
	assert.Len(t, body["artworks"], 2)
	assert.Equal(t, false, body["fallback"])
	assert.Equal(t, false, body["loading"])
}

func TestArtworkListCategoryFallsBackLocally(t *testing.T) {
	t.Parallel()

	artworks := store.NewArtworkStore(deadBackend(t), true)
	require.NoError(t, artworks.Refresh(context.Background()))

	h := &ArtworkHandler{Store: artworks, Client: deadBackend(t)}
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/artworks?category=sketches", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.List(e.NewContext(req, rec)))

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["fallback"])
	items, ok := body["artworks"].([]any)
	require.True(t, ok)
	assert.NotEmpty(t, items)
	assert.Less(t, len(items), mockdata.ArtworkCount)
}
