package httpserver

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/yuviart/storefront/internal/backend"
	"github.com/yuviart/storefront/internal/events"
	"github.com/yuviart/storefront/internal/logging"
	"github.com/yuviart/storefront/internal/models"
	"github.com/yuviart/storefront/internal/search"
	"github.com/yuviart/storefront/internal/store"
	"github.com/yuviart/storefront/internal/util"
	"github.com/yuviart/storefront/internal/validate"
)

const maxImageSize = 5 << 20

type ArtworkHandler struct {
	Store    *store.ArtworkStore
	Client   *backend.Client
	Searcher *search.Service
	Producer *events.Producer
}

func (h *ArtworkHandler) publish(c echo.Context, key string, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, events.TopicArtworks, key, event); err != nil {
		logging.FromContext(c.Request().Context()).Warn("artwork event publish failed", "error", err)
	}
}

// refresh pulls the catalog again after a write and reindexes search. Both
// are best effort, the write already succeeded.
func (h *ArtworkHandler) refresh(c echo.Context) {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx)
	if err := h.Store.Refresh(ctx); err != nil {
		l.Warn("catalog refresh failed", "error", err)
		return
	}
	if err := h.Searcher.IndexArtworks(ctx, h.Store.All()); err != nil {
		l.Warn("catalog reindex failed", "error", err)
	}
}

// List serves the catalog. Category filters go through the backend's
// category route while it is reachable, so the listing reflects data the
// cache may not have seen yet; otherwise the cached copy is filtered
// locally.
func (h *ArtworkHandler) List(c echo.Context) error {
	category := c.QueryParam("category")

	var items []models.Artwork
	switch {
	case category == "" || category == "all":
		items = h.Store.All()
	case h.Client != nil && !h.Store.Fallback():
		fetched, err := h.Client.ArtworksByCategory(c.Request().Context(), category)
		if err != nil {
			logging.FromContext(c.Request().Context()).Warn("category fetch failed", "category", category, "error", err)
			items = h.Store.ByCategory(category)
		} else {
			items = fetched
		}
	default:
		items = h.Store.ByCategory(category)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"artworks": items,
		"fallback": h.Store.Fallback(),
		"loading":  h.Store.Loading(),
	})
}

func (h *ArtworkHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid artwork id")
	}

	artwork, ok := h.Store.Get(uint(id))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "artwork not found")
	}
	return c.JSON(http.StatusOK, artwork)
}

func (h *ArtworkHandler) Search(c echo.Context) error {
	q := c.QueryParam("q")
	if q == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing query")
	}

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	from, limit := util.Calculate(page, size)

	total, artworks, err := h.Searcher.Search(c.Request().Context(), q, from, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"total": total, "artworks": artworks})
}

func (h *ArtworkHandler) AdminList(c echo.Context) error {
	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	all := h.Store.All()
	total := len(all)

	start := offset
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return c.JSON(http.StatusOK, echo.Map{
		"data": all[start:end],
		"meta": echo.Map{
			"page":        page,
			"size":        limit,
			"total":       total,
			"total_pages": (total + limit - 1) / limit,
			"has_prev":    page > 1,
			"has_next":    end < total,
		},
	})
}

type artworkRequest struct {
	Title         string              `json:"title"`
	Description   string              `json:"description"`
	Category      models.CategoryList `json:"category"`
	Price         float64             `json:"price"`
	Rating        int                 `json:"rating"`
	StockQuantity int                 `json:"stockQuantity"`
	ImageURL      string              `json:"imageUrl"`
	Available     bool                `json:"available"`
}

func (r artworkRequest) validate() validate.Errors {
	return validate.Artwork(validate.ArtworkForm{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category.Primary(),
		Price:       r.Price,
		Rating:      r.Rating,
	})
}

func (r artworkRequest) model() models.Artwork {
	return models.Artwork{
		Title:         r.Title,
		Description:   r.Description,
		Category:      r.Category,
		Price:         r.Price,
		Rating:        r.Rating,
		StockQuantity: r.StockQuantity,
		ImageURL:      r.ImageURL,
		Available:     r.Available,
	}
}

func (h *ArtworkHandler) Create(c echo.Context) error {
	var req artworkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if errs := req.validate(); !errs.OK() {
		return validationError(c, errs)
	}

	created, err := h.Client.CreateArtwork(c.Request().Context(), req.model())
	if err != nil {
		return backendError(err)
	}

	h.publish(c, fmt.Sprint(created.ID), map[string]any{
		"type":      "artwork_created",
		"artworkID": created.ID,
		"title":     created.Title,
	})
	h.refresh(c)

	return c.JSON(http.StatusCreated, created)
}

func (h *ArtworkHandler) CreateWithImage(c echo.Context) error {
	req := artworkRequest{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Category:    models.CategoryList{c.FormValue("category")},
		Available:   c.FormValue("available") != "false",
	}
	req.Price, _ = strconv.ParseFloat(c.FormValue("price"), 64)
	req.Rating = util.ParseIntDefault(c.FormValue("rating"), 0)
	req.StockQuantity = util.ParseIntDefault(c.FormValue("stockQuantity"), 0)

	errs := req.validate()

	file, err := c.FormFile("image")
	switch {
	case err != nil:
		errs["image"] = "Image is required"
	case file.Size > maxImageSize:
		errs["image"] = "Image must be less than 5MB"
	case !strings.HasPrefix(file.Header.Get(echo.HeaderContentType), "image/"):
		errs["image"] = "File must be an image"
	}
	if !errs.OK() {
		return validationError(c, errs)
	}

	src, err := file.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	defer src.Close()

	image, err := io.ReadAll(io.LimitReader(src, maxImageSize))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	upload := backend.ArtworkUpload{
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category.Primary(),
		Price:         req.Price,
		Rating:        req.Rating,
		StockQuantity: req.StockQuantity,
		Available:     req.Available,
		ImageName:     file.Filename,
		Image:         image,
	}

	created, err := h.Client.CreateArtworkWithImage(c.Request().Context(), upload)
	if err != nil {
		return backendError(err)
	}

	h.publish(c, fmt.Sprint(created.ID), map[string]any{
		"type":      "artwork_created",
		"artworkID": created.ID,
		"title":     created.Title,
	})
	h.refresh(c)

	return c.JSON(http.StatusCreated, created)
}

func (h *ArtworkHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid artwork id")
	}

	var req artworkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if errs := req.validate(); !errs.OK() {
		return validationError(c, errs)
	}

	updated, err := h.Client.UpdateArtwork(c.Request().Context(), uint(id), req.model())
	if err != nil {
		return backendError(err)
	}

	h.refresh(c)
	return c.JSON(http.StatusOK, updated)
}

func (h *ArtworkHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid artwork id")
	}

	if err := h.Client.DeleteArtwork(c.Request().Context(), uint(id)); err != nil {
		return backendError(err)
	}

	h.publish(c, c.Param("id"), map[string]any{
		"type":      "artwork_deleted",
		"artworkID": id,
	})
	h.refresh(c)

	return c.NoContent(http.StatusNoContent)
}
