package backend

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/yuviart/storefront/internal/models"
)

func (c *Client) Artworks(ctx context.Context) ([]models.Artwork, error) {
	var artworks []models.Artwork
	if err := c.getJSON(ctx, "/artworks", &artworks); err != nil {
		return nil, err
	}
	return artworks, nil
}

func (c *Client) Artwork(ctx context.Context, id uint) (*models.Artwork, error) {
	var artwork models.Artwork
	if err := c.getJSON(ctx, fmt.Sprintf("/artworks/%d", id), &artwork); err != nil {
		return nil, err
	}
	return &artwork, nil
}

func (c *Client) ArtworksByCategory(ctx context.Context, category string) ([]models.Artwork, error) {
	var artworks []models.Artwork
	if err := c.getJSON(ctx, "/artworks/category/"+url.PathEscape(category), &artworks); err != nil {
		return nil, err
	}
	return artworks, nil
}

func (c *Client) CreateArtwork(ctx context.Context, artwork models.Artwork) (*models.Artwork, error) {
	var created models.Artwork
	if err := c.sendJSON(ctx, http.MethodPost, "/artworks", artwork, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateArtwork(ctx context.Context, id uint, artwork models.Artwork) (*models.Artwork, error) {
	var updated models.Artwork
	if err := c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/artworks/%d", id), artwork, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteArtwork(ctx context.Context, id uint) error {
	return c.sendJSON(ctx, http.MethodDelete, fmt.Sprintf("/artworks/%d", id), nil, nil)
}

// ArtworkUpload is the multipart payload for the create-with-image route.
type ArtworkUpload struct {
	Title         string
	Description   string
	Category      string
	Price         float64
	Rating        int
	StockQuantity int
	Available     bool
	ImageName     string
	Image         []byte
}

func (c *Client) CreateArtworkWithImage(ctx context.Context, upload ArtworkUpload) (*models.Artwork, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"title":         upload.Title,
		"description":   upload.Description,
		"category":      upload.Category,
		"price":         strconv.FormatFloat(upload.Price, 'f', -1, 64),
		"rating":        strconv.Itoa(upload.Rating),
		"stockQuantity": strconv.Itoa(upload.StockQuantity),
		"available":     strconv.FormatBool(upload.Available),
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, fmt.Errorf("write field %s: %w", name, err)
		}
	}

	part, err := w.CreateFormFile("image", upload.ImageName)
	if err != nil {
		return nil, fmt.Errorf("create image part: %w", err)
	}
	if _, err := part.Write(upload.Image); err != nil {
		return nil, fmt.Errorf("write image: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	var created models.Artwork
	if err := c.do(ctx, http.MethodPost, "/artworks/with-image", w.FormDataContentType(), &buf, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
