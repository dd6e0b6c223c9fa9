package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/golasco/golasco/internal/domain"
)

// PropertyFilter narrows a property listing.
type PropertyFilter struct {
	City         string
	PropertyType string
	MaxPrice     float64
}

func (f PropertyFilter) query() string {
	q := url.Values{}
	if f.City != "" {
		q.Set("city", f.City)
	}
	if f.PropertyType != "" {
		q.Set("type", f.PropertyType)
	}
	if f.MaxPrice > 0 {
		q.Set("max_price", strconv.FormatFloat(f.MaxPrice, 'f', -1, 64))
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// ListProperties fetches the public property catalog.
func (c *Client) ListProperties(ctx context.Context, filter PropertyFilter) ([]domain.Property, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/properties"+filter.query(), nil)
	if err != nil {
		return nil, err
	}

	var properties []domain.Property
	if err := parseResponse(resp, &properties); err != nil {
		return nil, err
	}

	return properties, nil
}

// GetProperty fetches a single property by ID.
func (c *Client) GetProperty(ctx context.Context, id string) (*domain.Property, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/properties/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}

	var property domain.Property
	if err := parseResponse(resp, &property); err != nil {
		return nil, fmt.Errorf("failed to load property %s: %w", id, err)
	}

	return &property, nil
}
