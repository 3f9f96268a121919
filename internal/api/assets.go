package api

import (
	"context"
	"net/http"
	"net/url"

	"peminjaman/pkg/models"
)

func (c *Client) ListAssets(ctx context.Context, search, category string) ([]models.Asset, error) {
	query := url.Values{}
	if search != "" {
		query.Set("search", search)
	}
	if category != "" {
		query.Set("category", category)
	}

	var assets []models.Asset
	if err := c.do(ctx, http.MethodGet, "/assets", query, "", nil, &assets); err != nil {
		return nil, err
	}
	return assets, nil
}

func (c *Client) CreateAsset(ctx context.Context, requestID string, asset models.Asset) (*models.Asset, error) {
	var created models.Asset
	if err := c.do(ctx, http.MethodPost, "/assets", nil, requestID, asset, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateAsset(ctx context.Context, requestID string, asset models.Asset) (*models.Asset, error) {
	var updated models.Asset
	if err := c.do(ctx, http.MethodPut, "/assets/"+asset.ID, nil, requestID, asset, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteAsset(ctx context.Context, requestID, id string) error {
	return c.do(ctx, http.MethodDelete, "/assets/"+id, nil, requestID, nil, nil)
}
