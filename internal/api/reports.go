package api

import (
	"context"
	"net/http"
	"net/url"

	"peminjaman/pkg/models"
)

type ReportFilter struct {
	Search   string
	Status   string
	Priority string
}

func (f ReportFilter) values() url.Values {
	query := url.Values{}
	if f.Search != "" {
		query.Set("search", f.Search)
	}
	if f.Status != "" {
		query.Set("status", f.Status)
	}
	if f.Priority != "" {
		query.Set("priority", f.Priority)
	}
	return query
}

type CreateReportPayload struct {
	AssetID     string `json:"assetId"`
	Description string `json:"description"`
	PhotoURL    string `json:"photoUrl,omitempty"`
	Priority    string `json:"priority"`
}

// UpdateReportPayload carries only manager-editable fields. Nil means leave
// the field untouched.
type UpdateReportPayload struct {
	Status     *string `json:"status,omitempty"`
	Priority   *string `json:"priority,omitempty"`
	AssignedTo *string `json:"assignedTo,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

func (c *Client) ListDamageReports(ctx context.Context, filter ReportFilter) ([]models.DamageReport, error) {
	var reports []models.DamageReport
	if err := c.do(ctx, http.MethodGet, "/damage-reports", filter.values(), "", nil, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

func (c *Client) CreateDamageReport(ctx context.Context, requestID string, payload CreateReportPayload) (*models.DamageReport, error) {
	var report models.DamageReport
	if err := c.do(ctx, http.MethodPost, "/damage-reports", nil, requestID, payload, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *Client) UpdateDamageReport(ctx context.Context, requestID, id string, payload UpdateReportPayload) (*models.DamageReport, error) {
	var report models.DamageReport
	if err := c.do(ctx, http.MethodPut, "/damage-reports/"+id, nil, requestID, payload, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *Client) DeleteDamageReport(ctx context.Context, requestID, id string) error {
	return c.do(ctx, http.MethodDelete, "/damage-reports/"+id, nil, requestID, nil, nil)
}
