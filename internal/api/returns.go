package api

import (
	"context"
	"net/http"
	"net/url"

	"peminjaman/pkg/models"
)

type ProcessReturnPayload struct {
	ReturnedItems []models.ReturnedItem `json:"returnedItems"`
	Notes         string                `json:"notes,omitempty"`
}

func (c *Client) PendingReturns(ctx context.Context) ([]models.Loan, error) {
	var loans []models.Loan
	if err := c.do(ctx, http.MethodGet, "/returns/pending", nil, "", nil, &loans); err != nil {
		return nil, err
	}
	return loans, nil
}

func (c *Client) ReturnHistory(ctx context.Context, academicYear, semester string) ([]models.Loan, error) {
	query := url.Values{}
	if academicYear != "" {
		query.Set("academicYear", academicYear)
	}
	if semester != "" {
		query.Set("semester", semester)
	}

	var loans []models.Loan
	if err := c.do(ctx, http.MethodGet, "/returns/history", query, "", nil, &loans); err != nil {
		return nil, err
	}
	return loans, nil
}

func (c *Client) ProcessReturn(ctx context.Context, requestID, loanID string, payload ProcessReturnPayload) (*models.Loan, error) {
	var loan models.Loan
	if err := c.do(ctx, http.MethodPost, "/returns/"+loanID+"/process", nil, requestID, payload, &loan); err != nil {
		return nil, err
	}
	return &loan, nil
}
