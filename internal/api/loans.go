package api

import (
	"context"
	"net/http"
	"net/url"

	"peminjaman/pkg/models"
)

type LoanFilter struct {
	Search       string
	Status       string
	AcademicYear string
	Semester     string
}

func (f LoanFilter) values() url.Values {
	query := url.Values{}
	if f.Search != "" {
		query.Set("search", f.Search)
	}
	if f.Status != "" {
		query.Set("status", f.Status)
	}
	if f.AcademicYear != "" {
		query.Set("academicYear", f.AcademicYear)
	}
	if f.Semester != "" {
		query.Set("semester", f.Semester)
	}
	return query
}

type CreateLoanPayload struct {
	RoomID       string                `json:"roomId,omitempty"`
	Facilities   []models.FacilityItem `json:"facilities"`
	StartDate    string                `json:"startDate"`
	EndDate      string                `json:"endDate"`
	StartTime    string                `json:"startTime"`
	EndTime      string                `json:"endTime"`
	Purpose      string                `json:"purpose"`
	AcademicYear string                `json:"academicYear"`
	Semester     string                `json:"semester"`
}

type UpdateLoanStatusPayload struct {
	Status string `json:"status"`
	Notes  string `json:"notes,omitempty"`
}

func (c *Client) ListLoans(ctx context.Context, filter LoanFilter) ([]models.Loan, error) {
	var loans []models.Loan
	if err := c.do(ctx, http.MethodGet, "/loans", filter.values(), "", nil, &loans); err != nil {
		return nil, err
	}
	return loans, nil
}

func (c *Client) CreateLoan(ctx context.Context, requestID string, payload CreateLoanPayload) (*models.Loan, error) {
	var loan models.Loan
	if err := c.do(ctx, http.MethodPost, "/loans", nil, requestID, payload, &loan); err != nil {
		return nil, err
	}
	return &loan, nil
}

func (c *Client) UpdateLoanStatus(ctx context.Context, requestID, id string, payload UpdateLoanStatusPayload) (*models.Loan, error) {
	var loan models.Loan
	if err := c.do(ctx, http.MethodPut, "/loans/"+id+"/status", nil, requestID, payload, &loan); err != nil {
		return nil, err
	}
	return &loan, nil
}

func (c *Client) DeleteLoan(ctx context.Context, requestID, id string) error {
	return c.do(ctx, http.MethodDelete, "/loans/"+id, nil, requestID, nil, nil)
}
