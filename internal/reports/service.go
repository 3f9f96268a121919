package reports

import (
	"context"
	"strings"

	"peminjaman/internal/api"
	"peminjaman/internal/inflight"
	"peminjaman/internal/session"
	"peminjaman/pkg/apierr"
	"peminjaman/pkg/models"
	"peminjaman/pkg/roles"

	"go.uber.org/zap"
)

type Service struct {
	client *api.Client
	sess   *session.Session
	guard  *inflight.Guard
	log    *zap.Logger
}

func NewService(client *api.Client, sess *session.Session, guard *inflight.Guard, log *zap.Logger) *Service {
	return &Service{client: client, sess: sess, guard: guard, log: log}
}

func (s *Service) List(ctx context.Context, filter api.ReportFilter) ([]models.DamageReport, error) {
	return s.client.ListDamageReports(ctx, filter)
}

// Find fetches a single report by ID through the list endpoint.
func (s *Service) Find(ctx context.Context, id string) (*models.DamageReport, error) {
	result, err := s.client.ListDamageReports(ctx, api.ReportFilter{})
	if err != nil {
		return nil, err
	}
	for i := range result {
		if result[i].ID == id {
			return &result[i], nil
		}
	}
	return nil, apierr.NewOperationFailed("laporan tidak ditemukan", 0, nil)
}

type CreateRequest struct {
	AssetID     string
	Description string
	PhotoURL    string
	Priority    string
}

// canReport: reports come from the field, not from the managers who triage
// them.
func canReport(role roles.Role) bool {
	return role.IsBorrower() || role == roles.StafBUF
}

// Create files a new report. Priority defaults to sedang; every new report
// starts in menunggu (server side).
func (s *Service) Create(ctx context.Context, req CreateRequest) (*models.DamageReport, error) {
	if !canReport(s.sess.Role()) {
		return nil, apierr.NewPermissionDenied(s.sess.Role().String(), "membuat laporan kerusakan")
	}
	if req.AssetID == "" {
		return nil, apierr.NewValidation("aset yang rusak wajib dipilih")
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, apierr.NewValidation("deskripsi kerusakan wajib diisi")
	}

	priority := PrioritySedang
	if req.Priority != "" {
		p, err := NewPriority(req.Priority)
		if err != nil {
			return nil, err
		}
		priority = p
	}

	release, requestID, err := s.guard.Begin("reports.create")
	if err != nil {
		return nil, err
	}
	defer release()

	report, err := s.client.CreateDamageReport(ctx, requestID, api.CreateReportPayload{
		AssetID:     req.AssetID,
		Description: req.Description,
		PhotoURL:    req.PhotoURL,
		Priority:    string(priority),
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("damage report created", zap.String("id", report.ID), zap.String("asset", report.AssetID))
	return report, nil
}

type UpdateRequest struct {
	Status     string
	Priority   string
	AssignedTo string
	Notes      string
}

// Update mutates triage fields on an existing report. Manager roles only;
// status may only move forward.
func (s *Service) Update(ctx context.Context, report *models.DamageReport, req UpdateRequest) (*models.DamageReport, error) {
	if !s.sess.Capabilities().CanEditReports {
		return nil, apierr.NewPermissionDenied(s.sess.Role().String(), "mengubah laporan kerusakan")
	}

	payload := api.UpdateReportPayload{}
	if req.Status != "" {
		status, err := NewStatus(req.Status)
		if err != nil {
			return nil, err
		}
		if err := ValidateTransition(Status(report.Status), status); err != nil {
			return nil, err
		}
		value := string(status)
		payload.Status = &value
	}
	if req.Priority != "" {
		priority, err := NewPriority(req.Priority)
		if err != nil {
			return nil, err
		}
		value := string(priority)
		payload.Priority = &value
	}
	if req.AssignedTo != "" {
		payload.AssignedTo = &req.AssignedTo
	}
	if req.Notes != "" {
		payload.Notes = &req.Notes
	}

	release, requestID, err := s.guard.Begin("reports.update:" + report.ID)
	if err != nil {
		return nil, err
	}
	defer release()

	updated, err := s.client.UpdateDamageReport(ctx, requestID, report.ID, payload)
	if err != nil {
		return nil, err
	}

	s.log.Info("damage report updated", zap.String("id", updated.ID), zap.String("status", updated.Status))
	return updated, nil
}

// Delete removes a report. Manager roles only, unconditional.
func (s *Service) Delete(ctx context.Context, id string) error {
	if !s.sess.Capabilities().CanEditReports {
		return apierr.NewPermissionDenied(s.sess.Role().String(), "menghapus laporan kerusakan")
	}

	release, requestID, err := s.guard.Begin("reports.delete:" + id)
	if err != nil {
		return err
	}
	defer release()

	return s.client.DeleteDamageReport(ctx, requestID, id)
}
