package loans

import (
	"context"
	"time"

	"peminjaman/internal/api"
	"peminjaman/internal/inflight"
	"peminjaman/internal/session"
	"peminjaman/pkg/apierr"
	"peminjaman/pkg/models"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type Service struct {
	client   *api.Client
	sess     *session.Session
	guard    *inflight.Guard
	validate *validator.Validate
	log      *zap.Logger
}

func NewService(client *api.Client, sess *session.Session, guard *inflight.Guard, log *zap.Logger) *Service {
	return &Service{
		client:   client,
		sess:     sess,
		guard:    guard,
		validate: validator.New(),
		log:      log,
	}
}

type CreateRequest struct {
	RoomID       string                `validate:"omitempty"`
	Facilities   []models.FacilityItem `validate:"omitempty,dive"`
	StartDate    string                `validate:"required,datetime=2006-01-02"`
	EndDate      string                `validate:"required,datetime=2006-01-02"`
	StartTime    string                `validate:"required"`
	EndTime      string                `validate:"required"`
	Purpose      string                `validate:"required"`
	AcademicYear string                `validate:"omitempty"`
	Semester     string                `validate:"omitempty,oneof=ganjil genap"`
}

// Create submits a new loan request. The backend puts every new loan in
// "menunggu"; all preconditions here fail locally before any network call.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*models.Loan, error) {
	if !s.sess.Capabilities().CanCreateLoan {
		return nil, apierr.NewPermissionDenied(s.sess.Role().String(), "membuat peminjaman")
	}

	if err := s.validate.Struct(req); err != nil {
		return nil, apierr.NewValidation("data peminjaman tidak lengkap: %v", err)
	}
	if req.RoomID == "" && len(req.Facilities) == 0 {
		return nil, apierr.NewValidation("must choose a room or at least one facility")
	}
	for _, f := range req.Facilities {
		if f.Quantity < 1 {
			return nil, apierr.NewValidation("jumlah fasilitas %q minimal 1", f.Name)
		}
	}

	start, _ := time.ParseInLocation(dateLayout, req.StartDate, time.Local)
	end, _ := time.ParseInLocation(dateLayout, req.EndDate, time.Local)
	if end.Before(start) {
		return nil, apierr.NewValidation("tanggal selesai tidak boleh sebelum tanggal mulai")
	}

	if req.AcademicYear == "" || req.Semester == "" {
		year, semester := DefaultAcademicTerm(time.Now())
		if req.AcademicYear == "" {
			req.AcademicYear = year
		}
		if req.Semester == "" {
			req.Semester = semester
		}
	}

	release, requestID, err := s.guard.Begin("loans.create")
	if err != nil {
		return nil, err
	}
	defer release()

	loan, err := s.client.CreateLoan(ctx, requestID, api.CreateLoanPayload{
		RoomID:       req.RoomID,
		Facilities:   req.Facilities,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Purpose:      req.Purpose,
		AcademicYear: req.AcademicYear,
		Semester:     req.Semester,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("loan created",
		zap.String("id", loan.ID),
		zap.String("room", loan.RoomID),
		zap.Int("facilities", len(loan.Facilities)))
	return loan, nil
}

func (s *Service) List(ctx context.Context, filter api.LoanFilter) ([]models.Loan, error) {
	return s.client.ListLoans(ctx, filter)
}

// Find fetches a single loan by ID through the list endpoint.
func (s *Service) Find(ctx context.Context, id string) (*models.Loan, error) {
	loans, err := s.client.ListLoans(ctx, api.LoanFilter{})
	if err != nil {
		return nil, err
	}
	for i := range loans {
		if loans[i].ID == id {
			return &loans[i], nil
		}
	}
	return nil, apierr.NewOperationFailed("peminjaman tidak ditemukan", 0, nil)
}

// UpdateStatus performs a direct status edit (approve/reject). The literal
// must be one of the four post-creation states and the transition must be
// legal from the loan's current state; both checks fail locally.
func (s *Service) UpdateStatus(ctx context.Context, loan *models.Loan, newStatus, notes string) (*models.Loan, error) {
	if !s.sess.Capabilities().CanApprove {
		return nil, apierr.NewPermissionDenied(s.sess.Role().String(), "mengubah status peminjaman")
	}

	status, err := NewUpdateStatus(newStatus)
	if err != nil {
		return nil, err
	}
	if err := ValidateDirectEdit(Status(loan.Status), status); err != nil {
		return nil, err
	}

	release, requestID, err := s.guard.Begin("loans.status:" + loan.ID)
	if err != nil {
		return nil, err
	}
	defer release()

	updated, err := s.client.UpdateLoanStatus(ctx, requestID, loan.ID, api.UpdateLoanStatusPayload{
		Status: status.String(),
		Notes:  notes,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("loan status updated", zap.String("id", loan.ID), zap.String("status", updated.Status))
	return updated, nil
}

// Delete removes a loan outright. Approver roles only; no client-side
// cascade.
func (s *Service) Delete(ctx context.Context, id string) error {
	if !s.sess.Capabilities().CanApprove {
		return apierr.NewPermissionDenied(s.sess.Role().String(), "menghapus peminjaman")
	}

	release, requestID, err := s.guard.Begin("loans.delete:" + id)
	if err != nil {
		return err
	}
	defer release()

	return s.client.DeleteLoan(ctx, requestID, id)
}

// Overdue filters the loans that are past due and still open.
func Overdue(loans []models.Loan, now time.Time) []models.Loan {
	var out []models.Loan
	for _, l := range loans {
		if IsOverdue(&l, now) {
			out = append(out, l)
		}
	}
	return out
}
