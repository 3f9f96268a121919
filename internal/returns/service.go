package returns

import (
	"context"
	"time"

	"peminjaman/internal/api"
	"peminjaman/internal/inflight"
	"peminjaman/internal/loans"
	"peminjaman/internal/session"
	"peminjaman/pkg/apierr"
	"peminjaman/pkg/models"

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

// Initiate starts a fresh reconciliation for an approved loan. Calling it
// again for the same loan discards any earlier partial toggling.
func (s *Service) Initiate(loan *models.Loan) (*Workflow, error) {
	if !s.sess.Capabilities().CanApprove {
		return nil, apierr.NewPermissionDenied(s.sess.Role().String(), "memproses pengembalian")
	}
	return NewWorkflow(loan)
}

// Confirm submits the completed working set. On any failure the loan stays
// as it was and the workflow can be retried or re-initiated; nothing is
// committed partially.
func (s *Service) Confirm(ctx context.Context, w *Workflow) (*models.Loan, error) {
	if !s.sess.Capabilities().CanApprove {
		return nil, apierr.NewPermissionDenied(s.sess.Role().String(), "memproses pengembalian")
	}
	if !w.CanConfirm() {
		return nil, apierr.NewValidation("semua item harus ditandai kembali sebelum konfirmasi")
	}

	release, requestID, err := s.guard.Begin("returns.process:" + w.LoanID())
	if err != nil {
		return nil, err
	}
	defer release()

	loan, err := s.client.ProcessReturn(ctx, requestID, w.LoanID(), w.payload())
	if err != nil {
		return nil, err
	}

	s.log.Info("return confirmed",
		zap.String("loan", loan.ID),
		zap.String("status", loan.Status),
		zap.Int("items", len(w.items)))
	return loan, nil
}

// Pending lists approved loans awaiting handback.
func (s *Service) Pending(ctx context.Context) ([]models.Loan, error) {
	return s.client.PendingReturns(ctx)
}

// OverduePending filters pending returns whose end date already passed.
func (s *Service) OverduePending(ctx context.Context, now time.Time) ([]models.Loan, error) {
	pending, err := s.client.PendingReturns(ctx)
	if err != nil {
		return nil, err
	}
	return loans.Overdue(pending, now), nil
}

// History lists confirmed returns, filterable by academic year and semester.
func (s *Service) History(ctx context.Context, academicYear, semester string) ([]models.Loan, error) {
	return s.client.ReturnHistory(ctx, academicYear, semester)
}
