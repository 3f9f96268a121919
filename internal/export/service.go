package export

import (
	"context"
	"fmt"
	"os"

	"peminjaman/internal/api"
	"peminjaman/internal/session"
	"peminjaman/pkg/apierr"

	"go.uber.org/zap"
)

// Service downloads backend-generated CSV exports. The client never builds
// CSV itself.
type Service struct {
	client *api.Client
	sess   *session.Session
	log    *zap.Logger
}

func NewService(client *api.Client, sess *session.Session, log *zap.Logger) *Service {
	return &Service{client: client, sess: sess, log: log}
}

func (s *Service) Loans(ctx context.Context, filter api.LoanFilter, outPath string) error {
	if !s.sess.Capabilities().CanExport {
		return apierr.NewPermissionDenied(s.sess.Role().String(), "mengekspor data")
	}

	payload, err := s.client.ExportLoans(ctx, filter)
	if err != nil {
		return err
	}
	return s.write(outPath, payload)
}

func (s *Service) DamageReports(ctx context.Context, filter api.ReportFilter, outPath string) error {
	if !s.sess.Capabilities().CanExport {
		return apierr.NewPermissionDenied(s.sess.Role().String(), "mengekspor data")
	}

	payload, err := s.client.ExportDamageReports(ctx, filter)
	if err != nil {
		return err
	}
	return s.write(outPath, payload)
}

func (s *Service) write(path string, payload []byte) error {
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("write export file: %w", err)
	}
	s.log.Info("export saved", zap.String("file", path), zap.Int("bytes", len(payload)))
	return nil
}
