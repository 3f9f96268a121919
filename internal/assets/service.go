package assets

import (
	"context"
	"strings"

	"peminjaman/internal/api"
	"peminjaman/internal/inflight"
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

// List fetches the registry filtered by search text and category. Filtering
// happens server-side; this is the page's re-fetch on mount.
func (s *Service) List(ctx context.Context, search, category string) ([]models.Asset, error) {
	if category != "" && category != models.CategoryRuangan && category != models.CategoryFasilitas {
		return nil, apierr.NewValidation("kategori %q tidak dikenal", category)
	}
	return s.client.ListAssets(ctx, search, category)
}

// validateAsset enforces the stock invariants before anything goes over the
// wire: condition quantities may not exceed total stock, nor may available
// stock.
func validateAsset(asset *models.Asset) error {
	if strings.TrimSpace(asset.Name) == "" {
		return apierr.NewValidation("nama aset wajib diisi")
	}
	if asset.Category != models.CategoryRuangan && asset.Category != models.CategoryFasilitas {
		return apierr.NewValidation("kategori aset harus ruangan atau fasilitas")
	}
	if asset.TotalStock < 0 || asset.AvailableStock < 0 {
		return apierr.NewValidation("jumlah stok tidak boleh negatif")
	}
	if asset.AvailableStock > asset.TotalStock {
		return apierr.NewValidation("stok tersedia melebihi total stok")
	}

	sum := 0
	for _, c := range asset.Conditions {
		if c.Condition == models.CondHilang {
			return apierr.NewValidation("kondisi hilang tidak berlaku untuk rincian stok aset")
		}
		if !c.Condition.IsValid() {
			return apierr.NewValidation("kondisi %q tidak dikenal", c.Condition)
		}
		if c.Quantity < 0 {
			return apierr.NewValidation("jumlah kondisi tidak boleh negatif")
		}
		sum += c.Quantity
	}
	if sum > asset.TotalStock {
		return apierr.NewValidation("rincian kondisi melebihi total stok")
	}
	return nil
}

func (s *Service) Create(ctx context.Context, asset models.Asset) (*models.Asset, error) {
	if !s.sess.Capabilities().CanManageAssets {
		return nil, apierr.NewPermissionDenied(s.sess.Role().String(), "mengelola aset")
	}
	if err := validateAsset(&asset); err != nil {
		return nil, err
	}

	release, requestID, err := s.guard.Begin("assets.create")
	if err != nil {
		return nil, err
	}
	defer release()

	created, err := s.client.CreateAsset(ctx, requestID, asset)
	if err != nil {
		return nil, err
	}
	s.log.Info("asset created", zap.String("id", created.ID), zap.String("name", created.Name))
	return created, nil
}

func (s *Service) Update(ctx context.Context, asset models.Asset) (*models.Asset, error) {
	if !s.sess.Capabilities().CanManageAssets {
		return nil, apierr.NewPermissionDenied(s.sess.Role().String(), "mengelola aset")
	}
	if asset.ID == "" {
		return nil, apierr.NewValidation("id aset wajib diisi")
	}
	if err := validateAsset(&asset); err != nil {
		return nil, err
	}

	release, requestID, err := s.guard.Begin("assets.update:" + asset.ID)
	if err != nil {
		return nil, err
	}
	defer release()

	updated, err := s.client.UpdateAsset(ctx, requestID, asset)
	if err != nil {
		return nil, err
	}
	s.log.Info("asset updated", zap.String("id", updated.ID))
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if !s.sess.Capabilities().CanManageAssets {
		return apierr.NewPermissionDenied(s.sess.Role().String(), "mengelola aset")
	}

	release, requestID, err := s.guard.Begin("assets.delete:" + id)
	if err != nil {
		return err
	}
	defer release()

	return s.client.DeleteAsset(ctx, requestID, id)
}
