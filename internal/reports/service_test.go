package reports

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"peminjaman/internal/api"
	"peminjaman/internal/config"
	"peminjaman/internal/inflight"
	"peminjaman/internal/session"
	"peminjaman/pkg/apierr"
	"peminjaman/pkg/models"
	"peminjaman/pkg/roles"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T, role roles.Role) *Service {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "u1",
		"role": role.String(),
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	store := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, store.Save(token, models.User{ID: "u1", Name: "Tester", Role: role.String()}))

	sess := session.New(store, zap.NewNop())
	require.NoError(t, sess.Restore())

	client := api.NewClient(config.API{BaseURL: "http://127.0.0.1:1", Timeout: time.Second}, zap.NewNop())
	client.SetTokenSource(sess.Token)

	return NewService(client, sess, inflight.NewGuard(), zap.NewNop())
}

func TestCreateRequiresAssetAndDescription(t *testing.T) {
	s := newTestService(t, roles.Mahasiswa)

	_, err := s.Create(context.Background(), CreateRequest{Description: "kursi patah"})
	assert.True(t, apierr.IsValidation(err))

	_, err = s.Create(context.Background(), CreateRequest{AssetID: "a3", Description: "   "})
	assert.True(t, apierr.IsValidation(err))
}

func TestCreateRejectsUnknownPriority(t *testing.T) {
	s := newTestService(t, roles.Staf)

	_, err := s.Create(context.Background(), CreateRequest{AssetID: "a3", Description: "rusak", Priority: "urgent"})
	assert.True(t, apierr.IsValidation(err))
}

func TestCreateDeniedForManagers(t *testing.T) {
	for _, role := range []roles.Role{roles.AdminBUF, roles.KepalaBUF} {
		s := newTestService(t, role)
		_, err := s.Create(context.Background(), CreateRequest{AssetID: "a3", Description: "rusak"})
		assert.True(t, apierr.IsPermissionDenied(err), "role %s must not file reports", role)
	}
}

func TestUpdateDeniedForNonManagers(t *testing.T) {
	for _, role := range []roles.Role{roles.Mahasiswa, roles.Dosen, roles.Staf, roles.StafBUF} {
		s := newTestService(t, role)
		report := &models.DamageReport{ID: "r1", Status: "menunggu"}
		_, err := s.Update(context.Background(), report, UpdateRequest{Status: "dalam_perbaikan"})
		assert.True(t, apierr.IsPermissionDenied(err), "role %s must be read-only", role)
	}
}

func TestUpdateRejectsBackwardTransition(t *testing.T) {
	s := newTestService(t, roles.AdminBUF)
	report := &models.DamageReport{ID: "r1", Status: "selesai"}

	_, err := s.Update(context.Background(), report, UpdateRequest{Status: "menunggu"})
	assert.True(t, apierr.IsValidation(err))
	assert.Equal(t, "selesai", report.Status)
}

func TestDeleteDeniedForNonManagers(t *testing.T) {
	s := newTestService(t, roles.StafBUF)
	err := s.Delete(context.Background(), "r1")
	assert.True(t, apierr.IsPermissionDenied(err))
}
