package loans

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

// newTestService builds a service whose session carries the given role. The
// API client points nowhere; every case here must fail before the network.
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

func validCreateRequest() CreateRequest {
	return CreateRequest{
		RoomID:    "a1",
		StartDate: "2025-10-20",
		EndDate:   "2025-10-20",
		StartTime: "08:00",
		EndTime:   "12:00",
		Purpose:   "Seminar proposal",
	}
}

func TestCreateRequiresRoomOrFacility(t *testing.T) {
	s := newTestService(t, roles.Dosen)

	req := validCreateRequest()
	req.RoomID = ""
	req.Facilities = nil

	_, err := s.Create(context.Background(), req)
	require.Error(t, err)
	assert.True(t, apierr.IsValidation(err))
	assert.EqualError(t, err, "must choose a room or at least one facility")
}

func TestCreateRejectsReversedDates(t *testing.T) {
	s := newTestService(t, roles.Mahasiswa)

	req := validCreateRequest()
	req.StartDate = "2025-10-21"
	req.EndDate = "2025-10-20"

	_, err := s.Create(context.Background(), req)
	assert.True(t, apierr.IsValidation(err))
}

func TestCreateAcceptsSameDayLoan(t *testing.T) {
	s := newTestService(t, roles.Dosen)

	req := validCreateRequest()
	// Same-day loans are legal, so validation passes and the request reaches
	// the (unreachable) backend.
	_, err := s.Create(context.Background(), req)
	require.Error(t, err)
	assert.True(t, apierr.IsOperationFailed(err), "got %v", err)
}

func TestCreateRejectsMalformedDates(t *testing.T) {
	s := newTestService(t, roles.Staf)

	req := validCreateRequest()
	req.StartDate = "20/10/2025"

	_, err := s.Create(context.Background(), req)
	assert.True(t, apierr.IsValidation(err))
}

func TestCreateRejectsZeroQuantityFacility(t *testing.T) {
	s := newTestService(t, roles.Dosen)

	req := validCreateRequest()
	req.RoomID = ""
	req.Facilities = []models.FacilityItem{{ID: "a2", Name: "Proyektor", Quantity: 0}}

	_, err := s.Create(context.Background(), req)
	assert.True(t, apierr.IsValidation(err))
}

func TestCreateDeniedForApproverRoles(t *testing.T) {
	for _, role := range []roles.Role{roles.StafBUF, roles.AdminBUF, roles.KepalaBUF} {
		s := newTestService(t, role)
		_, err := s.Create(context.Background(), validCreateRequest())
		assert.True(t, apierr.IsPermissionDenied(err), "role %s must be denied", role)
	}
}

func TestUpdateStatusRejectsUnknownLiteral(t *testing.T) {
	s := newTestService(t, roles.AdminBUF)
	loan := &models.Loan{ID: "l1", Status: "menunggu"}

	_, err := s.UpdateStatus(context.Background(), loan, "sedang_dipinjam", "")
	require.Error(t, err)
	assert.True(t, apierr.IsValidation(err))
	assert.EqualError(t, err, "status tidak valid")
	// The local model is untouched.
	assert.Equal(t, "menunggu", loan.Status)
}

func TestUpdateStatusDeniedForBorrowers(t *testing.T) {
	s := newTestService(t, roles.Mahasiswa)
	loan := &models.Loan{ID: "l1", Status: "menunggu"}

	_, err := s.UpdateStatus(context.Background(), loan, "disetujui", "")
	assert.True(t, apierr.IsPermissionDenied(err))
}

func TestUpdateStatusBlocksReturnStatesDirectly(t *testing.T) {
	s := newTestService(t, roles.StafBUF)
	loan := &models.Loan{ID: "l1", Status: "disetujui"}

	_, err := s.UpdateStatus(context.Background(), loan, "selesai", "")
	assert.True(t, apierr.IsValidation(err))
}

func TestDeleteDeniedForBorrowers(t *testing.T) {
	s := newTestService(t, roles.Dosen)
	err := s.Delete(context.Background(), "l1")
	assert.True(t, apierr.IsPermissionDenied(err))
}
