package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"peminjaman/pkg/models"
	"peminjaman/pkg/roles"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func signToken(t *testing.T, expiresIn time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":  "u1",
		"role": "dosen",
		"exp":  time.Now().Add(expiresIn).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func testUser() models.User {
	return models.User{ID: "u1", Name: "Rina Wijaya", Email: "rina@kampus.ac.id", Role: "dosen"}
}

func TestRestoreFromPersistedCredential(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewStore(path)
	require.NoError(t, store.Save(signToken(t, time.Hour), testUser()))

	sess := New(store, zap.NewNop())
	require.NoError(t, sess.Restore())

	assert.True(t, sess.IsAuthenticated())
	assert.Equal(t, roles.Dosen, sess.Role())
	assert.True(t, sess.Capabilities().CanCreateLoan)

	user := sess.User()
	require.NotNil(t, user)
	assert.Equal(t, "Rina Wijaya", user.Name)
}

func TestRestoreDropsExpiredToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewStore(path)
	require.NoError(t, store.Save(signToken(t, -time.Minute), testUser()))

	sess := New(store, zap.NewNop())
	require.NoError(t, sess.Restore())

	assert.False(t, sess.IsAuthenticated())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "expired credential file must be removed")
}

func TestRestoreWithoutFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.json"))
	sess := New(store, zap.NewNop())
	require.NoError(t, sess.Restore())
	assert.False(t, sess.IsAuthenticated())
	assert.Nil(t, sess.User())
	assert.Equal(t, roles.Role(""), sess.Role())
	assert.Equal(t, roles.Capabilities{}, sess.Capabilities())
}

func TestRestoreDropsGarbledToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewStore(path)
	require.NoError(t, store.Save("not-a-jwt", testUser()))

	sess := New(store, zap.NewNop())
	require.NoError(t, sess.Restore())
	assert.False(t, sess.IsAuthenticated())
}

func TestLogoutClearsEverything(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewStore(path)
	require.NoError(t, store.Save(signToken(t, time.Hour), testUser()))

	sess := New(store, zap.NewNop())
	require.NoError(t, sess.Restore())
	require.True(t, sess.IsAuthenticated())

	require.NoError(t, sess.Logout())
	assert.False(t, sess.IsAuthenticated())
	assert.Empty(t, sess.Token())

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Logging out twice is fine.
	require.NoError(t, sess.Logout())
}

func TestExpireHook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewStore(path)
	require.NoError(t, store.Save(signToken(t, time.Hour), testUser()))

	sess := New(store, zap.NewNop())
	require.NoError(t, sess.Restore())

	sess.Expire()
	assert.False(t, sess.IsAuthenticated())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
