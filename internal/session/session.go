package session

import (
	"context"
	"sync"
	"time"

	"peminjaman/internal/api"
	"peminjaman/pkg/apierr"
	"peminjaman/pkg/models"
	"peminjaman/pkg/roles"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// Session holds the current user and credential for the process lifetime.
// It is constructed explicitly at startup and passed to whoever needs it,
// never an ambient singleton.
type Session struct {
	mu    sync.RWMutex
	store *Store
	log   *zap.Logger
	user  *models.User
	token string
}

func New(store *Store, log *zap.Logger) *Session {
	return &Session{store: store, log: log}
}

// Restore loads the persisted credential, dropping it when the token has
// expired. The token is opaque to the client; only the exp claim is read,
// signature validation is the backend's job.
func (s *Session) Restore() error {
	p, err := s.store.Load()
	if err != nil {
		return err
	}
	if p == nil {
		return nil
	}

	if expired(p.Token) {
		s.log.Info("persisted token expired, clearing session")
		return s.store.Clear()
	}

	s.mu.Lock()
	s.token = p.Token
	s.user = &p.User
	s.mu.Unlock()
	return nil
}

func expired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

// Login authenticates against the backend and persists the credential on
// success.
func (s *Session) Login(ctx context.Context, client *api.Client, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, apierr.NewValidation("email dan password wajib diisi")
	}

	result, err := client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.token = result.Token
	s.user = &result.User
	s.mu.Unlock()

	if err := s.store.Save(result.Token, result.User); err != nil {
		s.log.Warn("could not persist session", zap.Error(err))
	}
	s.log.Info("logged in", zap.String("user", result.User.Name), zap.String("role", result.User.Role))
	return &result.User, nil
}

// Logout tears the session down and removes the persisted credential.
func (s *Session) Logout() error {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.mu.Unlock()
	return s.store.Clear()
}

// Expire drops the session after the backend rejected the token. Wired to
// the API client's 401 hook.
func (s *Session) Expire() {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.mu.Unlock()
	if err := s.store.Clear(); err != nil {
		s.log.Warn("could not clear session file", zap.Error(err))
	}
}

func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.token != ""
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns a copy of the current profile, or nil when logged out.
func (s *Session) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Role returns the current role, empty when logged out. An empty role yields
// an empty capability set downstream.
func (s *Session) Role() roles.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return ""
	}
	return roles.Role(s.user.Role)
}

// Capabilities is a convenience over Role().Capabilities().
func (s *Session) Capabilities() roles.Capabilities {
	return s.Role().Capabilities()
}
