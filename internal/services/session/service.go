package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"studentdir/internal/domain"
)

// Service is the Anonymous / Authenticated(username) state machine.
type Service struct {
	auth domain.Authenticator
	log  *zap.Logger
	now  func() time.Time

	mu      sync.Mutex
	current *domain.Session
}

// New returns an anonymous session that validates credentials with auth.
func New(auth domain.Authenticator, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{auth: auth, log: log.Named("session"), now: time.Now}
}

// Login authenticates username and makes it the current user. On failure the
// current session, if any, is kept.
func (s *Service) Login(username domain.Username, password string) (domain.Profile, error) {
	p, err := s.auth.Authenticate(username, password)
	if err != nil {
		s.log.Info("login failed", zap.String("username", username.String()), zap.Error(err))
		return domain.Profile{}, err
	}

	next := &domain.Session{
		ID:       uuid.NewString(),
		Username: p.Username,
		Started:  s.now(),
	}

	s.mu.Lock()
	prev := s.current
	s.current = next
	s.mu.Unlock()

	fields := []zap.Field{
		zap.String("username", next.Username.String()),
		zap.String("session_id", next.ID),
	}
	if prev != nil {
		fields = append(fields, zap.String("replaced_session_id", prev.ID))
	}
	s.log.Info("login", fields...)
	return p, nil
}

// Logout ends the current session and returns who was logged out.
func (s *Service) Logout() (domain.Username, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return "", domain.ErrNoActiveSession
	}
	ended := s.current
	s.current = nil
	s.log.Info("logout",
		zap.String("username", ended.Username.String()),
		zap.String("session_id", ended.ID),
		zap.Duration("duration", s.now().Sub(ended.Started)))
	return ended.Username, nil
}

// CurrentUser returns the logged-in username, or false when anonymous.
func (s *Service) CurrentUser() (domain.Username, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return "", false
	}
	return s.current.Username, true
}

// Current returns a copy of the active session.
func (s *Service) Current() (domain.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return domain.Session{}, false
	}
	return *s.current, true
}

// RequireLogin returns the logged-in username or domain.ErrNotAuthenticated.
func (s *Service) RequireLogin() (domain.Username, error) {
	u, ok := s.CurrentUser()
	if !ok {
		return "", domain.ErrNotAuthenticated
	}
	return u, nil
}

// Compile-time assertion that Service implements domain.SessionService.
var _ domain.SessionService = (*Service)(nil)
