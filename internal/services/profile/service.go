package profile

import (
	"fmt"
	"maps"
	"sync"

	"go.uber.org/zap"

	"studentdir/internal/domain"
)

// Service is the profile directory backed by a domain.ProfileStore.
type Service struct {
	store domain.ProfileStore
	creds domain.CredentialHasher
	log   *zap.Logger

	mu       sync.Mutex
	profiles map[domain.Username]domain.Profile
}

// New returns an empty directory. Call Load to read the persisted state.
func New(store domain.ProfileStore, creds domain.CredentialHasher, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		store:    store,
		creds:    creds,
		log:      log.Named("profile"),
		profiles: make(map[domain.Username]domain.Profile),
	}
}

// Load replaces the in-memory directory with the persisted one. On error the
// directory is left as it was.
func (s *Service) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	profiles, err := s.store.LoadProfiles()
	if err != nil {
		return err
	}
	if profiles == nil {
		profiles = make(map[domain.Username]domain.Profile)
	}
	s.profiles = profiles
	s.log.Info("directory loaded", zap.Int("profiles", len(profiles)))
	return nil
}

// Save writes the whole directory to the store.
func (s *Service) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.SaveProfiles(s.profiles)
}

// Len returns the number of registered profiles.
func (s *Service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.profiles)
}

// Register creates and persists a new profile. Username rules are checked
// before password rules; nothing changes on failure.
func (s *Service) Register(
	username domain.Username,
	password, confirmPassword string,
	fields domain.Fields,
) (domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := domain.ValidateUsername(username); err != nil {
		return domain.Profile{}, err
	}
	if _, ok := s.profiles[username]; ok {
		return domain.Profile{}, domain.ErrDuplicateUsername
	}
	if err := domain.ValidateNewPassword(password, confirmPassword); err != nil {
		return domain.Profile{}, err
	}
	hash, err := s.creds.Hash(password)
	if err != nil {
		return domain.Profile{}, err
	}

	p := domain.Profile{Username: username, PasswordHash: hash, Fields: fields}
	if err := s.commit(p); err != nil {
		return domain.Profile{}, err
	}
	s.log.Info("profile registered", zap.String("username", username.String()))
	return p, nil
}

// Authenticate returns the profile when password matches the stored
// credential exactly.
func (s *Service) Authenticate(username domain.Username, password string) (domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.profiles[username]
	if !ok {
		return domain.Profile{}, domain.ErrNoSuchUser
	}
	if !s.creds.Verify(p.PasswordHash, password) {
		return domain.Profile{}, domain.ErrWrongPassword
	}
	return p, nil
}

// Get returns the profile for username.
func (s *Service) Get(username domain.Username) (domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.profiles[username]
	if !ok {
		return domain.Profile{}, domain.ErrProfileNotFound
	}
	return p, nil
}

// UpdateFields applies the non-empty values of update to the stored profile.
// Blank values keep the current value, so a field can never be cleared here.
func (s *Service) UpdateFields(username domain.Username, update domain.Fields) (domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.profiles[username]
	if !ok {
		return domain.Profile{}, domain.ErrProfileNotFound
	}
	merged, changed := p.Fields.Merge(update)
	if len(changed) == 0 {
		return p, nil
	}
	p.Fields = merged
	if err := s.commit(p); err != nil {
		return domain.Profile{}, err
	}

	names := make([]string, len(changed))
	for i, c := range changed {
		names[i] = string(c)
	}
	s.log.Info("profile updated",
		zap.String("username", username.String()),
		zap.Strings("fields", names))
	return p, nil
}

// ChangePassword replaces the credential after confirming the current one.
func (s *Service) ChangePassword(
	username domain.Username,
	oldPassword, newPassword, confirmNewPassword string,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.profiles[username]
	if !ok {
		return domain.ErrProfileNotFound
	}
	if !s.creds.Verify(p.PasswordHash, oldPassword) {
		return domain.ErrWrongOldPassword
	}
	if err := domain.ValidateNewPassword(newPassword, confirmNewPassword); err != nil {
		return err
	}
	hash, err := s.creds.Hash(newPassword)
	if err != nil {
		return err
	}

	p.PasswordHash = hash
	if err := s.commit(p); err != nil {
		return err
	}
	s.log.Info("password changed", zap.String("username", username.String()))
	return nil
}

// commit persists the directory with p applied and only then publishes it.
// Caller must hold s.mu.
func (s *Service) commit(p domain.Profile) error {
	next := maps.Clone(s.profiles)
	next[p.Username] = p
	if err := s.store.SaveProfiles(next); err != nil {
		s.log.Error("saving profiles failed", zap.String("username", p.Username.String()), zap.Error(err))
		return fmt.Errorf("saving profiles: %w", err)
	}
	s.profiles = next
	return nil
}

// Compile-time assertion that Service implements domain.ProfileService.
var _ domain.ProfileService = (*Service)(nil)
