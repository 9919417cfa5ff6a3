package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"studentdir/internal/domain"
)

const profilesFile = "students.json"

// profileRecord is the on-disk shape of a profile. Besides the current keys it
// accepts the plaintext "password" and misspelled gender key written by
// earlier releases of the tool.
type profileRecord struct {
	domain.Profile
	LegacyPassword string `json:"password,omitempty"`
	LegacyGender   string `json:"gender(M/F/O),omitempty"`
}

// ProfileFileStore persists the profile directory as one JSON document.
type ProfileFileStore struct {
	dir   string
	creds domain.CredentialHasher
	log   *zap.Logger
	mu    sync.Mutex
}

// NewProfileFileStore returns a ProfileFileStore rooted at dir. creds is used
// to hash plaintext credentials found in legacy files.
func NewProfileFileStore(dir string, creds domain.CredentialHasher, log *zap.Logger) *ProfileFileStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &ProfileFileStore{dir: dir, creds: creds, log: log}
}

// Path returns the location of the backing file.
func (s *ProfileFileStore) Path() string { return filepath.Join(s.dir, profilesFile) }

// LoadProfiles reads the mapping from disk. A missing, empty or
// whitespace-only file yields an empty map; anything else that does not
// decode into valid profiles is a *domain.CorruptStoreError.
func (s *ProfileFileStore) LoadProfiles() (map[domain.Username]domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.Path()
	b, err := readFile(path)
	if err != nil {
		return nil, err
	}
	profiles := make(map[domain.Username]domain.Profile)
	if len(bytes.TrimSpace(b)) == 0 {
		return profiles, nil
	}

	var records map[string]profileRecord
	if err := json.Unmarshal(b, &records); err != nil {
		return nil, &domain.CorruptStoreError{Path: path, Err: err}
	}

	migrated := 0
	for key, rec := range records {
		p, upgraded, err := s.decodeRecord(key, rec)
		if err != nil {
			return nil, &domain.CorruptStoreError{Path: path, Err: err}
		}
		if upgraded {
			migrated++
		}
		profiles[p.Username] = p
	}

	s.log.Debug("profiles loaded",
		zap.String("path", path),
		zap.Int("count", len(profiles)),
		zap.Int("migrated", migrated))

	if migrated > 0 {
		// Rewrite right away so plaintext credentials do not linger on disk.
		if err := writeJSON(path, profiles, 0o600); err != nil {
			s.log.Warn("rewriting migrated profiles failed", zap.String("path", path), zap.Error(err))
		} else {
			s.log.Info("legacy plaintext credentials hashed", zap.Int("count", migrated))
		}
	}
	return profiles, nil
}

func (s *ProfileFileStore) decodeRecord(key string, rec profileRecord) (domain.Profile, bool, error) {
	name := domain.Username(key)
	if err := domain.ValidateUsername(name); err != nil {
		return domain.Profile{}, false, fmt.Errorf("key %q: %w", key, err)
	}

	p := rec.Profile
	switch p.Username {
	case "":
		p.Username = name
	case name:
	default:
		return domain.Profile{}, false, fmt.Errorf("key %q holds profile for %q", key, p.Username)
	}

	if p.Gender == "" {
		p.Gender = rec.LegacyGender
	}

	// A leftover plaintext key is dropped by rewriting the file, even when a
	// hash is already present.
	upgraded := rec.LegacyPassword != ""
	if p.PasswordHash == "" {
		if rec.LegacyPassword == "" {
			return domain.Profile{}, false, fmt.Errorf("profile %q has no credential", key)
		}
		if s.creds == nil {
			return domain.Profile{}, false, errors.New("plaintext credential found but no hasher configured")
		}
		h, err := s.creds.Hash(rec.LegacyPassword)
		switch {
		case errors.Is(err, domain.ErrPasswordTooLong):
			s.log.Warn("imported password too long to hash, account locked",
				zap.String("username", key))
			h = domain.LockedCredential
		case err != nil:
			return domain.Profile{}, false, fmt.Errorf("profile %q: %w", key, err)
		}
		p.PasswordHash = h
	}
	return p, upgraded, nil
}

// SaveProfiles replaces the file with profiles.
func (s *ProfileFileStore) SaveProfiles(profiles map[domain.Username]domain.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if profiles == nil {
		profiles = map[domain.Username]domain.Profile{}
	}
	return writeJSON(s.Path(), profiles, 0o600)
}

// Quarantine moves the backing file aside so a fresh store can start. It
// returns the new location of the old file, or "" if there was none.
func (s *ProfileFileStore) Quarantine() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.Path()
	dst := fmt.Sprintf("%s.corrupt-%d", path, time.Now().Unix())
	if err := os.Rename(path, dst); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	s.log.Warn("profile store quarantined", zap.String("from", path), zap.String("to", dst))
	return dst, nil
}

// Compile-time assertion that ProfileFileStore implements domain.ProfileStore.
var _ domain.ProfileStore = (*ProfileFileStore)(nil)
