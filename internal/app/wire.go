package app

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"studentdir/internal/credential"
	"studentdir/internal/domain"
	profilesvc "studentdir/internal/services/profile"
	sessionsvc "studentdir/internal/services/session"
	"studentdir/internal/store"
)

// Wire bundles the store, services and logger for the CLI.
type Wire struct {
	Config   Config
	Log      *zap.Logger
	Store    *store.ProfileFileStore
	Profiles domain.ProfileService
	Session  domain.SessionService
}

// NewWire constructs the dependency graph from cfg and loads the profile
// directory. A corrupt store is returned as a *domain.CorruptStoreError unless
// cfg.Quarantine is set, in which case the file is moved aside and the
// directory starts empty.
func NewWire(cfg Config, log *zap.Logger) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, err
	}

	creds, err := credential.NewBcrypt(cfg.BcryptCost)
	if err != nil {
		return nil, err
	}
	profileStore := store.NewProfileFileStore(cfg.Home, creds, log.Named("store"))
	profiles := profilesvc.New(profileStore, creds, log)

	if err := profiles.Load(); err != nil {
		if !cfg.Quarantine || !errors.Is(err, domain.ErrCorruptStore) {
			return nil, err
		}
		moved, qerr := profileStore.Quarantine()
		if qerr != nil {
			return nil, fmt.Errorf("quarantining store: %w (after %v)", qerr, err)
		}
		log.Warn("starting with an empty directory", zap.String("corrupt_copy", moved), zap.Error(err))
		if err := profiles.Load(); err != nil {
			return nil, err
		}
	}

	return &Wire{
		Config:   cfg,
		Log:      log,
		Store:    profileStore,
		Profiles: profiles,
		Session:  sessionsvc.New(profiles, log),
	}, nil
}

// Close flushes buffered log output.
func (w *Wire) Close() error {
	_ = w.Log.Sync()
	return nil
}
