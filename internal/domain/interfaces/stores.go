package interfaces

import domaintypes "studentdir/internal/domain/types"

// ProfileStore persists the complete username -> profile mapping.
type ProfileStore interface {
	// LoadProfiles returns the persisted mapping; a missing or empty resource
	// yields an empty map.
	LoadProfiles() (map[domaintypes.Username]domaintypes.Profile, error)
	// SaveProfiles replaces the persisted mapping with profiles.
	SaveProfiles(profiles map[domaintypes.Username]domaintypes.Profile) error
}
