package contract

import (
	"context"

	"college-compass-be/internal/entity"

	"github.com/google/uuid"
)

type PreferenceRepository interface {
	// FindByUserId returns nil (no error) when the user has never saved
	// preferences; the service substitutes a structurally-complete default.
	FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.Preference, error)
	// Upsert replaces the whole blob, last write wins.
	Upsert(ctx context.Context, pref *entity.Preference) error
}
