package contract

import (
	"context"

	"college-compass-be/internal/entity"
	"college-compass-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SavedSearchRepository interface {
	Create(ctx context.Context, search *entity.SavedSearch) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SavedSearch, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SavedSearch, error)
	SetFavorite(ctx context.Context, id uuid.UUID, isFavorite bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ComparisonRepository interface {
	Create(ctx context.Context, comparison *entity.Comparison) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Comparison, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Comparison, error)
	Rename(ctx context.Context, id uuid.UUID, name string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type FavoriteRepository interface {
	Create(ctx context.Context, favorite *entity.Favorite) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Favorite, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Favorite, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
