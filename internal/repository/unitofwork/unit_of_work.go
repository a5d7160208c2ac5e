package unitofwork

import (
	"context"

	"college-compass-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	PreferenceRepository() contract.PreferenceRepository
	CollegeRepository() contract.CollegeRepository
	MajorRepository() contract.MajorRepository
	SavedSearchRepository() contract.SavedSearchRepository
	ComparisonRepository() contract.ComparisonRepository
	FavoriteRepository() contract.FavoriteRepository
	ActivityRepository() contract.ActivityRepository
}
