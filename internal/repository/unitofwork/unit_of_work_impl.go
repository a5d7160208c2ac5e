package unitofwork

import (
	"context"
	"fmt"

	"college-compass-be/internal/repository/contract"
	"college-compass-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) UserRepository() contract.UserRepository {
	return implementation.NewUserRepository(u.getDB())
}

func (u *UnitOfWorkImpl) PreferenceRepository() contract.PreferenceRepository {
	return implementation.NewPreferenceRepository(u.getDB())
}

func (u *UnitOfWorkImpl) CollegeRepository() contract.CollegeRepository {
	return implementation.NewCollegeRepository(u.getDB())
}

func (u *UnitOfWorkImpl) MajorRepository() contract.MajorRepository {
	return implementation.NewMajorRepository(u.getDB())
}

func (u *UnitOfWorkImpl) SavedSearchRepository() contract.SavedSearchRepository {
	return implementation.NewSavedSearchRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ComparisonRepository() contract.ComparisonRepository {
	return implementation.NewComparisonRepository(u.getDB())
}

func (u *UnitOfWorkImpl) FavoriteRepository() contract.FavoriteRepository {
	return implementation.NewFavoriteRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ActivityRepository() contract.ActivityRepository {
	return implementation.NewActivityRepository(u.getDB())
}
