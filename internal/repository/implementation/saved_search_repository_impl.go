package implementation

import (
	"context"
	"errors"

	"college-compass-be/internal/entity"
	"college-compass-be/internal/mapper"
	"college-compass-be/internal/model"
	"college-compass-be/internal/repository/contract"
	"college-compass-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SavedSearchRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SavedSearchMapper
}

func NewSavedSearchRepository(db *gorm.DB) contract.SavedSearchRepository {
	return &SavedSearchRepositoryImpl{
		db:     db,
		mapper: mapper.NewSavedSearchMapper(),
	}
}

func (r *SavedSearchRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SavedSearchRepositoryImpl) Create(ctx context.Context, search *entity.SavedSearch) error {
	m := r.mapper.ToModel(search)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*search = *r.mapper.ToEntity(m)
	return nil
}

func (r *SavedSearchRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SavedSearch, error) {
	var m model.SavedSearch
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SavedSearchRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SavedSearch, error) {
	var models []*model.SavedSearch
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *SavedSearchRepositoryImpl) SetFavorite(ctx context.Context, id uuid.UUID, isFavorite bool) error {
	return r.db.WithContext(ctx).Model(&model.SavedSearch{}).
		Where("id = ?", id).
		Update("is_favorite", isFavorite).Error
}

func (r *SavedSearchRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.SavedSearch{}).Error
}

type ComparisonRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ComparisonMapper
}

func NewComparisonRepository(db *gorm.DB) contract.ComparisonRepository {
	return &ComparisonRepositoryImpl{
		db:     db,
		mapper: mapper.NewComparisonMapper(),
	}
}

func (r *ComparisonRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ComparisonRepositoryImpl) Create(ctx context.Context, comparison *entity.Comparison) error {
	m := r.mapper.ToModel(comparison)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*comparison = *r.mapper.ToEntity(m)
	return nil
}

func (r *ComparisonRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Comparison, error) {
	var m model.Comparison
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ComparisonRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Comparison, error) {
	var models []*model.Comparison
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ComparisonRepositoryImpl) Rename(ctx context.Context, id uuid.UUID, name string) error {
	return r.db.WithContext(ctx).Model(&model.Comparison{}).
		Where("id = ?", id).
		Update("name", name).Error
}

func (r *ComparisonRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Comparison{}).Error
}

type FavoriteRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FavoriteMapper
}

func NewFavoriteRepository(db *gorm.DB) contract.FavoriteRepository {
	return &FavoriteRepositoryImpl{
		db:     db,
		mapper: mapper.NewFavoriteMapper(),
	}
}

func (r *FavoriteRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *FavoriteRepositoryImpl) Create(ctx context.Context, favorite *entity.Favorite) error {
	m := r.mapper.ToModel(favorite)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*favorite = *r.mapper.ToEntity(m)
	return nil
}

func (r *FavoriteRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Favorite, error) {
	var m model.Favorite
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *FavoriteRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Favorite, error) {
	var models []*model.Favorite
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *FavoriteRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Favorite{}).Error
}
