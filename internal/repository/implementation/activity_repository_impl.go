package implementation

import (
	"context"

	"college-compass-be/internal/entity"
	"college-compass-be/internal/mapper"
	"college-compass-be/internal/model"
	"college-compass-be/internal/repository/contract"
	"college-compass-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ActivityRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ActivityMapper
}

func NewActivityRepository(db *gorm.DB) contract.ActivityRepository {
	return &ActivityRepositoryImpl{
		db:     db,
		mapper: mapper.NewActivityMapper(),
	}
}

func (r *ActivityRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ActivityRepositoryImpl) Create(ctx context.Context, activity *entity.Activity) error {
	m := r.mapper.ToModel(activity)
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *ActivityRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Activity, error) {
	var models []*model.Activity
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	activities := make([]*entity.Activity, 0, len(models))
	for _, m := range models {
		activities = append(activities, r.mapper.ToEntity(m))
	}
	return activities, nil
}
