package implementation

import (
	"context"
	"errors"

	"college-compass-be/internal/entity"
	"college-compass-be/internal/mapper"
	"college-compass-be/internal/model"
	"college-compass-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PreferenceRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PreferenceMapper
}

func NewPreferenceRepository(db *gorm.DB) contract.PreferenceRepository {
	return &PreferenceRepositoryImpl{
		db:     db,
		mapper: mapper.NewPreferenceMapper(),
	}
}

func (r *PreferenceRepositoryImpl) FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.Preference, error) {
	var m model.Preference
	if err := r.db.WithContext(ctx).Where("user_id = ?", userId).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *PreferenceRepositoryImpl) Upsert(ctx context.Context, pref *entity.Preference) error {
	m := r.mapper.ToModel(pref)
	if m.Id == uuid.Nil {
		m.Id = uuid.New()
	}
	// Full replace on conflict: the blob is opaque, merging happens in the
	// request layer, never here.
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*pref = *r.mapper.ToEntity(m)
	return nil
}
