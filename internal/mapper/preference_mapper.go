package mapper

import (
	"college-compass-be/internal/entity"
	"college-compass-be/internal/model"

	"gorm.io/datatypes"
)

type PreferenceMapper struct{}

func NewPreferenceMapper() *PreferenceMapper {
	return &PreferenceMapper{}
}

func (m *PreferenceMapper) ToEntity(p *model.Preference) *entity.Preference {
	if p == nil {
		return nil
	}
	return &entity.Preference{
		Id:        p.Id,
		UserId:    p.UserId,
		Data:      string(p.Data),
		UpdatedAt: p.UpdatedAt,
	}
}

func (m *PreferenceMapper) ToModel(p *entity.Preference) *model.Preference {
	if p == nil {
		return nil
	}
	return &model.Preference{
		Id:        p.Id,
		UserId:    p.UserId,
		Data:      datatypes.JSON(p.Data),
		UpdatedAt: p.UpdatedAt,
	}
}
