package mapper

import (
	"college-compass-be/internal/entity"
	"college-compass-be/internal/model"

	"gorm.io/datatypes"
)

type ActivityMapper struct{}

func NewActivityMapper() *ActivityMapper {
	return &ActivityMapper{}
}

func (m *ActivityMapper) ToEntity(a *model.Activity) *entity.Activity {
	if a == nil {
		return nil
	}
	return &entity.Activity{
		Id:        a.Id,
		UserId:    a.UserId,
		Kind:      entity.ActivityKind(a.Kind),
		Detail:    string(a.Detail),
		CreatedAt: a.CreatedAt,
	}
}

func (m *ActivityMapper) ToModel(a *entity.Activity) *model.Activity {
	if a == nil {
		return nil
	}
	return &model.Activity{
		Id:        a.Id,
		UserId:    a.UserId,
		Kind:      string(a.Kind),
		Detail:    datatypes.JSON(a.Detail),
		CreatedAt: a.CreatedAt,
	}
}
