package mapper

import (
	"college-compass-be/internal/entity"
	"college-compass-be/internal/model"
)

type CollegeMapper struct{}

func NewCollegeMapper() *CollegeMapper {
	return &CollegeMapper{}
}

func (m *CollegeMapper) ToEntity(c *model.College) *entity.College {
	if c == nil {
		return nil
	}
	return &entity.College{
		Id:             c.Id,
		Name:           c.Name,
		State:          c.State,
		City:           c.City,
		Type:           c.Type,
		Tuition:        c.Tuition,
		AcceptanceRate: c.AcceptanceRate,
		EnrollmentSize: c.EnrollmentSize,
		Website:        c.Website,
		Description:    c.Description,
		ImageURL:       c.ImageURL,
		CreatedAt:      c.CreatedAt,
	}
}

func (m *CollegeMapper) ToModel(c *entity.College) *model.College {
	if c == nil {
		return nil
	}
	return &model.College{
		Id:             c.Id,
		Name:           c.Name,
		State:          c.State,
		City:           c.City,
		Type:           c.Type,
		Tuition:        c.Tuition,
		AcceptanceRate: c.AcceptanceRate,
		EnrollmentSize: c.EnrollmentSize,
		Website:        c.Website,
		Description:    c.Description,
		ImageURL:       c.ImageURL,
		CreatedAt:      c.CreatedAt,
	}
}

func (m *CollegeMapper) ToEntities(models []*model.College) []*entity.College {
	entities := make([]*entity.College, 0, len(models))
	for _, mc := range models {
		entities = append(entities, m.ToEntity(mc))
	}
	return entities
}

func (m *CollegeMapper) MajorToEntity(mj *model.Major) *entity.Major {
	if mj == nil {
		return nil
	}
	return &entity.Major{
		Id:       mj.Id,
		Name:     mj.Name,
		Category: mj.Category,
	}
}

func (m *CollegeMapper) MajorToModel(mj *entity.Major) *model.Major {
	if mj == nil {
		return nil
	}
	return &model.Major{
		Id:       mj.Id,
		Name:     mj.Name,
		Category: mj.Category,
	}
}

func (m *CollegeMapper) JoinToModel(j *entity.CollegeMajor) *model.CollegeMajor {
	if j == nil {
		return nil
	}
	return &model.CollegeMajor{
		Id:        j.Id,
		CollegeId: j.CollegeId,
		MajorId:   j.MajorId,
	}
}
