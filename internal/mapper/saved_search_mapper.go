package mapper

import (
	"college-compass-be/internal/entity"
	"college-compass-be/internal/model"

	"gorm.io/datatypes"
)

type SavedSearchMapper struct{}

func NewSavedSearchMapper() *SavedSearchMapper {
	return &SavedSearchMapper{}
}

func (m *SavedSearchMapper) ToEntity(s *model.SavedSearch) *entity.SavedSearch {
	if s == nil {
		return nil
	}
	return &entity.SavedSearch{
		Id:              s.Id,
		UserId:          s.UserId,
		InitialQuery:    s.InitialQuery,
		FollowUpQA:      string(s.FollowUpQA),
		Recommendations: string(s.Recommendations),
		SearchSummary:   s.SearchSummary,
		IsFavorite:      s.IsFavorite,
		CreatedAt:       s.CreatedAt,
	}
}

func (m *SavedSearchMapper) ToModel(s *entity.SavedSearch) *model.SavedSearch {
	if s == nil {
		return nil
	}
	return &model.SavedSearch{
		Id:              s.Id,
		UserId:          s.UserId,
		InitialQuery:    s.InitialQuery,
		FollowUpQA:      datatypes.JSON(s.FollowUpQA),
		Recommendations: datatypes.JSON(s.Recommendations),
		SearchSummary:   s.SearchSummary,
		IsFavorite:      s.IsFavorite,
		CreatedAt:       s.CreatedAt,
	}
}

func (m *SavedSearchMapper) ToEntities(models []*model.SavedSearch) []*entity.SavedSearch {
	entities := make([]*entity.SavedSearch, 0, len(models))
	for _, ms := range models {
		entities = append(entities, m.ToEntity(ms))
	}
	return entities
}

type ComparisonMapper struct{}

func NewComparisonMapper() *ComparisonMapper {
	return &ComparisonMapper{}
}

func (m *ComparisonMapper) ToEntity(c *model.Comparison) *entity.Comparison {
	if c == nil {
		return nil
	}
	return &entity.Comparison{
		Id:         c.Id,
		UserId:     c.UserId,
		Name:       c.Name,
		CollegeIDs: string(c.CollegeIDs),
		Categories: string(c.Categories),
		Results:    string(c.Results),
		CreatedAt:  c.CreatedAt,
	}
}

func (m *ComparisonMapper) ToModel(c *entity.Comparison) *model.Comparison {
	if c == nil {
		return nil
	}
	return &model.Comparison{
		Id:         c.Id,
		UserId:     c.UserId,
		Name:       c.Name,
		CollegeIDs: datatypes.JSON(c.CollegeIDs),
		Categories: datatypes.JSON(c.Categories),
		Results:    datatypes.JSON(c.Results),
		CreatedAt:  c.CreatedAt,
	}
}

func (m *ComparisonMapper) ToEntities(models []*model.Comparison) []*entity.Comparison {
	entities := make([]*entity.Comparison, 0, len(models))
	for _, mc := range models {
		entities = append(entities, m.ToEntity(mc))
	}
	return entities
}

type FavoriteMapper struct{}

func NewFavoriteMapper() *FavoriteMapper {
	return &FavoriteMapper{}
}

func (m *FavoriteMapper) ToEntity(f *model.Favorite) *entity.Favorite {
	if f == nil {
		return nil
	}
	return &entity.Favorite{
		Id:        f.Id,
		UserId:    f.UserId,
		CollegeId: f.CollegeId,
		CreatedAt: f.CreatedAt,
	}
}

func (m *FavoriteMapper) ToModel(f *entity.Favorite) *model.Favorite {
	if f == nil {
		return nil
	}
	return &model.Favorite{
		Id:        f.Id,
		UserId:    f.UserId,
		CollegeId: f.CollegeId,
		CreatedAt: f.CreatedAt,
	}
}

func (m *FavoriteMapper) ToEntities(models []*model.Favorite) []*entity.Favorite {
	entities := make([]*entity.Favorite, 0, len(models))
	for _, mf := range models {
		entities = append(entities, m.ToEntity(mf))
	}
	return entities
}
