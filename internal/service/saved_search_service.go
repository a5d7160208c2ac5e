package service

import (
	"context"
	"encoding/json"
	"time"

	"college-compass-be/internal/dto"
	"college-compass-be/internal/entity"
	"college-compass-be/internal/pkg/apperror"
	"college-compass-be/internal/repository/specification"
	"college-compass-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ISavedSearchService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateSavedSearchRequest) (*dto.SavedSearchResponse, error)
	List(ctx context.Context, userId uuid.UUID) ([]*dto.SavedSearchResponse, error)
	Show(ctx context.Context, userId uuid.UUID, searchId uuid.UUID) (*dto.SavedSearchResponse, error)
	ToggleFavorite(ctx context.Context, userId uuid.UUID, searchId uuid.UUID, isFavorite bool) error
	Delete(ctx context.Context, userId uuid.UUID, searchId uuid.UUID) error
}

type savedSearchService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewSavedSearchService(uowFactory unitofwork.RepositoryFactory) ISavedSearchService {
	return &savedSearchService{
		uowFactory: uowFactory,
	}
}

func (s *savedSearchService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateSavedSearchRequest) (*dto.SavedSearchResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Q&A order is preserved as submitted; it records the refinement
	// conversation that produced the recommendations.
	qa := req.FollowUpQandA
	if qa == nil {
		qa = []dto.QandAPair{}
	}
	followUpQA, err := json.Marshal(qa)
	if err != nil {
		return nil, apperror.Validation("Invalid follow-up Q&A")
	}
	recommendations := req.Recommendations
	if len(recommendations) == 0 {
		recommendations = json.RawMessage("[]")
	}

	search := &entity.SavedSearch{
		Id:              uuid.New(),
		UserId:          userId,
		InitialQuery:    req.InitialQuery,
		FollowUpQA:      string(followUpQA),
		Recommendations: string(recommendations),
		SearchSummary:   req.SearchSummary,
		IsFavorite:      false,
		CreatedAt:       time.Now(),
	}
	if err := uow.SavedSearchRepository().Create(ctx, search); err != nil {
		return nil, err
	}
	return toSavedSearchResponse(search), nil
}

func (s *savedSearchService) List(ctx context.Context, userId uuid.UUID) ([]*dto.SavedSearchResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	searches, err := uow.SavedSearchRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.SavedSearchResponse, 0, len(searches))
	for _, search := range searches {
		responses = append(responses, toSavedSearchResponse(search))
	}
	return responses, nil
}

func (s *savedSearchService) Show(ctx context.Context, userId uuid.UUID, searchId uuid.UUID) (*dto.SavedSearchResponse, error) {
	search, err := s.findOwned(ctx, userId, searchId)
	if err != nil {
		return nil, err
	}
	return toSavedSearchResponse(search), nil
}

func (s *savedSearchService) ToggleFavorite(ctx context.Context, userId uuid.UUID, searchId uuid.UUID, isFavorite bool) error {
	if _, err := s.findOwned(ctx, userId, searchId); err != nil {
		return err
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.SavedSearchRepository().SetFavorite(ctx, searchId, isFavorite)
}

func (s *savedSearchService) Delete(ctx context.Context, userId uuid.UUID, searchId uuid.UUID) error {
	if _, err := s.findOwned(ctx, userId, searchId); err != nil {
		return err
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.SavedSearchRepository().Delete(ctx, searchId)
}

// findOwned distinguishes "not yours" from "does not exist": a search owned
// by another user yields Forbidden, an absent one NotFound.
func (s *savedSearchService) findOwned(ctx context.Context, userId uuid.UUID, searchId uuid.UUID) (*entity.SavedSearch, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	search, err := uow.SavedSearchRepository().FindOne(ctx, specification.ByID{ID: searchId})
	if err != nil {
		return nil, err
	}
	if search == nil {
		return nil, apperror.NotFound("Saved search not found")
	}
	if search.UserId != userId {
		return nil, apperror.Forbidden("Saved search belongs to another user")
	}
	return search, nil
}

func toSavedSearchResponse(search *entity.SavedSearch) *dto.SavedSearchResponse {
	return &dto.SavedSearchResponse{
		Id:              search.Id,
		InitialQuery:    search.InitialQuery,
		FollowUpQandA:   json.RawMessage(search.FollowUpQA),
		Recommendations: json.RawMessage(search.Recommendations),
		SearchSummary:   search.SearchSummary,
		IsFavorite:      search.IsFavorite,
		CreatedAt:       search.CreatedAt,
	}
}
