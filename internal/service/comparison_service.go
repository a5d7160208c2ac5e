package service

import (
	"context"
	"encoding/json"
	"time"

	"college-compass-be/internal/dto"
	"college-compass-be/internal/entity"
	"college-compass-be/internal/pkg/apperror"
	"college-compass-be/internal/pkg/logger"
	"college-compass-be/internal/repository/specification"
	"college-compass-be/internal/repository/unitofwork"
	"college-compass-be/pkg/recommender"

	"github.com/google/uuid"
)

type IComparisonService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateComparisonRequest) (*dto.ComparisonResponse, error)
	List(ctx context.Context, userId uuid.UUID) ([]*dto.ComparisonResponse, error)
	Show(ctx context.Context, userId uuid.UUID, comparisonId uuid.UUID) (*dto.ComparisonResponse, error)
	Rename(ctx context.Context, userId uuid.UUID, comparisonId uuid.UUID, name string) error
	Delete(ctx context.Context, userId uuid.UUID, comparisonId uuid.UUID) error
}

type comparisonService struct {
	uowFactory  unitofwork.RepositoryFactory
	client      *recommender.Client
	activityPub IActivityPublisher
	logger      logger.ILogger
}

func NewComparisonService(
	uowFactory unitofwork.RepositoryFactory,
	client *recommender.Client,
	activityPub IActivityPublisher,
	log logger.ILogger,
) IComparisonService {
	return &comparisonService{
		uowFactory:  uowFactory,
		client:      client,
		activityPub: activityPub,
		logger:      log,
	}
}

func (s *comparisonService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateComparisonRequest) (*dto.ComparisonResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	result, err := s.client.Compare(ctx, map[string]interface{}{
		"college_ids": req.CollegeIDs,
		"categories":  req.Categories,
	})
	if err != nil {
		return nil, mapUpstreamError(err)
	}

	collegeIDs, _ := json.Marshal(req.CollegeIDs)
	categories, _ := json.Marshal(req.Categories)
	// Upstream results are stored verbatim; the service never reshapes or
	// re-scores them.
	results := result.Body
	if len(results) == 0 {
		results = json.RawMessage("{}")
	}

	comparison := &entity.Comparison{
		Id:         uuid.New(),
		UserId:     userId,
		Name:       req.Name,
		CollegeIDs: string(collegeIDs),
		Categories: string(categories),
		Results:    string(results),
		CreatedAt:  time.Now(),
	}
	if err := uow.ComparisonRepository().Create(ctx, comparison); err != nil {
		return nil, err
	}

	s.activityPub.Publish(ctx, ActivityMessage{
		UserId: &userId,
		Kind:   entity.ActivityComparisonCreated,
		Detail: map[string]interface{}{
			"comparison_id": comparison.Id.String(),
			"name":          comparison.Name,
			"college_count": len(req.CollegeIDs),
		},
	})

	return toComparisonResponse(comparison), nil
}

func (s *comparisonService) List(ctx context.Context, userId uuid.UUID) ([]*dto.ComparisonResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	comparisons, err := uow.ComparisonRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ComparisonResponse, 0, len(comparisons))
	for _, comparison := range comparisons {
		responses = append(responses, toComparisonResponse(comparison))
	}
	return responses, nil
}

func (s *comparisonService) Show(ctx context.Context, userId uuid.UUID, comparisonId uuid.UUID) (*dto.ComparisonResponse, error) {
	comparison, err := s.findOwned(ctx, userId, comparisonId)
	if err != nil {
		return nil, err
	}
	return toComparisonResponse(comparison), nil
}

func (s *comparisonService) Rename(ctx context.Context, userId uuid.UUID, comparisonId uuid.UUID, name string) error {
	if _, err := s.findOwned(ctx, userId, comparisonId); err != nil {
		return err
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.ComparisonRepository().Rename(ctx, comparisonId, name)
}

func (s *comparisonService) Delete(ctx context.Context, userId uuid.UUID, comparisonId uuid.UUID) error {
	if _, err := s.findOwned(ctx, userId, comparisonId); err != nil {
		return err
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.ComparisonRepository().Delete(ctx, comparisonId)
}

func (s *comparisonService) findOwned(ctx context.Context, userId uuid.UUID, comparisonId uuid.UUID) (*entity.Comparison, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	comparison, err := uow.ComparisonRepository().FindOne(ctx, specification.ByID{ID: comparisonId})
	if err != nil {
		return nil, err
	}
	if comparison == nil {
		return nil, apperror.NotFound("Comparison not found")
	}
	if comparison.UserId != userId {
		return nil, apperror.Forbidden("Comparison belongs to another user")
	}
	return comparison, nil
}

func toComparisonResponse(comparison *entity.Comparison) *dto.ComparisonResponse {
	return &dto.ComparisonResponse{
		Id:         comparison.Id,
		Name:       comparison.Name,
		CollegeIDs: json.RawMessage(comparison.CollegeIDs),
		Categories: json.RawMessage(comparison.Categories),
		Results:    json.RawMessage(comparison.Results),
		CreatedAt:  comparison.CreatedAt,
	}
}
