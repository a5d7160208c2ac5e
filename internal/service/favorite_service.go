package service

import (
	"context"
	"time"

	"college-compass-be/internal/dto"
	"college-compass-be/internal/entity"
	"college-compass-be/internal/pkg/apperror"
	"college-compass-be/internal/repository/specification"
	"college-compass-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IFavoriteService interface {
	List(ctx context.Context, userId uuid.UUID) ([]*dto.FavoriteResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateFavoriteRequest) (*dto.FavoriteResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, favoriteId uuid.UUID) error
}

type favoriteService struct {
	uowFactory     unitofwork.RepositoryFactory
	collegeService ICollegeService
	activityPub    IActivityPublisher
}

func NewFavoriteService(
	uowFactory unitofwork.RepositoryFactory,
	collegeService ICollegeService,
	activityPub IActivityPublisher,
) IFavoriteService {
	return &favoriteService{
		uowFactory:     uowFactory,
		collegeService: collegeService,
		activityPub:    activityPub,
	}
}

func (s *favoriteService) List(ctx context.Context, userId uuid.UUID) ([]*dto.FavoriteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	favorites, err := uow.FavoriteRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.FavoriteResponse, 0, len(favorites))
	for _, favorite := range favorites {
		resp := &dto.FavoriteResponse{
			Id:        favorite.Id,
			CollegeId: favorite.CollegeId,
			CreatedAt: favorite.CreatedAt,
		}
		// College rows are never deleted, but tolerate a missing one rather
		// than failing the whole listing.
		if college, err := s.collegeService.Show(ctx, favorite.CollegeId); err == nil {
			resp.College = college
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

func (s *favoriteService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateFavoriteRequest) (*dto.FavoriteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	college, err := uow.CollegeRepository().FindOne(ctx, specification.ByCollegeID{ID: req.CollegeId})
	if err != nil {
		return nil, err
	}
	if college == nil {
		return nil, apperror.NotFound("College not found")
	}

	existing, err := uow.FavoriteRepository().FindOne(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.Filter("college_id", req.CollegeId),
	)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict("College is already favorited")
	}

	favorite := &entity.Favorite{
		Id:        uuid.New(),
		UserId:    userId,
		CollegeId: req.CollegeId,
		CreatedAt: time.Now(),
	}
	if err := uow.FavoriteRepository().Create(ctx, favorite); err != nil {
		return nil, err
	}

	s.activityPub.Publish(ctx, ActivityMessage{
		UserId: &userId,
		Kind:   entity.ActivityFavoriteAdded,
		Detail: map[string]interface{}{
			"college_id":   college.Id,
			"college_name": college.Name,
		},
	})

	return &dto.FavoriteResponse{
		Id:        favorite.Id,
		CollegeId: favorite.CollegeId,
		CreatedAt: favorite.CreatedAt,
	}, nil
}

func (s *favoriteService) Delete(ctx context.Context, userId uuid.UUID, favoriteId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	favorite, err := uow.FavoriteRepository().FindOne(ctx, specification.ByID{ID: favoriteId})
	if err != nil {
		return err
	}
	if favorite == nil {
		return apperror.NotFound("Favorite not found")
	}
	if favorite.UserId != userId {
		return apperror.Forbidden("Favorite belongs to another user")
	}

	return uow.FavoriteRepository().Delete(ctx, favoriteId)
}
