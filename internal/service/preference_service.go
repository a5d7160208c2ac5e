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

type IPreferenceService interface {
	Get(ctx context.Context, userId uuid.UUID) (*dto.PreferencesResponse, error)
	Save(ctx context.Context, userId uuid.UUID, req *dto.SavePreferencesRequest) error
	GetByEmail(ctx context.Context, email string) (*dto.PreferencesResponse, error)
}

type preferenceService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewPreferenceService(uowFactory unitofwork.RepositoryFactory) IPreferenceService {
	return &preferenceService{
		uowFactory: uowFactory,
	}
}

// Get never errors for a missing row: the caller receives the
// structurally-complete default profile instead.
func (s *preferenceService) Get(ctx context.Context, userId uuid.UUID) (*dto.PreferencesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	pref, err := uow.PreferenceRepository().FindByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	if pref == nil {
		return &dto.PreferencesResponse{Preferences: dto.DefaultPreferences()}, nil
	}

	var data map[string]interface{}
	if err := json.Unmarshal([]byte(pref.Data), &data); err != nil {
		return &dto.PreferencesResponse{Preferences: dto.DefaultPreferences()}, nil
	}
	return &dto.PreferencesResponse{Preferences: data}, nil
}

// Save replaces the whole blob. No partial merge happens here: merging with
// request-supplied values is the refinement service's job.
func (s *preferenceService) Save(ctx context.Context, userId uuid.UUID, req *dto.SavePreferencesRequest) error {
	serialized, err := json.Marshal(req.Preferences)
	if err != nil {
		return apperror.Validation("Preferences are not serializable")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.PreferenceRepository().Upsert(ctx, &entity.Preference{
		UserId:    userId,
		Data:      string(serialized),
		UpdatedAt: time.Now(),
	})
}

func (s *preferenceService) GetByEmail(ctx context.Context, email string) (*dto.PreferencesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: email})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}

	return s.Get(ctx, user.Id)
}
