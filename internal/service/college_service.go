package service

import (
	"context"

	"college-compass-be/internal/dto"
	"college-compass-be/internal/entity"
	"college-compass-be/internal/pkg/apperror"
	"college-compass-be/internal/repository/memory"
	"college-compass-be/internal/repository/specification"
	"college-compass-be/internal/repository/unitofwork"
)

const defaultCollegeListLimit = 20

type ICollegeService interface {
	List(ctx context.Context, req *dto.ListCollegesRequest) (*dto.ListCollegesResponse, error)
	Show(ctx context.Context, collegeId string) (*dto.CollegeResponse, error)
}

type collegeService struct {
	uowFactory unitofwork.RepositoryFactory
	imageCache *memory.ImageCache
}

func NewCollegeService(uowFactory unitofwork.RepositoryFactory, imageCache *memory.ImageCache) ICollegeService {
	return &collegeService{
		uowFactory: uowFactory,
		imageCache: imageCache,
	}
}

func (s *collegeService) List(ctx context.Context, req *dto.ListCollegesRequest) (*dto.ListCollegesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	filterSpecs := make([]specification.Specification, 0, 2)
	if req.State != "" {
		filterSpecs = append(filterSpecs, specification.ByState{State: req.State})
	}
	if req.Type != "" {
		filterSpecs = append(filterSpecs, specification.ByType{Type: req.Type})
	}

	total, err := uow.CollegeRepository().Count(ctx, filterSpecs...)
	if err != nil {
		return nil, err
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultCollegeListLimit
	}
	specs := append(filterSpecs,
		specification.OrderBy{Field: "name"},
		specification.Pagination{Limit: limit, Offset: req.Offset},
	)

	colleges, err := uow.CollegeRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.CollegeResponse, 0, len(colleges))
	for _, college := range colleges {
		responses = append(responses, s.toResponse(college, nil))
	}
	return &dto.ListCollegesResponse{
		Colleges: responses,
		Total:    total,
	}, nil
}

func (s *collegeService) Show(ctx context.Context, collegeId string) (*dto.CollegeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	college, err := uow.CollegeRepository().FindOne(ctx, specification.ByCollegeID{ID: collegeId})
	if err != nil {
		return nil, err
	}
	if college == nil {
		return nil, apperror.NotFound("College not found")
	}

	majors, err := uow.MajorRepository().FindMajorsForCollege(ctx, college.Id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(college, majors), nil
}

func (s *collegeService) toResponse(college *entity.College, majors []*entity.Major) *dto.CollegeResponse {
	imageURL := college.ImageURL
	if cached, found := s.imageCache.Get(college.Id); found {
		imageURL = cached
	} else if imageURL != "" {
		s.imageCache.Set(college.Id, imageURL)
	}

	majorNames := make([]string, 0, len(majors))
	for _, major := range majors {
		majorNames = append(majorNames, major.Name)
	}

	return &dto.CollegeResponse{
		Id:             college.Id,
		Name:           college.Name,
		State:          college.State,
		City:           college.City,
		Type:           college.Type,
		Tuition:        college.Tuition,
		AcceptanceRate: college.AcceptanceRate,
		EnrollmentSize: college.EnrollmentSize,
		Website:        college.Website,
		Description:    college.Description,
		ImageURL:       imageURL,
		Majors:         majorNames,
		CreatedAt:      college.CreatedAt,
	}
}
