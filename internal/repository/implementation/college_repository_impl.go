package implementation

import (
	"context"
	"errors"

	"college-compass-be/internal/entity"
	"college-compass-be/internal/mapper"
	"college-compass-be/internal/model"
	"college-compass-be/internal/repository/contract"
	"college-compass-be/internal/repository/specification"

	"gorm.io/gorm"
)

type CollegeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CollegeMapper
}

func NewCollegeRepository(db *gorm.DB) contract.CollegeRepository {
	return &CollegeRepositoryImpl{
		db:     db,
		mapper: mapper.NewCollegeMapper(),
	}
}

func (r *CollegeRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CollegeRepositoryImpl) Create(ctx context.Context, college *entity.College) error {
	m := r.mapper.ToModel(college)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*college = *r.mapper.ToEntity(m)
	return nil
}

func (r *CollegeRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.College, error) {
	var m model.College
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CollegeRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.College, error) {
	var models []*model.College
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *CollegeRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.College{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

type MajorRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CollegeMapper
}

func NewMajorRepository(db *gorm.DB) contract.MajorRepository {
	return &MajorRepositoryImpl{
		db:     db,
		mapper: mapper.NewCollegeMapper(),
	}
}

func (r *MajorRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *MajorRepositoryImpl) Create(ctx context.Context, major *entity.Major) error {
	m := r.mapper.MajorToModel(major)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*major = *r.mapper.MajorToEntity(m)
	return nil
}

func (r *MajorRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Major, error) {
	var m model.Major
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.MajorToEntity(&m), nil
}

func (r *MajorRepositoryImpl) CreateJoin(ctx context.Context, join *entity.CollegeMajor) error {
	m := r.mapper.JoinToModel(join)
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MajorRepositoryImpl) FindMajorsForCollege(ctx context.Context, collegeId string) ([]*entity.Major, error) {
	var models []*model.Major
	err := r.db.WithContext(ctx).
		Joins("JOIN college_majors ON college_majors.major_id = majors.id").
		Where("college_majors.college_id = ?", collegeId).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	majors := make([]*entity.Major, 0, len(models))
	for _, m := range models {
		majors = append(majors, r.mapper.MajorToEntity(m))
	}
	return majors, nil
}
