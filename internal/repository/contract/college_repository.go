package contract

import (
	"context"

	"college-compass-be/internal/entity"
	"college-compass-be/internal/repository/specification"
)

type CollegeRepository interface {
	Create(ctx context.Context, college *entity.College) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.College, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.College, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type MajorRepository interface {
	Create(ctx context.Context, major *entity.Major) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Major, error)
	CreateJoin(ctx context.Context, join *entity.CollegeMajor) error
	FindMajorsForCollege(ctx context.Context, collegeId string) ([]*entity.Major, error)
}
