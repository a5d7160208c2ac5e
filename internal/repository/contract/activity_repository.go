package contract

import (
	"context"

	"college-compass-be/internal/entity"
	"college-compass-be/internal/repository/specification"
)

type ActivityRepository interface {
	Create(ctx context.Context, activity *entity.Activity) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Activity, error)
}
