package entity

import (
	"time"

	"github.com/google/uuid"
)

type ActivityKind string

const (
	ActivityRefinementCompleted ActivityKind = "refinement.completed"
	ActivityFavoriteAdded       ActivityKind = "favorite.added"
	ActivityComparisonCreated   ActivityKind = "comparison.created"
)

// Activity is an append-only audit row recorded from the in-process event
// bus. UserId is nil for anonymous refinements.
type Activity struct {
	Id        uuid.UUID
	UserId    *uuid.UUID
	Kind      ActivityKind
	Detail    string
	CreatedAt time.Time
}
