package entity

import (
	"time"

	"github.com/google/uuid"
)

// Preference holds the user's academic profile as an opaque JSON blob.
// Saves replace the whole blob; merging with request-supplied values
// happens in the refinement service, never at the storage layer.
type Preference struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Data      string
	UpdatedAt time.Time
}
