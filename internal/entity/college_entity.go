package entity

import (
	"time"

	"github.com/google/uuid"
)

// College rows are append-only from the refinement pipeline: once written
// they are never updated or deleted by it. Tuition, acceptance rate and
// enrollment stay nil when the upstream record omits them or carries an
// unparseable value.
type College struct {
	Id             string
	Name           string
	State          string
	City           string
	Type           string
	Tuition        *int
	AcceptanceRate *float64
	EnrollmentSize *int
	Website        string
	Description    string
	ImageURL       string
	CreatedAt      time.Time
}

type Major struct {
	Id       uuid.UUID
	Name     string
	Category string
}

type CollegeMajor struct {
	Id        uuid.UUID
	CollegeId string
	MajorId   uuid.UUID
}
