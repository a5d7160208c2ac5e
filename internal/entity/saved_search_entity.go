package entity

import (
	"time"

	"github.com/google/uuid"
)

// SavedSearch is immutable after creation except for the IsFavorite toggle.
type SavedSearch struct {
	Id              uuid.UUID
	UserId          uuid.UUID
	InitialQuery    string
	FollowUpQA      string // JSON array of {question, answer}, order preserved
	Recommendations string // JSON array of college summaries, order preserved
	SearchSummary   string
	IsFavorite      bool
	CreatedAt       time.Time
}

type Comparison struct {
	Id         uuid.UUID
	UserId     uuid.UUID
	Name       string
	CollegeIDs string // JSON array of college ids, >= 2
	Categories string // JSON array of weighted criteria, >= 1
	Results    string // JSON blob from the upstream comparison call
	CreatedAt  time.Time
}

type Favorite struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	CollegeId string
	CreatedAt time.Time
}
