package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type QandAPair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type CreateSavedSearchRequest struct {
	InitialQuery    string          `json:"initial_query" validate:"required"`
	FollowUpQandA   []QandAPair     `json:"follow_up_qand_a"`
	Recommendations json.RawMessage `json:"recommendations"`
	SearchSummary   string          `json:"search_summary"`
}

type SavedSearchResponse struct {
	Id              uuid.UUID       `json:"id"`
	InitialQuery    string          `json:"initial_query"`
	FollowUpQandA   json.RawMessage `json:"follow_up_qand_a"`
	Recommendations json.RawMessage `json:"recommendations"`
	SearchSummary   string          `json:"search_summary"`
	IsFavorite      bool            `json:"is_favorite"`
	CreatedAt       time.Time       `json:"created_at"`
}

type ToggleFavoriteSearchRequest struct {
	IsFavorite bool `json:"is_favorite"`
}
