package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateFavoriteRequest struct {
	CollegeId string `json:"college_id" validate:"required"`
}

type FavoriteResponse struct {
	Id        uuid.UUID        `json:"id"`
	CollegeId string           `json:"college_id"`
	College   *CollegeResponse `json:"college,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}
