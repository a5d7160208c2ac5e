package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type WeightedCategory struct {
	Name   string  `json:"name" validate:"required"`
	Weight float64 `json:"weight" validate:"required"`
}

type CreateComparisonRequest struct {
	Name       string             `json:"name" validate:"required"`
	CollegeIDs []string           `json:"college_ids" validate:"required,min=2"`
	Categories []WeightedCategory `json:"categories" validate:"required,min=1,dive"`
}

type ComparisonResponse struct {
	Id         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	CollegeIDs json.RawMessage `json:"college_ids"`
	Categories json.RawMessage `json:"categories"`
	Results    json.RawMessage `json:"results"`
	CreatedAt  time.Time       `json:"created_at"`
}

type RenameComparisonRequest struct {
	Name string `json:"name" validate:"required"`
}
