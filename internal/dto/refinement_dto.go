package dto

import "encoding/json"

type RefinementRequest struct {
	InitialQuery           string                   `json:"initial_query" validate:"required"`
	FollowUpAnswers        []map[string]string      `json:"follow_up_answers"`
	UserProfile            map[string]interface{}   `json:"user_profile"`
	ConversationHistory    []map[string]interface{} `json:"conversation_history"`
	CurrentRecommendations []map[string]interface{} `json:"current_recommendations"`
}

// RefinementResponse mirrors the normalized upstream payload verbatim.
type RefinementResponse struct {
	Recommendations json.RawMessage `json:"recommendations"`
	SearchSummary   string          `json:"search_summary"`
}

type ChatRequest struct {
	Message string                   `json:"message" validate:"required"`
	History []map[string]interface{} `json:"history"`
}

type JobStatusResponse struct {
	Status json.RawMessage `json:"status"`
}
