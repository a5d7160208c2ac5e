package service

import (
	"context"
	"encoding/json"

	"college-compass-be/internal/dto"
	"college-compass-be/internal/entity"
	"college-compass-be/internal/pkg/apperror"
	"college-compass-be/internal/pkg/logger"
	"college-compass-be/internal/repository/unitofwork"
	"college-compass-be/pkg/cache"
	"college-compass-be/pkg/recommender"

	"github.com/google/uuid"
)

type IRefinementService interface {
	Refine(ctx context.Context, userId uuid.UUID, req *dto.RefinementRequest) (json.RawMessage, error)
	Chat(ctx context.Context, req *dto.ChatRequest) (json.RawMessage, error)
	JobStatus(ctx context.Context, jobID string) (json.RawMessage, error)
}

type refinementService struct {
	uowFactory    unitofwork.RepositoryFactory
	client        *recommender.Client
	ingestService IIngestService
	resultCache   *cache.RefinementCache
	activityPub   IActivityPublisher
	logger        logger.ILogger
}

func NewRefinementService(
	uowFactory unitofwork.RepositoryFactory,
	client *recommender.Client,
	ingestService IIngestService,
	resultCache *cache.RefinementCache,
	activityPub IActivityPublisher,
	log logger.ILogger,
) IRefinementService {
	return &refinementService{
		uowFactory:    uowFactory,
		client:        client,
		ingestService: ingestService,
		resultCache:   resultCache,
		activityPub:   activityPub,
		logger:        log,
	}
}

// Refine runs the single-pass refinement pipeline: resolve stored
// preferences (best-effort), merge with the request profile, forward
// upstream, persist the returned colleges, and hand the normalized payload
// back verbatim. userId is uuid.Nil for anonymous callers.
func (s *refinementService) Refine(ctx context.Context, userId uuid.UUID, req *dto.RefinementRequest) (json.RawMessage, error) {
	stored := s.loadStoredPreferences(ctx, userId)

	effective, err := MergeProfiles(stored, req.UserProfile)
	if err != nil {
		return nil, apperror.Wrap(apperror.CodeInternal, "Stored preferences are corrupted", err)
	}

	upstreamReq := &recommender.RefinementRequest{
		InitialQuery:           req.InitialQuery,
		FollowUpAnswers:        req.FollowUpAnswers,
		UserProfile:            effective,
		ConversationHistory:    req.ConversationHistory,
		CurrentRecommendations: req.CurrentRecommendations,
	}

	cacheKey := s.resultCache.Key(upstreamReq)
	if cached, hit := s.resultCache.Get(ctx, cacheKey); hit {
		return s.payloadOf(cached), nil
	}

	result, err := s.client.Refine(ctx, upstreamReq)
	if err != nil {
		return nil, mapUpstreamError(err)
	}

	// Persistence is awaited, not fire-and-forget, but its failures never
	// alter the response.
	s.ingestService.IngestAll(ctx, result.Recommendations)

	var ownerId *uuid.UUID
	if userId != uuid.Nil {
		ownerId = &userId
	}
	s.activityPub.Publish(ctx, ActivityMessage{
		UserId: ownerId,
		Kind:   entity.ActivityRefinementCompleted,
		Detail: map[string]interface{}{
			"initial_query":   req.InitialQuery,
			"recommendations": len(result.Recommendations),
		},
	})

	s.resultCache.Set(ctx, cacheKey, result)

	return s.payloadOf(result), nil
}

func (s *refinementService) Chat(ctx context.Context, req *dto.ChatRequest) (json.RawMessage, error) {
	result, err := s.client.Chat(ctx, req)
	if err != nil {
		return nil, mapUpstreamError(err)
	}
	return s.payloadOf(result), nil
}

func (s *refinementService) JobStatus(ctx context.Context, jobID string) (json.RawMessage, error) {
	result, err := s.client.JobStatus(ctx, jobID)
	if err != nil {
		return nil, mapUpstreamError(err)
	}
	return s.payloadOf(result), nil
}

// loadStoredPreferences is strictly best-effort enrichment: any failure
// (anonymous caller, read error, missing row) degrades to an empty profile.
func (s *refinementService) loadStoredPreferences(ctx context.Context, userId uuid.UUID) string {
	if userId == uuid.Nil {
		return ""
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	pref, err := uow.PreferenceRepository().FindByUserId(ctx, userId)
	if err != nil {
		s.logger.Warn("refinement", "Failed to load stored preferences", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
		return ""
	}
	if pref == nil {
		return ""
	}
	return pref.Data
}

// payloadOf returns the normalized body verbatim; for text-degraded results
// it synthesizes the minimal JSON shape so the caller always sees
// {recommendations, search_summary}.
func (s *refinementService) payloadOf(result *recommender.Result) json.RawMessage {
	if len(result.Body) > 0 {
		return result.Body
	}
	synthesized, _ := json.Marshal(map[string]interface{}{
		"recommendations": result.Recommendations,
		"search_summary":  result.SearchSummary,
	})
	return synthesized
}

// MergeProfiles overlays the request-supplied profile on top of the stored
// preference blob: request keys win on conflict, stored keys survive
// otherwise. A malformed stored blob is the one preference failure that
// surfaces to the caller.
func MergeProfiles(storedJSON string, requestProfile map[string]interface{}) (map[string]interface{}, error) {
	merged := make(map[string]interface{})

	if storedJSON != "" {
		if err := json.Unmarshal([]byte(storedJSON), &merged); err != nil {
			return nil, err
		}
	}

	for k, v := range requestProfile {
		merged[k] = v
	}

	return merged, nil
}

func mapUpstreamError(err error) error {
	ue, ok := err.(*recommender.UpstreamError)
	if !ok {
		return apperror.Wrap(apperror.CodeInternal, "Recommendation request failed", err)
	}
	switch ue.Kind {
	case recommender.KindNetworkFailure:
		return apperror.New(apperror.CodeUpstreamUnavailable, ue.Message)
	case recommender.KindHTML:
		return apperror.New(apperror.CodeUpstreamMalformed, ue.Message)
	default:
		return apperror.New(apperror.CodeUpstreamMalformed, ue.Message)
	}
}
