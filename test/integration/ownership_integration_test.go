package integration

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"college-compass-be/internal/dto"
	"college-compass-be/internal/entity"
	"college-compass-be/internal/pkg/apperror"
	"college-compass-be/internal/repository/memory"
	"college-compass-be/internal/repository/unitofwork"
	"college-compass-be/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestUser(t *testing.T, uowFactory unitofwork.RepositoryFactory) uuid.UUID {
	t.Helper()
	ctx := context.Background()
	uow := uowFactory.NewUnitOfWork(ctx)

	hash := "not-a-real-hash"
	user := &entity.User{
		Id:           uuid.New(),
		Email:        "it-" + uuid.New().String() + "@example.com",
		FullName:     "Integration User",
		PasswordHash: &hash,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	require.NoError(t, uow.UserRepository().Create(ctx, user))
	return user.Id
}

func TestSavedSearchOwnership(t *testing.T) {
	uowFactory := testFactory(t)
	svc := service.NewSavedSearchService(uowFactory)
	ctx := context.Background()

	owner := createTestUser(t, uowFactory)
	stranger := createTestUser(t, uowFactory)

	created, err := svc.Create(ctx, owner, &dto.CreateSavedSearchRequest{
		InitialQuery: "small liberal arts colleges",
		FollowUpQandA: []dto.QandAPair{
			{Question: "Budget?", Answer: "Under 40k"},
		},
		Recommendations: json.RawMessage(`[{"name":"Example College"}]`),
		SearchSummary:   "two matches",
	})
	require.NoError(t, err)

	t.Run("stranger delete is forbidden and the row survives", func(t *testing.T) {
		err := svc.Delete(ctx, stranger, created.Id)
		appErr, ok := apperror.As(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeForbidden, appErr.Code)

		still, err := svc.Show(ctx, owner, created.Id)
		require.NoError(t, err)
		assert.Equal(t, created.Id, still.Id)
	})

	t.Run("absent search is not found", func(t *testing.T) {
		err := svc.Delete(ctx, stranger, uuid.New())
		appErr, ok := apperror.As(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeNotFound, appErr.Code)
	})

	t.Run("owner toggles favorite and deletes", func(t *testing.T) {
		require.NoError(t, svc.ToggleFavorite(ctx, owner, created.Id, true))

		shown, err := svc.Show(ctx, owner, created.Id)
		require.NoError(t, err)
		assert.True(t, shown.IsFavorite)

		require.NoError(t, svc.Delete(ctx, owner, created.Id))
		_, err = svc.Show(ctx, owner, created.Id)
		appErr, ok := apperror.As(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeNotFound, appErr.Code)
	})
}

func TestFavoriteRequiresKnownCollege(t *testing.T) {
	uowFactory := testFactory(t)
	imageless := service.NewCollegeService(uowFactory, memory.NewImageCache())
	svc := service.NewFavoriteService(uowFactory, imageless, nopPublisher{})
	ctx := context.Background()

	user := createTestUser(t, uowFactory)

	t.Run("unknown college is 404", func(t *testing.T) {
		_, err := svc.Create(ctx, user, &dto.CreateFavoriteRequest{CollegeId: "no-such-college"})
		appErr, ok := apperror.As(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeNotFound, appErr.Code)
	})

	t.Run("duplicate pair is a conflict", func(t *testing.T) {
		collegeId := "it-fav-" + uuid.New().String()
		uow := uowFactory.NewUnitOfWork(ctx)
		require.NoError(t, uow.CollegeRepository().Create(ctx, &entity.College{
			Id:        collegeId,
			Name:      "Favorite Target " + collegeId,
			CreatedAt: time.Now(),
		}))

		first, err := svc.Create(ctx, user, &dto.CreateFavoriteRequest{CollegeId: collegeId})
		require.NoError(t, err)
		assert.Equal(t, collegeId, first.CollegeId)

		_, err = svc.Create(ctx, user, &dto.CreateFavoriteRequest{CollegeId: collegeId})
		appErr, ok := apperror.As(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeConflict, appErr.Code)
	})
}

func TestPreferenceUpsertReplacesBlob(t *testing.T) {
	uowFactory := testFactory(t)
	svc := service.NewPreferenceService(uowFactory)
	ctx := context.Background()

	user := createTestUser(t, uowFactory)

	// Never saved: the default profile comes back, not an error.
	defaults, err := svc.Get(ctx, user)
	require.NoError(t, err)
	assert.Contains(t, defaults.Preferences, "gpa")
	assert.Contains(t, defaults.Preferences, "languages")

	require.NoError(t, svc.Save(ctx, user, &dto.SavePreferencesRequest{
		Preferences: map[string]interface{}{"gpa": 3.5, "satScore": 1400},
	}))
	require.NoError(t, svc.Save(ctx, user, &dto.SavePreferencesRequest{
		Preferences: map[string]interface{}{"gpa": 3.8},
	}))

	// Save is full replacement, not a merge: satScore is gone.
	saved, err := svc.Get(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, 3.8, saved.Preferences["gpa"])
	assert.NotContains(t, saved.Preferences, "satScore")

	// Exactly one row per user regardless of save count.
	uow := uowFactory.NewUnitOfWork(ctx)
	pref, err := uow.PreferenceRepository().FindByUserId(ctx, user)
	require.NoError(t, err)
	require.NotNil(t, pref)
}

func TestCollegeListFilters(t *testing.T) {
	uowFactory := testFactory(t)
	svc := service.NewCollegeService(uowFactory, memory.NewImageCache())
	ctx := context.Background()

	state := "ZZ" // improbable state code keeps the filter selective
	uow := uowFactory.NewUnitOfWork(ctx)
	for i := 0; i < 3; i++ {
		require.NoError(t, uow.CollegeRepository().Create(ctx, &entity.College{
			Id:        "it-list-" + uuid.New().String(),
			Name:      "List College " + uuid.New().String(),
			State:     state,
			Type:      "private",
			CreatedAt: time.Now(),
		}))
	}

	res, err := svc.List(ctx, &dto.ListCollegesRequest{State: state, Limit: 2})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, res.Total, int64(3))
	assert.Len(t, res.Colleges, 2)
}

type nopPublisher struct{}

func (nopPublisher) Publish(ctx context.Context, msg service.ActivityMessage) {}
