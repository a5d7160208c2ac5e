package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"college-compass-be/internal/dto"
	"college-compass-be/internal/pkg/apperror"
	"college-compass-be/internal/service"
	"college-compass-be/pkg/recommender"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComparisonRoundTrip(t *testing.T) {
	uowFactory := testFactory(t)

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/colleges/comparisons", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"search_summary":"college-a edges out college-b on cost"}`))
	}))
	defer upstream.Close()

	svc := service.NewComparisonService(
		uowFactory,
		recommender.NewClient(upstream.URL),
		nopPublisher{},
		nopLogger{},
	)
	ctx := context.Background()

	owner := createTestUser(t, uowFactory)
	stranger := createTestUser(t, uowFactory)

	created, err := svc.Create(ctx, owner, &dto.CreateComparisonRequest{
		Name:       "Top picks",
		CollegeIDs: []string{"college-a", "college-b", "college-c"},
		Categories: []dto.WeightedCategory{
			{Name: "cost", Weight: 0.6},
			{Name: "outcomes", Weight: 0.4},
		},
	})
	require.NoError(t, err)

	// Stored college id list length equals the input length.
	var ids []string
	require.NoError(t, json.Unmarshal(created.CollegeIDs, &ids))
	assert.Len(t, ids, 3)

	t.Run("retrievable only by its owner", func(t *testing.T) {
		shown, err := svc.Show(ctx, owner, created.Id)
		require.NoError(t, err)
		assert.Equal(t, "Top picks", shown.Name)
		assert.Contains(t, string(shown.Results), "college-a edges out college-b")

		_, err = svc.Show(ctx, stranger, created.Id)
		appErr, ok := apperror.As(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeForbidden, appErr.Code)
	})

	t.Run("rename and delete are owner-scoped", func(t *testing.T) {
		require.NoError(t, svc.Rename(ctx, owner, created.Id, "Final picks"))

		err := svc.Delete(ctx, stranger, created.Id)
		appErr, ok := apperror.As(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeForbidden, appErr.Code)

		require.NoError(t, svc.Delete(ctx, owner, created.Id))
		_, err = svc.Show(ctx, owner, created.Id)
		appErr, ok = apperror.As(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeNotFound, appErr.Code)
	})
}
