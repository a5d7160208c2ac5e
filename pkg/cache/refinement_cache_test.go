package cache

import (
	"context"
	"strings"
	"testing"

	"college-compass-be/pkg/recommender"

	"github.com/stretchr/testify/assert"
)

func TestKeyIsDeterministic(t *testing.T) {
	c := NewRefinementCache(nil)

	a := c.Key(&recommender.RefinementRequest{InitialQuery: "engineering schools"})
	b := c.Key(&recommender.RefinementRequest{InitialQuery: "engineering schools"})
	other := c.Key(&recommender.RefinementRequest{InitialQuery: "liberal arts"})

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, other)
	assert.True(t, strings.HasPrefix(a, "refinement:"))
}

func TestNilRedisDegradesToMiss(t *testing.T) {
	c := NewRefinementCache(nil)
	key := c.Key(&recommender.RefinementRequest{InitialQuery: "music"})

	// Set must be a no-op and Get a miss, never a panic or error.
	c.Set(context.Background(), key, &recommender.Result{Kind: recommender.KindJSON})
	result, hit := c.Get(context.Background(), key)

	assert.False(t, hit)
	assert.Nil(t, result)
}
