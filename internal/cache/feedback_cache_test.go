package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prepwise/internal/model"
)

func setupCache(t *testing.T) (FeedbackCache, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewFeedbackCache(client), mr
}

func TestFeedbackCacheRoundTrip(t *testing.T) {
	c, _ := setupCache(t)
	ctx := context.Background()

	summary := &model.CompanyFeedback{
		InterviewID:  "iv-1",
		UserID:       "user-1",
		CompanyName:  "Acme Corp",
		AverageScore: 85,
		RoundScores: []model.RoundScore{
			{RoundID: "r1", Score: 85, Passed: true},
		},
	}
	require.NoError(t, c.Set(ctx, summary))

	got, err := c.Get(ctx, "iv-1", "user-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 85, got.AverageScore)
	assert.Equal(t, "Acme Corp", got.CompanyName)
	require.Len(t, got.RoundScores, 1)
	assert.True(t, got.RoundScores[0].Passed)
}

func TestFeedbackCacheMissIsNil(t *testing.T) {
	c, _ := setupCache(t)

	got, err := c.Get(context.Background(), "iv-9", "user-9")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFeedbackCacheKeysAreScoped(t *testing.T) {
	c, _ := setupCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, &model.CompanyFeedback{InterviewID: "iv-1", UserID: "user-1", AverageScore: 70}))
	require.NoError(t, c.Set(ctx, &model.CompanyFeedback{InterviewID: "iv-1", UserID: "user-2", AverageScore: 90}))

	a, err := c.Get(ctx, "iv-1", "user-1")
	require.NoError(t, err)
	b, err := c.Get(ctx, "iv-1", "user-2")
	require.NoError(t, err)

	assert.Equal(t, 70, a.AverageScore)
	assert.Equal(t, 90, b.AverageScore)
}

func TestFeedbackCacheInvalidate(t *testing.T) {
	c, _ := setupCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, &model.CompanyFeedback{InterviewID: "iv-1", UserID: "user-1"}))
	require.NoError(t, c.Invalidate(ctx, "iv-1", "user-1"))

	got, err := c.Get(ctx, "iv-1", "user-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFeedbackCacheEntriesExpire(t *testing.T) {
	c, mr := setupCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, &model.CompanyFeedback{InterviewID: "iv-1", UserID: "user-1"}))

	mr.FastForward(25 * time.Hour)

	got, err := c.Get(ctx, "iv-1", "user-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}
