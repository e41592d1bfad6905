package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"prepwise/internal/model"
)

// FeedbackCache is a Redis read cache for cumulative feedback. The aggregator
// refreshes it after every recompute; reads fall back to Mongo on miss.
type FeedbackCache interface {
	Get(ctx context.Context, interviewID, userID string) (*model.CompanyFeedback, error)
	Set(ctx context.Context, feedback *model.CompanyFeedback) error
	Invalidate(ctx context.Context, interviewID, userID string) error
}

type feedbackCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewFeedbackCache creates a new cumulative feedback cache
func NewFeedbackCache(client *redis.Client) FeedbackCache {
	return &feedbackCache{
		client: client,
		ttl:    24 * time.Hour,
	}
}

func (c *feedbackCache) key(interviewID, userID string) string {
	return fmt.Sprintf("interview:%s:u:%s:feedback", interviewID, userID)
}

func (c *feedbackCache) Get(ctx context.Context, interviewID, userID string) (*model.CompanyFeedback, error) {
	data, err := c.client.Get(ctx, c.key(interviewID, userID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var feedback model.CompanyFeedback
	if err := json.Unmarshal([]byte(data), &feedback); err != nil {
		return nil, err
	}
	return &feedback, nil
}

func (c *feedbackCache) Set(ctx context.Context, feedback *model.CompanyFeedback) error {
	data, err := json.Marshal(feedback)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(feedback.InterviewID, feedback.UserID), data, c.ttl).Err()
}

func (c *feedbackCache) Invalidate(ctx context.Context, interviewID, userID string) error {
	return c.client.Del(ctx, c.key(interviewID, userID)).Err()
}
