package cache

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// PredictionCache memoizes chief-complaint category predictions so
// repeated complaints skip the oracle round trip. Misses are not errors.
type PredictionCache interface {
	GetCategory(ctx context.Context, complaint string) (string, bool)
	SetCategory(ctx context.Context, complaint, category string) error
}

type predictionCache struct {
	client *redis.Client
}

func NewPredictionCache(client *redis.Client) PredictionCache {
	return &predictionCache{
		client: client,
	}
}

func (c *predictionCache) GetCategory(ctx context.Context, complaint string) (string, bool) {
	val, err := c.client.Get(ctx, predictionKey(complaint)).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (c *predictionCache) SetCategory(ctx context.Context, complaint, category string) error {
	return c.client.Set(ctx, predictionKey(complaint), category, 24*time.Hour).Err()
}

func predictionKey(complaint string) string {
	return "predict:complaint:" + strings.ToLower(strings.TrimSpace(complaint))
}
