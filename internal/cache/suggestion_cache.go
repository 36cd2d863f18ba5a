package cache

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// SuggestionCache memoizes autocomplete suggestions per (question, query)
// pair for a short window.
type SuggestionCache interface {
	Get(ctx context.Context, question, query string) ([]string, bool)
	Set(ctx context.Context, question, query string, options []string) error
}

type suggestionCache struct {
	client *redis.Client
}

func NewSuggestionCache(client *redis.Client) SuggestionCache {
	return &suggestionCache{
		client: client,
	}
}

func (c *suggestionCache) Get(ctx context.Context, question, query string) ([]string, bool) {
	data, err := c.client.Get(ctx, suggestionKey(question, query)).Result()
	if err != nil {
		return nil, false
	}
	var options []string
	if err := json.Unmarshal([]byte(data), &options); err != nil {
		return nil, false
	}
	return options, true
}

func (c *suggestionCache) Set(ctx context.Context, question, query string, options []string) error {
	data, err := json.Marshal(options)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, suggestionKey(question, query), data, 10*time.Minute).Err()
}

func suggestionKey(question, query string) string {
	return "suggest:" + strings.ToLower(question) + ":" + strings.ToLower(strings.TrimSpace(query))
}
