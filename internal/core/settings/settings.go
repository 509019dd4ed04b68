// Package settings exposes the runtime toggles controlling AI
// categorization. Values live in Redis so they can be flipped without a
// restart; any read failure degrades to "disabled".
package settings

import (
	"context"
	"log/slog"

	"github.com/go-redis/redis/v8"
)

const (
	aiEnabledKey = "settings:ai_enabled"
	apiKeyKey    = "settings:gemini_api_key"
)

// Provider reads the AI-categorization settings.
type Provider interface {
	AIEnabled(ctx context.Context) bool
	HasAPIKey(ctx context.Context) bool
	APIKey(ctx context.Context) string
}

// RedisProvider reads settings from Redis. A missing ai_enabled key means
// disabled; a missing API key falls back to the configured one. Redis errors
// are logged and treated as disabled so categorization keeps working on the
// keyword path.
type RedisProvider struct {
	client      *redis.Client
	fallbackKey string
	logger      *slog.Logger
}

func NewRedisProvider(client *redis.Client, fallbackKey string, logger *slog.Logger) *RedisProvider {
	return &RedisProvider{
		client:      client,
		fallbackKey: fallbackKey,
		logger:      logger,
	}
}

func (p *RedisProvider) AIEnabled(ctx context.Context) bool {
	val, err := p.client.Get(ctx, aiEnabledKey).Result()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		p.logger.Warn("Failed to read ai_enabled setting, treating as disabled", "error", err)
		return false
	}
	return val == "true" || val == "1"
}

func (p *RedisProvider) APIKey(ctx context.Context) string {
	val, err := p.client.Get(ctx, apiKeyKey).Result()
	if err == redis.Nil {
		return p.fallbackKey
	}
	if err != nil {
		p.logger.Warn("Failed to read API key setting", "error", err)
		return p.fallbackKey
	}
	if val == "" {
		return p.fallbackKey
	}
	return val
}

func (p *RedisProvider) HasAPIKey(ctx context.Context) bool {
	return p.APIKey(ctx) != ""
}

// StaticProvider holds fixed settings. Used in tests and in deployments
// without Redis.
type StaticProvider struct {
	Enabled bool
	Key     string
}

func (p StaticProvider) AIEnabled(ctx context.Context) bool { return p.Enabled }
func (p StaticProvider) HasAPIKey(ctx context.Context) bool { return p.Key != "" }
func (p StaticProvider) APIKey(ctx context.Context) string  { return p.Key }
