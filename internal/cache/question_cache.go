package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SAP-F-2025/quiz-service/internal/models"
	"github.com/SAP-F-2025/quiz-service/internal/utils"
	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned by Get when the key is absent.
var ErrCacheMiss = errors.New("cache miss")

// QuestionCache caches a test's ordered question set. The set is immutable
// for the lifetime of a session, so cached entries stay valid until they
// expire or the catalog is re-imported.
type QuestionCache interface {
	Get(ctx context.Context, testID uint) ([]*models.Question, error)
	Set(ctx context.Context, testID uint, questions []*models.Question) error
	Invalidate(ctx context.Context, testID uint) error
}

type redisQuestionCache struct {
	client *redis.Client
	logger utils.Logger
	ttl    time.Duration
}

func NewRedisQuestionCache(client *redis.Client, logger utils.Logger, ttl time.Duration) QuestionCache {
	return &redisQuestionCache{
		client: client,
		logger: logger,
		ttl:    ttl,
	}
}

func questionSetKey(testID uint) string {
	return fmt.Sprintf("quiz:test:%d:questions", testID)
}

func (c *redisQuestionCache) Get(ctx context.Context, testID uint) ([]*models.Question, error) {
	data, err := c.client.Get(ctx, questionSetKey(testID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to read question cache: %w", err)
	}

	var questions []*models.Question
	if err := json.Unmarshal(data, &questions); err != nil {
		// A corrupt entry behaves like a miss; the caller reloads from postgres.
		c.logger.Warn("Dropping corrupt question cache entry", "test_id", testID, "error", err)
		_ = c.client.Del(ctx, questionSetKey(testID)).Err()
		return nil, ErrCacheMiss
	}

	return questions, nil
}

func (c *redisQuestionCache) Set(ctx context.Context, testID uint, questions []*models.Question) error {
	data, err := json.Marshal(questions)
	if err != nil {
		return fmt.Errorf("failed to marshal question set: %w", err)
	}

	if err := c.client.Set(ctx, questionSetKey(testID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write question cache: %w", err)
	}
	return nil
}

func (c *redisQuestionCache) Invalidate(ctx context.Context, testID uint) error {
	return c.client.Del(ctx, questionSetKey(testID)).Err()
}
