package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/designxpo/poonam-cosmetics-backend/config"
	"github.com/designxpo/poonam-cosmetics-backend/internal/app/model"
	"github.com/designxpo/poonam-cosmetics-backend/pkg/logger"
	"github.com/redis/go-redis/v9"
)

var client *redis.Client

// ReviewStatsTTL bounds how stale a cached product rating aggregate may get.
const ReviewStatsTTL = 10 * time.Minute

// Init initializes Redis connection
func Init(cfg *config.RedisConfig) error {
	logger.Info("Initializing Redis connection", map[string]interface{}{
		"host": cfg.Host,
		"port": cfg.Port,
		"db":   cfg.DB,
	})

	client = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Failed to connect to Redis", err, map[string]interface{}{
			"host": cfg.Host,
			"port": cfg.Port,
		})
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Redis connection established successfully", nil)
	return nil
}

// GetClient returns the Redis client instance
func GetClient() *redis.Client {
	return client
}

// Close closes the Redis connection
func Close() error {
	if client != nil {
		logger.Info("Closing Redis connection", nil)
		return client.Close()
	}
	return nil
}

// BlacklistToken adds a token to the blacklist until it would have expired.
func BlacklistToken(ctx context.Context, token string, expiry time.Duration) error {
	logger.Debug("Adding token to blacklist", map[string]interface{}{
		"expiry": expiry.String(),
	})

	if client == nil {
		return nil
	}

	key := fmt.Sprintf("blacklist:%s", token)
	if err := client.Set(ctx, key, "revoked", expiry).Err(); err != nil {
		logger.Error("Failed to blacklist token", err, nil)
		return err
	}
	return nil
}

// IsTokenBlacklisted checks if a token is in the blacklist
func IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	if client == nil {
		return false, nil
	}

	key := fmt.Sprintf("blacklist:%s", token)
	val, err := client.Get(ctx, key).Result()

	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		logger.Error("Failed to check token blacklist", err, nil)
		return false, err
	}

	return val == "revoked", nil
}

func reviewStatsKey(productID uint) string {
	return fmt.Sprintf("review_stats:%d", productID)
}

// GetReviewStats returns the cached rating aggregate for a product, or nil on
// a miss. Cache errors are returned so callers can fall back to the database.
func GetReviewStats(ctx context.Context, productID uint) (*model.ReviewStats, error) {
	if client == nil {
		return nil, nil
	}

	val, err := client.Get(ctx, reviewStatsKey(productID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var stats model.ReviewStats
	if err := json.Unmarshal([]byte(val), &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// SetReviewStats caches a product rating aggregate.
func SetReviewStats(ctx context.Context, stats *model.ReviewStats) error {
	if client == nil {
		return nil
	}

	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return client.Set(ctx, reviewStatsKey(stats.ProductID), data, ReviewStatsTTL).Err()
}

// InvalidateReviewStats drops the cached aggregate after moderation changes.
func InvalidateReviewStats(ctx context.Context, productID uint) error {
	if client == nil {
		return nil
	}
	return client.Del(ctx, reviewStatsKey(productID)).Err()
}
