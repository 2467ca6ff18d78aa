package scheduler

import (
	"context"

	"github.com/designxpo/poonam-cosmetics-backend/internal/app/service"
	"github.com/designxpo/poonam-cosmetics-backend/pkg/logger"
	"github.com/robfig/cron/v3"
)

// ReviewStatsScheduler periodically warms the review stats cache so product
// pages read precomputed aggregates instead of hitting the database.
type ReviewStatsScheduler struct {
	cron          *cron.Cron
	reviewService service.ReviewService
}

func NewReviewStatsScheduler(reviewService service.ReviewService) *ReviewStatsScheduler {
	return &ReviewStatsScheduler{
		cron:          cron.New(),
		reviewService: reviewService,
	}
}

func (s *ReviewStatsScheduler) Start() error {
	// Every 10 minutes, matching the cache TTL.
	_, err := s.cron.AddFunc("*/10 * * * *", func() {
		logger.Info("Starting scheduled review stats refresh", nil)

		if err := s.reviewService.WarmStatsCache(context.Background()); err != nil {
			logger.Error("Failed to refresh review stats from scheduler", err)
			return
		}
	})
	if err != nil {
		logger.Error("Failed to add cron job for review stats refresh", err)
		return err
	}

	s.cron.Start()
	logger.Info("Review stats scheduler started (every 10 minutes)", nil)
	return nil
}

func (s *ReviewStatsScheduler) Stop() {
	logger.Info("Stopping review stats scheduler...", nil)
	s.cron.Stop()
}
