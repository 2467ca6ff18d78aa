package db

import (
	"github.com/designxpo/poonam-cosmetics-backend/internal/app/model"
	"github.com/designxpo/poonam-cosmetics-backend/pkg/logger"
)

// Migrate runs database migrations
func Migrate() error {
	logger.Info("Running database migrations...")

	models := []interface{}{
		&model.User{},
		&model.Category{},
		&model.Brand{},
		&model.Product{},
		&model.Banner{},
		&model.PageBanner{},
		&model.FeaturedCollection{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
		&model.TrackingUpdate{},
		&model.Review{},
	}

	if err := DB.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(models),
	})
	return nil
}

// Seed adds the baseline catalog taxonomy if the tables are empty.
func Seed() error {
	logger.Info("Seeding initial data...")

	if err := seedCategories(); err != nil {
		logger.Error("Failed to seed categories", err)
		return err
	}

	logger.Info("Initial data seeded successfully")
	return nil
}

func seedCategories() error {
	var count int64
	if err := DB.Model(&model.Category{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		logger.Info("Categories already seeded, skipping...", map[string]interface{}{
			"existing_count": count,
		})
		return nil
	}

	categories := []model.Category{
		{Name: "Lipstick", Slug: "lipstick", SortOrder: 1, Active: true},
		{Name: "Foundation", Slug: "foundation", SortOrder: 2, Active: true},
		{Name: "Eye Makeup", Slug: "eye-makeup", SortOrder: 3, Active: true},
		{Name: "Skincare", Slug: "skincare", SortOrder: 4, Active: true},
		{Name: "Fragrance", Slug: "fragrance", SortOrder: 5, Active: true},
		{Name: "Hair Care", Slug: "hair-care", SortOrder: 6, Active: true},
	}

	for _, category := range categories {
		if err := DB.Create(&category).Error; err != nil {
			logger.Error("Failed to create category", err, map[string]interface{}{
				"category": category.Name,
			})
			return err
		}
	}

	logger.Info("Categories seeded successfully", map[string]interface{}{
		"total_categories": len(categories),
	})
	return nil
}
