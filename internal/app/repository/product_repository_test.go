package repository

import (
	"testing"

	"github.com/designxpo/poonam-cosmetics-backend/internal/app/model"
	"github.com/designxpo/poonam-cosmetics-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupProductRepoTest(t *testing.T) (*gorm.DB, ProductRepository) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })
	return testDB, NewProductRepository(testDB)
}

func seedCatalog(t *testing.T, testDB *gorm.DB) (model.Category, model.Category, model.Brand) {
	lipstick := model.Category{Name: "Lipstick", Slug: "lipstick", Active: true}
	skincare := model.Category{Name: "Skincare", Slug: "skincare", Active: true}
	brand := model.Brand{Name: "Glow Co", Slug: "glow-co", Active: true}

	require.NoError(t, testDB.Create(&lipstick).Error)
	require.NoError(t, testDB.Create(&skincare).Error)
	require.NoError(t, testDB.Create(&brand).Error)
	return lipstick, skincare, brand
}

func TestProductRepository_FindWithFilter_Categories(t *testing.T) {
	testDB, repo := setupProductRepoTest(t)
	lipstick, skincare, brand := seedCatalog(t, testDB)

	require.NoError(t, repo.Create(&model.Product{
		Name: "Matte Lipstick", Slug: "matte-lipstick", Price: 499,
		CategoryID: lipstick.ID, BrandID: &brand.ID, Stock: 10, Active: true,
	}))
	require.NoError(t, repo.Create(&model.Product{
		Name: "Vitamin C Serum", Slug: "vitamin-c-serum", Price: 899,
		CategoryID: skincare.ID, Stock: 5, Active: true,
	}))
	require.NoError(t, repo.Create(&model.Product{
		Name: "Hidden Gloss", Slug: "hidden-gloss", Price: 299,
		CategoryID: lipstick.ID, Stock: 3, Active: false,
	}))

	// Single category, active only: the inactive gloss is excluded.
	products, total, err := repo.FindWithFilter(ProductFilter{
		CategorySlugs: []string{"lipstick"},
		ActiveOnly:    true,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, products, 1)
	assert.Equal(t, "Matte Lipstick", products[0].Name)

	// Multiple categories combine with OR.
	products, total, err = repo.FindWithFilter(ProductFilter{
		CategorySlugs: []string{"lipstick", "skincare"},
		ActiveOnly:    true,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, products, 2)

	// Admin view includes inactive products.
	_, total, err = repo.FindWithFilter(ProductFilter{
		CategorySlugs: []string{"lipstick"},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
}

func TestProductRepository_FindWithFilter_PriceRange(t *testing.T) {
	testDB, repo := setupProductRepoTest(t)
	lipstick, _, _ := seedCatalog(t, testDB)

	for _, p := range []struct {
		name  string
		price float64
	}{
		{"Budget Balm", 150},
		{"Mid Lipstick", 499},
		{"Premium Serum", 1299},
	} {
		require.NoError(t, repo.Create(&model.Product{
			Name: p.name, Slug: p.name, Price: p.price,
			CategoryID: lipstick.ID, Active: true,
		}))
	}

	min, max := 200.0, 1000.0
	products, total, err := repo.FindWithFilter(ProductFilter{
		MinPrice: &min, MaxPrice: &max, ActiveOnly: true,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "Mid Lipstick", products[0].Name)

	// An inverted range is passed through and matches nothing.
	min, max = 1000.0, 200.0
	products, total, err = repo.FindWithFilter(ProductFilter{
		MinPrice: &min, MaxPrice: &max, ActiveOnly: true,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 0, total)
	assert.Empty(t, products)
}

func TestProductRepository_FindWithFilter_Sorting(t *testing.T) {
	testDB, repo := setupProductRepoTest(t)
	lipstick, _, _ := seedCatalog(t, testDB)

	require.NoError(t, repo.Create(&model.Product{Name: "Bravo", Slug: "bravo", Price: 300, CategoryID: lipstick.ID, Active: true}))
	require.NoError(t, repo.Create(&model.Product{Name: "Alpha", Slug: "alpha", Price: 100, CategoryID: lipstick.ID, Active: true}))
	require.NoError(t, repo.Create(&model.Product{Name: "Charlie", Slug: "charlie", Price: 200, CategoryID: lipstick.ID, Active: true}))

	products, _, err := repo.FindWithFilter(ProductFilter{SortBy: ProductSortPriceAsc, ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "Alpha", products[0].Name)
	assert.Equal(t, "Bravo", products[2].Name)

	products, _, err = repo.FindWithFilter(ProductFilter{SortBy: ProductSortNameDesc, ActiveOnly: true})
	require.NoError(t, err)
	assert.Equal(t, "Charlie", products[0].Name)

	// Unknown sort falls back to newest first without erroring.
	products, _, err = repo.FindWithFilter(ProductFilter{SortBy: "bogus", ActiveOnly: true})
	require.NoError(t, err)
	assert.Len(t, products, 3)
}

func TestProductRepository_FindWithFilter_Search(t *testing.T) {
	testDB, repo := setupProductRepoTest(t)
	lipstick, _, _ := seedCatalog(t, testDB)

	require.NoError(t, repo.Create(&model.Product{
		Name: "Rose Lipstick", Slug: "rose-lipstick", Price: 499,
		Description: "long lasting matte", CategoryID: lipstick.ID, Active: true,
	}))
	require.NoError(t, repo.Create(&model.Product{
		Name: "Kajal", Slug: "kajal", Price: 199,
		Description: "smudge proof rose tint", CategoryID: lipstick.ID, Active: true,
	}))

	// Search matches name or description.
	_, total, err := repo.FindWithFilter(ProductFilter{Search: "rose", ActiveOnly: true})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)

	_, total, err = repo.FindWithFilter(ProductFilter{Search: "matte", ActiveOnly: true})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestProductRepository_BulkUpdates(t *testing.T) {
	testDB, repo := setupProductRepoTest(t)
	lipstick, _, _ := seedCatalog(t, testDB)

	p1 := model.Product{Name: "One", Slug: "one", Price: 100, CategoryID: lipstick.ID, Active: true}
	p2 := model.Product{Name: "Two", Slug: "two", Price: 200, CategoryID: lipstick.ID, Active: true}
	require.NoError(t, repo.Create(&p1))
	require.NoError(t, repo.Create(&p2))

	// Missing IDs simply do not count toward the modified total.
	count, err := repo.BulkSetActive([]uint{p1.ID, p2.ID, 9999}, false)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	count, err = repo.BulkSetFeatured([]uint{p1.ID}, true)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	count, err = repo.BulkDelete([]uint{p2.ID, 9999})
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	_, err = repo.FindByID(p2.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestProductRepository_SlugExists(t *testing.T) {
	testDB, repo := setupProductRepoTest(t)
	lipstick, _, _ := seedCatalog(t, testDB)

	require.NoError(t, repo.Create(&model.Product{
		Name: "Matte Lipstick", Slug: "matte-lipstick", Price: 499,
		CategoryID: lipstick.ID, Active: true,
	}))

	exists, err := repo.SlugExists("matte-lipstick")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.SlugExists("unused-slug")
	require.NoError(t, err)
	assert.False(t, exists)
}
