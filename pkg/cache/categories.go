package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
	"gorm.io/gorm"

	"storefront_backend/internal/model"
)

const (
	categoriesKey = "categories"
	categoriesTTL = 15 * time.Minute
)

// CategoryCache is a read-through cache for the category list. Entries
// live for 15 minutes; category mutations do not invalidate, so reads can
// be stale for up to the TTL window.
type CategoryCache struct {
	db    *gorm.DB
	store *gocache.Cache
}

func NewCategoryCache(db *gorm.DB) *CategoryCache {
	return &CategoryCache{
		db:    db,
		store: gocache.New(categoriesTTL, 30*time.Minute),
	}
}

// Categories returns the cached category list when present, otherwise
// queries the database and caches the result.
func (c *CategoryCache) Categories() ([]model.Category, error) {
	if cached, found := c.store.Get(categoriesKey); found {
		return cached.([]model.Category), nil
	}

	var categories []model.Category
	if err := c.db.Order("id").Find(&categories).Error; err != nil {
		return nil, err
	}

	c.store.Set(categoriesKey, categories, gocache.DefaultExpiration)
	return categories, nil
}
