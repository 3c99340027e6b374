package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"storefront_backend/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.Category{}))
	return db
}

func TestCategoriesReadThrough(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&model.Category{Name: "Books"}).Error)
	require.NoError(t, db.Create(&model.Category{Name: "Games"}).Error)

	cc := NewCategoryCache(db)

	first, err := cc.Categories()
	require.NoError(t, err)
	require.Len(t, first, 2)

	// Pencere içindeki mutasyon cache'i temizlemez
	require.NoError(t, db.Create(&model.Category{Name: "Music"}).Error)

	second, err := cc.Categories()
	require.NoError(t, err)
	assert.Len(t, second, 2, "second lookup inside the TTL window is served from cache")
	assert.Equal(t, first, second)
}

func TestCategoriesEmptyListIsCached(t *testing.T) {
	db := newTestDB(t)
	cc := NewCategoryCache(db)

	first, err := cc.Categories()
	require.NoError(t, err)
	assert.Empty(t, first)

	require.NoError(t, db.Create(&model.Category{Name: "Late"}).Error)

	second, err := cc.Categories()
	require.NoError(t, err)
	assert.Empty(t, second, "empty result is cached like any other")
}
