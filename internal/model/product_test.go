package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createTestProduct(t *testing.T, db *gorm.DB) *Product {
	t.Helper()

	category := Category{Name: "Test Category"}
	require.NoError(t, db.Create(&category).Error)

	product := Product{
		Name:       "Test Product",
		Price:      19.99,
		CategoryID: category.ID,
	}
	require.NoError(t, db.Create(&product).Error)
	return &product
}

func TestProductDates(t *testing.T) {
	db := newTestDB(t)
	product := createTestProduct(t, db)

	require.False(t, product.CreationDate.IsZero())
	require.False(t, product.LastChangeDate.IsZero())

	createdAt := product.CreationDate

	time.Sleep(20 * time.Millisecond)
	product.Name = "Renamed Product"
	require.NoError(t, db.Save(product).Error)

	var reloaded Product
	require.NoError(t, db.First(&reloaded, product.ID).Error)

	assert.WithinDuration(t, createdAt, reloaded.CreationDate, time.Millisecond,
		"creation date must be set once and never change")
	assert.True(t, reloaded.LastChangeDate.After(createdAt),
		"last change date must move forward on save")
}

func TestProductPreviewSaveTouchesLastChange(t *testing.T) {
	db := newTestDB(t)
	product := createTestProduct(t, db)
	changedAt := product.LastChangeDate

	time.Sleep(20 * time.Millisecond)
	product.Preview = "https://example.com/previews/new.webp"
	require.NoError(t, db.Save(product).Error)

	var reloaded Product
	require.NoError(t, db.First(&reloaded, product.ID).Error)
	assert.Equal(t, "https://example.com/previews/new.webp", reloaded.Preview)
	assert.True(t, reloaded.LastChangeDate.After(changedAt),
		"preview change must move the last change date forward")
}

func TestPromoteVersionDemotesPrevious(t *testing.T) {
	db := newTestDB(t)
	product := createTestProduct(t, db)

	v1 := Version{ProductID: product.ID, VersionNumber: 1, VersionName: "first"}
	require.NoError(t, db.Create(&v1).Error)
	require.NoError(t, PromoteVersion(db, product, &v1))

	v2 := Version{ProductID: product.ID, VersionNumber: 2, VersionName: "second"}
	require.NoError(t, db.Create(&v2).Error)
	require.NoError(t, PromoteVersion(db, product, &v2))

	var currentCount int64
	require.NoError(t, db.Model(&Version{}).
		Where("product_id = ? AND is_current = ?", product.ID, true).
		Count(&currentCount).Error)
	assert.EqualValues(t, 1, currentCount, "exactly one current version per product")

	var reloaded Product
	require.NoError(t, db.First(&reloaded, product.ID).Error)
	require.NotNil(t, reloaded.ActiveVersionID)
	assert.Equal(t, v2.ID, *reloaded.ActiveVersionID)

	var demoted Version
	require.NoError(t, db.First(&demoted, v1.ID).Error)
	assert.False(t, demoted.IsCurrent)
}

func TestPromoteVersionWrongProduct(t *testing.T) {
	db := newTestDB(t)
	product := createTestProduct(t, db)
	other := createTestProduct(t, db)

	version := Version{ProductID: other.ID, VersionNumber: 1}
	require.NoError(t, db.Create(&version).Error)

	err := PromoteVersion(db, product, &version)
	assert.Error(t, err)
}
