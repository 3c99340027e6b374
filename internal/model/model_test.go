package model

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// :memory: veritabanı bağlantı başına ayrı olur
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&User{},
		&Category{},
		&Product{},
		&Version{},
		&BlogPost{},
		&Contact{},
		&MailingMessage{},
		&Client{},
		&MailingSettings{},
		&MailingClient{},
		&EmailLog{},
	))

	return db
}
