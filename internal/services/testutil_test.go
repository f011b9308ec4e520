package services

import (
	"testing"
	"time"

	"github.com/JasminHed/project-final-sub000/internal/config"
	"github.com/JasminHed/project-final-sub000/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory sqlite database pinned to a single connection
// so every query sees the same store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.AccessToken{},
		&models.Goal{},
		&models.CommunityPost{},
		&models.Comment{},
	))

	return db
}

func newTestConfig() *config.Config {
	return &config.Config{TokenTTL: time.Hour}
}
