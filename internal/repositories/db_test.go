package repositories

import (
	"testing"

	"github.com/rayagrigorova/pawfinder/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A pooled second connection would see a fresh empty in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.RegistrationCode{},
		&models.Shelter{},
		&models.AdoptionPost{},
		&models.Subscription{},
		&models.Notification{},
		&models.Comment{},
	))
	return db
}

func createShelter(t *testing.T, db *gorm.DB, userID uint, name string) *models.Shelter {
	t.Helper()
	shelter := &models.Shelter{UserID: userID, Name: name}
	require.NoError(t, db.Create(shelter).Error)
	return shelter
}
