package services

import (
	"testing"

	"github.com/rayagrigorova/pawfinder/internal/models"
	"github.com/rayagrigorova/pawfinder/internal/repositories"
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

func newPostService(db *gorm.DB) *PostService {
	return NewPostService(db, repositories.NewPostgresShelterRepository(db))
}

func newSubscriptionService(db *gorm.DB) *SubscriptionService {
	return NewSubscriptionService(
		repositories.NewPostgresPostRepository(db),
		repositories.NewPostgresSubscriptionRepository(db),
	)
}

func newCommentService(db *gorm.DB) *CommentService {
	return NewCommentService(
		repositories.NewPostgresPostRepository(db),
		repositories.NewPostgresCommentRepository(db),
	)
}

func createUser(t *testing.T, db *gorm.DB, username, role string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Password: "x", Role: role}
	require.NoError(t, db.Create(user).Error)
	return user
}

// createShelterUser creates a shelter account with its paired profile, the
// way a successful shelter registration would.
func createShelterUser(t *testing.T, db *gorm.DB, username string) (*models.User, *models.Shelter) {
	t.Helper()
	user := createUser(t, db, username, models.RoleShelter)
	shelter := &models.Shelter{UserID: user.ID, Name: username + " shelter"}
	require.NoError(t, db.Create(shelter).Error)
	return user, shelter
}

func createPost(t *testing.T, db *gorm.DB, shelterID uint, name, stage string) *models.AdoptionPost {
	t.Helper()
	post := &models.AdoptionPost{
		Name:          name,
		Age:           3,
		Gender:        models.GenderMale,
		Breed:         "mixed",
		Size:          "M",
		AdoptionStage: stage,
		ShelterID:     shelterID,
	}
	require.NoError(t, db.Create(post).Error)
	return post
}
