package repositories

import (
	"github.com/rayagrigorova/pawfinder/internal/models"
	"gorm.io/gorm"
)

// SubscriptionRepository defines the interface for post subscriptions
type SubscriptionRepository interface {
	CreateSubscription(sub *models.Subscription) error
	IsSubscribed(userID, postID uint) (bool, error)
	DeleteSubscription(userID, postID uint) error
	GetSubscriptionsByPostID(postID uint) ([]models.Subscription, error)
}

type postgresSubscriptionRepository struct {
	db *gorm.DB
}

func NewPostgresSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &postgresSubscriptionRepository{db: db}
}

func (r *postgresSubscriptionRepository) CreateSubscription(sub *models.Subscription) error {
	return r.db.Create(sub).Error
}

func (r *postgresSubscriptionRepository) IsSubscribed(userID, postID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Subscription{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	return count > 0, err
}

func (r *postgresSubscriptionRepository) DeleteSubscription(userID, postID uint) error {
	return r.db.Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&models.Subscription{}).Error
}

func (r *postgresSubscriptionRepository) GetSubscriptionsByPostID(postID uint) ([]models.Subscription, error) {
	var subs []models.Subscription
	err := r.db.Where("post_id = ?", postID).Find(&subs).Error
	return subs, err
}
