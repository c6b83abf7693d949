package repositories

import (
	"github.com/rayagrigorova/pawfinder/internal/models"
	"gorm.io/gorm"
)

// NotificationRepository defines the interface for notification operations.
// Rows are created by the stage-transition fan-out inside the post update
// transaction, not through this interface.
type NotificationRepository interface {
	GetByRecipientID(recipientID uint) ([]models.Notification, error)
	GetUnreadCount(recipientID uint) (int64, error)
	MarkAllAsRead(recipientID uint) error
}

type postgresNotificationRepository struct {
	db *gorm.DB
}

func NewPostgresNotificationRepository(db *gorm.DB) NotificationRepository {
	return &postgresNotificationRepository{db: db}
}

func (r *postgresNotificationRepository) GetByRecipientID(recipientID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.Where("recipient_id = ?", recipientID).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

func (r *postgresNotificationRepository) GetUnreadCount(recipientID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Count(&count).Error
	return count, err
}

// MarkAllAsRead flips every unread notification for the recipient in one
// batch update; there is no per-notification acknowledgment.
func (r *postgresNotificationRepository) MarkAllAsRead(recipientID uint) error {
	return r.db.Model(&models.Notification{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Update("is_read", true).Error
}
