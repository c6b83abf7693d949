package repositories

import (
	"github.com/rayagrigorova/pawfinder/internal/models"
	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment operations
type CommentRepository interface {
	CreateComment(comment *models.Comment) error
	GetCommentByID(id uint) (*models.Comment, error)
	GetCommentsByPostID(postID uint) ([]models.Comment, error)
	UpdateComment(comment *models.Comment) error
	DeleteComment(id uint) error
}

type postgresCommentRepository struct {
	db *gorm.DB
}

func NewPostgresCommentRepository(db *gorm.DB) CommentRepository {
	return &postgresCommentRepository{db: db}
}

func (r *postgresCommentRepository) CreateComment(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

func (r *postgresCommentRepository) GetCommentByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *postgresCommentRepository) GetCommentsByPostID(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("post_id = ?", postID).Order("created_at").Find(&comments).Error
	return comments, err
}

func (r *postgresCommentRepository) UpdateComment(comment *models.Comment) error {
	return r.db.Save(comment).Error
}

func (r *postgresCommentRepository) DeleteComment(id uint) error {
	return r.db.Delete(&models.Comment{}, id).Error
}
