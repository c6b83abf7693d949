package services

import (
	"fmt"

	"github.com/rayagrigorova/pawfinder/internal/metrics"
	"github.com/rayagrigorova/pawfinder/internal/models"
	"github.com/rayagrigorova/pawfinder/internal/repositories"
	"gorm.io/gorm"
)

// PostService owns the adoption post lifecycle: creation, ownership-checked
// edits and deletes, and the stage transition that fans notifications out to
// subscribers. It holds the gorm handle directly because the edit path
// writes the post and its notifications in one transaction.
type PostService struct {
	db       *gorm.DB
	shelters repositories.ShelterRepository
}

func NewPostService(db *gorm.DB, shelters repositories.ShelterRepository) *PostService {
	return &PostService{db: db, shelters: shelters}
}

// StageTransitionNotifies reports whether moving a post between the two
// stages triggers notification fan-out. Only in_process -> active does;
// every other transition (including active -> active) is silent.
func StageTransitionNotifies(previous, next string) bool {
	return previous == models.StageInProcess && next == models.StageActive
}

// TransitionStage applies the stage change to the post and returns the
// notifications to create for it, one per subscription at transition time.
// It does not persist anything; the caller writes the post and the
// notifications in one transaction.
func TransitionStage(post *models.AdoptionPost, newStage string, subs []models.Subscription) []models.Notification {
	previous := post.AdoptionStage
	post.AdoptionStage = newStage

	if !StageTransitionNotifies(previous, newStage) {
		return nil
	}

	notifications := make([]models.Notification, 0, len(subs))
	for _, sub := range subs {
		notifications = append(notifications, models.Notification{
			RecipientID: sub.UserID,
			PostID:      post.ID,
			Message:     fmt.Sprintf("%s is available for adoption again! See the post at %s", post.Name, post.DetailURL()),
		})
	}
	return notifications
}

// CreatePost creates a post for the acting shelter account. The owning
// shelter is always the actor's own shelter, never client-supplied.
func (s *PostService) CreatePost(actor *models.User, req models.CreatePostRequest) (*models.AdoptionPost, error) {
	if !actor.IsShelter() {
		return nil, ErrForbidden
	}

	shelter, err := s.shelters.GetShelterByUserID(actor.ID)
	if err != nil {
		return nil, err
	}

	stage := req.AdoptionStage
	if stage == "" {
		stage = models.StageActive
	}

	post := &models.AdoptionPost{
		Name:          req.Name,
		Age:           req.Age,
		Gender:        req.Gender,
		Breed:         req.Breed,
		Description:   req.Description,
		Size:          req.Size,
		AdoptionStage: stage,
		ShelterID:     shelter.ID,
		ImageURL:      req.ImageURL,
	}
	if err := s.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// UpdatePost applies an edit to a post owned by the acting account. The post
// write and any notification fan-out happen in the same transaction.
func (s *PostService) UpdatePost(actor *models.User, postID uint, req models.UpdatePostRequest) (*models.AdoptionPost, error) {
	var post models.AdoptionPost
	if err := s.db.Preload("Shelter").First(&post, postID).Error; err != nil {
		return nil, err
	}
	if post.Shelter.UserID != actor.ID {
		return nil, ErrForbidden
	}

	var subs []models.Subscription
	if err := s.db.Where("post_id = ?", post.ID).Find(&subs).Error; err != nil {
		return nil, err
	}

	post.Name = req.Name
	post.Age = req.Age
	post.Gender = req.Gender
	post.Breed = req.Breed
	post.Description = req.Description
	post.Size = req.Size
	post.ImageURL = req.ImageURL

	notifications := TransitionStage(&post, req.AdoptionStage, subs)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&post).Error; err != nil {
			return err
		}
		if len(notifications) > 0 {
			if err := tx.Create(&notifications).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(notifications) > 0 {
		metrics.NotificationFanoutTotal.Add(float64(len(notifications)))
	}
	return &post, nil
}

// DeletePost removes a post owned by the acting account.
func (s *PostService) DeletePost(actor *models.User, postID uint) error {
	var post models.AdoptionPost
	if err := s.db.Preload("Shelter").First(&post, postID).Error; err != nil {
		return err
	}
	if post.Shelter.UserID != actor.ID {
		return ErrForbidden
	}
	return s.db.Delete(&post).Error
}
