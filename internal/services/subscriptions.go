package services

import (
	"github.com/rayagrigorova/pawfinder/internal/models"
	"github.com/rayagrigorova/pawfinder/internal/repositories"
)

// SubscriptionService lets users watch an adoption post. The owning
// shelter's account cannot subscribe to its own posts.
type SubscriptionService struct {
	posts repositories.PostRepository
	subs  repositories.SubscriptionRepository
}

func NewSubscriptionService(posts repositories.PostRepository, subs repositories.SubscriptionRepository) *SubscriptionService {
	return &SubscriptionService{posts: posts, subs: subs}
}

// Subscribe creates a subscription for the (user, post) pair. Subscribing
// twice is a no-op, so a subscriber never receives duplicate notifications
// for one post. Returns whether a new subscription was created.
func (s *SubscriptionService) Subscribe(actor *models.User, postID uint) (bool, error) {
	post, err := s.posts.GetPostByID(postID)
	if err != nil {
		return false, err
	}
	if post.Shelter.UserID == actor.ID {
		return false, ErrForbidden
	}

	// The guard is scoped to the (user, post) pair; a subscription to one
	// post never blocks subscribing to another.
	subscribed, err := s.subs.IsSubscribed(actor.ID, postID)
	if err != nil {
		return false, err
	}
	if subscribed {
		return false, nil
	}

	sub := models.Subscription{UserID: actor.ID, PostID: postID, IsActive: true}
	if err := s.subs.CreateSubscription(&sub); err != nil {
		return false, err
	}
	return true, nil
}

// Unsubscribe deletes the subscription row(s) for the (user, post) pair.
func (s *SubscriptionService) Unsubscribe(actor *models.User, postID uint) error {
	post, err := s.posts.GetPostByID(postID)
	if err != nil {
		return err
	}
	if post.Shelter.UserID == actor.ID {
		return ErrForbidden
	}

	return s.subs.DeleteSubscription(actor.ID, postID)
}
