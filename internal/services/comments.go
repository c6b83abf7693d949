package services

import (
	"github.com/rayagrigorova/pawfinder/internal/models"
	"github.com/rayagrigorova/pawfinder/internal/repositories"
)

// CommentService handles comment CRUD. Any authenticated user may comment;
// editing and deleting are author-only.
type CommentService struct {
	posts    repositories.PostRepository
	comments repositories.CommentRepository
}

func NewCommentService(posts repositories.PostRepository, comments repositories.CommentRepository) *CommentService {
	return &CommentService{posts: posts, comments: comments}
}

func (s *CommentService) CreateComment(actor *models.User, postID uint, content string) (*models.Comment, error) {
	post, err := s.posts.GetPostByID(postID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:  post.ID,
		UserID:  actor.ID,
		Content: content,
	}
	if err := s.comments.CreateComment(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) UpdateComment(actor *models.User, commentID uint, content string) (*models.Comment, error) {
	comment, err := s.comments.GetCommentByID(commentID)
	if err != nil {
		return nil, err
	}
	if comment.UserID != actor.ID {
		return nil, ErrForbidden
	}

	comment.Content = content
	if err := s.comments.UpdateComment(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) DeleteComment(actor *models.User, commentID uint) error {
	comment, err := s.comments.GetCommentByID(commentID)
	if err != nil {
		return err
	}
	if comment.UserID != actor.ID {
		return ErrForbidden
	}
	return s.comments.DeleteComment(comment.ID)
}
