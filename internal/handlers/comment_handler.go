package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rayagrigorova/pawfinder/internal/models"
	"github.com/rayagrigorova/pawfinder/internal/repositories"
	"github.com/rayagrigorova/pawfinder/internal/services"
	"gorm.io/gorm"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	commentService *services.CommentService
	userRepository repositories.UserRepository
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentService *services.CommentService, userRepo repositories.UserRepository) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		userRepository: userRepo,
	}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/dogs/:id/comments", h.CreateComment)
	g.PUT("/dogs/:id/comments/:commentID", h.UpdateComment)
	g.DELETE("/dogs/:id/comments/:commentID", h.DeleteComment)
}

func (h *CommentHandler) currentUser(c echo.Context) (*models.User, error) {
	userID := getUserIDFromContext(c)
	if userID == 0 {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	user, err := h.userRepository.GetUserByID(userID)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "User not found")
	}
	return user, nil
}

func parseCommentID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("commentID"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid comment ID")
	}
	return uint(id), nil
}

// CreateComment creates a new comment on a post
func (h *CommentHandler) CreateComment(c echo.Context) error {
	user, err := h.currentUser(c)
	if err != nil {
		return err
	}

	postID, err := parsePostID(c)
	if err != nil {
		return err
	}

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, err := h.commentService.CreateComment(user, postID, req.Content)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, comment)
}

// UpdateComment edits a comment; only its author may do so
func (h *CommentHandler) UpdateComment(c echo.Context) error {
	user, err := h.currentUser(c)
	if err != nil {
		return err
	}

	commentID, err := parseCommentID(c)
	if err != nil {
		return err
	}

	var req models.UpdateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, err := h.commentService.UpdateComment(user, commentID, req.Content)
	if errors.Is(err, services.ErrForbidden) {
		return echo.NewHTTPError(http.StatusForbidden, "You can only edit your own comments.")
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Comment not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, comment)
}

// DeleteComment removes a comment; only its author may do so
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	user, err := h.currentUser(c)
	if err != nil {
		return err
	}

	commentID, err := parseCommentID(c)
	if err != nil {
		return err
	}

	err = h.commentService.DeleteComment(user, commentID)
	if errors.Is(err, services.ErrForbidden) {
		return echo.NewHTTPError(http.StatusForbidden, "You can only delete your own comments.")
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Comment not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
