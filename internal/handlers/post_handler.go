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

// PostHandler handles adoption post HTTP requests
type PostHandler struct {
	postService       *services.PostService
	postRepository    repositories.PostRepository
	commentRepository repositories.CommentRepository
	userRepository    repositories.UserRepository
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postService *services.PostService, postRepo repositories.PostRepository, commentRepo repositories.CommentRepository, userRepo repositories.UserRepository) *PostHandler {
	return &PostHandler{
		postService:       postService,
		postRepository:    postRepo,
		commentRepository: commentRepo,
		userRepository:    userRepo,
	}
}

// RegisterPostRoutes registers adoption post routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.GET("/dogs", h.ListPosts)
	g.GET("/dogs/archive", h.ListArchive)
	g.GET("/dogs/breeds", h.ListBreeds)
	g.GET("/dogs/:id", h.GetPost)
	g.POST("/dogs", h.CreatePost)
	g.PUT("/dogs/:id", h.UpdatePost)
	g.DELETE("/dogs/:id", h.DeletePost)
}

func (h *PostHandler) currentUser(c echo.Context) (*models.User, error) {
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

func parsePostID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}
	return uint(id), nil
}

// ListPosts returns the main listing: active and in_process posts, filtered
// and sorted by the query parameters shelter, size, breed, gender, sort_by.
func (h *PostHandler) ListPosts(c echo.Context) error {
	filter := models.PostFilter{
		Size:   c.QueryParam("size"),
		Breed:  c.QueryParam("breed"),
		Gender: c.QueryParam("gender"),
		SortBy: c.QueryParam("sort_by"),
	}
	if shelterParam := c.QueryParam("shelter"); shelterParam != "" {
		shelterID, err := strconv.ParseUint(shelterParam, 10, 32)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid shelter ID")
		}
		filter.ShelterID = uint(shelterID)
	}

	posts, err := h.postRepository.QueryPosts(filter)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"dogs": posts}})
}

// ListArchive returns completed posts only.
func (h *PostHandler) ListArchive(c echo.Context) error {
	posts, err := h.postRepository.GetArchivedPosts()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"dogs": posts}})
}

// ListBreeds returns the live distinct set of breeds for the filter UI.
func (h *PostHandler) ListBreeds(c echo.Context) error {
	breeds, err := h.postRepository.GetDistinctBreeds()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"breeds": breeds}})
}

// GetPost returns a post's detail page data, comments included.
func (h *PostHandler) GetPost(c echo.Context) error {
	postID, err := parsePostID(c)
	if err != nil {
		return err
	}

	post, err := h.postRepository.GetPostByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	comments, err := h.commentRepository.GetCommentsByPostID(postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"dog": post, "comments": comments}})
}

// CreatePost creates a new adoption post owned by the acting shelter
func (h *PostHandler) CreatePost(c echo.Context) error {
	user, err := h.currentUser(c)
	if err != nil {
		return err
	}

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.postService.CreatePost(user, req)
	if errors.Is(err, services.ErrForbidden) {
		return echo.NewHTTPError(http.StatusForbidden, "You do not have permission to create a post.")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, post)
}

// UpdatePost edits a post owned by the acting shelter
func (h *PostHandler) UpdatePost(c echo.Context) error {
	user, err := h.currentUser(c)
	if err != nil {
		return err
	}

	postID, err := parsePostID(c)
	if err != nil {
		return err
	}

	var req models.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.postService.UpdatePost(user, postID, req)
	if errors.Is(err, services.ErrForbidden) {
		return echo.NewHTTPError(http.StatusForbidden, "You do not have permission to edit this post.")
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, post)
}

// DeletePost removes a post owned by the acting shelter
func (h *PostHandler) DeletePost(c echo.Context) error {
	user, err := h.currentUser(c)
	if err != nil {
		return err
	}

	postID, err := parsePostID(c)
	if err != nil {
		return err
	}

	err = h.postService.DeletePost(user, postID)
	if errors.Is(err, services.ErrForbidden) {
		return echo.NewHTTPError(http.StatusForbidden, "You do not have permission to delete this post.")
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
