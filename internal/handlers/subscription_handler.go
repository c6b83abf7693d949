package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rayagrigorova/pawfinder/internal/repositories"
	"github.com/rayagrigorova/pawfinder/internal/services"
	"gorm.io/gorm"
)

// SubscriptionHandler handles post subscription HTTP requests
type SubscriptionHandler struct {
	subscriptionService *services.SubscriptionService
	userRepository      repositories.UserRepository
}

// NewSubscriptionHandler creates a new SubscriptionHandler
func NewSubscriptionHandler(subService *services.SubscriptionService, userRepo repositories.UserRepository) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionService: subService,
		userRepository:      userRepo,
	}
}

// RegisterSubscriptionRoutes registers subscription routes
func (h *SubscriptionHandler) RegisterSubscriptionRoutes(g *echo.Group) {
	g.POST("/dogs/:id/subscribe", h.Subscribe)
	g.DELETE("/dogs/:id/subscribe", h.Unsubscribe)
}

// Subscribe starts watching a post for stage changes
func (h *SubscriptionHandler) Subscribe(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	postID, err := parsePostID(c)
	if err != nil {
		return err
	}

	user, err := h.userRepository.GetUserByID(currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not found")
	}

	created, err := h.subscriptionService.Subscribe(user, postID)
	if errors.Is(err, services.ErrForbidden) {
		return echo.NewHTTPError(http.StatusForbidden, "You cannot subscribe to your own post.")
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"subscribed": true, "created": created}})
}

// Unsubscribe stops watching a post
func (h *SubscriptionHandler) Unsubscribe(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	postID, err := parsePostID(c)
	if err != nil {
		return err
	}

	user, err := h.userRepository.GetUserByID(currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not found")
	}

	err = h.subscriptionService.Unsubscribe(user, postID)
	if errors.Is(err, services.ErrForbidden) {
		return echo.NewHTTPError(http.StatusForbidden, "You cannot unsubscribe from your own post.")
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"subscribed": false}})
}
