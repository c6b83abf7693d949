package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rayagrigorova/pawfinder/internal/models"
	"github.com/rayagrigorova/pawfinder/internal/repositories"
	"gorm.io/gorm"
)

// ShelterHandler handles shelter profile HTTP requests
type ShelterHandler struct {
	shelterRepository repositories.ShelterRepository
}

// NewShelterHandler creates a new ShelterHandler
func NewShelterHandler(shelterRepo repositories.ShelterRepository) *ShelterHandler {
	return &ShelterHandler{shelterRepository: shelterRepo}
}

// RegisterShelterRoutes registers shelter routes
func (h *ShelterHandler) RegisterShelterRoutes(g *echo.Group) {
	g.GET("/shelters", h.ListShelters)
	g.GET("/shelters/:id", h.GetShelter)
	g.PUT("/shelters/:id", h.UpdateShelter)
}

// ListShelters returns all shelter profiles
func (h *ShelterHandler) ListShelters(c echo.Context) error {
	shelters, err := h.shelterRepository.GetShelters()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"shelters": shelters}})
}

// GetShelter returns a single shelter profile
func (h *ShelterHandler) GetShelter(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid shelter ID")
	}

	shelter, err := h.shelterRepository.GetShelterByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Shelter not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, shelter)
}

// UpdateShelter edits a shelter profile. Only the owning account may edit.
func (h *ShelterHandler) UpdateShelter(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid shelter ID")
	}

	shelter, err := h.shelterRepository.GetShelterByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Shelter not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if shelter.UserID != currentUserID {
		return echo.NewHTTPError(http.StatusForbidden, "You do not have permission to edit this shelter.")
	}

	var req models.UpdateShelterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	shelter.Name = req.Name
	shelter.WorkingHours = req.WorkingHours
	shelter.Phone = req.Phone
	shelter.Address = req.Address
	shelter.Latitude = req.Latitude
	shelter.Longitude = req.Longitude

	if err := h.shelterRepository.UpdateShelter(shelter); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, shelter)
}
