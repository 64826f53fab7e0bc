package handler

import (
	"net/http"

	"kostify-backend/internal/models"
	"kostify-backend/internal/service"
	"kostify-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type PropertyHandler struct {
	propertyService *service.PropertyService
}

func NewPropertyHandler(propertyService *service.PropertyService) *PropertyHandler {
	return &PropertyHandler{
		propertyService: propertyService,
	}
}

type PropertyRequest struct {
	Name        string   `json:"name" binding:"required"`
	Address     string   `json:"address" binding:"required"`
	TotalRooms  int      `json:"total_rooms" binding:"required,min=1"`
	Description string   `json:"description"`
	Facilities  []string `json:"facilities"`
}

// List retrieves the owner's properties
func (h *PropertyHandler) List(c *gin.Context) {
	properties, err := h.propertyService.List(ownerID(c))
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch properties")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"properties": properties,
		"count":      len(properties),
	})
}

// Get retrieves a single property
func (h *PropertyHandler) Get(c *gin.Context) {
	property, err := h.propertyService.Get(ownerID(c), c.Param("id"))
	if err != nil {
		if err.Error() == "property not found" {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		} else {
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch property")
		}
		return
	}

	utils.SuccessResponse(c, property)
}

// Create creates a new property
func (h *PropertyHandler) Create(c *gin.Context) {
	var req PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	property := models.Property{
		Name:        req.Name,
		Address:     req.Address,
		TotalRooms:  req.TotalRooms,
		Description: req.Description,
		Facilities:  req.Facilities,
	}

	if err := h.propertyService.Create(ownerID(c), userID(c), &property); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.CreatedResponse(c, property)
}

// Update updates an existing property
func (h *PropertyHandler) Update(c *gin.Context) {
	var req PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	property := models.Property{
		ID:          c.Param("id"),
		Name:        req.Name,
		Address:     req.Address,
		TotalRooms:  req.TotalRooms,
		Description: req.Description,
		Facilities:  req.Facilities,
	}

	if err := h.propertyService.Update(ownerID(c), userID(c), &property); err != nil {
		if err.Error() == "property not found" {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		} else {
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		}
		return
	}

	utils.MessageResponse(c, "Property updated successfully")
}

// Delete removes a property
func (h *PropertyHandler) Delete(c *gin.Context) {
	if err := h.propertyService.Delete(ownerID(c), userID(c), c.Param("id")); err != nil {
		if err.Error() == "property not found" {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		} else {
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		}
		return
	}

	utils.MessageResponse(c, "Property deleted successfully")
}
