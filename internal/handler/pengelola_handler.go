package handler

import (
	"net/http"

	"kostify-backend/internal/models"
	"kostify-backend/internal/service"
	"kostify-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type PengelolaHandler struct {
	pengelolaService *service.PengelolaService
}

func NewPengelolaHandler(pengelolaService *service.PengelolaService) *PengelolaHandler {
	return &PengelolaHandler{
		pengelolaService: pengelolaService,
	}
}

type CreatePengelolaRequest struct {
	Email       string   `json:"email" binding:"required,email"`
	Password    string   `json:"password" binding:"required,min=6"`
	FullName    string   `json:"full_name" binding:"required"`
	Phone       string   `json:"phone"`
	PropertyID  *string  `json:"property_id"`
	Permissions []string `json:"permissions"`
}

type UpdatePengelolaRequest struct {
	FullName    string   `json:"full_name" binding:"required"`
	Phone       string   `json:"phone"`
	PropertyID  *string  `json:"property_id"`
	Permissions []string `json:"permissions"`
	IsActive    *bool    `json:"is_active"`
}

// List retrieves the owner's pengelola accounts
func (h *PengelolaHandler) List(c *gin.Context) {
	pengelola, err := h.pengelolaService.List(ownerID(c))
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch pengelola")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"pengelola": pengelola,
		"count":     len(pengelola),
	})
}

// Create invites a pengelola scoped to the owner's properties
func (h *PengelolaHandler) Create(c *gin.Context) {
	var req CreatePengelolaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	pengelola, err := h.pengelolaService.Create(
		ownerID(c), req.Email, req.Password, req.FullName, req.Phone,
		req.PropertyID, req.Permissions,
	)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.CreatedResponse(c, pengelola)
}

// Update changes a pengelola's profile, property scope or permissions
func (h *PengelolaHandler) Update(c *gin.Context) {
	var req UpdatePengelolaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	pengelola := models.User{
		ID:          c.Param("id"),
		FullName:    req.FullName,
		Phone:       req.Phone,
		PropertyID:  req.PropertyID,
		Permissions: req.Permissions,
	}
	if req.IsActive != nil {
		pengelola.IsActive = *req.IsActive
	} else {
		pengelola.IsActive = true
	}

	if err := h.pengelolaService.Update(ownerID(c), &pengelola); err != nil {
		if err.Error() == "pengelola not found" {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		} else {
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		}
		return
	}

	utils.MessageResponse(c, "Pengelola updated successfully")
}

// Delete removes a pengelola account
func (h *PengelolaHandler) Delete(c *gin.Context) {
	if err := h.pengelolaService.Delete(ownerID(c), c.Param("id")); err != nil {
		if err.Error() == "pengelola not found" {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		} else {
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		}
		return
	}

	utils.MessageResponse(c, "Pengelola deleted successfully")
}
