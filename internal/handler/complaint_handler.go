package handler

import (
	"net/http"

	"kostify-backend/internal/middleware"
	"kostify-backend/internal/models"
	"kostify-backend/internal/service"
	"kostify-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ComplaintHandler struct {
	complaintService *service.ComplaintService
}

func NewComplaintHandler(complaintService *service.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{
		complaintService: complaintService,
	}
}

type ComplaintRequest struct {
	TenantID    string   `json:"tenant_id" binding:"required"`
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Priority    string   `json:"priority" binding:"omitempty,oneof=low medium high"`
	Photos      []string `json:"photos"`
}

type ComplaintStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=open in_progress resolved"`
}

// List retrieves complaints, optionally filtered by property and status
func (h *ComplaintHandler) List(c *gin.Context) {
	propertyID, ok := middleware.PropertyScope(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusForbidden, "Property outside your scope")
		return
	}

	complaints, err := h.complaintService.List(ownerID(c), propertyID, c.Query("status"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch complaints")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"complaints": complaints,
		"count":      len(complaints),
	})
}

// Create files a complaint on behalf of a tenant
func (h *ComplaintHandler) Create(c *gin.Context) {
	var req ComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	complaint := models.Complaint{
		TenantID:    req.TenantID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Photos:      req.Photos,
	}

	if err := h.complaintService.Create(ownerID(c), userID(c), &complaint); err != nil {
		if err.Error() == "tenant not found" {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		} else {
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		}
		return
	}

	utils.CreatedResponse(c, complaint)
}

// UpdateStatus moves a complaint through its lifecycle
func (h *ComplaintHandler) UpdateStatus(c *gin.Context) {
	var req ComplaintStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := h.complaintService.UpdateStatus(ownerID(c), userID(c), c.Param("id"), req.Status); err != nil {
		if err.Error() == "complaint not found" {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		} else {
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		}
		return
	}

	utils.MessageResponse(c, "Complaint status updated")
}
