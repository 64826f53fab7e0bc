package handler

import (
	"net/http"
	"time"

	"kostify-backend/internal/middleware"
	"kostify-backend/internal/models"
	"kostify-backend/internal/service"
	"kostify-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type TenantHandler struct {
	tenantService *service.TenantService
}

func NewTenantHandler(tenantService *service.TenantService) *TenantHandler {
	return &TenantHandler{
		tenantService: tenantService,
	}
}

type TenantRequest struct {
	PropertyID    string    `json:"property_id" binding:"required"`
	RoomID        string    `json:"room_id" binding:"required"`
	FullName      string    `json:"full_name" binding:"required"`
	Email         string    `json:"email" binding:"required,email"`
	Phone         string    `json:"phone"`
	IDCardNumber  string    `json:"id_card_number"`
	CheckInDate   time.Time `json:"check_in_date" binding:"required"`
	DepositAmount float64   `json:"deposit_amount"`
}

// List retrieves tenants, optionally filtered by property
func (h *TenantHandler) List(c *gin.Context) {
	propertyID, ok := middleware.PropertyScope(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusForbidden, "Property outside your scope")
		return
	}

	tenants, err := h.tenantService.List(ownerID(c), propertyID)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch tenants")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"tenants": tenants,
		"count":   len(tenants),
	})
}

// Get retrieves a single tenant
func (h *TenantHandler) Get(c *gin.Context) {
	tenant, err := h.tenantService.Get(ownerID(c), c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, "Tenant not found")
		return
	}

	utils.SuccessResponse(c, tenant)
}

// Create registers a new tenant and marks the room occupied
func (h *TenantHandler) Create(c *gin.Context) {
	var req TenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	tenant := models.Tenant{
		PropertyID:    req.PropertyID,
		RoomID:        req.RoomID,
		FullName:      req.FullName,
		Email:         req.Email,
		Phone:         req.Phone,
		IDCardNumber:  req.IDCardNumber,
		CheckInDate:   req.CheckInDate,
		DepositAmount: req.DepositAmount,
	}

	if err := h.tenantService.Create(ownerID(c), userID(c), &tenant); err != nil {
		switch err.Error() {
		case "room not found", "property not found":
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		default:
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		}
		return
	}

	utils.CreatedResponse(c, tenant)
}

// Update updates an existing tenant
func (h *TenantHandler) Update(c *gin.Context) {
	var tenant models.Tenant
	if err := c.ShouldBindJSON(&tenant); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	tenant.ID = c.Param("id")

	if err := h.tenantService.Update(ownerID(c), userID(c), &tenant); err != nil {
		if err.Error() == "tenant not found" {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		} else {
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		}
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Tenant updated successfully",
		"tenant":  tenant,
	})
}
