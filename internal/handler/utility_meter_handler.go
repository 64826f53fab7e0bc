package handler

import (
	"net/http"
	"time"

	"kostify-backend/internal/models"
	"kostify-backend/internal/service"
	"kostify-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type UtilityMeterHandler struct {
	utilityService *service.UtilityService
}

func NewUtilityMeterHandler(utilityService *service.UtilityService) *UtilityMeterHandler {
	return &UtilityMeterHandler{
		utilityService: utilityService,
	}
}

type MeterReadingRequest struct {
	RoomID         string    `json:"room_id" binding:"required"`
	MeterType      string    `json:"meter_type" binding:"required,oneof=listrik air"`
	ReadingDate    time.Time `json:"reading_date" binding:"required"`
	CurrentReading float64   `json:"current_reading" binding:"required,min=0"`
	CostPerUnit    float64   `json:"cost_per_unit" binding:"required,gt=0"`
	Notes          string    `json:"notes"`
}

// List retrieves meter readings, optionally filtered by room
func (h *UtilityMeterHandler) List(c *gin.Context) {
	meters, err := h.utilityService.List(ownerID(c), c.Query("room_id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch meter readings")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"meters": meters,
		"count":  len(meters),
	})
}

// Create records a meter reading. The previous reading is resolved from
// the latest entry for the same room and meter type, and total cost is
// computed once here.
func (h *UtilityMeterHandler) Create(c *gin.Context) {
	var req MeterReadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	meter := models.UtilityMeter{
		RoomID:         req.RoomID,
		MeterType:      req.MeterType,
		ReadingDate:    req.ReadingDate,
		CurrentReading: req.CurrentReading,
		CostPerUnit:    req.CostPerUnit,
		Notes:          req.Notes,
	}

	if err := h.utilityService.Create(ownerID(c), userID(c), &meter); err != nil {
		if err.Error() == "room not found" {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		} else {
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		}
		return
	}

	utils.CreatedResponse(c, meter)
}
