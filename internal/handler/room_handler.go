package handler

import (
	"net/http"

	"kostify-backend/internal/middleware"
	"kostify-backend/internal/models"
	"kostify-backend/internal/service"
	"kostify-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	roomService *service.RoomService
}

func NewRoomHandler(roomService *service.RoomService) *RoomHandler {
	return &RoomHandler{
		roomService: roomService,
	}
}

type RoomRequest struct {
	PropertyID string   `json:"property_id" binding:"required"`
	RoomNumber string   `json:"room_number" binding:"required"`
	RoomType   string   `json:"room_type"`
	Price      float64  `json:"price" binding:"required,min=0"`
	Status     string   `json:"status" binding:"omitempty,oneof=available occupied maintenance"`
	Facilities []string `json:"facilities"`
}

// List retrieves rooms, optionally filtered by property
func (h *RoomHandler) List(c *gin.Context) {
	propertyID, ok := middleware.PropertyScope(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusForbidden, "Property outside your scope")
		return
	}

	rooms, err := h.roomService.List(ownerID(c), propertyID)
	if err != nil {
		if err.Error() == "property not found" {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		} else {
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch rooms")
		}
		return
	}

	utils.SuccessResponse(c, gin.H{
		"rooms": rooms,
		"count": len(rooms),
	})
}

// Create creates a new room
func (h *RoomHandler) Create(c *gin.Context) {
	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	room := models.Room{
		PropertyID: req.PropertyID,
		RoomNumber: req.RoomNumber,
		RoomType:   req.RoomType,
		Price:      req.Price,
		Status:     req.Status,
		Facilities: req.Facilities,
	}

	if err := h.roomService.Create(ownerID(c), userID(c), &room); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.CreatedResponse(c, room)
}

// Update updates an existing room
func (h *RoomHandler) Update(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	room.ID = c.Param("id")

	if err := h.roomService.Update(ownerID(c), userID(c), &room); err != nil {
		if err.Error() == "room not found" {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		} else {
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		}
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Room updated successfully",
		"room":    room,
	})
}

// Delete removes a room
func (h *RoomHandler) Delete(c *gin.Context) {
	if err := h.roomService.Delete(ownerID(c), userID(c), c.Param("id")); err != nil {
		if err.Error() == "room not found" {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		} else {
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		}
		return
	}

	utils.MessageResponse(c, "Room deleted successfully")
}
