package handler

import (
	"net/http"

	"kostify-backend/internal/service"
	"kostify-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// FormHandler serves dependent dropdown options for forms that select a
// property, then a room, then a tenant. A missing parent yields a
// disabled, empty option set instead of an error.
type FormHandler struct {
	formService *service.FormService
}

func NewFormHandler(formService *service.FormService) *FormHandler {
	return &FormHandler{
		formService: formService,
	}
}

// RoomOptions returns room choices for the given property
func (h *FormHandler) RoomOptions(c *gin.Context) {
	options, err := h.formService.RoomOptions(ownerID(c), c.Query("property_id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch room options")
		return
	}

	utils.SuccessResponse(c, options)
}

// TenantOptions returns tenant choices for the given room
func (h *FormHandler) TenantOptions(c *gin.Context) {
	options, err := h.formService.TenantOptions(ownerID(c), c.Query("room_id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch tenant options")
		return
	}

	utils.SuccessResponse(c, options)
}
