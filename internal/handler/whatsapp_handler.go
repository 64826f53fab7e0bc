package handler

import (
	"net/http"

	"kostify-backend/internal/service"
	"kostify-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type WhatsAppHandler struct {
	whatsappService *service.WhatsAppService
}

func NewWhatsAppHandler(whatsappService *service.WhatsAppService) *WhatsAppHandler {
	return &WhatsAppHandler{
		whatsappService: whatsappService,
	}
}

type BroadcastRequest struct {
	TenantIDs []string `json:"tenant_ids" binding:"required,min=1"`
	Message   string   `json:"message" binding:"required"`
}

// Connect starts a WhatsApp session against the gateway
func (h *WhatsAppHandler) Connect(c *gin.Context) {
	status, err := h.whatsappService.Connect(c.Request.Context(), userID(c))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadGateway, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"status": status,
	})
}

// Status reports the current gateway session state
func (h *WhatsAppHandler) Status(c *gin.Context) {
	status, err := h.whatsappService.Status(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadGateway, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"status": status,
	})
}

// Broadcast sends a message to the selected tenants, reporting
// per-recipient results
func (h *WhatsAppHandler) Broadcast(c *gin.Context) {
	var req BroadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	results, err := h.whatsappService.Broadcast(
		c.Request.Context(), ownerID(c), userID(c), req.TenantIDs, req.Message,
	)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"results": results,
		"count":   len(results),
	})
}

// History lists previously sent messages
func (h *WhatsAppHandler) History(c *gin.Context) {
	messages, err := h.whatsappService.History(ownerID(c))
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch message history")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"messages": messages,
		"count":    len(messages),
	})
}
