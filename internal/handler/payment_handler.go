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

type PaymentHandler struct {
	paymentService *service.PaymentService
}

func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

type PaymentRequest struct {
	TenantID      string    `json:"tenant_id" binding:"required"`
	Amount        float64   `json:"amount" binding:"required,gt=0"`
	PaymentDate   time.Time `json:"payment_date" binding:"required"`
	PaymentMethod string    `json:"payment_method"`
	ProofURL      string    `json:"proof_url"`
	Notes         string    `json:"notes"`
}

// List retrieves payments, optionally filtered by property
func (h *PaymentHandler) List(c *gin.Context) {
	propertyID, ok := middleware.PropertyScope(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusForbidden, "Property outside your scope")
		return
	}

	payments, err := h.paymentService.List(ownerID(c), propertyID)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch payments")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"payments": payments,
		"count":    len(payments),
	})
}

// Create records a rent payment pending approval
func (h *PaymentHandler) Create(c *gin.Context) {
	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	payment := models.Payment{
		TenantID:      req.TenantID,
		Amount:        req.Amount,
		PaymentDate:   req.PaymentDate,
		PaymentMethod: req.PaymentMethod,
		ProofURL:      req.ProofURL,
		Notes:         req.Notes,
	}

	if err := h.paymentService.Create(ownerID(c), userID(c), &payment); err != nil {
		if err.Error() == "tenant not found" {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		} else {
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		}
		return
	}

	utils.CreatedResponse(c, payment)
}

// Approve marks a pending payment approved and the tenant as paid
func (h *PaymentHandler) Approve(c *gin.Context) {
	if err := h.paymentService.Approve(ownerID(c), userID(c), c.Param("id")); err != nil {
		if err.Error() == "payment not found" {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		} else {
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		}
		return
	}

	utils.MessageResponse(c, "Payment approved")
}

// Reject marks a pending payment rejected
func (h *PaymentHandler) Reject(c *gin.Context) {
	if err := h.paymentService.Reject(ownerID(c), userID(c), c.Param("id")); err != nil {
		if err.Error() == "payment not found" {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		} else {
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		}
		return
	}

	utils.MessageResponse(c, "Payment rejected")
}

// PaymentLink creates a Midtrans payment link for a pending payment
func (h *PaymentHandler) PaymentLink(c *gin.Context) {
	url, err := h.paymentService.CreatePaymentLink(ownerID(c), c.Param("id"))
	if err != nil {
		if err.Error() == "payment not found" {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		} else {
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		}
		return
	}

	utils.SuccessResponse(c, gin.H{
		"payment_url": url,
	})
}
