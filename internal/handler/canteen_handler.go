package handler

import (
	"net/http"

	"kostify-backend/internal/middleware"
	"kostify-backend/internal/models"
	"kostify-backend/internal/service"
	"kostify-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type CanteenHandler struct {
	canteenService *service.CanteenService
}

func NewCanteenHandler(canteenService *service.CanteenService) *CanteenHandler {
	return &CanteenHandler{
		canteenService: canteenService,
	}
}

type ProductRequest struct {
	PropertyID string  `json:"property_id" binding:"required"`
	Name       string  `json:"name" binding:"required"`
	Price      float64 `json:"price" binding:"required,gt=0"`
	Stock      int     `json:"stock" binding:"min=0"`
	Category   string  `json:"category"`
	PhotoURL   string  `json:"photo_url"`
}

type TransactionRequest struct {
	ProductID string  `json:"product_id" binding:"required"`
	TenantID  *string `json:"tenant_id"`
	Quantity  int     `json:"quantity" binding:"required,gt=0"`
	Notes     string  `json:"notes"`
}

// ListProducts retrieves canteen products, optionally filtered by property
func (h *CanteenHandler) ListProducts(c *gin.Context) {
	propertyID, ok := middleware.PropertyScope(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusForbidden, "Property outside your scope")
		return
	}

	products, err := h.canteenService.ListProducts(ownerID(c), propertyID)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch products")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"products": products,
		"count":    len(products),
	})
}

// CreateProduct adds a product to a property's canteen
func (h *CanteenHandler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	product := models.CanteenProduct{
		PropertyID: req.PropertyID,
		Name:       req.Name,
		Price:      req.Price,
		Stock:      req.Stock,
		Category:   req.Category,
		PhotoURL:   req.PhotoURL,
	}

	if err := h.canteenService.CreateProduct(ownerID(c), userID(c), &product); err != nil {
		if err.Error() == "property not found" {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		} else {
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		}
		return
	}

	utils.CreatedResponse(c, product)
}

// UpdateProduct updates an existing product
func (h *CanteenHandler) UpdateProduct(c *gin.Context) {
	var product models.CanteenProduct
	if err := c.ShouldBindJSON(&product); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	product.ID = c.Param("id")

	if err := h.canteenService.UpdateProduct(ownerID(c), userID(c), &product); err != nil {
		if err.Error() == "product not found" {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		} else {
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		}
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Product updated successfully",
		"product": product,
	})
}

// DeleteProduct removes a product
func (h *CanteenHandler) DeleteProduct(c *gin.Context) {
	if err := h.canteenService.DeleteProduct(ownerID(c), userID(c), c.Param("id")); err != nil {
		if err.Error() == "product not found" {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		} else {
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		}
		return
	}

	utils.MessageResponse(c, "Product deleted successfully")
}

// CreateTransaction records a canteen sale and decrements stock
func (h *CanteenHandler) CreateTransaction(c *gin.Context) {
	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	trx := models.CanteenTransaction{
		ProductID: req.ProductID,
		TenantID:  req.TenantID,
		Quantity:  req.Quantity,
		Notes:     req.Notes,
	}

	if err := h.canteenService.CreateTransaction(ownerID(c), userID(c), &trx); err != nil {
		switch err.Error() {
		case "product not found":
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		case "insufficient stock":
			utils.ErrorResponse(c, http.StatusConflict, err.Error())
		default:
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		}
		return
	}

	utils.CreatedResponse(c, trx)
}

// ListTransactions retrieves canteen sales
func (h *CanteenHandler) ListTransactions(c *gin.Context) {
	propertyID, ok := middleware.PropertyScope(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusForbidden, "Property outside your scope")
		return
	}

	transactions, err := h.canteenService.ListTransactions(ownerID(c), propertyID)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"transactions": transactions,
		"count":        len(transactions),
	})
}

// SalesReport summarizes revenue, sale count and top products
func (h *CanteenHandler) SalesReport(c *gin.Context) {
	propertyID, ok := middleware.PropertyScope(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusForbidden, "Property outside your scope")
		return
	}

	report, err := h.canteenService.GetSalesReport(ownerID(c), propertyID)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to build sales report")
		return
	}

	utils.SuccessResponse(c, report)
}
