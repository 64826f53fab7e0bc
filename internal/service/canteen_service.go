package service

import (
	"errors"
	"fmt"
	"time"

	"kostify-backend/internal/models"
	"kostify-backend/internal/repository"
)

type CanteenService struct {
	canteenRepo  *repository.CanteenRepository
	propertyRepo *repository.PropertyRepository
	auditRepo    *repository.AuditRepository
}

func NewCanteenService(
	canteenRepo *repository.CanteenRepository,
	propertyRepo *repository.PropertyRepository,
	auditRepo *repository.AuditRepository,
) *CanteenService {
	return &CanteenService{
		canteenRepo:  canteenRepo,
		propertyRepo: propertyRepo,
		auditRepo:    auditRepo,
	}
}

// ListProducts retrieves canteen products in the owner's scope
func (s *CanteenService) ListProducts(ownerID, propertyID string) ([]models.CanteenProduct, error) {
	return s.canteenRepo.ListProducts(ownerID, propertyID)
}

// CreateProduct adds a product to one of the owner's properties
func (s *CanteenService) CreateProduct(ownerID, actorID string, product *models.CanteenProduct) error {
	if _, err := s.propertyRepo.GetByID(ownerID, product.PropertyID); err != nil {
		return fmt.Errorf("property not found: %w", err)
	}

	product.IsAvailable = product.Stock > 0

	if err := s.canteenRepo.CreateProduct(product); err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	details := fmt.Sprintf("Created canteen product %s", product.Name)
	_ = s.auditRepo.CreateAuditLog(&actorID, "canteen_product_create", details)

	return nil
}

// UpdateProduct persists changes to a product in the owner's scope
func (s *CanteenService) UpdateProduct(ownerID, actorID string, product *models.CanteenProduct) error {
	if _, err := s.canteenRepo.GetProductByID(ownerID, product.ID); err != nil {
		return err
	}

	product.IsAvailable = product.Stock > 0

	if err := s.canteenRepo.UpdateProduct(product); err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	details := fmt.Sprintf("Updated canteen product %s (%s)", product.Name, product.ID)
	_ = s.auditRepo.CreateAuditLog(&actorID, "canteen_product_update", details)

	return nil
}

// DeleteProduct removes a product in the owner's scope
func (s *CanteenService) DeleteProduct(ownerID, actorID, productID string) error {
	if _, err := s.canteenRepo.GetProductByID(ownerID, productID); err != nil {
		return err
	}

	if err := s.canteenRepo.DeleteProduct(productID); err != nil {
		return err
	}

	details := fmt.Sprintf("Deleted canteen product %s", productID)
	_ = s.auditRepo.CreateAuditLog(&actorID, "canteen_product_delete", details)

	return nil
}

// CreateTransaction records a sale against a product in the owner's scope.
// The total price is always the product's current price times quantity,
// computed here; the stock decrement happens transactionally in the
// repository so concurrent sales cannot oversell.
func (s *CanteenService) CreateTransaction(ownerID, actorID string, trx *models.CanteenTransaction) error {
	if trx.Quantity <= 0 {
		return errors.New("quantity must be positive")
	}

	product, err := s.canteenRepo.GetProductByID(ownerID, trx.ProductID)
	if err != nil {
		return err
	}
	if trx.Quantity > product.Stock {
		return repository.ErrInsufficientStock
	}

	trx.PropertyID = product.PropertyID
	trx.TotalPrice = product.Price * float64(trx.Quantity)
	if trx.TransactionDate.IsZero() {
		trx.TransactionDate = time.Now().UTC()
	}

	if err := s.canteenRepo.CreateTransactionWithStock(trx); err != nil {
		if errors.Is(err, repository.ErrInsufficientStock) {
			return err
		}
		return fmt.Errorf("failed to record transaction: %w", err)
	}

	details := fmt.Sprintf("Sold %d x %s for %.0f", trx.Quantity, product.Name, trx.TotalPrice)
	_ = s.auditRepo.CreateAuditLog(&actorID, "canteen_sale", details)

	return nil
}

// ListTransactions retrieves canteen transactions in the owner's scope
func (s *CanteenService) ListTransactions(ownerID, propertyID string) ([]models.CanteenTransaction, error) {
	return s.canteenRepo.ListTransactions(ownerID, propertyID)
}

// SalesReport summarizes canteen performance
type SalesReport struct {
	TotalRevenue      float64                   `json:"total_revenue"`
	TotalTransactions int64                     `json:"total_transactions"`
	TopProducts       []repository.ProductSales `json:"top_products"`
}

// GetSalesReport aggregates revenue, transaction count and best sellers
func (s *CanteenService) GetSalesReport(ownerID, propertyID string) (*SalesReport, error) {
	revenue, err := s.canteenRepo.SumRevenue(ownerID, propertyID)
	if err != nil {
		return nil, err
	}
	count, err := s.canteenRepo.CountTransactions(ownerID, propertyID)
	if err != nil {
		return nil, err
	}
	top, err := s.canteenRepo.TopProducts(ownerID, propertyID, 5)
	if err != nil {
		return nil, err
	}

	return &SalesReport{
		TotalRevenue:      revenue,
		TotalTransactions: count,
		TopProducts:       top,
	}, nil
}
