package repository

import (
	"errors"

	"kostify-backend/internal/models"

	"gorm.io/gorm"
)

type CanteenRepository struct {
	db *gorm.DB
}

func NewCanteenRepo(db *gorm.DB) *CanteenRepository {
	return &CanteenRepository{db: db}
}

// ListProducts retrieves canteen products for an owner, optionally narrowed
// to one property
func (r *CanteenRepository) ListProducts(ownerID, propertyID string) ([]models.CanteenProduct, error) {
	var products []models.CanteenProduct
	err := scopeProperty(r.db.Model(&models.CanteenProduct{}), "canteen_products", ownerID, propertyID).
		Order("canteen_products.name ASC").
		Find(&products).Error
	return products, err
}

// GetProductByID retrieves a canteen product in the owner's scope
func (r *CanteenRepository) GetProductByID(ownerID, id string) (*models.CanteenProduct, error) {
	var product models.CanteenProduct
	err := scopeProperty(r.db.Model(&models.CanteenProduct{}), "canteen_products", ownerID, "").
		Where("canteen_products.id = ?", id).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("product not found")
		}
		return nil, err
	}
	return &product, nil
}

// CreateProduct creates a new canteen product
func (r *CanteenRepository) CreateProduct(product *models.CanteenProduct) error {
	return r.db.Create(product).Error
}

// UpdateProduct persists changes to a canteen product
func (r *CanteenRepository) UpdateProduct(product *models.CanteenProduct) error {
	return r.db.Save(product).Error
}

// DeleteProduct removes a canteen product
func (r *CanteenRepository) DeleteProduct(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.CanteenProduct{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("product not found")
	}
	return nil
}

// ErrInsufficientStock is returned when a sale asks for more units than the
// product currently holds.
var ErrInsufficientStock = errors.New("insufficient stock")

// CreateTransactionWithStock records a sale and decrements the product's
// stock in a single transaction. The decrement is conditional on the stock
// still covering the quantity, so concurrent sales cannot oversell.
// Availability follows the remaining stock.
func (r *CanteenRepository) CreateTransactionWithStock(trx *models.CanteenTransaction) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(trx).Error; err != nil {
			return err
		}
		result := tx.Model(&models.CanteenProduct{}).
			Where("id = ? AND stock >= ?", trx.ProductID, trx.Quantity).
			Update("stock", gorm.Expr("stock - ?", trx.Quantity))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrInsufficientStock
		}
		return tx.Model(&models.CanteenProduct{}).
			Where("id = ?", trx.ProductID).
			Update("is_available", gorm.Expr("stock > 0")).Error
	})
}

// ListTransactions retrieves canteen transactions for an owner, optionally
// narrowed to one property
func (r *CanteenRepository) ListTransactions(ownerID, propertyID string) ([]models.CanteenTransaction, error) {
	var transactions []models.CanteenTransaction
	err := scopeProperty(r.db.Model(&models.CanteenTransaction{}), "canteen_transactions", ownerID, propertyID).
		Order("canteen_transactions.transaction_date DESC").
		Find(&transactions).Error
	return transactions, err
}

// ProductSales aggregates quantity and revenue per product for the report
type ProductSales struct {
	ProductID     string  `json:"product_id"`
	TotalQuantity int     `json:"total_quantity"`
	TotalRevenue  float64 `json:"total_revenue"`
}

// SumRevenue totals canteen transaction revenue. An empty result set sums
// to zero.
func (r *CanteenRepository) SumRevenue(ownerID, propertyID string) (float64, error) {
	var total float64
	err := scopeProperty(r.db.Model(&models.CanteenTransaction{}), "canteen_transactions", ownerID, propertyID).
		Select("COALESCE(SUM(canteen_transactions.total_price), 0)").
		Scan(&total).Error
	return total, err
}

// CountTransactions counts canteen transactions
func (r *CanteenRepository) CountTransactions(ownerID, propertyID string) (int64, error) {
	var count int64
	err := scopeProperty(r.db.Model(&models.CanteenTransaction{}), "canteen_transactions", ownerID, propertyID).
		Count(&count).Error
	return count, err
}

// TopProducts returns the best-selling products by quantity
func (r *CanteenRepository) TopProducts(ownerID, propertyID string, limit int) ([]ProductSales, error) {
	var sales []ProductSales
	err := scopeProperty(r.db.Model(&models.CanteenTransaction{}), "canteen_transactions", ownerID, propertyID).
		Select("canteen_transactions.product_id AS product_id, SUM(canteen_transactions.quantity) AS total_quantity, SUM(canteen_transactions.total_price) AS total_revenue").
		Group("canteen_transactions.product_id").
		Order("total_quantity DESC").
		Limit(limit).
		Scan(&sales).Error
	return sales, err
}
