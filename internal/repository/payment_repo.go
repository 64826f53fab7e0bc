package repository

import (
	"errors"

	"kostify-backend/internal/models"

	"gorm.io/gorm"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepo(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// List retrieves payments for an owner, optionally narrowed to one property
func (r *PaymentRepository) List(ownerID, propertyID string) ([]models.Payment, error) {
	var payments []models.Payment
	err := scopeProperty(r.db.Model(&models.Payment{}), "payments", ownerID, propertyID).
		Order("payments.payment_date DESC").
		Find(&payments).Error
	return payments, err
}

// GetByID retrieves a payment in the owner's scope
func (r *PaymentRepository) GetByID(ownerID, id string) (*models.Payment, error) {
	var payment models.Payment
	err := scopeProperty(r.db.Model(&models.Payment{}), "payments", ownerID, "").
		Where("payments.id = ?", id).
		First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("payment not found")
		}
		return nil, err
	}
	return &payment, nil
}

// Create creates a new payment
func (r *PaymentRepository) Create(payment *models.Payment) error {
	return r.db.Create(payment).Error
}

// ownedProperties returns a subquery of the owner's property IDs, used to
// bound by-ID writes the same way scopeProperty bounds reads.
func ownedProperties(db *gorm.DB, ownerID string) *gorm.DB {
	return db.Model(&models.Property{}).Select("id").Where("owner_id = ?", ownerID)
}

// UpdateStatus sets a payment's status. Payments outside the owner's scope
// are reported as not found.
func (r *PaymentRepository) UpdateStatus(ownerID, paymentID, status string) error {
	result := r.db.Model(&models.Payment{}).
		Where("id = ? AND property_id IN (?)", paymentID, ownedProperties(r.db, ownerID)).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("payment not found")
	}
	return nil
}

// ApproveWithTenantPaid approves a payment in the owner's scope and marks
// its tenant paid in a single transaction
func (r *PaymentRepository) ApproveWithTenantPaid(ownerID, paymentID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var payment models.Payment
		err := scopeProperty(tx.Model(&models.Payment{}), "payments", ownerID, "").
			Where("payments.id = ?", paymentID).
			First(&payment).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("payment not found")
			}
			return err
		}
		if err := tx.Model(&models.Payment{}).
			Where("id = ?", paymentID).
			Update("status", models.PaymentApproved).Error; err != nil {
			return err
		}
		return tx.Model(&models.Tenant{}).
			Where("id = ?", payment.TenantID).
			Update("payment_status", models.TenantPaid).Error
	})
}
