package service

import (
	"errors"
	"fmt"

	"kostify-backend/internal/integration/billing"
	"kostify-backend/internal/models"
	"kostify-backend/internal/repository"
)

type PaymentService struct {
	paymentRepo *repository.PaymentRepository
	tenantRepo  *repository.TenantRepository
	auditRepo   *repository.AuditRepository
	linker      billing.PaymentLinker
}

func NewPaymentService(
	paymentRepo *repository.PaymentRepository,
	tenantRepo *repository.TenantRepository,
	auditRepo *repository.AuditRepository,
	linker billing.PaymentLinker,
) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		tenantRepo:  tenantRepo,
		auditRepo:   auditRepo,
		linker:      linker,
	}
}

// List retrieves payments in the owner's scope, optionally narrowed to one
// property
func (s *PaymentService) List(ownerID, propertyID string) ([]models.Payment, error) {
	return s.paymentRepo.List(ownerID, propertyID)
}

// Create records a rent payment awaiting approval. The tenant must exist in
// the owner's scope and the payment is pinned to the tenant's property and
// room.
func (s *PaymentService) Create(ownerID, actorID string, payment *models.Payment) error {
	tenant, err := s.tenantRepo.GetByID(ownerID, payment.TenantID)
	if err != nil {
		return fmt.Errorf("tenant not found: %w", err)
	}

	payment.PropertyID = tenant.PropertyID
	payment.RoomID = tenant.RoomID
	if payment.Status == "" {
		payment.Status = models.PaymentPending
	}

	if err := s.paymentRepo.Create(payment); err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}

	details := fmt.Sprintf("Recorded payment of %.0f for tenant %s", payment.Amount, payment.TenantID)
	_ = s.auditRepo.CreateAuditLog(&actorID, "payment_create", details)

	return nil
}

// Approve marks a payment in the owner's scope approved and its tenant paid
func (s *PaymentService) Approve(ownerID, actorID, paymentID string) error {
	if err := s.paymentRepo.ApproveWithTenantPaid(ownerID, paymentID); err != nil {
		return err
	}

	details := fmt.Sprintf("Approved payment %s", paymentID)
	_ = s.auditRepo.CreateAuditLog(&actorID, "payment_approve", details)

	return nil
}

// Reject marks a payment in the owner's scope rejected
func (s *PaymentService) Reject(ownerID, actorID, paymentID string) error {
	if err := s.paymentRepo.UpdateStatus(ownerID, paymentID, models.PaymentRejected); err != nil {
		return err
	}

	details := fmt.Sprintf("Rejected payment %s", paymentID)
	_ = s.auditRepo.CreateAuditLog(&actorID, "payment_reject", details)

	return nil
}

// CreatePaymentLink registers a pending payment with the payment gateway
// and returns the hosted payment URL
func (s *PaymentService) CreatePaymentLink(ownerID, paymentID string) (string, error) {
	payment, err := s.paymentRepo.GetByID(ownerID, paymentID)
	if err != nil {
		return "", err
	}
	if payment.Status != models.PaymentPending {
		return "", errors.New("payment link is only available for pending payments")
	}

	tenant, err := s.tenantRepo.GetByID(ownerID, payment.TenantID)
	if err != nil {
		return "", fmt.Errorf("tenant not found: %w", err)
	}

	url, err := s.linker.CreatePaymentLink(payment, tenant)
	if err != nil {
		return "", fmt.Errorf("failed to create payment link: %w", err)
	}
	return url, nil
}
