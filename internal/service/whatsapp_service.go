package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"kostify-backend/internal/integration/whatsapp"
	"kostify-backend/internal/models"
	"kostify-backend/internal/repository"
)

type WhatsAppService struct {
	gateway      whatsapp.Gateway
	tenantRepo   *repository.TenantRepository
	whatsappRepo *repository.WhatsAppRepository
	auditRepo    *repository.AuditRepository
}

func NewWhatsAppService(
	gateway whatsapp.Gateway,
	tenantRepo *repository.TenantRepository,
	whatsappRepo *repository.WhatsAppRepository,
	auditRepo *repository.AuditRepository,
) *WhatsAppService {
	return &WhatsAppService{
		gateway:      gateway,
		tenantRepo:   tenantRepo,
		whatsappRepo: whatsappRepo,
		auditRepo:    auditRepo,
	}
}

// Connect opens a gateway session and returns the resulting status
func (s *WhatsAppService) Connect(ctx context.Context, actorID string) (string, error) {
	status, err := s.gateway.Connect(ctx)
	if err != nil {
		return whatsapp.StatusDisconnected, fmt.Errorf("failed to connect gateway: %w", err)
	}

	_ = s.auditRepo.CreateAuditLog(&actorID, "whatsapp_connect", "Gateway session requested")

	return status, nil
}

// Status reports the gateway session status
func (s *WhatsAppService) Status(ctx context.Context) (string, error) {
	return s.gateway.SessionStatus(ctx)
}

// BroadcastResult reports the outcome per recipient.
type BroadcastResult struct {
	TenantID  string `json:"tenant_id"`
	Recipient string `json:"recipient"`
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
}

// Broadcast sends one message to each selected tenant. Delivery failures
// are recorded per recipient instead of aborting the batch; every attempt
// is logged with the gateway's receipt.
func (s *WhatsAppService) Broadcast(ctx context.Context, ownerID, actorID string, tenantIDs []string, body string) ([]BroadcastResult, error) {
	results := make([]BroadcastResult, 0, len(tenantIDs))

	for _, tenantID := range tenantIDs {
		tenant, err := s.tenantRepo.GetByID(ownerID, tenantID)
		if err != nil {
			results = append(results, BroadcastResult{TenantID: tenantID, Status: "failed", Error: "tenant not found"})
			continue
		}

		result := BroadcastResult{TenantID: tenantID, Recipient: tenant.Phone}
		receipt, err := s.gateway.SendMessage(ctx, tenant.Phone, body)
		msg := &models.WhatsAppMessage{
			OwnerID:   ownerID,
			TenantID:  tenantID,
			Recipient: tenant.Phone,
			Body:      body,
			SentAt:    time.Now().UTC(),
		}
		if err != nil {
			result.Status = "failed"
			result.Error = err.Error()
			msg.Status = "failed"
		} else {
			result.Status = receipt.Status
			msg.MessageID = receipt.MessageID
			msg.Status = receipt.Status
		}
		if err := s.whatsappRepo.CreateMessage(msg); err != nil {
			log.Printf("Failed to log whatsapp message for tenant %s: %v", tenantID, err)
		}
		results = append(results, result)
	}

	details := fmt.Sprintf("Broadcast to %d tenants", len(tenantIDs))
	_ = s.auditRepo.CreateAuditLog(&actorID, "whatsapp_broadcast", details)

	return results, nil
}

// History retrieves the owner's message log
func (s *WhatsAppService) History(ownerID string) ([]models.WhatsAppMessage, error) {
	return s.whatsappRepo.ListMessagesByOwner(ownerID)
}
