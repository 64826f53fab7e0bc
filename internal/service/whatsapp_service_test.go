package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"kostify-backend/internal/integration/whatsapp"
	"kostify-backend/internal/models"
	"kostify-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) Connect(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockGateway) SessionStatus(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockGateway) SendMessage(ctx context.Context, recipient, body string) (*whatsapp.Receipt, error) {
	args := m.Called(ctx, recipient, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*whatsapp.Receipt), args.Error(1)
}

func setupWhatsAppService(t *testing.T) (*WhatsAppService, *MockGateway, *models.Tenant) {
	db := testDB(t)
	property, room := seedProperty(t, db, "owner-1")

	tenantRepo := repository.NewTenantRepo(db)
	tenant := &models.Tenant{
		PropertyID:  property.ID,
		RoomID:      room.ID,
		FullName:    "Budi Santoso",
		Email:       "budi@example.com",
		Phone:       "08123456789",
		CheckInDate: time.Now().UTC(),
	}
	require.NoError(t, tenantRepo.CreateWithRoomOccupied(tenant))

	gateway := new(MockGateway)
	svc := NewWhatsAppService(
		gateway,
		tenantRepo,
		repository.NewWhatsAppRepo(db),
		repository.NewAuditRepo(db),
	)
	return svc, gateway, tenant
}

func TestBroadcastReportsPerRecipient(t *testing.T) {
	svc, gateway, tenant := setupWhatsAppService(t)

	gateway.On("SendMessage", mock.Anything, tenant.Phone, "Rent is due").
		Return(&whatsapp.Receipt{MessageID: "wamid-1", Status: "sent"}, nil)

	results, err := svc.Broadcast(context.Background(), "owner-1", "owner-1",
		[]string{tenant.ID, "no-such-tenant"}, "Rent is due")
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "sent", results[0].Status)
	assert.Equal(t, tenant.Phone, results[0].Recipient)

	// An unknown tenant fails its own slot without aborting the batch
	assert.Equal(t, "failed", results[1].Status)
	assert.Equal(t, "tenant not found", results[1].Error)

	// The delivered message is logged with the gateway receipt
	history, err := svc.History("owner-1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "wamid-1", history[0].MessageID)
	assert.Equal(t, "sent", history[0].Status)
}

func TestBroadcastLogsGatewayFailures(t *testing.T) {
	svc, gateway, tenant := setupWhatsAppService(t)

	gateway.On("SendMessage", mock.Anything, tenant.Phone, "Rent is due").
		Return(nil, errors.New("session disconnected"))

	results, err := svc.Broadcast(context.Background(), "owner-1", "owner-1",
		[]string{tenant.ID}, "Rent is due")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "failed", results[0].Status)
	assert.Equal(t, "session disconnected", results[0].Error)

	history, err := svc.History("owner-1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "failed", history[0].Status)
}

func TestConnectAndStatus(t *testing.T) {
	svc, gateway, _ := setupWhatsAppService(t)

	gateway.On("Connect", mock.Anything).Return(whatsapp.StatusConnecting, nil)
	gateway.On("SessionStatus", mock.Anything).Return(whatsapp.StatusConnected, nil)

	status, err := svc.Connect(context.Background(), "owner-1")
	require.NoError(t, err)
	assert.Equal(t, whatsapp.StatusConnecting, status)

	status, err = svc.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, whatsapp.StatusConnected, status)
}
