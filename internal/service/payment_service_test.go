package service

import (
	"testing"
	"time"

	"kostify-backend/internal/models"
	"kostify-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPaymentLinker struct {
	mock.Mock
}

func (m *MockPaymentLinker) CreatePaymentLink(payment *models.Payment, tenant *models.Tenant) (string, error) {
	args := m.Called(payment, tenant)
	return args.String(0), args.Error(1)
}

func setupPaymentService(t *testing.T) (*PaymentService, *repository.TenantRepository, *MockPaymentLinker, *models.Tenant) {
	db := testDB(t)
	property, room := seedProperty(t, db, "owner-1")

	tenantRepo := repository.NewTenantRepo(db)
	tenant := &models.Tenant{
		PropertyID:    property.ID,
		RoomID:        room.ID,
		FullName:      "Budi Santoso",
		Email:         "budi@example.com",
		CheckInDate:   time.Now().UTC(),
		PaymentStatus: models.TenantUnpaid,
	}
	require.NoError(t, tenantRepo.CreateWithRoomOccupied(tenant))

	linker := new(MockPaymentLinker)
	svc := NewPaymentService(
		repository.NewPaymentRepo(db),
		tenantRepo,
		repository.NewAuditRepo(db),
		linker,
	)
	return svc, tenantRepo, linker, tenant
}

func TestPaymentCreatePinsTenantLocation(t *testing.T) {
	svc, _, _, tenant := setupPaymentService(t)

	payment := &models.Payment{
		TenantID:    tenant.ID,
		Amount:      1500000,
		PaymentDate: time.Now().UTC(),
	}
	require.NoError(t, svc.Create("owner-1", "owner-1", payment))

	// The payment is pinned to the tenant's property and room, whatever
	// the request claimed
	assert.Equal(t, tenant.PropertyID, payment.PropertyID)
	assert.Equal(t, tenant.RoomID, payment.RoomID)
	assert.Equal(t, models.PaymentPending, payment.Status)
}

func TestPaymentApproveMarksTenantPaid(t *testing.T) {
	svc, tenantRepo, _, tenant := setupPaymentService(t)

	payment := &models.Payment{
		TenantID:    tenant.ID,
		Amount:      1500000,
		PaymentDate: time.Now().UTC(),
	}
	require.NoError(t, svc.Create("owner-1", "owner-1", payment))
	require.NoError(t, svc.Approve("owner-1", "owner-1", payment.ID))

	updated, err := tenantRepo.GetByID("owner-1", tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TenantPaid, updated.PaymentStatus)
}

func TestPaymentApproveOutsideOwnerScope(t *testing.T) {
	svc, tenantRepo, _, tenant := setupPaymentService(t)

	payment := &models.Payment{
		TenantID:    tenant.ID,
		Amount:      1500000,
		PaymentDate: time.Now().UTC(),
	}
	require.NoError(t, svc.Create("owner-1", "owner-1", payment))

	// Another owner cannot approve or reject a payment they do not hold
	assert.EqualError(t, svc.Approve("owner-2", "owner-2", payment.ID), "payment not found")
	assert.EqualError(t, svc.Reject("owner-2", "owner-2", payment.ID), "payment not found")

	payments, err := svc.List("owner-1", "")
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, models.PaymentPending, payments[0].Status)

	unchanged, err := tenantRepo.GetByID("owner-1", tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TenantUnpaid, unchanged.PaymentStatus)
}

func TestPaymentRejectLeavesTenantUnpaid(t *testing.T) {
	svc, tenantRepo, _, tenant := setupPaymentService(t)

	payment := &models.Payment{
		TenantID:    tenant.ID,
		Amount:      1500000,
		PaymentDate: time.Now().UTC(),
	}
	require.NoError(t, svc.Create("owner-1", "owner-1", payment))
	require.NoError(t, svc.Reject("owner-1", "owner-1", payment.ID))

	updated, err := tenantRepo.GetByID("owner-1", tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TenantUnpaid, updated.PaymentStatus)
}

func TestPaymentLinkOnlyForPending(t *testing.T) {
	svc, _, linker, tenant := setupPaymentService(t)

	payment := &models.Payment{
		TenantID:    tenant.ID,
		Amount:      1500000,
		PaymentDate: time.Now().UTC(),
	}
	require.NoError(t, svc.Create("owner-1", "owner-1", payment))

	linker.On("CreatePaymentLink", mock.Anything, mock.Anything).
		Return("https://app.sandbox.midtrans.com/snap/v4/redirection/abc", nil)

	url, err := svc.CreatePaymentLink("owner-1", payment.ID)
	require.NoError(t, err)
	assert.Contains(t, url, "midtrans.com")

	// A foreign owner gets not-found rather than a usable link
	_, err = svc.CreatePaymentLink("owner-2", payment.ID)
	assert.EqualError(t, err, "payment not found")

	// Once approved, no further payment link can be issued
	require.NoError(t, svc.Approve("owner-1", "owner-1", payment.ID))
	_, err = svc.CreatePaymentLink("owner-1", payment.ID)
	assert.EqualError(t, err, "payment link is only available for pending payments")

	linker.AssertNumberOfCalls(t, "CreatePaymentLink", 1)
}
