package service

import (
	"context"
	"errors"
	"testing"

	"kostify-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStatsSource struct {
	mock.Mock
}

func (m *MockStatsSource) CountProperties(ownerID string) (int64, error) {
	args := m.Called(ownerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsSource) CountRooms(ownerID, propertyID string) (int64, error) {
	args := m.Called(ownerID, propertyID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsSource) CountRoomsByStatus(ownerID, propertyID, status string) (int64, error) {
	args := m.Called(ownerID, propertyID, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsSource) CountTenants(ownerID, propertyID string) (int64, error) {
	args := m.Called(ownerID, propertyID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsSource) CountPaymentsByStatus(ownerID, propertyID, status string) (int64, error) {
	args := m.Called(ownerID, propertyID, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsSource) SumPaymentsByStatus(ownerID, propertyID, status string) (float64, error) {
	args := m.Called(ownerID, propertyID, status)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockStatsSource) CountComplaintsByStatus(ownerID, propertyID, status string) (int64, error) {
	args := m.Called(ownerID, propertyID, status)
	return args.Get(0).(int64), args.Error(1)
}

func TestDashboardStats(t *testing.T) {
	source := new(MockStatsSource)
	source.On("CountProperties", "owner-1").Return(int64(2), nil)
	source.On("CountRooms", "owner-1", "").Return(int64(10), nil)
	source.On("CountRoomsByStatus", "owner-1", "", models.RoomOccupied).Return(int64(7), nil)
	source.On("CountTenants", "owner-1", "").Return(int64(7), nil)
	source.On("CountPaymentsByStatus", "owner-1", "", models.PaymentPending).Return(int64(1), nil)
	source.On("SumPaymentsByStatus", "owner-1", "", models.PaymentApproved).Return(700000.0, nil)
	source.On("CountComplaintsByStatus", "owner-1", "", models.ComplaintOpen).Return(int64(3), nil)

	svc := NewDashboardService(source)
	stats, err := svc.GetStats(context.Background(), "owner-1", "")
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.PropertiesCount)
	assert.Equal(t, int64(10), stats.TotalRooms)
	assert.Equal(t, int64(7), stats.OccupiedRooms)
	assert.Equal(t, int64(3), stats.AvailableRooms)
	assert.Equal(t, 70.0, stats.OccupancyRate)
	assert.Equal(t, int64(1), stats.PendingPayments)
	assert.Equal(t, 700000.0, stats.TotalRevenue)
	assert.Equal(t, int64(3), stats.OpenComplaints)
}

func TestDashboardStatsAllOrNothing(t *testing.T) {
	source := new(MockStatsSource)
	source.On("CountProperties", "owner-1").Return(int64(2), nil)
	source.On("CountRooms", "owner-1", "").Return(int64(10), nil)
	source.On("CountRoomsByStatus", "owner-1", "", models.RoomOccupied).Return(int64(7), nil)
	source.On("CountTenants", "owner-1", "").Return(int64(7), nil)
	source.On("CountPaymentsByStatus", "owner-1", "", models.PaymentPending).Return(int64(1), nil)
	source.On("SumPaymentsByStatus", "owner-1", "", models.PaymentApproved).Return(0.0, errors.New("db gone"))
	source.On("CountComplaintsByStatus", "owner-1", "", models.ComplaintOpen).Return(int64(3), nil)

	svc := NewDashboardService(source)

	// One failing read fails the whole batch; no partial stats come back
	stats, err := svc.GetStats(context.Background(), "owner-1", "")
	assert.Error(t, err)
	assert.Nil(t, stats)
}

func TestDashboardStatsEmptyOwner(t *testing.T) {
	source := new(MockStatsSource)
	source.On("CountProperties", "owner-2").Return(int64(0), nil)
	source.On("CountRooms", "owner-2", "").Return(int64(0), nil)
	source.On("CountRoomsByStatus", "owner-2", "", models.RoomOccupied).Return(int64(0), nil)
	source.On("CountTenants", "owner-2", "").Return(int64(0), nil)
	source.On("CountPaymentsByStatus", "owner-2", "", models.PaymentPending).Return(int64(0), nil)
	source.On("SumPaymentsByStatus", "owner-2", "", models.PaymentApproved).Return(0.0, nil)
	source.On("CountComplaintsByStatus", "owner-2", "", models.ComplaintOpen).Return(int64(0), nil)

	svc := NewDashboardService(source)
	stats, err := svc.GetStats(context.Background(), "owner-2", "")
	require.NoError(t, err)

	// Zero rooms yields zero occupancy, not a division error
	assert.Equal(t, 0.0, stats.OccupancyRate)
	assert.Equal(t, 0.0, stats.TotalRevenue)
}
