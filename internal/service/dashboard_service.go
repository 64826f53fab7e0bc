package service

import (
	"context"

	"kostify-backend/internal/aggregate"
	"kostify-backend/internal/models"

	"golang.org/x/sync/errgroup"
)

// StatsSource is the read surface the dashboard fans out over.
type StatsSource interface {
	CountProperties(ownerID string) (int64, error)
	CountRooms(ownerID, propertyID string) (int64, error)
	CountRoomsByStatus(ownerID, propertyID, status string) (int64, error)
	CountTenants(ownerID, propertyID string) (int64, error)
	CountPaymentsByStatus(ownerID, propertyID, status string) (int64, error)
	SumPaymentsByStatus(ownerID, propertyID, status string) (float64, error)
	CountComplaintsByStatus(ownerID, propertyID, status string) (int64, error)
}

// DashboardStats is the aggregate card set for the landing page.
type DashboardStats struct {
	PropertiesCount int64   `json:"properties_count"`
	TotalRooms      int64   `json:"total_rooms"`
	OccupiedRooms   int64   `json:"occupied_rooms"`
	AvailableRooms  int64   `json:"available_rooms"`
	OccupancyRate   float64 `json:"occupancy_rate"`
	TenantsCount    int64   `json:"tenants_count"`
	PendingPayments int64   `json:"pending_payments"`
	TotalRevenue    float64 `json:"total_revenue"`
	OpenComplaints  int64   `json:"open_complaints"`
}

type DashboardService struct {
	source StatsSource
}

func NewDashboardService(source StatsSource) *DashboardService {
	return &DashboardService{source: source}
}

// GetStats loads every dashboard figure concurrently and joins the batch
// all-or-nothing: if any read fails, no partial result is returned. Revenue
// sums approved payments only; an empty set contributes zero.
func (s *DashboardService) GetStats(ctx context.Context, ownerID, propertyID string) (*DashboardStats, error) {
	stats := &DashboardStats{}

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := s.source.CountProperties(ownerID)
		stats.PropertiesCount = count
		return err
	})
	g.Go(func() error {
		count, err := s.source.CountRooms(ownerID, propertyID)
		stats.TotalRooms = count
		return err
	})
	g.Go(func() error {
		count, err := s.source.CountRoomsByStatus(ownerID, propertyID, models.RoomOccupied)
		stats.OccupiedRooms = count
		return err
	})
	g.Go(func() error {
		count, err := s.source.CountTenants(ownerID, propertyID)
		stats.TenantsCount = count
		return err
	})
	g.Go(func() error {
		count, err := s.source.CountPaymentsByStatus(ownerID, propertyID, models.PaymentPending)
		stats.PendingPayments = count
		return err
	})
	g.Go(func() error {
		total, err := s.source.SumPaymentsByStatus(ownerID, propertyID, models.PaymentApproved)
		stats.TotalRevenue = total
		return err
	})
	g.Go(func() error {
		count, err := s.source.CountComplaintsByStatus(ownerID, propertyID, models.ComplaintOpen)
		stats.OpenComplaints = count
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats.AvailableRooms = stats.TotalRooms - stats.OccupiedRooms
	stats.OccupancyRate = aggregate.OccupancyRate(stats.OccupiedRooms, stats.TotalRooms)

	return stats, nil
}
