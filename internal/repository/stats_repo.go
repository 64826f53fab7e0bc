package repository

import (
	"kostify-backend/internal/models"

	"gorm.io/gorm"
)

// StatsRepository serves the dashboard's read fan-out. Queries mirror the
// per-collection repositories but are grouped here so the dashboard service
// depends on one narrow surface.
type StatsRepository struct {
	db *gorm.DB
}

func NewStatsRepo(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) CountProperties(ownerID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Property{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error
	return count, err
}

func (r *StatsRepository) CountRooms(ownerID, propertyID string) (int64, error) {
	var count int64
	err := scopeProperty(r.db.Model(&models.Room{}), "rooms", ownerID, propertyID).
		Count(&count).Error
	return count, err
}

func (r *StatsRepository) CountRoomsByStatus(ownerID, propertyID, status string) (int64, error) {
	var count int64
	err := scopeProperty(r.db.Model(&models.Room{}), "rooms", ownerID, propertyID).
		Where("rooms.status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *StatsRepository) CountTenants(ownerID, propertyID string) (int64, error) {
	var count int64
	err := scopeProperty(r.db.Model(&models.Tenant{}), "tenants", ownerID, propertyID).
		Count(&count).Error
	return count, err
}

func (r *StatsRepository) CountPaymentsByStatus(ownerID, propertyID, status string) (int64, error) {
	var count int64
	err := scopeProperty(r.db.Model(&models.Payment{}), "payments", ownerID, propertyID).
		Where("payments.status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *StatsRepository) SumPaymentsByStatus(ownerID, propertyID, status string) (float64, error) {
	var total float64
	err := scopeProperty(r.db.Model(&models.Payment{}), "payments", ownerID, propertyID).
		Where("payments.status = ?", status).
		Select("COALESCE(SUM(payments.amount), 0)").
		Scan(&total).Error
	return total, err
}

func (r *StatsRepository) CountComplaintsByStatus(ownerID, propertyID, status string) (int64, error) {
	var count int64
	err := scopeProperty(r.db.Model(&models.Complaint{}), "complaints", ownerID, propertyID).
		Where("complaints.status = ?", status).
		Count(&count).Error
	return count, err
}
