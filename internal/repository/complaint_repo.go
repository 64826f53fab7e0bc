package repository

import (
	"errors"
	"time"

	"kostify-backend/internal/models"

	"gorm.io/gorm"
)

type ComplaintRepository struct {
	db *gorm.DB
}

func NewComplaintRepo(db *gorm.DB) *ComplaintRepository {
	return &ComplaintRepository{db: db}
}

// List retrieves complaints for an owner, optionally narrowed by property
// and status
func (r *ComplaintRepository) List(ownerID, propertyID, status string) ([]models.Complaint, error) {
	var complaints []models.Complaint
	query := scopeProperty(r.db.Model(&models.Complaint{}), "complaints", ownerID, propertyID).
		Order("complaints.created_at DESC")
	if status != "" {
		query = query.Where("complaints.status = ?", status)
	}
	err := query.Find(&complaints).Error
	return complaints, err
}

// GetByID retrieves a complaint in the owner's scope
func (r *ComplaintRepository) GetByID(ownerID, id string) (*models.Complaint, error) {
	var complaint models.Complaint
	err := scopeProperty(r.db.Model(&models.Complaint{}), "complaints", ownerID, "").
		Where("complaints.id = ?", id).
		First(&complaint).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("complaint not found")
		}
		return nil, err
	}
	return &complaint, nil
}

// Create creates a new complaint
func (r *ComplaintRepository) Create(complaint *models.Complaint) error {
	return r.db.Create(complaint).Error
}

// UpdateStatus sets a complaint's status and bumps updated_at. Complaints
// outside the owner's scope are reported as not found.
func (r *ComplaintRepository) UpdateStatus(ownerID, complaintID, status string) error {
	result := r.db.Model(&models.Complaint{}).
		Where("id = ? AND property_id IN (?)", complaintID, ownedProperties(r.db, ownerID)).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("complaint not found")
	}
	return nil
}
