package repository

import (
	"errors"

	"kostify-backend/internal/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindUserByEmail retrieves a user by email
func (r *UserRepository) FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("user not found")
		}
		return nil, err
	}
	return &user, nil
}

// FindUserByID retrieves a user by ID
func (r *UserRepository) FindUserByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("user not found")
		}
		return nil, err
	}
	return &user, nil
}

// CreateUser creates a new user
func (r *UserRepository) CreateUser(user *models.User) error {
	return r.db.Create(user).Error
}

// ListPengelolaByOwner retrieves the pengelola accounts invited by an owner
func (r *UserRepository) ListPengelolaByOwner(ownerID string) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("owner_id = ? AND role = ?", ownerID, models.RolePengelola).
		Order("created_at ASC").
		Find(&users).Error
	return users, err
}

// UpdatePengelola persists changes to a pengelola account owned by ownerID
func (r *UserRepository) UpdatePengelola(ownerID string, user *models.User) error {
	result := r.db.Model(&models.User{}).
		Where("id = ? AND owner_id = ? AND role = ?", user.ID, ownerID, models.RolePengelola).
		Updates(map[string]interface{}{
			"full_name":   user.FullName,
			"phone":       user.Phone,
			"property_id": user.PropertyID,
			"permissions": user.Permissions,
			"is_active":   user.IsActive,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("pengelola not found")
	}
	return nil
}

// DeletePengelola removes a pengelola account owned by ownerID
func (r *UserRepository) DeletePengelola(ownerID, pengelolaID string) error {
	result := r.db.Where("id = ? AND owner_id = ? AND role = ?", pengelolaID, ownerID, models.RolePengelola).
		Delete(&models.User{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("pengelola not found")
	}
	return nil
}

// CreateRefreshToken stores a hashed refresh token
func (r *UserRepository) CreateRefreshToken(token *models.RefreshToken) error {
	return r.db.Create(token).Error
}

// FindRefreshTokenByHash retrieves a non-revoked refresh token by its hash
func (r *UserRepository) FindRefreshTokenByHash(tokenHash string) (*models.RefreshToken, error) {
	var token models.RefreshToken
	err := r.db.Where("token_hash = ? AND revoked = ?", tokenHash, false).
		Preload("User").
		First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("refresh token not found")
		}
		return nil, err
	}
	return &token, nil
}

// RevokeRefreshTokenByHash marks a refresh token as revoked
func (r *UserRepository) RevokeRefreshTokenByHash(tokenHash string) error {
	return r.db.Model(&models.RefreshToken{}).
		Where("token_hash = ?", tokenHash).
		Update("revoked", true).Error
}
