package service

import (
	"errors"
	"fmt"
	"time"

	"kostify-backend/internal/models"
	"kostify-backend/internal/repository"
	"kostify-backend/pkg/utils"
)

const trialPeriod = 14 * 24 * time.Hour

type AuthService struct {
	userRepo  *repository.UserRepository
	auditRepo *repository.AuditRepository
}

func NewAuthService(userRepo *repository.UserRepository, auditRepo *repository.AuditRepository) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		auditRepo: auditRepo,
	}
}

// LoginResponse represents the response structure for login
type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         *models.User `json:"user"`
}

// ownerScope resolves the data scope a user's token should carry: owners
// scope to themselves, pengelola to their inviting owner.
func ownerScope(user *models.User) string {
	if user.Role == models.RolePengelola && user.OwnerID != nil {
		return *user.OwnerID
	}
	return user.ID
}

func issueTokens(s *AuthService, user *models.User) (*LoginResponse, error) {
	propertyID := ""
	if user.PropertyID != nil {
		propertyID = *user.PropertyID
	}

	accessToken, err := utils.GenerateAccessToken(user.ID, user.Role, ownerScope(user), propertyID, user.Permissions)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := utils.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	tokenHash := utils.HashRefreshToken(refreshToken)
	refreshTokenModel := &models.RefreshToken{
		UserID:    user.ID,
		TokenHash: tokenHash,
		ExpiresAt: time.Now().Add(utils.GetRefreshTokenExpiry()),
	}

	if err := s.userRepo.CreateRefreshToken(refreshTokenModel); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// Register creates a new owner account with a trial subscription
func (s *AuthService) Register(email, password, fullName, phone string) (*LoginResponse, error) {
	existingUser, err := s.userRepo.FindUserByEmail(email)
	if err == nil && existingUser != nil {
		return nil, errors.New("email already registered")
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	trialEnd := time.Now().UTC().Add(trialPeriod)
	user := &models.User{
		Email:              email,
		PasswordHash:       passwordHash,
		FullName:           fullName,
		Phone:              phone,
		Role:               models.RoleOwner,
		IsActive:           true,
		SubscriptionStatus: "trial",
		TrialEndDate:       &trialEnd,
		Permissions:        []string{},
	}

	if err := s.userRepo.CreateUser(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	userIDPtr := &user.ID
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "user_registration", fmt.Sprintf("Owner %s registered", email))

	return issueTokens(s, user)
}

// Login authenticates a user and returns tokens
func (s *AuthService) Login(email, password string) (*LoginResponse, error) {
	user, err := s.userRepo.FindUserByEmail(email)
	if err != nil {
		return nil, errors.New("invalid credentials")
	}

	if !utils.ComparePassword(user.PasswordHash, password) {
		return nil, errors.New("invalid credentials")
	}

	if !user.IsActive {
		return nil, errors.New("account is deactivated")
	}

	userIDPtr := &user.ID
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "user_login", fmt.Sprintf("User %s logged in", email))

	return issueTokens(s, user)
}

// RefreshAccessToken generates a new access token from a refresh token
func (s *AuthService) RefreshAccessToken(refreshToken string) (string, error) {
	tokenHash := utils.HashRefreshToken(refreshToken)

	token, err := s.userRepo.FindRefreshTokenByHash(tokenHash)
	if err != nil {
		return "", errors.New("invalid or revoked refresh token")
	}

	if time.Now().After(token.ExpiresAt) {
		return "", errors.New("refresh token expired")
	}

	propertyID := ""
	if token.User.PropertyID != nil {
		propertyID = *token.User.PropertyID
	}

	accessToken, err := utils.GenerateAccessToken(token.User.ID, token.User.Role, ownerScope(&token.User), propertyID, token.User.Permissions)
	if err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}

	return accessToken, nil
}

// Logout revokes a refresh token
func (s *AuthService) Logout(refreshToken string) error {
	tokenHash := utils.HashRefreshToken(refreshToken)

	if err := s.userRepo.RevokeRefreshTokenByHash(tokenHash); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return nil
}

// Me returns the authenticated user's profile
func (s *AuthService) Me(userID string) (*models.User, error) {
	return s.userRepo.FindUserByID(userID)
}
