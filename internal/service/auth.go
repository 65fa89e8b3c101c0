package service

import (
	"context"
	"errors"

	"carlink-backend/internal/apperr"
	"carlink-backend/internal/domain"
	"carlink-backend/internal/logger"
	"carlink-backend/internal/repository"
	"carlink-backend/internal/security"

	"golang.org/x/crypto/bcrypt"
)

type authService struct {
	userRepo repository.UserRepository
	tokens   security.TokenManager
	emailSvc EmailService
}

func NewAuthService(userRepo repository.UserRepository, tokens security.TokenManager, emailSvc EmailService) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		emailSvc: emailSvc,
	}
}

func (s *authService) Register(ctx context.Context, input RegisterInput) (string, string, *domain.User, error) {
	if input.Name == "" || input.Email == "" {
		return "", "", nil, apperr.Validation("name and email are required")
	}
	if len(input.Password) < 8 {
		return "", "", nil, apperr.Validation("password must be at least 8 characters")
	}

	_, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err == nil {
		return "", "", nil, apperr.Conflict("email is already registered")
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return "", "", nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", "", nil, err
	}
	user := &domain.User{
		Email:        input.Email,
		PhoneNumber:  input.PhoneNumber,
		PasswordHash: string(hash),
		Name:         input.Name,
		Role:         domain.UserRoleCustomer,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return "", "", nil, err
	}

	access, err := s.tokens.GenerateAccessToken(user)
	if err != nil {
		return "", "", nil, err
	}
	refresh, err := s.tokens.GenerateRefreshToken(user)
	if err != nil {
		return "", "", nil, err
	}
	return access, refresh, user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, string, *domain.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		// Same message as a wrong password so the response does not reveal
		// which emails are registered.
		return "", "", nil, apperr.Unauthorized("invalid email or password")
	}
	if err != nil {
		return "", "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", "", nil, apperr.Unauthorized("invalid email or password")
	}

	access, err := s.tokens.GenerateAccessToken(user)
	if err != nil {
		return "", "", nil, err
	}
	refresh, err := s.tokens.GenerateRefreshToken(user)
	if err != nil {
		return "", "", nil, err
	}
	return access, refresh, user, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	claims, err := s.tokens.ValidateToken(refreshToken)
	if err != nil {
		return "", "", apperr.Unauthorized("invalid refresh token")
	}
	if claims.Type != security.TokenTypeRefresh {
		return "", "", apperr.Unauthorized("invalid refresh token")
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return "", "", apperr.Unauthorized("invalid refresh token")
	}
	if err != nil {
		return "", "", err
	}

	access, err := s.tokens.GenerateAccessToken(user)
	if err != nil {
		return "", "", err
	}
	refresh, err := s.tokens.GenerateRefreshToken(user)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// ForgotPassword always reports success. Real accounts receive a reset email;
// unknown emails are ignored, so callers cannot probe for registrations.
func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		logger.Error("forgot-password lookup failed", "error", err)
		return nil
	}

	token, err := s.tokens.GenerateResetToken(user)
	if err != nil {
		logger.Error("failed to generate reset token", "error", err, "user_id", user.ID)
		return nil
	}
	if err := s.emailSvc.SendPasswordResetEmail(ctx, user.Email, user.Name, token); err != nil {
		logger.Error("failed to send reset email", "error", err, "user_id", user.ID)
	}
	return nil
}

func (s *authService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if len(newPassword) < 8 {
		return apperr.Validation("password must be at least 8 characters")
	}

	claims, err := s.tokens.ValidateToken(token)
	if err != nil || claims.Type != security.TokenTypeReset {
		return apperr.Unauthorized("invalid or expired reset token")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdatePassword(ctx, claims.UserID, string(hash)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.Unauthorized("invalid or expired reset token")
		}
		return err
	}
	return nil
}
