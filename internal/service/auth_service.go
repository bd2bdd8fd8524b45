// Package service implements the business logic of the StudentMS API.
package service

import (
	"context"
	"fmt"

	"github.com/khairuladnan/StudentMS_Backend/internal/auth"
	"github.com/khairuladnan/StudentMS_Backend/internal/constants"
	"github.com/khairuladnan/StudentMS_Backend/internal/models"
	"github.com/khairuladnan/StudentMS_Backend/internal/repository"
	"github.com/khairuladnan/StudentMS_Backend/internal/utils"
)

// AuthService handles registration and login for admin accounts.
type AuthService struct {
	studentRepo repository.StudentRepository
	jwtService  *auth.JWTService
	passwordCfg *auth.PasswordConfig
}

// NewAuthService creates a new AuthService
func NewAuthService(
	studentRepo repository.StudentRepository,
	jwtService *auth.JWTService,
	passwordCfg *auth.PasswordConfig,
) *AuthService {
	return &AuthService{
		studentRepo: studentRepo,
		jwtService:  jwtService,
		passwordCfg: passwordCfg,
	}
}

// Register creates a new admin account. Validation problems are collected
// into a single error carrying every violation. The returned summary never
// includes the password hash.
func (s *AuthService) Register(ctx context.Context, reg *models.AccountRegistration) (*models.AccountSummary, error) {
	if violations := utils.CollectViolations(reg); len(violations) > 0 {
		return nil, utils.NewValidationFailedError(violations)
	}

	exists, err := s.studentRepo.ExistsByEmail(ctx, reg.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, utils.NewConflictError(constants.MsgEmailRegistered)
	}

	passwordHash, err := auth.HashPassword(reg.Password, s.passwordCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := models.NewAdminAccount(reg.Name, reg.Email)
	account.PasswordHash = passwordHash

	// The unique index on email still guards against a concurrent
	// registration that slipped past the existence check; the repository
	// reports that as a conflict.
	if err := s.studentRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	utils.LogAuth("register_success", fmt.Sprintf("%d", account.ID), account.Email, true, "")

	return account.Summary(), nil
}

// Login verifies admin credentials and returns a signed access token. An
// unknown email and a wrong password produce the identical error so the
// endpoint cannot be used to probe which emails are registered.
func (s *AuthService) Login(ctx context.Context, creds *models.AccountCredentials) (string, error) {
	if violations := utils.CollectViolations(creds); len(violations) > 0 {
		return "", utils.NewValidationFailedError(violations)
	}

	account, err := s.studentRepo.GetByEmailAndType(ctx, creds.Email, constants.AccountTypeAdmin)
	if err != nil {
		if utils.IsNotFoundError(err) {
			utils.LogAuth("login_failed", "0", creds.Email, false, "account not found")
			return "", utils.NewInvalidCredentialsError()
		}
		return "", fmt.Errorf("failed to get account: %w", err)
	}

	match, err := auth.VerifyPassword(creds.Password, account.PasswordHash)
	if err != nil {
		return "", fmt.Errorf("failed to verify password: %w", err)
	}
	if !match {
		utils.LogAuth("login_failed", fmt.Sprintf("%d", account.ID), account.Email, false, "invalid password")
		return "", utils.NewInvalidCredentialsError()
	}

	token, _, err := s.jwtService.GenerateToken(account.ID, account.Email)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	utils.LogAuth("login_success", fmt.Sprintf("%d", account.ID), account.Email, true, "")

	return token, nil
}
