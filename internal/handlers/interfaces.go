// Package handlers provides HTTP request handlers for the StudentMS API.
package handlers

import (
	"context"

	"github.com/khairuladnan/StudentMS_Backend/internal/models"
)

// AuthServiceInterface defines the methods the auth handlers require from
// the authentication service, keeping handlers decoupled from the
// implementation.
type AuthServiceInterface interface {
	// Register creates a new admin account and returns its summary. The
	// summary never carries credential material.
	Register(ctx context.Context, reg *models.AccountRegistration) (*models.AccountSummary, error)

	// Login verifies admin credentials and returns a signed access token.
	Login(ctx context.Context, creds *models.AccountCredentials) (string, error)
}

// StudentServiceInterface defines the methods the student handlers require.
type StudentServiceInterface interface {
	List(ctx context.Context) ([]*models.Student, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	Add(ctx context.Context, input *models.StudentInput) (*models.Student, error)
	Update(ctx context.Context, id int64, input *models.StudentInput) (*models.Student, error)
	Delete(ctx context.Context, id int64) error
}

// ContactServiceInterface defines the methods the contact handlers require.
type ContactServiceInterface interface {
	List(ctx context.Context) ([]*models.Contact, error)
	GetByID(ctx context.Context, id int64) (*models.Contact, error)
	Add(ctx context.Context, input *models.ContactInput) (*models.Contact, error)
	Update(ctx context.Context, id int64, input *models.ContactInput) (*models.Contact, error)
	Delete(ctx context.Context, id int64) error
}

// HealthChecker defines the dependency the health handler uses to probe the
// database.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}
