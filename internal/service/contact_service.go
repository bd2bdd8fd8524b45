package service

import (
	"context"

	"github.com/khairuladnan/StudentMS_Backend/internal/models"
	"github.com/khairuladnan/StudentMS_Backend/internal/repository"
	"github.com/khairuladnan/StudentMS_Backend/internal/utils"
)

// ContactService manages the contact book.
type ContactService struct {
	contactRepo repository.ContactRepository
}

// NewContactService creates a new ContactService
func NewContactService(contactRepo repository.ContactRepository) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
	}
}

// List returns every contact.
func (s *ContactService) List(ctx context.Context) ([]*models.Contact, error) {
	return s.contactRepo.List(ctx)
}

// GetByID returns a single contact.
func (s *ContactService) GetByID(ctx context.Context, id int64) (*models.Contact, error) {
	return s.contactRepo.GetByID(ctx, id)
}

// Add validates and stores a new contact.
func (s *ContactService) Add(ctx context.Context, input *models.ContactInput) (*models.Contact, error) {
	if violations := utils.CollectViolations(input); len(violations) > 0 {
		return nil, utils.NewValidationFailedError(violations)
	}

	contact := &models.Contact{
		Name:  input.Name,
		Phone: input.Phone,
	}
	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return nil, err
	}

	return contact, nil
}

// Update validates and replaces a contact's details.
func (s *ContactService) Update(ctx context.Context, id int64, input *models.ContactInput) (*models.Contact, error) {
	if violations := utils.CollectViolations(input); len(violations) > 0 {
		return nil, utils.NewValidationFailedError(violations)
	}

	contact := &models.Contact{
		ID:    id,
		Name:  input.Name,
		Phone: input.Phone,
	}
	if err := s.contactRepo.Update(ctx, contact); err != nil {
		return nil, err
	}

	return contact, nil
}

// Delete removes a contact.
func (s *ContactService) Delete(ctx context.Context, id int64) error {
	return s.contactRepo.Delete(ctx, id)
}
