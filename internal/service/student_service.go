package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/khairuladnan/StudentMS_Backend/internal/constants"
	"github.com/khairuladnan/StudentMS_Backend/internal/models"
	"github.com/khairuladnan/StudentMS_Backend/internal/repository"
	"github.com/khairuladnan/StudentMS_Backend/internal/utils"
)

// StudentService manages student records.
type StudentService struct {
	studentRepo repository.StudentRepository
}

// NewStudentService creates a new StudentService
func NewStudentService(studentRepo repository.StudentRepository) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
	}
}

// List returns every student record. Admin accounts share the table but are
// never included.
func (s *StudentService) List(ctx context.Context) ([]*models.Student, error) {
	students, err := s.studentRepo.List(ctx, constants.AccountTypeStudent)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	return students, nil
}

// GetByID returns a single student record.
func (s *StudentService) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return student, nil
}

// Add validates and stores a new student record.
func (s *StudentService) Add(ctx context.Context, input *models.StudentInput) (*models.Student, error) {
	if violations := utils.CollectViolations(input); len(violations) > 0 {
		return nil, utils.NewValidationFailedError(violations)
	}

	student := models.NewStudentRecord(input.Name, input.StudentNumber, input.Email, input.Phone)
	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	log.Info().
		Int64("id", student.ID).
		Str("student_number", student.StudentNumber).
		Msg("Student record added")

	return student, nil
}

// Update validates and replaces a student record's details.
func (s *StudentService) Update(ctx context.Context, id int64, input *models.StudentInput) (*models.Student, error) {
	if violations := utils.CollectViolations(input); len(violations) > 0 {
		return nil, utils.NewValidationFailedError(violations)
	}

	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	student.Name = input.Name
	student.StudentNumber = input.StudentNumber
	student.Email = input.Email
	student.Phone = input.Phone

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// Delete removes a student record.
func (s *StudentService) Delete(ctx context.Context, id int64) error {
	return s.studentRepo.Delete(ctx, id)
}
