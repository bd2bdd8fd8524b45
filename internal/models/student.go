// Package models defines the data structures stored by and exchanged with
// the StudentMS API.
package models

import (
	"time"

	"github.com/khairuladnan/StudentMS_Backend/internal/constants"
)

// Student represents a row in the students table. The table holds two kinds
// of rows distinguished by Type: admin accounts that can log in, and student
// records managed through the student endpoints. Admin rows carry a password
// hash; student rows carry a student number and phone instead.
type Student struct {
	ID            int64     `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	StudentNumber string    `json:"student_number,omitempty" db:"student_number"`
	Email         string    `json:"email" db:"email"`
	Phone         string    `json:"phone,omitempty" db:"phone"`
	Type          string    `json:"type" db:"type"`
	PasswordHash  string    `json:"-" db:"password_hash"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// NewAdminAccount creates an admin row for the given identity. The password
// hash is populated by the registration flow.
func NewAdminAccount(name, email string) *Student {
	now := time.Now()
	return &Student{
		Name:      name,
		Email:     email,
		Type:      constants.AccountTypeAdmin,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewStudentRecord creates a student row from the given details.
func NewStudentRecord(name, studentNumber, email, phone string) *Student {
	now := time.Now()
	return &Student{
		Name:          name,
		StudentNumber: studentNumber,
		Email:         email,
		Phone:         phone,
		Type:          constants.AccountTypeStudent,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// TableName returns the database table name for the Student model.
func (s *Student) TableName() string {
	return constants.TableStudents
}

// Sanitize returns a copy safe to send to clients. The password hash never
// leaves the server, even on the registration response that created it.
func (s *Student) Sanitize() *Student {
	sanitized := *s
	sanitized.PasswordHash = ""
	return &sanitized
}

// IsAdmin reports whether the row is a login-capable admin account.
func (s *Student) IsAdmin() bool {
	return s.Type == constants.AccountTypeAdmin
}

// AccountRegistration represents the data required to register an admin
// account. Fields may arrive via the JSON body or the query string.
type AccountRegistration struct {
	Name     string `json:"name" validate:"notblank"`
	Email    string `json:"email" validate:"email_shape"`
	Password string `json:"password" validate:"min=8"`
}

// AccountCredentials represents the login credentials for an admin account.
// Login applies the same field checks as registration.
type AccountCredentials struct {
	Email    string `json:"email" validate:"email_shape"`
	Password string `json:"password" validate:"min=8"`
}

// AccountSummary is the registration response payload: the stored identity
// without any credential material.
type AccountSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Type  string `json:"type"`
}

// Summary converts a stored row to its response form.
func (s *Student) Summary() *AccountSummary {
	return &AccountSummary{
		ID:    s.ID,
		Name:  s.Name,
		Email: s.Email,
		Type:  s.Type,
	}
}

// StudentInput represents the data for creating or updating a student record.
type StudentInput struct {
	Name          string `json:"name" validate:"notblank"`
	StudentNumber string `json:"student_number" validate:"digits"`
	Email         string `json:"email" validate:"email_shape"`
	Phone         string `json:"phone" validate:"digits"`
}
