// Package repository implements data access for the StudentMS API.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/khairuladnan/StudentMS_Backend/internal/constants"
	"github.com/khairuladnan/StudentMS_Backend/internal/database"
	"github.com/khairuladnan/StudentMS_Backend/internal/models"
	"github.com/khairuladnan/StudentMS_Backend/internal/utils"
)

// StudentRepository defines methods for interacting with rows in the
// students table, both admin accounts and student records.
type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByEmailAndType(ctx context.Context, email, accountType string) (*models.Student, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, accountType string) ([]*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
}

// PostgresStudentRepository is a PostgreSQL implementation of StudentRepository
type PostgresStudentRepository struct {
	db *database.Pool
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *database.Pool) StudentRepository {
	return &PostgresStudentRepository{
		db: db,
	}
}

// studentColumns is the SELECT list shared by the read queries. The nullable
// columns are coalesced because admin rows have no student number or phone
// and student rows have no password hash.
const studentColumns = `
        id, name, COALESCE(student_number, ''), email, COALESCE(phone, ''),
        type, COALESCE(password_hash, ''), created_at, updated_at
`

func scanStudent(row *sql.Row) (*models.Student, error) {
	student := &models.Student{}
	err := row.Scan(
		&student.ID,
		&student.Name,
		&student.StudentNumber,
		&student.Email,
		&student.Phone,
		&student.Type,
		&student.PasswordHash,
		&student.CreatedAt,
		&student.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return student, nil
}

// Create adds a new row to the students table and sets its generated ID.
// A uniqueness violation on the email index surfaces as a conflict error,
// which is how a lost registration race is reported.
func (r *PostgresStudentRepository) Create(ctx context.Context, student *models.Student) error {
	startTime := time.Now()

	now := time.Now()
	student.CreatedAt = now
	student.UpdatedAt = now

	query := `
        INSERT INTO students (name, student_number, email, phone, type, password_hash, created_at, updated_at)
        VALUES ($1, NULLIF($2, ''), $3, NULLIF($4, ''), $5, NULLIF($6, ''), $7, $8)
        RETURNING id
    `

	err := r.db.QueryRowContext(
		ctx,
		query,
		student.Name,
		student.StudentNumber,
		student.Email,
		student.Phone,
		student.Type,
		student.PasswordHash,
		student.CreatedAt,
		student.UpdatedAt,
	).Scan(&student.ID)

	utils.LogDBQuery(
		query,
		[]interface{}{student.Name, student.StudentNumber, student.Email, student.Phone, student.Type, constants.LogRedactedValue, student.CreatedAt, student.UpdatedAt},
		time.Since(startTime),
		err,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			if strings.Contains(pqErr.Constraint, "email") {
				return utils.NewConflictError(constants.MsgEmailRegistered)
			}
		}
		return fmt.Errorf("failed to create student row: %w", err)
	}

	log.Info().
		Int64("id", student.ID).
		Str("type", student.Type).
		Str("email", student.Email).
		Msg("Student row created")

	return nil
}

// GetByID retrieves a row by ID.
func (r *PostgresStudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	startTime := time.Now()

	query := `
        SELECT` + studentColumns + `
        FROM students
        WHERE id = $1
    `

	student, err := scanStudent(r.db.QueryRowContext(ctx, query, id))

	utils.LogDBQuery(query, []interface{}{id}, time.Since(startTime), err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NewNotFoundError(constants.MsgStudentNotFound)
		}
		return nil, fmt.Errorf("failed to get student by ID: %w", err)
	}

	return student, nil
}

// GetByEmailAndType retrieves a row by email, restricted to the given row
// type. Login uses this so a student record can never satisfy an admin
// credential check. The comparison is case-insensitive.
func (r *PostgresStudentRepository) GetByEmailAndType(ctx context.Context, email, accountType string) (*models.Student, error) {
	startTime := time.Now()

	query := `
        SELECT` + studentColumns + `
        FROM students
        WHERE LOWER(email) = LOWER($1) AND type = $2
    `

	student, err := scanStudent(r.db.QueryRowContext(ctx, query, email, accountType))

	utils.LogDBQuery(query, []interface{}{email, accountType}, time.Since(startTime), err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get student by email: %w", err)
	}

	return student, nil
}

// ExistsByEmail checks whether any row already uses the given email.
func (r *PostgresStudentRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	startTime := time.Now()

	query := `
        SELECT EXISTS(SELECT 1 FROM students WHERE LOWER(email) = LOWER($1))
    `

	var exists bool
	err := r.db.QueryRowContext(ctx, query, email).Scan(&exists)

	utils.LogDBQuery(query, []interface{}{email}, time.Since(startTime), err)

	if err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}

	return exists, nil
}

// List retrieves every row of the given type ordered by ID.
func (r *PostgresStudentRepository) List(ctx context.Context, accountType string) ([]*models.Student, error) {
	startTime := time.Now()

	query := `
        SELECT` + studentColumns + `
        FROM students
        WHERE type = $1
        ORDER BY id
    `

	rows, err := r.db.QueryContext(ctx, query, accountType)

	utils.LogDBQuery(query, []interface{}{accountType}, time.Since(startTime), err)

	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("Failed to close rows")
		}
	}()

	students := make([]*models.Student, 0)
	for rows.Next() {
		student := &models.Student{}
		if err := rows.Scan(
			&student.ID,
			&student.Name,
			&student.StudentNumber,
			&student.Email,
			&student.Phone,
			&student.Type,
			&student.PasswordHash,
			&student.CreatedAt,
			&student.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan student row: %w", err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// Update updates a student record's details.
func (r *PostgresStudentRepository) Update(ctx context.Context, student *models.Student) error {
	startTime := time.Now()

	student.UpdatedAt = time.Now()

	query := `
        UPDATE students
        SET name = $1, student_number = NULLIF($2, ''), email = $3, phone = NULLIF($4, ''), updated_at = $5
        WHERE id = $6
    `

	result, err := r.db.ExecContext(
		ctx,
		query,
		student.Name,
		student.StudentNumber,
		student.Email,
		student.Phone,
		student.UpdatedAt,
		student.ID,
	)

	utils.LogDBQuery(
		query,
		[]interface{}{student.Name, student.StudentNumber, student.Email, student.Phone, student.UpdatedAt, student.ID},
		time.Since(startTime),
		err,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			if strings.Contains(pqErr.Constraint, "email") {
				return utils.NewConflictError(constants.MsgEmailRegistered)
			}
		}
		return fmt.Errorf("failed to update student: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return utils.NewNotFoundError(constants.MsgStudentNotFound)
	}

	log.Info().
		Int64("id", student.ID).
		Msg("Student updated")

	return nil
}

// Delete removes a row from the students table.
func (r *PostgresStudentRepository) Delete(ctx context.Context, id int64) error {
	startTime := time.Now()

	query := `
        DELETE FROM students
        WHERE id = $1
    `

	result, err := r.db.ExecContext(ctx, query, id)

	utils.LogDBQuery(query, []interface{}{id}, time.Since(startTime), err)

	if err != nil {
		return fmt.Errorf("failed to delete student: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return utils.NewNotFoundError(constants.MsgStudentNotFound)
	}

	log.Info().
		Int64("id", id).
		Msg("Student deleted")

	return nil
}
