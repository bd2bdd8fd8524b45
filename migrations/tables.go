package migrations

import (
	"context"
	"database/sql"

	"github.com/khairuladnan/StudentMS_Backend/internal/constants"
)

// createStudentsTable creates the students table. The table holds admin
// accounts and student records side by side, distinguished by the type
// column; the columns not used by a row kind stay NULL. The unique index on
// email is what turns a registration race into a conflict instead of a
// duplicate account.
func createStudentsTable() Migration {
	return Migration{
		Name:        "create_students_table",
		Description: "Creates the students table",
		TableName:   constants.TableStudents,
		RunSQL: func(ctx context.Context, tx *sql.Tx) error {
			query := `
				CREATE TABLE IF NOT EXISTS students (
					id BIGSERIAL PRIMARY KEY,
					name VARCHAR(255) NOT NULL,
					student_number VARCHAR(50),
					email VARCHAR(255) NOT NULL,
					phone VARCHAR(50),
					type VARCHAR(20) NOT NULL DEFAULT 'student',
					password_hash VARCHAR(255),
					created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
					updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
					CONSTRAINT idx_students_email UNIQUE (email)
				);
				CREATE INDEX IF NOT EXISTS idx_students_type ON students(type);
			`
			_, err := tx.ExecContext(ctx, query)
			return err
		},
	}
}
