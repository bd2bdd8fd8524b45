// Package constants provides shared constant values used throughout the application.
//
// The database_const.go file defines table names, account types, and the
// uniqueness constraint names the repository layer relies on when translating
// database errors.
package constants

// Tables define database table names.
const (
	// TableStudents holds every account, staff and student alike,
	// discriminated by the type column.
	TableStudents = "students"
)

// Account Types discriminate rows in the students table.
const (
	// AccountTypeAdmin marks privileged accounts created through registration.
	AccountTypeAdmin = "admin"

	// AccountTypeStudent marks ordinary student records managed over the API.
	AccountTypeStudent = "student"
)

// Constraints name the database constraints referenced in error translation.
const (
	// ConstraintStudentsEmail is the unique index on students.email. The
	// register flow depends on the database rejecting a duplicate insert
	// with this constraint when two requests race on the same email.
	ConstraintStudentsEmail = "idx_students_email"
)
