package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khairuladnan/StudentMS_Backend/internal/constants"
)

func TestNewAdminAccount(t *testing.T) {
	account := NewAdminAccount("Ana", "ana@example.com")

	assert.Equal(t, "Ana", account.Name)
	assert.Equal(t, "ana@example.com", account.Email)
	assert.Equal(t, constants.AccountTypeAdmin, account.Type)
	assert.True(t, account.IsAdmin())
	assert.Empty(t, account.PasswordHash)
	assert.False(t, account.CreatedAt.IsZero())
}

func TestNewStudentRecord(t *testing.T) {
	student := NewStudentRecord("Khairul Adnan", "23456", "khairul@example.com", "01123346677")

	assert.Equal(t, constants.AccountTypeStudent, student.Type)
	assert.False(t, student.IsAdmin())
	assert.Equal(t, "23456", student.StudentNumber)
	assert.Equal(t, "01123346677", student.Phone)
}

func TestStudent_Sanitize(t *testing.T) {
	account := NewAdminAccount("Ana", "ana@example.com")
	account.PasswordHash = "$2a$10$somethingsecret"

	sanitized := account.Sanitize()

	assert.Empty(t, sanitized.PasswordHash)
	// The original must be untouched; the repository still needs the hash.
	assert.Equal(t, "$2a$10$somethingsecret", account.PasswordHash)
}

func TestStudent_PasswordHashNeverMarshalled(t *testing.T) {
	account := NewAdminAccount("Ana", "ana@example.com")
	account.PasswordHash = "$2a$10$somethingsecret"

	data, err := json.Marshal(account)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "somethingsecret")
	assert.NotContains(t, string(data), "password")
}

func TestStudent_Summary(t *testing.T) {
	account := NewAdminAccount("Ana", "ana@example.com")
	account.ID = 7
	account.PasswordHash = "$2a$10$somethingsecret"

	summary := account.Summary()

	assert.Equal(t, int64(7), summary.ID)
	assert.Equal(t, "Ana", summary.Name)
	assert.Equal(t, "ana@example.com", summary.Email)
	assert.Equal(t, constants.AccountTypeAdmin, summary.Type)

	data, err := json.Marshal(summary)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "somethingsecret")
}

func TestStudent_TableName(t *testing.T) {
	assert.Equal(t, "students", (&Student{}).TableName())
}
