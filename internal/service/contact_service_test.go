package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khairuladnan/StudentMS_Backend/internal/constants"
	"github.com/khairuladnan/StudentMS_Backend/internal/models"
	"github.com/khairuladnan/StudentMS_Backend/internal/repository"
	"github.com/khairuladnan/StudentMS_Backend/internal/utils"
)

func TestContactService_ListSeeded(t *testing.T) {
	svc := NewContactService(repository.NewContactRepository())

	contacts, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, contacts, 3)
}

func TestContactService_Add(t *testing.T) {
	svc := NewContactService(repository.NewContactRepository())

	contact, err := svc.Add(context.Background(), &models.ContactInput{
		Name:  "Ana",
		Phone: "0123456789",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), contact.ID)
}

func TestContactService_Add_Violations(t *testing.T) {
	svc := NewContactService(repository.NewContactRepository())

	_, err := svc.Add(context.Background(), &models.ContactInput{
		Name:  "  ",
		Phone: "not-digits",
	})
	require.Error(t, err)

	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, []string{
		constants.MsgNameEmpty,
		constants.MsgPhoneInvalid,
	}, appErr.Violations)
}

func TestContactService_Update(t *testing.T) {
	svc := NewContactService(repository.NewContactRepository())

	updated, err := svc.Update(context.Background(), 1, &models.ContactInput{
		Name:  "Khairul A.",
		Phone: "0100000000",
	})
	require.NoError(t, err)
	assert.Equal(t, "Khairul A.", updated.Name)
}

func TestContactService_Update_NotFound(t *testing.T) {
	svc := NewContactService(repository.NewContactRepository())

	_, err := svc.Update(context.Background(), 99, &models.ContactInput{
		Name:  "Nobody",
		Phone: "0123",
	})
	assert.True(t, utils.IsNotFoundError(err))
}

func TestContactService_Delete(t *testing.T) {
	svc := NewContactService(repository.NewContactRepository())

	require.NoError(t, svc.Delete(context.Background(), 1))

	contacts, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, contacts, 2)
}
