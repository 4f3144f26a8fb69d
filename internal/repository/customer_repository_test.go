package repository_test

import (
	"testing"

	"temp_dashboard/internal/models"
	"temp_dashboard/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerFindByNameIsCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewCustomerRepository(db)
	userID := uuid.New()

	require.NoError(t, repo.Create(&models.Customer{
		UserID:  userID,
		Name:    "Acme Corp",
		Address: "1 Main St",
	}))

	found, err := repo.FindByName(userID, "acme corp")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Acme Corp", found.Name)

	found, err = repo.FindByName(userID, "ACME CORP")
	require.NoError(t, err)
	require.NotNil(t, found)
}

func TestCustomerFindByNameIsOwnerScoped(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewCustomerRepository(db)
	owner := uuid.New()
	other := uuid.New()

	require.NoError(t, repo.Create(&models.Customer{
		UserID:  owner,
		Name:    "Acme Corp",
		Address: "1 Main St",
	}))

	found, err := repo.FindByName(other, "Acme Corp")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestCustomerGetByIDReturnsNilWhenAbsent(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewCustomerRepository(db)

	found, err := repo.GetByID(uuid.New(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, found)
}
