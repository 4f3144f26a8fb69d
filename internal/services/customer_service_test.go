package services_test

import (
	"testing"

	"temp_dashboard/internal/repository"
	"temp_dashboard/internal/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func TestCustomerCRUD(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewCustomerService(repository.NewCustomerRepository(db))
	userID := uuid.New()

	customer, err := svc.CreateCustomer(&services.CustomerInput{
		Name:         "Acme Corp",
		Address:      "1 Main St",
		ReceiverName: "Dock",
		PhoneNumber:  "0400000000",
	}, userID)
	require.NoError(t, err)

	// Partial update touches only the provided fields.
	updated, err := svc.UpdateCustomer(customer.ID, &services.CustomerUpdateInput{
		Address: strptr("2 New St"),
	}, userID)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "2 New St", updated.Address)
	assert.Equal(t, "Acme Corp", updated.Name)
	assert.Equal(t, "0400000000", updated.PhoneNumber)

	list, err := svc.GetCustomers(userID, 0, 100)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	deleted, err := svc.DeleteCustomer(customer.ID, userID)
	require.NoError(t, err)
	assert.True(t, deleted)

	got, err := svc.GetCustomerByID(customer.ID, userID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCustomersAreOwnerScoped(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewCustomerService(repository.NewCustomerRepository(db))
	owner := uuid.New()
	stranger := uuid.New()

	customer, err := svc.CreateCustomer(&services.CustomerInput{
		Name:         "Acme Corp",
		Address:      "1 Main St",
		ReceiverName: "Dock",
	}, owner)
	require.NoError(t, err)

	got, err := svc.GetCustomerByID(customer.ID, stranger)
	require.NoError(t, err)
	assert.Nil(t, got)

	deleted, err := svc.DeleteCustomer(customer.ID, stranger)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestProductCRUD(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewProductService(repository.NewProductRepository(db))
	userID := uuid.New()

	product, err := svc.CreateProduct(&services.ProductInput{Name: "Widget", Description: "Small widget"}, userID)
	require.NoError(t, err)

	updated, err := svc.UpdateProduct(product.ID, &services.ProductUpdateInput{
		Description: strptr("Large widget"),
	}, userID)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Widget", updated.Name)
	assert.Equal(t, "Large widget", updated.Description)

	list, err := svc.GetProducts(userID, 0, 100)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	deleted, err := svc.DeleteProduct(product.ID, userID)
	require.NoError(t, err)
	assert.True(t, deleted)
}
