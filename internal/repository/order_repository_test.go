package repository_test

import (
	"errors"
	"testing"
	"time"

	"temp_dashboard/internal/models"
	"temp_dashboard/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedOrder(t *testing.T, db *gorm.DB, userID uuid.UUID) *models.Order {
	t.Helper()

	order := &models.Order{
		OrderNumber:          "050324-0001",
		UserID:               userID,
		OrderReferenceNumber: "REF-001",
		IssuesDate:           time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC),
		DueDate:              time.Date(2024, 3, 12, 9, 0, 0, 0, time.UTC),
		Name:                 "Acme Corp",
		Address:              "1 Main St",
		ReceiverName:         "Dock",
	}
	require.NoError(t, db.Create(order).Error)
	require.NoError(t, db.Create(&models.OrderItem{
		OrderID:     order.ID,
		ProductName: "Widget",
		OrderQty:    2,
	}).Error)
	return order
}

func TestOrderDeleteRemovesItemsWithOrder(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewOrderRepository(db)
	order := seedOrder(t, db, uuid.New())

	require.NoError(t, repo.Delete(order))

	var orders, items int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orders).Error)
	require.NoError(t, db.Model(&models.OrderItem{}).Where("order_id = ?", order.ID).Count(&items).Error)
	assert.Zero(t, orders)
	assert.Zero(t, items)
}

func TestOrderDeleteIsAtomic(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewOrderRepository(db)
	order := seedOrder(t, db, uuid.New())

	// A failure after the delete leaves the order and its items untouched,
	// never items gone with the order row still present.
	boom := errors.New("boom")
	err := db.Transaction(func(tx *gorm.DB) error {
		require.NoError(t, repo.WithTx(tx).Delete(order))
		return boom
	})
	require.ErrorIs(t, err, boom)

	var orders, items int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orders).Error)
	require.NoError(t, db.Model(&models.OrderItem{}).Where("order_id = ?", order.ID).Count(&items).Error)
	assert.EqualValues(t, 1, orders)
	assert.EqualValues(t, 1, items)
}
