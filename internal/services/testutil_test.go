package services_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"temp_dashboard/internal/database"
	"temp_dashboard/internal/repository"
	"temp_dashboard/internal/services"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

func newOrderService(db *gorm.DB) services.OrderService {
	return services.NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewOrderItemRepository(db),
		repository.NewCustomerRepository(db),
		repository.NewProductRepository(db),
		repository.NewSequenceRepository(),
		nil,
	)
}

func orderInput(name, address string, items ...services.OrderItemInput) *services.OrderInput {
	return &services.OrderInput{
		OrderReferenceNumber: "REF-001",
		IssuesDate:           time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		DueDate:              time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC),
		Name:                 name,
		Address:              address,
		ReceiverName:         "Receiving Dock",
		Suburb:               "Richmond",
		State:                "VIC",
		PostCode:             "3121",
		PhoneNumber:          "0400000000",
		OrderItems:           items,
	}
}
