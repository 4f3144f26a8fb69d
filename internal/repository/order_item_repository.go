package repository

import (
	"temp_dashboard/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderItemRepository interface {
	WithTx(tx *gorm.DB) OrderItemRepository
	Create(item *models.OrderItem) error
	GetByOrderID(orderID uuid.UUID) ([]models.OrderItem, error)
	DeleteByOrderID(orderID uuid.UUID) error
}

type orderItemRepository struct {
	db *gorm.DB
}

func NewOrderItemRepository(db *gorm.DB) OrderItemRepository {
	return &orderItemRepository{db: db}
}

func (r *orderItemRepository) WithTx(tx *gorm.DB) OrderItemRepository {
	return &orderItemRepository{db: tx}
}

func (r *orderItemRepository) Create(item *models.OrderItem) error {
	return r.db.Create(item).Error
}

func (r *orderItemRepository) GetByOrderID(orderID uuid.UUID) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := r.db.Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}

func (r *orderItemRepository) DeleteByOrderID(orderID uuid.UUID) error {
	return r.db.Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error
}
