package repository

import (
	"errors"
	"temp_dashboard/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderRepository interface {
	WithTx(tx *gorm.DB) OrderRepository
	Create(order *models.Order) error
	GetByID(id, userID uuid.UUID) (*models.Order, error)
	GetByUser(userID uuid.UUID, skip, limit int) ([]models.Order, error)
	Update(order *models.Order) error
	Delete(order *models.Order) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) WithTx(tx *gorm.DB) OrderRepository {
	return &orderRepository{db: tx}
}

func (r *orderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

// GetByID is owner-scoped: an order belonging to another user is reported as
// absent, never as forbidden.
func (r *orderRepository) GetByID(id, userID uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("OrderItems").First(&order, "id = ? AND user_id = ?", id, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByUser(userID uuid.UUID, skip, limit int) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("OrderItems").Where("user_id = ?", userID).
		Order("created_at DESC").Offset(skip).Limit(limit).Find(&orders).Error
	return orders, err
}

func (r *orderRepository) Update(order *models.Order) error {
	return r.db.Omit("OrderItems").Save(order).Error
}

// Delete removes the order and its items in one transaction so a failure
// partway through leaves both intact.
func (r *orderRepository) Delete(order *models.Order) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(order).Error
	})
}
