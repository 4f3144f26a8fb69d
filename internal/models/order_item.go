package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderItem references its product by name text only; no foreign key to the
// product catalog is enforced.
type OrderItem struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `json:"order_id" gorm:"type:uuid;index;not null"`
	ProductName string    `json:"product_name" gorm:"size:255;not null"`
	OrderQty    int       `json:"order_qty" gorm:"not null"`
	FileURL     string    `json:"file_url"`
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
