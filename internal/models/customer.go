package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer name is not unique at the storage level. Order creation matches
// customers by case-insensitive name as a best-effort natural key; duplicate
// same-named rows created through other paths are left alone.
type Customer struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `json:"user_id" gorm:"type:uuid;index;not null"`
	Name         string    `json:"name" gorm:"size:255;not null"`
	Address      string    `json:"address" gorm:"size:255;not null"`
	Address2     string    `json:"address_2" gorm:"column:address_2;type:text"`
	Suburb       string    `json:"suburb" gorm:"size:255"`
	State        string    `json:"state" gorm:"size:255"`
	ReceiverName string    `json:"receiver_name" gorm:"size:255"`
	PostCode     string    `json:"post_code"`
	PhoneNumber  string    `json:"phone_number"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
