package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order carries its own snapshot of the customer contact fields taken at
// creation time; it does not reference a Customer row.
type Order struct {
	ID                   uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	OrderNumber          string    `json:"order_number" gorm:"uniqueIndex;size:20"` // DDMMYY-NNNN
	UserID               uuid.UUID `json:"user_id" gorm:"type:uuid;index;not null"`
	OrderReferenceNumber string    `json:"order_reference_number" gorm:"size:255;not null"`
	IssuesDate           time.Time `json:"issues_date" gorm:"not null"`
	DueDate              time.Time `json:"due_date" gorm:"not null"`

	Name         string `json:"name" gorm:"size:255;not null"`
	Address      string `json:"address" gorm:"size:255;not null"`
	Address2     string `json:"address_2" gorm:"column:address_2"`
	Suburb       string `json:"suburb"`
	State        string `json:"state"`
	ReceiverName string `json:"receiver_name"`
	PostCode     string `json:"post_code"`
	PhoneNumber  string `json:"phone_number"`

	CreatedAt time.Time `json:"created_at"`

	OrderItems []OrderItem `json:"order_items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
