package models

// OrderSequence is the per-day counter behind order number generation. One row
// per calendar date, created lazily on the first allocation for that date and
// never deleted. The date is stored as YYYY-MM-DD so the key is identical
// across database engines.
type OrderSequence struct {
	Date           string `json:"date" gorm:"primaryKey;size:10"`
	SequenceNumber int    `json:"sequence_number" gorm:"not null;default:0"`
}

func (OrderSequence) TableName() string {
	return "order_sequences"
}
