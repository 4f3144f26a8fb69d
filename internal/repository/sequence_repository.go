package repository

import (
	"time"

	"temp_dashboard/internal/ordercode"

	"gorm.io/gorm"
)

// SequenceRepository allocates per-day order sequence values. Allocation must
// run on the surrounding order transaction so that a rollback also reverts the
// increment.
type SequenceRepository interface {
	Next(tx *gorm.DB, day time.Time) (int, error)
}

type sequenceRepository struct{}

func NewSequenceRepository() SequenceRepository {
	return &sequenceRepository{}
}

// Next returns the next unused sequence value for the given date. The counter
// row is created with value 1 on the first allocation for a date; afterwards a
// single atomic increment-and-return keeps concurrent allocators from ever
// observing the same value: the conflicting UPDATE takes a row lock, so two
// transactions on the same date serialize while different dates do not
// contend.
func (r *sequenceRepository) Next(tx *gorm.DB, day time.Time) (int, error) {
	var seq int
	err := tx.Raw(`
		INSERT INTO order_sequences (date, sequence_number)
		VALUES (?, 1)
		ON CONFLICT (date) DO UPDATE SET sequence_number = order_sequences.sequence_number + 1
		RETURNING sequence_number`,
		ordercode.DateKey(day),
	).Scan(&seq).Error
	if err != nil {
		return 0, err
	}
	return seq, nil
}
