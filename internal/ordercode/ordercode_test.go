package ordercode

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "050324-0007", Format(day, 7))
	assert.Equal(t, "050324-0001", Format(day, 1))
	assert.Equal(t, "050324-9999", Format(day, 9999))
}

func TestFormatWidensPastFourDigits(t *testing.T) {
	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	// The sequence must never be truncated.
	assert.Equal(t, "050324-12345", Format(day, 12345))
}

func TestDateKey(t *testing.T) {
	day := time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, "2024-01-01", DateKey(day))
}
