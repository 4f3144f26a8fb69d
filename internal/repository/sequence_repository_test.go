package repository_test

import (
	"errors"
	"testing"
	"time"

	"temp_dashboard/internal/models"
	"temp_dashboard/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func allocate(t *testing.T, db *gorm.DB, repo repository.SequenceRepository, day time.Time) int {
	t.Helper()

	var seq int
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		seq, err = repo.Next(tx, day)
		return err
	})
	require.NoError(t, err)
	return seq
}

func TestSequenceStartsAtOne(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewSequenceRepository()
	day := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, allocate(t, db, repo, day))
}

func TestSequenceValuesAreDistinctAndGapless(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewSequenceRepository()
	day := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)

	seen := map[int]bool{}
	for i := 1; i <= 20; i++ {
		seq := allocate(t, db, repo, day)
		assert.Equal(t, i, seq)
		assert.False(t, seen[seq], "sequence value %d allocated twice", seq)
		seen[seq] = true
	}
}

func TestSequenceResetsPerDate(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewSequenceRepository()
	monday := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	tuesday := time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)

	allocate(t, db, repo, monday)
	allocate(t, db, repo, monday)
	assert.Equal(t, 3, allocate(t, db, repo, monday))

	// A fresh date starts again at 1 no matter where the previous date ended.
	assert.Equal(t, 1, allocate(t, db, repo, tuesday))
}

func TestSequenceIncrementRevertsOnRollback(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewSequenceRepository()
	day := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, allocate(t, db, repo, day))

	boom := errors.New("boom")
	err := db.Transaction(func(tx *gorm.DB) error {
		seq, err := repo.Next(tx, day)
		require.NoError(t, err)
		require.Equal(t, 2, seq)
		return boom
	})
	require.ErrorIs(t, err, boom)

	var counter models.OrderSequence
	require.NoError(t, db.First(&counter, "date = ?", "2024-03-05").Error)
	assert.Equal(t, 1, counter.SequenceNumber)

	// The reverted value is handed out again on the next allocation.
	assert.Equal(t, 2, allocate(t, db, repo, day))
}
