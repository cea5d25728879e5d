package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var weightRecordColumnList = []string{"id", "box_id", "weight", "length", "recorded_at"}

func TestWeightRecordReadRepository_GetLatestByBox(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWeightRecordReadRepository(db)
	now := time.Now()

	t.Run("newest submission", func(t *testing.T) {
		mock.ExpectQuery(`FROM weight_records\s+WHERE box_id = \$1\s+ORDER BY recorded_at DESC\s+LIMIT 1`).
			WithArgs("box-0042").
			WillReturnRows(sqlmock.NewRows(weightRecordColumnList).
				AddRow(int64(17), "box-0042", 4.2, 53.5, now))

		record, err := repo.GetLatestByBox(context.Background(), "box-0042")
		require.NoError(t, err)
		assert.Equal(t, int64(17), record.ID)
	})

	t.Run("box never reported", func(t *testing.T) {
		mock.ExpectQuery(`FROM weight_records\s+WHERE box_id = \$1`).
			WithArgs("box-9999").
			WillReturnError(sql.ErrNoRows)

		record, err := repo.GetLatestByBox(context.Background(), "box-9999")
		assert.NoError(t, err)
		assert.Nil(t, record)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWeightRecordWriteRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWeightRecordWriteRepository(db)
	recordedAt := time.Date(2024, 8, 1, 9, 30, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO weight_records \(box_id, weight, length, recorded_at\)\s+VALUES \(\$1, \$2, \$3, \$4\)\s+RETURNING id`).
		WithArgs("box-0042", 4.2, 53.5, recordedAt).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(17)))

	id, err := repo.Create(context.Background(), "box-0042", 4.2, 53.5, recordedAt)
	require.NoError(t, err)
	assert.Equal(t, int64(17), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordReadRepository_ListByChild(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecordReadRepository(db)
	now := time.Now()

	mock.ExpectQuery(`FROM records\s+WHERE child_id = \$1\s+ORDER BY recorded_at`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "child_id", "box_id", "weight", "length", "recorded_at"}).
			AddRow(int64(1), int64(3), "box-0042", 4.2, 53.5, now.Add(-time.Hour)).
			AddRow(int64(2), int64(3), "box-0042", 4.4, 54.0, now))

	records, err := repo.ListByChild(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, int64(1), records[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordWriteRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecordWriteRepository(db)
	recordedAt := time.Date(2024, 8, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO records \(child_id, box_id, weight, length, recorded_at\)\s+VALUES \(\$1, \$2, \$3, \$4, \$5\)\s+RETURNING id`).
		WithArgs(int64(3), "box-0042", 4.2, 53.5, recordedAt).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))

	id, err := repo.Create(context.Background(), 3, "box-0042", 4.2, 53.5, recordedAt)
	require.NoError(t, err)
	assert.Equal(t, int64(5), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}
