package repositories

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apriyandi/timbangan-api/internal/models"
)

var childColumnList = []string{
	"id", "name", "birth_date", "birth_place", "weight", "length",
	"weight_recorded_at", "parent_id", "created_at", "updated_at",
}

func childRow(id int64, name string, parentID int64, now time.Time) []driver.Value {
	return []driver.Value{id, name, nil, nil, nil, nil, nil, parentID, now, now}
}

func TestChildReadRepository_ListByParent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewChildReadRepository(db)
	now := time.Now()

	mock.ExpectQuery(`FROM children\s+WHERE parent_id = \$1\s+ORDER BY id`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(childColumnList).
			AddRow(childRow(1, "Budi", 7, now)...).
			AddRow(childRow(2, "Ani", 7, now)...))

	children, err := repo.ListByParent(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, children, 2)
	assert.Equal(t, "Budi", children[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChildReadRepository_GetByIDAndParent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewChildReadRepository(db)
	now := time.Now()

	t.Run("owned", func(t *testing.T) {
		mock.ExpectQuery(`FROM children\s+WHERE id = \$1 AND parent_id = \$2`).
			WithArgs(int64(3), int64(7)).
			WillReturnRows(sqlmock.NewRows(childColumnList).AddRow(childRow(3, "Budi", 7, now)...))

		child, err := repo.GetByIDAndParent(context.Background(), 3, 7)
		require.NoError(t, err)
		assert.Equal(t, int64(3), child.ID)
	})

	t.Run("someone else's child is nil", func(t *testing.T) {
		mock.ExpectQuery(`FROM children\s+WHERE id = \$1 AND parent_id = \$2`).
			WithArgs(int64(3), int64(99)).
			WillReturnError(sql.ErrNoRows)

		child, err := repo.GetByIDAndParent(context.Background(), 3, 99)
		assert.NoError(t, err)
		assert.Nil(t, child)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChildReadRepository_FirstByParent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewChildReadRepository(db)
	now := time.Now()

	t.Run("lowest id wins", func(t *testing.T) {
		mock.ExpectQuery(`FROM children\s+WHERE parent_id = \$1\s+ORDER BY id\s+LIMIT 1`).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows(childColumnList).AddRow(childRow(1, "Budi", 7, now)...))

		child, err := repo.FirstByParent(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, int64(1), child.ID)
	})

	t.Run("childless parent is nil", func(t *testing.T) {
		mock.ExpectQuery(`FROM children\s+WHERE parent_id = \$1\s+ORDER BY id\s+LIMIT 1`).
			WithArgs(int64(8)).
			WillReturnError(sql.ErrNoRows)

		child, err := repo.FirstByParent(context.Background(), 8)
		assert.NoError(t, err)
		assert.Nil(t, child)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChildWriteRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewChildWriteRepository(db)

	mock.ExpectQuery(`INSERT INTO children \(name, birth_date, birth_place, parent_id, created_at, updated_at\)\s+VALUES \(\$1, \$2, \$3, \$4, NOW\(\), NOW\(\)\)\s+RETURNING id`).
		WithArgs("Budi", nil, nil, int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))

	id, err := repo.Create(context.Background(), "Budi", (*models.DateTime)(nil), nil, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChildWriteRepository_UpdateFields(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewChildWriteRepository(db)

	t.Run("sorted multi-column update", func(t *testing.T) {
		mock.ExpectExec(`UPDATE children SET length = \$1, weight = \$2, updated_at = NOW\(\) WHERE id = \$3`).
			WithArgs(53.5, 4.2, int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateFields(context.Background(), 3, map[string]any{"weight": 4.2, "length": 53.5})
		assert.NoError(t, err)
	})

	t.Run("ownership never moves", func(t *testing.T) {
		// parent_id is not in the allow-list, so nothing runs
		assert.NoError(t, repo.UpdateFields(context.Background(), 3, map[string]any{"parent_id": int64(99)}))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChildWriteRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewChildWriteRepository(db)

	mock.ExpectExec(`DELETE FROM children WHERE id = \$1`).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(context.Background(), 3))
	assert.NoError(t, mock.ExpectationsWereMet())
}
