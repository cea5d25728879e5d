package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/apriyandi/timbangan-api/internal/logger"
	"github.com/apriyandi/timbangan-api/internal/models"
)

type WeightRecordReadRepository struct {
	db *sqlx.DB
}

func NewWeightRecordReadRepository(db *sqlx.DB) *WeightRecordReadRepository {
	return &WeightRecordReadRepository{db: db}
}

func (r *WeightRecordReadRepository) GetByID(ctx context.Context, id int64) (*models.WeightRecordDB, error) {
	const query = `
		SELECT id, box_id, weight, length, recorded_at
		FROM weight_records
		WHERE id = $1
	`

	var record models.WeightRecordDB
	err := executorFromContext(ctx, r.db).GetContext(ctx, &record, query, id)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetLatestByBox returns the box's most recent submission, or nil when
// the box has never reported.
func (r *WeightRecordReadRepository) GetLatestByBox(ctx context.Context, boxID string) (*models.WeightRecordDB, error) {
	const query = `
		SELECT id, box_id, weight, length, recorded_at
		FROM weight_records
		WHERE box_id = $1
		ORDER BY recorded_at DESC
		LIMIT 1
	`

	var record models.WeightRecordDB
	err := executorFromContext(ctx, r.db).GetContext(ctx, &record, query, boxID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{boxID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

type WeightRecordWriteRepository struct {
	db *sqlx.DB
}

func NewWeightRecordWriteRepository(db *sqlx.DB) *WeightRecordWriteRepository {
	return &WeightRecordWriteRepository{db: db}
}

func (r *WeightRecordWriteRepository) Create(ctx context.Context, boxID string, weight, length float64, recordedAt time.Time) (int64, error) {
	const query = `
		INSERT INTO weight_records (box_id, weight, length, recorded_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	args := []any{boxID, weight, length, recordedAt}

	var id int64
	err := executorFromContext(ctx, r.db).GetContext(ctx, &id, query, args...)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return id, err
}

type RecordReadRepository struct {
	db *sqlx.DB
}

func NewRecordReadRepository(db *sqlx.DB) *RecordReadRepository {
	return &RecordReadRepository{db: db}
}

func (r *RecordReadRepository) GetByID(ctx context.Context, id int64) (*models.RecordDB, error) {
	const query = `
		SELECT id, child_id, box_id, weight, length, recorded_at
		FROM records
		WHERE id = $1
	`

	var record models.RecordDB
	err := executorFromContext(ctx, r.db).GetContext(ctx, &record, query, id)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *RecordReadRepository) ListByChild(ctx context.Context, childID int64) ([]models.RecordDB, error) {
	const query = `
		SELECT id, child_id, box_id, weight, length, recorded_at
		FROM records
		WHERE child_id = $1
		ORDER BY recorded_at
	`

	records := []models.RecordDB{}
	err := executorFromContext(ctx, r.db).SelectContext(ctx, &records, query, childID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{childID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return records, nil
}

type RecordWriteRepository struct {
	db *sqlx.DB
}

func NewRecordWriteRepository(db *sqlx.DB) *RecordWriteRepository {
	return &RecordWriteRepository{db: db}
}

func (r *RecordWriteRepository) Create(ctx context.Context, childID int64, boxID string, weight, length float64, recordedAt time.Time) (int64, error) {
	const query = `
		INSERT INTO records (child_id, box_id, weight, length, recorded_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	args := []any{childID, boxID, weight, length, recordedAt}

	var id int64
	err := executorFromContext(ctx, r.db).GetContext(ctx, &id, query, args...)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return id, err
}
