package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/apriyandi/timbangan-api/internal/logger"
	"github.com/apriyandi/timbangan-api/internal/models"
)

// childUpdatableColumns is the allow-list for partial child updates.
// parent_id is deliberately absent: ownership never moves.
var childUpdatableColumns = map[string]bool{
	"name":               true,
	"birth_date":         true,
	"birth_place":        true,
	"weight":             true,
	"length":             true,
	"weight_recorded_at": true,
}

const childColumns = `
	id, name, birth_date, birth_place, weight, length, weight_recorded_at,
	parent_id, created_at, updated_at
`

type ChildReadRepository struct {
	db *sqlx.DB
}

func NewChildReadRepository(db *sqlx.DB) *ChildReadRepository {
	return &ChildReadRepository{db: db}
}

func (r *ChildReadRepository) ListByParent(ctx context.Context, parentID int64) ([]models.ChildDB, error) {
	query := `
		SELECT ` + childColumns + `
		FROM children
		WHERE parent_id = $1
		ORDER BY id
	`

	children := []models.ChildDB{}
	err := executorFromContext(ctx, r.db).SelectContext(ctx, &children, query, parentID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{parentID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return children, nil
}

func (r *ChildReadRepository) GetByID(ctx context.Context, id int64) (*models.ChildDB, error) {
	query := `
		SELECT ` + childColumns + `
		FROM children
		WHERE id = $1
	`

	var child models.ChildDB
	err := executorFromContext(ctx, r.db).GetContext(ctx, &child, query, id)

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
	return &child, nil
}

// GetByIDAndParent is the ownership check: the row must both exist and
// belong to the given parent.
func (r *ChildReadRepository) GetByIDAndParent(ctx context.Context, id, parentID int64) (*models.ChildDB, error) {
	query := `
		SELECT ` + childColumns + `
		FROM children
		WHERE id = $1 AND parent_id = $2
	`

	var child models.ChildDB
	err := executorFromContext(ctx, r.db).GetContext(ctx, &child, query, id, parentID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{id, parentID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &child, nil
}

// FirstByParent returns the parent's first child by id. Record saving
// and listing operate on this single child.
func (r *ChildReadRepository) FirstByParent(ctx context.Context, parentID int64) (*models.ChildDB, error) {
	query := `
		SELECT ` + childColumns + `
		FROM children
		WHERE parent_id = $1
		ORDER BY id
		LIMIT 1
	`

	var child models.ChildDB
	err := executorFromContext(ctx, r.db).GetContext(ctx, &child, query, parentID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{parentID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &child, nil
}

type ChildWriteRepository struct {
	db *sqlx.DB
}

func NewChildWriteRepository(db *sqlx.DB) *ChildWriteRepository {
	return &ChildWriteRepository{db: db}
}

func (r *ChildWriteRepository) Create(ctx context.Context, name string, birthDate *models.DateTime, birthPlace *string, parentID int64) (int64, error) {
	const query = `
		INSERT INTO children (name, birth_date, birth_place, parent_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id
	`
	args := []any{name, birthDate, birthPlace, parentID}

	var id int64
	err := executorFromContext(ctx, r.db).GetContext(ctx, &id, query, args...)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return id, err
}

// UpdateFields applies a partial update built from the allow-listed
// subset of fields. An empty subset is a no-op, not an error.
func (r *ChildWriteRepository) UpdateFields(ctx context.Context, id int64, fields map[string]any) error {
	set, args := buildSetClause(fields, childUpdatableColumns)
	if set == "" {
		return nil
	}

	query := fmt.Sprintf(
		"UPDATE children SET %s, updated_at = NOW() WHERE id = $%d",
		set, len(args)+1,
	)
	args = append(args, id)

	_, err := executorFromContext(ctx, r.db).ExecContext(ctx, query, args...)

	logger.Log.Infow("query",
		"sql", query,
		"args", args,
		"error", err,
	)

	return err
}

func (r *ChildWriteRepository) Delete(ctx context.Context, id int64) error {
	const query = `
		DELETE FROM children WHERE id = $1
	`

	_, err := executorFromContext(ctx, r.db).ExecContext(ctx, query, id)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	return err
}
