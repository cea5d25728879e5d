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

// userUpdatableColumns is the allow-list for partial profile updates.
// The password column is deliberately absent: it has its own statement.
var userUpdatableColumns = map[string]bool{
	"name": true,
}

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.UserDB, error) {
	const query = `
		SELECT id, name, email, phone_number, password, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var user models.UserDB
	err := executorFromContext(ctx, r.db).GetContext(ctx, &user, query, id)

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
	return &user, nil
}

func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT id, name, email, phone_number, password, created_at, updated_at
		FROM users
		WHERE email = $1
		LIMIT 1
	`

	var user models.UserDB
	err := executorFromContext(ctx, r.db).GetContext(ctx, &user, query, email)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmailOrPhone resolves the login key, which may be either the
// registered email or the registered phone number.
func (r *UserReadRepository) GetByEmailOrPhone(ctx context.Context, key string) (*models.UserDB, error) {
	const query = `
		SELECT id, name, email, phone_number, password, created_at, updated_at
		FROM users
		WHERE email = $1 OR phone_number = $1
		LIMIT 1
	`

	var user models.UserDB
	err := executorFromContext(ctx, r.db).GetContext(ctx, &user, query, key)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{key},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

func (r *UserWriteRepository) Create(ctx context.Context, name, email, phoneNumber, passwordHash string) (int64, error) {
	const query = `
		INSERT INTO users (name, email, phone_number, password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id
	`
	args := []any{name, email, phoneNumber, passwordHash}

	var id int64
	err := executorFromContext(ctx, r.db).GetContext(ctx, &id, query, args...)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{name, email, phoneNumber},
		"error", err,
	)

	return id, err
}

// UpdateFields applies a partial update built from the allow-listed
// subset of fields. An empty subset is a no-op, not an error.
func (r *UserWriteRepository) UpdateFields(ctx context.Context, id int64, fields map[string]any) error {
	set, args := buildSetClause(fields, userUpdatableColumns)
	if set == "" {
		return nil
	}

	query := fmt.Sprintf(
		"UPDATE users SET %s, updated_at = NOW() WHERE id = $%d",
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

func (r *UserWriteRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	const query = `
		UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2
	`

	_, err := executorFromContext(ctx, r.db).ExecContext(ctx, query, passwordHash, id)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	return err
}
