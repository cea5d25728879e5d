package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/jmoiron/sqlx"
)

// contextKey is an unexported type for keys in context.
type contextKey struct{}

var txKey = contextKey{}

// TxRunner wraps a function in a single database transaction. The
// transaction travels through the context, so repositories called from
// fn automatically join it; code outside a transaction hits the pool
// directly.
type TxRunner struct {
	db *sqlx.DB
}

func NewTxRunner(db *sqlx.DB) *TxRunner {
	return &TxRunner{db: db}
}

// WithTx begins a transaction, runs fn with it in the context and
// commits. Any error from fn rolls the transaction back.
func (t *TxRunner) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := t.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if rec := recover(); rec != nil {
			tx.Rollback()
			panic(rec)
		}
	}()

	if err := fn(setTxToContext(ctx, tx)); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}

// setTxToContext stores a transaction in the context.
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// getTxFromContext retrieves the transaction from the context. Returns nil if not present.
func getTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}

// executor is the subset of sqlx shared by *sqlx.DB and *sqlx.Tx.
type executor interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// executorFromContext prefers the context transaction over the pool.
func executorFromContext(ctx context.Context, db *sqlx.DB) executor {
	if tx := getTxFromContext(ctx); tx != nil {
		return tx
	}
	return db
}

// buildSetClause renders "col = $1, ..." for the fields present in
// both the payload and the allow-list. Columns are sorted so the SQL
// is deterministic. An empty result means there is nothing to update.
func buildSetClause(fields map[string]any, allowed map[string]bool) (string, []any) {
	cols := make([]string, 0, len(fields))
	for col := range fields {
		if allowed[col] {
			cols = append(cols, col)
		}
	}
	if len(cols) == 0 {
		return "", nil
	}
	sort.Strings(cols)

	clause := ""
	args := make([]any, 0, len(cols))
	for i, col := range cols {
		if i > 0 {
			clause += ", "
		}
		clause += fmt.Sprintf("%s = $%d", col, i+1)
		args = append(args, fields[col])
	}
	return clause, args
}
