// Package postgres serves profile rows from PostgreSQL for deployments that
// keep application tables outside SurrealDB.
package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nfrund/hive/internal/database"
	"github.com/nfrund/hive/internal/domain"
)

// NewPool parses databaseURL, opens a pool and verifies it with a ping.
func NewPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing database URL: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return pool, nil
}

// RowStore implements domain.RowStore on a pgx pool.
type RowStore struct {
	pool *pgxpool.Pool
}

// NewRowStore creates a RowStore using pool.
func NewRowStore(pool *pgxpool.Pool) *RowStore {
	return &RowStore{pool: pool}
}

// Shutdown closes the pool.
func (s *RowStore) Shutdown() {
	s.pool.Close()
}

// SelectOne returns the single row of q.Table whose q.Field equals q.Value.
func (s *RowStore) SelectOne(ctx context.Context, q domain.RowQuery) (domain.Row, error) {
	if err := database.ValidateRowQuery(q); err != nil {
		return nil, err
	}

	query := buildSelect(q)
	rows, err := s.pool.Query(ctx, query, q.Value)
	if err != nil {
		return nil, database.NewDBError(fmt.Errorf("%w: %w", database.ErrQueryFailed, err), "select one row").WithQuery(query)
	}

	maps, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, database.NewDBError(fmt.Errorf("%w: %w", database.ErrQueryFailed, err), "collect rows").WithQuery(query)
	}

	row, err := database.ExactlyOne(maps)
	if err != nil {
		return nil, database.NewDBError(err, fmt.Sprintf("select one row from %s", q.Table)).
			WithParams(map[string]any{q.Field: q.Value})
	}
	return domain.Row(row), nil
}

func buildSelect(q domain.RowQuery) string {
	columns := "*"
	if len(q.Columns) > 0 {
		quoted := make([]string, len(q.Columns))
		for i, c := range q.Columns {
			quoted[i] = pgx.Identifier{c}.Sanitize()
		}
		columns = strings.Join(quoted, ", ")
	}
	return fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1 LIMIT 2",
		columns, pgx.Identifier{q.Table}.Sanitize(), pgx.Identifier{q.Field}.Sanitize())
}
