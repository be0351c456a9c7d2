package database

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/nfrund/hive/internal/domain"
	"github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/models"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidateRowQuery rejects table or column names that cannot be used as bare
// identifiers. Values are always bound as parameters.
func ValidateRowQuery(q domain.RowQuery) error {
	names := append([]string{q.Table, q.Field}, q.Columns...)
	for _, name := range names {
		if !identifierPattern.MatchString(name) {
			return fmt.Errorf("%w: identifier %q", ErrInvalidInput, name)
		}
	}
	return nil
}

// SurrealRowStore reads single rows from SurrealDB tables.
type SurrealRowStore struct {
	db *surrealdb.DB
}

// NewSurrealRowStore creates a row store on an already signed-in connection.
func NewSurrealRowStore(db *surrealdb.DB) *SurrealRowStore {
	return &SurrealRowStore{db: db}
}

// Shutdown closes the underlying connection.
func (s *SurrealRowStore) Shutdown(ctx context.Context) error {
	return s.db.Close(ctx)
}

// SelectOne fetches the single row of q.Table whose q.Field equals q.Value.
// LIMIT 2 is enough to tell "exactly one" apart from "more than one".
func (s *SurrealRowStore) SelectOne(ctx context.Context, q domain.RowQuery) (domain.Row, error) {
	if err := ValidateRowQuery(q); err != nil {
		return nil, err
	}

	columns := "*"
	if len(q.Columns) > 0 {
		columns = strings.Join(q.Columns, ", ")
	}
	query := fmt.Sprintf("SELECT %s FROM type::table($table) WHERE %s = $value LIMIT 2", columns, q.Field)
	params := map[string]any{"table": q.Table, "value": q.Value}

	rows, err := Query[map[string]any](ctx, s.db, query, params)
	if err != nil {
		return nil, NewDBError(err, "select one row").WithQuery(query).WithParams(params)
	}

	row, err := ExactlyOne(rows)
	if err != nil {
		return nil, NewDBError(err, fmt.Sprintf("select one row from %s", q.Table)).WithParams(params)
	}
	return normalizeRow(row), nil
}

// normalizeRow flattens SurrealDB record ids into their "table:id" form so
// rows look the same regardless of the backing store.
func normalizeRow(in map[string]any) domain.Row {
	out := make(domain.Row, len(in))
	for k, v := range in {
		switch id := v.(type) {
		case models.RecordID:
			out[k] = fmt.Sprintf("%s:%v", id.Table, id.ID)
		case *models.RecordID:
			if id != nil {
				out[k] = fmt.Sprintf("%s:%v", id.Table, id.ID)
			}
		default:
			out[k] = v
		}
	}
	return out
}
