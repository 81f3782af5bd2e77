package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/arivera-dev/inventario/internal/model"
)

// Executor runs catalog queries and materializes every row as a column-keyed
// map. It satisfies the assistant's Querier contract.
type Executor struct {
	db DB
}

func NewExecutor(db DB) *Executor {
	return &Executor{db: db}
}

// Query runs one statement and maps every row by its field descriptions.
// Zero matching rows return an empty slice.
func (e *Executor) Query(ctx context.Context, sql string, args ...any) ([]model.Row, error) {
	rows, err := e.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	results := make([]model.Row, 0)

	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("read row values: %w", err)
		}

		row := make(model.Row, len(fields))
		for i, field := range fields {
			row[field.Name] = normalizeValue(values[i])
		}
		results = append(results, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return results, nil
}

// normalizeValue converts pgx driver types to the plain Go types the
// formatter and JSON encoding expect.
func normalizeValue(v any) any {
	switch val := v.(type) {
	case pgtype.Numeric:
		f, err := val.Float64Value()
		if err != nil || !f.Valid {
			return nil
		}
		return f.Float64
	case [16]byte: // uuid
		return fmt.Sprintf("%x-%x-%x-%x-%x", val[0:4], val[4:6], val[6:8], val[8:10], val[10:16])
	default:
		return v
	}
}
