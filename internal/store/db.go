package store

import (
	"context"
	"fmt"

	"github.com/Knetic/go-namedParameterQuery"
	"github.com/audira/music-metrics/internal/dependency"
	"github.com/jmoiron/sqlx"
)

func (ms *MYSQLStore) DB() dependency.DB {
	return ms.db
}

// bindNamed turns :name placeholders into positional ones, expanding slice
// parameters for IN clauses.
func bindNamed(query string, params map[string]any) (string, []any, error) {
	q := namedParameterQuery.NewNamedParameterQuery(query)
	q.SetValuesFromMap(params)
	bound, args, err := sqlx.In(q.GetParsedQuery(), q.GetParsedParameters()...)
	if err != nil {
		return "", nil, fmt.Errorf("bind %q: %w", query, err)
	}
	return bound, args, nil
}

// QueryListNamed runs a named query and scans every row into a T.
func QueryListNamed[T any](ctx context.Context, conn dependency.DB, query string, params map[string]any) ([]T, error) {
	bound, args, err := bindNamed(query, params)
	if err != nil {
		return nil, err
	}

	rows, err := conn.QueryxContext(ctx, bound, args...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		var t T
		if err := rows.StructScan(&t); err != nil {
			return nil, fmt.Errorf("struct scan: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return out, nil
}

// QueryNamedOne runs a named query expected to match a single row. sql.ErrNoRows
// is wrapped, not replaced.
func QueryNamedOne[T any](ctx context.Context, conn dependency.DB, query string, params map[string]any) (T, error) {
	var t T
	bound, args, err := bindNamed(query, params)
	if err != nil {
		return t, err
	}

	if err := conn.QueryRowxContext(ctx, bound, args...).StructScan(&t); err != nil {
		return t, fmt.Errorf("struct scan: %w", err)
	}
	return t, nil
}
