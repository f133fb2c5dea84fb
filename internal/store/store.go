package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
)

var (
	ErrInvalidIdentifier  = errors.New("invalid identifier")
	ErrIDCountMismatch    = errors.New("store returned a different number of ids than rows inserted")
	ErrRefreshUnsupported = errors.New("refresh procedures are not supported by this provider")
)

// validIdentifier validates SQL identifiers (table/column/procedure names) to prevent SQL injection
var validIdentifier = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Store is the persistence boundary of the seed-loader.
type Store interface {
	// InsertBatch inserts rows into table and returns the generated ids in row order.
	InsertBatch(ctx context.Context, table string, columns []string, rows [][]interface{}) ([]int64, error)
	// Refresh invokes a server-side procedure by name.
	Refresh(ctx context.Context, procedure string) error
	Close() error
}

type Options struct {
	Provider string
	URL      string
	APIKey   string
}

// Open connects to the store selected by opts.Provider.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Provider {
	case "memory":
		return NewMemory(), nil
	case "supabase":
		return NewSupabase(opts.URL, opts.APIKey)
	case "mysql":
		s := NewMySQL()
		if err := s.Connect(ctx, opts.URL); err != nil {
			return nil, err
		}
		return s, nil
	case "sqlite", "sqlite3":
		s := NewSQLite()
		if err := s.Connect(ctx, opts.URL); err != nil {
			return nil, err
		}
		return s, nil
	case "postgresql", "postgres", "":
		s := NewPostgres()
		if err := s.Connect(ctx, opts.URL); err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", opts.Provider)
	}
}

func checkIdentifiers(names ...string) error {
	for _, name := range names {
		if !validIdentifier.MatchString(name) {
			return fmt.Errorf("%w: %q", ErrInvalidIdentifier, name)
		}
	}
	return nil
}

func checkBatch(table string, columns []string, rows [][]interface{}) error {
	if err := checkIdentifiers(table); err != nil {
		return err
	}
	if err := checkIdentifiers(columns...); err != nil {
		return err
	}
	for i, row := range rows {
		if len(row) != len(columns) {
			return fmt.Errorf("row %d of %s has %d values for %d columns", i, table, len(row), len(columns))
		}
	}
	return nil
}

func checkIDs(table string, ids []int64, rows int) error {
	if len(ids) != rows {
		return fmt.Errorf("%w: %s got %d ids for %d rows", ErrIDCountMismatch, table, len(ids), rows)
	}
	return nil
}

// sqlValues copies row with raw JSON turned into text, which every SQL driver
// accepts for JSON columns.
func sqlValues(row []interface{}) []interface{} {
	out := make([]interface{}, len(row))
	for i, v := range row {
		if raw, ok := v.(json.RawMessage); ok {
			if raw == nil {
				out[i] = nil
			} else {
				out[i] = string(raw)
			}
			continue
		}
		out[i] = v
	}
	return out
}
