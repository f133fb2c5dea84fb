package store

import (
	"context"
	"fmt"
	"sync"
)

// Batch records one InsertBatch call made against a Memory store.
type Batch struct {
	Table string
	Rows  int
}

// Memory keeps rows in process. It backs dry runs and tests.
type Memory struct {
	mu      sync.Mutex
	columns map[string][]string
	rows    map[string][][]interface{}
	nextID  map[string]int64
	batches []Batch
	refresh []string

	// FailTable makes inserts into that table return InsertErr.
	FailTable  string
	InsertErr  error
	RefreshErr error
}

func NewMemory() *Memory {
	return &Memory{
		columns: make(map[string][]string),
		rows:    make(map[string][][]interface{}),
		nextID:  make(map[string]int64),
	}
}

func (m *Memory) InsertBatch(ctx context.Context, table string, columns []string, rows [][]interface{}) ([]int64, error) {
	if err := checkBatch(table, columns, rows); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailTable != "" && m.FailTable == table {
		err := m.InsertErr
		if err == nil {
			err = fmt.Errorf("insert into %s failed", table)
		}
		return nil, err
	}

	m.columns[table] = columns
	ids := make([]int64, len(rows))
	for i, row := range rows {
		m.nextID[table]++
		ids[i] = m.nextID[table]
		m.rows[table] = append(m.rows[table], row)
	}
	m.batches = append(m.batches, Batch{Table: table, Rows: len(rows)})
	return ids, nil
}

func (m *Memory) Refresh(ctx context.Context, procedure string) error {
	if err := checkIdentifiers(procedure); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.RefreshErr != nil {
		return m.RefreshErr
	}
	m.refresh = append(m.refresh, procedure)
	return nil
}

func (m *Memory) Close() error {
	return nil
}

// Count returns the number of rows stored in table.
func (m *Memory) Count(table string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows[table])
}

// Rows returns the stored rows of table as column-name maps.
func (m *Memory) Rows(table string) []map[string]interface{} {
	m.mu.Lock()
	defer m.mu.Unlock()

	cols := m.columns[table]
	out := make([]map[string]interface{}, 0, len(m.rows[table]))
	for _, row := range m.rows[table] {
		rec := make(map[string]interface{}, len(cols))
		for i, c := range cols {
			rec[c] = row[i]
		}
		out = append(out, rec)
	}
	return out
}

func (m *Memory) Batches() []Batch {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Batch(nil), m.batches...)
}

func (m *Memory) Refreshed() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.refresh...)
}
