package store

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

// Postgres inserts through a pgx pool. It also serves Supabase projects via
// their direct connection string.
type Postgres struct {
	pool *pgxpool.Pool
	qb   squirrel.StatementBuilderType
}

func NewPostgres() *Postgres {
	return &Postgres{
		qb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (p *Postgres) Connect(ctx context.Context, url string) error {
	config, err := pgxpool.ParseConfig(url)
	if err != nil {
		return fmt.Errorf("failed to parse connection URL: %w", err)
	}

	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeExec

	config.MaxConns = 2
	config.MinConns = 0
	config.MaxConnLifetime = 15 * time.Minute
	config.MaxConnIdleTime = 3 * time.Minute
	config.HealthCheckPeriod = 30 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	p.pool = pool
	return nil
}

func (p *Postgres) Close() error {
	if p.pool != nil {
		p.pool.Close()
	}
	return nil
}

// buildInsert renders one multi-row INSERT returning the generated ids.
func (p *Postgres) buildInsert(table string, columns []string, rows [][]interface{}) (string, []interface{}, error) {
	if err := checkBatch(table, columns, rows); err != nil {
		return "", nil, err
	}
	q := p.qb.Insert(table).Columns(columns...)
	for _, row := range rows {
		q = q.Values(sqlValues(row)...)
	}
	return q.Suffix("RETURNING id").ToSql()
}

func (p *Postgres) InsertBatch(ctx context.Context, table string, columns []string, rows [][]interface{}) ([]int64, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	query, args, err := p.buildInsert(table, columns, rows)
	if err != nil {
		return nil, err
	}

	result, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to insert into %s: %w", table, err)
	}
	defer result.Close()

	ids := make([]int64, 0, len(rows))
	for result.Next() {
		var id int64
		if err := result.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan id from %s: %w", table, err)
		}
		ids = append(ids, id)
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("failed to insert into %s: %w", table, err)
	}

	return ids, checkIDs(table, ids, len(rows))
}

func refreshQuery(procedure string) (string, error) {
	if err := checkIdentifiers(procedure); err != nil {
		return "", err
	}
	return fmt.Sprintf("SELECT %s()", pq.QuoteIdentifier(procedure)), nil
}

func (p *Postgres) Refresh(ctx context.Context, procedure string) error {
	query, err := refreshQuery(procedure)
	if err != nil {
		return err
	}
	_, err = p.pool.Exec(ctx, query)
	return err
}
