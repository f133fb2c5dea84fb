package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"
)

// SQLStore drives MySQL and SQLite through database/sql. Neither returns ids
// from a multi-row insert, so rows go in one at a time inside a transaction.
type SQLStore struct {
	db       *sql.DB
	qb       squirrel.StatementBuilderType
	provider string
}

func NewMySQL() *SQLStore {
	return &SQLStore{
		qb:       squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
		provider: "mysql",
	}
}

func NewSQLite() *SQLStore {
	return &SQLStore{
		qb:       squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
		provider: "sqlite",
	}
}

func (s *SQLStore) Connect(ctx context.Context, url string) error {
	var (
		driverName string
		dsn        string
	)
	switch s.provider {
	case "mysql":
		driverName, dsn = "mysql", mysqlDSN(url)
	default:
		driverName, dsn = "sqlite3", sqliteDSN(url)
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return fmt.Errorf("failed to open %s connection: %w", s.provider, err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping %s: %w", s.provider, err)
	}

	s.db = db
	return nil
}

// mysqlDSN turns a mysql:// URL into a go-sql-driver DSN.
func mysqlDSN(url string) string {
	if !strings.HasPrefix(url, "mysql://") {
		return url
	}
	dsn := strings.TrimPrefix(url, "mysql://")

	atIndex := strings.Index(dsn, "@")
	if atIndex <= 0 {
		return dsn
	}
	credentials := dsn[:atIndex]
	remainder := dsn[atIndex+1:]

	slashIndex := strings.Index(remainder, "/")
	if slashIndex <= 0 {
		return dsn
	}
	hostPort := remainder[:slashIndex]
	dbAndParams := remainder[slashIndex+1:]

	replacer := strings.NewReplacer(
		"ssl-mode=REQUIRED", "tls=skip-verify",
		"ssl-mode=DISABLED", "tls=false",
		"sslmode=require", "tls=skip-verify",
		"sslmode=disable", "tls=false",
	)
	dbAndParams = replacer.Replace(dbAndParams)

	return fmt.Sprintf("%s@tcp(%s)/%s", credentials, hostPort, dbAndParams)
}

func sqliteDSN(url string) string {
	dsn := strings.TrimPrefix(url, "sqlite://")
	if !strings.Contains(dsn, "?") {
		dsn += "?_foreign_keys=on"
	}
	return dsn
}

func (s *SQLStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLStore) InsertBatch(ctx context.Context, table string, columns []string, rows [][]interface{}) ([]int64, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	if err := checkBatch(table, columns, rows); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		query, args, err := s.qb.Insert(table).Columns(columns...).Values(sqlValues(row)...).ToSql()
		if err != nil {
			return nil, err
		}
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return nil, fmt.Errorf("failed to insert into %s: %w", table, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("failed to read id from %s: %w", table, err)
		}
		ids = append(ids, id)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit %s batch: %w", table, err)
	}
	return ids, checkIDs(table, ids, len(rows))
}

func (s *SQLStore) Refresh(ctx context.Context, procedure string) error {
	if err := checkIdentifiers(procedure); err != nil {
		return err
	}
	if s.provider != "mysql" {
		return ErrRefreshUnsupported
	}
	_, err := s.db.ExecContext(ctx, fmt.Sprintf("CALL `%s`()", procedure))
	return err
}
