package integration

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Rana718/scout/internal/config"
	"github.com/Rana718/scout/internal/seeder"
	"github.com/Rana718/scout/internal/store"
	"github.com/Rana718/scout/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

type Database struct {
	Name   string
	Driver string
	DSN    string
	URL    string
}

// databases returns SQLite always and the server databases whose URL is set
// in the environment, e.g. by docker-compose in CI.
func databases(t *testing.T) []Database {
	path := filepath.Join(t.TempDir(), "scout.sqlite")
	dbs := []Database{{Name: "sqlite", Driver: "sqlite3", DSN: path + "?_foreign_keys=on", URL: "sqlite://" + path}}

	if url := os.Getenv("SCOUT_TEST_POSTGRES_URL"); url != "" {
		dbs = append(dbs, Database{Name: "postgresql", Driver: "pgx", DSN: url, URL: url})
	}
	if dsn := os.Getenv("SCOUT_TEST_MYSQL_DSN"); dsn != "" {
		dbs = append(dbs, Database{Name: "mysql", Driver: "mysql", DSN: dsn, URL: dsn})
	}
	return dbs
}

func testConfig() config.Seed {
	cfg := config.DefaultConfig().Seed
	cfg.Brands = 12
	cfg.Products = 60
	cfg.Customers = 50
	cfg.Stores = 6
	cfg.Transactions = 250
	cfg.Batch = 40
	cfg.TransactionBatch = 100
	cfg.HealthPerDevice = 5
	cfg.LogsPerDevice = 5
	cfg.RandomSeed = 2024
	return cfg
}

func applySchema(t *testing.T, db *sql.DB, dbType template.DatabaseType) {
	t.Helper()
	schema := template.NewProjectTemplate(dbType).GetSchema()
	if i := strings.Index(schema, "DELIMITER"); i >= 0 {
		schema = schema[:i]
	}
	for _, stmt := range strings.Split(schema, ";\n\n") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		_, err := db.Exec(stmt)
		require.NoError(t, err, stmt)
	}
}

// dropTables ignores errors since each dialect rejects some of the daily_sales
// statements.
func dropTables(db *sql.DB) {
	db.Exec("DROP MATERIALIZED VIEW IF EXISTS daily_sales")
	db.Exec("DROP VIEW IF EXISTS daily_sales")
	db.Exec("DROP TABLE IF EXISTS daily_sales")
	for _, table := range []string{
		"edge_logs", "customer_requests", "request_behaviors", "device_health", "substitutions",
		"transaction_items", "transactions", "devices", "stores", "customers", "products", "brands",
	} {
		db.Exec("DROP TABLE IF EXISTS " + table)
	}
}

func TestSeedAgainstDatabases(t *testing.T) {
	for _, database := range databases(t) {
		t.Run(database.Name, func(t *testing.T) {
			testSeed(t, database)
		})
	}
}

func testSeed(t *testing.T, database Database) {
	ctx := context.Background()

	db, err := sql.Open(database.Driver, database.DSN)
	require.NoError(t, err)
	defer db.Close()

	dropTables(db)
	defer dropTables(db)
	applySchema(t, db, template.ValidateDatabaseType(database.Name))

	st, err := store.Open(ctx, store.Options{Provider: database.Name, URL: database.URL})
	require.NoError(t, err)
	defer st.Close()

	cfg := testConfig()
	report, err := seeder.NewSeeder(st, cfg, nil).Seed(ctx)
	require.NoError(t, err)

	for table, want := range report.Counts {
		var got int
		require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&got))
		assert.Equal(t, want, got, table)
	}
	assert.Equal(t, cfg.Transactions, report.Counts["transactions"])

	orphans := map[string]string{
		"transaction_items": "SELECT COUNT(*) FROM transaction_items ti LEFT JOIN transactions t ON t.id = ti.transaction_id WHERE t.id IS NULL",
		"products":          "SELECT COUNT(*) FROM products p LEFT JOIN brands b ON b.id = p.brand_id WHERE b.id IS NULL",
		"devices":           "SELECT COUNT(*) FROM devices d LEFT JOIN stores s ON s.id = d.store_id WHERE s.id IS NULL",
	}
	for name, query := range orphans {
		var n int
		require.NoError(t, db.QueryRow(query).Scan(&n))
		assert.Zero(t, n, fmt.Sprintf("orphaned %s", name))
	}

	var mismatched int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM (
		SELECT t.id FROM transactions t JOIN transaction_items ti ON ti.transaction_id = t.id
		GROUP BY t.id, t.total_items HAVING COUNT(*) > t.total_items OR COUNT(*) > 10
	) x`).Scan(&mismatched))
	assert.Zero(t, mismatched)

	switch database.Name {
	case "sqlite":
		assert.ErrorIs(t, report.RefreshErr, store.ErrRefreshUnsupported)
		var days int
		require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM daily_sales").Scan(&days))
		assert.Positive(t, days)
	case "postgresql":
		assert.True(t, report.Refreshed)
	}
}
