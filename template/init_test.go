package template

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaPerDialect(t *testing.T) {
	pg := NewProjectTemplate(PostgreSQL).GetSchema()
	assert.Contains(t, pg, "id BIGSERIAL PRIMARY KEY")
	assert.Contains(t, pg, "request_details JSONB")
	assert.Contains(t, pg, "CREATE OR REPLACE FUNCTION refresh_analytical_views()")

	my := NewProjectTemplate(MySQL).GetSchema()
	assert.Contains(t, my, "id BIGINT AUTO_INCREMENT PRIMARY KEY")
	assert.Contains(t, my, "CREATE PROCEDURE refresh_analytical_views()")

	lite := NewProjectTemplate(SQLite).GetSchema()
	assert.Contains(t, lite, "id INTEGER PRIMARY KEY AUTOINCREMENT")
	assert.Contains(t, lite, "CREATE VIEW IF NOT EXISTS daily_sales")
	assert.NotContains(t, lite, "refresh_analytical_views")

	assert.Equal(t, 12, strings.Count(lite, "CREATE TABLE IF NOT EXISTS"))
	assert.Contains(t, lite, "customer_id INTEGER,\n")
	assert.Contains(t, lite, "FOREIGN KEY (specific_product_id) REFERENCES products(id)")
}

func TestSupabaseUsesPostgresDialect(t *testing.T) {
	tmpl := NewProjectTemplate(ValidateDatabaseType("supabase"))
	assert.Equal(t, NewProjectTemplate(PostgreSQL).GetSchema(), tmpl.GetSchema())
	assert.Contains(t, tmpl.GetEnvTemplate(), "SUPABASE_SERVICE_KEY=")

	var cfg struct {
		Database struct {
			Provider string `json:"provider"`
		} `json:"database"`
	}
	require.NoError(t, json.Unmarshal([]byte(tmpl.GetScoutConfig()), &cfg))
	assert.Equal(t, "supabase", cfg.Database.Provider)
}

func TestValidateDatabaseType(t *testing.T) {
	assert.Equal(t, SQLite, ValidateDatabaseType("sqlite3"))
	assert.Equal(t, PostgreSQL, ValidateDatabaseType("postgres"))
	assert.Equal(t, PostgreSQL, ValidateDatabaseType("oracle"))
}
