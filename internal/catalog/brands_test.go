package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceRangeForSizes(t *testing.T) {
	cat := DefaultBrandCatalog()

	assert.Equal(t, PriceRange{Min: 15, Max: 200}, cat.PriceRangeFor("Beverages", "COKE-350ML"))
	assert.Equal(t, PriceRange{Min: 22.5, Max: 300}, cat.PriceRangeFor("Beverages", "COKE-1L"))
	assert.InDelta(t, 18, cat.PriceRangeFor("Beverages", "PEPSI-500ML").Min, 1e-9)
	assert.InDelta(t, 240, cat.PriceRangeFor("Beverages", "PEPSI-500ML").Max, 1e-9)
	assert.Equal(t, DefaultPriceRange, cat.PriceRangeFor("Unknown", "THING"))
}

func TestPriceRangeForDoesNotMutateCatalog(t *testing.T) {
	cat := DefaultBrandCatalog()
	cat.PriceRangeFor("Beverages", "COKE-1L")
	cat.PriceRangeFor("Beverages", "COKE-1L")
	assert.Equal(t, PriceRange{Min: 15, Max: 200}, cat.BasePrices["Beverages"])
}

func TestProvincesFor(t *testing.T) {
	assert.Equal(t, []string{"Metro Manila"}, ProvincesFor("National Capital Region"))
	assert.Equal(t, []string{FallbackProvince}, ProvincesFor("Caraga"))
}

func TestLoadBrandCatalogOverridesSections(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	content := `
client_brands:
  - name: Acme
    category: Snacks
    skus: [ACME-CHIPS-LARGE, ACME-CHIPS]
base_prices:
  Snacks: {min: 10, max: 60}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cat, err := LoadBrandCatalog(path)
	require.NoError(t, err)

	require.Len(t, cat.Client, 1)
	assert.Equal(t, "Acme", cat.Client[0].Name)
	assert.Len(t, cat.Competitor, 8)
	assert.Equal(t, PriceRange{Min: 15, Max: 90}, cat.PriceRangeFor("Snacks", "ACME-CHIPS-LARGE"))
	assert.Equal(t, PriceRange{Min: 15, Max: 200}, cat.BasePrices["Beverages"])
}

func TestLoadBrandCatalogRejectsBrandWithoutSKUs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("client_brands:\n  - name: Empty\n    category: Snacks\n"), 0644))

	_, err := LoadBrandCatalog(path)
	assert.ErrorContains(t, err, "has no SKUs")
}

func TestLoadBrandCatalogMissingFile(t *testing.T) {
	_, err := LoadBrandCatalog(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
