package seeder

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/Rana718/scout/internal/catalog"
	"github.com/Rana718/scout/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator(mutate func(*config.Seed)) *DataGenerator {
	cfg := smallConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	g := NewDataGenerator(cfg)
	g.now = func() time.Time { return fixedNow }
	return g
}

func withIDs[T Record](rows []T) []T {
	for i, r := range rows {
		r.SetID(int64(i + 1))
	}
	return rows
}

func TestBrandsStartWithRealBrands(t *testing.T) {
	g := newTestGenerator(nil)

	brands := g.Brands(12)
	require.Len(t, brands, 12)
	for i, rb := range catalog.RealBrands {
		assert.Equal(t, rb.Name, brands[i].Name)
		assert.Equal(t, rb.Country, brands[i].Country)
	}
	for _, b := range brands[len(catalog.RealBrands):] {
		assert.Contains(t, catalog.FMCGCategories, b.Category)
		assert.NotEmpty(t, b.Manufacturer)
	}

	assert.Len(t, g.Brands(3), 3)
	assert.Empty(t, g.Brands(0))
}

func TestProductsNeedBrands(t *testing.T) {
	g := newTestGenerator(nil)

	_, err := g.Products(5, nil)
	assert.ErrorIs(t, err, ErrMissingDependency)

	products, err := g.Products(0, nil)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestProductsPricing(t *testing.T) {
	g := newTestGenerator(nil)
	brands := withIDs(g.Brands(8))

	products, err := g.Products(500, brands)
	require.NoError(t, err)

	skus := map[string]bool{}
	for _, p := range products {
		assert.GreaterOrEqual(t, p.UnitCost, 5.0)
		assert.LessOrEqual(t, p.UnitCost, 200.0)
		assert.GreaterOrEqual(t, p.RetailPrice, p.UnitCost)
		assert.False(t, skus[p.SKU], "duplicate sku %s", p.SKU)
		skus[p.SKU] = true
	}
}

func TestTransactionsMoneyAndWindow(t *testing.T) {
	g := newTestGenerator(nil)
	stores := withIDs(g.Stores(3))
	customers := withIDs(g.Customers(20))

	txs, err := g.Transactions(2000, stores, customers)
	require.NoError(t, err)

	windowStart := fixedNow.AddDate(0, 0, -365)

	walkIns := 0
	for _, tx := range txs {
		assert.GreaterOrEqual(t, tx.TotalAmount, 50.0)
		assert.LessOrEqual(t, tx.TotalAmount, 2000.0)
		assert.LessOrEqual(t, tx.DiscountAmount, tx.TotalAmount*0.2+1e-9)
		assert.InDelta(t, tx.TotalAmount*0.12, tx.TaxAmount, 0.005+1e-9)
		assert.GreaterOrEqual(t, tx.TotalItems, 1)
		assert.LessOrEqual(t, tx.TotalItems, 15)
		assert.False(t, tx.Date.Before(windowStart), tx.Date)
		assert.True(t, tx.Date.Before(fixedNow), tx.Date)
		if tx.CustomerID == nil {
			walkIns++
		}
	}
	assert.InDelta(t, 0.1, float64(walkIns)/float64(len(txs)), 0.03)
}

func TestTransactionsStayInsideShortWindow(t *testing.T) {
	g := newTestGenerator(func(c *config.Seed) { c.WindowDays = 1 })
	now := time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC)
	g.now = func() time.Time { return now }
	stores := withIDs(g.Stores(2))

	txs, err := g.Transactions(2000, stores, nil)
	require.NoError(t, err)

	windowStart := now.AddDate(0, 0, -1)
	for _, tx := range txs {
		assert.False(t, tx.Date.Before(windowStart), tx.Date)
		assert.True(t, tx.Date.Before(now), tx.Date)
	}
}

func TestTransactionsWithoutCustomersAreWalkIns(t *testing.T) {
	g := newTestGenerator(nil)
	stores := withIDs(g.Stores(2))

	txs, err := g.Transactions(50, stores, nil)
	require.NoError(t, err)
	for _, tx := range txs {
		assert.Nil(t, tx.CustomerID)
	}

	_, err = g.Transactions(1, nil, nil)
	assert.ErrorIs(t, err, ErrMissingDependency)
}

func TestTransactionItemsPriceJitter(t *testing.T) {
	g := newTestGenerator(func(c *config.Seed) { c.MaxItems = 4 })
	brands := withIDs(g.Brands(8))
	products, err := g.Products(20, brands)
	require.NoError(t, err)
	withIDs(products)
	byID := map[int64]*Product{}
	for _, p := range products {
		byID[p.ID] = p
	}

	txs := withIDs([]*Transaction{{TotalItems: 2}, {TotalItems: 9}})
	items, err := g.TransactionItems(txs, products)
	require.NoError(t, err)
	require.Len(t, items, 6)

	for _, item := range items {
		p := byID[item.ProductID]
		require.NotNil(t, p)
		assert.GreaterOrEqual(t, item.UnitPrice, p.RetailPrice*0.9-0.005)
		assert.LessOrEqual(t, item.UnitPrice, p.RetailPrice*1.1+0.005)
		assert.LessOrEqual(t, item.DiscountAmount, item.UnitPrice*float64(item.Quantity)*0.1+1e-9)
		assert.GreaterOrEqual(t, item.Quantity, 1)
		assert.LessOrEqual(t, item.Quantity, 5)
	}
}

func TestSubstitutionsSkipLonelyCategories(t *testing.T) {
	g := newTestGenerator(func(c *config.Seed) { c.SubstitutionRate = 0.5 })
	products := withIDs([]*Product{
		{Category: "Beverages"},
		{Category: "Snacks"},
		{Category: "Dairy"},
	})
	txs := make([]*Transaction, 10)
	for i := range txs {
		txs[i] = &Transaction{ID: int64(i + 1)}
	}

	subs := g.Substitutions(txs, products)
	assert.Empty(t, subs)
	assert.Equal(t, 5, g.SkippedSubstitutions)
}

func TestDeviceHealthOfflineHasNoMetrics(t *testing.T) {
	g := newTestGenerator(func(c *config.Seed) { c.HealthPerDevice = 200 })
	rows := g.DeviceHealth([]*Device{{DeviceID: "DEV-STORE-ABC123-01", StoreID: 1}})
	require.Len(t, rows, 200)

	statuses := map[string]bool{}
	for _, h := range rows {
		statuses[h.Status] = true
		switch h.Status {
		case "offline":
			assert.Nil(t, h.CPUUsage)
			assert.Nil(t, h.NetworkLatency)
			assert.Zero(t, h.UptimeHours)
		default:
			require.NotNil(t, h.CPUUsage)
			assert.GreaterOrEqual(t, *h.CPUUsage, 10.0)
			assert.LessOrEqual(t, *h.CPUUsage, 95.0)
		}
		if h.Status == "error" {
			assert.GreaterOrEqual(t, h.ErrorCount, 1)
		} else {
			assert.Zero(t, h.ErrorCount)
		}
	}
	assert.True(t, statuses["offline"])
}

func TestEdgeLogsErrorCodes(t *testing.T) {
	g := newTestGenerator(func(c *config.Seed) { c.LogsPerDevice = 300 })
	logs, err := g.EdgeLogs([]*Device{{DeviceID: "DEV-X-01", StoreID: 7}})
	require.NoError(t, err)
	require.Len(t, logs, 300)

	for _, l := range logs {
		if l.LogLevel == "ERROR" || l.LogLevel == "FATAL" {
			require.NotNil(t, l.ErrorCode)
			assert.Regexp(t, `^ERR-\d{4}$`, *l.ErrorCode)
		} else {
			assert.Nil(t, l.ErrorCode)
		}
		var meta map[string]string
		require.NoError(t, json.Unmarshal(l.Metadata, &meta))
		assert.NotEmpty(t, meta["session_id"])
		assert.Equal(t, int64(7), l.StoreID)
	}
}

func TestDevicesAreCodedPerStore(t *testing.T) {
	g := newTestGenerator(nil)
	stores := withIDs(g.Stores(4))

	devices := g.Devices(stores)
	for _, d := range devices {
		assert.Regexp(t, `^DEV-STORE-[A-Z0-9]{6}-0[1-3]$`, d.DeviceID)
		assert.False(t, d.InstallationDate.After(fixedNow))
	}
}
