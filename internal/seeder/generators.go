package seeder

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Rana718/scout/internal/catalog"
	"github.com/Rana718/scout/internal/config"
	"github.com/Rana718/scout/internal/money"
	"github.com/Rana718/scout/internal/sampling"
)

// ErrMissingDependency is returned when a table needs rows from an upstream table that is empty.
var ErrMissingDependency = errors.New("missing upstream rows")

// DataGenerator turns counts and upstream entities into new entity rows. It
// never touches the store.
type DataGenerator struct {
	s     *sampling.Sampler
	fake  faker
	cfg   config.Seed
	now   func() time.Time
	codes map[string]bool

	// SkippedSubstitutions counts substitution draws without a same-category candidate.
	SkippedSubstitutions int
}

func NewDataGenerator(cfg config.Seed) *DataGenerator {
	s := sampling.New(cfg.RandomSeed)
	return &DataGenerator{
		s:     s,
		fake:  faker{s: s},
		cfg:   cfg,
		now:   time.Now,
		codes: make(map[string]bool),
	}
}

// uniqueCode draws prefix-XXXX codes until one has not been issued in this run.
func (g *DataGenerator) uniqueCode(prefix string, n int) string {
	for {
		code := prefix + g.s.Alphanumeric(n)
		if !g.codes[code] {
			g.codes[code] = true
			return code
		}
	}
}

func (g *DataGenerator) Brands(count int) []*Brand {
	brands := make([]*Brand, 0, count)
	for i := 0; i < count; i++ {
		if i < len(catalog.RealBrands) {
			rb := catalog.RealBrands[i]
			brands = append(brands, &Brand{Name: rb.Name, Category: rb.Category, Manufacturer: rb.Manufacturer, Country: rb.Country})
			continue
		}
		brands = append(brands, &Brand{
			Name:         g.fake.companyName() + " " + sampling.Pick(g.s, catalog.BrandSuffixes),
			Category:     sampling.Pick(g.s, catalog.FMCGCategories),
			Manufacturer: g.fake.companyName(),
			Country:      sampling.Pick(g.s, catalog.BrandCountries),
		})
	}
	return brands
}

func (g *DataGenerator) Products(count int, brands []*Brand) ([]*Product, error) {
	if count > 0 && len(brands) == 0 {
		return nil, fmt.Errorf("%w: products require at least one brand", ErrMissingDependency)
	}

	products := make([]*Product, 0, count)
	for i := 0; i < count; i++ {
		brand := sampling.Pick(g.s, brands)
		unitCost := g.s.Amount(5, 200)
		markup := g.s.Amount(1.2, 3.0)

		products = append(products, &Product{
			BrandID:     brand.ID,
			SKU:         g.uniqueCode("SKU-", 10),
			Name:        brand.Name + " " + g.fake.productName(),
			Category:    brand.Category,
			Subcategory: g.fake.department(),
			UnitSize:    sampling.Pick(g.s, catalog.UnitSizes),
			UnitCost:    unitCost,
			RetailPrice: money.Mul(unitCost, markup),
		})
	}
	return products, nil
}

func (g *DataGenerator) Customers(count int) []*Customer {
	customers := make([]*Customer, 0, count)
	for i := 0; i < count; i++ {
		region := sampling.Pick(g.s, catalog.Regions)
		customers = append(customers, &Customer{
			Code:          g.uniqueCode("CUST-", 8),
			Gender:        sampling.Pick(g.s, catalog.Genders),
			AgeGroup:      sampling.Pick(g.s, catalog.AgeGroups),
			Region:        region,
			Province:      sampling.Pick(g.s, catalog.ProvincesFor(region)),
			City:          g.fake.city(),
			Barangay:      "Barangay " + g.fake.streetName(),
			IncomeBracket: sampling.Pick(g.s, catalog.IncomeBrackets),
			LoyaltyTier:   sampling.Pick(g.s, catalog.LoyaltyTiers),
		})
	}
	return customers
}

func (g *DataGenerator) Stores(count int) []*Store {
	stores := make([]*Store, 0, count)
	for i := 0; i < count; i++ {
		stores = append(stores, &Store{
			Code:     g.uniqueCode("STORE-", 6),
			Name:     g.fake.companyName() + " " + sampling.Pick(g.s, catalog.SeedStoreTypes),
			Type:     sampling.Pick(g.s, catalog.SeedStoreTypes),
			Region:   sampling.Pick(g.s, catalog.Regions),
			Province: g.fake.state(),
			City:     g.fake.city(),
			Barangay: "Barangay " + g.fake.streetName(),
			Address:  g.fake.streetAddress(),
			Size:     sampling.Pick(g.s, catalog.StoreSizes),
		})
	}
	return stores
}

// Devices gives every store one to three devices coded DEV-<store_code>-<NN>.
func (g *DataGenerator) Devices(stores []*Store) []*Device {
	now := g.now()
	var devices []*Device
	for _, store := range stores {
		n := g.s.IntBetween(1, 3)
		for i := 0; i < n; i++ {
			devices = append(devices, &Device{
				DeviceID:         fmt.Sprintf("DEV-%s-%02d", store.Code, i+1),
				StoreID:          store.ID,
				DeviceType:       sampling.Pick(g.s, catalog.DeviceTypes),
				Model:            "Model-" + sampling.Pick(g.s, catalog.DeviceModels),
				FirmwareVersion:  fmt.Sprintf("v%d.%d.%d", g.s.IntBetween(1, 5), g.s.IntBetween(0, 9), g.s.IntBetween(0, 9)),
				InstallationDate: g.s.Past(now, 2),
				LastMaintenance:  g.s.Recent(now, 30),
			})
		}
	}
	return devices
}

func (g *DataGenerator) Transactions(count int, stores []*Store, customers []*Customer) ([]*Transaction, error) {
	if count > 0 && len(stores) == 0 {
		return nil, fmt.Errorf("%w: transactions require at least one store", ErrMissingDependency)
	}

	now := g.now()
	start := now.AddDate(0, 0, -g.cfg.WindowDays)

	txs := make([]*Transaction, 0, count)
	for i := 0; i < count; i++ {
		store := sampling.Pick(g.s, stores)

		var customerID *int64
		if len(customers) > 0 && !g.s.Chance(g.cfg.WalkInRate) {
			id := sampling.Pick(g.s, customers).ID
			customerID = &id
		}

		total := g.s.Amount(50, 2000)
		txs = append(txs, &Transaction{
			Code:           g.uniqueCode("TXN-", 12),
			CustomerID:     customerID,
			StoreID:        store.ID,
			Date:           g.s.Timestamp(start, now, sampling.DefaultDayWeights, sampling.DefaultHourWeights),
			TotalAmount:    total,
			TotalItems:     g.s.IntBetween(1, 15),
			PaymentMethod:  sampling.Pick(g.s, catalog.PaymentMethods),
			DiscountAmount: g.s.Amount(0, total*0.2),
			TaxAmount:      money.Mul(total, money.VATRate),
		})
	}
	return txs, nil
}

// TransactionItems emits min(total_items, max_items) lines per transaction,
// each priced within ten percent of the product's retail price.
func (g *DataGenerator) TransactionItems(txs []*Transaction, products []*Product) ([]*TransactionItem, error) {
	if len(txs) > 0 && len(products) == 0 {
		return nil, fmt.Errorf("%w: transaction items require at least one product", ErrMissingDependency)
	}

	var items []*TransactionItem
	for _, tx := range txs {
		n := tx.TotalItems
		if n > g.cfg.MaxItems {
			n = g.cfg.MaxItems
		}
		for j := 0; j < n; j++ {
			product := sampling.Pick(g.s, products)
			quantity := g.s.IntBetween(1, 5)
			unitPrice := g.s.Amount(product.RetailPrice*0.9, product.RetailPrice*1.1)

			items = append(items, &TransactionItem{
				TransactionID:  tx.ID,
				ProductID:      product.ID,
				Quantity:       quantity,
				UnitPrice:      unitPrice,
				DiscountAmount: g.s.Amount(0, unitPrice*float64(quantity)*0.1),
			})
		}
	}
	return items, nil
}

// Substitutions samples a share of transactions. Draws whose product has no
// other product in the same category are skipped.
func (g *DataGenerator) Substitutions(txs []*Transaction, products []*Product) []*Substitution {
	n := int(float64(len(txs)) * g.cfg.SubstitutionRate)
	if n == 0 || len(products) == 0 {
		return nil
	}

	byCategory := make(map[string][]*Product)
	for _, p := range products {
		byCategory[p.Category] = append(byCategory[p.Category], p)
	}

	var subs []*Substitution
	for i := 0; i < n; i++ {
		tx := sampling.Pick(g.s, txs)
		original := sampling.Pick(g.s, products)

		candidates := make([]*Product, 0, len(byCategory[original.Category]))
		for _, p := range byCategory[original.Category] {
			if p.ID != original.ID {
				candidates = append(candidates, p)
			}
		}
		if len(candidates) == 0 {
			g.SkippedSubstitutions++
			continue
		}

		subs = append(subs, &Substitution{
			TransactionID:       tx.ID,
			OriginalProductID:   original.ID,
			SubstituteProductID: sampling.Pick(g.s, candidates).ID,
			Reason:              sampling.Pick(g.s, catalog.SubstitutionReasons),
			SatisfactionScore:   g.s.IntBetween(1, 5),
			WasAccepted:         g.s.Chance(0.7),
		})
	}
	return subs
}

func (g *DataGenerator) DeviceHealth(devices []*Device) []*DeviceHealth {
	now := g.now()
	var rows []*DeviceHealth
	for _, d := range devices {
		for i := 0; i < g.cfg.HealthPerDevice; i++ {
			status := sampling.Pick(g.s, catalog.DeviceStatuses)
			h := &DeviceHealth{
				DeviceID:      d.DeviceID,
				StoreID:       d.StoreID,
				Status:        status,
				LastHeartbeat: g.s.Recent(now, 7),
			}
			if status != "offline" {
				cpu, mem, disk := g.s.Amount(10, 95), g.s.Amount(20, 85), g.s.Amount(15, 90)
				latency := g.s.IntBetween(10, 200)
				h.CPUUsage, h.MemoryUsage, h.DiskUsage, h.NetworkLatency = &cpu, &mem, &disk, &latency
				h.UptimeHours = g.s.Amount(0, 168)
			}
			if status == "error" {
				h.ErrorCount = g.s.IntBetween(1, 10)
			}
			rows = append(rows, h)
		}
	}
	return rows
}

func (g *DataGenerator) RequestBehaviors(txs []*Transaction, stores []*Store, customers []*Customer) ([]*RequestBehavior, error) {
	n := int(float64(len(txs)) * g.cfg.RequestBehaviorRate)
	if n > 0 && len(stores) == 0 {
		return nil, fmt.Errorf("%w: request behaviors require at least one store", ErrMissingDependency)
	}

	now := g.now()
	rows := make([]*RequestBehavior, 0, n)
	for i := 0; i < n; i++ {
		var customerID *int64
		if len(customers) > 0 && g.s.Chance(0.8) {
			id := sampling.Pick(g.s, customers).ID
			customerID = &id
		}

		details, err := json.Marshal(map[string]string{"query": g.fake.sentence()})
		if err != nil {
			return nil, err
		}

		rows = append(rows, &RequestBehavior{
			CustomerID:      customerID,
			StoreID:         sampling.Pick(g.s, stores).ID,
			RequestType:     sampling.Pick(g.s, catalog.BehaviorTypes),
			RequestCategory: sampling.Pick(g.s, catalog.BehaviorCategories),
			Details:         details,
			ResponseTimeMS:  g.s.IntBetween(100, 5000),
			WasSuccessful:   g.s.Chance(0.9),
			Timestamp:       g.s.Recent(now, 30),
		})
	}
	return rows, nil
}

func (g *DataGenerator) CustomerRequests(customers []*Customer, stores []*Store, products []*Product) ([]*CustomerRequest, error) {
	n := int(float64(len(customers)) * g.cfg.CustomerRequestRate)
	if n > 0 && len(stores) == 0 {
		return nil, fmt.Errorf("%w: customer requests require at least one store", ErrMissingDependency)
	}

	now := g.now()
	rows := make([]*CustomerRequest, 0, n)
	for i := 0; i < n; i++ {
		r := &CustomerRequest{
			CustomerID:   sampling.Pick(g.s, customers).ID,
			StoreID:      sampling.Pick(g.s, stores).ID,
			RequestType:  sampling.Pick(g.s, catalog.RequestTypes),
			Description:  g.fake.paragraph(),
			UrgencyLevel: g.s.IntBetween(1, 5),
			Status:       sampling.Pick(g.s, catalog.RequestStatuses),
		}
		if len(products) > 0 && g.s.Chance(0.7) {
			p := sampling.Pick(g.s, products)
			r.SpecificProductID = &p.ID
			r.ProductCategory = p.Category
		} else {
			r.ProductCategory = sampling.Pick(g.s, catalog.FMCGCategories)
		}
		if g.s.Chance(0.5) {
			at := g.s.Recent(now, 10)
			r.FulfilledAt = &at
		}
		rows = append(rows, r)
	}
	return rows, nil
}

func (g *DataGenerator) EdgeLogs(devices []*Device) ([]*EdgeLog, error) {
	now := g.now()
	var rows []*EdgeLog
	for _, d := range devices {
		for i := 0; i < g.cfg.LogsPerDevice; i++ {
			level := sampling.Pick(g.s, catalog.LogLevels)

			metadata, err := json.Marshal(map[string]string{
				"session_id": g.fake.uuid(),
				"user_agent": g.fake.userAgent(),
			})
			if err != nil {
				return nil, err
			}

			l := &EdgeLog{
				DeviceID:  d.DeviceID,
				StoreID:   d.StoreID,
				LogLevel:  level,
				Message:   g.fake.sentence(),
				Component: sampling.Pick(g.s, catalog.LogComponents),
				Metadata:  metadata,
				Timestamp: g.s.Recent(now, 30),
			}
			if level == "ERROR" || level == "FATAL" {
				code := fmt.Sprintf("ERR-%d", g.s.IntBetween(1000, 9999))
				l.ErrorCode = &code
			}
			rows = append(rows, l)
		}
	}
	return rows, nil
}
