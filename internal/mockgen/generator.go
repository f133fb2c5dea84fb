package mockgen

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Rana718/scout/internal/catalog"
	"github.com/Rana718/scout/internal/config"
	"github.com/Rana718/scout/internal/money"
	"github.com/Rana718/scout/internal/sampling"
	"github.com/Rana718/scout/internal/utils"
	"github.com/google/uuid"
)

type Options struct {
	RepeatCustomerRate float64
	DiscountChance     float64
	DiscountMin        float64
	DiscountMax        float64
	ClientBrandShare   float64
	MinBasket          int
	MaxBasket          int
	MinQuantity        int
	MaxQuantity        int
	SKUAttempts        int
	TaxRate            float64
	Catalog            *catalog.BrandCatalog
	RandomSeed         int64
	Output             io.Writer
}

func DefaultOptions() Options {
	return Options{
		RepeatCustomerRate: 0.3,
		DiscountChance:     0.2,
		DiscountMin:        0.05,
		DiscountMax:        0.25,
		ClientBrandShare:   0.6,
		MinBasket:          1,
		MaxBasket:          8,
		MinQuantity:        1,
		MaxQuantity:        5,
		SKUAttempts:        10,
		TaxRate:            money.VATRate,
	}
}

// OptionsFromConfig applies the mock section on top of the defaults and loads
// the catalog override when one is configured.
func OptionsFromConfig(cfg config.Mock) (Options, error) {
	opts := DefaultOptions()
	opts.RepeatCustomerRate = cfg.RepeatCustomerRate
	opts.DiscountChance = cfg.DiscountChance
	opts.DiscountMin = cfg.DiscountMin
	opts.DiscountMax = cfg.DiscountMax
	opts.MinBasket = cfg.MinBasket
	opts.MaxBasket = cfg.MaxBasket
	opts.MinQuantity = cfg.MinQuantity
	opts.MaxQuantity = cfg.MaxQuantity
	opts.ClientBrandShare = cfg.ClientBrandShare
	opts.RandomSeed = cfg.RandomSeed

	if cfg.Catalog != "" {
		cat, err := catalog.LoadBrandCatalog(cfg.Catalog)
		if err != nil {
			return opts, err
		}
		opts.Catalog = cat
	}
	return opts, nil
}

// Generator assembles mock transactions. Stores and customers are cached
// within one Generate call so they repeat across receipts.
type Generator struct {
	opts    Options
	catalog *catalog.BrandCatalog
	s       *sampling.Sampler
	log     *utils.Printer
	regions []sampling.Choice[catalog.MockRegion]

	stores        map[string]*Store
	storeOrder    []*Store
	customers     map[string]*Customer
	customerOrder []*Customer
}

func New(opts Options) (*Generator, error) {
	cat := opts.Catalog
	if cat == nil {
		cat = catalog.DefaultBrandCatalog()
	}
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	if opts.MinBasket < 0 || opts.MaxBasket < opts.MinBasket {
		return nil, fmt.Errorf("invalid basket size range %d-%d", opts.MinBasket, opts.MaxBasket)
	}
	if opts.MinQuantity < 1 || opts.MaxQuantity < opts.MinQuantity {
		return nil, fmt.Errorf("invalid quantity range %d-%d", opts.MinQuantity, opts.MaxQuantity)
	}
	if opts.SKUAttempts < 1 {
		opts.SKUAttempts = 1
	}

	regions := make([]sampling.Choice[catalog.MockRegion], len(catalog.MockRegions))
	for i, r := range catalog.MockRegions {
		regions[i] = sampling.Choice[catalog.MockRegion]{Value: r, Weight: r.Weight}
	}

	return &Generator{
		opts:    opts,
		catalog: cat,
		s:       sampling.New(opts.RandomSeed),
		log:     utils.NewPrinter(opts.Output),
		regions: regions,
	}, nil
}

// Generate builds count transactions dated between start and the end of the
// end day, both given as YYYY-MM-DD in UTC.
func (g *Generator) Generate(count int, start, end string) (*Document, error) {
	if count < 0 {
		return nil, fmt.Errorf("count cannot be negative: %d", count)
	}
	from, err := time.Parse(config.DateLayout, start)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", start, err)
	}
	to, err := time.Parse(config.DateLayout, end)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", end, err)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("end date %s is before start date %s", end, start)
	}
	to = to.Add(24 * time.Hour)

	g.reset()
	g.log.Info("🚀 Generating %d mock transactions...", count)
	g.log.Info("📅 Date range: %s to %s", start, end)

	doc := &Document{Transactions: make([]Transaction, 0, count)}
	revenue := make([]float64, 0, count)

	for i := 0; i < count; i++ {
		tx, err := g.transaction(i, from, to)
		if err != nil {
			return nil, err
		}
		doc.Transactions = append(doc.Transactions, tx)
		revenue = append(revenue, tx.TransactionSummary.TotalAmount)

		if (i+1)%1000 == 0 {
			g.log.Info("   📊 Generated %d/%d transactions...", i+1, count)
		}
	}

	doc.Customers = append([]*Customer{}, g.customerOrder...)
	doc.Stores = append([]*Store{}, g.storeOrder...)
	doc.Summary = Summary{
		TotalTransactions: len(doc.Transactions),
		UniqueCustomers:   len(doc.Customers),
		UniqueStores:      len(doc.Stores),
		DateRange:         DateRange{Start: start, End: end},
		TotalRevenue:      money.Sum(revenue...),
	}

	g.log.Success("✅ Generated %d transactions", len(doc.Transactions))
	g.log.Info("👥 Unique customers: %d", len(doc.Customers))
	g.log.Info("🏪 Unique stores: %d", len(doc.Stores))
	return doc, nil
}

func (g *Generator) reset() {
	g.stores = make(map[string]*Store)
	g.storeOrder = nil
	g.customers = make(map[string]*Customer)
	g.customerOrder = nil
}

func (g *Generator) transaction(i int, from, to time.Time) (Transaction, error) {
	region, err := sampling.Weighted(g.s, g.regions)
	if err != nil {
		return Transaction{}, fmt.Errorf("failed to draw region: %w", err)
	}
	city := sampling.Pick(g.s, region.Cities)
	barangay := fmt.Sprintf("Barangay %d", g.s.IntBetween(1, 100))

	store := g.store(region, city, barangay)
	customer := g.customer(region, city, barangay)
	items := g.basket()

	quantity := 0
	lineTotals := make([]float64, len(items))
	for j, item := range items {
		quantity += item.Quantity
		lineTotals[j] = item.TotalPrice
	}

	discountRate := 0.0
	if g.s.Chance(g.opts.DiscountChance) {
		discountRate = g.s.Amount(g.opts.DiscountMin, g.opts.DiscountMax)
	}

	ts := g.s.Timestamp(from, to, sampling.DefaultDayWeights, sampling.DefaultHourWeights).UTC()
	weekday := ts.Weekday()

	return Transaction{
		ID:              uuid.NewString(),
		TransactionCode: fmt.Sprintf("TXN-%08d", i+1),
		Timestamp:       ts.Format(TimestampLayout),
		CustomerID:      customer.ID,
		CustomerProfile: CustomerProfile{
			Gender:      customer.Gender,
			AgeBracket:  customer.AgeBracket,
			IncomeClass: customer.IncomeClass,
			Region:      customer.Region,
			City:        customer.City,
		},
		StoreID: store.ID,
		StoreInfo: StoreInfo{
			Code:     store.Code,
			Name:     store.Name,
			Type:     store.Type,
			Size:     store.Size,
			Region:   store.Region,
			City:     store.City,
			Barangay: store.Barangay,
		},
		Items: items,
		TransactionSummary: TransactionSummary{
			ItemCount:     len(items),
			TotalQuantity: quantity,
			Summary:       money.Totals(money.Sum(lineTotals...), discountRate, g.opts.TaxRate),
		},
		PaymentMethod: sampling.Pick(g.s, catalog.MockPaymentMethods),
		Metadata: Metadata{
			DayOfWeek: int(weekday),
			HourOfDay: ts.Hour(),
			IsWeekend: weekday == time.Saturday || weekday == time.Sunday,
			Channel:   "Retail",
			DeviceID:  fmt.Sprintf("POS-%s-01", store.Code),
		},
	}, nil
}

// store returns the cached store for region, city and type, creating it on
// first sight. Codes are numbered in creation order across all regions.
func (g *Generator) store(region catalog.MockRegion, city, barangay string) *Store {
	storeType := sampling.Pick(g.s, catalog.MockStoreTypes)
	key := region.Code + "|" + city + "|" + storeType
	if s, ok := g.stores[key]; ok {
		return s
	}

	s := &Store{
		ID:       uuid.NewString(),
		Code:     fmt.Sprintf("STORE-%s-%03d", region.Code, len(g.storeOrder)+1),
		Name:     city + " " + storeType,
		Type:     storeType,
		Size:     sampling.Pick(g.s, catalog.StoreSizes),
		Region:   region.Code,
		City:     city,
		Barangay: barangay,
	}
	g.stores[key] = s
	g.storeOrder = append(g.storeOrder, s)
	return s
}

func (g *Generator) customer(region catalog.MockRegion, city, barangay string) *Customer {
	if len(g.customerOrder) > 0 && g.s.Chance(g.opts.RepeatCustomerRate) {
		return sampling.Pick(g.s, g.customerOrder)
	}

	c := &Customer{
		ID:          uuid.NewString(),
		Code:        fmt.Sprintf("CUST-%06d", len(g.customerOrder)+1),
		Gender:      sampling.Pick(g.s, catalog.Genders),
		AgeBracket:  sampling.Pick(g.s, catalog.MockAgeBrackets),
		IncomeClass: sampling.Pick(g.s, catalog.MockIncomeClasses),
		Region:      region.Code,
		City:        city,
		Barangay:    barangay,
	}
	g.customers[c.ID] = c
	g.customerOrder = append(g.customerOrder, c)
	return c
}

// basket fills up to a drawn number of slots. A slot whose SKU draws keep
// hitting SKUs already in the basket is dropped.
func (g *Generator) basket() []Item {
	size := g.s.IntBetween(g.opts.MinBasket, g.opts.MaxBasket)
	used := make(map[string]bool, size)
	items := make([]Item, 0, size)

	for j := 0; j < size; j++ {
		brand := g.brand()

		var sku string
		for attempt := 0; attempt < g.opts.SKUAttempts; attempt++ {
			sku = sampling.Pick(g.s, brand.SKUs)
			if !used[sku] {
				break
			}
		}
		if used[sku] {
			continue
		}
		used[sku] = true

		r := g.catalog.PriceRangeFor(brand.Category, sku)
		unitPrice := g.s.Amount(r.Min, r.Max)
		quantity := g.s.IntBetween(g.opts.MinQuantity, g.opts.MaxQuantity)

		items = append(items, Item{
			SKU:         sku,
			ProductName: brand.Name + " " + strings.ReplaceAll(sku, "-", " "),
			Brand:       brand.Name,
			Category:    brand.Category,
			Quantity:    quantity,
			UnitPrice:   unitPrice,
			TotalPrice:  money.Mul(float64(quantity), unitPrice),
		})
	}
	return items
}

func (g *Generator) brand() catalog.Brand {
	set := g.catalog.Competitor
	if g.s.Chance(g.opts.ClientBrandShare) {
		set = g.catalog.Client
	}
	if len(set) == 0 {
		set = append(g.catalog.Client, g.catalog.Competitor...)
	}
	return sampling.Pick(g.s, set)
}

// WriteFile writes doc as indented JSON, creating parent directories first.
func WriteFile(path string, doc *Document) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode mock data: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
