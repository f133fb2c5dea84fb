package catalog

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Brand is a mock-catalog brand with the SKUs it sells.
type Brand struct {
	Name     string   `yaml:"name"`
	Category string   `yaml:"category"`
	SKUs     []string `yaml:"skus"`
}

// PriceRange bounds the unit price of a category.
type PriceRange struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// BrandCatalog splits brands into the client portfolio and its competitors.
type BrandCatalog struct {
	Client     []Brand               `yaml:"client_brands"`
	Competitor []Brand               `yaml:"competitor_brands"`
	BasePrices map[string]PriceRange `yaml:"base_prices"`
}

// DefaultPriceRange applies to categories without an entry in BasePrices.
var DefaultPriceRange = PriceRange{Min: 20, Max: 300}

// DefaultBrandCatalog returns a fresh copy of the built-in catalog.
func DefaultBrandCatalog() *BrandCatalog {
	return &BrandCatalog{
		Client: []Brand{
			{"Coca-Cola", "Beverages", []string{"COKE-350ML", "COKE-500ML", "COKE-1L", "COKE-ZERO-350ML", "SPRITE-350ML", "FANTA-350ML"}},
			{"McDonald's", "Food & Beverage", []string{"MCD-BURGER", "MCD-FRIES", "MCD-NUGGETS", "MCD-SUNDAE", "MCD-COFFEE"}},
			{"Nissan", "Automotive", []string{"NISSAN-NAVARA", "NISSAN-ALMERA", "NISSAN-TERRA", "NISSAN-XTRAIL"}},
			{"Adidas", "Sportswear", []string{"ADIDAS-ULTRABOOST", "ADIDAS-STAN-SMITH", "ADIDAS-ORIGINALS-TEE", "ADIDAS-SHORTS"}},
			{"Globe Telecom", "Telecommunications", []string{"GLOBE-PREPAID-100", "GLOBE-PREPAID-300", "GLOBE-POSTPAID-1599", "GLOBE-WIFI"}},
		},
		Competitor: []Brand{
			{"Pepsi", "Beverages", []string{"PEPSI-350ML", "PEPSI-500ML", "PEPSI-1L", "PEPSI-ZERO-350ML", "7UP-350ML", "MIRINDA-350ML"}},
			{"Jollibee", "Food & Beverage", []string{"JB-CHICKENJOY", "JB-BURGER", "JB-SPAGHETTI", "JB-PEACH-PIE", "JB-COFFEE"}},
			{"Toyota", "Automotive", []string{"TOYOTA-HILUX", "TOYOTA-VIOS", "TOYOTA-FORTUNER", "TOYOTA-RAV4"}},
			{"Nike", "Sportswear", []string{"NIKE-AIR-MAX", "NIKE-REACT", "NIKE-DRI-FIT-TEE", "NIKE-SHORTS"}},
			{"Smart Communications", "Telecommunications", []string{"SMART-PREPAID-100", "SMART-PREPAID-300", "SMART-POSTPAID-1499", "SMART-BRO"}},
			{"San Miguel", "Beverages", []string{"SMB-PALE-PILSEN", "SMB-LIGHT", "SMB-PREMIUM", "SMB-FLAVORED"}},
			{"Nestle", "Food & Beverage", []string{"NESCAFE-3IN1", "MAGGI-NOODLES", "MILO-POWDER", "BEAR-BRAND-MILK"}},
			{"Unilever", "Personal Care", []string{"DOVE-SOAP", "CLEAR-SHAMPOO", "CLOSEUP-TOOTHPASTE", "VASELINE-LOTION"}},
		},
		BasePrices: map[string]PriceRange{
			"Beverages":          {15, 200},
			"Food & Beverage":    {25, 500},
			"Automotive":         {800000, 2500000},
			"Sportswear":         {1500, 15000},
			"Telecommunications": {100, 2500},
			"Personal Care":      {50, 800},
		},
	}
}

// PriceRangeFor returns the category range scaled by the pack size encoded in sku.
func (c *BrandCatalog) PriceRangeFor(category, sku string) PriceRange {
	r, ok := c.BasePrices[category]
	if !ok {
		r = DefaultPriceRange
	}

	switch {
	case strings.Contains(sku, "1L") || strings.Contains(sku, "LARGE"):
		r.Min *= 1.5
		r.Max *= 1.5
	case strings.Contains(sku, "500ML") || strings.Contains(sku, "MEDIUM"):
		r.Min *= 1.2
		r.Max *= 1.2
	}
	return r
}

func (c *BrandCatalog) Validate() error {
	if len(c.Client) == 0 && len(c.Competitor) == 0 {
		return fmt.Errorf("brand catalog has no brands")
	}
	for _, set := range [][]Brand{c.Client, c.Competitor} {
		for _, b := range set {
			if b.Name == "" {
				return fmt.Errorf("brand with empty name in catalog")
			}
			if len(b.SKUs) == 0 {
				return fmt.Errorf("brand %s has no SKUs", b.Name)
			}
		}
	}
	for category, r := range c.BasePrices {
		if r.Min < 0 || r.Max < r.Min {
			return fmt.Errorf("invalid price range for %s: %v-%v", category, r.Min, r.Max)
		}
	}
	return nil
}

// LoadBrandCatalog reads a YAML catalog. Sections left out of the file keep
// their built-in values.
func LoadBrandCatalog(path string) (*BrandCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}

	var file BrandCatalog
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}

	cat := DefaultBrandCatalog()
	if file.Client != nil {
		cat.Client = file.Client
	}
	if file.Competitor != nil {
		cat.Competitor = file.Competitor
	}
	for category, r := range file.BasePrices {
		cat.BasePrices[category] = r
	}

	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return cat, nil
}
