package catalog

// Reference tables shared by the seed-loader and the mock generator.

var Regions = []string{
	"National Capital Region", "Cordillera Administrative Region", "Ilocos Region",
	"Cagayan Valley", "Central Luzon", "Calabarzon", "Mimaropa",
	"Bicol Region", "Western Visayas", "Central Visayas", "Eastern Visayas",
	"Zamboanga Peninsula", "Northern Mindanao", "Davao Region", "Soccsksargen",
	"Caraga", "Barmm",
}

// FallbackProvince is used for regions without an explicit province list.
const FallbackProvince = "Sample Province"

var provinces = map[string][]string{
	"National Capital Region": {"Metro Manila"},
	"Central Luzon":           {"Bulacan", "Nueva Ecija", "Pampanga", "Tarlac", "Zambales"},
	"Calabarzon":              {"Batangas", "Cavite", "Laguna", "Quezon", "Rizal"},
	"Western Visayas":         {"Aklan", "Antique", "Capiz", "Iloilo", "Negros Occidental"},
	"Central Visayas":         {"Bohol", "Cebu", "Negros Oriental", "Siquijor"},
	"Davao Region":            {"Davao del Norte", "Davao del Sur", "Davao Oriental"},
}

// ProvincesFor returns the provinces of region, or the fallback placeholder.
func ProvincesFor(region string) []string {
	if p, ok := provinces[region]; ok {
		return p
	}
	return []string{FallbackProvince}
}

var (
	FMCGCategories = []string{
		"Beverages", "Snacks", "Personal Care", "Household Care", "Health & Wellness",
		"Baby Care", "Food & Cooking", "Dairy Products", "Frozen Foods", "Bakery",
	}
	SeedStoreTypes = []string{"Grocery", "Convenience", "Supermarket", "Hypermarket", "Sari-sari Store"}
	StoreSizes     = []string{"Small", "Medium", "Large"}
	PaymentMethods = []string{"Cash", "GCash", "Credit Card", "Debit Card", "Maya", "Bank Transfer"}
	Genders        = []string{"Male", "Female"}
	AgeGroups      = []string{"18-25", "26-35", "36-45", "46-55", "56-65", "65+"}
	IncomeBrackets = []string{"Low", "Middle", "Upper Middle", "High"}
	LoyaltyTiers   = []string{"Bronze", "Silver", "Gold", "Platinum"}
	UnitSizes      = []string{"50g", "100g", "250ml", "500ml", "1L", "1kg", "250g"}
	BrandSuffixes  = []string{"Corp", "Inc", "Ltd", "Co"}
	BrandCountries = []string{"Philippines", "USA", "Japan", "Singapore", "Malaysia"}

	DeviceTypes  = []string{"POS Terminal", "Kiosk", "Scanner", "Display"}
	DeviceModels = []string{"A100", "B200", "C300", "D400"}
	// Repeated entries skew the draw towards healthy devices and INFO logs.
	DeviceStatuses = []string{"online", "online", "online", "offline", "maintenance", "error"}
	LogLevels      = []string{"DEBUG", "INFO", "INFO", "WARN", "ERROR", "FATAL"}
	LogComponents  = []string{"Scanner", "Display", "Network", "Storage", "CPU"}

	SubstitutionReasons = []string{"Out of Stock", "Customer Preference", "Price", "Promotion"}
	BehaviorTypes       = []string{"product_search", "price_inquiry", "location_query", "recommendation_request"}
	BehaviorCategories  = []string{"Product Information", "Navigation", "Pricing", "Recommendations"}
	RequestTypes        = []string{"Product Request", "Stock Inquiry", "Complaint", "Suggestion"}
	RequestStatuses     = []string{"pending", "processing", "fulfilled", "cancelled"}
)

// RealBrand is a brand inserted verbatim before synthetic brands.
type RealBrand struct {
	Name         string
	Category     string
	Manufacturer string
	Country      string
}

var RealBrands = []RealBrand{
	{"Coca-Cola", "Beverages", "The Coca-Cola Company", "USA"},
	{"Pepsi", "Beverages", "PepsiCo", "USA"},
	{"Nestlé", "Food & Cooking", "Nestlé S.A.", "Switzerland"},
	{"Unilever", "Personal Care", "Unilever PLC", "Netherlands"},
	{"Procter & Gamble", "Household Care", "P&G", "USA"},
	{"San Miguel", "Beverages", "San Miguel Corporation", "Philippines"},
	{"Jollibee", "Food & Cooking", "Jollibee Foods Corporation", "Philippines"},
	{"CDO", "Food & Cooking", "CDO Foodsphere Corporation", "Philippines"},
}

// MockRegion is a region with a relative traffic weight and its cities.
type MockRegion struct {
	Code   string
	Name   string
	Weight float64
	Cities []string
}

var MockRegions = []MockRegion{
	{"NCR", "National Capital Region", 0.35, []string{"Manila", "Quezon City", "Makati", "Pasig", "Taguig", "Mandaluyong", "Pasay", "Caloocan"}},
	{"CAR", "Cordillera Administrative Region", 0.03, []string{"Baguio", "Tabuk", "Bangued", "Lagawe", "Bontoc", "Mayoyao"}},
	{"R01", "Ilocos Region", 0.08, []string{"Laoag", "Vigan", "San Fernando", "Dagupan", "Alaminos", "Urdaneta"}},
	{"R02", "Cagayan Valley", 0.05, []string{"Tuguegarao", "Ilagan", "Santiago", "Cauayan", "Bayombong"}},
	{"R03", "Central Luzon", 0.12, []string{"San Fernando", "Angeles", "Olongapo", "Malolos", "Cabanatuan", "Tarlac", "Balanga"}},
	{"R04A", "Calabarzon", 0.15, []string{"Calamba", "Santa Rosa", "Antipolo", "Dasmarinas", "Bacoor", "Lucena", "Batangas"}},
	{"R06", "Western Visayas", 0.08, []string{"Iloilo", "Bacolod", "Roxas", "Kalibo", "San Jose de Buenavista"}},
	{"R07", "Central Visayas", 0.09, []string{"Cebu", "Lapu-Lapu", "Mandaue", "Tagbilaran", "Dumaguete", "Siquijor"}},
	{"R11", "Davao Region", 0.07, []string{"Davao", "Tagum", "Panabo", "Digos", "Mati"}},
}

var (
	MockStoreTypes     = []string{"Sari-sari Store", "Convenience Store", "Grocery", "Supermarket", "Hypermarket"}
	MockAgeBrackets    = []string{"18-24", "25-34", "35-44", "45-54", "55+"}
	MockIncomeClasses  = []string{"A", "B", "C1", "C2", "D", "E"}
	MockPaymentMethods = []string{"Cash", "GCash", "Maya", "Credit Card", "Debit Card", "Bank Transfer"}
)
