package mockgen

import "github.com/Rana718/scout/internal/money"

// TimestampLayout is ISO-8601 with milliseconds, always rendered in UTC.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

type Store struct {
	ID       string `json:"id"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Size     string `json:"size"`
	Region   string `json:"region"`
	City     string `json:"city"`
	Barangay string `json:"barangay"`
}

type Customer struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	Gender      string `json:"gender"`
	AgeBracket  string `json:"age_bracket"`
	IncomeClass string `json:"income_class"`
	Region      string `json:"region"`
	City        string `json:"city"`
	Barangay    string `json:"barangay"`
}

type Item struct {
	SKU         string  `json:"sku"`
	ProductName string  `json:"product_name"`
	Brand       string  `json:"brand"`
	Category    string  `json:"category"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
}

type CustomerProfile struct {
	Gender      string `json:"gender"`
	AgeBracket  string `json:"age_bracket"`
	IncomeClass string `json:"income_class"`
	Region      string `json:"region"`
	City        string `json:"city"`
}

type StoreInfo struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Size     string `json:"size"`
	Region   string `json:"region"`
	City     string `json:"city"`
	Barangay string `json:"barangay"`
}

type TransactionSummary struct {
	ItemCount     int `json:"item_count"`
	TotalQuantity int `json:"total_quantity"`
	money.Summary
}

// Metadata describes when and where a receipt was printed. The time fields
// are taken from the transaction timestamp.
type Metadata struct {
	DayOfWeek int    `json:"day_of_week"`
	HourOfDay int    `json:"hour_of_day"`
	IsWeekend bool   `json:"is_weekend"`
	Channel   string `json:"channel"`
	DeviceID  string `json:"device_id"`
}

type Transaction struct {
	ID                 string             `json:"id"`
	TransactionCode    string             `json:"transaction_code"`
	Timestamp          string             `json:"timestamp"`
	CustomerID         string             `json:"customer_id"`
	CustomerProfile    CustomerProfile    `json:"customer_profile"`
	StoreID            string             `json:"store_id"`
	StoreInfo          StoreInfo          `json:"store_info"`
	Items              []Item             `json:"items"`
	TransactionSummary TransactionSummary `json:"transaction_summary"`
	PaymentMethod      string             `json:"payment_method"`
	Metadata           Metadata           `json:"metadata"`
}

type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type Summary struct {
	TotalTransactions int       `json:"total_transactions"`
	UniqueCustomers   int       `json:"unique_customers"`
	UniqueStores      int       `json:"unique_stores"`
	DateRange         DateRange `json:"date_range"`
	TotalRevenue      float64   `json:"total_revenue"`
}

// Document is the file written by the mock command.
type Document struct {
	Transactions []Transaction `json:"transactions"`
	Customers    []*Customer   `json:"customers"`
	Stores       []*Store      `json:"stores"`
	Summary      Summary       `json:"summary"`
}
