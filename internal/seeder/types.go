package seeder

import (
	"encoding/json"
	"time"
)

// Record is a row the pipeline can persist. SetID receives the id the store generated.
type Record interface {
	Values() []interface{}
	SetID(id int64)
}

// Dataset owns every persisted entity list of one seed run. Stages read their
// upstream lists from it and append their own.
type Dataset struct {
	Brands           []*Brand
	Products         []*Product
	Customers        []*Customer
	Stores           []*Store
	Devices          []*Device
	Transactions     []*Transaction
	TransactionItems []*TransactionItem
	Substitutions    []*Substitution
	DeviceHealth     []*DeviceHealth
	RequestBehaviors []*RequestBehavior
	CustomerRequests []*CustomerRequest
	EdgeLogs         []*EdgeLog
}

type Brand struct {
	ID           int64
	Name         string
	Category     string
	Manufacturer string
	Country      string
}

var brandColumns = []string{"name", "category", "manufacturer", "country_origin"}

func (b *Brand) Values() []interface{} {
	return []interface{}{b.Name, b.Category, b.Manufacturer, b.Country}
}
func (b *Brand) SetID(id int64) { b.ID = id }

type Product struct {
	ID          int64
	BrandID     int64
	SKU         string
	Name        string
	Category    string
	Subcategory string
	UnitSize    string
	UnitCost    float64
	RetailPrice float64
}

var productColumns = []string{"brand_id", "sku", "name", "category", "subcategory", "unit_size", "unit_cost", "retail_price"}

func (p *Product) Values() []interface{} {
	return []interface{}{p.BrandID, p.SKU, p.Name, p.Category, p.Subcategory, p.UnitSize, p.UnitCost, p.RetailPrice}
}
func (p *Product) SetID(id int64) { p.ID = id }

type Customer struct {
	ID            int64
	Code          string
	Gender        string
	AgeGroup      string
	Region        string
	Province      string
	City          string
	Barangay      string
	IncomeBracket string
	LoyaltyTier   string
}

var customerColumns = []string{
	"customer_code", "gender", "age_group", "location_region", "location_province",
	"location_city", "location_barangay", "income_bracket", "loyalty_tier",
}

func (c *Customer) Values() []interface{} {
	return []interface{}{c.Code, c.Gender, c.AgeGroup, c.Region, c.Province, c.City, c.Barangay, c.IncomeBracket, c.LoyaltyTier}
}
func (c *Customer) SetID(id int64) { c.ID = id }

type Store struct {
	ID       int64
	Code     string
	Name     string
	Type     string
	Region   string
	Province string
	City     string
	Barangay string
	Address  string
	Size     string
}

var storeColumns = []string{"store_code", "name", "type", "region", "province", "city", "barangay", "address", "store_size"}

func (s *Store) Values() []interface{} {
	return []interface{}{s.Code, s.Name, s.Type, s.Region, s.Province, s.City, s.Barangay, s.Address, s.Size}
}
func (s *Store) SetID(id int64) { s.ID = id }

type Device struct {
	ID               int64
	DeviceID         string
	StoreID          int64
	DeviceType       string
	Model            string
	FirmwareVersion  string
	InstallationDate time.Time
	LastMaintenance  time.Time
}

var deviceColumns = []string{"device_id", "store_id", "device_type", "model", "firmware_version", "installation_date", "last_maintenance"}

func (d *Device) Values() []interface{} {
	return []interface{}{d.DeviceID, d.StoreID, d.DeviceType, d.Model, d.FirmwareVersion, d.InstallationDate, d.LastMaintenance}
}
func (d *Device) SetID(id int64) { d.ID = id }

// Transaction is a receipt header. CustomerID is nil for walk-in purchases.
type Transaction struct {
	ID             int64
	Code           string
	CustomerID     *int64
	StoreID        int64
	Date           time.Time
	TotalAmount    float64
	TotalItems     int
	PaymentMethod  string
	DiscountAmount float64
	TaxAmount      float64
}

var transactionColumns = []string{
	"transaction_code", "customer_id", "store_id", "transaction_date", "total_amount",
	"total_items", "payment_method", "discount_amount", "tax_amount",
}

func (t *Transaction) Values() []interface{} {
	return []interface{}{t.Code, t.CustomerID, t.StoreID, t.Date, t.TotalAmount, t.TotalItems, t.PaymentMethod, t.DiscountAmount, t.TaxAmount}
}
func (t *Transaction) SetID(id int64) { t.ID = id }

type TransactionItem struct {
	ID             int64
	TransactionID  int64
	ProductID      int64
	Quantity       int
	UnitPrice      float64
	DiscountAmount float64
}

var transactionItemColumns = []string{"transaction_id", "product_id", "quantity", "unit_price", "discount_amount"}

func (i *TransactionItem) Values() []interface{} {
	return []interface{}{i.TransactionID, i.ProductID, i.Quantity, i.UnitPrice, i.DiscountAmount}
}
func (i *TransactionItem) SetID(id int64) { i.ID = id }

type Substitution struct {
	ID                  int64
	TransactionID       int64
	OriginalProductID   int64
	SubstituteProductID int64
	Reason              string
	SatisfactionScore   int
	WasAccepted         bool
}

var substitutionColumns = []string{
	"transaction_id", "original_product_id", "substitute_product_id", "reason",
	"customer_satisfaction_score", "was_accepted",
}

func (s *Substitution) Values() []interface{} {
	return []interface{}{s.TransactionID, s.OriginalProductID, s.SubstituteProductID, s.Reason, s.SatisfactionScore, s.WasAccepted}
}
func (s *Substitution) SetID(id int64) { s.ID = id }

// DeviceHealth is one heartbeat. Offline devices report no metrics.
type DeviceHealth struct {
	ID             int64
	DeviceID       string
	StoreID        int64
	Status         string
	CPUUsage       *float64
	MemoryUsage    *float64
	DiskUsage      *float64
	NetworkLatency *int
	LastHeartbeat  time.Time
	ErrorCount     int
	UptimeHours    float64
}

var deviceHealthColumns = []string{
	"device_id", "store_id", "status", "cpu_usage", "memory_usage", "disk_usage",
	"network_latency", "last_heartbeat", "error_count", "uptime_hours",
}

func (h *DeviceHealth) Values() []interface{} {
	return []interface{}{h.DeviceID, h.StoreID, h.Status, h.CPUUsage, h.MemoryUsage, h.DiskUsage, h.NetworkLatency, h.LastHeartbeat, h.ErrorCount, h.UptimeHours}
}
func (h *DeviceHealth) SetID(id int64) { h.ID = id }

type RequestBehavior struct {
	ID              int64
	CustomerID      *int64
	StoreID         int64
	RequestType     string
	RequestCategory string
	Details         json.RawMessage
	ResponseTimeMS  int
	WasSuccessful   bool
	Timestamp       time.Time
}

var requestBehaviorColumns = []string{
	"customer_id", "store_id", "request_type", "request_category", "request_details",
	"response_time_ms", "was_successful", "timestamp",
}

func (r *RequestBehavior) Values() []interface{} {
	return []interface{}{r.CustomerID, r.StoreID, r.RequestType, r.RequestCategory, r.Details, r.ResponseTimeMS, r.WasSuccessful, r.Timestamp}
}
func (r *RequestBehavior) SetID(id int64) { r.ID = id }

type CustomerRequest struct {
	ID                int64
	CustomerID        int64
	StoreID           int64
	RequestType       string
	ProductCategory   string
	SpecificProductID *int64
	Description       string
	UrgencyLevel      int
	Status            string
	FulfilledAt       *time.Time
}

var customerRequestColumns = []string{
	"customer_id", "store_id", "request_type", "product_category", "specific_product_id",
	"request_description", "urgency_level", "status", "fulfilled_at",
}

func (r *CustomerRequest) Values() []interface{} {
	return []interface{}{r.CustomerID, r.StoreID, r.RequestType, r.ProductCategory, r.SpecificProductID, r.Description, r.UrgencyLevel, r.Status, r.FulfilledAt}
}
func (r *CustomerRequest) SetID(id int64) { r.ID = id }

type EdgeLog struct {
	ID        int64
	DeviceID  string
	StoreID   int64
	LogLevel  string
	Message   string
	Component string
	ErrorCode *string
	Metadata  json.RawMessage
	Timestamp time.Time
}

var edgeLogColumns = []string{"device_id", "store_id", "log_level", "message", "component", "error_code", "metadata", "timestamp"}

func (l *EdgeLog) Values() []interface{} {
	return []interface{}{l.DeviceID, l.StoreID, l.LogLevel, l.Message, l.Component, l.ErrorCode, l.Metadata, l.Timestamp}
}
func (l *EdgeLog) SetID(id int64) { l.ID = id }
