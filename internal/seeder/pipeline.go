package seeder

import (
	"context"
	"fmt"

	"github.com/Rana718/scout/internal/config"
	"github.com/Rana718/scout/internal/store"
	"github.com/Rana718/scout/internal/utils"
)

// Env is what a stage needs while it runs.
type Env struct {
	Data      *Dataset
	Generator *DataGenerator
	Store     store.Store
	Config    config.Seed
	log       *utils.Printer
}

// Stage seeds one table. Dependencies name the tables that must be seeded first.
type Stage interface {
	Table() string
	Dependencies() []string
	Run(ctx context.Context, env *Env) (int, error)
}

type tableStage[T Record] struct {
	table   string
	columns []string
	deps    []string
	batch   func(cfg config.Seed) int
	build   func(env *Env) ([]T, error)
	keep    func(data *Dataset, rows []T)
}

func (s *tableStage[T]) Table() string          { return s.table }
func (s *tableStage[T]) Dependencies() []string { return s.deps }

// Run builds the rows, writes them in batches and hands the persisted rows
// back to the dataset. Ids are assigned from the store's response.
func (s *tableStage[T]) Run(ctx context.Context, env *Env) (int, error) {
	rows, err := s.build(env)
	if err != nil {
		return 0, err
	}

	size := env.Config.Batch
	if s.batch != nil {
		size = s.batch(env.Config)
	}
	if size <= 0 {
		size = len(rows)
	}

	env.log.Info("  📝 Seeding %s (%d records)...", s.table, len(rows))

	for start := 0; start < len(rows); start += size {
		if err := ctx.Err(); err != nil {
			return start, err
		}

		end := start + size
		if end > len(rows) {
			end = len(rows)
		}
		chunk := rows[start:end]

		values := make([][]interface{}, len(chunk))
		for i, r := range chunk {
			values[i] = r.Values()
		}

		ids, err := env.Store.InsertBatch(ctx, s.table, s.columns, values)
		if err != nil {
			return start, fmt.Errorf("batch %d-%d: %w", start, end, err)
		}
		if len(ids) != len(chunk) {
			return start, fmt.Errorf("%w: %s got %d ids for %d rows", store.ErrIDCountMismatch, s.table, len(ids), len(chunk))
		}
		for i, id := range ids {
			chunk[i].SetID(id)
		}
	}

	s.keep(env.Data, rows)
	env.log.Success("  ✅ %s seeded successfully", s.table)
	return len(rows), nil
}

func transactionBatch(cfg config.Seed) int { return cfg.TransactionBatch }

// DefaultPipeline returns the stages of a full seed run in registration order.
func DefaultPipeline() []Stage {
	return []Stage{
		&tableStage[*Brand]{
			table:   "brands",
			columns: brandColumns,
			build: func(env *Env) ([]*Brand, error) {
				return env.Generator.Brands(env.Config.Brands), nil
			},
			keep: func(d *Dataset, rows []*Brand) { d.Brands = rows },
		},
		&tableStage[*Product]{
			table:   "products",
			columns: productColumns,
			deps:    []string{"brands"},
			build: func(env *Env) ([]*Product, error) {
				return env.Generator.Products(env.Config.Products, env.Data.Brands)
			},
			keep: func(d *Dataset, rows []*Product) { d.Products = rows },
		},
		&tableStage[*Customer]{
			table:   "customers",
			columns: customerColumns,
			build: func(env *Env) ([]*Customer, error) {
				return env.Generator.Customers(env.Config.Customers), nil
			},
			keep: func(d *Dataset, rows []*Customer) { d.Customers = rows },
		},
		&tableStage[*Store]{
			table:   "stores",
			columns: storeColumns,
			build: func(env *Env) ([]*Store, error) {
				return env.Generator.Stores(env.Config.Stores), nil
			},
			keep: func(d *Dataset, rows []*Store) { d.Stores = rows },
		},
		&tableStage[*Device]{
			table:   "devices",
			columns: deviceColumns,
			deps:    []string{"stores"},
			build: func(env *Env) ([]*Device, error) {
				return env.Generator.Devices(env.Data.Stores), nil
			},
			keep: func(d *Dataset, rows []*Device) { d.Devices = rows },
		},
		&tableStage[*Transaction]{
			table:   "transactions",
			columns: transactionColumns,
			deps:    []string{"stores", "customers"},
			batch:   transactionBatch,
			build: func(env *Env) ([]*Transaction, error) {
				return env.Generator.Transactions(env.Config.Transactions, env.Data.Stores, env.Data.Customers)
			},
			keep: func(d *Dataset, rows []*Transaction) { d.Transactions = rows },
		},
		&tableStage[*TransactionItem]{
			table:   "transaction_items",
			columns: transactionItemColumns,
			deps:    []string{"transactions", "products"},
			build: func(env *Env) ([]*TransactionItem, error) {
				return env.Generator.TransactionItems(env.Data.Transactions, env.Data.Products)
			},
			keep: func(d *Dataset, rows []*TransactionItem) { d.TransactionItems = rows },
		},
		&tableStage[*Substitution]{
			table:   "substitutions",
			columns: substitutionColumns,
			deps:    []string{"transactions", "products"},
			build: func(env *Env) ([]*Substitution, error) {
				return env.Generator.Substitutions(env.Data.Transactions, env.Data.Products), nil
			},
			keep: func(d *Dataset, rows []*Substitution) { d.Substitutions = rows },
		},
		&tableStage[*DeviceHealth]{
			table:   "device_health",
			columns: deviceHealthColumns,
			deps:    []string{"devices"},
			build: func(env *Env) ([]*DeviceHealth, error) {
				return env.Generator.DeviceHealth(env.Data.Devices), nil
			},
			keep: func(d *Dataset, rows []*DeviceHealth) { d.DeviceHealth = rows },
		},
		&tableStage[*RequestBehavior]{
			table:   "request_behaviors",
			columns: requestBehaviorColumns,
			deps:    []string{"transactions", "stores", "customers"},
			build: func(env *Env) ([]*RequestBehavior, error) {
				return env.Generator.RequestBehaviors(env.Data.Transactions, env.Data.Stores, env.Data.Customers)
			},
			keep: func(d *Dataset, rows []*RequestBehavior) { d.RequestBehaviors = rows },
		},
		&tableStage[*CustomerRequest]{
			table:   "customer_requests",
			columns: customerRequestColumns,
			deps:    []string{"customers", "stores", "products"},
			build: func(env *Env) ([]*CustomerRequest, error) {
				return env.Generator.CustomerRequests(env.Data.Customers, env.Data.Stores, env.Data.Products)
			},
			keep: func(d *Dataset, rows []*CustomerRequest) { d.CustomerRequests = rows },
		},
		&tableStage[*EdgeLog]{
			table:   "edge_logs",
			columns: edgeLogColumns,
			deps:    []string{"devices"},
			build: func(env *Env) ([]*EdgeLog, error) {
				return env.Generator.EdgeLogs(env.Data.Devices)
			},
			keep: func(d *Dataset, rows []*EdgeLog) { d.EdgeLogs = rows },
		},
	}
}
