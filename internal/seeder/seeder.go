package seeder

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Rana718/scout/internal/config"
	"github.com/Rana718/scout/internal/store"
	"github.com/Rana718/scout/internal/utils"
)

// Report summarizes a finished run.
type Report struct {
	Tables               []string
	Counts               map[string]int
	SkippedSubstitutions int
	Refreshed            bool
	RefreshErr           error
	Duration             time.Duration
	Data                 *Dataset
}

func (r *Report) Total() int {
	total := 0
	for _, n := range r.Counts {
		total += n
	}
	return total
}

type Seeder struct {
	cfg       config.Seed
	store     store.Store
	generator *DataGenerator
	stages    []Stage
	log       *utils.Printer
}

// NewSeeder prepares a run over st. Progress goes to out; nil discards it.
func NewSeeder(st store.Store, cfg config.Seed, out io.Writer) *Seeder {
	return &Seeder{
		cfg:       cfg,
		store:     st,
		generator: NewDataGenerator(cfg),
		stages:    DefaultPipeline(),
		log:       utils.NewPrinter(out),
	}
}

// Seed runs every stage in dependency order, one batch at a time. The first
// insert failure aborts the run. A failed refresh is only reported.
func (s *Seeder) Seed(ctx context.Context) (*Report, error) {
	started := time.Now()
	s.log.Info("🌱 Starting database seeding...")

	graph := NewDependencyGraph()
	for _, stage := range s.stages {
		if err := graph.AddStage(stage); err != nil {
			return nil, err
		}
	}
	order, err := graph.BuildInsertionOrder()
	if err != nil {
		return nil, fmt.Errorf("failed to order tables: %w", err)
	}
	s.log.Info("📋 Insertion order: %s", strings.Join(graph.GetOrder(), " → "))

	report := &Report{
		Counts: make(map[string]int),
		Data:   &Dataset{},
	}
	env := &Env{
		Data:      report.Data,
		Generator: s.generator,
		Store:     s.store,
		Config:    s.cfg,
		log:       s.log,
	}

	for _, stage := range order {
		n, err := stage.Run(ctx, env)
		if err != nil {
			return report, fmt.Errorf("failed to seed %s: %w", stage.Table(), err)
		}
		report.Tables = append(report.Tables, stage.Table())
		report.Counts[stage.Table()] = n
	}
	report.SkippedSubstitutions = s.generator.SkippedSubstitutions
	if report.SkippedSubstitutions > 0 {
		s.log.Warn("⚠️  Skipped %d substitutions without a same-category product", report.SkippedSubstitutions)
	}

	if !s.cfg.NoRefresh && s.cfg.RefreshProcedure != "" {
		s.log.Info("🔄 Refreshing analytical views (%s)...", s.cfg.RefreshProcedure)
		if err := s.store.Refresh(ctx, s.cfg.RefreshProcedure); err != nil {
			report.RefreshErr = err
			s.log.Warn("⚠️  Could not refresh analytical views: %v", err)
		} else {
			report.Refreshed = true
		}
	}

	report.Duration = time.Since(started)
	s.log.Success("\n✅ Database seeding completed successfully!")
	return report, nil
}
