package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/Rana718/scout/internal/config"
	"github.com/Rana718/scout/internal/seeder"
	"github.com/Rana718/scout/internal/store"
	"github.com/Rana718/scout/internal/utils"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// SupabaseKeyEnv names the variable holding the service key for the REST provider.
const SupabaseKeyEnv = "SUPABASE_SERVICE_KEY"

var seedDryRun bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the database with synthetic retail data",
	Long: `Generate brands, products, customers, stores, devices, transactions and
telemetry, insert them in dependency order and refresh the analytical views.

Use --dry-run to run the whole pipeline against an in-memory store.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if seedDryRun {
			cfg.Database.Provider = "memory"
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		opts := store.Options{Provider: cfg.Database.Provider}
		if opts.Provider != "memory" {
			if opts.URL, err = cfg.GetDatabaseURL(); err != nil {
				return err
			}
			if opts.Provider == "supabase" {
				opts.APIKey = os.Getenv(SupabaseKeyEnv)
			}

			force, _ := cmd.Flags().GetBool("force")
			input := &utils.InputUtils{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()}
			prompt := fmt.Sprintf("Insert %s transactions into the %s database?",
				humanize.Comma(int64(cfg.Seed.Transactions)), opts.Provider)
			if !input.AskConfirmation(prompt, force) {
				color.Yellow("Seeding cancelled")
				return nil
			}
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		st, err := store.Open(ctx, opts)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer st.Close()

		report, err := seeder.NewSeeder(st, cfg.Seed, cmd.OutOrStdout()).Seed(ctx)
		if err != nil {
			return err
		}

		printSeedReport(utils.NewPrinter(cmd.OutOrStdout()), report)
		return nil
	},
}

func printSeedReport(p *utils.Printer, report *seeder.Report) {
	p.Info("\n📊 Summary:")
	for _, table := range report.Tables {
		p.Plain("   • %-18s %s", table, humanize.Comma(int64(report.Counts[table])))
	}
	p.Plain("   • %-18s %s", "total", humanize.Comma(int64(report.Total())))
	if report.SkippedSubstitutions > 0 {
		p.Plain("   • %-18s %d", "skipped subs", report.SkippedSubstitutions)
	}
	switch {
	case report.Refreshed:
		p.Success("🔄 Analytical views refreshed")
	case report.RefreshErr != nil:
		p.Warn("⚠️  Analytical views not refreshed")
	}
	p.Plain("⏱️  Took %s", report.Duration.Round(time.Millisecond))
}

func init() {
	rootCmd.AddCommand(seedCmd)

	flags := seedCmd.Flags()
	flags.Int("brands", 0, "Number of brands (first 8 are real brands)")
	flags.Int("products", 0, "Number of products")
	flags.Int("customers", 0, "Number of customers")
	flags.Int("stores", 0, "Number of stores")
	flags.Int("transactions", 0, "Number of transactions")
	flags.Int("batch", 0, "Rows per insert batch")
	flags.Int("transaction-batch", 0, "Rows per insert batch for transactions")
	flags.String("provider", "", "Database provider (postgresql, supabase, mysql, sqlite, memory)")
	flags.Int64("seed", 0, "Random seed for reproducible data (0 = time based)")
	flags.Bool("no-refresh", false, "Skip the analytical view refresh")
	flags.BoolVar(&seedDryRun, "dry-run", false, "Generate everything against an in-memory store")

	bindings := map[string]string{
		"seed.brands":            "brands",
		"seed.products":          "products",
		"seed.customers":         "customers",
		"seed.stores":            "stores",
		"seed.transactions":      "transactions",
		"seed.batch":             "batch",
		"seed.transaction_batch": "transaction-batch",
		"seed.random_seed":       "seed",
		"seed.no_refresh":        "no-refresh",
		"database.provider":      "provider",
	}
	for key, flag := range bindings {
		viper.BindPFlag(key, flags.Lookup(flag))
	}
}
