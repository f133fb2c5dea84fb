package cmd

import (
	"fmt"

	"github.com/Rana718/scout/internal/config"
	"github.com/Rana718/scout/internal/mockgen"
	"github.com/Rana718/scout/internal/utils"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var mockCmd = &cobra.Command{
	Use:   "mock",
	Short: "Write a JSON file of mock retail transactions",
	Long: `Generate mock transactions with realistic regional, hourly and weekly
patterns, basket composition and VAT-inclusive totals, and write them as a
single JSON document with the customers, stores and a summary.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Mock.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		opts, err := mockgen.OptionsFromConfig(cfg.Mock)
		if err != nil {
			return err
		}
		opts.Output = cmd.OutOrStdout()

		gen, err := mockgen.New(opts)
		if err != nil {
			return err
		}

		doc, err := gen.Generate(cfg.Mock.Count, cfg.Mock.Start, cfg.Mock.End)
		if err != nil {
			return fmt.Errorf("failed to generate mock data: %w", err)
		}
		if err := mockgen.WriteFile(cfg.Mock.Output, doc); err != nil {
			return err
		}

		p := utils.NewPrinter(cmd.OutOrStdout())
		p.Success("\n🎉 Mock data generation completed!")
		p.Info("📁 Output written to: %s", cfg.Mock.Output)
		p.Info("📊 Summary:")
		p.Plain("   • Transactions: %s", humanize.Comma(int64(doc.Summary.TotalTransactions)))
		p.Plain("   • Customers: %s", humanize.Comma(int64(doc.Summary.UniqueCustomers)))
		p.Plain("   • Stores: %s", humanize.Comma(int64(doc.Summary.UniqueStores)))
		p.Plain("   • Total Revenue: ₱%s", humanize.CommafWithDigits(doc.Summary.TotalRevenue, 2))
		p.Plain("   • Date Range: %s to %s", doc.Summary.DateRange.Start, doc.Summary.DateRange.End)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mockCmd)

	flags := mockCmd.Flags()
	flags.Int("count", 0, "Number of transactions to generate (default 5000)")
	flags.String("start", "", "First day, YYYY-MM-DD (default 2024-01-01)")
	flags.String("end", "", "Last day, YYYY-MM-DD, inclusive (default 2024-12-20)")
	flags.StringP("output", "o", "", "Output file (default data/mockTransactions.json)")
	flags.String("catalog", "", "YAML brand catalog overriding the built-in brands")
	flags.Int64("seed", 0, "Random seed for reproducible output (0 = time based)")

	bindings := map[string]string{
		"mock.count":       "count",
		"mock.start":       "start",
		"mock.end":         "end",
		"mock.output":      "output",
		"mock.catalog":     "catalog",
		"mock.random_seed": "seed",
	}
	for key, flag := range bindings {
		viper.BindPFlag(key, flags.Lookup(flag))
	}
}
