package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	Version = "1.0.0"
)

func showBanner() {
	greenColor := color.New(color.FgGreen, color.Bold)

	banner := []string{
		"╔══════════════════════════════════════════════════════════════╗",
		"║        ███████╗ ██████╗ ██████╗ ██╗   ██╗████████╗           ║",
		"║        ██╔════╝██╔════╝██╔═══██╗██║   ██║╚══██╔══╝           ║",
		"║        ███████╗██║     ██║   ██║██║   ██║   ██║              ║",
		"║        ╚════██║██║     ██║   ██║██║   ██║   ██║              ║",
		"║        ███████║╚██████╗╚██████╔╝╚██████╔╝   ██║              ║",
		"║        ╚══════╝ ╚═════╝ ╚═════╝  ╚═════╝    ╚═╝              ║",
		"║                                                              ║",
		"║        🛒 Retail Analytics Data Synthesis 🛒                 ║",
		"╚══════════════════════════════════════════════════════════════╝",
	}

	for _, line := range banner {
		greenColor.Println(line)
	}

	fmt.Print("                        ")
	color.New(color.FgCyan, color.Bold).Print("Version: ")
	color.New(color.FgYellow, color.Bold).Printf("%s\n", Version)
}

var rootCmd = &cobra.Command{
	Use:   "scout",
	Short: "Synthetic retail transaction data for the Scout analytics dashboard",
	Long: `
Scout generates realistic Philippine retail data for analytics development.

Commands:
- seed: populate the relational store (brands, products, customers, stores,
  devices, transactions, telemetry) and refresh the analytical views
- mock: write a self-contained JSON file of mock transactions

Database Support:
- PostgreSQL / Supabase (direct connection or REST API)
- MySQL
- SQLite`,
	SilenceUsage: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Fprintf(cmd.OutOrStdout(), "Scout CLI version %s\n", Version)
			return nil
		}

		showBanner()
		fmt.Println()
		return cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./scout.config.json)")
	rootCmd.PersistentFlags().BoolP("force", "f", false, "Skip confirmations")

	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env")
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("scout.config")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			color.Yellow("⚠️  Could not read config: %v", err)
		}
	}
}
