package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/Rana718/scout/template"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	sqliteFlag     bool
	postgresqlFlag bool
	mysqlFlag      bool
	supabaseFlag   bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a Scout project",
	Long:  `Write scout.config.json, the retail schema for the chosen database and a .env with DATABASE_URL.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dbType := template.PostgreSQL
		flagCount := 0

		if sqliteFlag {
			dbType = template.SQLite
			flagCount++
		}
		if postgresqlFlag {
			dbType = template.PostgreSQL
			flagCount++
		}
		if mysqlFlag {
			dbType = template.MySQL
			flagCount++
		}
		if supabaseFlag {
			dbType = template.Supabase
			flagCount++
		}

		if flagCount > 1 {
			return fmt.Errorf("please specify only one database type (--sqlite, --postgresql, --mysql or --supabase)")
		}

		return initializeProject(dbType)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&sqliteFlag, "sqlite", false, "Initialize project for SQLite database")
	initCmd.Flags().BoolVar(&postgresqlFlag, "postgresql", false, "Initialize project for PostgreSQL database")
	initCmd.Flags().BoolVar(&mysqlFlag, "mysql", false, "Initialize project for MySQL database")
	initCmd.Flags().BoolVar(&supabaseFlag, "supabase", false, "Initialize project for Supabase (REST API)")
}

func initializeProject(dbType template.DatabaseType) error {
	tmpl := template.NewProjectTemplate(dbType)

	directories := tmpl.GetDirectoryStructure()
	for _, dir := range directories {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	files := map[string]string{}
	if _, err := os.Stat("scout.config.json"); os.IsNotExist(err) {
		files["scout.config.json"] = tmpl.GetScoutConfig()
	}

	schemaPath := "db/schema/scout.sql"
	schemaExists := false
	if _, err := os.Stat(schemaPath); err == nil {
		schemaExists = true
	} else {
		files[schemaPath] = tmpl.GetSchema()
	}

	for filePath, content := range files {
		if err := os.WriteFile(filePath, []byte(content), 0644); err != nil {
			return fmt.Errorf("failed to create file %s: %w", filePath, err)
		}
	}

	if err := handleEnvFile(tmpl.GetEnvTemplate()); err != nil {
		return fmt.Errorf("failed to handle .env file: %w", err)
	}

	color.Green("✅ Successfully initialized Scout project with %s database support", dbType)
	fmt.Println()
	fmt.Println("📁 Project structure created:")
	for _, dir := range directories {
		fmt.Printf("   %s/\n", dir)
	}

	if os.Getenv("DATABASE_URL") != "" {
		fmt.Println()
		fmt.Println("ℹ️  Using existing DATABASE_URL from environment")
	}
	if schemaExists {
		fmt.Printf("ℹ️  Skipped %s (already exists)\n", schemaPath)
	}

	fmt.Println()
	fmt.Printf("🚀 Next steps:\n")
	fmt.Printf("   apply %s to your database\n", schemaPath)
	fmt.Printf("   scout seed --dry-run         # Check the pipeline without a database\n")
	fmt.Printf("   scout seed                   # Populate the database\n")
	fmt.Printf("   scout mock --count 5000      # Write data/mockTransactions.json\n")

	return nil
}

func handleEnvFile(defaultEnvContent string) error {
	envPath := ".env"

	existingContent, err := os.ReadFile(envPath)
	if err != nil {
		if os.IsNotExist(err) {
			return os.WriteFile(envPath, []byte(defaultEnvContent), 0644)
		}
		return err
	}

	existingStr := string(existingContent)
	if strings.Contains(existingStr, "DATABASE_URL") {
		return nil
	}

	if len(existingStr) > 0 && !strings.HasSuffix(existingStr, "\n") {
		existingStr += "\n"
	}

	existingStr += "\n# Added by Scout\n" + defaultEnvContent

	return os.WriteFile(envPath, []byte(existingStr), 0644)
}
