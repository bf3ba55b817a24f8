package cmd

import (
	"context"
	"log"

	"github.com/quatton/scitech/pkg/db"
	"github.com/quatton/scitech/pkg/scapi/config"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	Run:   runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	cfg, err := config.ValidateEnv()
	if err != nil {
		log.Fatalf("❌ %v\n", err)
	}

	database, err := db.New(ctx, cfg.Database())
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer database.Close()

	group, err := db.Migrate(ctx, database)
	if err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}
	if group == "" {
		log.Println("No new migrations to run.")
		return
	}
	log.Printf("Migrated to %s\n", group)
}
