package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/quatton/scitech/pkg/db"
)

// Standalone migrator for deploy pipelines. Unlike `scitech migrate` it only
// needs the DB_* variables.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("ℹ No .env file found")
	} else {
		log.Println("✓ Loaded .env file")
	}

	ctx := context.Background()

	cfg := db.Config{
		Driver:   db.DriverPostgres,
		Host:     "localhost",
		Port:     5432,
		User:     "scitech",
		Password: "password",
		Database: "scitech",
		SSLMode:  "disable",
		Path:     "scitech.db",
	}

	if err := envconfig.Process("DB", &cfg); err != nil {
		log.Fatalf("failed to process env vars: %v", err)
	}

	database, err := db.New(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer database.Close()

	log.Println("Running migrations...")
	group, err := db.Migrate(ctx, database)
	if err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}
	if group == "" {
		log.Println("Nothing to migrate.")
		return
	}
	log.Printf("Migrations completed successfully (%s).\n", group)
}
