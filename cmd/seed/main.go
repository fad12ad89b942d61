package main

import (
	"context"
	"fmt"
	"os"

	"trivia-quiz/internal/config"
	"trivia-quiz/internal/database"
	"trivia-quiz/internal/logger"
	"trivia-quiz/internal/repository"
	"trivia-quiz/internal/seeder"
	"trivia-quiz/internal/trivia"

	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	log.Info("Starting seeding process...")
	db, err := database.NewSQLXPostgresDB(cfg.GetDSN())
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.RunMigrations(db.DB, "migrations"); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	repo := repository.NewQuizDatabaseAdapter(db)
	client := trivia.NewClient(cfg.Trivia.BaseURL)

	if err := seeder.New(repo, client, log).Run(ctx); err != nil {
		log.Fatal("Seeding failed", zap.Error(err))
	}
}
