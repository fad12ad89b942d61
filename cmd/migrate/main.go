package main

import (
	"flag"
	"log"

	"trivia-quiz/internal/config"
	"trivia-quiz/internal/database"
	"trivia-quiz/internal/logger"

	"go.uber.org/zap"
)

func main() {
	dir := flag.String("dir", "migrations", "directory holding *.up.sql files")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer logger.Sync()

	db, err := database.NewSQLXPostgresDB(cfg.GetDSN())
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.RunMigrations(db.DB, *dir); err != nil {
		l.Fatal("Failed to run migrations", zap.Error(err))
	}
	l.Info("Migrations completed successfully", zap.String("dir", *dir))
}
