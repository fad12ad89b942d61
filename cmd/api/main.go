package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"trivia-quiz/internal/config"
	"trivia-quiz/internal/database"
	"trivia-quiz/internal/handler"
	"trivia-quiz/internal/logger"
	"trivia-quiz/internal/middleware"
	"trivia-quiz/internal/repository"
	"trivia-quiz/internal/service"
	"trivia-quiz/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
		)
		return err
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	db, err := database.NewSQLXPostgresDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Successfully connected to Postgres")

	quizRepository := repository.NewQuizDatabaseAdapter(db)
	quizService := service.NewQuizService(quizRepository, validation.NewValidator())
	quizHandler := handler.NewQuizHandler(quizService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))
	app.Use(recover.New())

	app.Get("/health", quizHandler.Health)
	app.Get("/categories", quizHandler.GetCategories)
	app.Get("/categories/meta", quizHandler.GetCategoryMeta)
	app.Get("/quiz", quizHandler.GetQuiz)
	app.Post("/quiz/score", quizHandler.ScoreQuiz)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
