package main

import (
	"log"

	"github.com/cardiotrack/cardiotrack/db"
	"github.com/cardiotrack/cardiotrack/internal/auth"
	"github.com/cardiotrack/cardiotrack/internal/config"
	"github.com/cardiotrack/cardiotrack/internal/ml"
	"github.com/cardiotrack/cardiotrack/internal/router"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg, err := config.LoadConfig()

	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := auth.InitJWTSecret(); err != nil {
		log.Fatalf("Failed to initialize JWT secret: %v", err)
	}

	if err := db.ConnectDatabase(cfg.DatabaseDSN); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Model and scaler are loaded once and shared read-only for the process
	// lifetime. A malformed artifact prevents startup.
	predictor, err := ml.NewPredictor(cfg.ScalerPath, cfg.ModelPath)

	if err != nil {
		log.Fatalf("Failed to load prediction artifacts: %v", err)
	}

	r := router.NewRouter(db.DB, predictor)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
