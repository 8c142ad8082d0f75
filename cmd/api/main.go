package main

import (
	"log"

	_ "homeez_booking/docs"
	"homeez_booking/internal/adapter/http/routes"
	"homeez_booking/internal/infrastructure/config"
	"homeez_booking/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Home Services Booking API
// @version         1.0
// @description     Service catalog, booking wizard and bookings for the home-services marketplace.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger, err := logger.New(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()
	zap.ReplaceGlobals(zapLogger)

	if err := routes.Run(cfg, zapLogger); err != nil {
		zapLogger.Fatal("Failed to startup the application", zap.Error(err))
	}
}
