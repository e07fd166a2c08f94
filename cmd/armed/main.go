package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/armedhealth/armed/internal/api"
	"github.com/armedhealth/armed/internal/db"
	"github.com/armedhealth/armed/internal/services"
)

func main() {
	location := mustLoadLocation(getEnv("TZ", "UTC"))
	time.Local = location

	// DB_PATH empty means the shared in-memory store: every restart
	// begins from the seed data.
	dbPath := getEnv("DB_PATH", "")
	port := getEnv("PORT", "8080")
	toastDuration := getDurationEnv("TOAST_SECONDS", services.DefaultToastDuration)

	database, err := db.Open(dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}
	if err := db.Seed(database); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}

	toaster := services.NewToaster(toastDuration)
	repositories := db.NewRepositories(database)
	simulator := services.NewNotificationSimulator(repositories.Notifications, 0)

	handler := api.NewHandler(database, location, toaster, simulator)

	app := fiber.New(fiber.Config{
		AppName:               "Armed",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)

	lifecycleCtx, cancelLifecycle := context.WithCancel(context.Background())
	defer cancelLifecycle()
	simulator.Start(lifecycleCtx)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		cancelLifecycle()
		toaster.Stop()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	store := dbPath
	if store == "" {
		store = "in-memory"
	}
	log.Printf("Armed listening on http://0.0.0.0:%s (db: %s, tz: %s)", port, store, location.String())
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	seconds, err := strconv.Atoi(value)
	if err != nil || seconds <= 0 {
		log.Printf("invalid %s %q, using default", key, value)
		return fallback
	}
	return time.Duration(seconds) * time.Second
}
