package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"food-diary/cmd/config"
	migration "food-diary/cmd/database/migrate"
	"food-diary/internal/utils"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatal(err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal(err)
	}
	defer sqlDB.Close()

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	app, accessLog, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("error creating app: %v", err)
	}
	defer accessLog.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Errorf("shutdown: %v", err)
		}
	}()

	if err := app.Listen(":" + utils.GetConfig("APP_PORT")); err != nil {
		log.Errorf("server stopped: %v", err)
	}
}
