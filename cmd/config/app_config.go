package config

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"food-diary/internal/api/handlers"
	"food-diary/internal/api/presenters"
	"food-diary/internal/api/routes"
	"food-diary/internal/utils"
	"food-diary/pkg/food"
	"food-diary/pkg/foodlog"
	"food-diary/web"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewApp wires repositories, services and handlers around db. The returned
// closer releases the access log file.
func NewApp(db *gorm.DB) (*fiber.App, io.Closer, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		Views:             web.NewEngine(),
		ErrorHandler:      presenters.ErrorHandler,
		EnablePrintRoutes: true,
	})
	validator := utils.Validate

	// setting up logging and limiter
	logDir := utils.GetConfig("LOG_DIR")
	if err := os.MkdirAll(logDir, os.ModePerm); err != nil {
		return nil, nil, err
	}
	file, err := os.OpenFile(
		filepath.Join(logDir, "app.log"),
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		return nil, nil, err
	}

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		Format:     "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	rateLimit, err := strconv.Atoi(utils.GetConfig("RATE_LIMIT_MAX"))
	if err != nil || rateLimit < 1 {
		rateLimit = 20
	}
	app.Use(limiter.New(limiter.Config{
		Max:        rateLimit,
		Expiration: 1 * time.Second,
	}))

	sqlDB, err := db.DB()
	if err != nil {
		_ = file.Close()
		return nil, nil, err
	}

	// Repository
	foodRepository := food.NewFoodRepository(db)
	logRepository := foodlog.NewLogRepository(db)

	// Service
	foodService := food.NewFoodService(foodRepository)
	logService := foodlog.NewLogService(logRepository, foodRepository)

	// Handler
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	logHandler := handlers.NewLogHandler(logService, validator)

	// routes
	routesConfig := routes.Config{
		App:         app,
		FoodHandler: foodHandler,
		LogHandler:  logHandler,
		HealthCheck: sqlDB.PingContext,
	}
	routesConfig.Setup()
	return app, file, nil
}
