package routes

import (
	"context"

	"food-diary/domain"
	"food-diary/internal/api/handlers"
	"food-diary/internal/api/presenters"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App         *fiber.App
	FoodHandler handlers.FoodHandler
	LogHandler  handlers.LogHandler
	HealthCheck func(ctx context.Context) error
}

func (c *Config) Setup() {
	c.GuestRoute()
	c.Logs()
	c.Foods()
	c.App.Use(c.NotFound)
}

func (c *Config) GuestRoute() {
	c.App.Get("/health", func(ctx *fiber.Ctx) error {
		if c.HealthCheck != nil {
			if err := c.HealthCheck(ctx.Context()); err != nil {
				return ctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
			}
		}
		return ctx.JSON(fiber.Map{"status": "ok"})
	})
}

func (c *Config) Logs() {
	c.App.Get("/", c.LogHandler.Index)
	c.App.Post("/create_log", c.LogHandler.CreateLog)
	c.App.Get("/view/:log_id", c.LogHandler.ViewLog)
	c.App.Get("/delete_log/:log_id", c.LogHandler.DeleteLog)

	// log <-> food associations
	c.App.Post("/add_food_to_log/:log_id", c.LogHandler.AddFoodToLog)
	c.App.Get("/remove_food_from_log/:log_id/:food_id", c.LogHandler.RemoveFoodFromLog)
}

func (c *Config) Foods() {
	c.App.Get("/add", c.FoodHandler.ShowAddForm)
	c.App.Post("/add", c.FoodHandler.AddFood)
	c.App.Get("/delete_food/:food_id", c.FoodHandler.DeleteFood)
}

func (c *Config) NotFound(ctx *fiber.Ctx) error {
	return presenters.ErrorResponse(ctx, fiber.StatusNotFound, domain.MessageNotFound, nil)
}
