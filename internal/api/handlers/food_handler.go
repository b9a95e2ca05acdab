package handlers

import (
	"strings"

	"food-diary/domain"
	"food-diary/internal/api/presenters"
	"food-diary/pkg/food"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FoodHandler interface {
		ShowAddForm(c *fiber.Ctx) error
		AddFood(c *fiber.Ctx) error
		DeleteFood(c *fiber.Ctx) error
	}

	foodHandler struct {
		foodService food.FoodService
		validator   *validator.Validate
	}
)

func NewFoodHandler(foodService food.FoodService, validator *validator.Validate) FoodHandler {
	return &foodHandler{
		foodService: foodService,
		validator:   validator,
	}
}

func (h *foodHandler) ShowAddForm(c *fiber.Ctx) error {
	foods, err := h.foodService.GetFoods(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetFoods, err)
	}

	return presenters.Render(c, "add", fiber.Map{
		"Title": "Add Food",
		"Foods": foods,
	})
}

func (h *foodHandler) AddFood(c *fiber.Ctx) error {
	req := new(domain.CreateFoodRequest)

	if err := parseForm(c, req, "food-name", "protein", "carbohydrates", "fat"); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFood, err)
	}
	req.Name = strings.TrimSpace(req.Name)

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFood, err)
	}

	if _, err := h.foodService.AddFood(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedAddFood, err)
	}

	return presenters.Redirect(c, "/add")
}

func (h *foodHandler) DeleteFood(c *fiber.Ctx) error {
	foodID, err := paramID(c, "food_id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageNotFound, err)
	}

	if err := h.foodService.DeleteFood(c.Context(), foodID); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedDeleteFood, err)
	}

	return presenters.Redirect(c, "/add")
}
