package domain

import "errors"

var (
	MessageFailedAddFood    = "failed to add food"
	MessageFailedDeleteFood = "failed to delete food"
	MessageFailedGetFoods   = "failed to retrieve foods"

	ErrFoodNotFound = errors.New("food not found")
)

type (
	// CreateFoodRequest is the add-food form. Macros are grams per serving.
	CreateFoodRequest struct {
		Name          string `form:"food-name" validate:"required,max=30"`
		Proteins      int    `form:"protein" validate:"min=0"`
		Carbohydrates int    `form:"carbohydrates" validate:"min=0"`
		Fats          int    `form:"fat" validate:"min=0"`
	}

	FoodResponse struct {
		ID       uint   `json:"id"`
		Name     string `json:"name"`
		Proteins int    `json:"proteins"`
		Carbs    int    `json:"carbs"`
		Fats     int    `json:"fats"`
		Calories int    `json:"calories"`
	}
)
