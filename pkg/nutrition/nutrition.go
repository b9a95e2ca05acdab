// Package nutrition derives calories and per-log totals from food macros.
package nutrition

import (
	"food-diary/domain"
	"food-diary/entities"
)

// Atwater factors, kcal per gram.
const (
	KcalPerGramProtein = 4
	KcalPerGramCarbs   = 4
	KcalPerGramFat     = 9
)

func Calories(food *entities.Food) int {
	return food.Proteins*KcalPerGramProtein +
		food.Carbs*KcalPerGramCarbs +
		food.Fats*KcalPerGramFat
}

// Sum adds up macros and calories over foods. An empty slice yields zero totals.
func Sum(foods []*entities.Food) domain.Totals {
	var totals domain.Totals
	for _, food := range foods {
		totals.Proteins += food.Proteins
		totals.Carbs += food.Carbs
		totals.Fats += food.Fats
		totals.Calories += Calories(food)
	}
	return totals
}

func ToFoodResponse(food *entities.Food) domain.FoodResponse {
	return domain.FoodResponse{
		ID:       food.ID,
		Name:     food.Name,
		Proteins: food.Proteins,
		Carbs:    food.Carbs,
		Fats:     food.Fats,
		Calories: Calories(food),
	}
}

func ToFoodResponses(foods []*entities.Food) []domain.FoodResponse {
	response := make([]domain.FoodResponse, 0, len(foods))
	for _, food := range foods {
		response = append(response, ToFoodResponse(food))
	}
	return response
}
