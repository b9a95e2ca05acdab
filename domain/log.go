package domain

import (
	"errors"
	"time"
)

var (
	MessageFailedCreateLog      = "failed to create log"
	MessageFailedGetLogs        = "failed to retrieve logs"
	MessageFailedGetLog         = "failed to retrieve log"
	MessageFailedDeleteLog      = "failed to delete log"
	MessageFailedAddFoodToLog   = "failed to add food to log"
	MessageFailedRemoveFromLog  = "failed to remove food from log"
	MessageFoodAlreadyInLog     = "this food is already in the log"
	MessageInvalidDate          = "date must be in YYYY-MM-DD format"
	MessageInvalidFoodSelection = "select a food to add"

	ErrLogNotFound      = errors.New("log not found")
	ErrFoodAlreadyInLog = errors.New("food already in log")
	ErrInvalidDate      = errors.New("invalid date")
)

type (
	CreateLogRequest struct {
		Date string `form:"date" validate:"required,datetime=2006-01-02"`
	}

	AddFoodToLogRequest struct {
		FoodID uint `form:"food-select" validate:"required,min=1"`
	}

	// Totals holds summed macros for a set of foods.
	Totals struct {
		Proteins int `json:"proteins"`
		Carbs    int `json:"carbs"`
		Fats     int `json:"fats"`
		Calories int `json:"calories"`
	}

	LogResponse struct {
		ID        uint      `json:"id"`
		Date      time.Time `json:"date"`
		DateLabel string    `json:"date_label"`
	}

	LogSummaryResponse struct {
		LogResponse
		Totals Totals `json:"totals"`
	}

	LogDetailResponse struct {
		LogResponse
		Foods    []FoodResponse `json:"foods"`
		Totals   Totals         `json:"totals"`
		AllFoods []FoodResponse `json:"all_foods"`
	}
)

// FormatLogDate renders a log date the way the views show it.
func FormatLogDate(t time.Time) string {
	return t.Format("January 2, 2006")
}
