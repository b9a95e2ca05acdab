package handlers

import (
	"errors"
	"fmt"
	"strings"

	"food-diary/domain"

	"github.com/gofiber/fiber/v2"
)

func paramID(c *fiber.Ctx, key string) (uint, error) {
	id, err := c.ParamsInt(key)
	if err != nil || id < 1 {
		return 0, domain.ErrInvalidID
	}
	return uint(id), nil
}

// parseForm rejects blank values for the required keys before decoding the
// body, since the decoder stores an empty numeric field as zero.
func parseForm(c *fiber.Ctx, out interface{}, required ...string) error {
	for _, key := range required {
		if strings.TrimSpace(c.FormValue(key)) == "" {
			return fmt.Errorf("%s: %w", key, domain.ErrMissingField)
		}
	}

	if err := c.BodyParser(out); err != nil {
		return domain.ErrMalformedForm
	}
	return nil
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrFoodNotFound),
		errors.Is(err, domain.ErrLogNotFound),
		errors.Is(err, domain.ErrInvalidID):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrInvalidDate):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
