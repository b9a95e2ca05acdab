package presenters

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/utils"
)

const Layout = "layouts/main"

func Render(c *fiber.Ctx, view string, data fiber.Map) error {
	return c.Render(view, data, Layout)
}

func Redirect(c *fiber.Ctx, location string) error {
	return c.Redirect(location, fiber.StatusFound)
}

// ErrorResponse renders the error page. Details are only shown for client
// errors; server errors are logged instead.
func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	data := fiber.Map{
		"Title":   fmt.Sprintf("%d %s", status, utils.StatusMessage(status)),
		"Status":  status,
		"Message": message,
	}

	if status >= fiber.StatusInternalServerError {
		log.Errorf("%s %s: %s: %v", c.Method(), c.Path(), message, err)
	} else if err != nil {
		data["Detail"] = describe(err)
	}

	return c.Status(status).Render("error", data, Layout)
}

func describe(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param()))
		case "datetime":
			msgs = append(msgs, fmt.Sprintf("%s must match %s", fe.Field(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", fe.Field()))
		}
	}
	return strings.Join(msgs, "; ")
}

// ErrorHandler catches errors that escape the handlers (panics turned into
// errors by the recover middleware, limiter rejections, render failures).
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		status = fe.Code
	}

	if renderErr := ErrorResponse(c, status, utils.StatusMessage(status), err); renderErr != nil {
		log.Errorf("render error page: %v", renderErr)
		return c.Status(status).SendString(utils.StatusMessage(status))
	}
	return nil
}
