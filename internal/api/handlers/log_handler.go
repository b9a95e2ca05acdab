package handlers

import (
	"errors"
	"fmt"
	"net/url"

	"food-diary/domain"
	"food-diary/internal/api/presenters"
	"food-diary/pkg/foodlog"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	LogHandler interface {
		Index(c *fiber.Ctx) error
		CreateLog(c *fiber.Ctx) error
		ViewLog(c *fiber.Ctx) error
		DeleteLog(c *fiber.Ctx) error
		AddFoodToLog(c *fiber.Ctx) error
		RemoveFoodFromLog(c *fiber.Ctx) error
	}

	logHandler struct {
		logService foodlog.LogService
		validator  *validator.Validate
	}
)

func NewLogHandler(logService foodlog.LogService, validator *validator.Validate) LogHandler {
	return &logHandler{
		logService: logService,
		validator:  validator,
	}
}

func viewPath(logID uint) string {
	return fmt.Sprintf("/view/%d", logID)
}

func (h *logHandler) Index(c *fiber.Ctx) error {
	logs, err := h.logService.GetLogs(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetLogs, err)
	}

	return presenters.Render(c, "index", fiber.Map{
		"Title": "Food Diary",
		"Logs":  logs,
	})
}

func (h *logHandler) CreateLog(c *fiber.Ctx) error {
	req := new(domain.CreateLogRequest)

	if err := parseForm(c, req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidDate, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidDate, err)
	}

	res, err := h.logService.CreateLog(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedCreateLog, err)
	}

	return presenters.Redirect(c, viewPath(res.ID))
}

func (h *logHandler) ViewLog(c *fiber.Ctx) error {
	logID, err := paramID(c, "log_id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageNotFound, err)
	}

	detail, err := h.logService.GetLogDetail(c.Context(), logID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetLog, err)
	}

	return presenters.Render(c, "view", fiber.Map{
		"Title":        detail.DateLabel,
		"Log":          detail,
		"ErrorMessage": c.Query("error_message"),
	})
}

func (h *logHandler) DeleteLog(c *fiber.Ctx) error {
	logID, err := paramID(c, "log_id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageNotFound, err)
	}

	if err := h.logService.DeleteLog(c.Context(), logID); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedDeleteLog, err)
	}

	return presenters.Redirect(c, "/")
}

func (h *logHandler) AddFoodToLog(c *fiber.Ctx) error {
	logID, err := paramID(c, "log_id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageNotFound, err)
	}

	req := new(domain.AddFoodToLogRequest)
	if err := parseForm(c, req, "food-select"); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidFoodSelection, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidFoodSelection, err)
	}

	if err := h.logService.AddFoodToLog(c.Context(), logID, *req); err != nil {
		if errors.Is(err, domain.ErrFoodAlreadyInLog) {
			return presenters.Redirect(c, viewPath(logID)+"?error_message="+url.QueryEscape(domain.MessageFoodAlreadyInLog))
		}
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedAddFoodToLog, err)
	}

	return presenters.Redirect(c, viewPath(logID))
}

func (h *logHandler) RemoveFoodFromLog(c *fiber.Ctx) error {
	logID, err := paramID(c, "log_id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageNotFound, err)
	}

	foodID, err := paramID(c, "food_id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageNotFound, err)
	}

	if err := h.logService.RemoveFoodFromLog(c.Context(), logID, foodID); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedRemoveFromLog, err)
	}

	return presenters.Redirect(c, viewPath(logID))
}
