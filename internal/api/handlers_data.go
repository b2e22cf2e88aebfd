package api

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/hazylake/aurelog/internal/services"
)

func (handler *Handler) ExportData(c *fiber.Ctx) error {
	now := time.Now().UTC()
	document, err := handler.transfer.BuildExport(now)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	filename := fmt.Sprintf("migraine-export-%s.json", now.Format("2006-01-02"))
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.JSON(document)
}

func (handler *Handler) ImportData(c *fiber.Ctx) error {
	result, err := handler.transfer.Import(c.Body())
	if err != nil {
		if errors.Is(err, services.ErrInvalidDocument) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to import entries")
	}
	return c.JSON(result)
}

func (handler *Handler) WipeData(c *fiber.Ctx) error {
	if err := handler.transfer.Wipe(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to wipe data")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
