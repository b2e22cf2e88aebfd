package api

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetInsights(c *fiber.Ctx) error {
	days, err := strconv.Atoi(c.Query("days", "30"))
	if err != nil || days <= 0 {
		return apiError(c, fiber.StatusBadRequest, "days must be a positive integer")
	}

	insights, err := handler.insights.Build(days, time.Now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build insights")
	}
	return c.JSON(insights)
}
