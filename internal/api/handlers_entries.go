package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func (handler *Handler) CreateEntry(c *fiber.Ctx) error {
	payload := entryPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid entry payload")
	}
	if err := payload.validate(); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	now := time.Now().UTC().Format(time.RFC3339)
	entry := payload.toEntry(uuid.NewString(), now, now)
	if err := handler.repos.Entries.Create(&entry); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create entry")
	}

	stored, found, err := handler.repos.Entries.FindByID(entry.ID)
	if err != nil || !found {
		return apiError(c, fiber.StatusInternalServerError, "failed to load created entry")
	}
	return c.Status(fiber.StatusCreated).JSON(stored)
}

func (handler *Handler) GetEntries(c *fiber.Ctx) error {
	entries, err := handler.repos.Entries.List()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch entries")
	}
	return c.JSON(entries)
}

func (handler *Handler) GetEntry(c *fiber.Ctx) error {
	entry, found, err := handler.repos.Entries.FindByID(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch entry")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "entry not found")
	}
	return c.JSON(entry)
}

func (handler *Handler) UpdateEntry(c *fiber.Ctx) error {
	entryID := c.Params("id")

	existing, found, err := handler.repos.Entries.FindByID(entryID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch entry")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "entry not found")
	}

	payload := entryPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid entry payload")
	}
	if err := payload.validate(); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	// created_at carries over from the stored record, updated_at is stamped
	// fresh; the repository replaces every child row with the payload's.
	now := time.Now().UTC().Format(time.RFC3339)
	entry := payload.toEntry(entryID, existing.CreatedAt, now)
	if err := handler.repos.Entries.Update(&entry); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update entry")
	}

	stored, found, err := handler.repos.Entries.FindByID(entryID)
	if err != nil || !found {
		return apiError(c, fiber.StatusInternalServerError, "failed to load updated entry")
	}
	return c.JSON(stored)
}

func (handler *Handler) DeleteEntry(c *fiber.Ctx) error {
	entryID := c.Params("id")

	_, found, err := handler.repos.Entries.FindByID(entryID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch entry")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "entry not found")
	}

	if err := handler.repos.Entries.Delete(entryID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete entry")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
