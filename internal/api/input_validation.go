package api

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hazylake/aurelog/internal/models"
)

// validate checks shape, not bounds: pain_intensity stays unclamped and
// other_text is accepted on any trigger, matching the store contract.
func (payload *entryPayload) validate() error {
	if strings.TrimSpace(payload.DateTimeStart) == "" {
		return errors.New("date_time_start is required")
	}
	if _, err := time.Parse(time.RFC3339, payload.DateTimeStart); err != nil {
		return errors.New("date_time_start must be an RFC3339 timestamp")
	}
	if payload.DateTimeEnd != nil && *payload.DateTimeEnd != "" {
		if _, err := time.Parse(time.RFC3339, *payload.DateTimeEnd); err != nil {
			return errors.New("date_time_end must be an RFC3339 timestamp")
		}
	}
	if payload.PainIntensity == nil {
		return errors.New("pain_intensity is required")
	}
	for _, med := range payload.Meds {
		if strings.TrimSpace(med.Name) == "" {
			return errors.New("medication name is required")
		}
		if _, err := time.Parse(time.RFC3339, med.TimeTaken); err != nil {
			return errors.New("medication time_taken must be an RFC3339 timestamp")
		}
	}
	return nil
}

// toEntry assembles the full aggregate for the repository. Medications
// without an id get a fresh one; the order they are stored in is irrelevant,
// reads always sort by time_taken.
func (payload *entryPayload) toEntry(entryID string, createdAt string, updatedAt string) models.MigraineEntry {
	entry := models.MigraineEntry{
		ID:            entryID,
		DateTimeStart: payload.DateTimeStart,
		PainIntensity: *payload.PainIntensity,
		Notes:         payload.Notes,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
		Locations:     payload.Locations,
		Symptoms:      payload.Symptoms,
		Triggers:      payload.Triggers,
	}
	if payload.DateTimeEnd != nil && *payload.DateTimeEnd != "" {
		entry.DateTimeEnd = payload.DateTimeEnd
	}
	if entry.Locations == nil {
		entry.Locations = []string{}
	}
	if entry.Symptoms == nil {
		entry.Symptoms = []string{}
	}
	if entry.Triggers == nil {
		entry.Triggers = []models.EntryTrigger{}
	}

	entry.Meds = make([]models.Medication, 0, len(payload.Meds))
	for _, med := range payload.Meds {
		medID := med.ID
		if medID == "" {
			medID = uuid.NewString()
		}
		entry.Meds = append(entry.Meds, models.Medication{
			ID:        medID,
			EntryID:   entryID,
			Name:      med.Name,
			Dose:      med.Dose,
			TimeTaken: med.TimeTaken,
			Relief:    med.Relief,
		})
	}

	return entry
}
