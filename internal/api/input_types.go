package api

import "github.com/hazylake/aurelog/internal/models"

// entryPayload is the caller-supplied half of an entry: everything except id
// and the repository-managed timestamps.
type entryPayload struct {
	DateTimeStart string                `json:"date_time_start"`
	DateTimeEnd   *string               `json:"date_time_end"`
	PainIntensity *int                  `json:"pain_intensity"`
	Locations     []string              `json:"locations"`
	Symptoms      []string              `json:"symptoms"`
	Triggers      []models.EntryTrigger `json:"triggers"`
	Meds          []medPayload          `json:"meds"`
	Notes         string                `json:"notes"`
}

type medPayload struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Dose      string `json:"dose"`
	TimeTaken string `json:"time_taken"`
	Relief    int    `json:"relief"`
}
