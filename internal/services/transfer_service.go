package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hazylake/aurelog/internal/models"
)

// ExportVersion is the format version stamped on every export document.
const ExportVersion = 1

// ErrInvalidDocument marks a structurally broken import payload. Individual
// bad records inside a well-formed document are counted as skipped instead.
var ErrInvalidDocument = errors.New("invalid export document")

type TransferEntryStore interface {
	List() ([]models.MigraineEntry, error)
	FindByID(entryID string) (models.MigraineEntry, bool, error)
	Create(entry *models.MigraineEntry) error
	WipeAll() error
}

type ExportDocument struct {
	Version    int                    `json:"version"`
	ExportedAt string                 `json:"exported_at"`
	Entries    []models.MigraineEntry `json:"entries"`
}

type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

type TransferService struct {
	entries TransferEntryStore
}

func NewTransferService(entries TransferEntryStore) *TransferService {
	return &TransferService{entries: entries}
}

// BuildExport snapshots the whole journal, newest entry first, into a
// versioned document.
func (service *TransferService) BuildExport(now time.Time) (ExportDocument, error) {
	entries, err := service.entries.List()
	if err != nil {
		return ExportDocument{}, err
	}
	return ExportDocument{
		Version:    ExportVersion,
		ExportedAt: now.UTC().Format(time.RFC3339),
		Entries:    entries,
	}, nil
}

type importEntry struct {
	ID            string                `json:"id"`
	DateTimeStart string                `json:"date_time_start"`
	DateTimeEnd   *string               `json:"date_time_end"`
	PainIntensity *int                  `json:"pain_intensity"`
	Locations     []string              `json:"locations"`
	Symptoms      []string              `json:"symptoms"`
	Triggers      []models.EntryTrigger `json:"triggers"`
	Meds          []models.Medication   `json:"meds"`
	Notes         string                `json:"notes"`
	CreatedAt     string                `json:"created_at"`
	UpdatedAt     string                `json:"updated_at"`
}

type importDocument struct {
	Entries *[]json.RawMessage `json:"entries"`
}

// Import merges an export document into the store. Records that fail to
// decode or are missing id, start timestamp or pain intensity are skipped,
// as are ids that already exist; everything else is created verbatim with
// caller-supplied ids and timestamps. Re-importing the same document is
// therefore a no-op.
func (service *TransferService) Import(raw []byte) (ImportResult, error) {
	document := importDocument{}
	if err := json.Unmarshal(raw, &document); err != nil {
		return ImportResult{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if document.Entries == nil {
		return ImportResult{}, fmt.Errorf("%w: entries must be an array", ErrInvalidDocument)
	}

	result := ImportResult{}
	for _, rawEntry := range *document.Entries {
		candidate := importEntry{}
		if err := json.Unmarshal(rawEntry, &candidate); err != nil {
			result.Skipped++
			continue
		}
		if candidate.ID == "" || candidate.DateTimeStart == "" || candidate.PainIntensity == nil {
			result.Skipped++
			continue
		}

		_, exists, err := service.entries.FindByID(candidate.ID)
		if err != nil {
			return result, err
		}
		if exists {
			result.Skipped++
			continue
		}

		entry := models.MigraineEntry{
			ID:            candidate.ID,
			DateTimeStart: candidate.DateTimeStart,
			DateTimeEnd:   candidate.DateTimeEnd,
			PainIntensity: *candidate.PainIntensity,
			Notes:         candidate.Notes,
			CreatedAt:     candidate.CreatedAt,
			UpdatedAt:     candidate.UpdatedAt,
			Locations:     candidate.Locations,
			Symptoms:      candidate.Symptoms,
			Triggers:      candidate.Triggers,
			Meds:          candidate.Meds,
		}
		if err := service.entries.Create(&entry); err != nil {
			return result, err
		}
		result.Imported++
	}

	return result, nil
}

// Wipe irreversibly deletes every entry and all child rows.
func (service *TransferService) Wipe() error {
	return service.entries.WipeAll()
}
