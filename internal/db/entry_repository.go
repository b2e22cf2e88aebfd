package db

import (
	"github.com/hazylake/aurelog/internal/models"
	"gorm.io/gorm"
)

type EntryRepository struct {
	database *gorm.DB
}

func NewEntryRepository(database *gorm.DB) *EntryRepository {
	return &EntryRepository{database: database}
}

// Create inserts the parent row and all four child collections as one
// transaction. A duplicate id surfaces the primary-key violation untouched.
func (repo *EntryRepository) Create(entry *models.MigraineEntry) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(entry).Error; err != nil {
			return err
		}
		return replaceChildRows(tx, entry)
	})
}

// Update replaces the parent scalar fields and all child rows for entry.ID.
// Child rows are always deleted and re-inserted in full; callers submit the
// complete entry, never a diff. created_at is not touched here, the layer
// above carries it over from the stored record.
func (repo *EntryRepository) Update(entry *models.MigraineEntry) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		updates := map[string]any{
			"date_time_start": entry.DateTimeStart,
			"date_time_end":   entry.DateTimeEnd,
			"pain_intensity":  entry.PainIntensity,
			"notes":           entry.Notes,
			"updated_at":      entry.UpdatedAt,
		}
		if err := tx.Model(&models.MigraineEntry{}).Where("id = ?", entry.ID).Updates(updates).Error; err != nil {
			return err
		}
		return replaceChildRows(tx, entry)
	})
}

// Delete removes the parent row; child rows cascade at the schema level.
// Deleting an absent id is not an error, existence checks belong to callers.
func (repo *EntryRepository) Delete(entryID string) error {
	return repo.database.Where("id = ?", entryID).Delete(&models.MigraineEntry{}).Error
}

// FindByID returns the fully hydrated entry. Absence is reported through the
// bool, never as an error.
func (repo *EntryRepository) FindByID(entryID string) (models.MigraineEntry, bool, error) {
	entry := models.MigraineEntry{}
	result := repo.database.Where("id = ?", entryID).Limit(1).Find(&entry)
	if result.Error != nil {
		return models.MigraineEntry{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.MigraineEntry{}, false, nil
	}
	if err := repo.hydrateChildren(&entry); err != nil {
		return models.MigraineEntry{}, false, err
	}
	return entry, true, nil
}

// List returns every entry, hydrated, newest first. Entries sharing a start
// timestamp keep a deterministic id order.
func (repo *EntryRepository) List() ([]models.MigraineEntry, error) {
	entries := make([]models.MigraineEntry, 0)
	if err := repo.database.Order("date_time_start DESC, id ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	for index := range entries {
		if err := repo.hydrateChildren(&entries[index]); err != nil {
			return nil, err
		}
	}
	return entries, nil
}

// ListSince returns hydrated entries with date_time_start >= since. The
// comparison is lexical, which matches chronological order for the stored
// RFC3339 format.
func (repo *EntryRepository) ListSince(since string) ([]models.MigraineEntry, error) {
	entries := make([]models.MigraineEntry, 0)
	if err := repo.database.
		Where("date_time_start >= ?", since).
		Order("date_time_start DESC, id ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	for index := range entries {
		if err := repo.hydrateChildren(&entries[index]); err != nil {
			return nil, err
		}
	}
	return entries, nil
}

// WipeAll truncates the four child tables and then the parent in one
// transaction.
func (repo *EntryRepository) WipeAll() error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		for _, table := range []string{"entry_meds", "entry_triggers", "entry_symptoms", "entry_locations", "migraine_entries"} {
			if err := tx.Exec(`DELETE FROM ` + table).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (repo *EntryRepository) hydrateChildren(entry *models.MigraineEntry) error {
	locationRows := make([]models.EntryLocation, 0)
	if err := repo.database.Where("entry_id = ?", entry.ID).Order("location ASC").Find(&locationRows).Error; err != nil {
		return err
	}
	entry.Locations = make([]string, 0, len(locationRows))
	for _, row := range locationRows {
		entry.Locations = append(entry.Locations, row.Location)
	}

	symptomRows := make([]models.EntrySymptom, 0)
	if err := repo.database.Where("entry_id = ?", entry.ID).Order("symptom ASC").Find(&symptomRows).Error; err != nil {
		return err
	}
	entry.Symptoms = make([]string, 0, len(symptomRows))
	for _, row := range symptomRows {
		entry.Symptoms = append(entry.Symptoms, row.Symptom)
	}

	entry.Triggers = make([]models.EntryTrigger, 0)
	if err := repo.database.Where("entry_id = ?", entry.ID).Order("`trigger` ASC").Find(&entry.Triggers).Error; err != nil {
		return err
	}

	entry.Meds = make([]models.Medication, 0)
	if err := repo.database.Where("entry_id = ?", entry.ID).Order("time_taken ASC, id ASC").Find(&entry.Meds).Error; err != nil {
		return err
	}

	return nil
}

func replaceChildRows(tx *gorm.DB, entry *models.MigraineEntry) error {
	if err := tx.Where("entry_id = ?", entry.ID).Delete(&models.EntryLocation{}).Error; err != nil {
		return err
	}
	if err := tx.Where("entry_id = ?", entry.ID).Delete(&models.EntrySymptom{}).Error; err != nil {
		return err
	}
	if err := tx.Where("entry_id = ?", entry.ID).Delete(&models.EntryTrigger{}).Error; err != nil {
		return err
	}
	if err := tx.Where("entry_id = ?", entry.ID).Delete(&models.Medication{}).Error; err != nil {
		return err
	}

	if len(entry.Locations) > 0 {
		rows := make([]models.EntryLocation, 0, len(entry.Locations))
		for _, location := range entry.Locations {
			rows = append(rows, models.EntryLocation{EntryID: entry.ID, Location: location})
		}
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
	}

	if len(entry.Symptoms) > 0 {
		rows := make([]models.EntrySymptom, 0, len(entry.Symptoms))
		for _, symptom := range entry.Symptoms {
			rows = append(rows, models.EntrySymptom{EntryID: entry.ID, Symptom: symptom})
		}
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
	}

	if len(entry.Triggers) > 0 {
		rows := make([]models.EntryTrigger, 0, len(entry.Triggers))
		for _, trigger := range entry.Triggers {
			rows = append(rows, models.EntryTrigger{
				EntryID:   entry.ID,
				Trigger:   trigger.Trigger,
				OtherText: trigger.OtherText,
			})
		}
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
	}

	if len(entry.Meds) > 0 {
		rows := make([]models.Medication, 0, len(entry.Meds))
		for _, med := range entry.Meds {
			med.EntryID = entry.ID
			rows = append(rows, med)
		}
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
	}

	return nil
}
