package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/hazylake/aurelog/internal/models"
)

func entryBody(start string, intensity int) string {
	return fmt.Sprintf(`{
		"date_time_start": %q,
		"pain_intensity": %d,
		"locations": ["left", "temporal"],
		"symptoms": ["nausea", "aura"],
		"triggers": [{"trigger": "stress"}, {"trigger": "other", "other_text": "new monitor"}],
		"meds": [{"name": "ibuprofen", "dose": "400mg", "time_taken": "2026-08-20T11:00:00Z", "relief": 4}],
		"notes": "woke up with it"
	}`, start, intensity)
}

func TestCreateEntryReturnsPopulatedEntry(t *testing.T) {
	app := newJournalTestApp(t)

	body := performJSON(t, app, http.MethodPost, "/api/entries", entryBody("2026-08-20T10:00:00Z", 7), http.StatusCreated)

	entry := models.MigraineEntry{}
	if err := json.Unmarshal([]byte(body), &entry); err != nil {
		t.Fatalf("decode created entry: %v", err)
	}

	if entry.ID == "" {
		t.Fatal("expected generated id")
	}
	if entry.CreatedAt == "" || entry.UpdatedAt == "" {
		t.Fatalf("expected stamped timestamps, got created_at=%q updated_at=%q", entry.CreatedAt, entry.UpdatedAt)
	}
	if entry.PainIntensity != 7 {
		t.Fatalf("expected intensity 7, got %d", entry.PainIntensity)
	}
	if len(entry.Locations) != 2 || len(entry.Symptoms) != 2 || len(entry.Triggers) != 2 {
		t.Fatalf("expected child collections to round-trip, got %#v", entry)
	}
	if len(entry.Meds) != 1 || entry.Meds[0].ID == "" {
		t.Fatalf("expected medication with generated id, got %#v", entry.Meds)
	}
}

func TestCreateEntryValidatesPayload(t *testing.T) {
	app := newJournalTestApp(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "missing start", body: `{"pain_intensity": 5}`},
		{name: "malformed start", body: `{"date_time_start": "yesterday", "pain_intensity": 5}`},
		{name: "missing intensity", body: `{"date_time_start": "2026-08-20T10:00:00Z"}`},
		{name: "medication without name", body: `{"date_time_start": "2026-08-20T10:00:00Z", "pain_intensity": 5, "meds": [{"name": "", "time_taken": "2026-08-20T11:00:00Z"}]}`},
		{name: "not json", body: `{nope`},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			performJSON(t, app, http.MethodPost, "/api/entries", testCase.body, http.StatusBadRequest)
		})
	}
}

func TestGetEntriesListsNewestFirst(t *testing.T) {
	app := newJournalTestApp(t)

	performJSON(t, app, http.MethodPost, "/api/entries", entryBody("2026-08-10T10:00:00Z", 4), http.StatusCreated)
	performJSON(t, app, http.MethodPost, "/api/entries", entryBody("2026-08-20T10:00:00Z", 6), http.StatusCreated)
	performJSON(t, app, http.MethodPost, "/api/entries", entryBody("2026-08-15T10:00:00Z", 5), http.StatusCreated)

	body := performJSON(t, app, http.MethodGet, "/api/entries", "", http.StatusOK)

	entries := make([]models.MigraineEntry, 0)
	if err := json.Unmarshal([]byte(body), &entries); err != nil {
		t.Fatalf("decode entries: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	starts := []string{entries[0].DateTimeStart, entries[1].DateTimeStart, entries[2].DateTimeStart}
	expected := []string{"2026-08-20T10:00:00Z", "2026-08-15T10:00:00Z", "2026-08-10T10:00:00Z"}
	for index := range expected {
		if starts[index] != expected[index] {
			t.Fatalf("expected start order %v, got %v", expected, starts)
		}
	}
}

func TestGetEntryReturnsNotFoundForUnknownID(t *testing.T) {
	app := newJournalTestApp(t)
	performJSON(t, app, http.MethodGet, "/api/entries/nope", "", http.StatusNotFound)
}

func TestUpdateEntryReplacesChildrenAndKeepsCreatedAt(t *testing.T) {
	app := newJournalTestApp(t)

	created := models.MigraineEntry{}
	createdBody := performJSON(t, app, http.MethodPost, "/api/entries", entryBody("2026-08-20T10:00:00Z", 7), http.StatusCreated)
	if err := json.Unmarshal([]byte(createdBody), &created); err != nil {
		t.Fatalf("decode created entry: %v", err)
	}

	update := `{
		"date_time_start": "2026-08-20T09:30:00Z",
		"pain_intensity": 9,
		"locations": ["occipital"],
		"symptoms": [],
		"triggers": [],
		"meds": [],
		"notes": "revised"
	}`
	updatedBody := performJSON(t, app, http.MethodPut, "/api/entries/"+created.ID, update, http.StatusOK)

	updated := models.MigraineEntry{}
	if err := json.Unmarshal([]byte(updatedBody), &updated); err != nil {
		t.Fatalf("decode updated entry: %v", err)
	}

	if updated.ID != created.ID {
		t.Fatalf("expected id to be immutable, got %q", updated.ID)
	}
	if updated.CreatedAt != created.CreatedAt {
		t.Fatalf("expected created_at preserved, before=%q after=%q", created.CreatedAt, updated.CreatedAt)
	}
	if updated.PainIntensity != 9 || updated.Notes != "revised" {
		t.Fatalf("expected scalar fields replaced, got %#v", updated)
	}
	if len(updated.Triggers) != 0 || len(updated.Symptoms) != 0 || len(updated.Meds) != 0 {
		t.Fatalf("expected child collections fully replaced, got %#v", updated)
	}
	if len(updated.Locations) != 1 || updated.Locations[0] != models.LocationOccipital {
		t.Fatalf("expected locations [occipital], got %#v", updated.Locations)
	}
}

func TestUpdateEntryReturnsNotFoundForUnknownID(t *testing.T) {
	app := newJournalTestApp(t)
	performJSON(t, app, http.MethodPut, "/api/entries/nope", entryBody("2026-08-20T10:00:00Z", 5), http.StatusNotFound)
}

func TestDeleteEntryRemovesEntry(t *testing.T) {
	app := newJournalTestApp(t)

	created := models.MigraineEntry{}
	createdBody := performJSON(t, app, http.MethodPost, "/api/entries", entryBody("2026-08-20T10:00:00Z", 7), http.StatusCreated)
	if err := json.Unmarshal([]byte(createdBody), &created); err != nil {
		t.Fatalf("decode created entry: %v", err)
	}

	performJSON(t, app, http.MethodDelete, "/api/entries/"+created.ID, "", http.StatusNoContent)
	performJSON(t, app, http.MethodGet, "/api/entries/"+created.ID, "", http.StatusNotFound)
	performJSON(t, app, http.MethodDelete, "/api/entries/"+created.ID, "", http.StatusNotFound)
}
