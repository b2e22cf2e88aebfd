package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/hazylake/aurelog/internal/services"
)

func insightsEntryBody(start string, intensity int, trigger string) string {
	return fmt.Sprintf(`{
		"date_time_start": %q,
		"pain_intensity": %d,
		"locations": [],
		"symptoms": [],
		"triggers": [{"trigger": %q}],
		"meds": [],
		"notes": ""
	}`, start, intensity, trigger)
}

func TestGetInsightsRejectsInvalidDaysParameter(t *testing.T) {
	app := newJournalTestApp(t)

	for _, query := range []string{"days=0", "days=-3", "days=abc", "days=1.5"} {
		performJSON(t, app, http.MethodGet, "/api/insights?"+query, "", http.StatusBadRequest)
	}
}

func TestGetInsightsReturnsZeroValuedResultOnEmptyStore(t *testing.T) {
	app := newJournalTestApp(t)

	body := performJSON(t, app, http.MethodGet, "/api/insights?days=30", "", http.StatusOK)

	insights := services.InsightData{}
	if err := json.Unmarshal([]byte(body), &insights); err != nil {
		t.Fatalf("decode insights: %v", err)
	}
	if insights.Count != 0 || insights.AvgIntensity != 0 || insights.MedsCount != 0 {
		t.Fatalf("expected zero-valued insights, got %#v", insights)
	}
	if insights.RangeDays != 30 {
		t.Fatalf("expected rangeDays echoed as 30, got %d", insights.RangeDays)
	}
	if insights.TopTriggers == nil || len(insights.TopTriggers) != 0 {
		t.Fatalf("expected empty topTriggers slice, got %#v", insights.TopTriggers)
	}
	if insights.TopSymptoms == nil || len(insights.TopSymptoms) != 0 {
		t.Fatalf("expected empty topSymptoms slice, got %#v", insights.TopSymptoms)
	}
}

func TestGetInsightsAggregatesEntriesInsideWindow(t *testing.T) {
	app := newJournalTestApp(t)

	now := time.Now().UTC()
	recent := now.Add(-48 * time.Hour).Format(time.RFC3339)
	older := now.Add(-72 * time.Hour).Format(time.RFC3339)
	outside := now.Add(-10 * 24 * time.Hour).Format(time.RFC3339)

	performJSON(t, app, http.MethodPost, "/api/entries", insightsEntryBody(recent, 4, "stress"), http.StatusCreated)
	performJSON(t, app, http.MethodPost, "/api/entries", insightsEntryBody(older, 6, "stress"), http.StatusCreated)
	performJSON(t, app, http.MethodPost, "/api/entries", insightsEntryBody(outside, 8, "food"), http.StatusCreated)

	body := performJSON(t, app, http.MethodGet, "/api/insights?days=7", "", http.StatusOK)

	insights := services.InsightData{}
	if err := json.Unmarshal([]byte(body), &insights); err != nil {
		t.Fatalf("decode insights: %v", err)
	}

	if insights.Count != 2 {
		t.Fatalf("expected 2 entries inside the 7-day window, got %d", insights.Count)
	}
	if insights.AvgIntensity != 5.0 {
		t.Fatalf("expected average intensity 5.0, got %v", insights.AvgIntensity)
	}
	if len(insights.TopTriggers) != 1 || insights.TopTriggers[0].Trigger != "stress" || insights.TopTriggers[0].Count != 2 {
		t.Fatalf("expected stress counted twice inside the window, got %#v", insights.TopTriggers)
	}
	if insights.RangeDays != 7 {
		t.Fatalf("expected rangeDays 7, got %d", insights.RangeDays)
	}
}

func TestGetInsightsDefaultsToThirtyDays(t *testing.T) {
	app := newJournalTestApp(t)

	body := performJSON(t, app, http.MethodGet, "/api/insights", "", http.StatusOK)

	insights := services.InsightData{}
	if err := json.Unmarshal([]byte(body), &insights); err != nil {
		t.Fatalf("decode insights: %v", err)
	}
	if insights.RangeDays != 30 {
		t.Fatalf("expected default range of 30 days, got %d", insights.RangeDays)
	}
}
