package services

import (
	"math"
	"sort"
	"time"

	"github.com/hazylake/aurelog/internal/models"
)

// topRankLimit caps the ranked trigger/symptom lists.
const topRankLimit = 5

type InsightsEntryReader interface {
	ListSince(since string) ([]models.MigraineEntry, error)
}

type RankedTrigger struct {
	Trigger string `json:"trigger"`
	Count   int    `json:"count"`
}

type RankedSymptom struct {
	Symptom string `json:"symptom"`
	Count   int    `json:"count"`
}

type InsightData struct {
	Count        int             `json:"count"`
	AvgIntensity float64         `json:"avgIntensity"`
	TopTriggers  []RankedTrigger `json:"topTriggers"`
	TopSymptoms  []RankedSymptom `json:"topSymptoms"`
	MedsCount    int             `json:"medsCount"`
	RangeDays    int             `json:"rangeDays"`
}

type InsightsService struct {
	entries InsightsEntryReader
}

func NewInsightsService(entries InsightsEntryReader) *InsightsService {
	return &InsightsService{entries: entries}
}

// Build aggregates the entries whose start timestamp falls inside the rolling
// rangeDays window ending at now. rangeDays is validated by the boundary
// layer and assumed positive here.
func (service *InsightsService) Build(rangeDays int, now time.Time) (InsightData, error) {
	since := now.Add(-time.Duration(rangeDays) * 24 * time.Hour).UTC().Format(time.RFC3339)

	matched, err := service.entries.ListSince(since)
	if err != nil {
		return InsightData{}, err
	}

	result := InsightData{
		TopTriggers: []RankedTrigger{},
		TopSymptoms: []RankedSymptom{},
		RangeDays:   rangeDays,
	}
	if len(matched) == 0 {
		return result, nil
	}

	intensitySum := 0
	medsCount := 0
	triggerValues := make([]string, 0)
	symptomValues := make([]string, 0)
	for _, entry := range matched {
		intensitySum += entry.PainIntensity
		medsCount += len(entry.Meds)
		for _, trigger := range entry.Triggers {
			triggerValues = append(triggerValues, trigger.Trigger)
		}
		symptomValues = append(symptomValues, entry.Symptoms...)
	}

	result.Count = len(matched)
	result.AvgIntensity = roundToOneDecimal(float64(intensitySum) / float64(len(matched)))
	result.MedsCount = medsCount

	for _, ranked := range rankOccurrences(triggerValues, topRankLimit) {
		result.TopTriggers = append(result.TopTriggers, RankedTrigger{Trigger: ranked.value, Count: ranked.count})
	}
	for _, ranked := range rankOccurrences(symptomValues, topRankLimit) {
		result.TopSymptoms = append(result.TopSymptoms, RankedSymptom{Symptom: ranked.value, Count: ranked.count})
	}

	return result, nil
}

type rankedValue struct {
	value string
	count int
}

// rankOccurrences counts every occurrence (no per-entry dedup), orders by
// count descending and keeps the first-encountered order for ties.
func rankOccurrences(values []string, limit int) []rankedValue {
	counts := make(map[string]int, len(values))
	ranked := make([]rankedValue, 0)
	for _, value := range values {
		if _, seen := counts[value]; !seen {
			ranked = append(ranked, rankedValue{value: value})
		}
		counts[value]++
	}
	for index := range ranked {
		ranked[index].count = counts[ranked[index].value]
	}

	sort.SliceStable(ranked, func(i int, j int) bool {
		return ranked[i].count > ranked[j].count
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func roundToOneDecimal(value float64) float64 {
	return math.Round(value*10) / 10
}
