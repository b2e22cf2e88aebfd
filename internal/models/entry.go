package models

// Timestamps are stored as RFC3339 TEXT so that lexical comparison in SQL
// matches chronological order.

const (
	LocationLeft      = "left"
	LocationRight     = "right"
	LocationFrontal   = "frontal"
	LocationTemporal  = "temporal"
	LocationOccipital = "occipital"
	LocationBehindEye = "behind_eye"
	LocationNeck      = "neck"
)

const (
	SymptomNausea           = "nausea"
	SymptomVomiting         = "vomiting"
	SymptomAura             = "aura"
	SymptomSensitivityLight = "sensitivity_light"
	SymptomSensitivitySound = "sensitivity_sound"
	SymptomDizziness        = "dizziness"
	SymptomFatigue          = "fatigue"
	SymptomBrainFog         = "brain_fog"
)

const (
	TriggerStress      = "stress"
	TriggerSleepChange = "sleep_change"
	TriggerDehydration = "dehydration"
	TriggerCaffeine    = "caffeine"
	TriggerAlcohol     = "alcohol"
	TriggerWeather     = "weather"
	TriggerHormones    = "hormones"
	TriggerFood        = "food"
	TriggerScreenTime  = "screen_time"
	TriggerExertion    = "exertion"
	TriggerMissedMeal  = "missed_meal"
	TriggerOther       = "other"
)

type MigraineEntry struct {
	ID            string  `gorm:"primaryKey" json:"id"`
	DateTimeStart string  `gorm:"not null" json:"date_time_start"`
	DateTimeEnd   *string `json:"date_time_end,omitempty"`
	PainIntensity int     `gorm:"not null" json:"pain_intensity"`
	Notes         string  `gorm:"not null;default:''" json:"notes"`
	CreatedAt     string  `gorm:"not null;autoCreateTime:false" json:"created_at"`
	UpdatedAt     string  `gorm:"not null;autoUpdateTime:false" json:"updated_at"`

	Locations []string       `gorm:"-" json:"locations"`
	Symptoms  []string       `gorm:"-" json:"symptoms"`
	Triggers  []EntryTrigger `gorm:"-" json:"triggers"`
	Meds      []Medication   `gorm:"-" json:"meds"`
}

type EntryLocation struct {
	EntryID  string `gorm:"primaryKey"`
	Location string `gorm:"primaryKey"`
}

type EntrySymptom struct {
	EntryID string `gorm:"primaryKey"`
	Symptom string `gorm:"primaryKey"`
}

// OtherText is not restricted to TriggerOther: any trigger row may carry
// free-text elaboration.
type EntryTrigger struct {
	EntryID   string  `gorm:"primaryKey" json:"-"`
	Trigger   string  `gorm:"primaryKey" json:"trigger"`
	OtherText *string `json:"other_text,omitempty"`
}

type Medication struct {
	ID        string `gorm:"primaryKey" json:"id"`
	EntryID   string `gorm:"not null;index" json:"entry_id"`
	Name      string `gorm:"not null" json:"name"`
	Dose      string `gorm:"not null;default:''" json:"dose"`
	TimeTaken string `gorm:"not null" json:"time_taken"`
	Relief    int    `gorm:"not null;default:0" json:"relief"`
}

func (Medication) TableName() string {
	return "entry_meds"
}
