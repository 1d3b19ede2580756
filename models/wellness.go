package models

import "time"

// WellnessKind identifies one of the wellness log tables.
type WellnessKind string

const (
	WellnessMood   WellnessKind = "mood"
	WellnessStress WellnessKind = "stress"
	WellnessSleep  WellnessKind = "sleep"
)

// WellnessKinds lists every wellness log kind.
var WellnessKinds = []WellnessKind{WellnessMood, WellnessStress, WellnessSleep}

// Wellness score and timing bounds.
const (
	MinWellnessScore   = 1
	MaxWellnessScore   = 10
	MaxSleepHours      = 24.0
	WellnessBackfill   = 7 * 24 * time.Hour
	WellnessContextAge = 7 * 24 * time.Hour
)

// MoodLog is a daily mood entry. Notes is ciphertext at rest and plaintext
// everywhere above the service layer.
type MoodLog struct {
	LogID       int64     `json:"id" db:"log_id"`
	UserID      int64     `json:"-" db:"user_id"`
	OccurredAt  time.Time `json:"occurred_at" db:"occurred_at"`
	LogDate     Date      `json:"log_date" db:"log_date"`
	MoodScore   int       `json:"mood_score" db:"mood_score"`
	EnergyLevel *int      `json:"energy_level" db:"energy_level"`
	Notes       *string   `json:"notes" db:"notes"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// StressLog is a daily stress entry. Triggers and Notes are ciphertext at rest.
type StressLog struct {
	LogID       int64     `json:"id" db:"log_id"`
	UserID      int64     `json:"-" db:"user_id"`
	OccurredAt  time.Time `json:"occurred_at" db:"occurred_at"`
	LogDate     Date      `json:"log_date" db:"log_date"`
	StressLevel int       `json:"stress_level" db:"stress_level"`
	Triggers    *string   `json:"triggers" db:"triggers"`
	Notes       *string   `json:"notes" db:"notes"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// SleepLog is a nightly sleep entry. Notes is ciphertext at rest.
type SleepLog struct {
	LogID         int64     `json:"id" db:"log_id"`
	UserID        int64     `json:"-" db:"user_id"`
	OccurredAt    time.Time `json:"occurred_at" db:"occurred_at"`
	LogDate       Date      `json:"log_date" db:"log_date"`
	SleepQuality  int       `json:"sleep_quality" db:"sleep_quality"`
	DurationHours float64   `json:"duration_hours" db:"duration_hours"`
	Notes         *string   `json:"notes" db:"notes"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// WellnessTiming is shared by every create request: either a calendar date
// (interpreted in the user's timezone) or an exact timestamp.
type WellnessTiming struct {
	LogDate    *string    `json:"log_date,omitempty"`
	OccurredAt *time.Time `json:"occurred_at,omitempty"`
}

// MoodLogInput creates or partially updates a mood log.
type MoodLogInput struct {
	WellnessTiming
	MoodScore   *int    `json:"mood_score,omitempty"`
	EnergyLevel *int    `json:"energy_level,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

// StressLogInput creates or partially updates a stress log.
type StressLogInput struct {
	WellnessTiming
	StressLevel *int    `json:"stress_level,omitempty"`
	Triggers    *string `json:"triggers,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

// SleepLogInput creates or partially updates a sleep log.
type SleepLogInput struct {
	WellnessTiming
	SleepQuality  *int     `json:"sleep_quality,omitempty"`
	DurationHours *float64 `json:"duration_hours,omitempty"`
	Notes         *string  `json:"notes,omitempty"`
}

// WellnessFilter narrows wellness log listings. Nil bounds are open.
type WellnessFilter struct {
	Start *Date
	End   *Date
	Kind  *WellnessKind
}

// Includes reports whether kind passes the filter.
func (f WellnessFilter) Includes(kind WellnessKind) bool {
	return f.Kind == nil || *f.Kind == kind
}

// WellnessLogs is the combined listing of the three log kinds.
type WellnessLogs struct {
	MoodLogs   []MoodLog   `json:"mood_logs"`
	StressLogs []StressLog `json:"stress_logs"`
	SleepLogs  []SleepLog  `json:"sleep_logs"`
}

// WellnessAverages aggregates recent mood and stress scores.
// A nil average means no entries in the window.
type WellnessAverages struct {
	AvgMood   *float64 `db:"avg_mood"`
	AvgStress *float64 `db:"avg_stress"`
}
