package validators

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-nutri-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int              { return &v }
func strPtr(v string) *string        { return &v }
func timePtr(v time.Time) *time.Time { return &v }

// ---------------------------------------------------------------------------
// Scores
// ---------------------------------------------------------------------------

func TestWellnessValidator_Mood(t *testing.T) {
	v := NewWellnessValidator()

	assert.NoError(t, v.Validate(context.Background(), models.MoodLogInput{MoodScore: intPtr(1)}, ScopeCreate))
	assert.NoError(t, v.Validate(context.Background(), models.MoodLogInput{MoodScore: intPtr(10), EnergyLevel: intPtr(5)}, ScopeCreate))
	assert.NoError(t, v.Validate(context.Background(), models.MoodLogInput{}, ScopeUpdate))

	for _, score := range []int{0, 11, -3} {
		errs := fieldErrors(t, v.Validate(context.Background(), models.MoodLogInput{MoodScore: intPtr(score)}, ScopeCreate))
		assert.True(t, hasLoc(errs, "body", "mood_score"), score)
	}

	errs := fieldErrors(t, v.Validate(context.Background(), &models.MoodLogInput{}, ScopeCreate))
	assert.True(t, hasLoc(errs, "body", "mood_score"))
}

func TestWellnessValidator_Stress(t *testing.T) {
	v := NewWellnessValidator()

	assert.NoError(t, v.Validate(context.Background(), models.StressLogInput{StressLevel: intPtr(7)}, ScopeCreate))
	assert.Error(t, v.Validate(context.Background(), models.StressLogInput{StressLevel: intPtr(11)}, ScopeUpdate))
}

func TestWellnessValidator_Sleep(t *testing.T) {
	v := NewWellnessValidator()

	tests := []struct {
		name    string
		in      models.SleepLogInput
		scope   string
		wantErr bool
	}{
		{"valid", models.SleepLogInput{SleepQuality: intPtr(8), DurationHours: f64(7.5)}, ScopeCreate, false},
		{"full day", models.SleepLogInput{SleepQuality: intPtr(8), DurationHours: f64(24)}, ScopeCreate, false},
		{"zero duration", models.SleepLogInput{SleepQuality: intPtr(8), DurationHours: f64(0)}, ScopeCreate, true},
		{"over a day", models.SleepLogInput{SleepQuality: intPtr(8), DurationHours: f64(24.5)}, ScopeCreate, true},
		{"missing duration", models.SleepLogInput{SleepQuality: intPtr(8)}, ScopeCreate, true},
		{"partial update", models.SleepLogInput{DurationHours: f64(6)}, ScopeUpdate, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.in, tt.scope)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// ---------------------------------------------------------------------------
// Timing
// ---------------------------------------------------------------------------

func TestResolveWellnessTiming_LogDate(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 02:00 UTC on Mar 10 is still Mar 9 in New York.
	now := time.Date(2026, 3, 10, 2, 0, 0, 0, time.UTC)

	occurred, date, err := ResolveWellnessTiming(models.WellnessTiming{LogDate: strPtr("2026-03-09")}, ny, now)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-09", date.String())
	assert.False(t, occurred.After(now))

	_, _, err = ResolveWellnessTiming(models.WellnessTiming{LogDate: strPtr("2026-03-10")}, ny, now)
	assert.Error(t, err, "tomorrow in the user's timezone")

	_, date, err = ResolveWellnessTiming(models.WellnessTiming{LogDate: strPtr("2026-03-02")}, ny, now)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-02", date.String())

	_, _, err = ResolveWellnessTiming(models.WellnessTiming{LogDate: strPtr("2026-03-01")}, ny, now)
	assert.True(t, hasLoc(fieldErrors(t, err), "body", "log_date"))

	_, _, err = ResolveWellnessTiming(models.WellnessTiming{LogDate: strPtr("03/09/2026")}, ny, now)
	assert.True(t, hasLoc(fieldErrors(t, err), "body", "log_date"))
}

func TestResolveWellnessTiming_OccurredAt(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	at := time.Date(2026, 3, 9, 20, 0, 0, 0, time.UTC) // Mar 10 05:00 in Tokyo
	occurred, date, err := ResolveWellnessTiming(models.WellnessTiming{OccurredAt: timePtr(at)}, tokyo, now)
	require.NoError(t, err)
	assert.Equal(t, at, occurred)
	assert.Equal(t, "2026-03-10", date.String())

	_, _, err = ResolveWellnessTiming(models.WellnessTiming{OccurredAt: timePtr(now.Add(time.Minute))}, tokyo, now)
	assert.True(t, hasLoc(fieldErrors(t, err), "body", "occurred_at"))

	_, _, err = ResolveWellnessTiming(models.WellnessTiming{OccurredAt: timePtr(now.Add(-8 * 24 * time.Hour))}, tokyo, now)
	assert.True(t, hasLoc(fieldErrors(t, err), "body", "occurred_at"))
}

func TestResolveWellnessTiming_DefaultsToNow(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	occurred, date, err := ResolveWellnessTiming(models.WellnessTiming{}, nil, now)
	require.NoError(t, err)
	assert.Equal(t, now, occurred)
	assert.Equal(t, "2026-03-10", date.String())
}
