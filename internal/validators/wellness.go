package validators

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-nutri-keeper/models"
)

// WellnessValidator validates mood, stress and sleep log payloads. Use
// [ScopeCreate] to require the score fields.
type WellnessValidator struct{}

func NewWellnessValidator() Validator {
	return &WellnessValidator{}
}

func (v *WellnessValidator) Validate(ctx context.Context, obj any, scopes ...string) error {
	create := hasScope(scopes, ScopeCreate)

	var errs Errors
	switch value := obj.(type) {
	case models.MoodLogInput:
		checkScore(&errs, "mood_score", value.MoodScore, create)
		checkScore(&errs, "energy_level", value.EnergyLevel, false)
	case *models.MoodLogInput:
		return v.Validate(ctx, *value, scopes...)

	case models.StressLogInput:
		checkScore(&errs, "stress_level", value.StressLevel, create)
	case *models.StressLogInput:
		return v.Validate(ctx, *value, scopes...)

	case models.SleepLogInput:
		checkScore(&errs, "sleep_quality", value.SleepQuality, create)
		switch {
		case value.DurationHours == nil && create:
			errs.Add("duration_hours", "field required", TypeMissing)
		case value.DurationHours != nil && (*value.DurationHours <= 0 || *value.DurationHours > models.MaxSleepHours):
			errs.Add("duration_hours", "duration_hours must be greater than 0 and at most 24", TypeRange)
		}
	case *models.SleepLogInput:
		return v.Validate(ctx, *value, scopes...)

	default:
		return ErrUnsupportedType
	}

	return errs.Err()
}

func checkScore(errs *Errors, field string, score *int, required bool) {
	switch {
	case score == nil:
		if required {
			errs.Add(field, "field required", TypeMissing)
		}
	case *score < models.MinWellnessScore || *score > models.MaxWellnessScore:
		errs.Add(field, fmt.Sprintf("%s must be between %d and %d", field, models.MinWellnessScore, models.MaxWellnessScore), TypeRange)
	}
}

// ResolveWellnessTiming turns the request timing into an occurrence instant
// (UTC) and the calendar date it falls on in loc.
//
// A log_date is anchored at local noon of that day. With neither field set
// the current instant is used. Instants in the future or older than
// [models.WellnessBackfill] are rejected; a log_date is accepted from today
// back to seven days before today.
func ResolveWellnessTiming(t models.WellnessTiming, loc *time.Location, now time.Time) (time.Time, models.Date, error) {
	if loc == nil {
		loc = time.UTC
	}
	localNow := now.In(loc)
	today := models.NewDate(localNow)

	switch {
	case t.LogDate != nil:
		d, err := models.ParseDate(*t.LogDate)
		if err != nil {
			return time.Time{}, models.Date{}, NewFieldError("log_date", "log_date must be YYYY-MM-DD", TypeDate)
		}
		if d.After(today) {
			return time.Time{}, models.Date{}, NewFieldError("log_date", "log_date cannot be in the future", TypeDate)
		}
		oldest := today.AddDate(0, 0, -int(models.WellnessBackfill/(24*time.Hour)))
		if d.Time.Before(oldest) {
			return time.Time{}, models.Date{}, NewFieldError("log_date", "log_date cannot be older than 7 days", TypeDate)
		}

		occurred := time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, loc)
		if occurred.After(now) {
			occurred = now
		}
		return occurred.UTC(), d, nil

	case t.OccurredAt != nil:
		occurred := *t.OccurredAt
		if occurred.After(now) {
			return time.Time{}, models.Date{}, NewFieldError("occurred_at", "occurred_at cannot be in the future", TypeDate)
		}
		if now.Sub(occurred) > models.WellnessBackfill {
			return time.Time{}, models.Date{}, NewFieldError("occurred_at", "occurred_at cannot be older than 7 days", TypeDate)
		}
		return occurred.UTC(), models.NewDate(occurred.In(loc)), nil

	default:
		return now.UTC(), today, nil
	}
}
