package models

import "time"

// ActivityLevel describes habitual physical activity.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// ActivityLevels lists every accepted activity level.
var ActivityLevels = []ActivityLevel{
	ActivitySedentary, ActivityLight, ActivityModerate, ActivityActive, ActivityVeryActive,
}

// HealthProfile is the 1:1 health record of a user.
type HealthProfile struct {
	ProfileID     int64          `json:"id" db:"profile_id"`
	UserID        int64          `json:"user_id" db:"user_id"`
	HeightCM      *float64       `json:"height_cm" db:"height_cm"`
	WeightKG      *float64       `json:"weight_kg" db:"weight_kg"`
	ActivityLevel *ActivityLevel `json:"activity_level" db:"activity_level"`
	MetabolicRate *float64       `json:"metabolic_rate" db:"metabolic_rate"`
	CreatedAt     time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at" db:"updated_at"`
}

// HealthProfileUpdate carries the writable profile fields.
// Nil fields are left untouched.
type HealthProfileUpdate struct {
	HeightCM      *float64       `json:"height_cm,omitempty"`
	WeightKG      *float64       `json:"weight_kg,omitempty"`
	ActivityLevel *ActivityLevel `json:"activity_level,omitempty"`
	MetabolicRate *float64       `json:"metabolic_rate,omitempty"`
}

// Apply copies the non-nil fields of u onto p.
func (u HealthProfileUpdate) Apply(p *HealthProfile) {
	if u.HeightCM != nil {
		p.HeightCM = u.HeightCM
	}
	if u.WeightKG != nil {
		p.WeightKG = u.WeightKG
	}
	if u.ActivityLevel != nil {
		p.ActivityLevel = u.ActivityLevel
	}
	if u.MetabolicRate != nil {
		p.MetabolicRate = u.MetabolicRate
	}
}

// Severity grades an allergic reaction.
type Severity string

const (
	SeverityMild            Severity = "mild"
	SeverityModerate        Severity = "moderate"
	SeveritySevere          Severity = "severe"
	SeverityLifeThreatening Severity = "life_threatening"
)

// Severities lists every accepted severity.
var Severities = []Severity{SeverityMild, SeverityModerate, SeveritySevere, SeverityLifeThreatening}

// UserAllergy links a health profile to an allergen catalog entry.
type UserAllergy struct {
	AllergyID     int64     `json:"id" db:"allergy_id"`
	ProfileID     int64     `json:"profile_id" db:"profile_id"`
	AllergenID    int64     `json:"allergen_id" db:"allergen_id"`
	AllergenName  string    `json:"allergen_name" db:"allergen_name"`
	Severity      Severity  `json:"severity" db:"severity"`
	DiagnosisDate *Date     `json:"diagnosis_date" db:"diagnosis_date"`
	ReactionType  *string   `json:"reaction_type" db:"reaction_type"`
	Notes         *string   `json:"notes" db:"notes"`
	IsVerified    bool      `json:"is_verified" db:"is_verified"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// UserAllergyInput is the body used to create an allergy.
type UserAllergyInput struct {
	AllergenID    int64    `json:"allergen_id"`
	Severity      Severity `json:"severity"`
	DiagnosisDate *Date    `json:"diagnosis_date,omitempty"`
	ReactionType  *string  `json:"reaction_type,omitempty"`
	Notes         *string  `json:"notes,omitempty"`
	IsVerified    bool     `json:"is_verified"`
}

// UserAllergyUpdate is a partial allergy update.
type UserAllergyUpdate struct {
	Severity      *Severity `json:"severity,omitempty"`
	DiagnosisDate *Date     `json:"diagnosis_date,omitempty"`
	ReactionType  *string   `json:"reaction_type,omitempty"`
	Notes         *string   `json:"notes,omitempty"`
	IsVerified    *bool     `json:"is_verified,omitempty"`
}

// Apply copies the non-nil fields of u onto a.
func (u UserAllergyUpdate) Apply(a *UserAllergy) {
	if u.Severity != nil {
		a.Severity = *u.Severity
	}
	if u.DiagnosisDate != nil {
		a.DiagnosisDate = u.DiagnosisDate
	}
	if u.ReactionType != nil {
		a.ReactionType = u.ReactionType
	}
	if u.Notes != nil {
		a.Notes = u.Notes
	}
	if u.IsVerified != nil {
		a.IsVerified = *u.IsVerified
	}
}

// PreferenceType groups dietary preferences.
type PreferenceType string

const (
	PreferenceDiet        PreferenceType = "diet"
	PreferenceCuisine     PreferenceType = "cuisine"
	PreferenceIngredient  PreferenceType = "ingredient"
	PreferencePreparation PreferenceType = "preparation"
)

// PreferenceTypes lists every accepted preference type.
var PreferenceTypes = []PreferenceType{PreferenceDiet, PreferenceCuisine, PreferenceIngredient, PreferencePreparation}

// DietaryPreference belongs to a health profile. Strict preferences are hard
// exclusions in recommendations, non-strict ones only boost scores.
type DietaryPreference struct {
	PreferenceID   int64          `json:"id" db:"preference_id"`
	ProfileID      int64          `json:"profile_id" db:"profile_id"`
	PreferenceType PreferenceType `json:"preference_type" db:"preference_type"`
	PreferenceName string         `json:"preference_name" db:"preference_name"`
	IsStrict       bool           `json:"is_strict" db:"is_strict"`
	Reason         *string        `json:"reason" db:"reason"`
	Notes          *string        `json:"notes" db:"notes"`
	CreatedAt      time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at" db:"updated_at"`
}

// DietaryPreferenceInput is the body used to create a preference.
type DietaryPreferenceInput struct {
	PreferenceType PreferenceType `json:"preference_type"`
	PreferenceName string         `json:"preference_name"`
	IsStrict       bool           `json:"is_strict"`
	Reason         *string        `json:"reason,omitempty"`
	Notes          *string        `json:"notes,omitempty"`
}

// DietaryPreferenceUpdate is a partial preference update.
type DietaryPreferenceUpdate struct {
	PreferenceType *PreferenceType `json:"preference_type,omitempty"`
	PreferenceName *string         `json:"preference_name,omitempty"`
	IsStrict       *bool           `json:"is_strict,omitempty"`
	Reason         *string         `json:"reason,omitempty"`
	Notes          *string         `json:"notes,omitempty"`
}

// Apply copies the non-nil fields of u onto p.
func (u DietaryPreferenceUpdate) Apply(p *DietaryPreference) {
	if u.PreferenceType != nil {
		p.PreferenceType = *u.PreferenceType
	}
	if u.PreferenceName != nil {
		p.PreferenceName = *u.PreferenceName
	}
	if u.IsStrict != nil {
		p.IsStrict = *u.IsStrict
	}
	if u.Reason != nil {
		p.Reason = u.Reason
	}
	if u.Notes != nil {
		p.Notes = u.Notes
	}
}
