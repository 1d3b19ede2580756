package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-nutri-keeper/models"
)

const (
	maxNameLength     = 100
	maxCategoryLength = 50
)

// HealthValidator validates profile, allergy, preference and allergen
// catalog payloads.
type HealthValidator struct{}

func NewHealthValidator() Validator {
	return &HealthValidator{}
}

func (v *HealthValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.HealthProfileUpdate:
		return v.validateProfile(value)
	case *models.HealthProfileUpdate:
		return v.validateProfile(*value)

	case models.UserAllergyInput:
		return v.validateAllergy(value)
	case *models.UserAllergyInput:
		return v.validateAllergy(*value)

	case models.UserAllergyUpdate:
		return v.validateAllergyUpdate(value)
	case *models.UserAllergyUpdate:
		return v.validateAllergyUpdate(*value)

	case models.DietaryPreferenceInput:
		return v.validatePreference(value)
	case *models.DietaryPreferenceInput:
		return v.validatePreference(*value)

	case models.DietaryPreferenceUpdate:
		return v.validatePreferenceUpdate(value)
	case *models.DietaryPreferenceUpdate:
		return v.validatePreferenceUpdate(*value)

	case models.AllergenInput:
		return checkAllergen(value, "").Err()
	case *models.AllergenInput:
		return checkAllergen(*value, "").Err()

	case models.AllergenUpdate:
		return v.validateAllergenUpdate(value)
	case *models.AllergenUpdate:
		return v.validateAllergenUpdate(*value)

	case models.BulkAllergenRequest:
		return v.validateBulk(value)
	case *models.BulkAllergenRequest:
		return v.validateBulk(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *HealthValidator) validateProfile(upd models.HealthProfileUpdate) error {
	var errs Errors
	checkPositive(&errs, "height_cm", upd.HeightCM)
	checkPositive(&errs, "weight_kg", upd.WeightKG)
	checkPositive(&errs, "metabolic_rate", upd.MetabolicRate)
	if upd.ActivityLevel != nil && !oneOf(*upd.ActivityLevel, models.ActivityLevels) {
		errs.Add("activity_level", enumMessage("activity_level", models.ActivityLevels), TypeEnum)
	}
	return errs.Err()
}

func (v *HealthValidator) validateAllergy(in models.UserAllergyInput) error {
	var errs Errors
	if in.AllergenID <= 0 {
		errs.Add("allergen_id", "allergen_id must be a positive integer", TypeValue)
	}
	if !oneOf(in.Severity, models.Severities) {
		errs.Add("severity", enumMessage("severity", models.Severities), TypeEnum)
	}
	return errs.Err()
}

func (v *HealthValidator) validateAllergyUpdate(upd models.UserAllergyUpdate) error {
	var errs Errors
	if upd.Severity != nil && !oneOf(*upd.Severity, models.Severities) {
		errs.Add("severity", enumMessage("severity", models.Severities), TypeEnum)
	}
	return errs.Err()
}

func (v *HealthValidator) validatePreference(in models.DietaryPreferenceInput) error {
	var errs Errors
	if !oneOf(in.PreferenceType, models.PreferenceTypes) {
		errs.Add("preference_type", enumMessage("preference_type", models.PreferenceTypes), TypeEnum)
	}
	checkName(&errs, "preference_name", in.PreferenceName)
	return errs.Err()
}

func (v *HealthValidator) validatePreferenceUpdate(upd models.DietaryPreferenceUpdate) error {
	var errs Errors
	if upd.PreferenceType != nil && !oneOf(*upd.PreferenceType, models.PreferenceTypes) {
		errs.Add("preference_type", enumMessage("preference_type", models.PreferenceTypes), TypeEnum)
	}
	if upd.PreferenceName != nil {
		checkName(&errs, "preference_name", *upd.PreferenceName)
	}
	return errs.Err()
}

func (v *HealthValidator) validateAllergenUpdate(upd models.AllergenUpdate) error {
	var errs Errors
	if upd.Name != nil {
		checkName(&errs, "name", *upd.Name)
	}
	if upd.Category != nil {
		checkCategory(&errs, "category", *upd.Category)
	}
	return errs.Err()
}

// validateBulk checks the batch size, every entry, and name uniqueness
// within the batch (case-insensitive).
func (v *HealthValidator) validateBulk(req models.BulkAllergenRequest) error {
	var errs Errors
	switch n := len(req.Allergens); {
	case n == 0:
		errs.Add("allergens", "at least one allergen is required", TypeMissing)
		return errs
	case n > models.MaxBulkAllergens:
		errs.Add("allergens", fmt.Sprintf("at most %d allergens per request", models.MaxBulkAllergens), TypeValue)
		return errs
	}

	seen := make(map[string]int, len(req.Allergens))
	for i, a := range req.Allergens {
		prefix := fmt.Sprintf("allergens.%d.", i)
		errs = append(errs, checkAllergen(a, prefix)...)

		key := strings.ToLower(strings.TrimSpace(a.Name))
		if key == "" {
			continue
		}
		if first, dup := seen[key]; dup {
			errs.Add(prefix+"name", fmt.Sprintf("duplicate of allergens.%d", first), TypeDuplicate)
			continue
		}
		seen[key] = i
	}

	return errs.Err()
}

func checkAllergen(in models.AllergenInput, prefix string) Errors {
	var errs Errors
	checkName(&errs, prefix+"name", in.Name)
	checkCategory(&errs, prefix+"category", in.Category)
	return errs
}

func checkName(errs *Errors, field, name string) {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		errs.Add(field, "field required", TypeMissing)
	case len(name) > maxNameLength:
		errs.Add(field, fmt.Sprintf("%s must be at most %d characters", field, maxNameLength), TypeValue)
	}
}

func checkCategory(errs *Errors, field, category string) {
	category = strings.TrimSpace(category)
	switch {
	case category == "":
		errs.Add(field, "field required", TypeMissing)
	case len(category) > maxCategoryLength:
		errs.Add(field, fmt.Sprintf("%s must be at most %d characters", field, maxCategoryLength), TypeValue)
	}
}

func checkPositive(errs *Errors, field string, v *float64) {
	if v != nil && *v <= 0 {
		errs.Add(field, field+" must be greater than 0", TypeRange)
	}
}

func oneOf[T comparable](v T, allowed []T) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}

func enumMessage[T ~string](field string, allowed []T) string {
	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = string(a)
	}
	return field + " must be one of: " + strings.Join(names, ", ")
}
