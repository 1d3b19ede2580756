package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-nutri-keeper/models"
)

// MealValidator validates meal and goal payloads.
type MealValidator struct{}

func NewMealValidator() Validator {
	return &MealValidator{}
}

func (v *MealValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.MealInput:
		return v.validateMeal(value)
	case *models.MealInput:
		return v.validateMeal(*value)

	case models.MealUpdate:
		return v.validateMealUpdate(value)
	case *models.MealUpdate:
		return v.validateMealUpdate(*value)

	case models.GoalInput:
		return v.validateGoal(value)
	case *models.GoalInput:
		return v.validateGoal(*value)

	case models.GoalUpdate:
		return v.validateGoalUpdate(value)
	case *models.GoalUpdate:
		return v.validateGoalUpdate(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *MealValidator) validateMeal(in models.MealInput) error {
	var errs Errors
	if !oneOf(in.MealType, models.MealTypes) {
		errs.Add("meal_type", enumMessage("meal_type", models.MealTypes), TypeEnum)
	}
	checkFoodItems(&errs, in.FoodItems)
	return errs.Err()
}

func (v *MealValidator) validateMealUpdate(upd models.MealUpdate) error {
	var errs Errors
	if upd.MealType != nil && !oneOf(*upd.MealType, models.MealTypes) {
		errs.Add("meal_type", enumMessage("meal_type", models.MealTypes), TypeEnum)
	}
	if upd.FoodItems != nil {
		checkFoodItems(&errs, *upd.FoodItems)
	}
	return errs.Err()
}

func checkFoodItems(errs *Errors, items []models.FoodItemInput) {
	for i, item := range items {
		prefix := fmt.Sprintf("food_items.%d.", i)
		checkName(errs, prefix+"name", item.Name)
		if item.PortionSize <= 0 {
			errs.Add(prefix+"portion_size", "portion_size must be greater than 0", TypeRange)
		}
		if strings.TrimSpace(item.PortionUnit) == "" {
			errs.Add(prefix+"portion_unit", "field required", TypeMissing)
		}
		checkNonNegative(errs, prefix+"calories", item.Calories)
		checkNonNegative(errs, prefix+"protein", item.Protein)
		checkNonNegative(errs, prefix+"carbs", item.Carbs)
		checkNonNegative(errs, prefix+"fat", item.Fat)
	}
}

func (v *MealValidator) validateGoal(in models.GoalInput) error {
	var errs Errors
	if !oneOf(in.GoalType, models.GoalTypes) {
		errs.Add("goal_type", enumMessage("goal_type", models.GoalTypes), TypeEnum)
	}
	checkName(&errs, "target_type", in.TargetType)
	if in.TargetValue <= 0 {
		errs.Add("target_value", "target_value must be greater than 0", TypeRange)
	}
	checkNonNegative(&errs, "current_value", in.CurrentValue)
	if in.StartDate.IsZero() {
		errs.Add("start_date", "field required", TypeMissing)
	}
	if in.EndDate.IsZero() {
		errs.Add("end_date", "field required", TypeMissing)
	}
	if !in.StartDate.IsZero() && !in.EndDate.IsZero() && in.EndDate.Before(in.StartDate) {
		errs.Add("end_date", "end_date must not be before start_date", TypeDate)
	}
	if in.Status != nil && !oneOf(*in.Status, models.GoalStatuses) {
		errs.Add("status", enumMessage("status", models.GoalStatuses), TypeEnum)
	}
	return errs.Err()
}

// validateGoalUpdate checks the fields present in upd. The end >= start rule
// against the stored goal is enforced by the service after merging.
func (v *MealValidator) validateGoalUpdate(upd models.GoalUpdate) error {
	var errs Errors
	if upd.GoalType != nil && !oneOf(*upd.GoalType, models.GoalTypes) {
		errs.Add("goal_type", enumMessage("goal_type", models.GoalTypes), TypeEnum)
	}
	if upd.TargetType != nil {
		checkName(&errs, "target_type", *upd.TargetType)
	}
	if upd.TargetValue != nil && *upd.TargetValue <= 0 {
		errs.Add("target_value", "target_value must be greater than 0", TypeRange)
	}
	checkNonNegative(&errs, "current_value", upd.CurrentValue)
	if upd.Status != nil && !oneOf(*upd.Status, models.GoalStatuses) {
		errs.Add("status", enumMessage("status", models.GoalStatuses), TypeEnum)
	}
	return errs.Err()
}

func checkNonNegative(errs *Errors, field string, v *float64) {
	if v != nil && *v < 0 {
		errs.Add(field, field+" must not be negative", TypeRange)
	}
}
