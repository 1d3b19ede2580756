package validators

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-nutri-keeper/models"
	"github.com/stretchr/testify/assert"
)

func date(s string) models.Date {
	d, _ := models.ParseDate(s)
	return d
}

func TestMealValidator_Meal(t *testing.T) {
	v := NewMealValidator()

	valid := models.MealInput{
		MealType: models.MealLunch,
		FoodItems: []models.FoodItemInput{
			{Name: "Rice", PortionSize: 150, PortionUnit: "g", Calories: f64(200)},
		},
	}
	assert.NoError(t, v.Validate(context.Background(), valid))

	errs := fieldErrors(t, v.Validate(context.Background(), models.MealInput{
		MealType: "brunch",
		FoodItems: []models.FoodItemInput{
			{Name: "", PortionSize: 0, PortionUnit: "", Fat: f64(-1)},
		},
	}))
	assert.True(t, hasLoc(errs, "body", "meal_type"))
	assert.True(t, hasLoc(errs, "body", "food_items.0.name"))
	assert.True(t, hasLoc(errs, "body", "food_items.0.portion_size"))
	assert.True(t, hasLoc(errs, "body", "food_items.0.portion_unit"))
	assert.True(t, hasLoc(errs, "body", "food_items.0.fat"))
}

func TestMealValidator_MealUpdate(t *testing.T) {
	v := NewMealValidator()
	now := time.Now()

	assert.NoError(t, v.Validate(context.Background(), models.MealUpdate{MealTime: &now}))

	items := []models.FoodItemInput{{Name: "x", PortionSize: -1, PortionUnit: "g"}}
	assert.Error(t, v.Validate(context.Background(), models.MealUpdate{FoodItems: &items}))
}

func TestMealValidator_Goal(t *testing.T) {
	v := NewMealValidator()

	valid := models.GoalInput{
		GoalType:    models.GoalNutrition,
		TargetType:  "daily_calories",
		TargetValue: 2000,
		StartDate:   date("2026-01-01"),
		EndDate:     date("2026-01-01"),
	}
	assert.NoError(t, v.Validate(context.Background(), valid))

	bad := valid
	bad.TargetValue = 0
	bad.EndDate = date("2025-12-31")
	status := models.GoalStatus("paused")
	bad.Status = &status

	errs := fieldErrors(t, v.Validate(context.Background(), bad))
	assert.True(t, hasLoc(errs, "body", "target_value"))
	assert.True(t, hasLoc(errs, "body", "end_date"))
	assert.True(t, hasLoc(errs, "body", "status"))

	errs = fieldErrors(t, v.Validate(context.Background(), models.GoalInput{}))
	assert.True(t, hasLoc(errs, "body", "goal_type"))
	assert.True(t, hasLoc(errs, "body", "start_date"))
}

func TestMealValidator_GoalUpdate(t *testing.T) {
	v := NewMealValidator()

	assert.NoError(t, v.Validate(context.Background(), models.GoalUpdate{CurrentValue: f64(10)}))
	assert.Error(t, v.Validate(context.Background(), models.GoalUpdate{TargetValue: f64(-5)}))
}
