package models

import "time"

// MealType classifies a meal log.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// MealTypes lists every accepted meal type.
var MealTypes = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}

// FoodItem is one component of a meal.
type FoodItem struct {
	FoodItemID  int64    `json:"id" db:"food_item_id"`
	MealID      int64    `json:"-" db:"meal_id"`
	Name        string   `json:"name" db:"name"`
	PortionSize float64  `json:"portion_size" db:"portion_size"`
	PortionUnit string   `json:"portion_unit" db:"portion_unit"`
	Calories    *float64 `json:"calories" db:"calories"`
	Protein     *float64 `json:"protein" db:"protein"`
	Carbs       *float64 `json:"carbs" db:"carbs"`
	Fat         *float64 `json:"fat" db:"fat"`
}

// Meal is a logged meal with totals derived from its food items.
type Meal struct {
	MealID        int64      `json:"id" db:"meal_id"`
	UserID        int64      `json:"-" db:"user_id"`
	MealType      MealType   `json:"meal_type" db:"meal_type"`
	MealTime      time.Time  `json:"meal_time" db:"meal_time"`
	Notes         *string    `json:"notes" db:"notes"`
	TotalCalories float64    `json:"total_calories" db:"total_calories"`
	TotalProtein  float64    `json:"total_protein" db:"total_protein"`
	TotalCarbs    float64    `json:"total_carbs" db:"total_carbs"`
	TotalFat      float64    `json:"total_fat" db:"total_fat"`
	FoodItems     []FoodItem `json:"food_items" db:"-"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

// RecomputeTotals derives the meal totals from its food items.
// Missing macros count as zero.
func (m *Meal) RecomputeTotals() {
	m.TotalCalories, m.TotalProtein, m.TotalCarbs, m.TotalFat = 0, 0, 0, 0
	for _, item := range m.FoodItems {
		m.TotalCalories += valueOrZero(item.Calories)
		m.TotalProtein += valueOrZero(item.Protein)
		m.TotalCarbs += valueOrZero(item.Carbs)
		m.TotalFat += valueOrZero(item.Fat)
	}
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// FoodItemInput describes a food item on create or replace.
type FoodItemInput struct {
	Name        string   `json:"name"`
	PortionSize float64  `json:"portion_size"`
	PortionUnit string   `json:"portion_unit"`
	Calories    *float64 `json:"calories,omitempty"`
	Protein     *float64 `json:"protein,omitempty"`
	Carbs       *float64 `json:"carbs,omitempty"`
	Fat         *float64 `json:"fat,omitempty"`
}

// ToFoodItem converts the input into a FoodItem without identifiers.
func (in FoodItemInput) ToFoodItem() FoodItem {
	return FoodItem{
		Name:        in.Name,
		PortionSize: in.PortionSize,
		PortionUnit: in.PortionUnit,
		Calories:    in.Calories,
		Protein:     in.Protein,
		Carbs:       in.Carbs,
		Fat:         in.Fat,
	}
}

// MealInput is the body used to create a meal.
type MealInput struct {
	MealType  MealType        `json:"meal_type"`
	MealTime  *time.Time      `json:"meal_time,omitempty"`
	Notes     *string         `json:"notes,omitempty"`
	FoodItems []FoodItemInput `json:"food_items"`
}

// MealUpdate is a partial meal update. A non-nil FoodItems replaces every item.
type MealUpdate struct {
	MealType  *MealType        `json:"meal_type,omitempty"`
	MealTime  *time.Time       `json:"meal_time,omitempty"`
	Notes     *string          `json:"notes,omitempty"`
	FoodItems *[]FoodItemInput `json:"food_items,omitempty"`
}

// MealFilter narrows meal listings.
type MealFilter struct {
	Start    *time.Time
	End      *time.Time
	MealType *MealType
}
