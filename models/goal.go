package models

import "time"

// GoalType classifies a goal.
type GoalType string

const (
	GoalNutrition GoalType = "nutrition"
	GoalWellness  GoalType = "wellness"
)

// GoalTypes lists every accepted goal type.
var GoalTypes = []GoalType{GoalNutrition, GoalWellness}

// GoalStatus is the lifecycle state of a goal.
type GoalStatus string

const (
	GoalActive    GoalStatus = "active"
	GoalCompleted GoalStatus = "completed"
	GoalArchived  GoalStatus = "archived"
)

// GoalStatuses lists every accepted goal status.
var GoalStatuses = []GoalStatus{GoalActive, GoalCompleted, GoalArchived}

// Goal is a user target with progress derived from current and target values.
type Goal struct {
	GoalID       int64      `json:"id" db:"goal_id"`
	UserID       int64      `json:"-" db:"user_id"`
	GoalType     GoalType   `json:"goal_type" db:"goal_type"`
	TargetType   string     `json:"target_type" db:"target_type"`
	TargetValue  float64    `json:"target_value" db:"target_value"`
	CurrentValue float64    `json:"current_value" db:"current_value"`
	StartDate    Date       `json:"start_date" db:"start_date"`
	EndDate      Date       `json:"end_date" db:"end_date"`
	Status       GoalStatus `json:"status" db:"status"`
	Progress     float64    `json:"progress" db:"-"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

// ComputeProgress returns min(current/target, 1), never negative.
func (g Goal) ComputeProgress() float64 {
	if g.TargetValue <= 0 {
		return 0
	}
	p := g.CurrentValue / g.TargetValue
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

// WithProgress returns g with Progress populated.
func (g Goal) WithProgress() Goal {
	g.Progress = g.ComputeProgress()
	return g
}

// GoalInput is the body used to create a goal.
type GoalInput struct {
	GoalType     GoalType    `json:"goal_type"`
	TargetType   string      `json:"target_type"`
	TargetValue  float64     `json:"target_value"`
	CurrentValue *float64    `json:"current_value,omitempty"`
	StartDate    Date        `json:"start_date"`
	EndDate      Date        `json:"end_date"`
	Status       *GoalStatus `json:"status,omitempty"`
}

// GoalUpdate is a partial goal update.
type GoalUpdate struct {
	GoalType     *GoalType   `json:"goal_type,omitempty"`
	TargetType   *string     `json:"target_type,omitempty"`
	TargetValue  *float64    `json:"target_value,omitempty"`
	CurrentValue *float64    `json:"current_value,omitempty"`
	StartDate    *Date       `json:"start_date,omitempty"`
	EndDate      *Date       `json:"end_date,omitempty"`
	Status       *GoalStatus `json:"status,omitempty"`
}

// Apply copies the non-nil fields of u onto g.
func (u GoalUpdate) Apply(g *Goal) {
	if u.GoalType != nil {
		g.GoalType = *u.GoalType
	}
	if u.TargetType != nil {
		g.TargetType = *u.TargetType
	}
	if u.TargetValue != nil {
		g.TargetValue = *u.TargetValue
	}
	if u.CurrentValue != nil {
		g.CurrentValue = *u.CurrentValue
	}
	if u.StartDate != nil {
		g.StartDate = *u.StartDate
	}
	if u.EndDate != nil {
		g.EndDate = *u.EndDate
	}
	if u.Status != nil {
		g.Status = *u.Status
	}
}
