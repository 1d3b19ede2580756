package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-nutri-keeper/internal/logger"
	"github.com/MKhiriev/go-nutri-keeper/internal/store"
	"github.com/MKhiriev/go-nutri-keeper/internal/validators"
	"github.com/MKhiriev/go-nutri-keeper/models"
)

type mealService struct {
	uow   store.UnitOfWork
	meals store.MealRepository

	validator validators.Validator
	logger    *logger.Logger

	now func() time.Time
}

func NewMealService(storages *store.Storages, logger *logger.Logger) MealService {
	return &mealService{
		uow:       storages.UnitOfWork,
		meals:     storages.MealRepository,
		validator: validators.NewMealValidator(),
		logger:    logger,
		now:       time.Now,
	}
}

// CreateMeal stores a meal with its items. Totals are derived from the items;
// a missing meal time defaults to now.
func (s *mealService) CreateMeal(ctx context.Context, userID int64, in models.MealInput) (models.Meal, error) {
	if err := s.validator.Validate(ctx, in); err != nil {
		return models.Meal{}, err
	}

	meal := models.Meal{
		UserID:    userID,
		MealType:  in.MealType,
		MealTime:  s.now().UTC(),
		Notes:     in.Notes,
		FoodItems: foodItems(in.FoodItems),
	}
	if in.MealTime != nil {
		meal.MealTime = in.MealTime.UTC()
	}
	meal.RecomputeTotals()

	var created models.Meal
	err := s.uow.Do(ctx, func(ctx context.Context, repos *store.Repositories) error {
		var err error
		created, err = repos.MealRepository.CreateMeal(ctx, meal)
		return fromStore(err, "meal")
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mealService.CreateMeal").Int64("user_id", userID).Msg("creating meal failed")
		return models.Meal{}, err
	}
	return created, nil
}

func (s *mealService) ListMeals(ctx context.Context, userID int64, filter models.MealFilter) ([]models.Meal, error) {
	meals, err := s.meals.ListMeals(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("listing meals: %w", err)
	}
	return meals, nil
}

func (s *mealService) GetMeal(ctx context.Context, userID, mealID int64) (models.Meal, error) {
	meal, err := s.meals.GetMeal(ctx, userID, mealID)
	if err != nil {
		return models.Meal{}, fromStore(err, "meal")
	}
	return meal, nil
}

// UpdateMeal applies a partial update. A non-nil item list replaces every
// item; totals are recomputed after the item write either way.
func (s *mealService) UpdateMeal(ctx context.Context, userID, mealID int64, upd models.MealUpdate) (models.Meal, error) {
	if err := s.validator.Validate(ctx, upd); err != nil {
		return models.Meal{}, err
	}

	var updated models.Meal
	err := s.uow.Do(ctx, func(ctx context.Context, repos *store.Repositories) error {
		meal, err := repos.MealRepository.GetMeal(ctx, userID, mealID)
		if err != nil {
			return fromStore(err, "meal")
		}

		if upd.MealType != nil {
			meal.MealType = *upd.MealType
		}
		if upd.MealTime != nil {
			meal.MealTime = upd.MealTime.UTC()
		}
		if upd.Notes != nil {
			meal.Notes = upd.Notes
		}
		if upd.FoodItems != nil {
			meal.FoodItems, err = repos.MealRepository.ReplaceFoodItems(ctx, meal.MealID, foodItems(*upd.FoodItems))
			if err != nil {
				return fmt.Errorf("replacing food items: %w", err)
			}
		}
		meal.RecomputeTotals()

		updated, err = repos.MealRepository.UpdateMeal(ctx, meal)
		return fromStore(err, "meal")
	})
	if err != nil {
		return models.Meal{}, err
	}
	return updated, nil
}

func (s *mealService) DeleteMeal(ctx context.Context, userID, mealID int64) error {
	return fromStore(s.meals.DeleteMeal(ctx, userID, mealID), "meal")
}

func foodItems(in []models.FoodItemInput) []models.FoodItem {
	items := make([]models.FoodItem, 0, len(in))
	for _, item := range in {
		items = append(items, item.ToFoodItem())
	}
	return items
}

// ─────────────────────────────────────────────────────────────
// Goals
// ─────────────────────────────────────────────────────────────

type goalService struct {
	goals store.GoalRepository

	validator validators.Validator
	logger    *logger.Logger
}

func NewGoalService(storages *store.Storages, logger *logger.Logger) GoalService {
	return &goalService{
		goals:     storages.GoalRepository,
		validator: validators.NewMealValidator(),
		logger:    logger,
	}
}

func (s *goalService) CreateGoal(ctx context.Context, userID int64, in models.GoalInput) (models.Goal, error) {
	if err := s.validator.Validate(ctx, in); err != nil {
		return models.Goal{}, err
	}

	goal := models.Goal{
		UserID:      userID,
		GoalType:    in.GoalType,
		TargetType:  in.TargetType,
		TargetValue: in.TargetValue,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Status:      models.GoalActive,
	}
	if in.CurrentValue != nil {
		goal.CurrentValue = *in.CurrentValue
	}
	if in.Status != nil {
		goal.Status = *in.Status
	}

	created, err := s.goals.CreateGoal(ctx, goal)
	if err != nil {
		return models.Goal{}, fromStore(err, "goal")
	}
	return created.WithProgress(), nil
}

func (s *goalService) ListGoals(ctx context.Context, userID int64, status *models.GoalStatus) ([]models.Goal, error) {
	goals, err := s.goals.ListGoals(ctx, userID, status)
	if err != nil {
		return nil, fmt.Errorf("listing goals: %w", err)
	}
	for i := range goals {
		goals[i] = goals[i].WithProgress()
	}
	return goals, nil
}

func (s *goalService) GetGoal(ctx context.Context, userID, goalID int64) (models.Goal, error) {
	goal, err := s.goals.GetGoal(ctx, userID, goalID)
	if err != nil {
		return models.Goal{}, fromStore(err, "goal")
	}
	return goal.WithProgress(), nil
}

// UpdateGoal applies a partial update. Reaching the target does not change
// the status; completing a goal is an explicit update.
func (s *goalService) UpdateGoal(ctx context.Context, userID, goalID int64, upd models.GoalUpdate) (models.Goal, error) {
	if err := s.validator.Validate(ctx, upd); err != nil {
		return models.Goal{}, err
	}

	goal, err := s.goals.GetGoal(ctx, userID, goalID)
	if err != nil {
		return models.Goal{}, fromStore(err, "goal")
	}

	upd.Apply(&goal)
	if goal.EndDate.Before(goal.StartDate) {
		return models.Goal{}, validators.NewFieldError("end_date", "end_date must not be before start_date", validators.TypeDate)
	}

	updated, err := s.goals.UpdateGoal(ctx, goal)
	if err != nil {
		return models.Goal{}, fromStore(err, "goal")
	}
	return updated.WithProgress(), nil
}

func (s *goalService) DeleteGoal(ctx context.Context, userID, goalID int64) error {
	return fromStore(s.goals.DeleteGoal(ctx, userID, goalID), "goal")
}
