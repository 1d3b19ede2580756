package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-nutri-keeper/internal/logger"
	"github.com/MKhiriev/go-nutri-keeper/models"
	"github.com/Masterminds/squirrel"
)

// mealRepository is the PostgreSQL-backed implementation of [MealRepository].
// Meal totals are computed by the caller and stored as given.
type mealRepository struct {
	logger *logger.Logger
	db     querier
}

// CreateMeal inserts the meal row followed by its food items. Callers run it
// inside a [UnitOfWork] so a failing item rolls the meal back.
func (r *mealRepository) CreateMeal(ctx context.Context, meal models.Meal) (models.Meal, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Insert("meals").
		Columns("user_id", "meal_type", "meal_time", "notes", "total_calories", "total_protein", "total_carbs", "total_fat").
		Values(meal.UserID, meal.MealType, meal.MealTime, meal.Notes, meal.TotalCalories, meal.TotalProtein,
			meal.TotalCarbs, meal.TotalFat).
		Suffix(returning(mealColumns)).
		ToSql()
	if err != nil {
		return models.Meal{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Meal
	if err = r.db.GetContext(ctx, &created, query, args...); err != nil {
		log.Err(err).Str("func", "*mealRepository.CreateMeal").Int64("user_id", meal.UserID).Msg("error inserting meal")
		return models.Meal{}, constraintError(err)
	}

	created.FoodItems, err = r.insertFoodItems(ctx, created.MealID, meal.FoodItems)
	if err != nil {
		return models.Meal{}, err
	}

	return created, nil
}

// GetMeal returns one meal of userID with its items, or [ErrNotFound].
func (r *mealRepository) GetMeal(ctx context.Context, userID, mealID int64) (models.Meal, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(mealColumns...).
		From("meals").
		Where(squirrel.Eq{"meal_id": mealID, "user_id": userID}).
		ToSql()
	if err != nil {
		return models.Meal{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var meal models.Meal
	if err = r.db.GetContext(ctx, &meal, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Meal{}, ErrNotFound
		}
		log.Err(err).Str("func", "*mealRepository.GetMeal").Int64("meal_id", mealID).Msg("error selecting meal")
		return models.Meal{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	items, err := r.selectFoodItems(ctx, []int64{meal.MealID})
	if err != nil {
		return models.Meal{}, err
	}
	meal.FoodItems = items[meal.MealID]
	if meal.FoodItems == nil {
		meal.FoodItems = make([]models.FoodItem, 0)
	}

	return meal, nil
}

// ListMeals returns the meals of userID matching filter, newest first, each
// with its items.
func (r *mealRepository) ListMeals(ctx context.Context, userID int64, filter models.MealFilter) ([]models.Meal, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListMealsQuery(userID, filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	meals := make([]models.Meal, 0)
	if err = r.db.SelectContext(ctx, &meals, query, args...); err != nil {
		log.Err(err).Str("func", "*mealRepository.ListMeals").Int64("user_id", userID).Msg("error listing meals")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if len(meals) == 0 {
		return meals, nil
	}

	ids := make([]int64, len(meals))
	for i, m := range meals {
		ids[i] = m.MealID
	}
	items, err := r.selectFoodItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range meals {
		meals[i].FoodItems = items[meals[i].MealID]
		if meals[i].FoodItems == nil {
			meals[i].FoodItems = make([]models.FoodItem, 0)
		}
	}

	return meals, nil
}

// UpdateMeal writes the meal row (type, time, notes, totals). Items are
// replaced separately with [mealRepository.ReplaceFoodItems].
func (r *mealRepository) UpdateMeal(ctx context.Context, meal models.Meal) (models.Meal, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Update("meals").
		Set("meal_type", meal.MealType).
		Set("meal_time", meal.MealTime).
		Set("notes", meal.Notes).
		Set("total_calories", meal.TotalCalories).
		Set("total_protein", meal.TotalProtein).
		Set("total_carbs", meal.TotalCarbs).
		Set("total_fat", meal.TotalFat).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"meal_id": meal.MealID, "user_id": meal.UserID}).
		Suffix(returning(mealColumns)).
		ToSql()
	if err != nil {
		return models.Meal{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Meal
	if err = r.db.GetContext(ctx, &updated, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Meal{}, ErrNotFound
		}
		log.Err(err).Str("func", "*mealRepository.UpdateMeal").Int64("meal_id", meal.MealID).Msg("error updating meal")
		return models.Meal{}, constraintError(err)
	}
	updated.FoodItems = meal.FoodItems

	return updated, nil
}

// ReplaceFoodItems deletes every item of mealID and inserts items.
func (r *mealRepository) ReplaceFoodItems(ctx context.Context, mealID int64, items []models.FoodItem) ([]models.FoodItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Delete("food_items").Where(squirrel.Eq{"meal_id": mealID}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*mealRepository.ReplaceFoodItems").Int64("meal_id", mealID).Msg("error deleting food items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return r.insertFoodItems(ctx, mealID, items)
}

// DeleteMeal removes a meal of userID; items cascade.
func (r *mealRepository) DeleteMeal(ctx context.Context, userID, mealID int64) error {
	query, args, err := psql.Delete("meals").Where(squirrel.Eq{"meal_id": mealID, "user_id": userID}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return execAffectingOne(ctx, r.db, "*mealRepository.DeleteMeal", query, args)
}

func (r *mealRepository) insertFoodItems(ctx context.Context, mealID int64, items []models.FoodItem) ([]models.FoodItem, error) {
	log := logger.FromContext(ctx)

	saved := make([]models.FoodItem, 0, len(items))
	if len(items) == 0 {
		return saved, nil
	}

	builder := psql.Insert("food_items").
		Columns("meal_id", "name", "portion_size", "portion_unit", "calories", "protein", "carbs", "fat")
	for _, item := range items {
		builder = builder.Values(mealID, item.Name, item.PortionSize, item.PortionUnit, item.Calories, item.Protein,
			item.Carbs, item.Fat)
	}

	query, args, err := builder.Suffix(returning(foodItemColumns)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.SelectContext(ctx, &saved, query, args...); err != nil {
		log.Err(err).Str("func", "*mealRepository.insertFoodItems").Int64("meal_id", mealID).Msg("error inserting food items")
		return nil, constraintError(err)
	}

	return saved, nil
}

// selectFoodItems loads items for mealIDs grouped by meal id.
func (r *mealRepository) selectFoodItems(ctx context.Context, mealIDs []int64) (map[int64][]models.FoodItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(foodItemColumns...).
		From("food_items").
		Where(squirrel.Eq{"meal_id": mealIDs}).
		OrderBy("meal_id", "food_item_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var items []models.FoodItem
	if err = r.db.SelectContext(ctx, &items, query, args...); err != nil {
		log.Err(err).Str("func", "*mealRepository.selectFoodItems").Msg("error selecting food items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	grouped := make(map[int64][]models.FoodItem, len(mealIDs))
	for _, item := range items {
		grouped[item.MealID] = append(grouped[item.MealID], item)
	}

	return grouped, nil
}
