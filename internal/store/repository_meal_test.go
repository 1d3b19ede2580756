package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-nutri-keeper/internal/logger"
	"github.com/MKhiriev/go-nutri-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMealRepo(t *testing.T) (*mealRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &mealRepository{db: db.DB, logger: logger.Nop()}, mock
}

func ptr[T any](v T) *T { return &v }

func TestCreateMeal_InsertsItemsInOneStatement(t *testing.T) {
	repo, mock := newTestMealRepo(t)

	meal := models.Meal{
		UserID:   1,
		MealType: models.MealLunch,
		MealTime: testNow,
		FoodItems: []models.FoodItem{
			{Name: "rice", PortionSize: 150, PortionUnit: "g", Calories: ptr(200.0)},
			{Name: "tofu", PortionSize: 100, PortionUnit: "g", Calories: ptr(150.0), Protein: ptr(15.0)},
		},
	}
	meal.RecomputeTotals()

	mock.ExpectQuery("INSERT INTO meals").
		WithArgs(int64(1), models.MealLunch, testNow, nil, 350.0, 15.0, 0.0, 0.0).
		WillReturnRows(sqlmock.NewRows(mealColumns).
			AddRow(11, 1, "lunch", testNow, nil, 350.0, 15.0, 0.0, 0.0, testNow, testNow))
	mock.ExpectQuery(`INSERT INTO food_items \(meal_id,name,portion_size,portion_unit,calories,protein,carbs,fat\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6,\$7,\$8\),\(\$9,`).
		WillReturnRows(sqlmock.NewRows(foodItemColumns).
			AddRow(1, 11, "rice", 150.0, "g", 200.0, nil, nil, nil).
			AddRow(2, 11, "tofu", 100.0, "g", 150.0, 15.0, nil, nil))

	created, err := repo.CreateMeal(context.Background(), meal)
	require.NoError(t, err)
	assert.Equal(t, int64(11), created.MealID)
	assert.InDelta(t, 350.0, created.TotalCalories, 1e-9)
	require.Len(t, created.FoodItems, 2)
	assert.Equal(t, "tofu", created.FoodItems[1].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateMeal_NoItemsSkipsItemInsert(t *testing.T) {
	repo, mock := newTestMealRepo(t)

	mock.ExpectQuery("INSERT INTO meals").
		WillReturnRows(sqlmock.NewRows(mealColumns).
			AddRow(11, 1, "snack", testNow, nil, 0.0, 0.0, 0.0, 0.0, testNow, testNow))

	created, err := repo.CreateMeal(context.Background(), models.Meal{UserID: 1, MealType: models.MealSnack, MealTime: testNow})
	require.NoError(t, err)
	assert.NotNil(t, created.FoodItems)
	assert.Empty(t, created.FoodItems)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetMeal_NotOwned(t *testing.T) {
	repo, mock := newTestMealRepo(t)

	mock.ExpectQuery(`SELECT .* FROM meals WHERE meal_id = \$1 AND user_id = \$2`).
		WithArgs(int64(11), int64(2)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetMeal(context.Background(), 2, 11)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListMeals_AttachesItems(t *testing.T) {
	repo, mock := newTestMealRepo(t)

	mealType := models.MealDinner
	mock.ExpectQuery(`SELECT .* FROM meals WHERE user_id = \$1 AND meal_type = \$2 ORDER BY meal_time DESC, meal_id DESC`).
		WithArgs(int64(1), mealType).
		WillReturnRows(sqlmock.NewRows(mealColumns).
			AddRow(12, 1, "dinner", testNow, nil, 100.0, 0.0, 0.0, 0.0, testNow, testNow).
			AddRow(11, 1, "dinner", testNow.AddDate(0, 0, -1), nil, 0.0, 0.0, 0.0, 0.0, testNow, testNow))
	mock.ExpectQuery(`SELECT .* FROM food_items WHERE meal_id IN \(\$1,\$2\) ORDER BY meal_id, food_item_id`).
		WithArgs(int64(12), int64(11)).
		WillReturnRows(sqlmock.NewRows(foodItemColumns).
			AddRow(1, 12, "soup", 300.0, "ml", 100.0, nil, nil, nil))

	meals, err := repo.ListMeals(context.Background(), 1, models.MealFilter{MealType: &mealType})
	require.NoError(t, err)
	require.Len(t, meals, 2)
	assert.Len(t, meals[0].FoodItems, 1)
	assert.NotNil(t, meals[1].FoodItems)
	assert.Empty(t, meals[1].FoodItems)
}

func TestReplaceFoodItems_DeletesThenInserts(t *testing.T) {
	repo, mock := newTestMealRepo(t)

	mock.ExpectExec(`DELETE FROM food_items WHERE meal_id = \$1`).
		WithArgs(int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectQuery("INSERT INTO food_items").
		WillReturnRows(sqlmock.NewRows(foodItemColumns).AddRow(3, 11, "apple", 1.0, "piece", 95.0, nil, nil, nil))

	items, err := repo.ReplaceFoodItems(context.Background(), 11, []models.FoodItem{{Name: "apple", PortionSize: 1, PortionUnit: "piece", Calories: ptr(95.0)}})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(3), items[0].FoodItemID)
}

func TestDeleteMeal_Missing(t *testing.T) {
	repo, mock := newTestMealRepo(t)

	mock.ExpectExec("DELETE FROM meals").WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.DeleteMeal(context.Background(), 1, 11), ErrNotFound)
}
