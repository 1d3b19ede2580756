package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-nutri-keeper/internal/logger"
	"github.com/MKhiriev/go-nutri-keeper/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGoalRepo(t *testing.T) (*goalRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &goalRepository{db: db.DB, logger: logger.Nop()}, mock
}

func goalRow(rows *sqlmock.Rows, id int64, targetType string, target, current float64) *sqlmock.Rows {
	return rows.AddRow(id, 1, "nutrition", targetType, target, current, testNow, testNow.AddDate(0, 1, 0), "active", testNow, testNow)
}

func TestListGoals_StatusFilter(t *testing.T) {
	repo, mock := newTestGoalRepo(t)

	status := models.GoalActive
	mock.ExpectQuery(`SELECT .* FROM goals WHERE user_id = \$1 AND status = \$2 ORDER BY start_date, goal_id`).
		WithArgs(int64(1), status).
		WillReturnRows(goalRow(sqlmock.NewRows(goalColumns), 1, "daily_calories", 2000, 500))

	goals, err := repo.ListGoals(context.Background(), 1, &status)
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, "daily_calories", goals[0].TargetType)
	assert.Equal(t, models.NewDate(testNow), goals[0].StartDate)
}

func TestCreateGoal_CheckViolation(t *testing.T) {
	repo, mock := newTestGoalRepo(t)

	mock.ExpectQuery("INSERT INTO goals").WillReturnError(pgError(pgerrcode.CheckViolation))

	_, err := repo.CreateGoal(context.Background(), models.Goal{UserID: 1})
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestUpdateGoal_Returning(t *testing.T) {
	repo, mock := newTestGoalRepo(t)

	mock.ExpectQuery(`UPDATE goals SET .* WHERE goal_id = \$8 AND user_id = \$9 RETURNING`).
		WillReturnRows(goalRow(sqlmock.NewRows(goalColumns), 4, "protein_grams", 100, 100))

	updated, err := repo.UpdateGoal(context.Background(), models.Goal{GoalID: 4, UserID: 1, TargetValue: 100, CurrentValue: 100})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, updated.WithProgress().Progress, 1e-9)
}
