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

type goalRepository struct {
	logger *logger.Logger
	db     querier
}

func (r *goalRepository) CreateGoal(ctx context.Context, goal models.Goal) (models.Goal, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Insert("goals").
		Columns("user_id", "goal_type", "target_type", "target_value", "current_value", "start_date", "end_date", "status").
		Values(goal.UserID, goal.GoalType, goal.TargetType, goal.TargetValue, goal.CurrentValue, goal.StartDate,
			goal.EndDate, goal.Status).
		Suffix(returning(goalColumns)).
		ToSql()
	if err != nil {
		return models.Goal{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Goal
	if err = r.db.GetContext(ctx, &created, query, args...); err != nil {
		log.Err(err).Str("func", "*goalRepository.CreateGoal").Int64("user_id", goal.UserID).Msg("error inserting goal")
		return models.Goal{}, constraintError(err)
	}

	return created, nil
}

func (r *goalRepository) GetGoal(ctx context.Context, userID, goalID int64) (models.Goal, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(goalColumns...).
		From("goals").
		Where(squirrel.Eq{"goal_id": goalID, "user_id": userID}).
		ToSql()
	if err != nil {
		return models.Goal{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var goal models.Goal
	if err = r.db.GetContext(ctx, &goal, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Goal{}, ErrNotFound
		}
		log.Err(err).Str("func", "*goalRepository.GetGoal").Int64("goal_id", goalID).Msg("error selecting goal")
		return models.Goal{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return goal, nil
}

// ListGoals returns the goals of userID, optionally narrowed to one status,
// ordered by start date.
func (r *goalRepository) ListGoals(ctx context.Context, userID int64, status *models.GoalStatus) ([]models.Goal, error) {
	log := logger.FromContext(ctx)

	builder := psql.Select(goalColumns...).From("goals").Where(squirrel.Eq{"user_id": userID})
	if status != nil {
		builder = builder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := builder.OrderBy("start_date", "goal_id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	goals := make([]models.Goal, 0)
	if err = r.db.SelectContext(ctx, &goals, query, args...); err != nil {
		log.Err(err).Str("func", "*goalRepository.ListGoals").Int64("user_id", userID).Msg("error listing goals")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return goals, nil
}

func (r *goalRepository) UpdateGoal(ctx context.Context, goal models.Goal) (models.Goal, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Update("goals").
		Set("goal_type", goal.GoalType).
		Set("target_type", goal.TargetType).
		Set("target_value", goal.TargetValue).
		Set("current_value", goal.CurrentValue).
		Set("start_date", goal.StartDate).
		Set("end_date", goal.EndDate).
		Set("status", goal.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"goal_id": goal.GoalID, "user_id": goal.UserID}).
		Suffix(returning(goalColumns)).
		ToSql()
	if err != nil {
		return models.Goal{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Goal
	if err = r.db.GetContext(ctx, &updated, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Goal{}, ErrNotFound
		}
		log.Err(err).Str("func", "*goalRepository.UpdateGoal").Int64("goal_id", goal.GoalID).Msg("error updating goal")
		return models.Goal{}, constraintError(err)
	}

	return updated, nil
}

func (r *goalRepository) DeleteGoal(ctx context.Context, userID, goalID int64) error {
	query, args, err := psql.Delete("goals").Where(squirrel.Eq{"goal_id": goalID, "user_id": userID}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return execAffectingOne(ctx, r.db, "*goalRepository.DeleteGoal", query, args)
}
