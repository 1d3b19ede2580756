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

// Wellness tables. Each has UNIQUE (user_id, log_date).
const (
	moodLogsTable   = "mood_logs"
	stressLogsTable = "stress_logs"
	sleepLogsTable  = "sleep_logs"
)

// wellnessRepository is the PostgreSQL-backed implementation of
// [WellnessRepository]. Free-text columns hold ciphertext; this layer never
// sees plaintext.
type wellnessRepository struct {
	logger *logger.Logger
	db     querier
}

// ─── mood ────────────────────────────────────────────────────────────────────

func (r *wellnessRepository) CreateMoodLog(ctx context.Context, log models.MoodLog) (models.MoodLog, error) {
	return insertLog[models.MoodLog](ctx, r.db, "*wellnessRepository.CreateMoodLog", psql.Insert(moodLogsTable).
		Columns("user_id", "occurred_at", "log_date", "mood_score", "energy_level", "notes").
		Values(log.UserID, log.OccurredAt, log.LogDate, log.MoodScore, log.EnergyLevel, log.Notes).
		Suffix(returning(moodLogColumns)))
}

func (r *wellnessRepository) GetMoodLog(ctx context.Context, userID, logID int64) (models.MoodLog, error) {
	return getLog[models.MoodLog](ctx, r.db, "*wellnessRepository.GetMoodLog", moodLogsTable, moodLogColumns, userID, logID)
}

func (r *wellnessRepository) ListMoodLogs(ctx context.Context, userID int64, filter models.WellnessFilter) ([]models.MoodLog, error) {
	return listLogs[models.MoodLog](ctx, r.db, "*wellnessRepository.ListMoodLogs",
		buildListWellnessQuery(moodLogsTable, moodLogColumns, userID, filter))
}

func (r *wellnessRepository) UpdateMoodLog(ctx context.Context, log models.MoodLog) (models.MoodLog, error) {
	return updateLog[models.MoodLog](ctx, r.db, "*wellnessRepository.UpdateMoodLog", psql.Update(moodLogsTable).
		Set("occurred_at", log.OccurredAt).
		Set("log_date", log.LogDate).
		Set("mood_score", log.MoodScore).
		Set("energy_level", log.EnergyLevel).
		Set("notes", log.Notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"log_id": log.LogID, "user_id": log.UserID}).
		Suffix(returning(moodLogColumns)))
}

func (r *wellnessRepository) DeleteMoodLog(ctx context.Context, userID, logID int64) error {
	return deleteLog(ctx, r.db, "*wellnessRepository.DeleteMoodLog", moodLogsTable, userID, logID)
}

// ─── stress ──────────────────────────────────────────────────────────────────

func (r *wellnessRepository) CreateStressLog(ctx context.Context, log models.StressLog) (models.StressLog, error) {
	return insertLog[models.StressLog](ctx, r.db, "*wellnessRepository.CreateStressLog", psql.Insert(stressLogsTable).
		Columns("user_id", "occurred_at", "log_date", "stress_level", "triggers", "notes").
		Values(log.UserID, log.OccurredAt, log.LogDate, log.StressLevel, log.Triggers, log.Notes).
		Suffix(returning(stressLogColumns)))
}

func (r *wellnessRepository) GetStressLog(ctx context.Context, userID, logID int64) (models.StressLog, error) {
	return getLog[models.StressLog](ctx, r.db, "*wellnessRepository.GetStressLog", stressLogsTable, stressLogColumns, userID, logID)
}

func (r *wellnessRepository) ListStressLogs(ctx context.Context, userID int64, filter models.WellnessFilter) ([]models.StressLog, error) {
	return listLogs[models.StressLog](ctx, r.db, "*wellnessRepository.ListStressLogs",
		buildListWellnessQuery(stressLogsTable, stressLogColumns, userID, filter))
}

func (r *wellnessRepository) UpdateStressLog(ctx context.Context, log models.StressLog) (models.StressLog, error) {
	return updateLog[models.StressLog](ctx, r.db, "*wellnessRepository.UpdateStressLog", psql.Update(stressLogsTable).
		Set("occurred_at", log.OccurredAt).
		Set("log_date", log.LogDate).
		Set("stress_level", log.StressLevel).
		Set("triggers", log.Triggers).
		Set("notes", log.Notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"log_id": log.LogID, "user_id": log.UserID}).
		Suffix(returning(stressLogColumns)))
}

func (r *wellnessRepository) DeleteStressLog(ctx context.Context, userID, logID int64) error {
	return deleteLog(ctx, r.db, "*wellnessRepository.DeleteStressLog", stressLogsTable, userID, logID)
}

// ─── sleep ───────────────────────────────────────────────────────────────────

func (r *wellnessRepository) CreateSleepLog(ctx context.Context, log models.SleepLog) (models.SleepLog, error) {
	return insertLog[models.SleepLog](ctx, r.db, "*wellnessRepository.CreateSleepLog", psql.Insert(sleepLogsTable).
		Columns("user_id", "occurred_at", "log_date", "sleep_quality", "duration_hours", "notes").
		Values(log.UserID, log.OccurredAt, log.LogDate, log.SleepQuality, log.DurationHours, log.Notes).
		Suffix(returning(sleepLogColumns)))
}

func (r *wellnessRepository) GetSleepLog(ctx context.Context, userID, logID int64) (models.SleepLog, error) {
	return getLog[models.SleepLog](ctx, r.db, "*wellnessRepository.GetSleepLog", sleepLogsTable, sleepLogColumns, userID, logID)
}

func (r *wellnessRepository) ListSleepLogs(ctx context.Context, userID int64, filter models.WellnessFilter) ([]models.SleepLog, error) {
	return listLogs[models.SleepLog](ctx, r.db, "*wellnessRepository.ListSleepLogs",
		buildListWellnessQuery(sleepLogsTable, sleepLogColumns, userID, filter))
}

func (r *wellnessRepository) UpdateSleepLog(ctx context.Context, log models.SleepLog) (models.SleepLog, error) {
	return updateLog[models.SleepLog](ctx, r.db, "*wellnessRepository.UpdateSleepLog", psql.Update(sleepLogsTable).
		Set("occurred_at", log.OccurredAt).
		Set("log_date", log.LogDate).
		Set("sleep_quality", log.SleepQuality).
		Set("duration_hours", log.DurationHours).
		Set("notes", log.Notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"log_id": log.LogID, "user_id": log.UserID}).
		Suffix(returning(sleepLogColumns)))
}

func (r *wellnessRepository) DeleteSleepLog(ctx context.Context, userID, logID int64) error {
	return deleteLog(ctx, r.db, "*wellnessRepository.DeleteSleepLog", sleepLogsTable, userID, logID)
}

// MoodStressAverages implements [WellnessRepository].
func (r *wellnessRepository) MoodStressAverages(ctx context.Context, userID int64, since models.Date) (models.WellnessAverages, error) {
	log := logger.FromContext(ctx)

	var averages models.WellnessAverages
	if err := r.db.GetContext(ctx, &averages, moodStressAverages, userID, since); err != nil {
		log.Err(err).Str("func", "*wellnessRepository.MoodStressAverages").Int64("user_id", userID).Msg("error aggregating wellness logs")
		return models.WellnessAverages{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return averages, nil
}

// ─── shared statements ───────────────────────────────────────────────────────

func insertLog[T any](ctx context.Context, db querier, funcName string, builder squirrel.InsertBuilder) (T, error) {
	log := logger.FromContext(ctx)

	var zero, created T
	query, args, err := builder.ToSql()
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = db.GetContext(ctx, &created, query, args...); err != nil {
		log.Err(err).Str("func", funcName).Msg("error inserting wellness log")
		return zero, constraintError(err)
	}

	return created, nil
}

func getLog[T any](ctx context.Context, db querier, funcName, table string, columns []string, userID, logID int64) (T, error) {
	log := logger.FromContext(ctx)

	var zero, found T
	query, args, err := psql.Select(columns...).
		From(table).
		Where(squirrel.Eq{"log_id": logID, "user_id": userID}).
		ToSql()
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = db.GetContext(ctx, &found, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, ErrNotFound
		}
		log.Err(err).Str("func", funcName).Msg("error selecting wellness log")
		return zero, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

func listLogs[T any](ctx context.Context, db querier, funcName string, builder squirrel.SelectBuilder) ([]T, error) {
	log := logger.FromContext(ctx)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	logs := make([]T, 0)
	if err = db.SelectContext(ctx, &logs, query, args...); err != nil {
		log.Err(err).Str("func", funcName).Msg("error listing wellness logs")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return logs, nil
}

func updateLog[T any](ctx context.Context, db querier, funcName string, builder squirrel.UpdateBuilder) (T, error) {
	log := logger.FromContext(ctx)

	var zero, updated T
	query, args, err := builder.ToSql()
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = db.GetContext(ctx, &updated, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, ErrNotFound
		}
		log.Err(err).Str("func", funcName).Msg("error updating wellness log")
		return zero, constraintError(err)
	}

	return updated, nil
}

func deleteLog(ctx context.Context, db querier, funcName, table string, userID, logID int64) error {
	query, args, err := psql.Delete(table).Where(squirrel.Eq{"log_id": logID, "user_id": userID}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return execAffectingOne(ctx, db, funcName, query, args)
}
