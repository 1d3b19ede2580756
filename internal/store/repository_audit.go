package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-nutri-keeper/internal/logger"
	"github.com/MKhiriev/go-nutri-keeper/models"
)

// auditRepository is the PostgreSQL-backed implementation of
// [AuditRepository]. It only ever inserts and selects.
type auditRepository struct {
	logger *logger.Logger
	db     querier
}

// auditRow mirrors audit_logs; changes is scanned as raw bytes because the
// driver may hand jsonb back as either text or bytes.
type auditRow struct {
	AuditID    int64              `db:"audit_id"`
	TargetType models.AuditTarget `db:"target_type"`
	TargetID   int64              `db:"target_id"`
	TargetName string             `db:"target_name"`
	ActorID    int64              `db:"actor_id"`
	ActorName  string             `db:"actor_name"`
	Action     models.AuditAction `db:"action"`
	Changes    []byte             `db:"changes"`
	CreatedAt  time.Time          `db:"created_at"`
}

func (a auditRow) toModel() models.AuditRecord {
	return models.AuditRecord{
		AuditID:    a.AuditID,
		TargetType: a.TargetType,
		TargetID:   a.TargetID,
		TargetName: a.TargetName,
		ActorID:    a.ActorID,
		ActorName:  a.ActorName,
		Action:     a.Action,
		Changes:    json.RawMessage(a.Changes),
		CreatedAt:  a.CreatedAt,
	}
}

// AppendRecord inserts record. When called through a [UnitOfWork] it commits
// or rolls back together with the change it describes.
func (r *auditRepository) AppendRecord(ctx context.Context, record models.AuditRecord) (models.AuditRecord, error) {
	log := logger.FromContext(ctx)

	changes := string(record.Changes)
	if changes == "" {
		changes = "{}"
	}

	query, args, err := psql.Insert("audit_logs").
		Columns("target_type", "target_id", "target_name", "actor_id", "actor_name", "action", "changes").
		Values(record.TargetType, record.TargetID, record.TargetName, record.ActorID, record.ActorName, record.Action, changes).
		Suffix(returning(auditColumns)).
		ToSql()
	if err != nil {
		return models.AuditRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var row auditRow
	if err = r.db.GetContext(ctx, &row, query, args...); err != nil {
		log.Err(err).
			Str("func", "*auditRepository.AppendRecord").
			Str("target_type", string(record.TargetType)).
			Int64("target_id", record.TargetID).
			Msg("error inserting audit record")
		return models.AuditRecord{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return row.toModel(), nil
}

// ListRecords returns records of filter.TargetType, most recent first.
func (r *auditRepository) ListRecords(ctx context.Context, filter models.AuditFilter) ([]models.AuditRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListAuditQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var rows []auditRow
	if err = r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		log.Err(err).Str("func", "*auditRepository.ListRecords").Msg("error listing audit records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	records := make([]models.AuditRecord, len(rows))
	for i, row := range rows {
		records[i] = row.toModel()
	}

	return records, nil
}
