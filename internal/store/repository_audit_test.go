package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-nutri-keeper/internal/logger"
	"github.com/MKhiriev/go-nutri-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuditRepo(t *testing.T) (*auditRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &auditRepository{db: db.DB, logger: logger.Nop()}, mock
}

func TestAppendRecord_SerializesChanges(t *testing.T) {
	repo, mock := newTestAuditRepo(t)

	changes := models.ChangeSet{}
	changes.Record("role", models.RoleUser, models.RoleAdmin)
	record, err := models.NewAuditRecord(models.User{UserID: 1, Username: "root"}, models.AuditTargetUser, 5, "alice1", models.AuditRoleChange, changes)
	require.NoError(t, err)

	mock.ExpectQuery("INSERT INTO audit_logs").
		WithArgs(models.AuditTargetUser, int64(5), "alice1", int64(1), "root", models.AuditRoleChange, `{"role":{"old":"user","new":"admin"}}`).
		WillReturnRows(sqlmock.NewRows(auditColumns).
			AddRow(1, "user", 5, "alice1", 1, "root", "role_change", []byte(`{"role":{"old":"user","new":"admin"}}`), testNow))

	saved, err := repo.AppendRecord(context.Background(), record)
	require.NoError(t, err)
	assert.Equal(t, int64(1), saved.AuditID)
	assert.JSONEq(t, `{"role":{"old":"user","new":"admin"}}`, string(saved.Changes))
}

func TestListRecords_MostRecentFirst(t *testing.T) {
	repo, mock := newTestAuditRepo(t)

	targetID := int64(5)
	mock.ExpectQuery(`SELECT .* FROM audit_logs WHERE target_type = \$1 AND target_id = \$2 ORDER BY created_at DESC, audit_id DESC LIMIT 50`).
		WithArgs(models.AuditTargetUser, targetID).
		WillReturnRows(sqlmock.NewRows(auditColumns).
			AddRow(2, "user", 5, "alice1", 1, "root", "status_change", `{"account_status":{"old":"pending","new":"verified"}}`, testNow).
			AddRow(1, "user", 5, "alice1", 1, "root", "role_change", `{"role":{"old":"user","new":"admin"}}`, testNow))

	records, err := repo.ListRecords(context.Background(), models.AuditFilter{TargetType: models.AuditTargetUser, TargetID: &targetID, Limit: 50})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, models.AuditStatusChange, records[0].Action)
	assert.Contains(t, string(records[1].Changes), `"new":"admin"`)
}
