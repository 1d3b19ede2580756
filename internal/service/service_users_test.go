package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/MKhiriev/go-nutri-keeper/internal/logger"
	"github.com/MKhiriev/go-nutri-keeper/internal/store"
	"github.com/MKhiriev/go-nutri-keeper/internal/validators"
	"github.com/MKhiriev/go-nutri-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testAdmin = models.User{UserID: 1, Username: "root", Role: models.RoleAdmin, AccountStatus: models.AccountVerified}

func targetUser() models.User {
	return models.User{
		UserID:        42,
		Username:      "bob42",
		Email:         "bob@example.com",
		Role:          models.RoleUser,
		AccountStatus: models.AccountPending,
		Timezone:      "UTC",
	}
}

func TestUserService_UpdateUser_OneAuditPerGroup(t *testing.T) {
	m, _ := newStoreMocks(t)
	svc := NewUserService(m.storages, logger.Nop())
	ctx := context.Background()

	upd := models.UserAdminUpdate{
		Role:          ptr(models.RoleAdmin),
		AccountStatus: ptr(models.AccountVerified),
		Username:      ptr("bobby42"),
		Timezone:      ptr("UTC"),
	}

	m.inTx()
	m.users.EXPECT().FindUserByID(gomock.Any(), int64(42)).Return(targetUser(), nil)
	m.users.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, models.RoleAdmin, u.Role)
			assert.Equal(t, models.AccountVerified, u.AccountStatus)
			assert.Equal(t, "bobby42", u.Username)
			return u, nil
		},
	)

	var recorded []models.AuditRecord
	m.audit.EXPECT().AppendRecord(gomock.Any(), gomock.Any()).Times(3).DoAndReturn(
		func(_ context.Context, r models.AuditRecord) (models.AuditRecord, error) {
			recorded = append(recorded, r)
			return r, nil
		},
	)

	user, err := svc.UpdateUser(ctx, testAdmin, 42, upd)
	require.NoError(t, err)
	assert.Equal(t, "bobby42", user.Username)

	require.Len(t, recorded, 3)
	assert.Equal(t, models.AuditRoleChange, recorded[0].Action)
	assert.Equal(t, models.AuditStatusChange, recorded[1].Action)
	assert.Equal(t, models.AuditProfileUpdate, recorded[2].Action)

	for _, r := range recorded {
		assert.Equal(t, models.AuditTargetUser, r.TargetType)
		assert.Equal(t, int64(42), r.TargetID)
		assert.Equal(t, "bobby42", r.TargetName)
		assert.Equal(t, int64(1), r.ActorID)
		assert.Equal(t, "root", r.ActorName)
	}

	// The unchanged timezone is left out of the profile record.
	var changes map[string]models.FieldChange
	require.NoError(t, json.Unmarshal(recorded[2].Changes, &changes))
	assert.Equal(t, map[string]models.FieldChange{"username": {Old: "bob42", New: "bobby42"}}, changes)
}

func TestUserService_UpdateUser_NoChangesWritesNothing(t *testing.T) {
	m, _ := newStoreMocks(t)
	svc := NewUserService(m.storages, logger.Nop())

	m.inTx()
	m.users.EXPECT().FindUserByID(gomock.Any(), int64(42)).Return(targetUser(), nil)

	user, err := svc.UpdateUser(context.Background(), testAdmin, 42, models.UserAdminUpdate{
		Role:     ptr(models.RoleUser),
		Username: ptr("bob42"),
	})

	require.NoError(t, err)
	assert.Equal(t, "bob42", user.Username)
}

func TestUserService_UpdateUser_SelfLockout(t *testing.T) {
	tests := []struct {
		name    string
		upd     models.UserAdminUpdate
		wantLoc string
	}{
		{name: "self demotion", upd: models.UserAdminUpdate{Role: ptr(models.RoleUser)}, wantLoc: "role"},
		{name: "self suspension", upd: models.UserAdminUpdate{AccountStatus: ptr(models.AccountSuspended)}, wantLoc: "account_status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newStoreMocks(t)
			svc := NewUserService(m.storages, logger.Nop())

			_, err := svc.UpdateUser(context.Background(), testAdmin, testAdmin.UserID, tt.upd)

			errs, ok := validators.AsErrors(err)
			require.True(t, ok)
			assert.Equal(t, []string{"body", tt.wantLoc}, errs[0].Loc)
		})
	}
}

func TestUserService_UpdateUser_EmailCollision(t *testing.T) {
	m, _ := newStoreMocks(t)
	svc := NewUserService(m.storages, logger.Nop())

	m.inTx()
	m.users.EXPECT().FindUserByID(gomock.Any(), int64(42)).Return(targetUser(), nil)
	m.users.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailTaken)

	_, err := svc.UpdateUser(context.Background(), testAdmin, 42, models.UserAdminUpdate{Email: ptr("taken@example.com")})

	errs, ok := validators.AsErrors(err)
	require.True(t, ok)
	assert.Equal(t, []string{"body", "email"}, errs[0].Loc)
}

func TestUserService_UpdateUser_Missing(t *testing.T) {
	m, _ := newStoreMocks(t)
	svc := NewUserService(m.storages, logger.Nop())

	m.inTx()
	m.users.EXPECT().FindUserByID(gomock.Any(), int64(404)).Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.UpdateUser(context.Background(), testAdmin, 404, models.UserAdminUpdate{Role: ptr(models.RoleAdmin)})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserService_ListUsers_NormalizesPaging(t *testing.T) {
	m, _ := newStoreMocks(t)
	svc := NewUserService(m.storages, logger.Nop())

	m.users.EXPECT().ListUsers(gomock.Any(), models.UserFilter{Limit: 100, Offset: 0}).Return(models.UserPage{Total: 3}, nil)

	page, err := svc.ListUsers(context.Background(), models.UserFilter{Limit: 1000, Offset: -5})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Total)
}

func TestUserService_ListUserAudit(t *testing.T) {
	m, _ := newStoreMocks(t)
	svc := NewUserService(m.storages, logger.Nop())

	userID := int64(42)
	m.audit.EXPECT().ListRecords(gomock.Any(), models.AuditFilter{
		TargetType: models.AuditTargetUser,
		TargetID:   &userID,
		Limit:      50,
	}).Return([]models.AuditRecord{{AuditID: 9}}, nil)

	records, err := svc.ListUserAudit(context.Background(), 42, 0, 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
}
