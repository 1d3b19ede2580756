package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-nutri-keeper/internal/logger"
	"github.com/MKhiriev/go-nutri-keeper/internal/store"
	"github.com/MKhiriev/go-nutri-keeper/internal/validators"
	"github.com/MKhiriev/go-nutri-keeper/models"
)

type userService struct {
	uow   store.UnitOfWork
	users store.UserRepository
	audit store.AuditRepository

	validator validators.Validator
	logger    *logger.Logger
}

func NewUserService(storages *store.Storages, logger *logger.Logger) UserService {
	return &userService{
		uow:       storages.UnitOfWork,
		users:     storages.UserRepository,
		audit:     storages.AuditRepository,
		validator: validators.NewUserValidator(),
		logger:    logger,
	}
}

func (s *userService) ListUsers(ctx context.Context, filter models.UserFilter) (models.UserPage, error) {
	filter.Limit, filter.Offset = normalizePage(filter.Limit, filter.Offset)

	page, err := s.users.ListUsers(ctx, filter)
	if err != nil {
		return models.UserPage{}, fmt.Errorf("listing users: %w", err)
	}
	return page, nil
}

func (s *userService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fromStore(err, "user")
	}
	return user, nil
}

// UpdateUser applies an administrator's partial update to userID.
//
// Each group of changed fields produces one audit record in the same
// transaction: role_change, status_change, email_verify and profile_update
// (username, email, timezone). Fields whose value does not change are not
// recorded, and an update that changes nothing writes nothing.
//
// An administrator cannot demote or suspend themselves.
func (s *userService) UpdateUser(ctx context.Context, actor models.User, userID int64, upd models.UserAdminUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, upd); err != nil {
		return models.User{}, err
	}
	if err := checkSelfLockout(actor, userID, upd); err != nil {
		return models.User{}, err
	}

	var result models.User
	err := s.uow.Do(ctx, func(ctx context.Context, repos *store.Repositories) error {
		user, err := repos.UserRepository.FindUserByID(ctx, userID)
		if err != nil {
			return fromStore(err, "user")
		}

		roleChanges := models.ChangeSet{}
		if upd.Role != nil && roleChanges.Record("role", user.Role, *upd.Role) {
			user.Role = *upd.Role
		}

		statusChanges := models.ChangeSet{}
		if upd.AccountStatus != nil && statusChanges.Record("account_status", user.AccountStatus, *upd.AccountStatus) {
			user.AccountStatus = *upd.AccountStatus
		}

		verifyChanges := models.ChangeSet{}
		if upd.EmailVerified != nil && verifyChanges.Record("email_verified", user.EmailVerified, *upd.EmailVerified) {
			user.EmailVerified = *upd.EmailVerified
		}

		profileChanges := models.ChangeSet{}
		if upd.Username != nil && profileChanges.Record("username", user.Username, *upd.Username) {
			user.Username = *upd.Username
		}
		if upd.Email != nil && profileChanges.Record("email", user.Email, *upd.Email) {
			user.Email = *upd.Email
		}
		if upd.Timezone != nil && profileChanges.Record("timezone", user.Timezone, *upd.Timezone) {
			user.Timezone = *upd.Timezone
		}

		groups := []struct {
			action  models.AuditAction
			changes models.ChangeSet
		}{
			{models.AuditRoleChange, roleChanges},
			{models.AuditStatusChange, statusChanges},
			{models.AuditEmailVerify, verifyChanges},
			{models.AuditProfileUpdate, profileChanges},
		}

		changed := false
		for _, g := range groups {
			changed = changed || len(g.changes) > 0
		}
		if !changed {
			result = user
			return nil
		}

		result, err = repos.UserRepository.UpdateUser(ctx, user)
		if err != nil {
			return accountWriteError(err)
		}

		for _, g := range groups {
			if len(g.changes) == 0 {
				continue
			}
			if err = appendAudit(ctx, repos.AuditRepository, actor, models.AuditTargetUser, result.UserID, result.Username, g.action, g.changes); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*userService.UpdateUser").Int64("target_id", userID).Msg("admin user update failed")
		return models.User{}, err
	}

	return result, nil
}

func (s *userService) ListUserAudit(ctx context.Context, userID int64, limit, offset int) ([]models.AuditRecord, error) {
	limit, offset = normalizePage(limit, offset)

	records, err := s.audit.ListRecords(ctx, models.AuditFilter{
		TargetType: models.AuditTargetUser,
		TargetID:   &userID,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return nil, fmt.Errorf("listing user audit records: %w", err)
	}
	return records, nil
}

func checkSelfLockout(actor models.User, userID int64, upd models.UserAdminUpdate) error {
	if actor.UserID != userID {
		return nil
	}

	var errs validators.Errors
	if upd.Role != nil && *upd.Role != models.RoleAdmin {
		errs.Add("role", "administrators cannot remove their own admin role", validators.TypeValue)
	}
	if upd.AccountStatus != nil && *upd.AccountStatus == models.AccountSuspended {
		errs.Add("account_status", "administrators cannot suspend themselves", validators.TypeValue)
	}
	return errs.Err()
}

// appendAudit writes one audit record through repo, which must be bound to
// the transaction of the change it describes.
func appendAudit(
	ctx context.Context,
	repo store.AuditRepository,
	actor models.User,
	target models.AuditTarget,
	targetID int64,
	targetName string,
	action models.AuditAction,
	changes models.ChangeSet,
) error {
	record, err := models.NewAuditRecord(actor, target, targetID, targetName, action, changes)
	if err != nil {
		return fmt.Errorf("encoding audit changes: %w", err)
	}
	if _, err = repo.AppendRecord(ctx, record); err != nil {
		return fmt.Errorf("appending audit record: %w", err)
	}
	return nil
}
