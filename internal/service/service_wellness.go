package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-nutri-keeper/internal/crypto"
	"github.com/MKhiriev/go-nutri-keeper/internal/logger"
	"github.com/MKhiriev/go-nutri-keeper/internal/store"
	"github.com/MKhiriev/go-nutri-keeper/internal/validators"
	"github.com/MKhiriev/go-nutri-keeper/models"
)

// wellnessService keeps ciphertext strictly below it: every free-text field
// is encrypted before a store call and decrypted on every value it returns.
type wellnessService struct {
	logs   store.WellnessRepository
	cipher crypto.FieldCipher

	validator validators.Validator
	logger    *logger.Logger

	now func() time.Time
}

func NewWellnessService(storages *store.Storages, cipher crypto.FieldCipher, logger *logger.Logger) WellnessService {
	return &wellnessService{
		logs:      storages.WellnessRepository,
		cipher:    cipher,
		validator: validators.NewWellnessValidator(),
		logger:    logger,
		now:       time.Now,
	}
}

// ─── mood ────────────────────────────────────────────────────────────────────

func (s *wellnessService) CreateMoodLog(ctx context.Context, user models.User, in models.MoodLogInput) (models.MoodLog, error) {
	if err := s.validator.Validate(ctx, in, validators.ScopeCreate); err != nil {
		return models.MoodLog{}, err
	}
	occurredAt, logDate, err := validators.ResolveWellnessTiming(in.WellnessTiming, user.Location(), s.now())
	if err != nil {
		return models.MoodLog{}, err
	}
	notes, err := s.cipher.Encrypt(in.Notes)
	if err != nil {
		return models.MoodLog{}, fmt.Errorf("encrypting mood notes: %w", err)
	}

	created, err := s.logs.CreateMoodLog(ctx, models.MoodLog{
		UserID:      user.UserID,
		OccurredAt:  occurredAt,
		LogDate:     logDate,
		MoodScore:   *in.MoodScore,
		EnergyLevel: in.EnergyLevel,
		Notes:       notes,
	})
	if err != nil {
		return models.MoodLog{}, fromStore(err, "mood log for "+logDate.String())
	}
	return s.openMood(created)
}

func (s *wellnessService) GetMoodLog(ctx context.Context, userID, logID int64) (models.MoodLog, error) {
	log, err := s.logs.GetMoodLog(ctx, userID, logID)
	if err != nil {
		return models.MoodLog{}, fromStore(err, "mood log")
	}
	return s.openMood(log)
}

func (s *wellnessService) UpdateMoodLog(ctx context.Context, user models.User, logID int64, in models.MoodLogInput) (models.MoodLog, error) {
	if err := s.validator.Validate(ctx, in, validators.ScopeUpdate); err != nil {
		return models.MoodLog{}, err
	}

	current, err := s.logs.GetMoodLog(ctx, user.UserID, logID)
	if err != nil {
		return models.MoodLog{}, fromStore(err, "mood log")
	}

	if err = s.retime(in.WellnessTiming, user, &current.OccurredAt, &current.LogDate); err != nil {
		return models.MoodLog{}, err
	}
	if in.MoodScore != nil {
		current.MoodScore = *in.MoodScore
	}
	if in.EnergyLevel != nil {
		current.EnergyLevel = in.EnergyLevel
	}
	if in.Notes != nil {
		if current.Notes, err = s.cipher.Encrypt(in.Notes); err != nil {
			return models.MoodLog{}, fmt.Errorf("encrypting mood notes: %w", err)
		}
	}

	updated, err := s.logs.UpdateMoodLog(ctx, current)
	if err != nil {
		return models.MoodLog{}, fromStore(err, "mood log for "+current.LogDate.String())
	}
	return s.openMood(updated)
}

func (s *wellnessService) DeleteMoodLog(ctx context.Context, userID, logID int64) error {
	return fromStore(s.logs.DeleteMoodLog(ctx, userID, logID), "mood log")
}

// ─── stress ──────────────────────────────────────────────────────────────────

func (s *wellnessService) CreateStressLog(ctx context.Context, user models.User, in models.StressLogInput) (models.StressLog, error) {
	if err := s.validator.Validate(ctx, in, validators.ScopeCreate); err != nil {
		return models.StressLog{}, err
	}
	occurredAt, logDate, err := validators.ResolveWellnessTiming(in.WellnessTiming, user.Location(), s.now())
	if err != nil {
		return models.StressLog{}, err
	}
	triggers, err := s.cipher.Encrypt(in.Triggers)
	if err != nil {
		return models.StressLog{}, fmt.Errorf("encrypting stress triggers: %w", err)
	}
	notes, err := s.cipher.Encrypt(in.Notes)
	if err != nil {
		return models.StressLog{}, fmt.Errorf("encrypting stress notes: %w", err)
	}

	created, err := s.logs.CreateStressLog(ctx, models.StressLog{
		UserID:      user.UserID,
		OccurredAt:  occurredAt,
		LogDate:     logDate,
		StressLevel: *in.StressLevel,
		Triggers:    triggers,
		Notes:       notes,
	})
	if err != nil {
		return models.StressLog{}, fromStore(err, "stress log for "+logDate.String())
	}
	return s.openStress(created)
}

func (s *wellnessService) GetStressLog(ctx context.Context, userID, logID int64) (models.StressLog, error) {
	log, err := s.logs.GetStressLog(ctx, userID, logID)
	if err != nil {
		return models.StressLog{}, fromStore(err, "stress log")
	}
	return s.openStress(log)
}

func (s *wellnessService) UpdateStressLog(ctx context.Context, user models.User, logID int64, in models.StressLogInput) (models.StressLog, error) {
	if err := s.validator.Validate(ctx, in, validators.ScopeUpdate); err != nil {
		return models.StressLog{}, err
	}

	current, err := s.logs.GetStressLog(ctx, user.UserID, logID)
	if err != nil {
		return models.StressLog{}, fromStore(err, "stress log")
	}

	if err = s.retime(in.WellnessTiming, user, &current.OccurredAt, &current.LogDate); err != nil {
		return models.StressLog{}, err
	}
	if in.StressLevel != nil {
		current.StressLevel = *in.StressLevel
	}
	if in.Triggers != nil {
		if current.Triggers, err = s.cipher.Encrypt(in.Triggers); err != nil {
			return models.StressLog{}, fmt.Errorf("encrypting stress triggers: %w", err)
		}
	}
	if in.Notes != nil {
		if current.Notes, err = s.cipher.Encrypt(in.Notes); err != nil {
			return models.StressLog{}, fmt.Errorf("encrypting stress notes: %w", err)
		}
	}

	updated, err := s.logs.UpdateStressLog(ctx, current)
	if err != nil {
		return models.StressLog{}, fromStore(err, "stress log for "+current.LogDate.String())
	}
	return s.openStress(updated)
}

func (s *wellnessService) DeleteStressLog(ctx context.Context, userID, logID int64) error {
	return fromStore(s.logs.DeleteStressLog(ctx, userID, logID), "stress log")
}

// ─── sleep ───────────────────────────────────────────────────────────────────

func (s *wellnessService) CreateSleepLog(ctx context.Context, user models.User, in models.SleepLogInput) (models.SleepLog, error) {
	if err := s.validator.Validate(ctx, in, validators.ScopeCreate); err != nil {
		return models.SleepLog{}, err
	}
	occurredAt, logDate, err := validators.ResolveWellnessTiming(in.WellnessTiming, user.Location(), s.now())
	if err != nil {
		return models.SleepLog{}, err
	}
	notes, err := s.cipher.Encrypt(in.Notes)
	if err != nil {
		return models.SleepLog{}, fmt.Errorf("encrypting sleep notes: %w", err)
	}

	created, err := s.logs.CreateSleepLog(ctx, models.SleepLog{
		UserID:        user.UserID,
		OccurredAt:    occurredAt,
		LogDate:       logDate,
		SleepQuality:  *in.SleepQuality,
		DurationHours: *in.DurationHours,
		Notes:         notes,
	})
	if err != nil {
		return models.SleepLog{}, fromStore(err, "sleep log for "+logDate.String())
	}
	return s.openSleep(created)
}

func (s *wellnessService) GetSleepLog(ctx context.Context, userID, logID int64) (models.SleepLog, error) {
	log, err := s.logs.GetSleepLog(ctx, userID, logID)
	if err != nil {
		return models.SleepLog{}, fromStore(err, "sleep log")
	}
	return s.openSleep(log)
}

func (s *wellnessService) UpdateSleepLog(ctx context.Context, user models.User, logID int64, in models.SleepLogInput) (models.SleepLog, error) {
	if err := s.validator.Validate(ctx, in, validators.ScopeUpdate); err != nil {
		return models.SleepLog{}, err
	}

	current, err := s.logs.GetSleepLog(ctx, user.UserID, logID)
	if err != nil {
		return models.SleepLog{}, fromStore(err, "sleep log")
	}

	if err = s.retime(in.WellnessTiming, user, &current.OccurredAt, &current.LogDate); err != nil {
		return models.SleepLog{}, err
	}
	if in.SleepQuality != nil {
		current.SleepQuality = *in.SleepQuality
	}
	if in.DurationHours != nil {
		current.DurationHours = *in.DurationHours
	}
	if in.Notes != nil {
		if current.Notes, err = s.cipher.Encrypt(in.Notes); err != nil {
			return models.SleepLog{}, fmt.Errorf("encrypting sleep notes: %w", err)
		}
	}

	updated, err := s.logs.UpdateSleepLog(ctx, current)
	if err != nil {
		return models.SleepLog{}, fromStore(err, "sleep log for "+current.LogDate.String())
	}
	return s.openSleep(updated)
}

func (s *wellnessService) DeleteSleepLog(ctx context.Context, userID, logID int64) error {
	return fromStore(s.logs.DeleteSleepLog(ctx, userID, logID), "sleep log")
}

// ─── combined listing ────────────────────────────────────────────────────────

// ListLogs returns the three kinds side by side. A kind excluded by the
// filter comes back as an empty list.
func (s *wellnessService) ListLogs(ctx context.Context, userID int64, filter models.WellnessFilter) (models.WellnessLogs, error) {
	result := models.WellnessLogs{
		MoodLogs:   []models.MoodLog{},
		StressLogs: []models.StressLog{},
		SleepLogs:  []models.SleepLog{},
	}

	if filter.Includes(models.WellnessMood) {
		logs, err := s.logs.ListMoodLogs(ctx, userID, filter)
		if err != nil {
			return models.WellnessLogs{}, fmt.Errorf("listing mood logs: %w", err)
		}
		for _, l := range logs {
			opened, err := s.openMood(l)
			if err != nil {
				return models.WellnessLogs{}, err
			}
			result.MoodLogs = append(result.MoodLogs, opened)
		}
	}

	if filter.Includes(models.WellnessStress) {
		logs, err := s.logs.ListStressLogs(ctx, userID, filter)
		if err != nil {
			return models.WellnessLogs{}, fmt.Errorf("listing stress logs: %w", err)
		}
		for _, l := range logs {
			opened, err := s.openStress(l)
			if err != nil {
				return models.WellnessLogs{}, err
			}
			result.StressLogs = append(result.StressLogs, opened)
		}
	}

	if filter.Includes(models.WellnessSleep) {
		logs, err := s.logs.ListSleepLogs(ctx, userID, filter)
		if err != nil {
			return models.WellnessLogs{}, fmt.Errorf("listing sleep logs: %w", err)
		}
		for _, l := range logs {
			opened, err := s.openSleep(l)
			if err != nil {
				return models.WellnessLogs{}, err
			}
			result.SleepLogs = append(result.SleepLogs, opened)
		}
	}

	return result, nil
}

// retime moves a log to new timing when the update carries one.
func (s *wellnessService) retime(t models.WellnessTiming, user models.User, occurredAt *time.Time, logDate *models.Date) error {
	if t.LogDate == nil && t.OccurredAt == nil {
		return nil
	}
	at, date, err := validators.ResolveWellnessTiming(t, user.Location(), s.now())
	if err != nil {
		return err
	}
	*occurredAt, *logDate = at, date
	return nil
}

func (s *wellnessService) openMood(log models.MoodLog) (models.MoodLog, error) {
	var err error
	if log.Notes, err = s.cipher.Decrypt(log.Notes); err != nil {
		return models.MoodLog{}, fmt.Errorf("decrypting mood log %d: %w", log.LogID, err)
	}
	return log, nil
}

func (s *wellnessService) openStress(log models.StressLog) (models.StressLog, error) {
	var err error
	if log.Triggers, err = s.cipher.Decrypt(log.Triggers); err != nil {
		return models.StressLog{}, fmt.Errorf("decrypting stress log %d: %w", log.LogID, err)
	}
	if log.Notes, err = s.cipher.Decrypt(log.Notes); err != nil {
		return models.StressLog{}, fmt.Errorf("decrypting stress log %d: %w", log.LogID, err)
	}
	return log, nil
}

func (s *wellnessService) openSleep(log models.SleepLog) (models.SleepLog, error) {
	var err error
	if log.Notes, err = s.cipher.Decrypt(log.Notes); err != nil {
		return models.SleepLog{}, fmt.Errorf("decrypting sleep log %d: %w", log.LogID, err)
	}
	return log, nil
}
