package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-nutri-keeper/internal/logger"
	"github.com/MKhiriev/go-nutri-keeper/internal/store"
	"github.com/MKhiriev/go-nutri-keeper/internal/validators"
	"github.com/MKhiriev/go-nutri-keeper/models"
)

type profileService struct {
	uow       store.UnitOfWork
	profiles  store.ProfileRepository
	allergens store.AllergenRepository

	validator validators.Validator
	logger    *logger.Logger
}

func NewProfileService(storages *store.Storages, logger *logger.Logger) ProfileService {
	return &profileService{
		uow:       storages.UnitOfWork,
		profiles:  storages.ProfileRepository,
		allergens: storages.AllergenRepository,
		validator: validators.NewHealthValidator(),
		logger:    logger,
	}
}

func (s *profileService) GetProfile(ctx context.Context, userID int64) (models.HealthProfile, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return models.HealthProfile{}, fromStore(err, "health profile")
	}
	return profile, nil
}

// SaveProfile creates the profile on first write and applies upd to it.
func (s *profileService) SaveProfile(ctx context.Context, userID int64, upd models.HealthProfileUpdate) (models.HealthProfile, error) {
	if err := s.validator.Validate(ctx, upd); err != nil {
		return models.HealthProfile{}, err
	}

	var saved models.HealthProfile
	err := s.uow.Do(ctx, func(ctx context.Context, repos *store.Repositories) error {
		profile, err := repos.ProfileRepository.EnsureProfile(ctx, userID)
		if err != nil {
			return fmt.Errorf("ensuring health profile: %w", err)
		}

		upd.Apply(&profile)
		saved, err = repos.ProfileRepository.SaveProfile(ctx, profile)
		return fromStore(err, "health profile")
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*profileService.SaveProfile").Int64("user_id", userID).Msg("saving health profile failed")
		return models.HealthProfile{}, err
	}
	return saved, nil
}

func (s *profileService) DeleteProfile(ctx context.Context, userID int64) error {
	return fromStore(s.profiles.DeleteProfile(ctx, userID), "health profile")
}

// ─────────────────────────────────────────────────────────────
// Allergies
// ─────────────────────────────────────────────────────────────

func (s *profileService) ListAllergies(ctx context.Context, userID int64) ([]models.UserAllergy, error) {
	allergies, err := s.profiles.ListAllergies(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing allergies: %w", err)
	}
	return allergies, nil
}

func (s *profileService) GetAllergy(ctx context.Context, userID, allergyID int64) (models.UserAllergy, error) {
	allergy, err := s.profiles.GetAllergy(ctx, userID, allergyID)
	if err != nil {
		return models.UserAllergy{}, fromStore(err, "allergy")
	}
	return allergy, nil
}

// CreateAllergy links the caller's profile (created if missing) to a catalog
// allergen. A second allergy to the same allergen is a conflict.
func (s *profileService) CreateAllergy(ctx context.Context, userID int64, in models.UserAllergyInput) (models.UserAllergy, error) {
	if err := s.validator.Validate(ctx, in); err != nil {
		return models.UserAllergy{}, err
	}

	var created models.UserAllergy
	err := s.uow.Do(ctx, func(ctx context.Context, repos *store.Repositories) error {
		allergen, err := repos.AllergenRepository.GetAllergen(ctx, in.AllergenID)
		if err != nil {
			return fromStore(err, "allergen")
		}

		profile, err := repos.ProfileRepository.EnsureProfile(ctx, userID)
		if err != nil {
			return fmt.Errorf("ensuring health profile: %w", err)
		}

		created, err = repos.ProfileRepository.CreateAllergy(ctx, models.UserAllergy{
			ProfileID:     profile.ProfileID,
			AllergenID:    allergen.AllergenID,
			AllergenName:  allergen.Name,
			Severity:      in.Severity,
			DiagnosisDate: in.DiagnosisDate,
			ReactionType:  in.ReactionType,
			Notes:         in.Notes,
			IsVerified:    in.IsVerified,
		})
		return fromStore(err, "allergy to "+allergen.Name)
	})
	if err != nil {
		return models.UserAllergy{}, err
	}
	return created, nil
}

func (s *profileService) UpdateAllergy(ctx context.Context, userID, allergyID int64, upd models.UserAllergyUpdate) (models.UserAllergy, error) {
	if err := s.validator.Validate(ctx, upd); err != nil {
		return models.UserAllergy{}, err
	}

	allergy, err := s.profiles.GetAllergy(ctx, userID, allergyID)
	if err != nil {
		return models.UserAllergy{}, fromStore(err, "allergy")
	}

	upd.Apply(&allergy)
	updated, err := s.profiles.UpdateAllergy(ctx, userID, allergy)
	if err != nil {
		return models.UserAllergy{}, fromStore(err, "allergy")
	}
	return updated, nil
}

func (s *profileService) DeleteAllergy(ctx context.Context, userID, allergyID int64) error {
	return fromStore(s.profiles.DeleteAllergy(ctx, userID, allergyID), "allergy")
}

// ─────────────────────────────────────────────────────────────
// Dietary preferences
// ─────────────────────────────────────────────────────────────

func (s *profileService) ListPreferences(ctx context.Context, userID int64) ([]models.DietaryPreference, error) {
	preferences, err := s.profiles.ListPreferences(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing dietary preferences: %w", err)
	}
	return preferences, nil
}

func (s *profileService) GetPreference(ctx context.Context, userID, preferenceID int64) (models.DietaryPreference, error) {
	preference, err := s.profiles.GetPreference(ctx, userID, preferenceID)
	if err != nil {
		return models.DietaryPreference{}, fromStore(err, "dietary preference")
	}
	return preference, nil
}

func (s *profileService) CreatePreference(ctx context.Context, userID int64, in models.DietaryPreferenceInput) (models.DietaryPreference, error) {
	in.PreferenceName = strings.TrimSpace(in.PreferenceName)
	if err := s.validator.Validate(ctx, in); err != nil {
		return models.DietaryPreference{}, err
	}

	var created models.DietaryPreference
	err := s.uow.Do(ctx, func(ctx context.Context, repos *store.Repositories) error {
		profile, err := repos.ProfileRepository.EnsureProfile(ctx, userID)
		if err != nil {
			return fmt.Errorf("ensuring health profile: %w", err)
		}

		created, err = repos.ProfileRepository.CreatePreference(ctx, models.DietaryPreference{
			ProfileID:      profile.ProfileID,
			PreferenceType: in.PreferenceType,
			PreferenceName: in.PreferenceName,
			IsStrict:       in.IsStrict,
			Reason:         in.Reason,
			Notes:          in.Notes,
		})
		return fromStore(err, "dietary preference "+in.PreferenceName)
	})
	if err != nil {
		return models.DietaryPreference{}, err
	}
	return created, nil
}

func (s *profileService) UpdatePreference(ctx context.Context, userID, preferenceID int64, upd models.DietaryPreferenceUpdate) (models.DietaryPreference, error) {
	if upd.PreferenceName != nil {
		name := strings.TrimSpace(*upd.PreferenceName)
		upd.PreferenceName = &name
	}
	if err := s.validator.Validate(ctx, upd); err != nil {
		return models.DietaryPreference{}, err
	}

	preference, err := s.profiles.GetPreference(ctx, userID, preferenceID)
	if err != nil {
		return models.DietaryPreference{}, fromStore(err, "dietary preference")
	}

	upd.Apply(&preference)
	updated, err := s.profiles.UpdatePreference(ctx, userID, preference)
	if err != nil {
		return models.DietaryPreference{}, fromStore(err, "dietary preference "+preference.PreferenceName)
	}
	return updated, nil
}

func (s *profileService) DeletePreference(ctx context.Context, userID, preferenceID int64) error {
	return fromStore(s.profiles.DeletePreference(ctx, userID, preferenceID), "dietary preference")
}
