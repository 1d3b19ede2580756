package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-nutri-keeper/internal/logger"
	"github.com/MKhiriev/go-nutri-keeper/models"
	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
)

// profileRepository is the PostgreSQL-backed implementation of
// [ProfileRepository]. Allergies and preferences hang off the profile, so
// their ownership is checked through health_profiles.user_id.
type profileRepository struct {
	logger *logger.Logger
	db     querier
}

// ownedProfile restricts profile_id to the profile of userID.
func ownedProfile(column string, userID int64) squirrel.Sqlizer {
	return squirrel.Expr(column+" IN (SELECT profile_id FROM health_profiles WHERE user_id = ?)", userID)
}

// GetProfile returns the profile of userID or [ErrNotFound].
func (r *profileRepository) GetProfile(ctx context.Context, userID int64) (models.HealthProfile, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(profileColumns...).
		From("health_profiles").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return models.HealthProfile{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var profile models.HealthProfile
	if err = r.db.GetContext(ctx, &profile, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.HealthProfile{}, ErrNotFound
		}
		log.Err(err).Str("func", "*profileRepository.GetProfile").Int64("user_id", userID).Msg("error selecting profile")
		return models.HealthProfile{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return profile, nil
}

// EnsureProfile creates an empty profile for userID when none exists and
// returns the current one.
func (r *profileRepository) EnsureProfile(ctx context.Context, userID int64) (models.HealthProfile, error) {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, ensureProfile, userID); err != nil {
		log.Err(err).Str("func", "*profileRepository.EnsureProfile").Int64("user_id", userID).Msg("error creating profile")
		return models.HealthProfile{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return r.GetProfile(ctx, userID)
}

// SaveProfile inserts or replaces the profile of profile.UserID.
func (r *profileRepository) SaveProfile(ctx context.Context, profile models.HealthProfile) (models.HealthProfile, error) {
	log := logger.FromContext(ctx)

	var saved models.HealthProfile
	err := r.db.GetContext(ctx, &saved, saveProfile,
		profile.UserID, profile.HeightCM, profile.WeightKG, profile.ActivityLevel, profile.MetabolicRate)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.SaveProfile").Int64("user_id", profile.UserID).Msg("error saving profile")
		return models.HealthProfile{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return saved, nil
}

// DeleteProfile removes the profile of userID together with its allergies
// and preferences.
func (r *profileRepository) DeleteProfile(ctx context.Context, userID int64) error {
	return r.delete(ctx, "*profileRepository.DeleteProfile",
		psql.Delete("health_profiles").Where(squirrel.Eq{"user_id": userID}))
}

// ─── allergies ───────────────────────────────────────────────────────────────

func allergySelect() squirrel.SelectBuilder {
	return psql.Select(allergyColumns...).
		From("user_allergies ua").
		Join("allergens a ON a.allergen_id = ua.allergen_id")
}

// ListAllergies returns every allergy of userID ordered by allergen name.
func (r *profileRepository) ListAllergies(ctx context.Context, userID int64) ([]models.UserAllergy, error) {
	log := logger.FromContext(ctx)

	query, args, err := allergySelect().
		Where(ownedProfile("ua.profile_id", userID)).
		OrderBy("a.name", "ua.allergy_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	allergies := make([]models.UserAllergy, 0)
	if err = r.db.SelectContext(ctx, &allergies, query, args...); err != nil {
		log.Err(err).Str("func", "*profileRepository.ListAllergies").Int64("user_id", userID).Msg("error listing allergies")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return allergies, nil
}

// GetAllergy returns one allergy of userID or [ErrNotFound].
func (r *profileRepository) GetAllergy(ctx context.Context, userID, allergyID int64) (models.UserAllergy, error) {
	return r.getAllergy(ctx, squirrel.And{
		squirrel.Eq{"ua.allergy_id": allergyID},
		ownedProfile("ua.profile_id", userID),
	})
}

func (r *profileRepository) getAllergy(ctx context.Context, where squirrel.Sqlizer) (models.UserAllergy, error) {
	log := logger.FromContext(ctx)

	query, args, err := allergySelect().Where(where).ToSql()
	if err != nil {
		return models.UserAllergy{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var allergy models.UserAllergy
	if err = r.db.GetContext(ctx, &allergy, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.UserAllergy{}, ErrNotFound
		}
		log.Err(err).Str("func", "*profileRepository.getAllergy").Msg("error selecting allergy")
		return models.UserAllergy{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return allergy, nil
}

// CreateAllergy inserts an allergy for allergy.ProfileID.
//
// Error handling:
//   - unique (profile, allergen) violation → [ErrAlreadyExists].
//   - missing allergen → [ErrReferenceNotFound].
func (r *profileRepository) CreateAllergy(ctx context.Context, allergy models.UserAllergy) (models.UserAllergy, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Insert("user_allergies").
		Columns("profile_id", "allergen_id", "severity", "diagnosis_date", "reaction_type", "notes", "is_verified").
		Values(allergy.ProfileID, allergy.AllergenID, allergy.Severity, allergy.DiagnosisDate, allergy.ReactionType,
			allergy.Notes, allergy.IsVerified).
		Suffix("RETURNING allergy_id").
		ToSql()
	if err != nil {
		return models.UserAllergy{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var allergyID int64
	if err = r.db.GetContext(ctx, &allergyID, query, args...); err != nil {
		log.Err(err).Str("func", "*profileRepository.CreateAllergy").Int64("profile_id", allergy.ProfileID).Msg("error inserting allergy")
		return models.UserAllergy{}, constraintError(err)
	}

	return r.getAllergy(ctx, squirrel.Eq{"ua.allergy_id": allergyID})
}

// UpdateAllergy writes the mutable fields of allergy when it belongs to userID.
func (r *profileRepository) UpdateAllergy(ctx context.Context, userID int64, allergy models.UserAllergy) (models.UserAllergy, error) {
	err := r.update(ctx, "*profileRepository.UpdateAllergy", psql.Update("user_allergies").
		Set("severity", allergy.Severity).
		Set("diagnosis_date", allergy.DiagnosisDate).
		Set("reaction_type", allergy.ReactionType).
		Set("notes", allergy.Notes).
		Set("is_verified", allergy.IsVerified).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"allergy_id": allergy.AllergyID}).
		Where(ownedProfile("profile_id", userID)))
	if err != nil {
		return models.UserAllergy{}, err
	}

	return r.GetAllergy(ctx, userID, allergy.AllergyID)
}

// DeleteAllergy removes an allergy of userID or returns [ErrNotFound].
func (r *profileRepository) DeleteAllergy(ctx context.Context, userID, allergyID int64) error {
	return r.delete(ctx, "*profileRepository.DeleteAllergy", psql.Delete("user_allergies").
		Where(squirrel.Eq{"allergy_id": allergyID}).
		Where(ownedProfile("profile_id", userID)))
}

// ─── dietary preferences ─────────────────────────────────────────────────────

func preferenceSelect() squirrel.SelectBuilder {
	return psql.Select(preferenceColumns...).From("dietary_preferences dp")
}

// ListPreferences returns every preference of userID.
func (r *profileRepository) ListPreferences(ctx context.Context, userID int64) ([]models.DietaryPreference, error) {
	log := logger.FromContext(ctx)

	query, args, err := preferenceSelect().
		Where(ownedProfile("dp.profile_id", userID)).
		OrderBy("dp.preference_type", "dp.preference_name", "dp.preference_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	preferences := make([]models.DietaryPreference, 0)
	if err = r.db.SelectContext(ctx, &preferences, query, args...); err != nil {
		log.Err(err).Str("func", "*profileRepository.ListPreferences").Int64("user_id", userID).Msg("error listing preferences")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return preferences, nil
}

// GetPreference returns one preference of userID or [ErrNotFound].
func (r *profileRepository) GetPreference(ctx context.Context, userID, preferenceID int64) (models.DietaryPreference, error) {
	log := logger.FromContext(ctx)

	query, args, err := preferenceSelect().
		Where(squirrel.Eq{"dp.preference_id": preferenceID}).
		Where(ownedProfile("dp.profile_id", userID)).
		ToSql()
	if err != nil {
		return models.DietaryPreference{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var preference models.DietaryPreference
	if err = r.db.GetContext(ctx, &preference, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DietaryPreference{}, ErrNotFound
		}
		log.Err(err).Str("func", "*profileRepository.GetPreference").Msg("error selecting preference")
		return models.DietaryPreference{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return preference, nil
}

// CreatePreference inserts a preference; a duplicate (type, name) on the same
// profile returns [ErrAlreadyExists].
func (r *profileRepository) CreatePreference(ctx context.Context, preference models.DietaryPreference) (models.DietaryPreference, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Insert("dietary_preferences").
		Columns("profile_id", "preference_type", "preference_name", "is_strict", "reason", "notes").
		Values(preference.ProfileID, preference.PreferenceType, preference.PreferenceName, preference.IsStrict,
			preference.Reason, preference.Notes).
		Suffix(returning(trimAlias(preferenceColumns))).
		ToSql()
	if err != nil {
		return models.DietaryPreference{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.DietaryPreference
	if err = r.db.GetContext(ctx, &created, query, args...); err != nil {
		log.Err(err).Str("func", "*profileRepository.CreatePreference").Int64("profile_id", preference.ProfileID).Msg("error inserting preference")
		return models.DietaryPreference{}, constraintError(err)
	}

	return created, nil
}

// UpdatePreference writes the mutable fields of preference when it belongs
// to userID.
func (r *profileRepository) UpdatePreference(ctx context.Context, userID int64, preference models.DietaryPreference) (models.DietaryPreference, error) {
	err := r.update(ctx, "*profileRepository.UpdatePreference", psql.Update("dietary_preferences").
		Set("preference_type", preference.PreferenceType).
		Set("preference_name", preference.PreferenceName).
		Set("is_strict", preference.IsStrict).
		Set("reason", preference.Reason).
		Set("notes", preference.Notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"preference_id": preference.PreferenceID}).
		Where(ownedProfile("profile_id", userID)))
	if err != nil {
		return models.DietaryPreference{}, err
	}

	return r.GetPreference(ctx, userID, preference.PreferenceID)
}

// DeletePreference removes a preference of userID or returns [ErrNotFound].
func (r *profileRepository) DeletePreference(ctx context.Context, userID, preferenceID int64) error {
	return r.delete(ctx, "*profileRepository.DeletePreference", psql.Delete("dietary_preferences").
		Where(squirrel.Eq{"preference_id": preferenceID}).
		Where(ownedProfile("profile_id", userID)))
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (r *profileRepository) update(ctx context.Context, funcName string, builder squirrel.UpdateBuilder) error {
	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return execAffectingOne(ctx, r.db, funcName, query, args)
}

func (r *profileRepository) delete(ctx context.Context, funcName string, builder squirrel.DeleteBuilder) error {
	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return execAffectingOne(ctx, r.db, funcName, query, args)
}

// execAffectingOne runs a DML statement and returns [ErrNotFound] when it
// touched no row. Constraint violations are translated by [constraintError].
func execAffectingOne(ctx context.Context, db querier, funcName, query string, args []any) error {
	log := logger.FromContext(ctx)

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error executing statement")
		return constraintError(err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n == 0 {
		return ErrNotFound
	}

	return nil
}

// constraintError translates integrity violations into domain sentinels.
func constraintError(err error) error {
	switch postgresError(err) {
	case pgerrcode.UniqueViolation:
		return ErrAlreadyExists
	case pgerrcode.ForeignKeyViolation:
		return ErrReferenceNotFound
	}
	return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}

// trimAlias strips a "table." prefix from qualified column names.
func trimAlias(columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		if dot := strings.IndexByte(c, '.'); dot >= 0 {
			c = c[dot+1:]
		}
		out[i] = c
	}
	return out
}
