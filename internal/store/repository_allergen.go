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

// allergenRepository is the PostgreSQL-backed implementation of
// [AllergenRepository].
type allergenRepository struct {
	logger *logger.Logger
	db     querier
}

// ListAllergens returns the catalog ordered by name, optionally narrowed to a
// category and a case-insensitive name fragment.
func (r *allergenRepository) ListAllergens(ctx context.Context, category, query string) ([]models.Allergen, error) {
	log := logger.FromContext(ctx)

	builder := psql.Select(allergenColumns...).From("allergens")
	if c := strings.TrimSpace(category); c != "" {
		builder = builder.Where(squirrel.Expr("LOWER(category) = LOWER(?)", c))
	}
	if q := strings.TrimSpace(query); q != "" {
		builder = builder.Where(squirrel.ILike{"name": "%" + escapeLike(q) + "%"})
	}

	sqlQuery, args, err := builder.OrderBy("name", "allergen_id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	allergens := make([]models.Allergen, 0)
	if err = r.db.SelectContext(ctx, &allergens, sqlQuery, args...); err != nil {
		log.Err(err).Str("func", "*allergenRepository.ListAllergens").Msg("error listing allergens")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return allergens, nil
}

// GetAllergen returns one catalog entry or [ErrNotFound].
func (r *allergenRepository) GetAllergen(ctx context.Context, allergenID int64) (models.Allergen, error) {
	return r.findOne(ctx, "*allergenRepository.GetAllergen", squirrel.Eq{"allergen_id": allergenID})
}

// FindAllergenByName looks an entry up by case-folded name.
func (r *allergenRepository) FindAllergenByName(ctx context.Context, name string) (models.Allergen, error) {
	return r.findOne(ctx, "*allergenRepository.FindAllergenByName", squirrel.Expr("LOWER(name) = LOWER(?)", strings.TrimSpace(name)))
}

func (r *allergenRepository) findOne(ctx context.Context, funcName string, where squirrel.Sqlizer) (models.Allergen, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(allergenColumns...).From("allergens").Where(where).ToSql()
	if err != nil {
		return models.Allergen{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var allergen models.Allergen
	if err = r.db.GetContext(ctx, &allergen, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Allergen{}, ErrNotFound
		}
		log.Err(err).Str("func", funcName).Msg("error selecting allergen")
		return models.Allergen{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return allergen, nil
}

// CreateAllergen inserts a catalog entry; a case-insensitive name collision
// returns [ErrAlreadyExists].
func (r *allergenRepository) CreateAllergen(ctx context.Context, allergen models.Allergen) (models.Allergen, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Insert("allergens").
		Columns("name", "category", "is_major_allergen", "description").
		Values(allergen.Name, allergen.Category, allergen.IsMajorAllergen, allergen.Description).
		Suffix(returning(allergenColumns)).
		ToSql()
	if err != nil {
		return models.Allergen{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Allergen
	if err = r.db.GetContext(ctx, &created, query, args...); err != nil {
		log.Err(err).Str("func", "*allergenRepository.CreateAllergen").Str("name", allergen.Name).Msg("error inserting allergen")
		return models.Allergen{}, constraintError(err)
	}

	return created, nil
}

// UpdateAllergen writes every mutable field of allergen.
func (r *allergenRepository) UpdateAllergen(ctx context.Context, allergen models.Allergen) (models.Allergen, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Update("allergens").
		Set("name", allergen.Name).
		Set("category", allergen.Category).
		Set("is_major_allergen", allergen.IsMajorAllergen).
		Set("description", allergen.Description).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"allergen_id": allergen.AllergenID}).
		Suffix(returning(allergenColumns)).
		ToSql()
	if err != nil {
		return models.Allergen{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Allergen
	if err = r.db.GetContext(ctx, &updated, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Allergen{}, ErrNotFound
		}
		log.Err(err).Str("func", "*allergenRepository.UpdateAllergen").Int64("allergen_id", allergen.AllergenID).Msg("error updating allergen")
		return models.Allergen{}, constraintError(err)
	}

	return updated, nil
}

// DeleteAllergen removes a catalog entry. The foreign key from
// user_allergies is RESTRICT, so a referenced entry yields [ErrAllergenInUse].
func (r *allergenRepository) DeleteAllergen(ctx context.Context, allergenID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.Delete("allergens").Where(squirrel.Eq{"allergen_id": allergenID}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return ErrAllergenInUse
		}
		log.Err(err).Str("func", "*allergenRepository.DeleteAllergen").Int64("allergen_id", allergenID).Msg("error deleting allergen")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}

	return nil
}

// CountAllergenReferences counts user allergies pointing at allergenID.
func (r *allergenRepository) CountAllergenReferences(ctx context.Context, allergenID int64) (int, error) {
	log := logger.FromContext(ctx)

	var count int
	if err := r.db.GetContext(ctx, &count, countAllergenReferences, allergenID); err != nil {
		log.Err(err).Str("func", "*allergenRepository.CountAllergenReferences").Int64("allergen_id", allergenID).Msg("error counting references")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// SearchAllergens returns one page of matches plus the total count.
func (r *allergenRepository) SearchAllergens(ctx context.Context, search models.AllergenSearch) (models.AllergenPage, error) {
	log := logger.FromContext(ctx)

	listBuilder, countBuilder := buildSearchAllergensQuery(search)
	listQuery, listArgs, err := listBuilder.ToSql()
	if err != nil {
		return models.AllergenPage{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return models.AllergenPage{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	page := models.AllergenPage{Items: make([]models.Allergen, 0), Limit: search.Limit, Offset: search.Offset}
	if err = r.db.SelectContext(ctx, &page.Items, listQuery, listArgs...); err != nil {
		log.Err(err).Str("func", "*allergenRepository.SearchAllergens").Msg("error searching allergens")
		return models.AllergenPage{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if err = r.db.GetContext(ctx, &page.Total, countQuery, countArgs...); err != nil {
		log.Err(err).Str("func", "*allergenRepository.SearchAllergens").Msg("error counting allergens")
		return models.AllergenPage{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return page, nil
}
