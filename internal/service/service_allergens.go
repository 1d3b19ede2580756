package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-nutri-keeper/internal/logger"
	"github.com/MKhiriev/go-nutri-keeper/internal/store"
	"github.com/MKhiriev/go-nutri-keeper/internal/validators"
	"github.com/MKhiriev/go-nutri-keeper/models"
)

// Content types returned by ExportAllergens.
const (
	ContentTypeJSON = "application/json"
	ContentTypeCSV  = "text/csv; charset=utf-8"
)

var allergenCSVHeader = []string{"id", "name", "category", "is_major_allergen", "description"}

type allergenService struct {
	uow       store.UnitOfWork
	allergens store.AllergenRepository
	audit     store.AuditRepository

	validator validators.Validator
	logger    *logger.Logger
}

func NewAllergenService(storages *store.Storages, logger *logger.Logger) AllergenService {
	return &allergenService{
		uow:       storages.UnitOfWork,
		allergens: storages.AllergenRepository,
		audit:     storages.AuditRepository,
		validator: validators.NewHealthValidator(),
		logger:    logger,
	}
}

func (s *allergenService) ListAllergens(ctx context.Context, category, query string) ([]models.Allergen, error) {
	allergens, err := s.allergens.ListAllergens(ctx, strings.TrimSpace(category), strings.TrimSpace(query))
	if err != nil {
		return nil, fmt.Errorf("listing allergens: %w", err)
	}
	return allergens, nil
}

func (s *allergenService) GetAllergen(ctx context.Context, allergenID int64) (models.Allergen, error) {
	allergen, err := s.allergens.GetAllergen(ctx, allergenID)
	if err != nil {
		return models.Allergen{}, fromStore(err, "allergen")
	}
	return allergen, nil
}

func (s *allergenService) CreateAllergen(ctx context.Context, actor models.User, in models.AllergenInput) (models.Allergen, error) {
	in = trimAllergenInput(in)
	if err := s.validator.Validate(ctx, in); err != nil {
		return models.Allergen{}, err
	}

	var created models.Allergen
	err := s.uow.Do(ctx, func(ctx context.Context, repos *store.Repositories) error {
		if err := ensureAllergenNameFree(ctx, repos.AllergenRepository, in.Name, 0); err != nil {
			return err
		}

		var err error
		created, err = repos.AllergenRepository.CreateAllergen(ctx, allergenFromInput(in))
		if err != nil {
			return fromStore(err, "allergen "+in.Name)
		}

		return appendAudit(ctx, repos.AuditRepository, actor, models.AuditTargetAllergen,
			created.AllergenID, created.Name, models.AuditCreate, creationChanges(created))
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*allergenService.CreateAllergen").Msg("creating allergen failed")
		return models.Allergen{}, err
	}
	return created, nil
}

// UpdateAllergen applies upd and records the fields that actually changed.
// An update that changes nothing returns the allergen as is.
func (s *allergenService) UpdateAllergen(ctx context.Context, actor models.User, allergenID int64, upd models.AllergenUpdate) (models.Allergen, error) {
	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		upd.Name = &name
	}
	if upd.Category != nil {
		category := strings.TrimSpace(*upd.Category)
		upd.Category = &category
	}
	if err := s.validator.Validate(ctx, upd); err != nil {
		return models.Allergen{}, err
	}

	var result models.Allergen
	err := s.uow.Do(ctx, func(ctx context.Context, repos *store.Repositories) error {
		allergen, err := repos.AllergenRepository.GetAllergen(ctx, allergenID)
		if err != nil {
			return fromStore(err, "allergen")
		}

		changes := models.ChangeSet{}
		if upd.Name != nil && changes.Record("name", allergen.Name, *upd.Name) {
			if err = ensureAllergenNameFree(ctx, repos.AllergenRepository, *upd.Name, allergen.AllergenID); err != nil {
				return err
			}
			allergen.Name = *upd.Name
		}
		if upd.Category != nil && changes.Record("category", allergen.Category, *upd.Category) {
			allergen.Category = *upd.Category
		}
		if upd.IsMajorAllergen != nil && changes.Record("is_major_allergen", allergen.IsMajorAllergen, *upd.IsMajorAllergen) {
			allergen.IsMajorAllergen = *upd.IsMajorAllergen
		}
		if upd.Description != nil && changes.Record("description", allergen.Description, upd.Description) {
			allergen.Description = upd.Description
		}

		if len(changes) == 0 {
			result = allergen
			return nil
		}

		result, err = repos.AllergenRepository.UpdateAllergen(ctx, allergen)
		if err != nil {
			return fromStore(err, "allergen "+allergen.Name)
		}

		return appendAudit(ctx, repos.AuditRepository, actor, models.AuditTargetAllergen,
			result.AllergenID, result.Name, models.AuditUpdate, changes)
	})
	if err != nil {
		return models.Allergen{}, err
	}
	return result, nil
}

// DeleteAllergen removes an allergen no user allergy refers to.
func (s *allergenService) DeleteAllergen(ctx context.Context, actor models.User, allergenID int64) error {
	return s.uow.Do(ctx, func(ctx context.Context, repos *store.Repositories) error {
		allergen, err := repos.AllergenRepository.GetAllergen(ctx, allergenID)
		if err != nil {
			return fromStore(err, "allergen")
		}

		refs, err := repos.AllergenRepository.CountAllergenReferences(ctx, allergenID)
		if err != nil {
			return fmt.Errorf("counting allergen references: %w", err)
		}
		if refs > 0 {
			return ErrAllergenInUse
		}

		if err = repos.AllergenRepository.DeleteAllergen(ctx, allergenID); err != nil {
			return fromStore(err, "allergen")
		}

		changes := models.ChangeSet{}
		changes.Record("name", allergen.Name, nil)
		changes.Record("category", allergen.Category, nil)
		changes.Record("is_major_allergen", allergen.IsMajorAllergen, nil)
		changes.Record("description", allergen.Description, nil)

		return appendAudit(ctx, repos.AuditRepository, actor, models.AuditTargetAllergen,
			allergen.AllergenID, allergen.Name, models.AuditDelete, changes)
	})
}

// BulkCreateAllergens creates every allergen of req or none of them. Names
// already in the catalog are reported per entry as field errors. Each created
// allergen gets its own bulk_import audit record.
func (s *allergenService) BulkCreateAllergens(ctx context.Context, actor models.User, req models.BulkAllergenRequest) ([]models.Allergen, error) {
	for i := range req.Allergens {
		req.Allergens[i] = trimAllergenInput(req.Allergens[i])
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		return nil, err
	}

	created := make([]models.Allergen, 0, len(req.Allergens))
	err := s.uow.Do(ctx, func(ctx context.Context, repos *store.Repositories) error {
		created = created[:0]

		var errs validators.Errors
		for i, in := range req.Allergens {
			_, err := repos.AllergenRepository.FindAllergenByName(ctx, in.Name)
			switch {
			case err == nil:
				errs.Add(fmt.Sprintf("allergens.%d.name", i), "allergen with this name already exists", validators.TypeDuplicate)
			case !errors.Is(err, store.ErrNotFound):
				return fmt.Errorf("checking allergen name: %w", err)
			}
		}
		if err := errs.Err(); err != nil {
			return err
		}

		for _, in := range req.Allergens {
			allergen, err := repos.AllergenRepository.CreateAllergen(ctx, allergenFromInput(in))
			if err != nil {
				return fromStore(err, "allergen "+in.Name)
			}
			if err = appendAudit(ctx, repos.AuditRepository, actor, models.AuditTargetAllergen,
				allergen.AllergenID, allergen.Name, models.AuditBulkImport, creationChanges(allergen)); err != nil {
				return err
			}
			created = append(created, allergen)
		}
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*allergenService.BulkCreateAllergens").Int("count", len(req.Allergens)).Msg("bulk import failed")
		return nil, err
	}

	logger.FromContext(ctx).Info().Int("count", len(created)).Int64("actor_id", actor.UserID).Msg("allergens imported")
	return created, nil
}

func (s *allergenService) SearchAllergens(ctx context.Context, search models.AllergenSearch) (models.AllergenPage, error) {
	search.Query = strings.TrimSpace(search.Query)
	search.Category = strings.TrimSpace(search.Category)
	search.Limit, search.Offset = normalizePage(search.Limit, search.Offset)

	page, err := s.allergens.SearchAllergens(ctx, search)
	if err != nil {
		return models.AllergenPage{}, fmt.Errorf("searching allergens: %w", err)
	}
	return page, nil
}

func (s *allergenService) ExportAllergens(ctx context.Context, format models.ExportFormat) ([]byte, string, error) {
	if format == "" {
		format = models.ExportJSON
	}
	if format != models.ExportJSON && format != models.ExportCSV {
		return nil, "", validators.NewLocError([]string{"query", "format"}, "format must be one of: json, csv", validators.TypeEnum)
	}

	allergens, err := s.allergens.ListAllergens(ctx, "", "")
	if err != nil {
		return nil, "", fmt.Errorf("listing allergens for export: %w", err)
	}

	rows := make([]models.AllergenExportRow, 0, len(allergens))
	for _, a := range allergens {
		rows = append(rows, models.AllergenExportRow{
			ID:              a.AllergenID,
			Name:            a.Name,
			Category:        a.Category,
			IsMajorAllergen: a.IsMajorAllergen,
			Description:     a.Description,
		})
	}

	if format == models.ExportCSV {
		body, err := encodeAllergenCSV(rows)
		return body, ContentTypeCSV, err
	}

	body, err := json.Marshal(rows)
	if err != nil {
		return nil, "", fmt.Errorf("encoding allergen export: %w", err)
	}
	return body, ContentTypeJSON, nil
}

func (s *allergenService) ListAllergenAudit(ctx context.Context, filter models.AuditFilter) ([]models.AuditRecord, error) {
	filter.TargetType = models.AuditTargetAllergen
	filter.Limit, filter.Offset = normalizePage(filter.Limit, filter.Offset)

	records, err := s.audit.ListRecords(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing allergen audit records: %w", err)
	}
	return records, nil
}

func encodeAllergenCSV(rows []models.AllergenExportRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(allergenCSVHeader); err != nil {
		return nil, err
	}
	for _, row := range rows {
		description := ""
		if row.Description != nil {
			description = *row.Description
		}
		record := []string{
			strconv.FormatInt(row.ID, 10),
			row.Name,
			row.Category,
			strconv.FormatBool(row.IsMajorAllergen),
			description,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("encoding allergen csv: %w", err)
	}
	return buf.Bytes(), nil
}

// ensureAllergenNameFree fails when name belongs to an allergen other than
// exceptID. Names compare case-insensitively in the store.
func ensureAllergenNameFree(ctx context.Context, repo store.AllergenRepository, name string, exceptID int64) error {
	existing, err := repo.FindAllergenByName(ctx, name)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("checking allergen name: %w", err)
	case existing.AllergenID == exceptID:
		return nil
	default:
		return fmt.Errorf("allergen %s %w", name, ErrAlreadyExists)
	}
}

func trimAllergenInput(in models.AllergenInput) models.AllergenInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)
	return in
}

func allergenFromInput(in models.AllergenInput) models.Allergen {
	return models.Allergen{
		Name:            in.Name,
		Category:        in.Category,
		IsMajorAllergen: in.IsMajorAllergen,
		Description:     in.Description,
	}
}

func creationChanges(a models.Allergen) models.ChangeSet {
	changes := models.ChangeSet{}
	changes.Record("name", nil, a.Name)
	changes.Record("category", nil, a.Category)
	changes.Record("is_major_allergen", nil, a.IsMajorAllergen)
	if a.Description != nil {
		changes.Record("description", nil, *a.Description)
	}
	return changes
}
