package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/MKhiriev/go-nutri-keeper/internal/logger"
	"github.com/MKhiriev/go-nutri-keeper/internal/store"
	"github.com/MKhiriev/go-nutri-keeper/internal/validators"
	"github.com/MKhiriev/go-nutri-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func peanut() models.Allergen {
	return models.Allergen{AllergenID: 3, Name: "Peanuts", Category: "nuts", IsMajorAllergen: true}
}

func decodeChanges(t *testing.T, r models.AuditRecord) map[string]models.FieldChange {
	t.Helper()
	var changes map[string]models.FieldChange
	require.NoError(t, json.Unmarshal(r.Changes, &changes))
	return changes
}

func TestAllergenService_CreateAllergen_Audited(t *testing.T) {
	m, _ := newStoreMocks(t)
	svc := NewAllergenService(m.storages, logger.Nop())
	ctx := context.Background()

	m.inTx()
	m.allergens.EXPECT().FindAllergenByName(gomock.Any(), "Peanuts").Return(models.Allergen{}, store.ErrNotFound)
	m.allergens.EXPECT().CreateAllergen(gomock.Any(), models.Allergen{Name: "Peanuts", Category: "nuts", IsMajorAllergen: true}).
		Return(peanut(), nil)
	m.audit.EXPECT().AppendRecord(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r models.AuditRecord) (models.AuditRecord, error) {
			assert.Equal(t, models.AuditCreate, r.Action)
			assert.Equal(t, models.AuditTargetAllergen, r.TargetType)
			assert.Equal(t, int64(3), r.TargetID)
			changes := decodeChanges(t, r)
			assert.Equal(t, models.FieldChange{Old: nil, New: "Peanuts"}, changes["name"])
			assert.NotContains(t, changes, "description")
			return r, nil
		},
	)

	created, err := svc.CreateAllergen(ctx, testAdmin, models.AllergenInput{Name: "  Peanuts ", Category: "nuts", IsMajorAllergen: true})
	require.NoError(t, err)
	assert.Equal(t, int64(3), created.AllergenID)
}

func TestAllergenService_CreateAllergen_NameTaken(t *testing.T) {
	m, _ := newStoreMocks(t)
	svc := NewAllergenService(m.storages, logger.Nop())

	m.inTx()
	m.allergens.EXPECT().FindAllergenByName(gomock.Any(), "peanuts").Return(peanut(), nil)

	_, err := svc.CreateAllergen(context.Background(), testAdmin, models.AllergenInput{Name: "peanuts", Category: "nuts"})

	require.ErrorIs(t, err, ErrAlreadyExists)
	assert.Contains(t, err.Error(), "already exists")
}

func TestAllergenService_UpdateAllergen_RecordsOnlyChangedFields(t *testing.T) {
	m, _ := newStoreMocks(t)
	svc := NewAllergenService(m.storages, logger.Nop())

	m.inTx()
	m.allergens.EXPECT().GetAllergen(gomock.Any(), int64(3)).Return(peanut(), nil)
	m.allergens.EXPECT().UpdateAllergen(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a models.Allergen) (models.Allergen, error) {
			assert.Equal(t, "legumes", a.Category)
			return a, nil
		},
	)
	m.audit.EXPECT().AppendRecord(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r models.AuditRecord) (models.AuditRecord, error) {
			assert.Equal(t, models.AuditUpdate, r.Action)
			assert.Equal(t, map[string]models.FieldChange{
				"category": {Old: "nuts", New: "legumes"},
			}, decodeChanges(t, r))
			return r, nil
		},
	)

	updated, err := svc.UpdateAllergen(context.Background(), testAdmin, 3, models.AllergenUpdate{
		Name:            ptr("Peanuts"),
		Category:        ptr("legumes"),
		IsMajorAllergen: ptr(true),
	})
	require.NoError(t, err)
	assert.Equal(t, "legumes", updated.Category)
}

func TestAllergenService_UpdateAllergen_NoChanges(t *testing.T) {
	m, _ := newStoreMocks(t)
	svc := NewAllergenService(m.storages, logger.Nop())

	m.inTx()
	m.allergens.EXPECT().GetAllergen(gomock.Any(), int64(3)).Return(peanut(), nil)

	got, err := svc.UpdateAllergen(context.Background(), testAdmin, 3, models.AllergenUpdate{Category: ptr("nuts")})
	require.NoError(t, err)
	assert.Equal(t, peanut(), got)
}

func TestAllergenService_UpdateAllergen_RenameCollision(t *testing.T) {
	m, _ := newStoreMocks(t)
	svc := NewAllergenService(m.storages, logger.Nop())

	m.inTx()
	m.allergens.EXPECT().GetAllergen(gomock.Any(), int64(3)).Return(peanut(), nil)
	m.allergens.EXPECT().FindAllergenByName(gomock.Any(), "Milk").Return(models.Allergen{AllergenID: 4, Name: "Milk"}, nil)

	_, err := svc.UpdateAllergen(context.Background(), testAdmin, 3, models.AllergenUpdate{Name: ptr("Milk")})
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestAllergenService_DeleteAllergen(t *testing.T) {
	t.Run("in use", func(t *testing.T) {
		m, _ := newStoreMocks(t)
		svc := NewAllergenService(m.storages, logger.Nop())

		m.inTx()
		m.allergens.EXPECT().GetAllergen(gomock.Any(), int64(3)).Return(peanut(), nil)
		m.allergens.EXPECT().CountAllergenReferences(gomock.Any(), int64(3)).Return(2, nil)

		err := svc.DeleteAllergen(context.Background(), testAdmin, 3)
		assert.ErrorIs(t, err, ErrAllergenInUse)
	})

	t.Run("unreferenced", func(t *testing.T) {
		m, _ := newStoreMocks(t)
		svc := NewAllergenService(m.storages, logger.Nop())

		m.inTx()
		m.allergens.EXPECT().GetAllergen(gomock.Any(), int64(3)).Return(peanut(), nil)
		m.allergens.EXPECT().CountAllergenReferences(gomock.Any(), int64(3)).Return(0, nil)
		m.allergens.EXPECT().DeleteAllergen(gomock.Any(), int64(3)).Return(nil)
		m.audit.EXPECT().AppendRecord(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r models.AuditRecord) (models.AuditRecord, error) {
				assert.Equal(t, models.AuditDelete, r.Action)
				assert.Equal(t, "Peanuts", r.TargetName)
				assert.Equal(t, models.FieldChange{Old: "Peanuts", New: nil}, decodeChanges(t, r)["name"])
				return r, nil
			},
		)

		require.NoError(t, svc.DeleteAllergen(context.Background(), testAdmin, 3))
	})

	t.Run("missing", func(t *testing.T) {
		m, _ := newStoreMocks(t)
		svc := NewAllergenService(m.storages, logger.Nop())

		m.inTx()
		m.allergens.EXPECT().GetAllergen(gomock.Any(), int64(9)).Return(models.Allergen{}, store.ErrNotFound)

		err := svc.DeleteAllergen(context.Background(), testAdmin, 9)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestAllergenService_BulkCreate_RejectsWholeBatchOnExistingName(t *testing.T) {
	m, _ := newStoreMocks(t)
	svc := NewAllergenService(m.storages, logger.Nop())

	m.inTx()
	m.allergens.EXPECT().FindAllergenByName(gomock.Any(), "Sesame").Return(models.Allergen{}, store.ErrNotFound)
	m.allergens.EXPECT().FindAllergenByName(gomock.Any(), "Peanuts").Return(peanut(), nil)

	_, err := svc.BulkCreateAllergens(context.Background(), testAdmin, models.BulkAllergenRequest{
		Allergens: []models.AllergenInput{
			{Name: "Sesame", Category: "seeds"},
			{Name: "Peanuts", Category: "nuts"},
		},
	})

	errs, ok := validators.AsErrors(err)
	require.True(t, ok)
	require.Len(t, errs, 1)
	assert.Equal(t, []string{"body", "allergens.1.name"}, errs[0].Loc)
}

func TestAllergenService_BulkCreate_DuplicateInsideBatch(t *testing.T) {
	m, _ := newStoreMocks(t)
	svc := NewAllergenService(m.storages, logger.Nop())

	_, err := svc.BulkCreateAllergens(context.Background(), testAdmin, models.BulkAllergenRequest{
		Allergens: []models.AllergenInput{
			{Name: "Sesame", Category: "seeds"},
			{Name: "sesame", Category: "seeds"},
		},
	})

	errs, ok := validators.AsErrors(err)
	require.True(t, ok)
	assert.Equal(t, []string{"body", "allergens.1.name"}, errs[0].Loc)
}

func TestAllergenService_BulkCreate_Success(t *testing.T) {
	m, _ := newStoreMocks(t)
	svc := NewAllergenService(m.storages, logger.Nop())

	m.inTx()
	m.allergens.EXPECT().FindAllergenByName(gomock.Any(), gomock.Any()).Times(2).Return(models.Allergen{}, store.ErrNotFound)
	m.allergens.EXPECT().CreateAllergen(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
		func(_ context.Context, a models.Allergen) (models.Allergen, error) {
			a.AllergenID = int64(len(a.Name))
			return a, nil
		},
	)
	m.audit.EXPECT().AppendRecord(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
		func(_ context.Context, r models.AuditRecord) (models.AuditRecord, error) {
			assert.Equal(t, models.AuditBulkImport, r.Action)
			return r, nil
		},
	)

	created, err := svc.BulkCreateAllergens(context.Background(), testAdmin, models.BulkAllergenRequest{
		Allergens: []models.AllergenInput{
			{Name: "Sesame", Category: "seeds"},
			{Name: "Mustard", Category: "seeds"},
		},
	})
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.Equal(t, "Sesame", created[0].Name)
	assert.Equal(t, "Mustard", created[1].Name)
}

func TestAllergenService_ExportAllergens(t *testing.T) {
	description := "tree nut, \"raw\""
	catalog := []models.Allergen{
		peanut(),
		{AllergenID: 5, Name: "Cashew", Category: "nuts", Description: &description},
	}

	t.Run("csv", func(t *testing.T) {
		m, _ := newStoreMocks(t)
		svc := NewAllergenService(m.storages, logger.Nop())
		m.allergens.EXPECT().ListAllergens(gomock.Any(), "", "").Return(catalog, nil)

		body, contentType, err := svc.ExportAllergens(context.Background(), models.ExportCSV)
		require.NoError(t, err)
		assert.Equal(t, ContentTypeCSV, contentType)

		lines := strings.Split(strings.TrimSpace(string(body)), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "id,name,category,is_major_allergen,description", lines[0])
		assert.Equal(t, "3,Peanuts,nuts,true,", lines[1])
		assert.Equal(t, `5,Cashew,nuts,false,"tree nut, ""raw"""`, lines[2])
	})

	t.Run("json by default", func(t *testing.T) {
		m, _ := newStoreMocks(t)
		svc := NewAllergenService(m.storages, logger.Nop())
		m.allergens.EXPECT().ListAllergens(gomock.Any(), "", "").Return(catalog, nil)

		body, contentType, err := svc.ExportAllergens(context.Background(), "")
		require.NoError(t, err)
		assert.Equal(t, ContentTypeJSON, contentType)

		var rows []models.AllergenExportRow
		require.NoError(t, json.Unmarshal(body, &rows))
		require.Len(t, rows, 2)
		assert.Equal(t, "Cashew", rows[1].Name)
	})

	t.Run("unknown format", func(t *testing.T) {
		m, _ := newStoreMocks(t)
		svc := NewAllergenService(m.storages, logger.Nop())

		_, _, err := svc.ExportAllergens(context.Background(), "xml")

		errs, ok := validators.AsErrors(err)
		require.True(t, ok)
		assert.Equal(t, []string{"query", "format"}, errs[0].Loc)
	})
}

func TestAllergenService_SearchAllergens_Normalizes(t *testing.T) {
	m, _ := newStoreMocks(t)
	svc := NewAllergenService(m.storages, logger.Nop())

	m.allergens.EXPECT().SearchAllergens(gomock.Any(), models.AllergenSearch{Query: "nut", Limit: 50}).
		Return(models.AllergenPage{Total: 1, Items: []models.Allergen{peanut()}}, nil)

	page, err := svc.SearchAllergens(context.Background(), models.AllergenSearch{Query: " nut "})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
}
