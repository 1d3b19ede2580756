package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-nutri-keeper/internal/logger"
	"github.com/MKhiriev/go-nutri-keeper/internal/store"
	"github.com/MKhiriev/go-nutri-keeper/internal/validators"
	"github.com/MKhiriev/go-nutri-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestProfileService_SaveProfile_CreatesOnFirstWrite(t *testing.T) {
	m, _ := newStoreMocks(t)
	svc := NewProfileService(m.storages, logger.Nop())

	m.inTx()
	m.profiles.EXPECT().EnsureProfile(gomock.Any(), int64(7)).Return(models.HealthProfile{ProfileID: 2, UserID: 7}, nil)
	m.profiles.EXPECT().SaveProfile(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p models.HealthProfile) (models.HealthProfile, error) {
			require.NotNil(t, p.HeightCM)
			assert.Equal(t, 172.0, *p.HeightCM)
			assert.Nil(t, p.WeightKG)
			return p, nil
		},
	)

	profile, err := svc.SaveProfile(context.Background(), 7, models.HealthProfileUpdate{HeightCM: ptr(172.0)})
	require.NoError(t, err)
	assert.Equal(t, int64(2), profile.ProfileID)
}

func TestProfileService_SaveProfile_RejectsNonPositive(t *testing.T) {
	m, _ := newStoreMocks(t)
	svc := NewProfileService(m.storages, logger.Nop())

	_, err := svc.SaveProfile(context.Background(), 7, models.HealthProfileUpdate{WeightKG: ptr(-3.0)})

	errs, ok := validators.AsErrors(err)
	require.True(t, ok)
	assert.Equal(t, []string{"body", "weight_kg"}, errs[0].Loc)
}

func TestProfileService_GetProfile_Missing(t *testing.T) {
	m, _ := newStoreMocks(t)
	svc := NewProfileService(m.storages, logger.Nop())

	m.profiles.EXPECT().GetProfile(gomock.Any(), int64(7)).Return(models.HealthProfile{}, store.ErrNotFound)

	_, err := svc.GetProfile(context.Background(), 7)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "health profile not found", err.Error())
}

func TestProfileService_CreateAllergy(t *testing.T) {
	in := models.UserAllergyInput{AllergenID: 3, Severity: models.SeveritySevere}

	t.Run("links profile and allergen", func(t *testing.T) {
		m, _ := newStoreMocks(t)
		svc := NewProfileService(m.storages, logger.Nop())

		m.inTx()
		m.allergens.EXPECT().GetAllergen(gomock.Any(), int64(3)).Return(peanut(), nil)
		m.profiles.EXPECT().EnsureProfile(gomock.Any(), int64(7)).Return(models.HealthProfile{ProfileID: 2, UserID: 7}, nil)
		m.profiles.EXPECT().CreateAllergy(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a models.UserAllergy) (models.UserAllergy, error) {
				assert.Equal(t, int64(2), a.ProfileID)
				assert.Equal(t, "Peanuts", a.AllergenName)
				a.AllergyID = 5
				return a, nil
			},
		)

		allergy, err := svc.CreateAllergy(context.Background(), 7, in)
		require.NoError(t, err)
		assert.Equal(t, int64(5), allergy.AllergyID)
	})

	t.Run("unknown allergen", func(t *testing.T) {
		m, _ := newStoreMocks(t)
		svc := NewProfileService(m.storages, logger.Nop())

		m.inTx()
		m.allergens.EXPECT().GetAllergen(gomock.Any(), int64(3)).Return(models.Allergen{}, store.ErrNotFound)

		_, err := svc.CreateAllergy(context.Background(), 7, in)
		require.ErrorIs(t, err, ErrNotFound)
		assert.Equal(t, "allergen not found", err.Error())
	})

	t.Run("duplicate", func(t *testing.T) {
		m, _ := newStoreMocks(t)
		svc := NewProfileService(m.storages, logger.Nop())

		m.inTx()
		m.allergens.EXPECT().GetAllergen(gomock.Any(), int64(3)).Return(peanut(), nil)
		m.profiles.EXPECT().EnsureProfile(gomock.Any(), int64(7)).Return(models.HealthProfile{ProfileID: 2}, nil)
		m.profiles.EXPECT().CreateAllergy(gomock.Any(), gomock.Any()).Return(models.UserAllergy{}, store.ErrAlreadyExists)

		_, err := svc.CreateAllergy(context.Background(), 7, in)
		require.ErrorIs(t, err, ErrAlreadyExists)
		assert.Equal(t, "allergy to Peanuts already exists", err.Error())
	})

	t.Run("bad severity", func(t *testing.T) {
		m, _ := newStoreMocks(t)
		svc := NewProfileService(m.storages, logger.Nop())

		_, err := svc.CreateAllergy(context.Background(), 7, models.UserAllergyInput{AllergenID: 3, Severity: "deadly"})

		errs, ok := validators.AsErrors(err)
		require.True(t, ok)
		assert.Equal(t, []string{"body", "severity"}, errs[0].Loc)
	})
}

func TestProfileService_UpdateAllergy_OtherUsersRowIsNotFound(t *testing.T) {
	m, _ := newStoreMocks(t)
	svc := NewProfileService(m.storages, logger.Nop())

	m.profiles.EXPECT().GetAllergy(gomock.Any(), int64(7), int64(99)).Return(models.UserAllergy{}, store.ErrNotFound)

	_, err := svc.UpdateAllergy(context.Background(), 7, 99, models.UserAllergyUpdate{Severity: ptr(models.SeverityMild)})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProfileService_CreatePreference_TrimsName(t *testing.T) {
	m, _ := newStoreMocks(t)
	svc := NewProfileService(m.storages, logger.Nop())

	m.inTx()
	m.profiles.EXPECT().EnsureProfile(gomock.Any(), int64(7)).Return(models.HealthProfile{ProfileID: 2}, nil)
	m.profiles.EXPECT().CreatePreference(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p models.DietaryPreference) (models.DietaryPreference, error) {
			assert.Equal(t, "vegan", p.PreferenceName)
			assert.True(t, p.IsStrict)
			return p, nil
		},
	)

	_, err := svc.CreatePreference(context.Background(), 7, models.DietaryPreferenceInput{
		PreferenceType: models.PreferenceDiet,
		PreferenceName: "  vegan ",
		IsStrict:       true,
	})
	require.NoError(t, err)
}

func TestProfileService_UpdatePreference_Applies(t *testing.T) {
	m, _ := newStoreMocks(t)
	svc := NewProfileService(m.storages, logger.Nop())

	m.profiles.EXPECT().GetPreference(gomock.Any(), int64(7), int64(4)).
		Return(models.DietaryPreference{PreferenceID: 4, PreferenceType: models.PreferenceDiet, PreferenceName: "vegan"}, nil)
	m.profiles.EXPECT().UpdatePreference(gomock.Any(), int64(7), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, p models.DietaryPreference) (models.DietaryPreference, error) {
			assert.Equal(t, "vegetarian", p.PreferenceName)
			return p, nil
		},
	)

	got, err := svc.UpdatePreference(context.Background(), 7, 4, models.DietaryPreferenceUpdate{PreferenceName: ptr(" vegetarian")})
	require.NoError(t, err)
	assert.Equal(t, "vegetarian", got.PreferenceName)
}
