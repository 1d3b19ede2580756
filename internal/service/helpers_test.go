package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-nutri-keeper/internal/mock"
	"github.com/MKhiriev/go-nutri-keeper/internal/store"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

// storeMocks bundles one mock per repository behind a *store.Storages.
type storeMocks struct {
	uow       *mock.MockUnitOfWork
	users     *mock.MockUserRepository
	profiles  *mock.MockProfileRepository
	allergens *mock.MockAllergenRepository
	wellness  *mock.MockWellnessRepository
	meals     *mock.MockMealRepository
	goals     *mock.MockGoalRepository
	catalog   *mock.MockCatalogRepository
	audit     *mock.MockAuditRepository

	storages *store.Storages
}

func newStoreMocks(t *testing.T) (*storeMocks, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &storeMocks{
		uow:       mock.NewMockUnitOfWork(ctrl),
		users:     mock.NewMockUserRepository(ctrl),
		profiles:  mock.NewMockProfileRepository(ctrl),
		allergens: mock.NewMockAllergenRepository(ctrl),
		wellness:  mock.NewMockWellnessRepository(ctrl),
		meals:     mock.NewMockMealRepository(ctrl),
		goals:     mock.NewMockGoalRepository(ctrl),
		catalog:   mock.NewMockCatalogRepository(ctrl),
		audit:     mock.NewMockAuditRepository(ctrl),
	}
	m.storages = &store.Storages{
		Repositories: &store.Repositories{
			UserRepository:     m.users,
			ProfileRepository:  m.profiles,
			AllergenRepository: m.allergens,
			WellnessRepository: m.wellness,
			MealRepository:     m.meals,
			GoalRepository:     m.goals,
			CatalogRepository:  m.catalog,
			AuditRepository:    m.audit,
		},
		UnitOfWork: m.uow,
	}
	return m, ctrl
}

// inTxOnce is inTx for UnitOfWork.DoOnce.
func (m *storeMocks) inTxOnce() *gomock.Call {
	return m.uow.EXPECT().DoOnce(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, *store.Repositories) error) error {
			return fn(ctx, m.storages.Repositories)
		},
	)
}

// inTx makes the next UnitOfWork.Do run fn against the same mocked
// repositories and return whatever fn returns, as a rolled back or committed
// transaction would.
func (m *storeMocks) inTx() *gomock.Call {
	return m.uow.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, *store.Repositories) error) error {
			return fn(ctx, m.storages.Repositories)
		},
	)
}
