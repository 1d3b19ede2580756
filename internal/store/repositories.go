package store

import "github.com/MKhiriev/go-nutri-keeper/internal/logger"

// Repositories groups every repository bound to the same querier: either the
// connection pool or one open transaction.
type Repositories struct {
	UserRepository     UserRepository
	ProfileRepository  ProfileRepository
	AllergenRepository AllergenRepository
	WellnessRepository WellnessRepository
	MealRepository     MealRepository
	GoalRepository     GoalRepository
	CatalogRepository  CatalogRepository
	AuditRepository    AuditRepository
}

func newRepositories(q querier, log *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:     &userRepository{db: q, logger: log},
		ProfileRepository:  &profileRepository{db: q, logger: log},
		AllergenRepository: &allergenRepository{db: q, logger: log},
		WellnessRepository: &wellnessRepository{db: q, logger: log},
		MealRepository:     &mealRepository{db: q, logger: log},
		GoalRepository:     &goalRepository{db: q, logger: log},
		CatalogRepository:  &catalogRepository{db: q, logger: log},
		AuditRepository:    &auditRepository{db: q, logger: log},
	}
}
