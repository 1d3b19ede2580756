package service

import (
	"github.com/MKhiriev/go-nutri-keeper/internal/adapter"
	"github.com/MKhiriev/go-nutri-keeper/internal/config"
	"github.com/MKhiriev/go-nutri-keeper/internal/crypto"
	"github.com/MKhiriev/go-nutri-keeper/internal/logger"
	"github.com/MKhiriev/go-nutri-keeper/internal/metrics"
	"github.com/MKhiriev/go-nutri-keeper/internal/recommend"
	"github.com/MKhiriev/go-nutri-keeper/internal/store"
)

// Adapters are the outbound integrations services depend on. Ranker may be
// nil, which makes every llm-mode request use the baseline scorer.
type Adapters struct {
	Mailer adapter.Mailer
	Ranker recommend.Ranker
}

type Services struct {
	AppInfoService        AppInfoService
	AuthService           AuthService
	UserService           UserService
	ProfileService        ProfileService
	AllergenService       AllergenService
	WellnessService       WellnessService
	MealService           MealService
	GoalService           GoalService
	CatalogService        CatalogService
	RecommendationService RecommendationService
}

func NewServices(storages *store.Storages, adapters Adapters, cfg config.StructuredConfig, m *metrics.Metrics, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, storages, logger)
	if err != nil {
		return nil, err
	}

	engine := recommend.NewEngine(
		storages.CatalogRepository,
		storages.ProfileRepository,
		storages.GoalRepository,
		storages.WellnessRepository,
		adapters.Ranker,
		recommend.Options{
			MaxResults: cfg.Recommend.MaxResults,
			LLMTimeout: cfg.Adapter.LLM.Timeout,
		},
	)

	return &Services{
		AppInfoService:        appInfo,
		AuthService:           NewAuthService(storages, adapters.Mailer, crypto.NewPasswordHasher(), cfg, m, logger),
		UserService:           NewUserService(storages, logger),
		ProfileService:        NewProfileService(storages, logger),
		AllergenService:       NewAllergenService(storages, logger),
		WellnessService:       NewWellnessService(storages, crypto.NewFieldCipher(cfg.App.EncryptionKey), logger),
		MealService:           NewMealService(storages, logger),
		GoalService:           NewGoalService(storages, logger),
		CatalogService:        NewCatalogService(storages, logger),
		RecommendationService: NewRecommendationService(engine, m, logger),
	}, nil
}
