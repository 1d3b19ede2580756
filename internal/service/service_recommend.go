package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-nutri-keeper/internal/logger"
	"github.com/MKhiriev/go-nutri-keeper/internal/metrics"
	"github.com/MKhiriev/go-nutri-keeper/internal/recommend"
	"github.com/MKhiriev/go-nutri-keeper/internal/validators"
	"github.com/MKhiriev/go-nutri-keeper/models"
)

// Metric labels for the two recommendation targets.
const (
	targetMeal       = "meal"
	targetRestaurant = "restaurant"
)

type recommendationService struct {
	engine *recommend.Engine

	validator validators.Validator
	metrics   *metrics.Metrics
	logger    *logger.Logger
}

func NewRecommendationService(engine *recommend.Engine, m *metrics.Metrics, logger *logger.Logger) RecommendationService {
	return &recommendationService{
		engine:    engine,
		validator: validators.NewCatalogValidator(),
		metrics:   m,
		logger:    logger,
	}
}

func (s *recommendationService) RecommendMeals(ctx context.Context, user models.User, req models.RecommendationRequest) (models.RecommendationResponse, error) {
	return s.recommend(ctx, targetMeal, user, req, s.engine.RecommendMeals)
}

func (s *recommendationService) RecommendRestaurants(ctx context.Context, user models.User, req models.RecommendationRequest) (models.RecommendationResponse, error) {
	return s.recommend(ctx, targetRestaurant, user, req, s.engine.RecommendRestaurants)
}

type recommendFunc func(ctx context.Context, user models.User, req models.RecommendationRequest) (recommend.Result, error)

func (s *recommendationService) recommend(
	ctx context.Context,
	target string,
	user models.User,
	req models.RecommendationRequest,
	run recommendFunc,
) (models.RecommendationResponse, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.RecommendationResponse{}, err
	}

	start := time.Now()
	result, err := run(ctx, user, req)
	if err != nil {
		log.Err(err).Str("func", "*recommendationService.recommend").Str("target", target).Int64("user_id", user.UserID).Msg("recommendation failed")
		return models.RecommendationResponse{}, fmt.Errorf("%w: %w", ErrRecommendationFailed, err)
	}
	elapsed := time.Since(start)

	s.metrics.ObserveRecommendation(target, string(result.ModeUsed), result.FellBack, elapsed)
	log.Debug().
		Str("target", target).
		Str("mode", string(result.ModeUsed)).
		Bool("fell_back", result.FellBack).
		Int("items", len(result.Items)).
		Dur("elapsed", elapsed).
		Msg("recommendation served")

	items := result.Items
	if items == nil {
		items = []models.RecommendedItem{}
	}
	return models.RecommendationResponse{Items: items}, nil
}
