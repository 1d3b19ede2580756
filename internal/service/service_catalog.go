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

type catalogService struct {
	catalog store.CatalogRepository

	validator validators.Validator
	logger    *logger.Logger
}

func NewCatalogService(storages *store.Storages, logger *logger.Logger) CatalogService {
	return &catalogService{
		catalog:   storages.CatalogRepository,
		validator: validators.NewCatalogValidator(),
		logger:    logger,
	}
}

func (s *catalogService) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	restaurants, err := s.catalog.ListRestaurants(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing restaurants: %w", err)
	}
	return restaurants, nil
}

func (s *catalogService) GetRestaurant(ctx context.Context, restaurantID int64) (models.Restaurant, error) {
	restaurant, err := s.catalog.GetRestaurant(ctx, restaurantID)
	if err != nil {
		return models.Restaurant{}, fromStore(err, "restaurant")
	}
	return restaurant, nil
}

// CreateRestaurant adds a restaurant, active unless the input says otherwise.
func (s *catalogService) CreateRestaurant(ctx context.Context, in models.RestaurantInput) (models.Restaurant, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := s.validator.Validate(ctx, in); err != nil {
		return models.Restaurant{}, err
	}

	restaurant := models.Restaurant{
		Name:     in.Name,
		Cuisine:  in.Cuisine,
		Address:  in.Address,
		IsActive: true,
	}
	if in.IsActive != nil {
		restaurant.IsActive = *in.IsActive
	}

	created, err := s.catalog.CreateRestaurant(ctx, restaurant)
	if err != nil {
		return models.Restaurant{}, fromStore(err, "restaurant "+in.Name)
	}
	return created, nil
}

func (s *catalogService) UpdateRestaurant(ctx context.Context, restaurantID int64, upd models.RestaurantUpdate) (models.Restaurant, error) {
	if err := s.validator.Validate(ctx, upd); err != nil {
		return models.Restaurant{}, err
	}

	restaurant, err := s.catalog.GetRestaurant(ctx, restaurantID)
	if err != nil {
		return models.Restaurant{}, fromStore(err, "restaurant")
	}

	upd.Apply(&restaurant)
	updated, err := s.catalog.UpdateRestaurant(ctx, restaurant)
	if err != nil {
		return models.Restaurant{}, fromStore(err, "restaurant")
	}
	return updated, nil
}

func (s *catalogService) ListMenuItems(ctx context.Context, restaurantID int64) ([]models.MenuItem, error) {
	if _, err := s.catalog.GetRestaurant(ctx, restaurantID); err != nil {
		return nil, fromStore(err, "restaurant")
	}

	items, err := s.catalog.ListMenuItems(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("listing menu items: %w", err)
	}
	return items, nil
}

func (s *catalogService) CreateMenuItem(ctx context.Context, restaurantID int64, in models.MenuItemInput) (models.MenuItem, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := s.validator.Validate(ctx, in); err != nil {
		return models.MenuItem{}, err
	}

	created, err := s.catalog.CreateMenuItem(ctx, models.MenuItem{
		RestaurantID: restaurantID,
		Name:         in.Name,
		Description:  in.Description,
		Price:        in.Price,
		Calories:     in.Calories,
		Protein:      in.Protein,
		Carbs:        in.Carbs,
		Fat:          in.Fat,
	})
	if err != nil {
		return models.MenuItem{}, fromStore(err, "restaurant")
	}
	return created, nil
}
