package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-nutri-keeper/internal/logger"
	"github.com/MKhiriev/go-nutri-keeper/models"
	"github.com/Masterminds/squirrel"
)

// catalogRepository is the PostgreSQL-backed implementation of
// [CatalogRepository]. Menu item reads always join the owning restaurant.
type catalogRepository struct {
	logger *logger.Logger
	db     querier
}

func menuItemSelect() squirrel.SelectBuilder {
	return psql.Select(menuItemColumns...).
		From("menu_items m").
		Join("restaurants r ON r.restaurant_id = m.restaurant_id")
}

// ListActiveMenuItems implements [CatalogRepository].
func (r *catalogRepository) ListActiveMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	return r.selectMenuItems(ctx, "*catalogRepository.ListActiveMenuItems",
		menuItemSelect().Where(squirrel.Eq{"r.is_active": true}).OrderBy("m.menu_item_id"))
}

// ListMenuItems returns the menu of one restaurant regardless of its state.
func (r *catalogRepository) ListMenuItems(ctx context.Context, restaurantID int64) ([]models.MenuItem, error) {
	return r.selectMenuItems(ctx, "*catalogRepository.ListMenuItems",
		menuItemSelect().Where(squirrel.Eq{"m.restaurant_id": restaurantID}).OrderBy("m.menu_item_id"))
}

func (r *catalogRepository) selectMenuItems(ctx context.Context, funcName string, builder squirrel.SelectBuilder) ([]models.MenuItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	items := make([]models.MenuItem, 0)
	if err = r.db.SelectContext(ctx, &items, query, args...); err != nil {
		log.Err(err).Str("func", funcName).Msg("error selecting menu items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return items, nil
}

// CreateMenuItem inserts item and returns it joined with its restaurant.
// A missing restaurant yields [ErrReferenceNotFound].
func (r *catalogRepository) CreateMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Insert("menu_items").
		Columns("restaurant_id", "name", "description", "price", "calories", "protein", "carbs", "fat").
		Values(item.RestaurantID, item.Name, item.Description, item.Price, item.Calories, item.Protein, item.Carbs, item.Fat).
		Suffix("RETURNING menu_item_id").
		ToSql()
	if err != nil {
		return models.MenuItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var itemID int64
	if err = r.db.GetContext(ctx, &itemID, query, args...); err != nil {
		log.Err(err).Str("func", "*catalogRepository.CreateMenuItem").Int64("restaurant_id", item.RestaurantID).Msg("error inserting menu item")
		return models.MenuItem{}, constraintError(err)
	}

	items, err := r.selectMenuItems(ctx, "*catalogRepository.CreateMenuItem",
		menuItemSelect().Where(squirrel.Eq{"m.menu_item_id": itemID}))
	if err != nil {
		return models.MenuItem{}, err
	}
	if len(items) == 0 {
		return models.MenuItem{}, ErrNotFound
	}

	return items[0], nil
}

// ListRestaurants returns every restaurant ordered by name.
func (r *catalogRepository) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(restaurantColumns...).From("restaurants").OrderBy("name", "restaurant_id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	restaurants := make([]models.Restaurant, 0)
	if err = r.db.SelectContext(ctx, &restaurants, query, args...); err != nil {
		log.Err(err).Str("func", "*catalogRepository.ListRestaurants").Msg("error listing restaurants")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return restaurants, nil
}

func (r *catalogRepository) GetRestaurant(ctx context.Context, restaurantID int64) (models.Restaurant, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(restaurantColumns...).
		From("restaurants").
		Where(squirrel.Eq{"restaurant_id": restaurantID}).
		ToSql()
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var restaurant models.Restaurant
	if err = r.db.GetContext(ctx, &restaurant, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Restaurant{}, ErrNotFound
		}
		log.Err(err).Str("func", "*catalogRepository.GetRestaurant").Int64("restaurant_id", restaurantID).Msg("error selecting restaurant")
		return models.Restaurant{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return restaurant, nil
}

func (r *catalogRepository) CreateRestaurant(ctx context.Context, restaurant models.Restaurant) (models.Restaurant, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Insert("restaurants").
		Columns("name", "cuisine", "address", "is_active").
		Values(restaurant.Name, restaurant.Cuisine, restaurant.Address, restaurant.IsActive).
		Suffix(returning(restaurantColumns)).
		ToSql()
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Restaurant
	if err = r.db.GetContext(ctx, &created, query, args...); err != nil {
		log.Err(err).Str("func", "*catalogRepository.CreateRestaurant").Msg("error inserting restaurant")
		return models.Restaurant{}, constraintError(err)
	}

	return created, nil
}

func (r *catalogRepository) UpdateRestaurant(ctx context.Context, restaurant models.Restaurant) (models.Restaurant, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Update("restaurants").
		Set("name", restaurant.Name).
		Set("cuisine", restaurant.Cuisine).
		Set("address", restaurant.Address).
		Set("is_active", restaurant.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"restaurant_id": restaurant.RestaurantID}).
		Suffix(returning(restaurantColumns)).
		ToSql()
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Restaurant
	if err = r.db.GetContext(ctx, &updated, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Restaurant{}, ErrNotFound
		}
		log.Err(err).Str("func", "*catalogRepository.UpdateRestaurant").Int64("restaurant_id", restaurant.RestaurantID).Msg("error updating restaurant")
		return models.Restaurant{}, constraintError(err)
	}

	return updated, nil
}
