package models

import "time"

// Restaurant is a catalog entry whose menu feeds recommendations while active.
type Restaurant struct {
	RestaurantID int64     `json:"id" db:"restaurant_id"`
	Name         string    `json:"name" db:"name"`
	Cuisine      *string   `json:"cuisine" db:"cuisine"`
	Address      *string   `json:"address" db:"address"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// RestaurantInput creates a restaurant.
type RestaurantInput struct {
	Name     string  `json:"name"`
	Cuisine  *string `json:"cuisine,omitempty"`
	Address  *string `json:"address,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// RestaurantUpdate is a partial restaurant update.
type RestaurantUpdate struct {
	Name     *string `json:"name,omitempty"`
	Cuisine  *string `json:"cuisine,omitempty"`
	Address  *string `json:"address,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// Apply copies the non-nil fields of u onto r.
func (u RestaurantUpdate) Apply(r *Restaurant) {
	if u.Name != nil {
		r.Name = *u.Name
	}
	if u.Cuisine != nil {
		r.Cuisine = u.Cuisine
	}
	if u.Address != nil {
		r.Address = u.Address
	}
	if u.IsActive != nil {
		r.IsActive = *u.IsActive
	}
}

// MenuItem is a dish offered by a restaurant. RestaurantName and Cuisine are
// joined from the owning restaurant on reads.
type MenuItem struct {
	MenuItemID     int64     `json:"id" db:"menu_item_id"`
	RestaurantID   int64     `json:"restaurant_id" db:"restaurant_id"`
	RestaurantName string    `json:"restaurant_name" db:"restaurant_name"`
	Cuisine        *string   `json:"cuisine" db:"cuisine"`
	Name           string    `json:"name" db:"name"`
	Description    *string   `json:"description" db:"description"`
	Price          *float64  `json:"price" db:"price"`
	Calories       *float64  `json:"calories" db:"calories"`
	Protein        *float64  `json:"protein" db:"protein"`
	Carbs          *float64  `json:"carbs" db:"carbs"`
	Fat            *float64  `json:"fat" db:"fat"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// MenuItemInput creates a menu item.
type MenuItemInput struct {
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Calories    *float64 `json:"calories,omitempty"`
	Protein     *float64 `json:"protein,omitempty"`
	Carbs       *float64 `json:"carbs,omitempty"`
	Fat         *float64 `json:"fat,omitempty"`
}

// Text joins name and description for keyword matching.
func (m MenuItem) Text() string {
	if m.Description == nil {
		return m.Name
	}
	return m.Name + " " + *m.Description
}

// Completeness counts the nutritional fields that are present.
func (m MenuItem) Completeness() int {
	n := 0
	for _, v := range []*float64{m.Calories, m.Protein, m.Carbs, m.Fat} {
		if v != nil {
			n++
		}
	}
	return n
}
