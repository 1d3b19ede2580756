package models

import "time"

// MaxBulkAllergens caps the size of a single bulk import.
const MaxBulkAllergens = 100

// Allergen is a global catalog entry. Names are unique case-insensitively.
type Allergen struct {
	AllergenID      int64     `json:"id" db:"allergen_id"`
	Name            string    `json:"name" db:"name"`
	Category        string    `json:"category" db:"category"`
	IsMajorAllergen bool      `json:"is_major_allergen" db:"is_major_allergen"`
	Description     *string   `json:"description" db:"description"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// AllergenInput is the body used to create an allergen.
type AllergenInput struct {
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	IsMajorAllergen bool    `json:"is_major_allergen"`
	Description     *string `json:"description,omitempty"`
}

// AllergenUpdate is a partial allergen update.
type AllergenUpdate struct {
	Name            *string `json:"name,omitempty"`
	Category        *string `json:"category,omitempty"`
	IsMajorAllergen *bool   `json:"is_major_allergen,omitempty"`
	Description     *string `json:"description,omitempty"`
}

// BulkAllergenRequest is the body of the bulk import endpoint.
type BulkAllergenRequest struct {
	Allergens []AllergenInput `json:"allergens"`
}

// AllergenSearch holds admin search filters.
type AllergenSearch struct {
	Query    string
	Category string
	IsMajor  *bool
	Limit    int
	Offset   int
}

// AllergenPage is a paginated allergen search result.
type AllergenPage struct {
	Items  []Allergen `json:"items"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

// ExportFormat selects the catalog export encoding.
type ExportFormat string

const (
	ExportJSON ExportFormat = "json"
	ExportCSV  ExportFormat = "csv"
)

// AllergenExportRow is one exported catalog entry.
type AllergenExportRow struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	IsMajorAllergen bool    `json:"is_major_allergen"`
	Description     *string `json:"description"`
}
