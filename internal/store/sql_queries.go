package store

import (
	"strings"

	"github.com/MKhiriev/go-nutri-keeper/models"
	"github.com/Masterminds/squirrel"
)

// Column lists shared by SELECT and RETURNING clauses.
var (
	userColumns = []string{
		"user_id", "email", "username", "password_hash", "account_status", "email_verified",
		"role", "timezone", "verification_token", "verification_token_expires_at",
		"created_at", "updated_at",
	}
	profileColumns = []string{
		"profile_id", "user_id", "height_cm", "weight_kg", "activity_level", "metabolic_rate",
		"created_at", "updated_at",
	}
	allergyColumns = []string{
		"ua.allergy_id", "ua.profile_id", "ua.allergen_id", "a.name AS allergen_name", "ua.severity",
		"ua.diagnosis_date", "ua.reaction_type", "ua.notes", "ua.is_verified", "ua.created_at", "ua.updated_at",
	}
	preferenceColumns = []string{
		"dp.preference_id", "dp.profile_id", "dp.preference_type", "dp.preference_name", "dp.is_strict",
		"dp.reason", "dp.notes", "dp.created_at", "dp.updated_at",
	}
	allergenColumns = []string{
		"allergen_id", "name", "category", "is_major_allergen", "description", "created_at", "updated_at",
	}
	moodLogColumns = []string{
		"log_id", "user_id", "occurred_at", "log_date", "mood_score", "energy_level", "notes", "created_at", "updated_at",
	}
	stressLogColumns = []string{
		"log_id", "user_id", "occurred_at", "log_date", "stress_level", "triggers", "notes", "created_at", "updated_at",
	}
	sleepLogColumns = []string{
		"log_id", "user_id", "occurred_at", "log_date", "sleep_quality", "duration_hours", "notes", "created_at", "updated_at",
	}
	mealColumns = []string{
		"meal_id", "user_id", "meal_type", "meal_time", "notes", "total_calories", "total_protein",
		"total_carbs", "total_fat", "created_at", "updated_at",
	}
	foodItemColumns = []string{
		"food_item_id", "meal_id", "name", "portion_size", "portion_unit", "calories", "protein", "carbs", "fat",
	}
	goalColumns = []string{
		"goal_id", "user_id", "goal_type", "target_type", "target_value", "current_value",
		"start_date", "end_date", "status", "created_at", "updated_at",
	}
	restaurantColumns = []string{
		"restaurant_id", "name", "cuisine", "address", "is_active", "created_at", "updated_at",
	}
	menuItemColumns = []string{
		"m.menu_item_id", "m.restaurant_id", "r.name AS restaurant_name", "r.cuisine", "m.name", "m.description",
		"m.price", "m.calories", "m.protein", "m.carbs", "m.fat", "m.created_at",
	}
	auditColumns = []string{
		"audit_id", "target_type", "target_id", "target_name", "actor_id", "actor_name", "action", "changes", "created_at",
	}
)

// returning renders a RETURNING clause for columns.
func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// constraintUsersUsername is the unique index on LOWER(username).
const constraintUsersUsername = "users_username_lower_key"

const (
	ensureProfile = `INSERT INTO health_profiles (user_id) VALUES ($1)
		ON CONFLICT (user_id) DO NOTHING;`

	saveProfile = `INSERT INTO health_profiles (user_id, height_cm, weight_kg, activity_level, metabolic_rate)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE SET
			height_cm = EXCLUDED.height_cm,
			weight_kg = EXCLUDED.weight_kg,
			activity_level = EXCLUDED.activity_level,
			metabolic_rate = EXCLUDED.metabolic_rate,
			updated_at = NOW()
		RETURNING profile_id, user_id, height_cm, weight_kg, activity_level, metabolic_rate, created_at, updated_at;`

	countAllergenReferences = `SELECT COUNT(*) FROM user_allergies WHERE allergen_id = $1;`

	moodStressAverages = `SELECT
			(SELECT AVG(mood_score)::float8 FROM mood_logs WHERE user_id = $1 AND log_date >= $2) AS avg_mood,
			(SELECT AVG(stress_level)::float8 FROM stress_logs WHERE user_id = $1 AND log_date >= $2) AS avg_stress;`
)

// buildListUsersQuery builds the paginated admin user listing and its count.
func buildListUsersQuery(filter models.UserFilter) (squirrel.SelectBuilder, squirrel.SelectBuilder) {
	where := squirrel.And{}
	if filter.Role != nil {
		where = append(where, squirrel.Eq{"role": *filter.Role})
	}
	if filter.Status != nil {
		where = append(where, squirrel.Eq{"account_status": *filter.Status})
	}

	list := psql.Select(userColumns...).
		From("users").
		Where(where).
		OrderBy("user_id").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset))
	count := psql.Select("COUNT(*)").From("users").Where(where)

	return list, count
}

// buildSearchAllergensQuery builds the admin allergen search and its count.
func buildSearchAllergensQuery(search models.AllergenSearch) (squirrel.SelectBuilder, squirrel.SelectBuilder) {
	where := squirrel.And{}
	if q := strings.TrimSpace(search.Query); q != "" {
		like := "%" + escapeLike(q) + "%"
		where = append(where, squirrel.Or{
			squirrel.ILike{"name": like},
			squirrel.ILike{"description": like},
		})
	}
	if c := strings.TrimSpace(search.Category); c != "" {
		where = append(where, squirrel.Expr("LOWER(category) = LOWER(?)", c))
	}
	if search.IsMajor != nil {
		where = append(where, squirrel.Eq{"is_major_allergen": *search.IsMajor})
	}

	list := psql.Select(allergenColumns...).
		From("allergens").
		Where(where).
		OrderBy("name", "allergen_id").
		Limit(uint64(search.Limit)).
		Offset(uint64(search.Offset))
	count := psql.Select("COUNT(*)").From("allergens").Where(where)

	return list, count
}

// buildListWellnessQuery selects one kind of wellness log for a user within
// an optional date window, newest first.
func buildListWellnessQuery(table string, columns []string, userID int64, filter models.WellnessFilter) squirrel.SelectBuilder {
	q := psql.Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID})
	if filter.Start != nil {
		q = q.Where(squirrel.GtOrEq{"log_date": *filter.Start})
	}
	if filter.End != nil {
		q = q.Where(squirrel.LtOrEq{"log_date": *filter.End})
	}
	return q.OrderBy("occurred_at DESC", "log_id DESC")
}

// buildListMealsQuery selects a user's meals within optional bounds, newest first.
func buildListMealsQuery(userID int64, filter models.MealFilter) squirrel.SelectBuilder {
	q := psql.Select(mealColumns...).
		From("meals").
		Where(squirrel.Eq{"user_id": userID})
	if filter.Start != nil {
		q = q.Where(squirrel.GtOrEq{"meal_time": *filter.Start})
	}
	if filter.End != nil {
		q = q.Where(squirrel.LtOrEq{"meal_time": *filter.End})
	}
	if filter.MealType != nil {
		q = q.Where(squirrel.Eq{"meal_type": *filter.MealType})
	}
	return q.OrderBy("meal_time DESC", "meal_id DESC")
}

// buildListAuditQuery selects audit records of one target type, newest first.
func buildListAuditQuery(filter models.AuditFilter) squirrel.SelectBuilder {
	q := psql.Select(auditColumns...).
		From("audit_logs").
		Where(squirrel.Eq{"target_type": filter.TargetType})
	if filter.TargetID != nil {
		q = q.Where(squirrel.Eq{"target_id": *filter.TargetID})
	}
	q = q.OrderBy("created_at DESC", "audit_id DESC")
	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}
	return q
}

// escapeLike escapes LIKE wildcards in user input.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
