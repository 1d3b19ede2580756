package http

import (
	"net/http"

	"github.com/MKhiriev/go-nutri-keeper/internal/utils"
	"github.com/MKhiriev/go-nutri-keeper/models"
)

func (h *Handler) listMeals(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	q := newQueryParams(r)
	filter := models.MealFilter{
		Start:    q.optTime("start"),
		End:      q.optTime("end"),
		MealType: optEnum(q, "meal_type", models.MealTypes),
	}
	if err := q.err(); err != nil {
		writeError(w, r, err)
		return
	}

	meals, err := h.services.MealService.ListMeals(r.Context(), user.UserID, filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, nonNil(meals), http.StatusOK)
}

func (h *Handler) createMeal(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	var in models.MealInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	meal, err := h.services.MealService.CreateMeal(r.Context(), user.UserID, in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, meal, http.StatusCreated)
}

func (h *Handler) getMeal(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	meal, err := h.services.MealService.GetMeal(r.Context(), user.UserID, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, meal, http.StatusOK)
}

// updateMeal replaces the food items only when the body carries food_items.
func (h *Handler) updateMeal(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var upd models.MealUpdate
	if err = decodeJSON(w, r, &upd); err != nil {
		writeError(w, r, err)
		return
	}
	meal, err := h.services.MealService.UpdateMeal(r.Context(), user.UserID, id, upd)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, meal, http.StatusOK)
}

func (h *Handler) deleteMeal(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err = h.services.MealService.DeleteMeal(r.Context(), user.UserID, id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
