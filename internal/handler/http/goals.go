package http

import (
	"net/http"

	"github.com/MKhiriev/go-nutri-keeper/internal/utils"
	"github.com/MKhiriev/go-nutri-keeper/models"
)

func (h *Handler) listGoals(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	q := newQueryParams(r)
	status := optEnum(q, "status", models.GoalStatuses)
	if err := q.err(); err != nil {
		writeError(w, r, err)
		return
	}

	goals, err := h.services.GoalService.ListGoals(r.Context(), user.UserID, status)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, nonNil(goals), http.StatusOK)
}

func (h *Handler) createGoal(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	var in models.GoalInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	goal, err := h.services.GoalService.CreateGoal(r.Context(), user.UserID, in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, goal, http.StatusCreated)
}

func (h *Handler) getGoal(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	goal, err := h.services.GoalService.GetGoal(r.Context(), user.UserID, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, goal, http.StatusOK)
}

func (h *Handler) updateGoal(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var upd models.GoalUpdate
	if err = decodeJSON(w, r, &upd); err != nil {
		writeError(w, r, err)
		return
	}
	goal, err := h.services.GoalService.UpdateGoal(r.Context(), user.UserID, id, upd)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, goal, http.StatusOK)
}

func (h *Handler) deleteGoal(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err = h.services.GoalService.DeleteGoal(r.Context(), user.UserID, id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
