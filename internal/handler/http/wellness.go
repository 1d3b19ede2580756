package http

import (
	"net/http"

	"github.com/MKhiriev/go-nutri-keeper/internal/utils"
	"github.com/MKhiriev/go-nutri-keeper/models"
)

func (h *Handler) listWellnessLogs(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	q := newQueryParams(r)
	filter := models.WellnessFilter{
		Start: q.optDate("start"),
		End:   q.optDate("end"),
		Kind:  optEnum(q, "kind", models.WellnessKinds),
	}
	if err := q.err(); err != nil {
		writeError(w, r, err)
		return
	}

	logs, err := h.services.WellnessService.ListLogs(r.Context(), user.UserID, filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, logs, http.StatusOK)
}

// ── mood ─────────────────────────────────────────────────────────────────────

func (h *Handler) createMoodLog(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	var in models.MoodLogInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	log, err := h.services.WellnessService.CreateMoodLog(r.Context(), user, in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, log, http.StatusCreated)
}

func (h *Handler) getMoodLog(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	log, err := h.services.WellnessService.GetMoodLog(r.Context(), user.UserID, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, log, http.StatusOK)
}

func (h *Handler) updateMoodLog(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var in models.MoodLogInput
	if err = decodeJSON(w, r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	log, err := h.services.WellnessService.UpdateMoodLog(r.Context(), user, id, in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, log, http.StatusOK)
}

func (h *Handler) deleteMoodLog(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err = h.services.WellnessService.DeleteMoodLog(r.Context(), user.UserID, id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ── stress ───────────────────────────────────────────────────────────────────

func (h *Handler) createStressLog(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	var in models.StressLogInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	log, err := h.services.WellnessService.CreateStressLog(r.Context(), user, in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, log, http.StatusCreated)
}

func (h *Handler) getStressLog(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	log, err := h.services.WellnessService.GetStressLog(r.Context(), user.UserID, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, log, http.StatusOK)
}

func (h *Handler) updateStressLog(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var in models.StressLogInput
	if err = decodeJSON(w, r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	log, err := h.services.WellnessService.UpdateStressLog(r.Context(), user, id, in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, log, http.StatusOK)
}

func (h *Handler) deleteStressLog(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err = h.services.WellnessService.DeleteStressLog(r.Context(), user.UserID, id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ── sleep ────────────────────────────────────────────────────────────────────

func (h *Handler) createSleepLog(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	var in models.SleepLogInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	log, err := h.services.WellnessService.CreateSleepLog(r.Context(), user, in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, log, http.StatusCreated)
}

func (h *Handler) getSleepLog(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	log, err := h.services.WellnessService.GetSleepLog(r.Context(), user.UserID, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, log, http.StatusOK)
}

func (h *Handler) updateSleepLog(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var in models.SleepLogInput
	if err = decodeJSON(w, r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	log, err := h.services.WellnessService.UpdateSleepLog(r.Context(), user, id, in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, log, http.StatusOK)
}

func (h *Handler) deleteSleepLog(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err = h.services.WellnessService.DeleteSleepLog(r.Context(), user.UserID, id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
