package http

import (
	"net/http"

	"github.com/MKhiriev/go-nutri-keeper/internal/utils"
	"github.com/MKhiriev/go-nutri-keeper/models"
)

// ── profile ──────────────────────────────────────────────────────────────────

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	profile, err := h.services.ProfileService.GetProfile(r.Context(), user.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, profile, http.StatusOK)
}

// saveProfile creates the profile on first write and patches it afterwards.
func (h *Handler) saveProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	var upd models.HealthProfileUpdate
	if err := decodeJSON(w, r, &upd); err != nil {
		writeError(w, r, err)
		return
	}
	profile, err := h.services.ProfileService.SaveProfile(r.Context(), user.UserID, upd)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) deleteProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	if err := h.services.ProfileService.DeleteProfile(r.Context(), user.UserID); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ── allergies ────────────────────────────────────────────────────────────────

func (h *Handler) listAllergies(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	allergies, err := h.services.ProfileService.ListAllergies(r.Context(), user.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, nonNil(allergies), http.StatusOK)
}

func (h *Handler) getAllergy(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	allergy, err := h.services.ProfileService.GetAllergy(r.Context(), user.UserID, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, allergy, http.StatusOK)
}

func (h *Handler) createAllergy(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	var in models.UserAllergyInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	allergy, err := h.services.ProfileService.CreateAllergy(r.Context(), user.UserID, in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, allergy, http.StatusCreated)
}

func (h *Handler) updateAllergy(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var upd models.UserAllergyUpdate
	if err = decodeJSON(w, r, &upd); err != nil {
		writeError(w, r, err)
		return
	}
	allergy, err := h.services.ProfileService.UpdateAllergy(r.Context(), user.UserID, id, upd)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, allergy, http.StatusOK)
}

func (h *Handler) deleteAllergy(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err = h.services.ProfileService.DeleteAllergy(r.Context(), user.UserID, id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ── dietary preferences ──────────────────────────────────────────────────────

func (h *Handler) listPreferences(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	prefs, err := h.services.ProfileService.ListPreferences(r.Context(), user.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, nonNil(prefs), http.StatusOK)
}

func (h *Handler) getPreference(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	pref, err := h.services.ProfileService.GetPreference(r.Context(), user.UserID, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, pref, http.StatusOK)
}

func (h *Handler) createPreference(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	var in models.DietaryPreferenceInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	pref, err := h.services.ProfileService.CreatePreference(r.Context(), user.UserID, in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, pref, http.StatusCreated)
}

func (h *Handler) updatePreference(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var upd models.DietaryPreferenceUpdate
	if err = decodeJSON(w, r, &upd); err != nil {
		writeError(w, r, err)
		return
	}
	pref, err := h.services.ProfileService.UpdatePreference(r.Context(), user.UserID, id, upd)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, pref, http.StatusOK)
}

func (h *Handler) deletePreference(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err = h.services.ProfileService.DeletePreference(r.Context(), user.UserID, id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// nonNil makes empty listings encode as [] instead of null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
