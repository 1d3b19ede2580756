package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-nutri-keeper/internal/logger"
	"github.com/MKhiriev/go-nutri-keeper/internal/utils"
	"github.com/MKhiriev/go-nutri-keeper/models"
)

func (h *Handler) listAllergens(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	allergens, err := h.services.AllergenService.ListAllergens(r.Context(), q.str("category"), q.str("q"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, nonNil(allergens), http.StatusOK)
}

func (h *Handler) getAllergen(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	allergen, err := h.services.AllergenService.GetAllergen(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, allergen, http.StatusOK)
}

// ── admin ────────────────────────────────────────────────────────────────────

func (h *Handler) createAllergen(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}
	var in models.AllergenInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	allergen, err := h.services.AllergenService.CreateAllergen(r.Context(), actor, in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, allergen, http.StatusCreated)
}

func (h *Handler) updateAllergen(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var upd models.AllergenUpdate
	if err = decodeJSON(w, r, &upd); err != nil {
		writeError(w, r, err)
		return
	}
	allergen, err := h.services.AllergenService.UpdateAllergen(r.Context(), actor, id, upd)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, allergen, http.StatusOK)
}

func (h *Handler) deleteAllergen(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err = h.services.AllergenService.DeleteAllergen(r.Context(), actor, id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) bulkCreateAllergens(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}
	var req models.BulkAllergenRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	created, err := h.services.AllergenService.BulkCreateAllergens(r.Context(), actor, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	logger.FromRequest(r).Info().Int("count", len(created)).Msg("allergens imported")
	utils.WriteJSON(w, nonNil(created), http.StatusCreated)
}

func (h *Handler) searchAllergens(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	search := models.AllergenSearch{
		Query:    q.str("q"),
		Category: q.str("category"),
		IsMajor:  q.optBool("is_major"),
		Limit:    q.integer("limit"),
		Offset:   q.integer("offset"),
	}
	if err := q.err(); err != nil {
		writeError(w, r, err)
		return
	}

	page, err := h.services.AllergenService.SearchAllergens(r.Context(), search)
	if err != nil {
		writeError(w, r, err)
		return
	}
	page.Items = nonNil(page.Items)
	utils.WriteJSON(w, page, http.StatusOK)
}

// exportAllergens streams the whole catalog as JSON or CSV. The service
// validates the format and picks the content type.
func (h *Handler) exportAllergens(w http.ResponseWriter, r *http.Request) {
	format := models.ExportFormat(newQueryParams(r).str("format"))
	if format == "" {
		format = models.ExportJSON
	}

	body, contentType, err := h.services.AllergenService.ExportAllergens(r.Context(), format)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="allergens.`+string(format)+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

func (h *Handler) listAllergenAudit(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	filter := models.AuditFilter{
		TargetType: models.AuditTargetAllergen,
		TargetID:   q.optInt64("target_id"),
		Limit:      q.integer("limit"),
		Offset:     q.integer("offset"),
	}
	if err := q.err(); err != nil {
		writeError(w, r, err)
		return
	}

	records, err := h.services.AllergenService.ListAllergenAudit(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, nonNil(records), http.StatusOK)
}
