package http

import (
	"net/http"

	"github.com/MKhiriev/go-nutri-keeper/internal/logger"
	"github.com/MKhiriev/go-nutri-keeper/internal/utils"
	"github.com/MKhiriev/go-nutri-keeper/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	filter := models.UserFilter{
		Role:   optEnum(q, "role", models.Roles),
		Status: optEnum(q, "status", models.AccountStatuses),
		Limit:  q.integer("limit"),
		Offset: q.integer("offset"),
	}
	if err := q.err(); err != nil {
		writeError(w, r, err)
		return
	}

	page, err := h.services.UserService.ListUsers(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	page.Items = nonNil(page.Items)
	utils.WriteJSON(w, page, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	user, err := h.services.UserService.GetUser(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var upd models.UserAdminUpdate
	if err = decodeJSON(w, r, &upd); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.UpdateUser(r.Context(), actor, id, upd)
	if err != nil {
		writeError(w, r, err)
		return
	}
	logger.FromRequest(r).Info().Int64("target_user_id", id).Msg("user updated by admin")
	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) listUserAudit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	q := newQueryParams(r)
	limit, offset := q.integer("limit"), q.integer("offset")
	if err = q.err(); err != nil {
		writeError(w, r, err)
		return
	}

	records, err := h.services.UserService.ListUserAudit(r.Context(), id, limit, offset)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, nonNil(records), http.StatusOK)
}
