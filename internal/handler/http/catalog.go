package http

import (
	"net/http"

	"github.com/MKhiriev/go-nutri-keeper/internal/utils"
	"github.com/MKhiriev/go-nutri-keeper/models"
)

func (h *Handler) listRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.services.CatalogService.ListRestaurants(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, nonNil(restaurants), http.StatusOK)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	restaurant, err := h.services.CatalogService.GetRestaurant(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, restaurant, http.StatusOK)
}

func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	var in models.RestaurantInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	restaurant, err := h.services.CatalogService.CreateRestaurant(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, restaurant, http.StatusCreated)
}

func (h *Handler) updateRestaurant(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var upd models.RestaurantUpdate
	if err = decodeJSON(w, r, &upd); err != nil {
		writeError(w, r, err)
		return
	}
	restaurant, err := h.services.CatalogService.UpdateRestaurant(r.Context(), id, upd)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, restaurant, http.StatusOK)
}

func (h *Handler) listMenuItems(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	items, err := h.services.CatalogService.ListMenuItems(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, nonNil(items), http.StatusOK)
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var in models.MenuItemInput
	if err = decodeJSON(w, r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	item, err := h.services.CatalogService.CreateMenuItem(r.Context(), id, in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, item, http.StatusCreated)
}
