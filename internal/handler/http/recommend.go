package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-nutri-keeper/internal/utils"
	"github.com/MKhiriev/go-nutri-keeper/models"
)

type recommendFunc func(ctx context.Context, user models.User, req models.RecommendationRequest) (models.RecommendationResponse, error)

func (h *Handler) recommendMeal(w http.ResponseWriter, r *http.Request) {
	h.recommend(w, r, h.services.RecommendationService.RecommendMeals)
}

func (h *Handler) recommendRestaurant(w http.ResponseWriter, r *http.Request) {
	h.recommend(w, r, h.services.RecommendationService.RecommendRestaurants)
}

// recommend serves both recommendation endpoints. An empty body asks for the
// defaults.
func (h *Handler) recommend(w http.ResponseWriter, r *http.Request, fn recommendFunc) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req models.RecommendationRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, r, err)
			return
		}
	}

	resp, err := fn(r.Context(), user, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	resp.Items = nonNil(resp.Items)
	utils.WriteJSON(w, resp, http.StatusOK)
}
