package http

import (
	"net/http"

	"github.com/MKhiriev/go-nutri-keeper/internal/utils"
)

func (h *Handler) appInfo(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AppInfoService.GetAppInfo(r.Context()), http.StatusOK)
}
