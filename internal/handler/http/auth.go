package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-nutri-keeper/internal/app"
	"github.com/MKhiriev/go-nutri-keeper/internal/logger"
	"github.com/MKhiriev/go-nutri-keeper/internal/utils"
	"github.com/MKhiriev/go-nutri-keeper/models"
	"github.com/go-chi/chi/v5"
)

type messageResponse struct {
	Message string `json:"message"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Register(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", user.UserID).Msg("user registered")
	utils.WriteJSON(w, user, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	utils.WriteJSON(w, models.NewAccessTokenResponse(token, time.Now()), http.StatusOK)
}

func (h *Handler) verifyEmail(w http.ResponseWriter, r *http.Request) {
	if _, err := h.services.AuthService.VerifyEmail(r.Context(), chi.URLParam(r, "token")); err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, messageResponse{Message: app.MsgEmailVerified}, http.StatusOK)
}

func (h *Handler) resendVerification(w http.ResponseWriter, r *http.Request) {
	var req models.ResendVerificationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.AuthService.ResendVerification(r.Context(), req); err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, messageResponse{Message: app.MsgVerificationSent}, http.StatusOK)
}
