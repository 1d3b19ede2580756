package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-nutri-keeper/internal/logger"
	"github.com/MKhiriev/go-nutri-keeper/internal/service"
	"github.com/MKhiriev/go-nutri-keeper/internal/utils"
	"github.com/MKhiriev/go-nutri-keeper/internal/validators"
)

// errorStatuses is checked top to bottom, so an error wrapping several
// sentinels gets the status of the first one listed.
var errorStatuses = []struct {
	err    error
	status int
}{
	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrUnauthenticated, http.StatusUnauthorized},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},

	{service.ErrEmailNotVerified, http.StatusForbidden},
	{service.ErrAccountSuspended, http.StatusForbidden},
	{service.ErrForbidden, http.StatusForbidden},

	{ErrTooManyRequests, http.StatusTooManyRequests},

	{service.ErrInvalidVerificationToken, http.StatusBadRequest},
	{service.ErrAlreadyVerified, http.StatusBadRequest},

	{service.ErrAllergenInUse, http.StatusConflict},
	{service.ErrAlreadyExists, http.StatusConflict},

	{service.ErrNotFound, http.StatusNotFound},
}

// detailResponse is the body of every error response. Detail is either a
// message or a list of validators.FieldError.
type detailResponse struct {
	Detail any `json:"detail"`
}

// statusFromError returns the mapped status and the sentinel that matched,
// or 500 and nil.
func statusFromError(err error) (int, error) {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status, e.err
		}
	}
	return http.StatusInternalServerError, nil
}

// writeError renders err as a JSON error response. Validation failures become
// 422 with the field list; unknown errors become a generic 500 and are logged.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	if errs, ok := validators.AsErrors(err); ok {
		log.Debug().Err(err).Msg("request rejected by validation")
		utils.WriteJSON(w, detailResponse{Detail: errs}, http.StatusUnprocessableEntity)
		return
	}

	status, target := statusFromError(err)
	switch status {
	case http.StatusInternalServerError:
		log.Err(err).Msg("unexpected error while serving request")
		utils.WriteJSON(w, detailResponse{Detail: ErrInternal.Error()}, status)
		return
	case http.StatusUnauthorized, http.StatusForbidden:
		// auth failures may wrap token parser details; only the sentinel text goes out
		if status == http.StatusUnauthorized {
			w.Header().Set("WWW-Authenticate", "Bearer")
		}
		log.Info().Err(err).Int("status", status).Msg("request refused")
		utils.WriteJSON(w, detailResponse{Detail: target.Error()}, status)
		return
	}

	log.Debug().Err(err).Int("status", status).Send()
	utils.WriteJSON(w, detailResponse{Detail: err.Error()}, status)
}
