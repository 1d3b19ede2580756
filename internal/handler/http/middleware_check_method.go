// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-nutri-keeper/internal/app"
	"github.com/MKhiriev/go-nutri-keeper/internal/utils"
)

var (
	errRouteNotFound    = errors.New(app.MsgRouteNotFound)
	errMethodNotAllowed = errors.New(app.MsgMethodNotAllowed)
)

// notFound replaces chi's plain-text 404 so that every response of the API,
// including unknown routes, carries a JSON {"detail": ...} body.
func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, detailResponse{Detail: errRouteNotFound.Error()}, http.StatusNotFound)
}

// methodNotAllowed is registered via [chi.Mux.MethodNotAllowed]. chi has
// already set the Allow header listing the methods the route accepts.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, detailResponse{Detail: errMethodNotAllowed.Error()}, http.StatusMethodNotAllowed)
}
