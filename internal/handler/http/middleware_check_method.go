// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-ligand/internal/api"
)

// methodNotAllowed is registered as the router's MethodNotAllowed handler
// so the body follows the common error format.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	api.Abort(w, r, http.StatusMethodNotAllowed)
}

// notFound is registered as the router's NotFound handler.
func notFound(w http.ResponseWriter, r *http.Request) {
	api.Abort(w, r, http.StatusNotFound)
}
