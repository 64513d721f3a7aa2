package api

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-ligand/internal/logger"
	"github.com/MKhiriev/go-ligand/internal/utils"
)

// ETag returns the quoted strong entity tag of v: the SHA-256 of its JSON
// encoding.
func ETag(v any) (string, error) {
	sum, err := utils.HashJSON(v)
	if err != nil {
		return "", err
	}

	return `"` + sum + `"`, nil
}

// CheckIfMatch guards an update against lost writes. It returns a 428
// *HTTPError when the request has no If-Match header and a 412 *HTTPError
// when none of its tags matches the tag of current.
func CheckIfMatch(r *http.Request, current any) error {
	header := r.Header.Get("If-Match")
	if header == "" {
		return mustHTTPError(http.StatusPreconditionRequired)
	}

	tag, err := ETag(current)
	if err != nil {
		return err
	}

	if !tagListContains(header, tag) {
		return mustHTTPError(http.StatusPreconditionFailed)
	}

	return nil
}

// WriteWithETag writes v as JSON with its ETag header. When the request's
// If-None-Match header already holds that tag, only 304 Not Modified is
// written.
func WriteWithETag(w http.ResponseWriter, r *http.Request, status int, v any) {
	tag, err := ETag(v)
	if err != nil {
		AbortError(w, r, err)
		return
	}

	w.Header().Set("ETag", tag)
	if inm := r.Header.Get("If-None-Match"); inm != "" && tagListContains(inm, tag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	if _, err = utils.WriteJSON(w, v, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

func tagListContains(header, tag string) bool {
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == tag {
			return true
		}
	}

	return false
}
