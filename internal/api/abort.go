package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-ligand/internal/logger"
	"github.com/MKhiriev/go-ligand/internal/utils"
)

// HTTPError is the JSON error body written by every failing endpoint.
type HTTPError struct {
	Code    int    `json:"code"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.Code, e.Status, e.Message)
}

// StatusName returns the upper snake-case name of an HTTP status code, e.g.
// NOT_FOUND for 404. Unknown codes yield an empty string.
func StatusName(code int) string {
	text := http.StatusText(code)
	if text == "" {
		return ""
	}

	text = strings.ReplaceAll(text, "'", "")
	text = strings.NewReplacer(" ", "_", "-", "_").Replace(text)

	return strings.ToUpper(text)
}

// NewHTTPError builds an HTTPError for code. The first message, if any,
// replaces the standard status text.
func NewHTTPError(code int, message ...string) (*HTTPError, error) {
	if code < 100 || code > 599 || http.StatusText(code) == "" {
		return nil, fmt.Errorf("%w: %d", ErrInvalidHTTPStatus, code)
	}

	msg := http.StatusText(code)
	if len(message) > 0 && message[0] != "" {
		msg = message[0]
	}

	return &HTTPError{Code: code, Status: StatusName(code), Message: msg}, nil
}

// mustHTTPError is NewHTTPError for codes known to be valid.
func mustHTTPError(code int, message ...string) *HTTPError {
	httpErr, err := NewHTTPError(code, message...)
	if err != nil {
		panic(err)
	}

	return httpErr
}

// Abort writes the JSON error body for code and message. An invalid code is
// logged and answered with 500 Internal Server Error.
//
// Example usage:
//
//	api.Abort(w, r, http.StatusNotFound, "widget not found")
func Abort(w http.ResponseWriter, r *http.Request, code int, message ...string) {
	log := logger.FromRequest(r)

	httpErr, err := NewHTTPError(code, message...)
	if err != nil {
		log.Err(err).Int("code", code).Msg("abort called with an invalid status code")
		httpErr = mustHTTPError(http.StatusInternalServerError)
	}

	writeHTTPError(w, r, httpErr)
}

// AbortError writes the error body matching err.
//
// An *HTTPError found in the chain is written as is. Other errors are mapped
// to a status through the error map; unknown errors become 500. For client
// errors the message is description, when given, or the error text. Server
// errors never leak their text.
func AbortError(w http.ResponseWriter, r *http.Request, err error, description ...string) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		writeHTTPError(w, r, httpErr)
		return
	}

	status := StatusFromError(err)
	if status >= http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Int("status", status).Msg("request failed")
	}

	var msg string
	switch {
	case len(description) > 0:
		msg = description[0]
	case status < http.StatusInternalServerError:
		msg = err.Error()
	}

	writeHTTPError(w, r, mustHTTPError(status, msg))
}

func writeHTTPError(w http.ResponseWriter, r *http.Request, httpErr *HTTPError) {
	logger.FromRequest(r).Debug().
		Int("code", httpErr.Code).
		Str("message", httpErr.Message).
		Msg("request aborted")

	if _, err := utils.WriteJSON(w, httpErr, httpErr.Code); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing error response")
	}
}
