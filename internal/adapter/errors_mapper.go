package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
}

// upstreamError is the error body of the generator and of most OIDC servers.
type upstreamError struct {
	Message          string `json:"message"`
	ErrorDescription string `json:"error_description"`
}

// mapHTTPError turns a non-2xx upstream answer into a sentinel error carrying
// the upstream message.
func mapHTTPError(resp *resty.Response) error {
	if !resp.IsSuccess() {
		return statusError(resp.StatusCode(), resp.Body())
	}

	return nil
}

func statusError(code int, body []byte) error {
	detail := upstreamMessage(body)
	if detail == "" {
		detail = http.StatusText(code)
	}

	if err, ok := statusErrors[code]; ok {
		return fmt.Errorf("%w: %s", err, detail)
	}

	return fmt.Errorf("%w %d: %s", ErrUnexpectedStatus, code, detail)
}

func upstreamMessage(body []byte) string {
	var e upstreamError
	if json.Unmarshal(body, &e) == nil {
		if e.Message != "" {
			return e.Message
		}
		if e.ErrorDescription != "" {
			return e.ErrorDescription
		}
	}

	return strings.TrimSpace(string(body))
}
