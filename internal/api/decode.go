package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-ligand/internal/validators"
	"github.com/mitchellh/mapstructure"
)

var (
	structValidator validators.Validator = validators.NewStructValidator()
	queryValidator  validators.Validator = validators.NewStructValidatorForTag("mapstructure")
)

// DecodeJSON decodes the JSON request body into dst and validates it.
// Unknown fields, malformed JSON and validation failures are returned as a
// 422 *HTTPError.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return mustHTTPError(http.StatusUnprocessableEntity, fmt.Sprintf("invalid request body: %v", err))
	}

	return Validate(r.Context(), dst)
}

// DecodeQuery decodes the URL query into dst, using the `mapstructure` field
// tags as parameter names, and validates the result. Fields without a
// matching parameter keep their current value, so callers can preset
// defaults. Values are weakly typed: "true", "1" and "t" all decode into a
// bool.
func DecodeQuery(r *http.Request, dst any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
		Result:           dst,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("error creating query decoder: %w", err)
	}

	if err = dec.Decode(queryValues(r.URL.Query())); err != nil {
		return mustHTTPError(http.StatusUnprocessableEntity, fmt.Sprintf("invalid query arguments: %v", err))
	}

	return validate(r.Context(), queryValidator, dst)
}

// Validate runs struct validation on v and converts failures into a 422
// *HTTPError.
func Validate(ctx context.Context, v any) error {
	return validate(ctx, structValidator, v)
}

func validate(ctx context.Context, sv validators.Validator, v any) error {
	if err := sv.Validate(ctx, v); err != nil {
		return mustHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	return nil
}

// queryValues flattens single-valued parameters so they decode into scalar
// fields.
func queryValues(values url.Values) map[string]any {
	out := make(map[string]any, len(values))
	for k, v := range values {
		if len(v) == 1 {
			out[k] = v[0]
			continue
		}
		out[k] = v
	}

	return out
}
