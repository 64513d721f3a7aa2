// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"time"
	"unicode"

	"github.com/mitchellh/mapstructure"
)

// validateOverrides rejects keys that are not upper case and keys naming a
// protected setting. Keys are checked in sorted order so the reported key is
// stable.
func validateOverrides(overrides map[string]any) error {
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, key := range keys {
		if !isUpper(key) {
			return fmt.Errorf("%w: '%s'", ErrSettingNotUppercase, key)
		}
		if slices.Contains(protectedKeys, key) {
			return fmt.Errorf("%w: '%s'", ErrProtectedSetting, key)
		}
	}

	return nil
}

// isUpper reports whether s has at least one cased letter and no lower case
// letters.
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}

	return cased
}

// decodeOverrides converts caller overrides into a Settings layer. Values are
// weakly typed, so "false", "30s" or "user,admin" are accepted for bool,
// duration and list settings. Plain numbers given for a duration are seconds.
// Keys matching no setting are returned as extra.
func decodeOverrides(overrides map[string]any) (Settings, map[string]any, error) {
	var (
		layer Settings
		md    mapstructure.Metadata
	)

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &layer,
		Metadata:         &md,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			secondsToDurationHookFunc(),
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return Settings{}, nil, fmt.Errorf("%w: %w", ErrDecodingOverrides, err)
	}

	if err = decoder.Decode(overrides); err != nil {
		return Settings{}, nil, fmt.Errorf("%w: %w", ErrDecodingOverrides, err)
	}

	var extra map[string]any
	for _, key := range md.Unused {
		v, ok := overrides[key]
		if !ok {
			continue
		}
		if extra == nil {
			extra = make(map[string]any)
		}
		extra[key] = v
	}
	layer.AllowedRoles = splitRoles(layer.AllowedRoles)

	return layer, extra, nil
}

var durationType = reflect.TypeOf(time.Duration(0))

// secondsToDurationHookFunc decodes numbers, and numeric strings, into a
// time.Duration of that many seconds.
func secondsToDurationHookFunc() mapstructure.DecodeHookFuncType {
	return func(_ reflect.Type, to reflect.Type, data any) (any, error) {
		if to != durationType {
			return data, nil
		}

		var seconds float64
		switch v := data.(type) {
		case int:
			seconds = float64(v)
		case int32:
			seconds = float64(v)
		case int64:
			seconds = float64(v)
		case uint:
			seconds = float64(v)
		case uint32:
			seconds = float64(v)
		case uint64:
			seconds = float64(v)
		case float32:
			seconds = float64(v)
		case float64:
			seconds = v
		case string:
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return data, nil
			}
			seconds = f
		default:
			return data, nil
		}

		return time.Duration(seconds * float64(time.Second)), nil
	}
}
