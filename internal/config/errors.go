// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Configuration errors returned by [Build]. They are wrapped with the name of
// the offending environment, key or setting, so callers match them with
// [errors.Is].
var (
	// ErrInvalidEnvironment is returned when the environment name is not in
	// the registry.
	ErrInvalidEnvironment = errors.New("the specified environment is invalid")

	// ErrProtectedSetting is returned when an override targets API_TITLE,
	// API_VERSION or OPENAPI_CLIENT_NAME.
	ErrProtectedSetting = errors.New("setting is not allowed to be overridden")

	// ErrSettingNotUppercase is returned when an override key is not upper case.
	ErrSettingNotUppercase = errors.New("setting name must be uppercase")

	// ErrRequiredSettingNotSet is returned when a required setting is still
	// empty after all layers are applied.
	ErrRequiredSettingNotSet = errors.New("required setting must be set when running in this environment")

	// ErrDecodingOverrides is returned when an override value cannot be
	// converted to the type of its setting.
	ErrDecodingOverrides = errors.New("error decoding setting overrides")
)
