// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"maps"

	"dario.cat/mergo"
)

// configBuilder collects Settings layers in application order: base
// defaults first, caller overrides last.
type configBuilder struct {
	env    environ
	layers []*Settings
	extra  map[string]any
	err    error
}

func newConfigBuilder() *configBuilder {
	b := &configBuilder{
		layers: make([]*Settings, 0, 6),
		extra:  make(map[string]any),
	}

	e, err := readEnviron()
	if err != nil {
		b.err = err
		return b
	}
	b.env = e

	return b
}

func (b *configBuilder) withBase() *configBuilder {
	base := baseLayer(b.env)
	b.layers = append(b.layers, &base)
	return b
}

func (b *configBuilder) withEnvironment(environment Environment) *configBuilder {
	for _, l := range environment.layers {
		s := l(b.env)
		b.layers = append(b.layers, &s)
	}
	return b
}

// withJSON applies the overrides file named by LIGAND_CONFIG, if any. It is
// validated like caller overrides and sits right below them.
func (b *configBuilder) withJSON() *configBuilder {
	if b.env.JSONFilePath == "" {
		return b
	}

	overrides, err := parseJSON(b.env.JSONFilePath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	return b.withOverrides(overrides)
}

func (b *configBuilder) withOverrides(overrides map[string]any) *configBuilder {
	if len(overrides) == 0 {
		return b
	}

	if err := validateOverrides(overrides); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	s, extra, err := decodeOverrides(overrides)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.layers = append(b.layers, &s)
	maps.Copy(b.extra, extra)
	return b
}

// build merges the collected layers. mergo only fills empty fields, so the
// layers are merged from the last one back to the base: the latest non-empty
// value of every setting wins. Pointers are not dereferenced, which keeps an
// explicit false from a later layer.
func (b *configBuilder) build() (*Settings, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	settings := new(Settings)
	for i := len(b.layers) - 1; i >= 0; i-- {
		if err := mergo.Merge(settings, b.layers[i], mergo.WithoutDereference); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if len(b.extra) > 0 {
		settings.Extra = b.extra
	}

	return settings, nil
}

// Build assembles the settings of an application running in the named
// environment.
//
// The protected settings API_TITLE, API_VERSION and OPENAPI_CLIENT_NAME are
// always taken from the arguments; the title gets the environment prefix.
// Every overrides key must be upper case and must not name a protected
// setting. Process environment variables are read once per call.
func Build(environment, apiTitle, apiVersion, clientName string, overrides map[string]any) (*Settings, error) {
	env, ok := environments[environment]
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", ErrInvalidEnvironment, environment)
	}

	if err := validateOverrides(overrides); err != nil {
		return nil, err
	}

	settings, err := newConfigBuilder().
		withBase().
		withEnvironment(env).
		withJSON().
		withOverrides(overrides).
		build()
	if err != nil {
		return nil, err
	}

	settings.APITitle = env.TitlePrefix + apiTitle
	settings.APIVersion = apiVersion
	settings.OpenAPIClientName = clientName

	if err = settings.validate(); err != nil {
		return nil, err
	}

	return settings, nil
}
