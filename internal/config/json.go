// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// parseJSON reads a JSON object of setting overrides, e.g.
//
//	{"DB_AUTO_UPGRADE": true, "ALLOWED_ROLES": ["user", "admin", "auditor"]}
func parseJSON(jsonFilePath string) (map[string]any, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var overrides map[string]any
	if err := json.NewDecoder(jsonFile).Decode(&overrides); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return overrides, nil
}
