// Package config builds the settings of a ligand application.
//
// Settings are assembled from layers applied in the following order (later
// layers override earlier non-empty values):
//  1. Base defaults, partly read from environment variables
//  2. The layers of the selected environment (prod, stage, local, testing)
//  3. An optional JSON overrides file named by LIGAND_CONFIG
//  4. Caller overrides passed to [Build]
//
// The result is validated once: protected and lower-case override keys are
// rejected up front and required settings are checked at the end.
package config
