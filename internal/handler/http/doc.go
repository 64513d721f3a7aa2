// Package http implements the HTTP transport layer of a ligand application.
//
// It builds the chi router with the request middlewares (trace id, access
// logging, metrics, CORS), serves the OpenAPI document with its Swagger UI,
// the Prometheus endpoint and the OpenAPI client-download blueprint, and
// provides the role-based authorization middleware used by application
// blueprints.
package http
