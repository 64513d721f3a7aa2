// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

// Messages of the error responses written by this package. They are part
// of the HTTP contract.
const (
	msgMissingAuthorizationHeader = "Missing Authorization Header"
	msgInvalidToken               = "Invalid token"
	msgTokenExpired               = "Token has expired"
	msgRoleNotAllowed             = "Endpoint required role is not an allowed role!"
	msgRoleRequiredFormat         = "This endpoint requires the user to have the '%s' role!"
	msgGeneratorFailedFormat      = "The request to the '%s' server failed!"
)

