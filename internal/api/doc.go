// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package api holds the HTTP-facing building blocks shared by every service
// built on go-ligand.
//
// It provides:
//   - [API]: the OpenAPI 3 document of the service, kept in sync with the
//     chi router as [Blueprint]s are registered;
//   - [HTTPError] and [Abort]: the single way handlers surface errors as
//     {code, status, message} JSON bodies;
//   - request decoding with validation ([DecodeJSON], [DecodeQuery]);
//   - pagination ([ParsePagination], [SetPaginationHeader]) and entity tags
//     ([ETag], [CheckIfMatch], [WriteWithETag]).
package api
