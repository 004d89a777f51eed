// Copyright (c) Peter Bjorklund. All rights reserved. https://github.com/piot/app-version
// Licensed under the MIT License. See LICENSE in the project root for license information.

// Package api provides the HTTP API layer for the version daemon.
//
// This package is a thin wrapper around the reusable pkg/server package,
// configuring it with the version operation routes. The daemon exposes
// parsing, compatibility checks, and increments; manifest editing stays
// in the CLI.
//
// # Endpoints
//
// Application endpoints (with rate limiting):
//   - GET  /v1/parse - Parse a version string into its numeric parts
//   - GET  /v1/check - Compare two versions for compatibility
//   - POST /v1/bump  - Increment a version at the given level
//
// System endpoints (no rate limiting):
//   - GET /health  - Health check (liveness probe)
//   - GET /ready   - Readiness check
//   - GET /metrics - Prometheus metrics
//
// # Configuration
//
// The server is configured via environment variables:
//   - PORT: HTTP server port (default: 8080)
//   - LOG_LEVEL: Logging level (debug, info, warn, error)
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/piot/app-version/pkg/api.version=1.0.0'"
package api
