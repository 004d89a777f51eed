// Copyright (c) Peter Bjorklund. All rights reserved. https://github.com/piot/app-version
// Licensed under the MIT License. See LICENSE in the project root for license information.

// Package server provides the HTTP host for the version API daemon.
//
// The server is a stateless http.ServeMux wrapper with the pieces a small
// production API needs:
//
//   - Rate limiting using a token bucket (golang.org/x/time/rate)
//   - Request ID tracking via the X-Request-Id header
//   - Panic recovery
//   - Prometheus RED metrics on every API route
//   - Graceful shutdown on SIGINT/SIGTERM
//   - Health and readiness probes, with sd_notify integration when
//     running under systemd
//
// API handlers are registered by path and wrapped with the standard
// middleware chain; /health, /ready, and /metrics bypass it.
//
// Basic usage:
//
//	s := server.New(
//	    server.WithName("appverd"),
//	    server.WithVersion("1.2.3"),
//	    server.WithHandlers(map[string]http.HandlerFunc{
//	        "/v1/parse": handleParse,
//	    }),
//	)
//	if err := s.Run(context.Background()); err != nil {
//	    log.Fatal(err)
//	}
//
// Configuration defaults can be overridden through the environment:
// PORT sets the listen port and SHUTDOWN_TIMEOUT_SECONDS sets the
// graceful shutdown window.
//
// Rate limit status is reported on the X-RateLimit-Limit,
// X-RateLimit-Remaining, and X-RateLimit-Reset response headers. When
// limited, the server returns 429 with a Retry-After header and a JSON
// error body that includes the request ID for tracing.
package server
