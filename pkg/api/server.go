// Copyright (c) Peter Bjorklund. All rights reserved. https://github.com/piot/app-version
// Licensed under the MIT License. See LICENSE in the project root for license information.

package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/piot/app-version/pkg/compat"
	"github.com/piot/app-version/pkg/logging"
	"github.com/piot/app-version/pkg/server"
)

const (
	name           = "appverd"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/piot/app-version/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the version API server and blocks until shutdown.
// It configures logging, sets up routes, and handles graceful shutdown.
func Serve() error {
	ctx := context.Background()

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	b := compat.NewBuilder()

	r := map[string]http.HandlerFunc{
		"/v1/parse": b.HandleParse,
		"/v1/check": b.HandleCheck,
		"/v1/bump":  b.HandleBump,
	}

	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandlers(r),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
