// Copyright (c) Peter Bjorklund. All rights reserved. https://github.com/piot/app-version
// Licensed under the MIT License. See LICENSE in the project root for license information.

package cli

import (
	"context"
	"net/http"

	"github.com/urfave/cli/v3"

	"github.com/piot/app-version/pkg/compat"
	"github.com/piot/app-version/pkg/server"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:                  "serve",
		EnableShellCompletion: true,
		Usage:                 "Run the version API server",
		ArgsUsage:             " ",
		Description: `Run the HTTP API exposing version parsing, compatibility checks, and
increments.

# Endpoints

  GET  /v1/parse?version=1.2.3
  GET  /v1/check?base=1.2.3&candidate=1.4.0
  POST /v1/bump {"version": "1.2.3", "level": "minor"}

System endpoints: /health, /ready, /metrics.

# Examples

Serve on the default port:
  appver serve

Serve on a custom port:
  appver serve --port 9090`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "HTTP server port",
				Sources: cli.EnvVars("PORT"),
				Value:   8080,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			b := compat.NewBuilder()

			s := server.New(
				server.WithName(name),
				server.WithVersion(version),
				server.WithPort(int(cmd.Int("port"))),
				server.WithHandlers(map[string]http.HandlerFunc{
					"/v1/parse": b.HandleParse,
					"/v1/check": b.HandleCheck,
					"/v1/bump":  b.HandleBump,
				}),
			)

			return s.Run(ctx)
		},
	}
}
