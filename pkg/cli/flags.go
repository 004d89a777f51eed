// Copyright (c) Peter Bjorklund. All rights reserved. https://github.com/piot/app-version
// Licensed under the MIT License. See LICENSE in the project root for license information.

package cli

import "github.com/urfave/cli/v3"

// Flags shared across commands.
var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Write output to file (default: stdout)",
		Sources: cli.EnvVars("APPVER_OUTPUT"),
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "Output format: json, yaml, or table",
		Sources: cli.EnvVars("APPVER_FORMAT"),
		Value:   "yaml",
	}

	manifestFlag = &cli.StringFlag{
		Name:    "manifest",
		Aliases: []string{"m"},
		Usage:   "Path to the version manifest file",
		Sources: cli.EnvVars("APPVER_MANIFEST"),
		Value:   "versions.yaml",
	}
)
