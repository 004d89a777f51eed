// Copyright (c) Peter Bjorklund. All rights reserved. https://github.com/piot/app-version
// Licensed under the MIT License. See LICENSE in the project root for license information.

package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/piot/app-version/pkg/serializer"
	appversion "github.com/piot/app-version/pkg/version"
)

// parseResult is the output of the parse command.
type parseResult struct {
	Input   string          `json:"input" yaml:"input"`
	Version appversion.Version `json:"version" yaml:"version"`
	Major   uint16          `json:"major" yaml:"major"`
	Minor   uint16          `json:"minor" yaml:"minor"`
	Patch   uint16          `json:"patch" yaml:"patch"`
}

func parseCmd() *cli.Command {
	return &cli.Command{
		Name:                  "parse",
		EnableShellCompletion: true,
		Usage:                 "Parse a version string into its numeric parts",
		ArgsUsage:             "<version>",
		Description: `Parse a strict MAJOR.MINOR.PATCH version string and report its parts.

Each part must be a plain base-10 number that fits in 16 bits. Leading "v"
prefixes, signs, whitespace, and pre-release or build suffixes are rejected.

# Examples

Parse a version:
  appver parse 1.2.3

Parse into JSON:
  appver parse 1.2.3 --format json`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat := serializer.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format: %q", outFormat)
			}

			raw := cmd.Args().First()
			if raw == "" {
				return fmt.Errorf("missing required argument: <version>")
			}

			v, err := appversion.Parse(raw)
			if err != nil {
				return fmt.Errorf("failed to parse %q: %w", raw, err)
			}

			major, minor, patch := v.Parts()
			w := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer w.Close()

			return w.Serialize(ctx, parseResult{
				Input:   raw,
				Version: v,
				Major:   major,
				Minor:   minor,
				Patch:   patch,
			})
		},
	}
}
