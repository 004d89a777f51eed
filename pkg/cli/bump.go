// Copyright (c) Peter Bjorklund. All rights reserved. https://github.com/piot/app-version
// Licensed under the MIT License. See LICENSE in the project root for license information.

package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/piot/app-version/pkg/manifest"
	"github.com/piot/app-version/pkg/serializer"
	appversion "github.com/piot/app-version/pkg/version"
)

// bumpResult is the output of the bump command.
type bumpResult struct {
	Input   appversion.Version `json:"input" yaml:"input"`
	Level   manifest.Level  `json:"level" yaml:"level"`
	Version appversion.Version `json:"version" yaml:"version"`
}

func bumpCmd() *cli.Command {
	return &cli.Command{
		Name:                  "bump",
		EnableShellCompletion: true,
		Usage:                 "Increment a version at the given level",
		ArgsUsage:             "<level> <version>",
		Description: `Increment a version at the patch, minor, or major level.

Bumping minor resets patch to zero; bumping major resets both minor and
patch. A part already at its 16-bit maximum stays there.

# Examples

Bump the patch level:
  appver bump patch 1.2.3

Bump the major level, output as JSON:
  appver bump major 1.2.3 --format json`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat := serializer.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format: %q", outFormat)
			}

			if cmd.Args().Len() != 2 {
				return fmt.Errorf("expected <level> <version> arguments, got %d", cmd.Args().Len())
			}

			level, err := manifest.ParseLevel(cmd.Args().Get(0))
			if err != nil {
				return err
			}

			v, err := appversion.Parse(cmd.Args().Get(1))
			if err != nil {
				return fmt.Errorf("failed to parse %q: %w", cmd.Args().Get(1), err)
			}

			bumped := v
			switch level {
			case manifest.LevelPatch:
				bumped.IncrementPatch()
			case manifest.LevelMinor:
				bumped.IncrementMinor()
			case manifest.LevelMajor:
				bumped.IncrementMajor()
			}

			w := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer w.Close()

			return w.Serialize(ctx, bumpResult{
				Input:   v,
				Level:   level,
				Version: bumped,
			})
		},
	}
}
