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

// compareResult is the output of the compare command.
type compareResult struct {
	A        appversion.Version `json:"a" yaml:"a"`
	B        appversion.Version `json:"b" yaml:"b"`
	Result   int             `json:"result" yaml:"result"`
	Relation string          `json:"relation" yaml:"relation"`
}

func compareCmd() *cli.Command {
	return &cli.Command{
		Name:                  "compare",
		EnableShellCompletion: true,
		Usage:                 "Compare the ordering of two versions",
		ArgsUsage:             "<a> <b>",
		Description: `Compare two versions lexicographically by major, minor, and patch.

The result is -1 when a is older than b, 0 when equal, and 1 when newer.

# Examples

Compare two versions:
  appver compare 1.2.3 1.4.0`,
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
				return fmt.Errorf("expected <a> <b> arguments, got %d", cmd.Args().Len())
			}

			a, err := appversion.Parse(cmd.Args().Get(0))
			if err != nil {
				return fmt.Errorf("failed to parse %q: %w", cmd.Args().Get(0), err)
			}

			b, err := appversion.Parse(cmd.Args().Get(1))
			if err != nil {
				return fmt.Errorf("failed to parse %q: %w", cmd.Args().Get(1), err)
			}

			res := compareResult{A: a, B: b, Result: a.Compare(b)}
			switch res.Result {
			case -1:
				res.Relation = "older"
			case 0:
				res.Relation = "equal"
			default:
				res.Relation = "newer"
			}

			w := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer w.Close()

			return w.Serialize(ctx, res)
		},
	}
}
