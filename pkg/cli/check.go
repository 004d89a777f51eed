// Copyright (c) Peter Bjorklund. All rights reserved. https://github.com/piot/app-version
// Licensed under the MIT License. See LICENSE in the project root for license information.

package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/piot/app-version/pkg/compat"
	"github.com/piot/app-version/pkg/serializer"
	appversion "github.com/piot/app-version/pkg/version"
)

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:                  "check",
		EnableShellCompletion: true,
		Usage:                 "Check compatibility between two versions",
		ArgsUsage:             "<base> <candidate>",
		Description: `Check whether a candidate version can interoperate with a base version.

Two versions are compatible when their major versions are equal. The report
also states whether the candidate is an upgrade, downgrade, or equal.

# Examples

Check two versions:
  appver check 1.2.3 1.4.0

Fail the command on incompatibility (useful for CI/CD):
  appver check 1.2.3 2.0.0 --fail-on-incompatible`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "fail-on-incompatible",
				Usage: "Exit with non-zero status if the versions are incompatible",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat := serializer.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format: %q", outFormat)
			}

			if cmd.Args().Len() != 2 {
				return fmt.Errorf("expected <base> <candidate> arguments, got %d", cmd.Args().Len())
			}

			base, err := appversion.Parse(cmd.Args().Get(0))
			if err != nil {
				return fmt.Errorf("failed to parse base %q: %w", cmd.Args().Get(0), err)
			}

			candidate, err := appversion.Parse(cmd.Args().Get(1))
			if err != nil {
				return fmt.Errorf("failed to parse candidate %q: %w", cmd.Args().Get(1), err)
			}

			report := compat.Check(base, candidate)

			w := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer w.Close()

			if err := w.Serialize(ctx, report); err != nil {
				return err
			}

			if cmd.Bool("fail-on-incompatible") && !report.Compatible {
				return fmt.Errorf("versions %s and %s are not compatible", base, candidate)
			}
			return nil
		},
	}
}
