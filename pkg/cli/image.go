// Copyright (c) Peter Bjorklund. All rights reserved. https://github.com/piot/app-version
// Licensed under the MIT License. See LICENSE in the project root for license information.

package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/piot/app-version/pkg/oci"
	"github.com/piot/app-version/pkg/serializer"
)

func imageCmd() *cli.Command {
	return &cli.Command{
		Name:                  "image",
		EnableShellCompletion: true,
		Usage:                 "Extract the version from a container image reference",
		ArgsUsage:             "<image-ref>",
		Description: `Parse a container image reference and extract the version from its tag.

The reference is normalized the way container runtimes do (so "nginx:1.27.3"
resolves to "docker.io/library/nginx:1.27.3"). The tag may carry a leading
"v" prefix; the rest must be a strict MAJOR.MINOR.PATCH version.

# Examples

Short-form reference:
  appver image nginx:1.27.3

Fully qualified reference with v-prefixed tag:
  appver image ghcr.io/acme/api:v2.1.0 --format json`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat := serializer.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format: %q", outFormat)
			}

			ref := cmd.Args().First()
			if ref == "" {
				return fmt.Errorf("missing required argument: <image-ref>")
			}

			iv, err := oci.VersionFromImageRef(ref)
			if err != nil {
				return fmt.Errorf("failed to extract version from %q: %w", ref, err)
			}

			w := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer w.Close()

			return w.Serialize(ctx, iv)
		},
	}
}
