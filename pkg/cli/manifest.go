// Copyright (c) Peter Bjorklund. All rights reserved. https://github.com/piot/app-version
// Licensed under the MIT License. See LICENSE in the project root for license information.

package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/piot/app-version/pkg/manifest"
	"github.com/piot/app-version/pkg/serializer"
	appversion "github.com/piot/app-version/pkg/version"
)

func manifestCmd() *cli.Command {
	return &cli.Command{
		Name:                  "manifest",
		EnableShellCompletion: true,
		Usage:                 "Manage component versions in a manifest file",
		Description: `Manage a YAML manifest that tracks the versions of named components.

The manifest path defaults to versions.yaml and can be overridden with
--manifest or the APPVER_MANIFEST environment variable.`,
		Commands: []*cli.Command{
			manifestInitCmd(),
			manifestSetCmd(),
			manifestGetCmd(),
			manifestBumpCmd(),
			manifestValidateCmd(),
		},
	}
}

func manifestInitCmd() *cli.Command {
	return &cli.Command{
		Name:      "init",
		Usage:     "Create a new empty version manifest",
		ArgsUsage: " ",
		Flags: []cli.Flag{
			manifestFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.String("manifest")
			m := manifest.New(version)
			if err := m.Save(path); err != nil {
				return fmt.Errorf("failed to write manifest %q: %w", path, err)
			}
			fmt.Fprintf(cmd.Root().Writer, "created %s\n", path)
			return nil
		},
	}
}

func manifestSetCmd() *cli.Command {
	return &cli.Command{
		Name:      "set",
		Usage:     "Set a component version in the manifest",
		ArgsUsage: "<component> <version>",
		Flags: []cli.Flag{
			manifestFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 2 {
				return fmt.Errorf("expected <component> <version> arguments, got %d", cmd.Args().Len())
			}

			name := cmd.Args().Get(0)
			v, err := appversion.Parse(cmd.Args().Get(1))
			if err != nil {
				return fmt.Errorf("failed to parse %q: %w", cmd.Args().Get(1), err)
			}

			path := cmd.String("manifest")
			m, err := manifest.Load(path)
			if err != nil {
				return fmt.Errorf("failed to load manifest %q: %w", path, err)
			}

			m.Set(name, v)
			if err := m.Save(path); err != nil {
				return fmt.Errorf("failed to write manifest %q: %w", path, err)
			}

			fmt.Fprintf(cmd.Root().Writer, "%s: %s\n", name, v)
			return nil
		},
	}
}

func manifestGetCmd() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "Print a component version from the manifest",
		ArgsUsage: "<component>",
		Flags: []cli.Flag{
			manifestFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name := cmd.Args().First()
			if name == "" {
				return fmt.Errorf("missing required argument: <component>")
			}

			path := cmd.String("manifest")
			m, err := manifest.Load(path)
			if err != nil {
				return fmt.Errorf("failed to load manifest %q: %w", path, err)
			}

			v, ok := m.Get(name)
			if !ok {
				return fmt.Errorf("component %q not found in %s", name, path)
			}

			fmt.Fprintln(cmd.Root().Writer, v)
			return nil
		},
	}
}

func manifestBumpCmd() *cli.Command {
	return &cli.Command{
		Name:      "bump",
		Usage:     "Increment a component version in the manifest",
		ArgsUsage: "<component> <level>",
		Description: `Increment a tracked component at the patch, minor, or major level and
write the manifest back.

# Examples

Bump the engine component's minor version:
  appver manifest bump engine minor`,
		Flags: []cli.Flag{
			manifestFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 2 {
				return fmt.Errorf("expected <component> <level> arguments, got %d", cmd.Args().Len())
			}

			name := cmd.Args().Get(0)
			level, err := manifest.ParseLevel(cmd.Args().Get(1))
			if err != nil {
				return err
			}

			path := cmd.String("manifest")
			m, err := manifest.Load(path)
			if err != nil {
				return fmt.Errorf("failed to load manifest %q: %w", path, err)
			}

			v, err := m.Bump(name, level)
			if err != nil {
				return err
			}

			if err := m.Save(path); err != nil {
				return fmt.Errorf("failed to write manifest %q: %w", path, err)
			}

			fmt.Fprintf(cmd.Root().Writer, "%s: %s\n", name, v)
			return nil
		},
	}
}

func manifestValidateCmd() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "Validate manifest components against required versions",
		ArgsUsage: " ",
		Description: `Validate the manifest against a set of required component versions.

A requirement passes when the component is present, shares the required
major version, and is at least as new as the required version.

# Examples

Validate two components:
  appver manifest validate --require engine=1.2.0 --require sdk=2.0.1

Fail the command on any failed requirement (useful for CI/CD):
  appver manifest validate --require engine=1.2.0 --fail-on-error`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:     "require",
				Usage:    "Required component version (format: name=version, can be repeated)",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "fail-on-error",
				Usage: "Exit with non-zero status if any requirement fails",
			},
			manifestFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat := serializer.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format: %q", outFormat)
			}

			requirements, err := parseRequirements(cmd.StringSlice("require"))
			if err != nil {
				return err
			}

			path := cmd.String("manifest")
			m, err := manifest.Load(path)
			if err != nil {
				return fmt.Errorf("failed to load manifest %q: %w", path, err)
			}

			res := m.Validate(requirements)

			w := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer w.Close()

			if err := w.Serialize(ctx, res); err != nil {
				return err
			}

			if cmd.Bool("fail-on-error") && res.Summary.Failed > 0 {
				return fmt.Errorf("%d of %d requirements failed",
					res.Summary.Failed, res.Summary.Passed+res.Summary.Failed)
			}
			return nil
		},
	}
}

// parseRequirements parses repeated name=version pairs.
func parseRequirements(pairs []string) (map[string]appversion.Version, error) {
	requirements := make(map[string]appversion.Version, len(pairs))
	for _, pair := range pairs {
		name, raw, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid requirement %q: expected name=version", pair)
		}
		v, err := appversion.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid requirement %q: %w", pair, err)
		}
		requirements[name] = v
	}
	return requirements, nil
}
