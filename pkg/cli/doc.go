// Package cli implements the command-line interface for the appver tool.
//
// # Overview
//
// The appver CLI provides commands for parsing and comparing application
// versions, bumping release levels, tracking component versions in a
// manifest file, and running the version API server.
//
// # Commands
//
// parse - Parse a version string:
//
//	appver parse 1.2.3 [--format yaml|json|table]
//
// Parses a strict MAJOR.MINOR.PATCH version and reports its numeric parts.
//
// bump - Increment a version:
//
//	appver bump patch 1.2.3
//
// Increments the given level; minor bumps reset patch, major bumps reset
// minor and patch.
//
// compare - Compare the ordering of two versions:
//
//	appver compare 1.2.3 1.4.0
//
// Reports -1, 0, or 1 together with the older/equal/newer relation.
//
// check - Check compatibility of two versions:
//
//	appver check 1.2.3 1.4.0 [--fail-on-incompatible]
//
// Reports whether the candidate shares the base's major version and whether
// it is an upgrade, downgrade, or equal.
//
// image - Extract the version from a container image reference:
//
//	appver image ghcr.io/acme/api:v2.1.0
//
// manifest - Manage a component version manifest:
//
//	appver manifest init
//	appver manifest set engine 1.2.3
//	appver manifest bump engine minor
//	appver manifest validate --require engine=1.2.0 --fail-on-error
//
// serve - Run the version API server:
//
//	appver serve [--port 8080]
//
// # Global Flags
//
//	--log-level    Log level: debug, info, warn, error (default: info)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Output Formats
//
// Commands that produce structured output accept --format yaml (default),
// json, or table, and --output to write to a file instead of stdout.
//
// # Environment Variables
//
//	LOG_LEVEL        Set logging verbosity (debug, info, warn, error)
//	APPVER_FORMAT    Default output format
//	APPVER_OUTPUT    Default output file
//	APPVER_MANIFEST  Default manifest path
//	PORT             Server port for the serve command
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, execution failure, failed check)
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized
// packages:
//   - pkg/version - Version parsing and comparison
//   - pkg/manifest - Component version manifests
//   - pkg/compat - Compatibility reports
//   - pkg/oci - Container image reference handling
//   - pkg/serializer - Output formatting
//   - pkg/logging - Structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/piot/app-version/pkg/cli.version=1.0.0'"
package cli
