// Package manifest implements version manifests: YAML documents tracking the
// semantic versions of a set of named components, with bump and validation
// operations.
//
// A manifest looks like:
//
//	kind: VersionManifest
//	apiVersion: appver/v1
//	metadata:
//	  timestamp: "2025-01-15T10:30:00Z"
//	  version: 1.4.0
//	components:
//	  engine: 1.23.46
//	  renderer: 0.9.2
//
// Validation checks each required component for presence, major-version
// compatibility, and recency, producing a pass/fail result per component
// plus a summary.
package manifest
