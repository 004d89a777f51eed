// Package compat implements compatibility checking between semantic
// versions and exposes the version operations (parse, check, bump) as HTTP
// handlers for the API server.
//
// The compatibility rule is the semver contract: two versions interoperate
// exactly when their major versions are equal.
package compat
