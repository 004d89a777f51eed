// Package defaults centralizes timeout constants for the HTTP server so
// limits stay consistent and discoverable.
package defaults
