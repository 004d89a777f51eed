// Copyright (c) Peter Bjorklund. All rights reserved. https://github.com/piot/app-version
// Licensed under the MIT License. See LICENSE in the project root for license information.

package version

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// ErrInvalidFormat indicates a version string does not have exactly
// three dot-separated components.
var ErrInvalidFormat = errors.New("invalid version format")

// ParseError indicates a version component could not be parsed as a
// non-negative 16-bit integer. It carries the underlying strconv failure.
type ParseError struct {
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %v", e.Err)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Version represents a semantic version number with Major, Minor, and Patch
// components. The zero value is 0.0.0. Values are comparable with ==;
// ordering is lexicographic on (Major, Minor, Patch).
//
// The canonical textual form is "{major}.{minor}.{patch}", e.g. "1.23.46",
// which is both what String produces and what Parse requires.
type Version struct {
	Major uint16
	Minor uint16
	Patch uint16
}

// New creates a new Version with the specified major, minor, and patch values.
// No validation is performed; every uint16 triple is a valid version.
func New(major, minor, patch uint16) Version {
	return Version{
		Major: major,
		Minor: minor,
		Patch: patch,
	}
}

// Parts returns the major, minor, and patch components.
func (v Version) Parts() (major, minor, patch uint16) {
	return v.Major, v.Minor, v.Patch
}

// String returns the canonical string representation of the Version:
// three dot-separated decimal integers with no leading zeros.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Parse parses a version string into a Version.
//
// Parsing is strict: the input must be exactly three dot-separated decimal
// components, each a non-negative integer that fits in 16 bits. No "v"
// prefix, no whitespace trimming, no sign characters, and no pre-release or
// build metadata suffixes are accepted.
//
// A wrong component count returns ErrInvalidFormat. A component that is not
// a valid 16-bit decimal returns a *ParseError wrapping the strconv failure.
func Parse(s string) (Version, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return Version{}, ErrInvalidFormat
	}

	var nums [3]uint16
	for i, part := range parts {
		n, err := strconv.ParseUint(part, 10, 16)
		if err != nil {
			return Version{}, &ParseError{Err: err}
		}
		nums[i] = uint16(n)
	}

	return New(nums[0], nums[1], nums[2]), nil
}

// MustParse parses a version string and panics if parsing fails.
// Only use this for hardcoded strings or in tests. For user input or runtime
// data, always use Parse and handle errors explicitly.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse: %v", err))
	}
	return v
}

// IncrementPatch increments the patch version.
// Increments saturate at 65535 rather than wrapping around; a wrapped
// component would order below the version it was bumped from.
func (v *Version) IncrementPatch() {
	if v.Patch < math.MaxUint16 {
		v.Patch++
	}
}

// IncrementMinor increments the minor version and resets patch to 0.
func (v *Version) IncrementMinor() {
	if v.Minor < math.MaxUint16 {
		v.Minor++
	}
	v.Patch = 0
}

// IncrementMajor increments the major version and resets minor and patch to 0.
func (v *Version) IncrementMajor() {
	if v.Major < math.MaxUint16 {
		v.Major++
	}
	v.Minor = 0
	v.Patch = 0
}

// IsCompatible returns true when v and other share the same major version,
// regardless of minor and patch. This expresses the semver contract: a major
// version change breaks API compatibility, minor and patch changes do not.
func (v Version) IsCompatible(other Version) bool {
	return v.Major == other.Major
}

// Compare returns an integer comparing two versions:
// -1 if v < other, 0 if v == other, 1 if v > other.
// Useful for sorting versions.
func (v Version) Compare(other Version) int {
	if v.Major != other.Major {
		if v.Major < other.Major {
			return -1
		}
		return 1
	}
	if v.Minor != other.Minor {
		if v.Minor < other.Minor {
			return -1
		}
		return 1
	}
	if v.Patch != other.Patch {
		if v.Patch < other.Patch {
			return -1
		}
		return 1
	}
	return 0
}

// IsNewer returns true if v is strictly newer than other.
func (v Version) IsNewer(other Version) bool {
	return v.Compare(other) > 0
}

// EqualsOrNewer returns true if v is equal to or newer than other.
func (v Version) EqualsOrNewer(other Version) bool {
	return v.Compare(other) >= 0
}

// Sort sorts versions in ascending order, oldest first.
func Sort(versions []Version) {
	sort.Slice(versions, func(i, j int) bool {
		return versions[i].Compare(versions[j]) < 0
	})
}

// MarshalText implements encoding.TextMarshaler using the canonical form.
// JSON and YAML documents therefore carry versions as "1.2.3" strings.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler with the same strict
// rules as Parse.
func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
