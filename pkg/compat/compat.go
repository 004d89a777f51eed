// Copyright (c) Peter Bjorklund. All rights reserved. https://github.com/piot/app-version
// Licensed under the MIT License. See LICENSE in the project root for license information.

package compat

import (
	"fmt"

	"github.com/piot/app-version/pkg/version"
)

// Direction describes how a candidate version relates to a base version.
type Direction string

const (
	// DirectionEqual means base and candidate are the same version.
	DirectionEqual Direction = "equal"
	// DirectionUpgrade means the candidate is newer than the base.
	DirectionUpgrade Direction = "upgrade"
	// DirectionDowngrade means the candidate is older than the base.
	DirectionDowngrade Direction = "downgrade"
)

// Report is the outcome of a compatibility check between two versions.
type Report struct {
	Base       version.Version `json:"base" yaml:"base"`
	Candidate  version.Version `json:"candidate" yaml:"candidate"`
	Compatible bool            `json:"compatible" yaml:"compatible"`
	Direction  Direction       `json:"direction" yaml:"direction"`
	Reason     string          `json:"reason" yaml:"reason"`
}

// Check reports whether candidate can interoperate with base.
//
// Compatibility follows the semver contract: the two versions interoperate
// exactly when their major versions are equal. Direction is derived from the
// full lexicographic comparison.
func Check(base, candidate version.Version) Report {
	r := Report{
		Base:       base,
		Candidate:  candidate,
		Compatible: base.IsCompatible(candidate),
	}

	switch candidate.Compare(base) {
	case 0:
		r.Direction = DirectionEqual
	case 1:
		r.Direction = DirectionUpgrade
	default:
		r.Direction = DirectionDowngrade
	}

	if r.Compatible {
		r.Reason = fmt.Sprintf("both versions share major version %d", base.Major)
	} else {
		r.Reason = fmt.Sprintf("major version mismatch: %d != %d", base.Major, candidate.Major)
	}
	return r
}
