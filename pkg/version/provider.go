// Copyright (c) Peter Bjorklund. All rights reserved. https://github.com/piot/app-version
// Licensed under the MIT License. See LICENSE in the project root for license information.

package version

// Provider is implemented by types that can report the Version describing
// themselves. It is a pure capability: no state, no side effects.
type Provider interface {
	Version() Version
}

// Info carries build identity for a binary: its name, its semantic version,
// and the commit/date stamps typically injected at build time with ldflags.
type Info struct {
	Name   string `json:"name" yaml:"name"`
	Semver string `json:"version" yaml:"version"`
	Commit string `json:"commit" yaml:"commit"`
	Date   string `json:"date" yaml:"date"`
}

// Version implements Provider. An Info whose Semver is not a canonical
// version string (e.g. the "dev" default) reports 0.0.0.
func (i Info) Version() Version {
	v, err := Parse(i.Semver)
	if err != nil {
		return Version{}
	}
	return v
}
