// Copyright (c) Peter Bjorklund. All rights reserved. https://github.com/piot/app-version
// Licensed under the MIT License. See LICENSE in the project root for license information.

package version

import (
	"testing"
)

// FuzzParse performs fuzz testing on Parse to find edge cases
func FuzzParse(f *testing.F) {
	// Seed corpus with valid and edge case inputs
	f.Add("1.2.3")
	f.Add("0.0.0")
	f.Add("65535.65535.65535")
	f.Add("1.23.46")
	f.Add("")
	f.Add(".")
	f.Add("..")
	f.Add("...")
	f.Add("1.")
	f.Add(".1")
	f.Add("1..2")
	f.Add("1.2")
	f.Add("1.2.3.4")
	f.Add("v1.2.3")
	f.Add("-1.2.3")
	f.Add("+1.2.3")
	f.Add("1.-2.3")
	f.Add("a.b.c")
	f.Add("1.x.3")
	f.Add("   1.2.3")
	f.Add("1.2.3   ")
	f.Add("1. 2.3")
	f.Add("65536.0.0")
	f.Add("1.2.3-rc1")
	f.Add("1.2.3+build")

	f.Fuzz(func(t *testing.T, input string) {
		// Parse should never panic
		v, err := Parse(input)

		if err == nil {
			// String() should not panic and must round-trip exactly
			s := v.String()
			v2, err2 := Parse(s)
			if err2 != nil {
				t.Errorf("re-parsing %q (from %q) failed: %v", s, input, err2)
			} else if v != v2 {
				t.Errorf("round-trip mismatch for %q: %+v != %+v", input, v, v2)
			}

			// Comparison methods don't panic and stay consistent
			other := New(1, 2, 3)
			c := v.Compare(other)
			if v.IsNewer(other) != (c > 0) {
				t.Errorf("IsNewer inconsistent with Compare for %q", input)
			}
			if v.EqualsOrNewer(other) != (c >= 0) {
				t.Errorf("EqualsOrNewer inconsistent with Compare for %q", input)
			}
			if v.IsCompatible(other) != (v.Major == other.Major) {
				t.Errorf("IsCompatible inconsistent for %q", input)
			}
		}
	})
}

// FuzzIncrements checks the increment invariants over arbitrary versions
func FuzzIncrements(f *testing.F) {
	f.Add(uint16(0), uint16(0), uint16(0))
	f.Add(uint16(1), uint16(2), uint16(3))
	f.Add(uint16(65535), uint16(65535), uint16(65535))

	f.Fuzz(func(t *testing.T, major, minor, patch uint16) {
		v := New(major, minor, patch)

		p := v
		p.IncrementPatch()
		if p.Major != major || p.Minor != minor {
			t.Errorf("IncrementPatch changed major/minor: %s -> %s", v, p)
		}
		if patch < 65535 && p.Patch != patch+1 {
			t.Errorf("IncrementPatch on %s = %s", v, p)
		}

		m := v
		m.IncrementMinor()
		if m.Major != major || m.Patch != 0 {
			t.Errorf("IncrementMinor invariant broken: %s -> %s", v, m)
		}

		j := v
		j.IncrementMajor()
		if j.Minor != 0 || j.Patch != 0 {
			t.Errorf("IncrementMajor invariant broken: %s -> %s", v, j)
		}
	})
}
