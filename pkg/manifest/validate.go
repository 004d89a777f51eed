// Copyright (c) Peter Bjorklund. All rights reserved. https://github.com/piot/app-version
// Licensed under the MIT License. See LICENSE in the project root for license information.

package manifest

import (
	"sort"

	"github.com/piot/app-version/pkg/version"
)

// ValidationStatus is the outcome of validating one requirement or the
// whole manifest.
type ValidationStatus string

const (
	// ValidationStatusPass means the component satisfies the requirement.
	ValidationStatusPass ValidationStatus = "pass"
	// ValidationStatusFail means the component is missing, incompatible,
	// or older than required.
	ValidationStatusFail ValidationStatus = "fail"
)

// ComponentResult records the outcome for a single required component.
type ComponentResult struct {
	Component string           `json:"component" yaml:"component"`
	Required  version.Version  `json:"required" yaml:"required"`
	Actual    *version.Version `json:"actual,omitempty" yaml:"actual,omitempty"`
	Status    ValidationStatus `json:"status" yaml:"status"`
	Reason    string           `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// ValidationSummary aggregates pass/fail counts.
type ValidationSummary struct {
	Status ValidationStatus `json:"status" yaml:"status"`
	Passed int              `json:"passed" yaml:"passed"`
	Failed int              `json:"failed" yaml:"failed"`
}

// ValidationResult is the full outcome of validating a manifest against a
// set of requirements.
type ValidationResult struct {
	Header `yaml:",inline"`

	Components []ComponentResult `json:"results" yaml:"results"`
	Summary    ValidationSummary `json:"summary" yaml:"summary"`
}

// Validate checks the manifest against required component versions.
//
// A requirement passes when the component is present, shares the required
// major version (the compatibility contract), and is at least as new as the
// required version. Results are ordered by component name so output is
// stable.
func (m *Manifest) Validate(requirements map[string]version.Version) *ValidationResult {
	res := &ValidationResult{
		Components: make([]ComponentResult, 0, len(requirements)),
	}
	res.Init(KindValidationResult, m.Metadata["version"])

	names := make([]string, 0, len(requirements))
	for name := range requirements {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		required := requirements[name]
		cr := ComponentResult{
			Component: name,
			Required:  required,
		}

		actual, ok := m.Components[name]
		switch {
		case !ok:
			cr.Status = ValidationStatusFail
			cr.Reason = "component not present in manifest"
		case !actual.IsCompatible(required):
			v := actual
			cr.Actual = &v
			cr.Status = ValidationStatusFail
			cr.Reason = "major version mismatch"
		case !actual.EqualsOrNewer(required):
			v := actual
			cr.Actual = &v
			cr.Status = ValidationStatusFail
			cr.Reason = "older than required version"
		default:
			v := actual
			cr.Actual = &v
			cr.Status = ValidationStatusPass
		}

		if cr.Status == ValidationStatusPass {
			res.Summary.Passed++
		} else {
			res.Summary.Failed++
		}
		res.Components = append(res.Components, cr)
	}

	res.Summary.Status = ValidationStatusPass
	if res.Summary.Failed > 0 {
		res.Summary.Status = ValidationStatusFail
	}
	return res
}
