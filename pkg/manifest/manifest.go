// Copyright (c) Peter Bjorklund. All rights reserved. https://github.com/piot/app-version
// Licensed under the MIT License. See LICENSE in the project root for license information.

package manifest

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	apperrors "github.com/piot/app-version/pkg/errors"
	"github.com/piot/app-version/pkg/version"
)

const (
	// Kind identifies a version manifest document.
	Kind = "VersionManifest"

	// KindValidationResult identifies a validation result document.
	KindValidationResult = "ValidationResult"

	// APIVersion is the schema version for manifest documents.
	APIVersion = "appver/v1"
)

// Header contains identity and provenance metadata for a manifest,
// following Kubernetes-style resource conventions.
type Header struct {
	// Kind is the type of the document, always "VersionManifest".
	Kind string `json:"kind" yaml:"kind"`

	// APIVersion is the schema version of the document.
	APIVersion string `json:"apiVersion" yaml:"apiVersion"`

	// Metadata contains key-value pairs such as timestamp and the version
	// of the tool that produced the document.
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Init populates the header with its kind, schema version, and provenance
// metadata (UTC timestamp plus the producing tool version, when known).
func (h *Header) Init(kind, toolVersion string) {
	h.Kind = kind
	h.APIVersion = APIVersion
	h.Metadata = map[string]string{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	if toolVersion != "" {
		h.Metadata["version"] = toolVersion
	}
}

// Manifest is a YAML document tracking the semantic versions of a set of
// named components. Component versions use the canonical "major.minor.patch"
// text form on the wire.
type Manifest struct {
	Header `yaml:",inline"`

	// Components maps component name to its current version.
	Components map[string]version.Version `json:"components" yaml:"components"`
}

// New creates an empty manifest with an initialized header.
func New(toolVersion string) *Manifest {
	m := &Manifest{
		Components: make(map[string]version.Version),
	}
	m.Init(Kind, toolVersion)
	return m
}

// Read decodes a manifest from r. A document with the wrong kind is
// rejected; a missing kind is tolerated for hand-written files.
func Read(r io.Reader) (*Manifest, error) {
	var m Manifest
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&m); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "failed to decode manifest", err)
	}

	if m.Kind != "" && m.Kind != Kind {
		return nil, apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			"unexpected document kind", map[string]any{
				"kind":     m.Kind,
				"expected": Kind,
			})
	}

	if m.Components == nil {
		m.Components = make(map[string]version.Version)
	}
	return &m, nil
}

// Load reads a manifest from the file at path.
func Load(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeNotFound,
			"failed to open manifest", err, map[string]any{"path": path})
	}
	defer f.Close()

	return Read(f)
}

// Write encodes the manifest as YAML to w.
func (m *Manifest) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	return enc.Close()
}

// Save writes the manifest to the file at path, creating or truncating it.
func (m *Manifest) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create manifest file %s: %w", path, err)
	}
	defer f.Close()

	return m.Write(f)
}

// Set records the version for a component, adding it if absent.
func (m *Manifest) Set(name string, v version.Version) {
	if m.Components == nil {
		m.Components = make(map[string]version.Version)
	}
	m.Components[name] = v
}

// Get returns the version of the named component.
func (m *Manifest) Get(name string) (version.Version, bool) {
	v, ok := m.Components[name]
	return v, ok
}

// Bump increments the named component at the given level and returns the
// new version. Unknown components and unknown levels are structured errors.
func (m *Manifest) Bump(name string, level Level) (version.Version, error) {
	v, ok := m.Components[name]
	if !ok {
		return version.Version{}, apperrors.NewWithContext(apperrors.ErrCodeNotFound,
			"component not in manifest", map[string]any{"component": name})
	}

	switch level {
	case LevelPatch:
		v.IncrementPatch()
	case LevelMinor:
		v.IncrementMinor()
	case LevelMajor:
		v.IncrementMajor()
	default:
		return version.Version{}, apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			"unknown bump level", map[string]any{"level": string(level)})
	}

	m.Components[name] = v
	return v, nil
}

// Level selects which version component a bump increments.
type Level string

const (
	// LevelPatch increments the patch component.
	LevelPatch Level = "patch"
	// LevelMinor increments the minor component and resets patch.
	LevelMinor Level = "minor"
	// LevelMajor increments the major component and resets minor and patch.
	LevelMajor Level = "major"
)

// ParseLevel validates a bump level string.
func ParseLevel(s string) (Level, error) {
	switch Level(s) {
	case LevelPatch, LevelMinor, LevelMajor:
		return Level(s), nil
	default:
		return "", apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			"unknown bump level", map[string]any{"level": s})
	}
}
