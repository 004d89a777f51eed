// Copyright (c) Peter Bjorklund. All rights reserved. https://github.com/piot/app-version
// Licensed under the MIT License. See LICENSE in the project root for license information.

package oci

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piot/app-version/pkg/version"
)

func TestVersionFromImageRef(t *testing.T) {
	tests := []struct {
		name     string
		ref      string
		expected version.Version
		tag      string
	}{
		{
			name:     "registry with tag",
			ref:      "ghcr.io/piot/engine:1.27.3",
			expected: version.New(1, 27, 3),
			tag:      "1.27.3",
		},
		{
			name:     "v-prefixed tag",
			ref:      "ghcr.io/piot/engine:v2.0.1",
			expected: version.New(2, 0, 1),
			tag:      "v2.0.1",
		},
		{
			name:     "short form normalizes",
			ref:      "nginx:1.27.3",
			expected: version.New(1, 27, 3),
			tag:      "1.27.3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iv, err := VersionFromImageRef(tt.ref)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, iv.Version)
			assert.Equal(t, tt.tag, iv.Tag)
			assert.NotEmpty(t, iv.Repository)
		})
	}
}

func TestVersionFromImageRefNormalizesShortForm(t *testing.T) {
	iv, err := VersionFromImageRef("nginx:1.27.3")
	require.NoError(t, err)
	assert.Equal(t, "docker.io/library/nginx", iv.Repository)
}

func TestVersionFromImageRefErrors(t *testing.T) {
	tests := []struct {
		name string
		ref  string
	}{
		{name: "untagged", ref: "ghcr.io/piot/engine"},
		{name: "digest only", ref: "ghcr.io/piot/engine@sha256:aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"},
		{name: "non-version tag", ref: "ghcr.io/piot/engine:latest"},
		{name: "two segment tag", ref: "ghcr.io/piot/engine:1.27"},
		{name: "invalid reference", ref: "HTTP://bad ref"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := VersionFromImageRef(tt.ref)
			assert.Error(t, err)
		})
	}
}
