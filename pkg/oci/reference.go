// Copyright (c) Peter Bjorklund. All rights reserved. https://github.com/piot/app-version
// Licensed under the MIT License. See LICENSE in the project root for license information.

package oci

import (
	"strings"

	"github.com/distribution/reference"

	apperrors "github.com/piot/app-version/pkg/errors"
	"github.com/piot/app-version/pkg/version"
)

// ImageVersion is the result of extracting a version from a container
// image reference.
type ImageVersion struct {
	// Reference is the normalized image reference (e.g. "docker.io/library/nginx:1.27.3").
	Reference string `json:"reference" yaml:"reference"`
	// Repository is the image repository without tag or digest.
	Repository string `json:"repository" yaml:"repository"`
	// Tag is the raw tag the version was extracted from.
	Tag string `json:"tag" yaml:"tag"`
	// Version is the semantic version parsed from the tag.
	Version version.Version `json:"version" yaml:"version"`
}

// VersionFromImageRef extracts a semantic version from a container image
// reference by parsing its tag. A single leading "v" on the tag is
// tolerated ("v1.2.3"); the remainder must be a canonical three-component
// version. Untagged and digest-only references are rejected.
func VersionFromImageRef(ref string) (*ImageVersion, error) {
	named, err := reference.ParseNormalizedNamed(ref)
	if err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest,
			"failed to parse image reference", err, map[string]any{"ref": ref})
	}

	tagged, ok := named.(reference.Tagged)
	if !ok {
		return nil, apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			"image reference has no tag", map[string]any{"ref": ref})
	}

	tag := tagged.Tag()
	v, err := version.Parse(strings.TrimPrefix(tag, "v"))
	if err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest,
			"image tag is not a semantic version", err,
			map[string]any{"ref": ref, "tag": tag})
	}

	return &ImageVersion{
		Reference:  named.String(),
		Repository: reference.TrimNamed(named).String(),
		Tag:        tag,
		Version:    v,
	}, nil
}
