// Copyright (c) Peter Bjorklund. All rights reserved. https://github.com/piot/app-version
// Licensed under the MIT License. See LICENSE in the project root for license information.

package compat

import (
	"encoding/json"
	"log/slog"
	"net/http"

	apperrors "github.com/piot/app-version/pkg/errors"
	"github.com/piot/app-version/pkg/manifest"
	"github.com/piot/app-version/pkg/serializer"
	"github.com/piot/app-version/pkg/version"
)

// Builder exposes the version operations over HTTP.
type Builder struct {
}

// NewBuilder creates a Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// errorBody is the JSON shape for handler-level failures.
type errorBody struct {
	Code    apperrors.ErrorCode `json:"code"`
	Message string              `json:"message"`
	Details map[string]any      `json:"details,omitempty"`
}

func respondError(w http.ResponseWriter, status int, err *apperrors.StructuredError) {
	serializer.RespondJSON(w, status, errorBody{
		Code:    err.Code,
		Message: err.Message,
		Details: err.Context,
	})
}

// queryVersion parses a version query parameter, writing a 400 response and
// returning false when it is missing or malformed.
func queryVersion(w http.ResponseWriter, r *http.Request, param string) (version.Version, bool) {
	raw := r.URL.Query().Get(param)
	if raw == "" {
		respondError(w, http.StatusBadRequest, apperrors.NewWithContext(
			apperrors.ErrCodeInvalidRequest, "missing required query parameter",
			map[string]any{"param": param}))
		return version.Version{}, false
	}

	v, err := version.Parse(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, apperrors.WrapWithContext(
			apperrors.ErrCodeInvalidRequest, "failed to parse version", err,
			map[string]any{"param": param, "input": raw, "error": err.Error()}))
		return version.Version{}, false
	}
	return v, true
}

// ParseResponse is the response body for the parse endpoint.
type ParseResponse struct {
	Version   version.Version `json:"version"`
	Major     uint16          `json:"major"`
	Minor     uint16          `json:"minor"`
	Patch     uint16          `json:"patch"`
	Canonical string          `json:"canonical"`
}

// HandleParse handles GET /v1/parse?version=1.2.3.
func (b *Builder) HandleParse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed,
			apperrors.New(apperrors.ErrCodeMethodNotAllowed, "method not allowed"))
		return
	}

	v, ok := queryVersion(w, r, "version")
	if !ok {
		return
	}

	major, minor, patch := v.Parts()
	serializer.RespondJSON(w, http.StatusOK, ParseResponse{
		Version:   v,
		Major:     major,
		Minor:     minor,
		Patch:     patch,
		Canonical: v.String(),
	})
}

// HandleCheck handles GET /v1/check?base=1.2.3&candidate=1.9.0.
func (b *Builder) HandleCheck(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed,
			apperrors.New(apperrors.ErrCodeMethodNotAllowed, "method not allowed"))
		return
	}

	base, ok := queryVersion(w, r, "base")
	if !ok {
		return
	}
	candidate, ok := queryVersion(w, r, "candidate")
	if !ok {
		return
	}

	report := Check(base, candidate)
	slog.Debug("compatibility check",
		"base", base.String(),
		"candidate", candidate.String(),
		"compatible", report.Compatible,
	)

	serializer.RespondJSON(w, http.StatusOK, report)
}

// BumpRequest is the request body for the bump endpoint.
type BumpRequest struct {
	Version version.Version `json:"version"`
	Level   string          `json:"level"`
}

// BumpResponse is the response body for the bump endpoint.
type BumpResponse struct {
	Previous version.Version `json:"previous"`
	Version  version.Version `json:"version"`
	Level    string          `json:"level"`
}

// HandleBump handles POST /v1/bump with a JSON body of {"version","level"}.
func (b *Builder) HandleBump(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed,
			apperrors.New(apperrors.ErrCodeMethodNotAllowed, "method not allowed"))
		return
	}

	var req BumpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, apperrors.WrapWithContext(
			apperrors.ErrCodeInvalidRequest, "failed to decode request body", err,
			map[string]any{"error": err.Error()}))
		return
	}

	level, err := manifest.ParseLevel(req.Level)
	if err != nil {
		respondError(w, http.StatusBadRequest, apperrors.NewWithContext(
			apperrors.ErrCodeInvalidRequest, "unknown bump level",
			map[string]any{"level": req.Level}))
		return
	}

	bumped := req.Version
	switch level {
	case manifest.LevelPatch:
		bumped.IncrementPatch()
	case manifest.LevelMinor:
		bumped.IncrementMinor()
	case manifest.LevelMajor:
		bumped.IncrementMajor()
	}

	serializer.RespondJSON(w, http.StatusOK, BumpResponse{
		Previous: req.Version,
		Version:  bumped,
		Level:    string(level),
	})
}
