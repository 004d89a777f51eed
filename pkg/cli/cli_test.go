// Copyright (c) Peter Bjorklund. All rights reserved. https://github.com/piot/app-version
// Licensed under the MIT License. See LICENSE in the project root for license information.

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/piot/app-version/pkg/manifest"
	appversion "github.com/piot/app-version/pkg/version"
)

func TestParseCmd(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.json")

	cmd := parseCmd()
	err := cmd.Run(context.Background(), []string{"parse", "--format", "json", "--output", out, "1.23.46"})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	var res parseResult
	if err := json.Unmarshal(data, &res); err != nil {
		t.Fatalf("failed to decode output: %v", err)
	}
	if res.Major != 1 || res.Minor != 23 || res.Patch != 46 {
		t.Errorf("unexpected parts: %d.%d.%d", res.Major, res.Minor, res.Patch)
	}
	if res.Version != appversion.New(1, 23, 46) {
		t.Errorf("unexpected version: %s", res.Version)
	}
}

func TestParseCmd_InvalidVersion(t *testing.T) {
	cmd := parseCmd()
	err := cmd.Run(context.Background(), []string{"parse", "not-a-version"})
	if err == nil {
		t.Fatal("expected error for invalid version")
	}
}

func TestParseCmd_MissingArgument(t *testing.T) {
	cmd := parseCmd()
	err := cmd.Run(context.Background(), []string{"parse"})
	if err == nil {
		t.Fatal("expected error for missing argument")
	}
}

func TestParseCmd_UnknownFormat(t *testing.T) {
	cmd := parseCmd()
	err := cmd.Run(context.Background(), []string{"parse", "--format", "xml", "1.2.3"})
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestBumpCmd(t *testing.T) {
	tests := []struct {
		name  string
		level string
		input string
		want  appversion.Version
	}{
		{"patch", "patch", "1.2.3", appversion.New(1, 2, 4)},
		{"minor resets patch", "minor", "1.2.3", appversion.New(1, 3, 0)},
		{"major resets minor and patch", "major", "1.2.3", appversion.New(2, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "out.json")

			cmd := bumpCmd()
			err := cmd.Run(context.Background(),
				[]string{"bump", "--format", "json", "--output", out, tt.level, tt.input})
			if err != nil {
				t.Fatalf("bump failed: %v", err)
			}

			data, err := os.ReadFile(out)
			if err != nil {
				t.Fatalf("failed to read output: %v", err)
			}

			var res bumpResult
			if err := json.Unmarshal(data, &res); err != nil {
				t.Fatalf("failed to decode output: %v", err)
			}
			if res.Version != tt.want {
				t.Errorf("bumped version = %s, want %s", res.Version, tt.want)
			}
		})
	}
}

func TestBumpCmd_UnknownLevel(t *testing.T) {
	cmd := bumpCmd()
	err := cmd.Run(context.Background(), []string{"bump", "super", "1.2.3"})
	if err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestCompareCmd(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		relation string
	}{
		{"older", "1.2.3", "1.4.0", "older"},
		{"equal", "1.2.3", "1.2.3", "equal"},
		{"newer", "2.0.0", "1.9.9", "newer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "out.json")

			cmd := compareCmd()
			err := cmd.Run(context.Background(),
				[]string{"compare", "--format", "json", "--output", out, tt.a, tt.b})
			if err != nil {
				t.Fatalf("compare failed: %v", err)
			}

			data, err := os.ReadFile(out)
			if err != nil {
				t.Fatalf("failed to read output: %v", err)
			}

			var res compareResult
			if err := json.Unmarshal(data, &res); err != nil {
				t.Fatalf("failed to decode output: %v", err)
			}
			if res.Relation != tt.relation {
				t.Errorf("relation = %q, want %q", res.Relation, tt.relation)
			}
		})
	}
}

func TestCheckCmd(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.json")

	cmd := checkCmd()
	err := cmd.Run(context.Background(),
		[]string{"check", "--format", "json", "--output", out, "1.2.3", "1.4.0"})
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if !strings.Contains(string(data), `"compatible":true`) {
		t.Errorf("expected compatible report, got: %s", data)
	}
}

func TestCheckCmd_FailOnIncompatible(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.json")

	cmd := checkCmd()
	err := cmd.Run(context.Background(),
		[]string{"check", "--format", "json", "--output", out, "--fail-on-incompatible", "1.2.3", "2.0.0"})
	if err == nil {
		t.Fatal("expected error for incompatible versions")
	}
}

func TestImageCmd(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.json")

	cmd := imageCmd()
	err := cmd.Run(context.Background(),
		[]string{"image", "--format", "json", "--output", out, "nginx:1.27.3"})
	if err != nil {
		t.Fatalf("image failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if !strings.Contains(string(data), `"1.27.3"`) {
		t.Errorf("expected version 1.27.3 in output, got: %s", data)
	}
}

func TestManifestWorkflow(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "versions.yaml")
	ctx := context.Background()

	// init
	initCmd := manifestCmd()
	initCmd.Writer = &bytes.Buffer{}
	if err := initCmd.Run(ctx, []string{"manifest", "init", "--manifest", path}); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	// set
	setCmd := manifestCmd()
	setCmd.Writer = &bytes.Buffer{}
	if err := setCmd.Run(ctx, []string{"manifest", "set", "--manifest", path, "engine", "1.2.3"}); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	// get
	var got bytes.Buffer
	getCmd := manifestCmd()
	getCmd.Writer = &got
	if err := getCmd.Run(ctx, []string{"manifest", "get", "--manifest", path, "engine"}); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if strings.TrimSpace(got.String()) != "1.2.3" {
		t.Errorf("get = %q, want 1.2.3", got.String())
	}

	// bump
	mbump := manifestCmd()
	mbump.Writer = &bytes.Buffer{}
	if err := mbump.Run(ctx, []string{"manifest", "bump", "--manifest", path, "engine", "minor"}); err != nil {
		t.Fatalf("bump failed: %v", err)
	}

	m, err := manifest.Load(path)
	if err != nil {
		t.Fatalf("failed to load manifest: %v", err)
	}
	v, ok := m.Get("engine")
	if !ok {
		t.Fatal("expected engine in manifest")
	}
	if v != appversion.New(1, 3, 0) {
		t.Errorf("engine = %s, want 1.3.0", v)
	}
}

func TestManifestValidateCmd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "versions.yaml")
	out := filepath.Join(dir, "result.json")
	ctx := context.Background()

	m := manifest.New("test")
	m.Set("engine", appversion.New(1, 2, 3))
	if err := m.Save(path); err != nil {
		t.Fatalf("failed to save manifest: %v", err)
	}

	// Passing requirement
	cmd := manifestCmd()
	cmd.Writer = &bytes.Buffer{}
	err := cmd.Run(ctx, []string{"manifest", "validate",
		"--manifest", path, "--format", "json", "--output", out,
		"--require", "engine=1.2.0"})
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}

	// Failing requirement with --fail-on-error
	cmd = manifestCmd()
	cmd.Writer = &bytes.Buffer{}
	err = cmd.Run(ctx, []string{"manifest", "validate",
		"--manifest", path, "--format", "json", "--output", out,
		"--require", "engine=2.0.0", "--fail-on-error"})
	if err == nil {
		t.Fatal("expected error for failed requirement with --fail-on-error")
	}
}

func TestParseRequirements(t *testing.T) {
	requirements, err := parseRequirements([]string{"engine=1.2.3", "sdk=2.0.1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(requirements) != 2 {
		t.Fatalf("expected 2 requirements, got %d", len(requirements))
	}
	if requirements["engine"] != appversion.New(1, 2, 3) {
		t.Errorf("engine = %s, want 1.2.3", requirements["engine"])
	}

	if _, err := parseRequirements([]string{"no-separator"}); err == nil {
		t.Error("expected error for missing separator")
	}
	if _, err := parseRequirements([]string{"engine=bad"}); err == nil {
		t.Error("expected error for invalid version")
	}
}

func TestRootCommand(t *testing.T) {
	root := Root()

	if root.Name != name {
		t.Errorf("root name = %q, want %q", root.Name, name)
	}

	want := []string{"parse", "bump", "compare", "check", "image", "manifest", "serve", "version"}
	for _, n := range want {
		found := false
		for _, c := range root.Commands {
			if c.Name == n {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected command %q to be registered", n)
		}
	}
}
