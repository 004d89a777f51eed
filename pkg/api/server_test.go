// Copyright (c) Peter Bjorklund. All rights reserved. https://github.com/piot/app-version
// Licensed under the MIT License. See LICENSE in the project root for license information.

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/piot/app-version/pkg/compat"
)

// Serve() itself is a blocking function that runs until shutdown, so it is
// covered by end-to-end testing rather than unit tests here. These tests
// verify the package constants, the route wiring, and that the wired
// handlers are safe to call.

func TestConstants(t *testing.T) {
	if name != "appverd" {
		t.Errorf("name = %q, want %q", name, "appverd")
	}

	if versionDefault != "dev" {
		t.Errorf("versionDefault = %q, want %q", versionDefault, "dev")
	}

	// Buildtime variables exist (they may carry default values)
	if version == "" {
		t.Error("version should not be empty")
	}
	if commit == "" {
		t.Error("commit should not be empty")
	}
	if date == "" {
		t.Error("date should not be empty")
	}
}

func TestRouteConfiguration(t *testing.T) {
	b := compat.NewBuilder()

	routes := map[string]http.HandlerFunc{
		"/v1/parse": b.HandleParse,
		"/v1/check": b.HandleCheck,
		"/v1/bump":  b.HandleBump,
	}

	for _, path := range []string{"/v1/parse", "/v1/check", "/v1/bump"} {
		if handler, exists := routes[path]; !exists {
			t.Errorf("expected %s route to exist", path)
		} else if handler == nil {
			t.Errorf("expected %s handler to be non-nil", path)
		}
	}

	if len(routes) != 3 {
		t.Errorf("expected exactly 3 routes, got %d", len(routes))
	}
}

func TestParseEndpointConcurrency(t *testing.T) {
	b := compat.NewBuilder()

	const numRequests = 10
	done := make(chan bool, numRequests)

	for i := 0; i < numRequests; i++ {
		go func() {
			req := httptest.NewRequest(http.MethodGet, "/v1/parse?version=1.2.3", nil)
			w := httptest.NewRecorder()
			b.HandleParse(w, req)
			done <- true
		}()
	}

	timeout := time.After(5 * time.Second)
	for i := 0; i < numRequests; i++ {
		select {
		case <-done:
		case <-timeout:
			t.Fatal("timeout waiting for concurrent requests to complete")
		}
	}
}
