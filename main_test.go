package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSetupRouter(t *testing.T) {
	r := setupRouter(config{mountID: "board", wasmDir: t.TempDir()})

	testCases := []struct {
		name     string
		path     string
		wantCode int
		contains string
	}{
		{"Config", "/api/editor/config", http.StatusOK, `"mountId":"board"`},
		{"Page", "/", http.StatusOK, "data-editor-mount"},
		{"Bootstrap", "/bootstrap.js", http.StatusOK, "startEditor"},
		{"MissingWasm", "/wasm/editor.wasm", http.StatusNotFound, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			rec := httptest.NewRecorder()

			r.ServeHTTP(rec, req)

			if rec.Code != tc.wantCode {
				t.Fatalf("Status code mismatch: got %d, want %d", rec.Code, tc.wantCode)
			}
			if !strings.Contains(rec.Body.String(), tc.contains) {
				t.Errorf("Body does not contain %q", tc.contains)
			}
		})
	}
}

func TestEnvOr(t *testing.T) {
	t.Setenv("EDITOR_TEST_VALUE", "set")

	if got := envOr("EDITOR_TEST_VALUE", "fallback"); got != "set" {
		t.Errorf("envOr() = %q, want %q", got, "set")
	}
	if got := envOr("EDITOR_TEST_UNSET", "fallback"); got != "fallback" {
		t.Errorf("envOr() = %q, want %q", got, "fallback")
	}
}
