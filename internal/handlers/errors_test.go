package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNotFound(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	NotFound().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
	if got := w.Body.String(); got != `{"detail":"Not Found"}` {
		t.Errorf("Expected body %q, got %q", `{"detail":"Not Found"}`, got)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to unmarshal body: %v", err)
	}
	if body["detail"] != "Not Found" {
		t.Errorf("Expected detail 'Not Found', got %q", body["detail"])
	}
}

func TestMethodNotAllowed(t *testing.T) {
	t.Parallel()

	allowed := func(path string) []string {
		if path == "/health" {
			return []string{http.MethodGet}
		}
		return nil
	}

	w := httptest.NewRecorder()
	MethodNotAllowed(allowed).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/health", nil))

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected status 405, got %d", w.Code)
	}
	if got := w.Header().Get("Allow"); got != http.MethodGet {
		t.Errorf("Expected Allow 'GET', got %q", got)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to unmarshal body: %v", err)
	}
	if body["detail"] != "Method Not Allowed" {
		t.Errorf("Expected detail 'Method Not Allowed', got %q", body["detail"])
	}
}
