package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestServer(origin string) *Server {
	// A stub in place of the real WebSocket handler; route wiring is
	// what is under test here.
	ws := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusSwitchingProtocols)
	})
	return NewServer(ws, origin)
}

func TestHealthEndpoint(t *testing.T) {
	server := newTestServer("*")

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected application/json, got %s", ct)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("Invalid JSON body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("Expected status ok, got %+v", body)
	}
}

func TestHealthEndpoint_MethodNotAllowed(t *testing.T) {
	server := newTestServer("*")

	req := httptest.NewRequest("POST", "/health", nil)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405, got %d", w.Code)
	}
}

func TestCORSHeaders(t *testing.T) {
	server := newTestServer("https://app.example.com")

	req := httptest.NewRequest("GET", "/health", nil)
	req.Header.Set("Origin", "https://app.example.com")
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Errorf("Expected configured origin, got %q", got)
	}
}

func TestCORSHeaders_ForeignOriginGetsNoGrant(t *testing.T) {
	server := newTestServer("https://app.example.com")

	req := httptest.NewRequest("GET", "/health", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Foreign origin should get no CORS grant, got %q", got)
	}
	// The request itself is still served; only the grant is withheld.
	if w.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", w.Code)
	}
}

func TestCORSHeaders_Wildcard(t *testing.T) {
	server := newTestServer("*")

	req := httptest.NewRequest("GET", "/health", nil)
	req.Header.Set("Origin", "https://anything.example.com")
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Wildcard config should grant *, got %q", got)
	}
}

func TestCORSPreflight(t *testing.T) {
	server := newTestServer("https://app.example.com")

	req := httptest.NewRequest("OPTIONS", "/health", nil)
	req.Header.Set("Origin", "https://app.example.com")
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("Expected 204 for preflight, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Methods") == "" {
		t.Error("Preflight response missing allowed methods")
	}
}

func TestWebSocketRouteWired(t *testing.T) {
	called := false
	ws := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	server := NewServer(ws, "*")

	req := httptest.NewRequest("GET", "/ws", nil)
	server.ServeHTTP(httptest.NewRecorder(), req)

	if !called {
		t.Error("/ws should route to the WebSocket handler")
	}
}

func TestUnknownRoute(t *testing.T) {
	server := newTestServer("*")

	req := httptest.NewRequest("GET", "/nope", nil)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}
