package cmd

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestServerURL(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{"127.0.0.1:8385", "http://127.0.0.1:8385"},
		{"http://localhost:8385", "http://localhost:8385"},
		{"http://localhost:8385/", "http://localhost:8385"},
		{"https://debates.example.com", "https://debates.example.com"},
	}
	for _, tt := range tests {
		if got := serverURL(tt.addr); got != tt.want {
			t.Errorf("serverURL(%q) = %q, want %q", tt.addr, got, tt.want)
		}
	}
}

func TestAPIGetDecodesJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	var out struct {
		Status string `json:"status"`
	}
	if _, err := apiGet(srv.URL, "/health", &out); err != nil {
		t.Fatalf("apiGet() error = %v", err)
	}
	if out.Status != "ok" {
		t.Errorf("Status = %q, want ok", out.Status)
	}
}

func TestAPIGetSurfacesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"unknown session abc"}`))
	}))
	defer srv.Close()

	_, err := apiGet(srv.URL, "/api/v1/debates/abc/report", nil)
	if err == nil {
		t.Fatal("expected error for 404 response")
	}
	if !strings.Contains(err.Error(), "unknown session abc") {
		t.Errorf("error = %v, want server message included", err)
	}
}

func TestAPIGetRawBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("# Debate abc\n"))
	}))
	defer srv.Close()

	body, err := apiGet(srv.URL, "/transcript", nil)
	if err != nil {
		t.Fatalf("apiGet() error = %v", err)
	}
	if body != "# Debate abc\n" {
		t.Errorf("body = %q", body)
	}
}
