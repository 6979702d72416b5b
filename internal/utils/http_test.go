package utils

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// ---- DoPostSync tests -------------------------------------------------------

// TestDoPostSync_Success verifies that a 200 response with valid JSON is
// unmarshaled into the output struct and returned without error.
func TestDoPostSync_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected JSON content type, got %q", ct)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"value":42}`)
	}))
	defer server.Close()

	type response struct {
		Value int `json:"value"`
	}

	_, result, err := DoPostSync[response](
		context.Background(),
		server.Client(),
		server.URL,
		"test-key",
		map[string]string{"q": "test"},
	)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result == nil {
		t.Fatal("expected non-nil result, got nil")
	}
	if result.Value != 42 {
		t.Errorf("expected value 42, got %d", result.Value)
	}
}

// TestDoPostSync_BearerAuth verifies that a non-empty apiKey is sent as a
// Bearer Authorization header.
func TestDoPostSync_BearerAuth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "Bearer secret" {
			t.Errorf("expected Bearer auth, got %q", auth)
		}
		fmt.Fprint(w, `{}`)
	}))
	defer server.Close()

	type response struct{}
	_, _, err := DoPostSync[response](context.Background(), server.Client(), server.URL, "secret", nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

// TestDoPostSync_HeaderOptionOverridesAuth verifies that custom headers are
// applied after the default Authorization header, allowing providers to use
// their own authentication scheme.
func TestDoPostSync_HeaderOptionOverridesAuth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if key := r.Header.Get("x-goog-api-key"); key != "google-key" {
			t.Errorf("expected custom header, got %q", key)
		}
		if auth := r.Header.Get("Authorization"); auth != "" {
			t.Errorf("expected no Authorization header, got %q", auth)
		}
		fmt.Fprint(w, `{}`)
	}))
	defer server.Close()

	type response struct{}
	_, _, err := DoPostSync[response](
		context.Background(),
		server.Client(),
		server.URL,
		"",
		nil,
		HeaderOption{Key: "x-goog-api-key", Value: "google-key"},
	)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

// TestDoPostSync_StatusError verifies that non-2xx responses produce a typed
// *StatusError carrying status code and body.
func TestDoPostSync_StatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error":"rate limited"}`)
	}))
	defer server.Close()

	type response struct{}
	_, _, err := DoPostSync[response](context.Background(), server.Client(), server.URL, "", nil)
	if err == nil {
		t.Fatal("expected error for 429 response")
	}

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected *StatusError, got %T: %v", err, err)
	}
	if statusErr.StatusCode != http.StatusTooManyRequests {
		t.Errorf("expected status 429, got %d", statusErr.StatusCode)
	}
	if !strings.Contains(statusErr.Body, "rate limited") {
		t.Errorf("expected body in error, got %q", statusErr.Body)
	}
}

// TestDoPostSync_InvalidJSON verifies that an unparseable body produces an
// error including a response preview.
func TestDoPostSync_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `not json at all`)
	}))
	defer server.Close()

	type response struct {
		Value int `json:"value"`
	}
	_, _, err := DoPostSync[response](context.Background(), server.Client(), server.URL, "", nil)
	if err == nil {
		t.Fatal("expected error for invalid JSON body")
	}
	if !strings.Contains(err.Error(), "not json at all") {
		t.Errorf("expected response preview in error, got %q", err.Error())
	}
}

// TestDoPostSync_ConnectionError verifies that connection failures are
// returned wrapped, keeping the transport error inspectable.
func TestDoPostSync_ConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // the port is now closed

	type response struct{}
	_, _, err := DoPostSync[response](context.Background(), http.DefaultClient, server.URL, "", nil)
	if err == nil {
		t.Fatal("expected connection error")
	}
	if !strings.Contains(err.Error(), "error sending request") {
		t.Errorf("expected request error wrapping, got %q", err.Error())
	}
}

// ---- DoGetSync tests --------------------------------------------------------

func TestDoGetSync_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		fmt.Fprint(w, `{"models":[{"name":"models/gemini-pro"}]}`)
	}))
	defer server.Close()

	type model struct {
		Name string `json:"name"`
	}
	type response struct {
		Models []model `json:"models"`
	}

	_, result, err := DoGetSync[response](context.Background(), server.Client(), server.URL, "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(result.Models) != 1 || result.Models[0].Name != "models/gemini-pro" {
		t.Errorf("unexpected result: %+v", result)
	}
}

// ---- ResolveEnv tests -------------------------------------------------------

func TestResolveEnv(t *testing.T) {
	tests := []struct {
		name     string
		explicit string
		envValue string
		fallback string
		want     string
	}{
		{name: "explicit value wins", explicit: "explicit", envValue: "from-env", fallback: "default", want: "explicit"},
		{name: "env variable when no explicit value", envValue: "from-env", fallback: "default", want: "from-env"},
		{name: "fallback when nothing set", fallback: "default", want: "default"},
		{name: "empty when nothing resolves", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("AIBRIDGE_TEST_VAR", tt.envValue)
			got := ResolveEnv(tt.explicit, "AIBRIDGE_TEST_VAR", tt.fallback)
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

// ---- TruncateString tests ---------------------------------------------------

func TestTruncateString(t *testing.T) {
	short := "short"
	if got := TruncateString(short, 10); got != short {
		t.Errorf("expected untouched string, got %q", got)
	}

	long := strings.Repeat("x", 20)
	got := TruncateString(long, 10)
	if !strings.HasPrefix(got, strings.Repeat("x", 10)) {
		t.Errorf("expected truncated prefix, got %q", got)
	}
	if !strings.Contains(got, "total: 20 chars") {
		t.Errorf("expected total length in suffix, got %q", got)
	}
}
