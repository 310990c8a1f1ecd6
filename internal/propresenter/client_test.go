package propresenter

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *Config {
	return &Config{Host: "localhost", Port: 50001, Timeout: 5 * time.Second}
}

// newTestClient builds a client pointed at a mock ProPresenter.
func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(testConfig(), testLogger(), WithBaseURL(server.URL))
	return client, server
}

func TestNewClient(t *testing.T) {
	config := testConfig()
	client := NewClient(config, testLogger())

	if client.httpClient == nil {
		t.Error("httpClient is nil")
	}
	if client.httpClient.Timeout != config.Timeout {
		t.Errorf("timeout = %v, want %v", client.httpClient.Timeout, config.Timeout)
	}
	if client.baseURL != "http://localhost:50001" {
		t.Errorf("baseURL = %q, want %q", client.baseURL, "http://localhost:50001")
	}
}

func TestNewClientWithOptions(t *testing.T) {
	customHTTPClient := &http.Client{Timeout: 60 * time.Second}
	client := NewClient(testConfig(), testLogger(),
		WithHTTPClient(customHTTPClient),
		WithBaseURL("http://example.test:1234/"))

	if client.httpClient != customHTTPClient {
		t.Error("custom HTTP client was not set")
	}
	if client.baseURL != "http://example.test:1234" {
		t.Errorf("baseURL = %q, trailing slash should be trimmed", client.baseURL)
	}
}

func TestCall_JSONObjectPassthrough(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": {"uuid": "abc-123", "name": "Sunday Service", "index": 0}}`))
	})

	result := client.Call(context.Background(), http.MethodGet, "/v1/presentation/active", nil)

	want := Result{
		"id": map[string]any{"uuid": "abc-123", "name": "Sunday Service", "index": float64(0)},
	}
	if !reflect.DeepEqual(result, want) {
		t.Errorf("result = %#v, want %#v", result, want)
	}
	if IsError(result) {
		t.Error("JSON object response should not be an error result")
	}
}

func TestCall_EmptyBody(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
	}{
		{"204 no content", http.StatusNoContent},
		{"200 empty body", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
			})

			result := client.Call(context.Background(), http.MethodGet, "/v1/clear/all", nil)

			want := Result{"status": "success", "message": SuccessMessage}
			if !reflect.DeepEqual(result, want) {
				t.Errorf("result = %#v, want %#v", result, want)
			}
		})
	}
}

func TestCall_NonJSONBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("ok, triggered"))
	})

	result := client.Call(context.Background(), http.MethodGet, "/v1/find_my_mouse", nil)

	want := Result{"status": "success", "data": "ok, triggered"}
	if !reflect.DeepEqual(result, want) {
		t.Errorf("result = %#v, want %#v", result, want)
	}
}

func TestCall_JSONArrayWrapped(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"name": "Look A"}, {"name": "Look B"}]`))
	})

	result := client.Call(context.Background(), http.MethodGet, "/v1/looks", nil)

	if result["status"] != "success" {
		t.Errorf("status = %v, want success", result["status"])
	}
	items, ok := result["data"].([]any)
	if !ok {
		t.Fatalf("data = %#v, want array", result["data"])
	}
	if len(items) != 2 {
		t.Errorf("len(data) = %d, want 2", len(items))
	}
}

func TestCall_StatusClassification(t *testing.T) {
	tests := []struct {
		name        string
		statusCode  int
		wantMessage string
	}{
		{"not found", http.StatusNotFound, "may not support"},
		{"unauthorized", http.StatusUnauthorized, "authentication"},
		{"forbidden", http.StatusForbidden, "authentication"},
		{"server error", http.StatusInternalServerError, "internal error"},
		{"other", http.StatusBadGateway, "HTTP 502"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte("nope"))
			})

			result := client.Call(context.Background(), http.MethodGet, "/v1/macros", nil)

			if !IsError(result) {
				t.Fatal("expected an error result")
			}
			if result["status_code"] != tt.statusCode {
				t.Errorf("status_code = %v, want %d", result["status_code"], tt.statusCode)
			}
			message, _ := result["message"].(string)
			if !strings.Contains(message, tt.wantMessage) {
				t.Errorf("message = %q, want substring %q", message, tt.wantMessage)
			}
		})
	}
}

func TestCall_ConnectionFailure(t *testing.T) {
	// Port 1 is never listening; the dial fails immediately
	config := &Config{Host: "127.0.0.1", Port: 1, Timeout: 2 * time.Second}
	client := NewClient(config, testLogger())

	result := client.Call(context.Background(), http.MethodGet, "/v1/presentation/active", nil)

	if !IsError(result) {
		t.Fatal("expected an error result")
	}
	message, _ := result["message"].(string)
	if !strings.Contains(message, "127.0.0.1:1") {
		t.Errorf("message should name the unreachable target, got %q", message)
	}
	if !strings.Contains(message, "Enable Network") {
		t.Errorf("message should suggest enabling the network API, got %q", message)
	}
	if _, ok := result["status_code"]; ok {
		t.Error("connection failures carry no HTTP status code")
	}
}

func TestCall_RequestBody(t *testing.T) {
	var gotContentType string
	var gotBody string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.WriteHeader(http.StatusNoContent)
	})

	result := client.Call(context.Background(), http.MethodPut, "/v1/stage/layout_map",
		map[string]string{"layout_id": "layout-1"})

	if IsError(result) {
		t.Fatalf("unexpected error result: %#v", result)
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", gotContentType)
	}
	if gotBody != `{"layout_id":"layout-1"}` {
		t.Errorf("body = %q, want %q", gotBody, `{"layout_id":"layout-1"}`)
	}
}

func TestCall_NoRequestBodyOnGet(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "" {
			t.Errorf("GET without body should not set Content-Type, got %q", r.Header.Get("Content-Type"))
		}
		w.WriteHeader(http.StatusNoContent)
	})

	client.Call(context.Background(), http.MethodGet, "/v1/looks", nil)
}

func TestIsError(t *testing.T) {
	tests := []struct {
		name   string
		result Result
		want   bool
	}{
		{"error result", Result{"status": "error", "message": "boom"}, true},
		{"success envelope", Result{"status": "success"}, false},
		{"raw payload", Result{"id": "abc"}, false},
		{"payload with non-string status", Result{"status": 1}, false},
		{"empty", Result{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsError(tt.result); got != tt.want {
				t.Errorf("IsError(%#v) = %v, want %v", tt.result, got, tt.want)
			}
		})
	}
}
