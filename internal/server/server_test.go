package server

import (
	"encoding/json"
	"io"
	"net/http"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"

	"commentlens/internal/analysis"
	"commentlens/internal/config"
)

func newTestServer(t *testing.T, rateLimit int) *Server {
	t.Helper()

	cfg := &config.Config{
		Env:             "test",
		BaseURL:         "http://localhost:3000",
		ViewsDir:        "../../views",
		StaticDir:       "../../static",
		RateLimitMax:    rateLimit,
		RateLimitWindow: time.Minute,
		SiteTitle:       "YouTube Comment Analyzer",
		SiteFooter:      "Demo build",
	}

	s := New(cfg, nil)
	s.RegisterRoutes(analysis.NewService(), nil)
	return s
}

func do(t *testing.T, s *Server, method, path, body string) (*http.Response, string) {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req, _ := http.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.App.Test(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	return resp, string(data)
}

func TestRoutes(t *testing.T) {
	s := newTestServer(t, 100)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{"index page", http.MethodGet, "/", "", fiber.StatusOK, "Demo Version"},
		{"api analyze", http.MethodPost, "/api/analyze", `{"url":"https://www.youtube.com/watch?v=abc"}`, fiber.StatusOK, `"totalComments":854`},
		{"api invalid url", http.MethodPost, "/api/analyze", `{"url":"https://vimeo.com/12345"}`, fiber.StatusBadRequest, `{"error":"Invalid YouTube URL"}`},
		{"api missing url", http.MethodPost, "/api/analyze", `{}`, fiber.StatusInternalServerError, `{"error":"Failed to analyze YouTube comments"}`},
		{"liveness", http.MethodGet, "/healthz", "", fiber.StatusOK, `"status":"ok"`},
		{"readiness without store", http.MethodGet, "/readyz", "", fiber.StatusOK, `"status":"ok"`},
		{"metrics", http.MethodGet, "/metrics", "", fiber.StatusOK, "go_goroutines"},
		{"static css", http.MethodGet, "/static/css/app.css", "", fiber.StatusOK, "--chart-1"},
		{"unknown page", http.MethodGet, "/nope", "", fiber.StatusNotFound, "Back to the analyzer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := do(t, s, tt.method, tt.path, tt.body)
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d: %s", resp.StatusCode, tt.wantStatus, body)
			}
			if !strings.Contains(body, tt.wantBody) {
				t.Errorf("body missing %q: %s", tt.wantBody, body)
			}
			if resp.Header.Get("X-Request-ID") == "" {
				t.Error("missing X-Request-ID header")
			}
		})
	}
}

func TestUnknownAPIRouteReturnsJSON(t *testing.T) {
	s := newTestServer(t, 100)

	resp, body := do(t, s, http.MethodGet, "/api/unknown", "")
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}

	var got map[string]string
	if err := json.Unmarshal([]byte(body), &got); err != nil {
		t.Fatalf("body is not JSON: %v: %s", err, body)
	}
	if got["error"] == "" {
		t.Errorf("body = %v, want an error message", got)
	}
}

func TestErrorPageCarriesBranding(t *testing.T) {
	s := newTestServer(t, 100)

	resp, body := do(t, s, http.MethodGet, "/nope", "")
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
	for _, want := range []string{"Error - YouTube Comment Analyzer", "Demo build"} {
		if !strings.Contains(body, want) {
			t.Errorf("error page missing %q", want)
		}
	}
}

func TestRateLimit(t *testing.T) {
	s := newTestServer(t, 2)

	for i := 0; i < 2; i++ {
		if resp, _ := do(t, s, http.MethodGet, "/", ""); resp.StatusCode != fiber.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i+1, resp.StatusCode)
		}
	}

	resp, body := do(t, s, http.MethodGet, "/", "")
	if resp.StatusCode != fiber.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", resp.StatusCode)
	}
	if !strings.Contains(body, "Rate limit exceeded") {
		t.Errorf("body = %s, want rate limit message", body)
	}

	// Probes are never limited.
	if resp, _ := do(t, s, http.MethodGet, "/healthz", ""); resp.StatusCode != fiber.StatusOK {
		t.Errorf("/healthz status = %d, want 200", resp.StatusCode)
	}
}

func TestSplitOrigins(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"http://localhost:3000", []string{"http://localhost:3000"}},
		{"https://a.example.com, https://b.example.com", []string{"https://a.example.com", "https://b.example.com"}},
		{" ,https://a.example.com,", []string{"https://a.example.com"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := splitOrigins(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitOrigins(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
