package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"

	"commentlens/internal/analysis"
	"commentlens/internal/config"
	"commentlens/internal/models"
	"commentlens/internal/views"
)

type failingAnalyzer struct{}

func (failingAnalyzer) Analyze(ctx context.Context, rawURL string) (*models.Analysis, error) {
	if _, err := analysis.NewService().Analyze(ctx, rawURL); errors.Is(err, analysis.ErrInvalidURL) {
		return nil, err
	}
	return nil, errors.New("boom")
}

func newTestApp(t *testing.T, analyzer Analyzer) *fiber.App {
	t.Helper()

	cfg := &config.Config{
		SiteTitle:   "YouTube Comment Analyzer",
		SiteTagline: "Enter a YouTube video URL",
		SiteFooter:  "demo",
	}
	app := fiber.New(fiber.Config{
		Views:       views.New("../../views", false),
		ViewsLayout: "layouts/main",
	})

	h := NewAnalyzerHandler(analyzer, cfg, config.DefaultYAMLConfig().Charts)
	app.Get("/", h.Index)
	app.Post("/analyze", h.Analyze)
	return app
}

func submit(t *testing.T, app *fiber.App, videoURL string, htmx bool) (int, string) {
	t.Helper()

	form := url.Values{"url": {videoURL}}
	req, _ := http.NewRequest(http.MethodPost, "/analyze", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if htmx {
		req.Header.Set("HX-Request", "true")
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func TestAnalyzerHandler_Index(t *testing.T) {
	app := newTestApp(t, analysis.NewService())

	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200: %s", resp.StatusCode, body)
	}
	for _, want := range []string{"Demo Version", "Analyze YouTube Comments", `name="url"`} {
		if !strings.Contains(string(body), want) {
			t.Errorf("page missing %q", want)
		}
	}
	if strings.Contains(string(body), "Improvement Suggestions") {
		t.Error("empty page renders results")
	}
}

func TestAnalyzerHandler_Analyze(t *testing.T) {
	app := newTestApp(t, analysis.NewService())

	status, body := submit(t, app, "https://www.youtube.com/watch?v=abc", false)
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200: %s", status, body)
	}

	for _, want := range []string{
		"<html",
		"Sentiment Analysis",
		"Comment Topics",
		"44% Positive",
		"12% Negative",
		"Improve audio/visual quality as 38% of comments mention issues",
		"Focus on improving overall content as positive sentiment is only at 44%",
		"Respond to more comments to increase engagement",
		"Analysis based on 854 comments from the provided video",
		"Audio/Visual",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestAnalyzerHandler_Analyze_HTMXFragment(t *testing.T) {
	app := newTestApp(t, analysis.NewService())

	status, body := submit(t, app, "https://youtu.be/dQw4w9WgXcQ", true)
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if strings.Contains(body, "<html") {
		t.Error("HTMX response includes the layout")
	}
	if !strings.Contains(body, "Analysis based on 1,982 comments") {
		t.Error("fragment missing formatted comment count")
	}
}

func TestAnalyzerHandler_Analyze_NegativeRemainderBar(t *testing.T) {
	app := newTestApp(t, analysis.NewService())

	_, body := submit(t, app, "https://www.youtube.com/watch?v=jNQXAC9IVRw", true)
	if !strings.Contains(body, "-3%") {
		t.Error("negative remainder value not shown as is")
	}
	if !strings.Contains(body, "width: 0%") {
		t.Error("negative remainder bar not clamped to zero width")
	}
}

func TestAnalyzerHandler_Analyze_Errors(t *testing.T) {
	tests := []struct {
		name       string
		analyzer   Analyzer
		url        string
		htmx       bool
		wantStatus int
		wantMsg    string
	}{
		{"invalid url", analysis.NewService(), "https://vimeo.com/12345", false, fiber.StatusBadRequest, MsgInvalidURL},
		{"invalid url htmx", analysis.NewService(), "https://vimeo.com/12345", true, fiber.StatusOK, MsgInvalidURL},
		{"unexpected failure", failingAnalyzer{}, "https://youtu.be/abc", false, fiber.StatusInternalServerError, MsgAnalysisFailed},
		{"unexpected failure htmx", failingAnalyzer{}, "https://youtu.be/abc", true, fiber.StatusOK, MsgAnalysisFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t, tt.analyzer)

			status, body := submit(t, app, tt.url, tt.htmx)
			if status != tt.wantStatus {
				t.Errorf("status = %d, want %d", status, tt.wantStatus)
			}
			if !strings.Contains(body, tt.wantMsg) {
				t.Errorf("body missing %q", tt.wantMsg)
			}
			if strings.Contains(body, "Improvement Suggestions") {
				t.Error("error response renders results")
			}
		})
	}
}
