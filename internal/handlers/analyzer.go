package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/requestid"

	"commentlens/internal/analysis"
	"commentlens/internal/config"
	"commentlens/internal/metrics"
	"commentlens/internal/models"
	"commentlens/internal/validation"
)

// Messages shown on the page.
const (
	MsgInvalidURL     = "Please enter a valid YouTube URL"
	MsgAnalysisFailed = "Failed to analyze video comments"
)

// AnalyzerHandler serves the analyzer page and its form submissions.
type AnalyzerHandler struct {
	analyzer Analyzer
	cfg      *config.Config
	charts   config.ChartsConfig
}

// NewAnalyzerHandler creates a new analyzer page handler.
func NewAnalyzerHandler(analyzer Analyzer, cfg *config.Config, charts config.ChartsConfig) *AnalyzerHandler {
	return &AnalyzerHandler{analyzer: analyzer, cfg: cfg, charts: charts}
}

// ResultView is the template model for one rendered analysis.
type ResultView struct {
	Analysis      *models.Analysis
	SentimentBars []models.ChartBar
	TopicBars     []models.ChartBar
}

// Index renders the analyzer page with an empty form.
func (h *AnalyzerHandler) Index(c fiber.Ctx) error {
	return c.Render("index", MergeBranding(fiber.Map{
		"Title": "Analyze YouTube Comments",
	}, h.cfg))
}

// Analyze handles the form submission. HTMX requests get the results
// fragment; plain form posts get the full page.
func (h *AnalyzerHandler) Analyze(c fiber.Ctx) error {
	url := c.FormValue("url")
	channel := validation.Channel(url)

	data := fiber.Map{
		"Title": "Analyze YouTube Comments",
		"URL":   url,
	}
	status := fiber.StatusOK

	result, err := h.analyzer.Analyze(c.Context(), url)
	switch {
	case err == nil:
		metrics.RecordOutcome(channel, models.OutcomeAnalyzed)
		data["Result"] = h.view(result)
	case errors.Is(err, analysis.ErrInvalidURL):
		metrics.RecordOutcome(channel, models.OutcomeInvalid)
		data["Error"] = MsgInvalidURL
		status = fiber.StatusBadRequest
	default:
		metrics.RecordOutcome(channel, models.OutcomeFailed)
		slog.Error("failed to analyze video comments",
			"request_id", requestid.FromContext(c),
			"channel", channel,
			"error", err,
		)
		data["Error"] = MsgAnalysisFailed
		status = fiber.StatusInternalServerError
	}

	// HTMX only swaps 2xx responses.
	if isHTMX(c) {
		return c.Render("partials/results", data, "")
	}

	return c.Status(status).Render("index", MergeBranding(data, h.cfg))
}

func (h *AnalyzerHandler) view(a *models.Analysis) *ResultView {
	s, t := h.charts.Sentiment, h.charts.Topics
	return &ResultView{
		Analysis: a,
		SentimentBars: []models.ChartBar{
			{Name: s.Positive.Label, Value: a.Sentiment.Positive, Color: s.Positive.Color},
			{Name: s.Neutral.Label, Value: a.Sentiment.Neutral, Color: s.Neutral.Color},
			{Name: s.Negative.Label, Value: a.Sentiment.Negative, Color: s.Negative.Color},
		},
		TopicBars: []models.ChartBar{
			{Name: t.ContentQuality.Label, Value: a.Topics.ContentQuality, Color: t.ContentQuality.Color},
			{Name: t.AudioVisual.Label, Value: a.Topics.AudioVisual, Color: t.AudioVisual.Color},
			{Name: t.Length.Label, Value: a.Topics.Length, Color: t.Length.Color},
			{Name: t.Pacing.Label, Value: a.Topics.Pacing, Color: t.Pacing.Color},
			{Name: t.Other.Label, Value: a.Topics.Other, Color: t.Other.Color},
		},
	}
}
