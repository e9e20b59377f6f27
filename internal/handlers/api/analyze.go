package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/requestid"

	"commentlens/internal/analysis"
	"commentlens/internal/metrics"
	"commentlens/internal/models"
	"commentlens/internal/validation"
)

// MsgAnalysisFailed is returned for any failure other than an invalid URL.
const MsgAnalysisFailed = "Failed to analyze YouTube comments"

var errMissingURL = errors.New("request body has no url")

type analyzer interface {
	Analyze(ctx context.Context, rawURL string) (*models.Analysis, error)
}

// AnalyzeHandler serves the analysis JSON API.
type AnalyzeHandler struct {
	analyzer analyzer
}

// NewAnalyzeHandler creates a new API analyze handler.
func NewAnalyzeHandler(a analyzer) *AnalyzeHandler {
	return &AnalyzeHandler{analyzer: a}
}

// Analyze accepts {"url": "..."} and returns the analysis for the video.
// A body that is not a JSON object with a string url is an unexpected
// failure, not an invalid URL.
func (h *AnalyzeHandler) Analyze(c fiber.Ctx) error {
	var body models.AnalyzeRequest
	err := json.Unmarshal(c.Body(), &body)
	if err == nil && body.URL == nil {
		err = errMissingURL
	}
	if err != nil {
		metrics.RecordOutcome("", models.OutcomeFailed)
		slog.Error("failed to decode analyze request",
			"request_id", requestid.FromContext(c),
			"error", err,
		)
		return jsonError(c, fiber.StatusInternalServerError, MsgAnalysisFailed)
	}

	rawURL := *body.URL
	channel := validation.Channel(rawURL)

	result, err := h.analyzer.Analyze(c.Context(), rawURL)
	if err != nil {
		if errors.Is(err, analysis.ErrInvalidURL) {
			metrics.RecordOutcome(channel, models.OutcomeInvalid)
			return jsonError(c, fiber.StatusBadRequest, validation.InvalidVideoURLMessage)
		}
		metrics.RecordOutcome(channel, models.OutcomeFailed)
		slog.Error("failed to analyze video comments",
			"request_id", requestid.FromContext(c),
			"channel", channel,
			"error", err,
		)
		return jsonError(c, fiber.StatusInternalServerError, MsgAnalysisFailed)
	}

	metrics.RecordOutcome(channel, models.OutcomeAnalyzed)
	return c.JSON(result)
}
