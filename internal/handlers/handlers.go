package handlers

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"commentlens/internal/models"
)

// Analyzer builds the analysis for a submitted video URL.
type Analyzer interface {
	Analyze(ctx context.Context, rawURL string) (*models.Analysis, error)
}

// isHTMX reports whether the request was issued by HTMX and expects a fragment.
func isHTMX(c fiber.Ctx) bool {
	return c.Get("HX-Request") == "true"
}
