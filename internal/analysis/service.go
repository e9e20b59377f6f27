package analysis

import (
	"context"
	"fmt"

	"commentlens/internal/models"
	"commentlens/internal/validation"
)

// Service validates submitted URLs and builds analyses for them.
// The page handlers and the JSON API share one Service.
type Service struct {
	generate func(videoID string) *models.Analysis
}

// NewService creates a service backed by Generate.
func NewService() *Service {
	return &Service{generate: Generate}
}

// Analyze validates rawURL, extracts its video ID and generates the analysis.
// It returns ErrInvalidURL without doing any work for unrecognized URLs, and
// an error wrapping ErrAnalysisFailed if generation panics. Generation does
// not block, so ctx is not consulted.
func (s *Service) Analyze(_ context.Context, rawURL string) (a *models.Analysis, err error) {
	if valid, _ := validation.ValidateVideoURL(rawURL); !valid {
		return nil, ErrInvalidURL
	}

	defer func() {
		if r := recover(); r != nil {
			a = nil
			err = fmt.Errorf("%w: %v", ErrAnalysisFailed, r)
		}
	}()

	return s.generate(validation.ExtractVideoID(rawURL)), nil
}
