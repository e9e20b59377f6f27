package analysis

import "errors"

var (
	// ErrInvalidURL is returned when a URL carries no recognized video link marker.
	ErrInvalidURL = errors.New("invalid video url")

	// ErrAnalysisFailed wraps any unexpected failure while building an analysis.
	ErrAnalysisFailed = errors.New("analysis failed")
)
