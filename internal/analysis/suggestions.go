package analysis

import (
	"fmt"

	"commentlens/internal/models"
)

// MinSuggestions is the number of suggestions below which the generic ones are added.
const MinSuggestions = 3

var genericSuggestions = []string{
	"Respond to more comments to increase engagement",
	"Add timestamps for different sections as requested by multiple viewers",
	"Consider creating follow-up content on topics that received positive comments",
}

// Suggest applies the suggestion rules in order. Each rule adds at most one
// entry; the generic suggestions are appended when fewer than MinSuggestions
// rules fired.
func Suggest(s models.SentimentBreakdown, t models.TopicBreakdown) []string {
	var out []string

	if t.AudioVisual > 25 {
		out = append(out, fmt.Sprintf("Improve audio/visual quality as %d%% of comments mention issues", t.AudioVisual))
	}

	if t.Length > 15 {
		verb := "adjusting"
		if t.Length > 25 {
			verb = "significantly shortening"
		}
		out = append(out, fmt.Sprintf("Consider %s video length as %d%% of viewers commented on it", verb, t.Length))
	}

	if t.Pacing > 10 {
		feel := "inconsistent"
		if t.Pacing > 15 {
			feel = "too slow"
		}
		out = append(out, fmt.Sprintf("Work on video pacing as %d%% of comments mention it feels %s", t.Pacing, feel))
	}

	if s.Positive < 60 {
		out = append(out, fmt.Sprintf("Focus on improving overall content as positive sentiment is only at %d%%", s.Positive))
	}

	if s.Negative > 15 {
		out = append(out, fmt.Sprintf("Address negative feedback urgently as %d%% of comments are negative", s.Negative))
	}

	if len(out) < MinSuggestions {
		out = append(out, genericSuggestions...)
	}

	return out
}
