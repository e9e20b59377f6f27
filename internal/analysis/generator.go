// Package analysis produces the deterministic demo comment analysis for a video.
//
// Nothing here looks at real comments. The video ID is hashed and the hash is
// spread over a handful of bounded percentages, so the same video always
// yields the same charts and suggestions.
package analysis

import (
	"commentlens/internal/models"
)

// Field ranges as floor and width: each value lies in [floor, floor+width).
const (
	positiveFloor, positiveWidth             = 40, 50
	negativeFloor, negativeWidth             = 5, 15
	contentQualityFloor, contentQualityWidth = 20, 40
	audioVisualFloor, audioVisualWidth       = 15, 30
	lengthFloor, lengthWidth                 = 5, 20
	pacingFloor, pacingWidth                 = 5, 15
	commentFloor, commentWidth               = 500, 2000
)

// Generate builds the analysis for a video ID. It is total: the empty ID is
// valid and hashes to zero.
func Generate(videoID string) *models.Analysis {
	h := Hash(videoID)

	sentiment := SentimentFor(h)
	topics := TopicsFor(h)

	return &models.Analysis{
		VideoID:       videoID,
		TotalComments: CommentCountFor(h),
		Sentiment:     sentiment,
		Topics:        topics,
		Suggestions:   Suggest(sentiment, topics),
	}
}

// SentimentFor derives the sentiment breakdown from a hash.
// Neutral takes the remainder and goes negative when positive+negative > 100.
func SentimentFor(h int32) models.SentimentBreakdown {
	positive := bounded(h, 0, positiveFloor, positiveWidth)
	negative := bounded(h, 4, negativeFloor, negativeWidth)
	return models.SentimentBreakdown{
		Positive: positive,
		Neutral:  100 - positive - negative,
		Negative: negative,
	}
}

// TopicsFor derives the topic breakdown from a hash.
// Other takes the remainder and may go negative, like neutral sentiment.
func TopicsFor(h int32) models.TopicBreakdown {
	t := models.TopicBreakdown{
		ContentQuality: bounded(h, 8, contentQualityFloor, contentQualityWidth),
		AudioVisual:    bounded(h, 12, audioVisualFloor, audioVisualWidth),
		Length:         bounded(h, 16, lengthFloor, lengthWidth),
		Pacing:         bounded(h, 20, pacingFloor, pacingWidth),
	}
	t.Other = 100 - t.ContentQuality - t.AudioVisual - t.Length - t.Pacing
	return t
}

// CommentCountFor derives the reported number of analyzed comments.
func CommentCountFor(h int32) int {
	return bounded(h, 0, commentFloor, commentWidth)
}
