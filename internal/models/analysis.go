package models

// AnalyzeRequest is the JSON body accepted by the analyze API.
// URL is nil when the field is absent or null.
type AnalyzeRequest struct {
	URL *string `json:"url"`
}

// SentimentBreakdown is the share of comments per sentiment, in percent.
// Neutral is derived from the other two and is not clamped.
type SentimentBreakdown struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

// Total returns the sum of all three shares.
func (s SentimentBreakdown) Total() int {
	return s.Positive + s.Neutral + s.Negative
}

// TopicBreakdown is the share of comments per discussed topic, in percent.
// Other is derived from the remaining topics and is not clamped.
type TopicBreakdown struct {
	ContentQuality int `json:"contentQuality"`
	AudioVisual    int `json:"audioVisual"`
	Length         int `json:"length"`
	Pacing         int `json:"pacing"`
	Other          int `json:"other"`
}

// Total returns the sum of all five shares.
func (t TopicBreakdown) Total() int {
	return t.ContentQuality + t.AudioVisual + t.Length + t.Pacing + t.Other
}

// Analysis is the demo comment analysis for a single video.
type Analysis struct {
	VideoID       string             `json:"videoId"`
	TotalComments int                `json:"totalComments"`
	Sentiment     SentimentBreakdown `json:"sentiment"`
	Topics        TopicBreakdown     `json:"topics"`
	Suggestions   []string           `json:"suggestions"`
}

// ErrorResponse is the JSON body returned by the API on failure.
type ErrorResponse struct {
	Error string `json:"error"`
}
