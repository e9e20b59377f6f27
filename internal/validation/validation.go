package validation

import (
	"strings"
)

// Recognized video link markers.
const (
	MarkerWatch = "youtube.com/"
	MarkerShort = "youtu.be/"
)

// Channel labels reported by Channel.
const (
	ChannelWatch = "youtube.com"
	ChannelShort = "youtu.be"
)

const (
	watchParam = "watch?v="
	watchURL   = "youtube.com/" + watchParam
)

// InvalidVideoURLMessage is shown to API callers when a URL is rejected.
const InvalidVideoURLMessage = "Invalid YouTube URL"

// ValidateVideoURL checks that a URL contains one of the recognized video link markers.
// The check is a plain substring match; scheme and host are not parsed.
func ValidateVideoURL(urlStr string) (bool, string) {
	if Channel(urlStr) == "" {
		return false, InvalidVideoURLMessage
	}
	return true, ""
}

// Channel reports which marker a URL carries, or "" if it carries neither.
// The watch marker wins when both are present.
func Channel(urlStr string) string {
	switch {
	case strings.Contains(urlStr, MarkerWatch):
		return ChannelWatch
	case strings.Contains(urlStr, MarkerShort):
		return ChannelShort
	default:
		return ""
	}
}

// ExtractVideoID returns the video ID token of a watch or short link.
// Any other URL, including valid ones like /shorts/ links, yields "".
func ExtractVideoID(urlStr string) string {
	switch {
	case strings.Contains(urlStr, watchURL):
		return segment(urlStr, watchParam, "&")
	case strings.Contains(urlStr, MarkerShort):
		return segment(urlStr, MarkerShort, "?")
	default:
		return ""
	}
}

// segment returns the text between the first and second occurrence of sep,
// cut at the first occurrence of stop.
func segment(s, sep, stop string) string {
	parts := strings.Split(s, sep)
	if len(parts) < 2 {
		return ""
	}
	token, _, _ := strings.Cut(parts[1], stop)
	return token
}
