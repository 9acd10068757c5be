// internal/domain/models/video.go
package models

import "regexp"

// VideoItem is a YouTube-hosted video in the home page's video section.
type VideoItem struct {
	Record

	VideoTitle       string `json:"videoTitle"`
	VideoDescription string `json:"videoDescription"`
	VideoURL         string `json:"videoUrl"`
}

// youtubeIDPattern matches the 11-character video id in the URL forms the
// backend accepts: watch?v=, youtu.be/, embed/ and shorts/.
var youtubeIDPattern = regexp.MustCompile(`(?:youtube\.com/(?:watch\?(?:.*&)?v=|embed/|shorts/)|youtu\.be/)([A-Za-z0-9_-]{11})`)

// YouTubeID extracts the video id from the item's URL. It returns "" when
// the URL does not resolve to a YouTube video.
func (v VideoItem) YouTubeID() string {
	m := youtubeIDPattern.FindStringSubmatch(v.VideoURL)
	if m == nil {
		return ""
	}
	return m[1]
}

// EmbedURL returns the privacy-friendly embed URL for the item, or "" when
// the video id cannot be resolved.
func (v VideoItem) EmbedURL() string {
	id := v.YouTubeID()
	if id == "" {
		return ""
	}
	return "https://www.youtube-nocookie.com/embed/" + id
}
