package validation

import "regexp"

var youtubePattern = regexp.MustCompile(`^.*(youtu.be/|v/|u/\w/|embed/|watch\?v=|&v=)([^#&?]*).*`)

// ExtractYouTubeID returns the 11-character video ID embedded in a YouTube
// URL (watch, short, embed and /v/ forms).
func ExtractYouTubeID(rawURL string) (string, bool) {
	m := youtubePattern.FindStringSubmatch(rawURL)
	if m == nil || len(m[2]) != 11 {
		return "", false
	}
	return m[2], true
}

// YouTubeThumbnail returns the high resolution still for a video ID.
func YouTubeThumbnail(id string) string {
	return "https://img.youtube.com/vi/" + id + "/maxresdefault.jpg"
}
