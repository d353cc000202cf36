package domain

import "strings"

// Extension sets understood by the player integration. Matching is
// case-insensitive on the final path component.
var (
	videoExtensions = []string{".mp4", ".avi", ".mov", ".mkv"}
	imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif"}
)

// IsVideo reports whether the name or URL looks like a video file.
func IsVideo(name string) bool {
	return hasAnySuffix(name, videoExtensions)
}

// IsImage reports whether the name or URL looks like an image file.
func IsImage(name string) bool {
	return hasAnySuffix(name, imageExtensions)
}

func hasAnySuffix(name string, suffixes []string) bool {
	lower := strings.ToLower(name)
	for _, suffix := range suffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}
