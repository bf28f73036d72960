// Package thumbnail resolves preview images for a video: it builds the image
// host URL for a tier and time offset, loads it, and falls back once to the
// time-less URL when a time-indexed frame is unavailable.
package thumbnail

import (
	"strconv"

	"ytthumb/internal/httputil"
	"ytthumb/internal/media"
)

// DefaultBase is the image host path that identifiers are appended to.
const DefaultBase = "https://img.youtube.com/vi"

// Hosts are the thumbnail CDN hosts the HTTP loader accepts in production.
var Hosts = []string{"img.youtube.com", "i.ytimg.com"}

// SpriteInterval is the number of seconds covered by one sprite frame.
const SpriteInterval = 10

// Segment returns the file stem for a tier at the given offset: the tier name,
// or the tier name followed by the sprite index for time-indexed tiers.
func Segment(q media.Quality, seconds int) string {
	if seconds <= 0 || q.FullFrame() {
		return q.String()
	}
	return q.String() + strconv.Itoa(seconds/SpriteInterval)
}

// UsesTime reports whether a request at this offset addresses a sprite frame.
func UsesTime(q media.Quality, seconds int) bool {
	return seconds > 0 && !q.FullFrame()
}

// URL builds the image URL under base.
func URL(base string, id media.VideoID, q media.Quality, seconds int) string {
	return httputil.BuildURL(base, string(id), Segment(q, seconds)+".jpg")
}
