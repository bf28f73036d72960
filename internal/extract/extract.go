// Package extract pulls the video identifier out of free-form video URLs.
// Each accepted URL shape is a regexp tried in a fixed priority order; the
// first capture of exactly 11 characters wins.
package extract

import (
	"regexp"
	"strings"

	"github.com/samber/mo"

	"ytthumb/internal/media"
)

// Extractor modes accepted by New.
const (
	ModeStrict  = "strict"
	ModeGeneric = "generic"
)

// Matcher is one accepted URL shape. Pattern must have one capture group
// holding the identifier.
type Matcher struct {
	Name    string
	Example string
	Pattern *regexp.Regexp
}

// Extractor evaluates its matchers in order.
type Extractor struct {
	matchers []Matcher
}

// idEnd requires the identifier to stop at a delimiter or the end of input,
// so a longer token is rejected instead of truncated.
const idEnd = `(?:[#&?/]|$)`

// Strict accepts short links, watch pages, live pages and shorts, in that order.
func Strict() *Extractor {
	return &Extractor{matchers: []Matcher{
		{"short link", "youtu.be/ID", regexp.MustCompile(`youtu\.be/([^#&?/]{11})` + idEnd)},
		{"watch", "youtube.com/watch?v=ID", regexp.MustCompile(`youtube\.com/watch\?v=([^#&?/]{11})` + idEnd)},
		{"live", "youtube.com/live/ID", regexp.MustCompile(`youtube\.com/live/([^#&?/]{11})` + idEnd)},
		{"shorts", "youtube.com/shorts/ID", regexp.MustCompile(`youtube\.com/shorts/([^#&?/]{11})` + idEnd)},
	}}
}

// Generic accepts anything the catch-all pattern captures, as long as the
// capture is exactly 11 characters.
func Generic() *Extractor {
	return &Extractor{matchers: []Matcher{
		{
			"generic",
			"youtu.be/ID, .../embed/ID, .../v/ID, ...?v=ID",
			regexp.MustCompile(`(?:youtu\.be/|v/|u/\w/|embed/|shorts/|live/|watch\?v=|&v=)([^#&?]*)`),
		},
	}}
}

// New returns the extractor for a config mode. Unknown modes get Strict.
func New(mode string) *Extractor {
	if strings.EqualFold(mode, ModeGeneric) {
		return Generic()
	}
	return Strict()
}

// Extract returns the identifier from rawURL, or None if no shape matched.
func (e *Extractor) Extract(rawURL string) mo.Option[media.VideoID] {
	for _, m := range e.matchers {
		sub := m.Pattern.FindStringSubmatch(rawURL)
		if len(sub) < 2 {
			continue
		}
		// The generic pattern captures greedily; a wrong-length or
		// malformed capture means this shape did not hold an identifier.
		if id := media.VideoID(sub[1]); id.Valid() {
			return mo.Some(id)
		}
	}
	return mo.None[media.VideoID]()
}

// Parse is Extract with the command-layer error semantics: empty input is
// ErrEmptyInput and an unmatched URL is a *media.URLError.
func (e *Extractor) Parse(rawURL string) (media.VideoID, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", media.ErrEmptyInput
	}
	id, ok := e.Extract(rawURL).Get()
	if !ok {
		return "", &media.URLError{Input: rawURL, Accepted: e.Examples()}
	}
	return id, nil
}

// Examples lists the accepted URL shapes in priority order.
func (e *Extractor) Examples() []string {
	out := make([]string, len(e.matchers))
	for i, m := range e.matchers {
		out[i] = m.Example
	}
	return out
}
