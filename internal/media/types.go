// Package media defines shared types for the ytthumb application.
package media

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/samber/mo"
)

// IDLength is the fixed length of a video identifier.
const IDLength = 11

var (
	// ErrInvalidInput is returned for empty or unparseable input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyInput is returned when no URL was given.
	ErrEmptyInput = fmt.Errorf("%w: empty URL", ErrInvalidInput)

	// ErrUnrecognizedURL is returned when no accepted URL shape matched.
	ErrUnrecognizedURL = fmt.Errorf("%w: unrecognized video URL", ErrInvalidInput)

	// ErrResourceNotFound is returned when a thumbnail could not be loaded for a tier.
	ErrResourceNotFound = errors.New("thumbnail not found")

	// ErrSaveFailed is returned when the image could not be saved locally.
	ErrSaveFailed = errors.New("save failed")
)

// URLError reports input that matched none of the accepted URL shapes.
type URLError struct {
	Input    string
	Accepted []string
}

func (e *URLError) Error() string {
	return fmt.Sprintf("unrecognized video URL %q (accepted: %s)", e.Input, strings.Join(e.Accepted, ", "))
}

// Is makes URLError match ErrUnrecognizedURL and ErrInvalidInput.
func (e *URLError) Is(target error) bool {
	return target == ErrUnrecognizedURL || target == ErrInvalidInput
}

// LoadError reports a thumbnail that could not be loaded for a tier.
type LoadError struct {
	Quality Quality
	Err     error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("thumbnail not found in %q: %v", e.Quality.String(), e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Is makes LoadError match ErrResourceNotFound.
func (e *LoadError) Is(target error) bool {
	return target == ErrResourceNotFound
}

// SaveError reports a failed save. Opened is true when the image URL was
// handed to the system handler for a manual save.
type SaveError struct {
	URL    string
	Opened bool
	Err    error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("save failed: %v", e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }

// Is makes SaveError match ErrSaveFailed.
func (e *SaveError) Is(target error) bool {
	return target == ErrSaveFailed
}

// Identifiers may hold any character except URL delimiters and whitespace.
var idPattern = regexp.MustCompile(`^[^#&?/\s]{11}$`)

// VideoID is the 11-character token naming a video on the host platform.
type VideoID string

// Valid reports whether the identifier has the expected shape.
func (id VideoID) Valid() bool {
	return idPattern.MatchString(string(id))
}

func (id VideoID) String() string { return string(id) }

// Quality selects the preview image resolution/crop.
type Quality int

const (
	MaxRes Quality = iota // maxresdefault
	SD                    // sddefault
	HQ                    // hqdefault
	MQ                    // mqdefault
	Default               // default
)

// Qualities lists every tier, highest resolution first.
var Qualities = []Quality{MaxRes, SD, HQ, MQ, Default}

func (q Quality) String() string {
	switch q {
	case MaxRes:
		return "maxresdefault"
	case SD:
		return "sddefault"
	case HQ:
		return "hqdefault"
	case MQ:
		return "mqdefault"
	case Default:
		return "default"
	default:
		return "unknown"
	}
}

// Label is the human-readable tier description.
func (q Quality) Label() string {
	switch q {
	case MaxRes:
		return "Max resolution (1280x720)"
	case SD:
		return "Standard definition (640x480)"
	case HQ:
		return "High quality (480x360)"
	case MQ:
		return "Medium quality (320x180)"
	case Default:
		return "Default (120x90)"
	default:
		return "Unknown"
	}
}

// MarshalText encodes the tier by name.
func (q Quality) MarshalText() ([]byte, error) {
	return []byte(q.String()), nil
}

// Valid reports whether q is one of the known tiers.
func (q Quality) Valid() bool {
	return q >= MaxRes && q <= Default
}

// FullFrame reports whether the tier always serves the full frame and
// ignores any time offset.
func (q Quality) FullFrame() bool {
	return q == MaxRes || q == SD || q == HQ
}

// ParseQuality maps a tier name to its Quality.
func ParseQuality(s string) (Quality, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, q := range Qualities {
		if q.String() == name {
			return q, nil
		}
	}
	return 0, fmt.Errorf("unsupported quality %q (valid: %s)", s, QualityNames())
}

// QualityNames returns the comma-separated list of tier names.
func QualityNames() string {
	names := make([]string, len(Qualities))
	for i, q := range Qualities {
		names[i] = q.String()
	}
	return strings.Join(names, ", ")
}

// TimeOffset is an optional number of seconds into the video.
type TimeOffset = mo.Option[int]

// NoTime is the absent time offset.
func NoTime() TimeOffset { return mo.None[int]() }

// At returns a time offset clamped to be non-negative.
func At(seconds int) TimeOffset {
	if seconds < 0 {
		seconds = 0
	}
	return mo.Some(seconds)
}

// Request describes one thumbnail to resolve. It is never stored.
type Request struct {
	ID      VideoID
	Quality Quality
	Time    TimeOffset
}

// Validate checks the request invariants.
func (r Request) Validate() error {
	if !r.ID.Valid() {
		return fmt.Errorf("%w: video ID %q", ErrInvalidInput, r.ID)
	}
	if !r.Quality.Valid() {
		return fmt.Errorf("%w: quality %d", ErrInvalidInput, int(r.Quality))
	}
	return nil
}

// Seconds returns the clamped offset, or 0 when absent.
func (r Request) Seconds() int {
	s := r.Time.OrElse(0)
	if s < 0 {
		return 0
	}
	return s
}

// Outcome is how a thumbnail load finished.
type Outcome int

const (
	Primary Outcome = iota
	FallbackUsed
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Primary:
		return "primary"
	case FallbackUsed:
		return "fallback"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// MarshalText encodes the outcome by name.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Image is a loaded preview image.
type Image struct {
	URL    string
	Width  int
	Height int
}

// Result is the immutable outcome of resolving a Request.
type Result struct {
	ID      VideoID `json:"id"`
	Outcome Outcome `json:"outcome"`
	URL     string  `json:"url,omitempty"`
	Width   int     `json:"width,omitempty"`
	Height  int     `json:"height,omitempty"`
	Quality Quality `json:"quality"`
	Time    int     `json:"time"` // Seconds actually used, 0 when ignored or on fallback
}

// Dimensions formats the natural size as WxH.
func (r Result) Dimensions() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// VideoInfo is page metadata for a video.
type VideoInfo struct {
	Title   string
	Channel string
}

// SavedEntry is one row of the saved-file log.
type SavedEntry struct {
	ID      VideoID
	Quality string
	Time    int    // Seconds
	Path    string // Absolute path of the saved file
	Title   string // Video title, if looked up
	SavedAt int64  // Unix seconds
}
