// Package display holds what the terminal shows for the current thumbnail.
// State is a value: every transition returns a new State, and results from
// loads that were superseded by a newer Begin are dropped.
package display

import (
	"errors"
	"fmt"
	"strings"

	"ytthumb/internal/media"
)

// State is the current display target.
type State struct {
	gen uint64

	Result  *media.Result // nil when there is nothing to show
	Title   string
	Channel string
	Notice  string // Warning shown alongside a result
	Error   string // Error shown instead of a result
	CanSave bool
}

// Ticket identifies one load started with Begin.
type Ticket struct {
	gen uint64
}

// Begin starts a new load. Tickets from earlier Begins become stale.
func (s State) Begin() (State, Ticket) {
	s.gen++
	return s, Ticket{gen: s.gen}
}

// Stale reports whether t was superseded by a later Begin.
func (s State) Stale(t Ticket) bool {
	return t.gen != s.gen
}

// Apply folds a resolve outcome into the state. Stale tickets leave s unchanged.
func (s State) Apply(t Ticket, res *media.Result, err error) State {
	if s.Stale(t) {
		return s
	}

	next := State{gen: s.gen, Title: s.Title, Channel: s.Channel}
	if err != nil || res == nil || res.Outcome == media.Failed {
		next.Error = Message(err)
		return next
	}

	next.Result = res
	next.CanSave = true
	if res.Outcome == media.FallbackUsed {
		next.Notice = FallbackNotice
	}
	return next
}

// WithInfo returns s carrying the video's page metadata.
func (s State) WithInfo(info media.VideoInfo) State {
	s.Title = info.Title
	s.Channel = info.Channel
	return s
}

// User-facing messages.
const (
	EmptyInputMessage = "Please enter a video URL."
	FallbackNotice    = "The frame at the requested time is unavailable; showing the default frame instead."
	SaveFailedMessage = "Could not save automatically. The image was opened so you can save it manually."
	SaveManualMessage = "Could not save automatically. Save the image manually from:\n  "
)

// Message maps an error to the text shown to the user.
func Message(err error) string {
	var urlErr *media.URLError
	var loadErr *media.LoadError
	var saveErr *media.SaveError

	switch {
	case err == nil:
		return ""
	case errors.Is(err, media.ErrEmptyInput):
		return EmptyInputMessage
	case errors.As(err, &urlErr):
		return "Invalid URL. Accepted formats:\n  " + strings.Join(urlErr.Accepted, "\n  ")
	case errors.As(err, &loadErr):
		return fmt.Sprintf("Thumbnail in %q not found. Try another quality.", loadErr.Quality.String())
	case errors.As(err, &saveErr):
		if saveErr.Opened {
			return SaveFailedMessage
		}
		return SaveManualMessage + saveErr.URL
	case errors.Is(err, media.ErrSaveFailed):
		return SaveFailedMessage
	default:
		return err.Error()
	}
}
