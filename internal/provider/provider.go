// Package provider looks up page metadata for videos on their hosting site.
package provider

import (
	"context"

	"ytthumb/internal/media"
)

// Provider returns metadata for a video identifier.
type Provider interface {
	// Info returns the title and channel of a video.
	Info(ctx context.Context, id media.VideoID) (*media.VideoInfo, error)
}
