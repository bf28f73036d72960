package thumbnail

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"net/http"

	_ "golang.org/x/image/webp"

	"ytthumb/internal/httputil"
	"ytthumb/internal/media"
)

// Loader fetches an image and reports its natural dimensions.
type Loader interface {
	Load(ctx context.Context, url string) (media.Image, error)
}

// HTTPLoader loads images over HTTPS.
type HTTPLoader struct {
	client *http.Client
	hosts  []string
}

// NewHTTPLoader creates a loader on the given client. When hosts is not
// empty, URLs on any other host are refused before a request is made.
func NewHTTPLoader(client *http.Client, hosts ...string) *HTTPLoader {
	return &HTTPLoader{client: client, hosts: hosts}
}

// Load fetches url and decodes only the image header.
func (l *HTTPLoader) Load(ctx context.Context, url string) (media.Image, error) {
	if len(l.hosts) > 0 {
		if err := httputil.ValidateHost(url, l.hosts...); err != nil {
			return media.Image{}, err
		}
	}
	data, err := httputil.GetBytes(ctx, l.client, url, "image/avif,image/webp,image/*,*/*;q=0.8")
	if err != nil {
		return media.Image{}, err
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return media.Image{}, fmt.Errorf("decoding image header: %w", err)
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		return media.Image{}, fmt.Errorf("empty %s image", format)
	}

	return media.Image{URL: url, Width: cfg.Width, Height: cfg.Height}, nil
}
