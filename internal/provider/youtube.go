package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/PuerkitoBio/goquery"

	"ytthumb/internal/httputil"
	"ytthumb/internal/media"
)

// YouTube reads metadata from the public watch page.
type YouTube struct {
	base   string // e.g., "https://www.youtube.com"
	client *http.Client
}

// NewYouTube creates a YouTube provider. An empty base selects www.youtube.com.
func NewYouTube(client *http.Client, base string) *YouTube {
	if base == "" {
		base = "https://www.youtube.com"
	}
	return &YouTube{base: base, client: client}
}

// WatchURL returns the canonical watch page URL for id.
func (y *YouTube) WatchURL(id media.VideoID) string {
	return y.base + "/watch?v=" + url.QueryEscape(string(id))
}

// Info fetches the watch page and reads its Open Graph metadata.
func (y *YouTube) Info(ctx context.Context, id media.VideoID) (*media.VideoInfo, error) {
	if !id.Valid() {
		return nil, fmt.Errorf("%w: video ID %q", media.ErrInvalidInput, id)
	}

	doc, err := y.fetchDocument(ctx, y.WatchURL(id))
	if err != nil {
		return nil, fmt.Errorf("getting video page: %w", err)
	}

	info := parseInfo(doc)
	if info.Title == "" {
		return nil, fmt.Errorf("no title found for %s", id)
	}
	return info, nil
}

// fetchDocument fetches a URL and parses it into a goquery Document.
func (y *YouTube) fetchDocument(ctx context.Context, url string) (*goquery.Document, error) {
	resp, err := httputil.Get(ctx, y.client, url, "")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &httputil.StatusError{Code: resp.StatusCode, URL: url}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	return doc, nil
}
