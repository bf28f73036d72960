package provider

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"ytthumb/internal/media"
)

// parseInfo extracts the title and channel name from a watch page.
// Open Graph tags come first; the document title and itemprop markup are fallbacks.
func parseInfo(doc *goquery.Document) *media.VideoInfo {
	info := &media.VideoInfo{}

	info.Title = attr(doc, `meta[property="og:title"]`, "content")
	if info.Title == "" {
		info.Title = attr(doc, `meta[name="title"]`, "content")
	}
	if info.Title == "" {
		title := strings.TrimSpace(doc.Find("title").First().Text())
		info.Title = strings.TrimSpace(strings.TrimSuffix(title, "- YouTube"))
	}

	info.Channel = attr(doc, `span[itemprop="author"] link[itemprop="name"]`, "content")
	if info.Channel == "" {
		info.Channel = attr(doc, `link[itemprop="name"]`, "content")
	}

	return info
}

func attr(doc *goquery.Document, selector, name string) string {
	return strings.TrimSpace(doc.Find(selector).First().AttrOr(name, ""))
}
