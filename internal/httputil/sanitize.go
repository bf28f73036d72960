package httputil

import (
	"fmt"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/samber/lo"
)

// unsafeChars matches characters that are invalid in file names on at least one OS.
var unsafeChars = regexp.MustCompile(`[/\\:*?"<>|\x00-\x1f]`)

// ValidateURL checks that a URL is well-formed and uses HTTPS.
func ValidateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("malformed URL: %w", err)
	}
	if u.Scheme != "https" {
		return fmt.Errorf("only HTTPS URLs are allowed, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("URL has no host")
	}
	return nil
}

// ValidateHost checks ValidateURL and that the host is one of allowed.
func ValidateHost(rawURL string, allowed ...string) error {
	if err := ValidateURL(rawURL); err != nil {
		return err
	}
	u, _ := url.Parse(rawURL)
	host := strings.ToLower(u.Hostname())
	if !lo.Contains(allowed, host) {
		return fmt.Errorf("host %q is not allowed", host)
	}
	return nil
}

// SanitizeFilename reduces name to a single safe path element.
// Directory components are dropped and unsafe characters become underscores.
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = unsafeChars.ReplaceAllString(name, "_")
	name = strings.ReplaceAll(name, "..", "_")
	name = strings.TrimSpace(name)

	if name == "" || name == "." || name == "_" {
		return "untitled"
	}
	return name
}

// SafeSavePath joins dir and the sanitized filename, ensuring the result stays inside dir.
func SafeSavePath(dir, filename string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}

	resolved := filepath.Join(absDir, SanitizeFilename(filename))
	if !strings.HasPrefix(resolved, absDir+string(filepath.Separator)) {
		return "", fmt.Errorf("path traversal detected: %q escapes %q", resolved, absDir)
	}

	return resolved, nil
}

// BuildURL constructs a URL from base and path components, encoding each path segment.
func BuildURL(base string, pathSegments ...string) string {
	var b strings.Builder
	b.WriteString(strings.TrimRight(base, "/"))
	for _, seg := range pathSegments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(seg))
	}
	return b.String()
}
