package httputil

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"valid HTTPS", "https://img.youtube.com/vi/dQw4w9WgXcQ/default.jpg", false},
		{"HTTP rejected", "http://img.youtube.com/vi/x/default.jpg", true},
		{"javascript scheme rejected", "javascript:alert(1)", true},
		{"file scheme rejected", "file:///etc/passwd", true},
		{"empty string", "", true},
		{"no host", "https://", true},
		{"valid with port", "https://example.com:8443/path", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
		})
	}
}

func TestValidateHost(t *testing.T) {
	allowed := []string{"img.youtube.com", "i.ytimg.com"}
	tests := []struct {
		url     string
		wantErr bool
	}{
		{"https://img.youtube.com/vi/a/default.jpg", false},
		{"https://IMG.YOUTUBE.COM/vi/a/default.jpg", false},
		{"https://i.ytimg.com:443/vi/a/default.jpg", false},
		{"https://evil.example/vi/a/default.jpg", true},
		{"http://img.youtube.com/vi/a/default.jpg", true},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			err := ValidateHost(tt.url, allowed...)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateHost(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
		})
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"normal filename", "dQw4w9WgXcQ-maxresdefault.png", "dQw4w9WgXcQ-maxresdefault.png"},
		{"path traversal", "../../etc/passwd", "passwd"},
		{"backslash traversal", "..\\..\\windows\\system32", "system32"},
		{"directory components", "/home/user/thumb.png", "thumb.png"},
		{"null bytes", "thumb\x00.png", "thumb_.png"},
		{"Windows special chars", "a<>:\"|?*.png", "a_______.png"},
		{"double dots", "thumb..png", "thumb_png"},
		{"empty string", "", "untitled"},
		{"just dots", "..", "untitled"},
		{"just dot", ".", "untitled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeFilename(tt.input)
			if got != tt.expected {
				t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSafeSavePath(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{"normal", "id-default.png", "id-default.png"},
		{"traversal is flattened", "../../etc/passwd", "passwd"},
		{"shell chars kept inert", "$(whoami).png", "$(whoami).png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, err := SafeSavePath(dir, tt.filename)
			if err != nil {
				t.Fatalf("SafeSavePath(%q) error: %v", tt.filename, err)
			}
			if !strings.HasPrefix(path, dir) {
				t.Errorf("path %q escapes %q", path, dir)
			}
			if filepath.Base(path) != tt.want {
				t.Errorf("base = %q, want %q", filepath.Base(path), tt.want)
			}
		})
	}
}

func TestBuildURL(t *testing.T) {
	got := BuildURL("https://img.youtube.com/vi/", "dQw4w9WgXcQ", "mqdefault2.jpg")
	want := "https://img.youtube.com/vi/dQw4w9WgXcQ/mqdefault2.jpg"
	if got != want {
		t.Errorf("BuildURL = %q, want %q", got, want)
	}

	if got := BuildURL("https://x.test", "a b"); got != "https://x.test/a%20b" {
		t.Errorf("BuildURL should escape segments, got %q", got)
	}
}
