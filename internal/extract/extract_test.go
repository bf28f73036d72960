package extract

import (
	"errors"
	"testing"

	"ytthumb/internal/media"
)

func TestStrictExtract(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"short link", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"short link with query", "https://youtu.be/dQw4w9WgXcQ?si=abc123", "dQw4w9WgXcQ"},
		{"watch", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"watch with params", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s", "dQw4w9WgXcQ"},
		{"mobile watch", "https://m.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"live", "https://www.youtube.com/live/jfKfPfyJRdk?feature=share", "jfKfPfyJRdk"},
		{"shorts", "https://youtube.com/shorts/abcDEF12_-3", "abcDEF12_-3"},
		{"no scheme", "youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"empty", "", ""},
		{"not a video URL", "https://example.com/watch?v=dQw4w9WgXcQ", ""},
		{"id too short", "https://youtu.be/abc", ""},
		{"id cut by query", "https://www.youtube.com/watch?v=dQw4w9W&x=1", ""},
		{"id too long", "https://youtu.be/dQw4w9WgXcQXYZ", ""},
		{"watch id too long", "https://www.youtube.com/watch?v=dQw4w9WgXcQXYZ", ""},
		{"slash in id", "https://youtu.be/abc/defghijk", ""},
		{"trailing slash", "https://youtube.com/shorts/abcDEF12_-3/", "abcDEF12_-3"},
		{"fragment", "https://youtu.be/dQw4w9WgXcQ#t=10", "dQw4w9WgXcQ"},
		{"embed not accepted", "https://www.youtube.com/embed/dQw4w9WgXcQ", ""},
		{"garbage", "not a url at all", ""},
	}

	e := Strict()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Extract(tt.url).OrEmpty()
			if string(got) != tt.want {
				t.Errorf("Extract(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestStrictPriorityOrder(t *testing.T) {
	// Both a short link and a watch URL appear; the short link is tried first.
	url := "https://www.youtube.com/watch?v=AAAAAAAAAAA&next=youtu.be/BBBBBBBBBBB"
	got, ok := Strict().Extract(url).Get()
	if !ok {
		t.Fatal("expected a match")
	}
	if got != "BBBBBBBBBBB" {
		t.Errorf("Extract = %q, want short-link ID BBBBBBBBBBB", got)
	}
}

func TestGenericExtract(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"short link", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"watch", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"embed", "https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"v path", "https://www.youtube.com/v/dQw4w9WgXcQ?version=3", "dQw4w9WgXcQ"},
		{"second param", "https://www.youtube.com/watch?feature=player&v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"shorts", "https://youtube.com/shorts/abcDEF12_-3", "abcDEF12_-3"},
		{"too long", "https://youtu.be/dQw4w9WgXcQXYZ", ""},
		{"too short", "https://youtu.be/dQw4", ""},
		{"slash in capture", "https://youtu.be/abc/defghij", ""},
		{"empty", "", ""},
	}

	e := Generic()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Extract(tt.url).OrEmpty()
			if string(got) != tt.want {
				t.Errorf("Extract(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestExtractIdempotent(t *testing.T) {
	e := Strict()
	inputs := []string{"https://youtu.be/dQw4w9WgXcQ", "bogus", ""}
	for _, in := range inputs {
		first := e.Extract(in)
		for i := 0; i < 3; i++ {
			if again := e.Extract(in); again != first {
				t.Errorf("Extract(%q) changed between calls: %v vs %v", in, first, again)
			}
		}
	}
}

func TestParseErrors(t *testing.T) {
	e := Strict()

	if _, err := e.Parse("   "); !errors.Is(err, media.ErrInvalidInput) {
		t.Errorf("empty input error = %v, want ErrInvalidInput", err)
	}

	_, err := e.Parse("https://example.com")
	if !errors.Is(err, media.ErrUnrecognizedURL) {
		t.Errorf("unmatched error = %v, want ErrUnrecognizedURL", err)
	}
	if !errors.Is(err, media.ErrInvalidInput) {
		t.Errorf("unmatched error should also be ErrInvalidInput")
	}

	id, err := e.Parse("  https://youtu.be/dQw4w9WgXcQ \n")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if id != "dQw4w9WgXcQ" {
		t.Errorf("Parse() = %q, want dQw4w9WgXcQ", id)
	}
}

func TestNewMode(t *testing.T) {
	if got := len(New("generic").Examples()); got != 1 {
		t.Errorf("generic mode has %d matchers, want 1", got)
	}
	if got := len(New("strict").Examples()); got != 4 {
		t.Errorf("strict mode has %d matchers, want 4", got)
	}
	if got := len(New("whatever").Examples()); got != 4 {
		t.Errorf("unknown mode should fall back to strict, got %d matchers", got)
	}
}

func TestExtractOnlyReturnsValidIDs(t *testing.T) {
	inputs := []string{
		"https://youtu.be/dQw4w9WgXcQXYZ",
		"https://youtu.be/abc/defghij",
		"https://www.youtube.com/watch?v=dQw4w9W gXc",
		"https://www.youtube.com/live/dQw4w9WgXcQ",
	}
	for _, e := range []*Extractor{Strict(), Generic()} {
		for _, in := range inputs {
			if id, ok := e.Extract(in).Get(); ok && !id.Valid() {
				t.Errorf("Extract(%q) = %q, which is not a valid ID", in, id)
			}
		}
	}
}
