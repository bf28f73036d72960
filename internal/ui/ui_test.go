package ui

import (
	"context"
	"testing"
)

func TestNumbered(t *testing.T) {
	got := numbered([]string{"maxresdefault", "multi\nline"})
	want := "0\tmaxresdefault\n1\tmulti line\n"
	if got != want {
		t.Errorf("numbered() = %q, want %q", got, want)
	}
}

func TestParseSelection(t *testing.T) {
	tests := []struct {
		name    string
		out     string
		want    int
		wantErr bool
	}{
		{"first", "0\tmaxresdefault\n", 0, false},
		{"last", "4\tdefault\n", 4, false},
		{"empty", "\n", -1, true},
		{"not a number", "x\tfoo", -1, true},
		{"out of range", "9\tfoo", -1, true},
		{"negative", "-1\tfoo", -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSelection(tt.out, 5)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseSelection() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseSelection() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSelectEmpty(t *testing.T) {
	if _, err := Select(context.Background(), "Quality", nil); err == nil {
		t.Error("Select with no items should fail")
	}
}
