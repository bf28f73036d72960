package open

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestCommand(t *testing.T) {
	const url = "https://img.youtube.com/vi/dQw4w9WgXcQ/default.jpg?a=1&b=2"
	tests := []struct {
		name     string
		goos     string
		app      string
		wantArgs []string
		wantErr  bool
	}{
		{"linux default", "linux", "", []string{"xdg-open", url}, false},
		{"darwin default", "darwin", "", []string{"open", url}, false},
		{"android default", "android", "", []string{"termux-open", url}, false},
		{"linux app", "linux", "firefox", []string{"firefox", url}, false},
		{"darwin app", "darwin", "Safari", []string{"open", "-a", "Safari", url}, false},
		{"windows app escapes ampersand", "windows", "chrome", []string{"cmd", "/C", "start", "", "chrome", strings.ReplaceAll(url, "&", "^&")}, false},
		{"plan9", "plan9", "", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := Command(tt.goos, url, tt.app)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Command() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if strings.Join(cmd.Args, " ") != strings.Join(tt.wantArgs, " ") {
				t.Errorf("args = %q, want %q", cmd.Args, tt.wantArgs)
			}
		})
	}
}

func TestCommandWindowsDefault(t *testing.T) {
	t.Setenv("SYSTEMROOT", `C:\Windows`)
	cmd, err := Command("windows", "https://example.com", "")
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(cmd.Args[0]) == "" || cmd.Args[1] != "url.dll,FileProtocolHandler" {
		t.Errorf("unexpected args %q", cmd.Args)
	}
}
