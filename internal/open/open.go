// Package open launches URLs and files with the system's default handler
// or a named application.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Opener starts handlers for a fixed application, or the system default
// when App is empty.
type Opener struct {
	App string
}

// Start opens input without waiting for the handler to exit.
func (o Opener) Start(input string) error {
	cmd, err := Command(runtime.GOOS, input, o.App)
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting %s: %w", cmd.Path, err)
	}
	// Reap the child in the background.
	go cmd.Wait()
	return nil
}

// Command builds the launcher command for goos.
func Command(goos, input, app string) (*exec.Cmd, error) {
	if app != "" {
		switch goos {
		case "windows":
			// cmd's start treats & as a separator.
			return exec.Command("cmd", "/C", "start", "", app, strings.ReplaceAll(input, "&", "^&")), nil
		case "darwin":
			return exec.Command("open", "-a", app, input), nil
		case "linux", "freebsd", "openbsd", "netbsd":
			return exec.Command(app, input), nil
		}
		return nil, fmt.Errorf("unsupported OS: %s", goos)
	}

	switch goos {
	case "windows":
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", input), nil
	case "darwin":
		return exec.Command("open", input), nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", input), nil
	case "android":
		return exec.Command("termux-open", input), nil
	}
	return nil, fmt.Errorf("unsupported OS: %s", goos)
}
