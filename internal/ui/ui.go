// Package ui provides fzf-based prompts.
// Items are piped to fzf via stdin as plain text; no preview commands or
// shell-evaluated strings are ever passed.
package ui

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// ErrCancelled is returned when the user aborts a prompt.
var ErrCancelled = errors.New("selection cancelled")

// Available reports whether fzf is in PATH.
func Available() bool {
	_, err := exec.LookPath("fzf")
	return err == nil
}

// Select presents items via fzf and returns the selected item's index.
func Select(ctx context.Context, prompt string, items []string) (int, error) {
	if len(items) == 0 {
		return -1, fmt.Errorf("no items to select from")
	}

	out, err := run(ctx, numbered(items),
		"--prompt", prompt+" > ",
		"--height", "40%",
		"--reverse",
		"--with-nth", "2..", // Hide the index column
		"--delimiter", "\t",
		"--no-multi",
		"--cycle",
	)
	if err != nil {
		return -1, err
	}

	return parseSelection(out, len(items))
}

// Input prompts for free text via fzf's --print-query.
func Input(ctx context.Context, prompt string) (string, error) {
	out, err := run(ctx, "",
		"--prompt", prompt+" > ",
		"--height", "10%",
		"--reverse",
		"--print-query",
		"--no-info",
	)
	// fzf exits 1 with --print-query when nothing matched, which is expected here
	if err != nil && !errors.Is(err, errNoMatch) {
		return "", err
	}

	query := strings.TrimSpace(strings.SplitN(out, "\n", 2)[0])
	if query == "" {
		return "", fmt.Errorf("no input provided")
	}
	return query, nil
}

var errNoMatch = errors.New("no match")

func run(ctx context.Context, stdin string, args ...string) (string, error) {
	fzfPath, err := exec.LookPath("fzf")
	if err != nil {
		return "", fmt.Errorf("fzf not found in PATH: %w", err)
	}

	cmd := exec.CommandContext(ctx, fzfPath, args...)
	cmd.Stdin = strings.NewReader(stdin)
	cmd.Stderr = os.Stderr

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			switch exitErr.ExitCode() {
			case 1:
				return stdout.String(), errNoMatch
			case 130:
				return "", ErrCancelled
			}
		}
		return "", fmt.Errorf("fzf failed: %w", err)
	}
	return stdout.String(), nil
}

// numbered prefixes each item with its index and a tab.
func numbered(items []string) string {
	var b strings.Builder
	for i, item := range items {
		fmt.Fprintf(&b, "%d\t%s\n", i, strings.ReplaceAll(item, "\n", " "))
	}
	return b.String()
}

// parseSelection reads the index column from fzf output.
func parseSelection(out string, n int) (int, error) {
	selected := strings.TrimSpace(out)
	if selected == "" {
		return -1, fmt.Errorf("no selection made")
	}

	field, _, _ := strings.Cut(selected, "\t")
	idx, err := strconv.Atoi(field)
	if err != nil {
		return -1, fmt.Errorf("parsing selection index: %w", err)
	}
	if idx < 0 || idx >= n {
		return -1, fmt.Errorf("selection index %d out of range", idx)
	}
	return idx, nil
}
