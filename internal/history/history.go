// Package history keeps a TSV log of saved thumbnails.
// Writes are atomic (temp file + rename) so a crash never truncates the log.
package history

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/afero"

	"ytthumb/internal/media"
)

// TSV columns: id, quality, time, path, title, saved_at
const numColumns = 6

// Store is a saved-file log at a fixed path.
type Store struct {
	fs   afero.Fs
	path string
}

// New returns a store for the log file at path.
func New(fsys afero.Fs, path string) *Store {
	return &Store{fs: fsys, path: path}
}

// Load reads all entries, oldest first. A missing log is empty.
func (s *Store) Load() ([]media.SavedEntry, error) {
	f, err := s.fs.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening history: %w", err)
	}
	defer f.Close()

	var entries []media.SavedEntry
	scanner := bufio.NewScanner(f)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		entry, err := parseLine(line)
		if err != nil {
			continue // Skip malformed lines
		}
		entries = append(entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading history: %w", err)
	}

	return entries, nil
}

// Add records a saved file. An existing entry for the same path is replaced.
func (s *Store) Add(entry media.SavedEntry) error {
	if entry.SavedAt == 0 {
		entry.SavedAt = time.Now().Unix()
	}

	entries, err := s.Load()
	if err != nil {
		return err
	}

	kept := entries[:0]
	for _, e := range entries {
		if e.Path != entry.Path {
			kept = append(kept, e)
		}
	}
	return s.write(append(kept, entry))
}

// Remove deletes the entry for path.
func (s *Store) Remove(path string) error {
	entries, err := s.Load()
	if err != nil {
		return err
	}

	var filtered []media.SavedEntry
	for _, e := range entries {
		if e.Path != path {
			filtered = append(filtered, e)
		}
	}
	return s.write(filtered)
}

func (s *Store) write(entries []media.SavedEntry) error {
	dir := filepath.Dir(s.path)
	if err := s.fs.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("creating history dir: %w", err)
	}

	tmpFile, err := afero.TempFile(s.fs, dir, "saved-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	writer := bufio.NewWriter(tmpFile)
	for _, e := range entries {
		if _, err := writer.WriteString(formatLine(e) + "\n"); err != nil {
			tmpFile.Close()
			s.fs.Remove(tmpPath)
			return fmt.Errorf("writing history: %w", err)
		}
	}

	if err := writer.Flush(); err != nil {
		tmpFile.Close()
		s.fs.Remove(tmpPath)
		return fmt.Errorf("flushing history: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		s.fs.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := s.fs.Rename(tmpPath, s.path); err != nil {
		s.fs.Remove(tmpPath)
		return fmt.Errorf("renaming history file: %w", err)
	}

	return nil
}

// FormatForDisplay creates one fzf line per entry, newest first.
func FormatForDisplay(entries []media.SavedEntry) []string {
	items := make([]string, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		label := string(e.ID)
		if e.Title != "" {
			label = e.Title
		}
		display := fmt.Sprintf("%s  [%s", label, e.Quality)
		if e.Time > 0 {
			display += fmt.Sprintf(" @ %02d:%02d", e.Time/60, e.Time%60)
		}
		display += "]  " + time.Unix(e.SavedAt, 0).Format("2006-01-02 15:04")
		items = append(items, display)
	}
	return items
}

// Newest returns entries newest first, matching FormatForDisplay's order.
func Newest(entries []media.SavedEntry) []media.SavedEntry {
	out := make([]media.SavedEntry, len(entries))
	for i, e := range entries {
		out[len(entries)-1-i] = e
	}
	return out
}

// parseLine parses a TSV line into a SavedEntry.
func parseLine(line string) (media.SavedEntry, error) {
	fields := strings.Split(line, "\t")
	if len(fields) < numColumns {
		return media.SavedEntry{}, fmt.Errorf("expected %d columns, got %d", numColumns, len(fields))
	}

	seconds, _ := strconv.Atoi(fields[2])
	savedAt, _ := strconv.ParseInt(fields[5], 10, 64)

	return media.SavedEntry{
		ID:      media.VideoID(fields[0]),
		Quality: fields[1],
		Time:    seconds,
		Path:    fields[3],
		Title:   fields[4],
		SavedAt: savedAt,
	}, nil
}

// formatLine converts a SavedEntry to a TSV line. Tabs and newlines in
// free-text fields are flattened to spaces.
func formatLine(e media.SavedEntry) string {
	clean := strings.NewReplacer("\t", " ", "\n", " ", "\r", " ")
	return strings.Join([]string{
		string(e.ID),
		e.Quality,
		strconv.Itoa(e.Time),
		clean.Replace(e.Path),
		clean.Replace(e.Title),
		strconv.FormatInt(e.SavedAt, 10),
	}, "\t")
}
