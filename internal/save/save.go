// Package save writes a resolved thumbnail to local disk as PNG.
// The image bytes are fetched again rather than reused from the loader, and
// a failed fetch falls back to opening the URL for a manual save.
package save

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"net/http"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	_ "golang.org/x/image/webp"

	"ytthumb/internal/httputil"
	"ytthumb/internal/media"
)

// Opener shows a URL to the user, e.g. in a browser.
type Opener func(url string) error

// Saver saves thumbnails into a directory.
type Saver struct {
	fs     afero.Fs
	client *http.Client
	dir    string
	open   Opener
}

// New creates a Saver writing into dir. open may be nil to disable the
// manual-save fallback.
func New(fs afero.Fs, client *http.Client, dir string, open Opener) *Saver {
	return &Saver{fs: fs, client: client, dir: dir, open: open}
}

// FileName returns {id}-{quality}.png, with a -MMmSSs suffix when seconds > 0.
func FileName(id media.VideoID, q media.Quality, seconds int) string {
	if seconds <= 0 {
		return fmt.Sprintf("%s-%s.png", id, q)
	}
	return fmt.Sprintf("%s-%s-%02dm%02ds.png", id, q, seconds/60, seconds%60)
}

// Result saves res under its canonical file name.
func (s *Saver) Result(ctx context.Context, res *media.Result) (string, error) {
	return s.Save(ctx, res.URL, FileName(res.ID, res.Quality, res.Time))
}

// Save fetches url and writes it as a PNG named name. On failure the URL is
// handed to the opener and the returned error is a *media.SaveError.
func (s *Saver) Save(ctx context.Context, url, name string) (string, error) {
	path, err := s.save(ctx, url, name)
	if err == nil {
		return path, nil
	}
	logrus.WithError(err).WithField("url", url).Debug("save failed")

	saveErr := &media.SaveError{URL: url, Err: err}
	if ctx.Err() != nil || s.open == nil {
		return "", saveErr
	}
	if oerr := s.open(url); oerr != nil {
		logrus.WithError(oerr).Debug("opening URL for manual save failed")
		return "", saveErr
	}
	saveErr.Opened = true
	return "", saveErr
}

func (s *Saver) save(ctx context.Context, url, name string) (string, error) {
	data, err := httputil.GetBytes(ctx, s.client, url, "image/*")
	if err != nil {
		return "", fmt.Errorf("fetching image: %w", err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decoding image: %w", err)
	}

	if err := s.fs.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("creating save directory: %w", err)
	}

	path, err := httputil.SafeSavePath(s.dir, name)
	if err != nil {
		return "", fmt.Errorf("invalid save path: %w", err)
	}

	// Atomic write: temp file + rename
	tmp, err := afero.TempFile(s.fs, filepath.Dir(path), ".ytthumb-*.tmp")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if err := png.Encode(tmp, img); err != nil {
		tmp.Close()
		s.fs.Remove(tmpPath)
		return "", fmt.Errorf("encoding png: %w", err)
	}
	if err := tmp.Close(); err != nil {
		s.fs.Remove(tmpPath)
		return "", fmt.Errorf("closing temp file: %w", err)
	}
	if err := s.fs.Chmod(tmpPath, 0644); err != nil {
		logrus.WithError(err).Debug("chmod saved file")
	}
	if err := s.fs.Rename(tmpPath, path); err != nil {
		s.fs.Remove(tmpPath)
		return "", fmt.Errorf("renaming temp file: %w", err)
	}

	return path, nil
}
