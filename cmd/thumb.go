package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"ytthumb/internal/config"
	"ytthumb/internal/display"
	"ytthumb/internal/extract"
	"ytthumb/internal/history"
	"ytthumb/internal/httputil"
	"ytthumb/internal/media"
	"ytthumb/internal/open"
	"ytthumb/internal/provider"
	"ytthumb/internal/save"
	"ytthumb/internal/thumbnail"
	"ytthumb/internal/ui"
)

// thumbRun is the default command: ytthumb <url>
func thumbRun(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	rawURL := strings.TrimSpace(strings.Join(args, " "))

	if rawURL == "" && interactive() && ui.Available() {
		var err error
		rawURL, err = ui.Input(ctx, "Video URL")
		if err != nil {
			return media.ErrEmptyInput
		}
	}

	id, err := extract.New(cfg.Extractor).Parse(rawURL)
	if err != nil {
		return err
	}
	debugf("video ID: %s", id)

	client := httputil.NewClient(cfg.Timeout.Duration)
	state := display.State{}

	if cfg.FetchTitle {
		info, err := provider.NewYouTube(client, "").Info(ctx, id)
		if err != nil {
			debugf("title lookup failed: %v", err)
		} else {
			state = state.WithInfo(*info)
		}
	}

	resolver := thumbnail.NewResolver(thumbnail.NewHTTPLoader(client, thumbnail.Hosts...), "")
	state, res, err := resolveLoop(ctx, resolver, state, id)
	if err != nil {
		return err
	}

	if flagJSON {
		out := struct {
			*media.Result
			Dimensions string `json:"dimensions"`
			Title      string `json:"title,omitempty"`
			Channel    string `json:"channel,omitempty"`
			Notice     string `json:"notice,omitempty"`
		}{res, res.Dimensions(), state.Title, state.Channel, state.Notice}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return err
		}
	} else {
		fmt.Println(display.Render(state))
	}

	opener := open.Opener{App: cfg.OpenApp}

	if flagOpen {
		if err := opener.Start(res.URL); err != nil {
			warnf("could not open %s: %v", res.URL, err)
		}
	}

	if flagSave && state.CanSave {
		return saveResult(ctx, client, opener, state, res)
	}
	return nil
}

// resolveLoop resolves the configured request. When a tier fails in an
// interactive terminal, the user picks another tier and it is resolved anew.
func resolveLoop(ctx context.Context, r *thumbnail.Resolver, state display.State, id media.VideoID) (display.State, *media.Result, error) {
	quality := cfg.QualityTier()
	tried := map[media.Quality]bool{}

	for {
		req := media.Request{ID: id, Quality: quality, Time: timeOffset(cfg.Time)}
		tried[quality] = true

		var ticket display.Ticket
		state, ticket = state.Begin()
		res, err := r.Resolve(ctx, req)
		state = state.Apply(ticket, res, err)

		if err == nil {
			if state.Notice != "" && !flagJSON {
				warnf("%s", state.Notice)
			}
			return state, res, nil
		}

		if !errors.Is(err, media.ErrResourceNotFound) || !interactive() || !ui.Available() {
			return state, nil, err
		}

		remaining := lo.Filter(media.Qualities, func(q media.Quality, _ int) bool { return !tried[q] })
		if len(remaining) == 0 {
			return state, nil, err
		}

		warnf("%s", state.Error)
		items := lo.Map(remaining, func(q media.Quality, _ int) string {
			return fmt.Sprintf("%-14s %s", q.String(), q.Label())
		})
		idx, serr := ui.Select(ctx, "Quality", items)
		if serr != nil {
			return state, nil, err
		}
		quality = remaining[idx]
		debugf("retrying with %s", quality)
	}
}

func timeOffset(seconds int) media.TimeOffset {
	if seconds <= 0 {
		return media.NoTime()
	}
	return media.At(seconds)
}

func saveResult(ctx context.Context, client *http.Client, opener open.Opener, state display.State, res *media.Result) error {
	dir, err := cfg.ExpandSaveDir()
	if err != nil {
		return fmt.Errorf("resolving save dir: %w", err)
	}

	fs := afero.NewOsFs()
	saver := save.New(fs, client, dir, opener.Start)

	path, err := saver.Result(ctx, res)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Saved: %s\n", path)

	if cfg.History {
		histPath, err := config.HistoryPath()
		if err != nil {
			debugf("history path: %v", err)
			return nil
		}
		entry := media.SavedEntry{
			ID:      res.ID,
			Quality: res.Quality.String(),
			Time:    res.Time,
			Path:    path,
			Title:   state.Title,
		}
		if err := history.New(fs, histPath).Add(entry); err != nil {
			debugf("saving history failed: %v", err)
		}
	}

	return nil
}
