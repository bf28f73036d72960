package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"ytthumb/internal/config"
	"ytthumb/internal/history"
	"ytthumb/internal/open"
	"ytthumb/internal/ui"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved thumbnails and open one",
	Args:  cobra.NoArgs,
	RunE:  historyRun,
}

func historyRun(cmd *cobra.Command, args []string) error {
	path, err := config.HistoryPath()
	if err != nil {
		return err
	}

	store := history.New(afero.NewOsFs(), path)
	entries, err := store.Load()
	if err != nil {
		return fmt.Errorf("loading history: %w", err)
	}

	if len(entries) == 0 {
		fmt.Println("No saved thumbnails yet.")
		return nil
	}

	newest := history.Newest(entries)
	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(newest)
	}

	items := history.FormatForDisplay(entries)
	if !interactive() || !ui.Available() {
		for i, item := range items {
			fmt.Printf("%s\n    %s\n", item, newest[i].Path)
		}
		return nil
	}

	idx, err := ui.Select(cmd.Context(), "Saved", items)
	if err != nil {
		return err
	}

	selected := newest[idx]
	if _, err := os.Stat(selected.Path); err != nil {
		warnf("%s no longer exists; removing it from history", selected.Path)
		return store.Remove(selected.Path)
	}

	debugf("opening %s", selected.Path)
	return open.Opener{App: cfg.OpenApp}.Start(selected.Path)
}
