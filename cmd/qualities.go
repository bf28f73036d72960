package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ytthumb/internal/media"
)

var qualitiesCmd = &cobra.Command{
	Use:   "qualities",
	Short: "List the available thumbnail qualities",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for _, q := range media.Qualities {
			timed := ""
			if !q.FullFrame() {
				timed = "  (supports --time)"
			}
			marker := " "
			if q == cfg.QualityTier() {
				marker = "*"
			}
			fmt.Fprintf(out, "%s %-14s %s%s\n", marker, q.String(), q.Label(), timed)
		}
	},
}
