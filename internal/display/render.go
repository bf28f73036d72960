package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("86")).
			Padding(0, 1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("248"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// Render draws the state as a bordered panel.
func Render(s State) string {
	if s.Result == nil {
		if s.Error == "" {
			return ""
		}
		return errorStyle.Render(s.Error)
	}

	r := s.Result
	var lines []string
	row := func(label, value string) {
		lines = append(lines, labelStyle.Render(fmt.Sprintf("%-10s", label))+" "+valueStyle.Render(value))
	}

	if s.Title != "" {
		row("Title", s.Title)
	}
	if s.Channel != "" {
		row("Channel", s.Channel)
	}
	row("Video", string(r.ID))
	row("Quality", r.Quality.String())
	if r.Time > 0 {
		row("Time", Clock(r.Time))
	}
	row("Size", r.Dimensions())
	row("URL", r.URL)

	out := boxStyle.Render(strings.Join(lines, "\n"))
	if s.Notice != "" {
		out += "\n" + noticeStyle.Render(s.Notice)
	}
	return out
}

// Clock formats seconds as MM:SS.
func Clock(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
