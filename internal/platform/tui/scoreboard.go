package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/termtris/internal/storage"
)

const anonymous = "-"

// scoreColumns are sized for an 80-column terminal.
func scoreColumns() []table.Column {
	return []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 10},
		{Title: "Lines", Width: 6},
		{Title: "Level", Width: 6},
		{Title: "Player", Width: 14},
		{Title: "When", Width: 16},
	}
}

// scoreRows formats entries in rank order.
func scoreRows(entries []storage.Entry) []table.Row {
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		name := e.Name
		if name == "" {
			name = anonymous
		}
		when := anonymous
		if !e.CreatedAt.IsZero() {
			when = humanize.Time(e.CreatedAt)
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			humanize.Comma(int64(e.Score)),
			fmt.Sprintf("%d", e.Lines),
			fmt.Sprintf("%d", e.Level),
			name,
			when,
		}
	}
	return rows
}

// createTable builds a read-only table; the best score is highlighted.
func createTable(entries []storage.Entry) table.Model {
	rows := scoreRows(entries)
	t := table.New(
		table.WithColumns(scoreColumns()),
		table.WithRows(rows),
		table.WithHeight(len(rows)+2), // rows plus header and its border
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// RenderScores renders the high-score table for printing to a terminal.
// width is used to center the output; 0 disables centering.
func RenderScores(entries []storage.Entry, width int) string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(centerText(titleStyle.Render("HIGH SCORES"), width))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var content string
	if len(entries) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4)
		content = emptyStyle.Render("No scores recorded yet.\nPlay a game to set a high score!")
	} else {
		content = createTable(entries).View()
	}
	b.WriteString(centerText(boxStyle.Render(content), width))
	b.WriteString("\n")

	h := help.New()
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(centerText(helpStyle.Render(h.View(DefaultKeyMap())), width))
	b.WriteString("\n")
	return b.String()
}

// centerText centers each line of text within width.
func centerText(text string, width int) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		pad := (width - lipgloss.Width(line)) / 2
		if pad > 0 {
			lines[i] = strings.Repeat(" ", pad) + line
		}
	}
	return strings.Join(lines, "\n")
}
