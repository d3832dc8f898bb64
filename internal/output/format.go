// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"taskman/internal/store"
)

// Separator is the rule printed above and below the task table, matching
// the width of a typical task row.
const Separator = "------------------------------------------------------"

var (
	ruleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	idStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// Formatter renders tasks for the terminal. With Color false every style
// is a no-op, which also keeps test and piped output stable.
type Formatter struct {
	Color bool
}

// TaskTable writes the full task listing: a rule, one row per task, a rule.
func (f Formatter) TaskTable(w io.Writer, tasks []store.Task) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, f.style(ruleStyle, Separator))
	for _, t := range tasks {
		f.taskRow(w, t)
	}
	fmt.Fprintln(w, f.style(ruleStyle, Separator))
	fmt.Fprintln(w)
}

// taskRow writes one task line: id, status tag, description.
func (f Formatter) taskRow(w io.Writer, t store.Task) {
	tag, tagStyle := "[PENDING]", pendingStyle
	if t.Completed {
		tag, tagStyle = "[DONE]", doneStyle
	}
	fmt.Fprintf(w, "%s Status: %s Description: %s\n",
		f.style(idStyle, fmt.Sprintf("ID: %-4d", t.ID)),
		f.style(tagStyle, fmt.Sprintf("%-10s", tag)),
		t.Description)
}

func (f Formatter) style(s lipgloss.Style, text string) string {
	if !f.Color {
		return text
	}
	return s.Render(text)
}
