package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Warning is a user-facing warning message with optional detail lines.
type Warning struct {
	Title      string   // main warning title
	Message    string   // detailed explanation (optional)
	Items      []string // related items, e.g. unanswered checklist questions (optional)
	Suggestion string   // action to take (optional)
}

// Display shows the formatted warning in yellow.
func (w Warning) Display(out io.Writer) {
	yellow := color.New(color.FgYellow)
	var b strings.Builder

	b.WriteString("⚠  Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	for i, item := range w.Items {
		b.WriteString(fmt.Sprintf("      %d. %s\n", i+1, item))
	}

	if w.Suggestion != "" {
		b.WriteString("    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	yellow.Fprint(out, b.String())
}
