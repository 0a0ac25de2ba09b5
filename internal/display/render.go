// Package display renders the audit session to the terminal: section
// headers, item prompts, warnings, and the final results card. Color is used
// when stdout is a TTY and degrades cleanly when it is not.
package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/Techy233/FSE1/internal/report"
	"github.com/Techy233/FSE1/internal/scoring"
)

// Init disables color output when stdout is not a terminal. NO_COLOR is
// honored by the color library itself.
func Init() {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}
}

// Stars renders a 1..5 rating as filled and empty stars.
func Stars(stars int) string {
	var sb strings.Builder
	for i := 0; i < 5; i++ {
		if i < stars {
			sb.WriteString("★")
		} else {
			sb.WriteString("☆")
		}
	}
	return sb.String()
}

// tierColor maps a compliance tier to its badge color, matching the result
// card palette: green, blue, yellow, orange-ish, red.
func tierColor(tier string) *color.Color {
	switch tier {
	case scoring.TierExcellent:
		return color.New(color.FgGreen, color.Bold)
	case scoring.TierGood:
		return color.New(color.FgBlue, color.Bold)
	case scoring.TierSatisfactory:
		return color.New(color.FgYellow, color.Bold)
	case scoring.TierNeedsImprovement:
		return color.New(color.FgHiYellow, color.Bold)
	default:
		return color.New(color.FgRed, color.Bold)
	}
}

// SectionHeader prints a form part title with its marks badge.
func SectionHeader(out io.Writer, title string, max int, scored bool) {
	bold := color.New(color.Bold)
	bold.Fprintf(out, "\n%s", title)
	if scored {
		fmt.Fprintf(out, "  [%d Marks]\n", max)
	} else {
		fmt.Fprint(out, "  [Not Scored]\n")
	}
	fmt.Fprintln(out, strings.Repeat("-", 60))
}

// Results prints the completed assessment card: headline score, stars, tier
// badge, facility block, breakdown table, and signature status.
func Results(out io.Writer, v *report.View) {
	bold := color.New(color.Bold)
	label := color.New(color.FgCyan)

	fmt.Fprintln(out)
	bold.Fprintln(out, "Assessment Results")
	fmt.Fprintln(out, strings.Repeat("=", 60))

	bold.Fprintf(out, "  %d/100  %s  ", v.Total, Stars(v.Stars))
	tierColor(v.Tier).Fprintf(out, "%s\n", v.Tier)
	fmt.Fprintln(out)

	printField(out, label, "Name", v.FacilityName)
	printField(out, label, "Owner", v.OwnerName)
	printField(out, label, "Phone", v.PhoneNumber)
	printField(out, label, "Email", v.Email)
	printField(out, label, "Address", v.Address)
	printField(out, label, "Facility Type", v.FacilityType)
	if v.HasLocation {
		printField(out, label, "Coordinates", fmt.Sprintf("%.6f, %.6f", v.Lat, v.Lng))
	}
	printField(out, label, "Inspector", v.InspectorName)
	printField(out, label, "Date", v.InspectionDate)
	fmt.Fprintln(out)

	bold.Fprintln(out, "Score Breakdown")
	for _, row := range v.Rows {
		fmt.Fprintf(out, "  %-45s %3d/%d\n", row.Title, row.Earned, row.Max)
	}
	fmt.Fprintln(out)

	printSignatureStatus(out, label, "Inspector Signature", v.InspectorSignature)
	printSignatureStatus(out, label, "Facility Owner Signature", v.OwnerSignature)
}

func printField(out io.Writer, label *color.Color, name, value string) {
	if value == "" {
		return
	}
	label.Fprintf(out, "  %s: ", name)
	fmt.Fprintln(out, value)
}

func printSignatureStatus(out io.Writer, label *color.Color, name, handle string) {
	label.Fprintf(out, "  %s: ", name)
	if handle != "" {
		color.New(color.FgGreen).Fprintln(out, "captured")
	} else {
		fmt.Fprintln(out, "missing")
	}
}
