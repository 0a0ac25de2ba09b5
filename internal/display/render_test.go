package display

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/Techy233/FSE1/internal/report"
)

func init() {
	// Deterministic output regardless of test environment.
	color.NoColor = true
}

func TestStars(t *testing.T) {
	assert.Equal(t, "★★★★★", Stars(5))
	assert.Equal(t, "★★★☆☆", Stars(3))
	assert.Equal(t, "☆☆☆☆☆", Stars(0))
}

func TestSectionHeader(t *testing.T) {
	var buf bytes.Buffer
	SectionHeader(&buf, "Part 2: Documentation", 20, true)
	assert.Contains(t, buf.String(), "Part 2: Documentation")
	assert.Contains(t, buf.String(), "[20 Marks]")

	buf.Reset()
	SectionHeader(&buf, "Part 1: Background Information", 0, false)
	assert.Contains(t, buf.String(), "[Not Scored]")
}

func TestResults(t *testing.T) {
	v := &report.View{
		FacilityName: "Mama's Chop Bar",
		OwnerName:    "Akosua Mensah",
		HasLocation:  true,
		Lat:          5.603717,
		Lng:          -0.186964,
		Total:        95,
		Stars:        5,
		Tier:         "Excellent",
		Rows: []report.Row{
			{Title: "Part 2: Documentation", Earned: 20, Max: 20},
		},
		InspectorSignature: "data:image/png;base64,aW5z",
	}

	var buf bytes.Buffer
	Results(&buf, v)
	out := buf.String()

	assert.Contains(t, out, "95/100")
	assert.Contains(t, out, "★★★★★")
	assert.Contains(t, out, "Excellent")
	assert.Contains(t, out, "5.603717, -0.186964")
	assert.Contains(t, out, "Part 2: Documentation")
	assert.Contains(t, out, "Inspector Signature: captured")
	assert.Contains(t, out, "Facility Owner Signature: missing")
}

func TestResultsOmitsUnsetLocation(t *testing.T) {
	v := &report.View{Total: 40, Stars: 1, Tier: "Poor"}

	var buf bytes.Buffer
	Results(&buf, v)
	assert.NotContains(t, buf.String(), "Coordinates")
}

func TestWarningDisplay(t *testing.T) {
	w := Warning{
		Title:      "3 checklist items are unanswered",
		Message:    "Unanswered items score zero marks.",
		Items:      []string{"documentation: hygienePermit", "water: waterQuality"},
		Suggestion: "Go back and complete the missing items, or continue to signatures.",
	}

	var buf bytes.Buffer
	w.Display(&buf)
	out := buf.String()

	assert.Contains(t, out, "Warning: 3 checklist items are unanswered")
	assert.Contains(t, out, "1. documentation: hygienePermit")
	assert.Contains(t, out, "2. water: waterQuality")
	assert.Contains(t, out, "score zero")
}
