package report

import (
	"fmt"
	"strings"
)

// MarkdownExporter renders a View as a GFM markdown document mirroring the
// on-screen results card: headline score, star row, tier, facility details,
// and the per-section breakdown table.
type MarkdownExporter struct {
	// IncludeSignatures embeds the signature image handles as inline images.
	IncludeSignatures bool
}

// Export converts a View to markdown.
func (e *MarkdownExporter) Export(v *View) (string, error) {
	if v == nil {
		return "", ErrNoResult
	}

	var sb strings.Builder

	sb.WriteString("# FSE Compliance Assessment Report\n\n")
	if v.FacilityName != "" {
		sb.WriteString(fmt.Sprintf("**Facility**: %s\n\n", v.FacilityName))
	}
	sb.WriteString(fmt.Sprintf("**Assessment**: %s  \n", v.AssessmentID))
	sb.WriteString(fmt.Sprintf("**Completed**: %s\n\n", v.CompletedAt))

	sb.WriteString(fmt.Sprintf("## Score: %d/100\n\n", v.Total))
	sb.WriteString(fmt.Sprintf("%s (%d/5)\n\n", starRow(v.Stars), v.Stars))
	sb.WriteString(fmt.Sprintf("**Compliance Level**: %s\n\n", v.Tier))

	sb.WriteString("## Facility Information\n\n")
	writeField(&sb, "Name", v.FacilityName)
	writeField(&sb, "Owner", v.OwnerName)
	writeField(&sb, "Phone", v.PhoneNumber)
	writeField(&sb, "Email", v.Email)
	writeField(&sb, "Address", v.Address)
	writeField(&sb, "Facility Type", v.FacilityType)
	if v.HasLocation {
		writeField(&sb, "Coordinates", fmt.Sprintf("%.6f, %.6f", v.Lat, v.Lng))
	}
	writeField(&sb, "Inspector", v.InspectorName)
	writeField(&sb, "Date", v.InspectionDate)
	sb.WriteString("\n")

	sb.WriteString("## Score Breakdown\n\n")
	sb.WriteString("| Section | Score |\n")
	sb.WriteString("|---|---|\n")
	for _, row := range v.Rows {
		sb.WriteString(fmt.Sprintf("| %s | %d/%d |\n", row.Title, row.Earned, row.Max))
	}
	sb.WriteString("\n")

	if e.IncludeSignatures {
		sb.WriteString("## Signatures\n\n")
		sb.WriteString(fmt.Sprintf("Inspector:\n\n![Inspector Signature](%s)\n\n", v.InspectorSignature))
		sb.WriteString(fmt.Sprintf("Facility Owner:\n\n![Facility Owner Signature](%s)\n", v.OwnerSignature))
	}

	return sb.String(), nil
}

// starRow renders the 1..5 rating as filled and empty stars.
func starRow(stars int) string {
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

func writeField(sb *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	sb.WriteString(fmt.Sprintf("- **%s**: %s\n", label, value))
}
