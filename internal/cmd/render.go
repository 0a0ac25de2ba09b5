package cmd

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/Techy233/FSE1/internal/checklist"
	"github.com/Techy233/FSE1/internal/display"
	"github.com/Techy233/FSE1/internal/models"
	"github.com/Techy233/FSE1/internal/report"
	"github.com/Techy233/FSE1/internal/workflow"
)

// render draws the prompt screen for the current phase.
func (s *session) render() {
	switch s.ctrl.Phase() {
	case workflow.PhaseEditing:
		s.renderEditing()
	case workflow.PhaseAwaitingSignatures:
		s.renderSignatures()
	default:
		s.renderCompleted()
	}
}

func (s *session) renderEditing() {
	step, index := s.ctrl.Current()
	section, scored := step.Section()

	if !scored {
		display.SectionHeader(s.out, "Part 1: Background Information", 0, false)
		for i, field := range models.BackgroundFields {
			value := s.backgroundValue(field)
			if value == "" {
				value = color.New(color.Faint).Sprint("(empty)")
			}
			fmt.Fprintf(s.out, "  %d. %-20s %s\n", i+1, field.Label()+":", value)
		}
		if coords := s.ctrl.Model().Background().Coordinates; !coords.IsZero() {
			fmt.Fprintf(s.out, "     %-20s %.6f, %.6f\n", "Coordinates:", coords.Lat, coords.Lng)
		}
		fmt.Fprintln(s.out, "\nEnter '<n> <value>' to fill a field, 'locate <address>' to pin the facility, 'next' to continue.")
		return
	}

	def, _ := checklist.Lookup(section)
	display.SectionHeader(s.out, def.Title, def.Max(), true)
	for i, item := range def.Items {
		fmt.Fprintf(s.out, "  %d. %s %s\n", i+1, s.itemState(def, item.Key), item.Label)
	}
	if def.Kind == checklist.KindBoolean {
		fmt.Fprintln(s.out, "\nEnter an item number to toggle it.")
	} else {
		fmt.Fprintln(s.out, "\nEnter '<n> <excellent|good|fair|poor>' to rate an item.")
	}
	if s.ctrl.AtLastStep() {
		fmt.Fprintln(s.out, "Type 'done' when finished to collect signatures.")
	} else {
		fmt.Fprintf(s.out, "Section %d of %d. 'next', 'prev', and 'goto <section>' move around.\n", index, len(workflow.Steps())-1)
	}
}

func (s *session) backgroundValue(field models.BackgroundField) string {
	bg := s.ctrl.Model().Background()
	switch field {
	case models.FieldFacilityName:
		return bg.FacilityName
	case models.FieldAddress:
		return bg.Address
	case models.FieldOwnerName:
		return bg.OwnerName
	case models.FieldPhoneNumber:
		return bg.PhoneNumber
	case models.FieldEmail:
		return bg.Email
	case models.FieldInspectorName:
		return bg.InspectorName
	case models.FieldInspectionDate:
		return bg.InspectionDate
	case models.FieldFacilityType:
		return bg.FacilityType
	}
	return ""
}

// itemState renders the answer marker for one checklist item: a checkbox for
// documentation items, the rating word for rated items.
func (s *session) itemState(def checklist.Definition, key string) string {
	if def.Kind == checklist.KindBoolean {
		if s.ctrl.Model().DocumentationItem(key) {
			return color.GreenString("[x]")
		}
		return "[ ]"
	}

	rating := s.ctrl.Model().Rating(def.Section, key)
	if rating == checklist.RatingUnset {
		return color.New(color.Faint).Sprint("[unrated]  ")
	}
	return fmt.Sprintf("[%-9s]", rating)
}

func (s *session) renderSignatures() {
	fmt.Fprintln(s.out)
	color.New(color.Bold).Fprintln(s.out, "Signatures")
	s.printSignatureLine("Inspector", models.PartyInspector)
	s.printSignatureLine("Facility Owner", models.PartyFacilityOwner)
	fmt.Fprintln(s.out, "\nCommands: sign <inspector|owner> <image-file>, clear <inspector|owner>, finalize, cancel.")
}

func (s *session) printSignatureLine(label string, party models.SignatureParty) {
	if s.ctrl.Model().Signature(party) != "" {
		fmt.Fprintf(s.out, "  %-16s %s\n", label+":", color.GreenString("captured"))
		return
	}
	fmt.Fprintf(s.out, "  %-16s %s\n", label+":", color.YellowString("missing"))
}

func (s *session) renderCompleted() {
	view, err := report.NewView(s.ctrl.Result())
	if err != nil {
		s.log.Errorf("rendering results: %v", err)
		return
	}
	display.Results(s.out, view)
	fmt.Fprintln(s.out, "Commands: export [dir], new, quit.")
}
