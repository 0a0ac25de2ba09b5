package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/Techy233/FSE1/internal/checklist"
	"github.com/Techy233/FSE1/internal/config"
	"github.com/Techy233/FSE1/internal/display"
	"github.com/Techy233/FSE1/internal/geocode"
	"github.com/Techy233/FSE1/internal/logger"
	"github.com/Techy233/FSE1/internal/models"
	"github.com/Techy233/FSE1/internal/report"
	"github.com/Techy233/FSE1/internal/signature"
	"github.com/Techy233/FSE1/internal/workflow"
)

// locationOutcome carries a finished background geocoding lookup back to the
// session loop.
type locationOutcome struct {
	address string
	loc     *geocode.Location
	err     error
}

// session runs one interactive audit from the first form part to the results
// card. Geocoding lookups run in the background and are applied between
// prompts, so a pending lookup never blocks editing.
type session struct {
	ctrl *workflow.Controller
	geo  *geocode.Client
	cfg  *config.Config
	log  *logger.ConsoleLogger

	in    *bufio.Scanner
	out   io.Writer
	locCh chan locationOutcome
	quit  bool
}

func newSession(ctrl *workflow.Controller, geo *geocode.Client, cfg *config.Config, log *logger.ConsoleLogger, in io.Reader, out io.Writer) *session {
	return &session{
		ctrl:  ctrl,
		geo:   geo,
		cfg:   cfg,
		log:   log,
		in:    bufio.NewScanner(in),
		out:   out,
		locCh: make(chan locationOutcome, 4),
	}
}

func (s *session) run() error {
	for !s.quit {
		s.applyPendingLocation()
		s.render()

		fmt.Fprint(s.out, "> ")
		if !s.in.Scan() {
			break
		}
		line := strings.TrimSpace(s.in.Text())
		if line == "" {
			continue
		}

		if err := s.handle(line); err != nil {
			color.New(color.FgRed).Fprintf(s.out, "%v\n", userMessage(err))
		}
	}
	return s.in.Err()
}

// userMessage rewrites the signature precondition into the wording shown to
// the inspector; everything else passes through.
func userMessage(err error) string {
	if errors.Is(err, workflow.ErrPreconditionNotMet) {
		return "Both inspector and facility owner signatures are required to complete the assessment."
	}
	return err.Error()
}

func (s *session) handle(line string) error {
	switch s.ctrl.Phase() {
	case workflow.PhaseEditing:
		return s.handleEditing(line)
	case workflow.PhaseAwaitingSignatures:
		return s.handleSignatures(line)
	default:
		return s.handleCompleted(line)
	}
}

func (s *session) handleEditing(line string) error {
	fields := strings.Fields(line)
	switch fields[0] {
	case "next":
		if s.ctrl.AtLastStep() {
			fmt.Fprintln(s.out, "This is the last section. Type 'done' to proceed to signatures.")
			return nil
		}
		return s.ctrl.Next()
	case "prev":
		return s.ctrl.Previous()
	case "goto":
		if len(fields) != 2 {
			return fmt.Errorf("usage: goto <%s>", strings.Join(stepNames(), "|"))
		}
		return s.ctrl.Select(workflow.Step(fields[1]))
	case "done":
		return s.proceedToSignatures()
	case "locate":
		if len(fields) < 2 {
			return errors.New("usage: locate <address>  or  locate <lat> <lng>")
		}
		return s.locate(fields[1:])
	case "quit":
		s.quit = true
		return nil
	default:
		return s.enterValue(fields)
	}
}

// proceedToSignatures warns about unanswered items, then moves the session
// into signature collection. Unanswered items are allowed; they score zero.
func (s *session) proceedToSignatures() error {
	if !s.ctrl.AtLastStep() {
		return errors.New("finish the remaining sections first, or 'goto cleaning'")
	}

	if unanswered := s.ctrl.Model().UnansweredItems(); len(unanswered) > 0 {
		items := make([]string, 0, len(unanswered))
		for _, ref := range unanswered {
			items = append(items, fmt.Sprintf("%s: %s", ref.Section, ref.Key))
		}
		display.Warning{
			Title:      fmt.Sprintf("%d checklist item(s) are unanswered", len(unanswered)),
			Message:    "Unanswered items score zero marks.",
			Items:      items,
			Suggestion: "Use 'goto <section>' to complete them, or continue with the signatures.",
		}.Display(s.out)
	}

	return s.ctrl.RequestSignatures()
}

// enterValue applies an item or field entry on the current step, addressed
// by its displayed number.
func (s *session) enterValue(fields []string) error {
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return fmt.Errorf("unknown command %q", fields[0])
	}

	step, _ := s.ctrl.Current()
	section, scored := step.Section()
	if !scored {
		if len(fields) < 2 {
			// A bare number clears the field.
			return s.setBackgroundByNumber(n, "")
		}
		return s.setBackgroundByNumber(n, strings.Join(fields[1:], " "))
	}

	def, ok := checklist.Lookup(section)
	if !ok || n < 1 || n > len(def.Items) {
		return fmt.Errorf("no item %d in this section", n)
	}
	item := def.Items[n-1]

	if def.Kind == checklist.KindBoolean {
		// Toggle presence.
		return s.ctrl.Model().SetDocumentationItem(item.Key, !s.ctrl.Model().DocumentationItem(item.Key))
	}

	if len(fields) != 2 {
		return fmt.Errorf("usage: %d <excellent|good|fair|poor>", n)
	}
	rating, err := checklist.ParseRating(fields[1])
	if err != nil {
		return err
	}
	return s.ctrl.Model().SetSectionRating(section, item.Key, rating)
}

func (s *session) setBackgroundByNumber(n int, value string) error {
	if n < 1 || n > len(models.BackgroundFields) {
		return fmt.Errorf("no field %d on this form", n)
	}
	return s.ctrl.Model().SetBackgroundField(models.BackgroundFields[n-1], value)
}

// locate resolves the facility location. With an address it forward-geocodes
// in the background; with a lat/lng pair it records the coordinates at once
// and reverse-geocodes the display address, falling back to a plain
// coordinate label if the lookup fails.
func (s *session) locate(args []string) error {
	if len(args) == 2 {
		lat, latErr := strconv.ParseFloat(args[0], 64)
		lng, lngErr := strconv.ParseFloat(args[1], 64)
		if latErr == nil && lngErr == nil {
			return s.locateByCoordinates(lat, lng)
		}
	}

	if !s.geo.IsAvailable() {
		return errors.New("geocoding is not configured; set geocoder.base_url in the config")
	}

	address := strings.Join(args, " ")
	go func() {
		loc, err := s.geo.Lookup(context.Background(), address)
		s.locCh <- locationOutcome{address: address, loc: loc, err: err}
	}()
	s.log.Infof("looking up %q in the background; you can keep editing", address)
	return nil
}

func (s *session) locateByCoordinates(lat, lng float64) error {
	if err := s.ctrl.Model().SetCoordinates(lat, lng); err != nil {
		return err
	}

	if !s.geo.IsAvailable() {
		return s.ctrl.Model().SetBackgroundField(models.FieldAddress, geocode.FallbackLabel(lat, lng))
	}

	go func() {
		name, err := s.geo.Reverse(context.Background(), lat, lng)
		if err != nil {
			s.locCh <- locationOutcome{loc: &geocode.Location{Lat: lat, Lng: lng, DisplayName: geocode.FallbackLabel(lat, lng)}, err: err}
			return
		}
		s.locCh <- locationOutcome{loc: &geocode.Location{Lat: lat, Lng: lng, DisplayName: name}}
	}()
	return nil
}

// applyPendingLocation drains finished lookups without blocking.
func (s *session) applyPendingLocation() {
	for {
		select {
		case outcome := <-s.locCh:
			s.applyLocation(outcome)
		default:
			return
		}
	}
}

func (s *session) applyLocation(outcome locationOutcome) {
	if outcome.loc == nil {
		s.log.Warnf("address lookup for %q failed: %v", outcome.address, outcome.err)
		return
	}
	if outcome.err != nil {
		// Reverse lookup failed; the fallback coordinate label stands in.
		s.log.Warnf("reverse lookup failed, using coordinates as address: %v", outcome.err)
	}
	if err := s.ctrl.Model().SetLocation(outcome.loc.Lat, outcome.loc.Lng, outcome.loc.DisplayName); err != nil {
		s.log.Warnf("could not apply location: %v", err)
		return
	}
	s.log.Infof("location set: %s", outcome.loc.DisplayName)
}

func (s *session) handleSignatures(line string) error {
	fields := strings.Fields(line)
	switch fields[0] {
	case "sign":
		if len(fields) != 3 {
			return errors.New("usage: sign <inspector|owner> <image-file>")
		}
		party, err := parseParty(fields[1])
		if err != nil {
			return err
		}
		handle, err := signature.Capture(fields[2])
		if err != nil {
			return err
		}
		return s.ctrl.Model().SetSignature(party, handle)
	case "clear":
		if len(fields) != 2 {
			return errors.New("usage: clear <inspector|owner>")
		}
		party, err := parseParty(fields[1])
		if err != nil {
			return err
		}
		return s.ctrl.Model().ClearSignature(party)
	case "finalize":
		result, err := s.ctrl.Finalize()
		if err != nil {
			return err
		}
		s.log.Infof("assessment finalized: %d/100, %s", result.Total, result.Tier)
		return nil
	case "cancel":
		return s.ctrl.CancelSignatures()
	case "quit":
		s.quit = true
		return nil
	default:
		return fmt.Errorf("unknown command %q", fields[0])
	}
}

func (s *session) handleCompleted(line string) error {
	fields := strings.Fields(line)
	switch fields[0] {
	case "export":
		dir := s.cfg.ExportDir
		if len(fields) > 1 {
			dir = fields[1]
		}
		view, err := report.NewView(s.ctrl.Result())
		if err != nil {
			return err
		}
		mdPath, htmlPath, err := report.Export(dir, view)
		if err != nil {
			return err
		}
		fmt.Fprintf(s.out, "Report written to %s and %s\n", mdPath, htmlPath)
		return nil
	case "new":
		return s.ctrl.Reset()
	case "quit":
		s.quit = true
		return nil
	default:
		return fmt.Errorf("unknown command %q", fields[0])
	}
}

func parseParty(word string) (models.SignatureParty, error) {
	switch word {
	case "inspector":
		return models.PartyInspector, nil
	case "owner":
		return models.PartyFacilityOwner, nil
	}
	return "", fmt.Errorf("unknown party %q: use inspector or owner", word)
}

func stepNames() []string {
	steps := workflow.Steps()
	names := make([]string, 0, len(steps))
	for _, step := range steps {
		names = append(names, string(step))
	}
	return names
}
