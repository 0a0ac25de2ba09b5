// Package models holds the working state of a single audit: the facility
// background information, the answer sets for each checklist section, and the
// two signature handles. All mutations validate their input and leave the
// model unchanged on failure. Once the audit is finalized the model is frozen
// and every mutator fails.
package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/Techy233/FSE1/internal/checklist"
)

// Mutation errors. Unknown sections, items, and parties are programming
// errors in the caller, not user input problems.
var (
	ErrFrozen         = errors.New("models: assessment is frozen")
	ErrUnknownSection = errors.New("models: unknown section")
	ErrUnknownItem    = errors.New("models: unknown item key")
	ErrUnknownParty   = errors.New("models: unknown signature party")
	ErrUnknownField   = errors.New("models: unknown background field")
	ErrInvalidValue   = errors.New("models: invalid field value")
)

// SignatureParty identifies who a signature belongs to.
type SignatureParty string

const (
	PartyInspector     SignatureParty = "inspector"
	PartyFacilityOwner SignatureParty = "facilityOwner"
)

var validate = validator.New()

// ItemRef names a single checklist item.
type ItemRef struct {
	Section checklist.Section
	Key     string
}

// Assessment is the mutable working state of one audit session.
type Assessment struct {
	ID        uuid.UUID
	CreatedAt time.Time

	background BackgroundInfo
	booleans   map[checklist.Section]map[string]bool
	ratings    map[checklist.Section]map[string]checklist.Rating
	signatures map[SignatureParty]string
	frozen     bool
}

// NewAssessment creates an empty assessment with all items unanswered.
func NewAssessment() *Assessment {
	a := &Assessment{
		ID:         uuid.New(),
		CreatedAt:  time.Now(),
		booleans:   make(map[checklist.Section]map[string]bool),
		ratings:    make(map[checklist.Section]map[string]checklist.Rating),
		signatures: make(map[SignatureParty]string),
	}
	for _, def := range checklist.Definitions() {
		if def.Kind == checklist.KindBoolean {
			a.booleans[def.Section] = make(map[string]bool)
		} else {
			a.ratings[def.Section] = make(map[string]checklist.Rating)
		}
	}
	return a
}

// Frozen reports whether the assessment has been finalized.
func (a *Assessment) Frozen() bool {
	return a.frozen
}

// Freeze marks the assessment immutable. Called by the workflow controller
// when the result is produced; there is no unfreeze.
func (a *Assessment) Freeze() {
	a.frozen = true
}

// Background returns a copy of the background information.
func (a *Assessment) Background() BackgroundInfo {
	return a.background
}

// SetBackgroundField updates one background text field. Email, phone, and
// date values are checked before being applied; empty values are always
// accepted so partially filled forms stay editable.
func (a *Assessment) SetBackgroundField(field BackgroundField, value string) error {
	if a.frozen {
		return ErrFrozen
	}
	return a.background.set(field, value)
}

// SetCoordinates records the facility's geographic position. The zero value
// (0,0) means unset.
func (a *Assessment) SetCoordinates(lat, lng float64) error {
	if a.frozen {
		return ErrFrozen
	}
	a.background.Coordinates = Coordinates{Lat: lat, Lng: lng}
	return nil
}

// SetLocation applies a geocoding result: coordinates plus the resolved
// address in one step.
func (a *Assessment) SetLocation(lat, lng float64, address string) error {
	if a.frozen {
		return ErrFrozen
	}
	a.background.Coordinates = Coordinates{Lat: lat, Lng: lng}
	a.background.Address = address
	return nil
}

// SetDocumentationItem marks a documentation item present or absent.
func (a *Assessment) SetDocumentationItem(key string, present bool) error {
	if a.frozen {
		return ErrFrozen
	}
	def, _ := checklist.Lookup(checklist.Documentation)
	if !def.HasItem(key) {
		return fmt.Errorf("%w: %q in section %s", ErrUnknownItem, key, def.Section)
	}
	a.booleans[checklist.Documentation][key] = present
	return nil
}

// SetSectionRating records an ordinal rating for an item in one of the five
// rated sections. The documentation section cannot be rated.
func (a *Assessment) SetSectionRating(section checklist.Section, key string, rating checklist.Rating) error {
	if a.frozen {
		return ErrFrozen
	}
	def, ok := checklist.Lookup(section)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSection, section)
	}
	if def.Kind != checklist.KindOrdinal {
		return fmt.Errorf("%w: section %s takes boolean answers", ErrUnknownSection, section)
	}
	if !def.HasItem(key) {
		return fmt.Errorf("%w: %q in section %s", ErrUnknownItem, key, section)
	}
	if _, err := checklist.ParseRating(string(rating)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	a.ratings[section][key] = rating
	return nil
}

// DocumentationItem reports whether a documentation item is marked present.
func (a *Assessment) DocumentationItem(key string) bool {
	return a.booleans[checklist.Documentation][key]
}

// Rating returns the recorded rating for an item, or RatingUnset.
func (a *Assessment) Rating(section checklist.Section, key string) checklist.Rating {
	return a.ratings[section][key]
}

// BooleanAnswers returns a copy of a boolean section's answer set.
func (a *Assessment) BooleanAnswers(section checklist.Section) map[string]bool {
	out := make(map[string]bool, len(a.booleans[section]))
	for k, v := range a.booleans[section] {
		out[k] = v
	}
	return out
}

// Ratings returns a copy of an ordinal section's answer set.
func (a *Assessment) Ratings(section checklist.Section) map[string]checklist.Rating {
	out := make(map[string]checklist.Rating, len(a.ratings[section]))
	for k, v := range a.ratings[section] {
		out[k] = v
	}
	return out
}

// SetSignature stores a captured signature handle for the given party.
func (a *Assessment) SetSignature(party SignatureParty, handle string) error {
	if a.frozen {
		return ErrFrozen
	}
	if party != PartyInspector && party != PartyFacilityOwner {
		return fmt.Errorf("%w: %q", ErrUnknownParty, party)
	}
	a.signatures[party] = handle
	return nil
}

// ClearSignature discards a party's signature.
func (a *Assessment) ClearSignature(party SignatureParty) error {
	return a.SetSignature(party, "")
}

// Signature returns the stored handle for a party, or "" if absent.
func (a *Assessment) Signature(party SignatureParty) string {
	return a.signatures[party]
}

// Signatures returns a copy of both signature handles.
func (a *Assessment) Signatures() map[SignatureParty]string {
	out := make(map[SignatureParty]string, len(a.signatures))
	for k, v := range a.signatures {
		out[k] = v
	}
	return out
}

// ReadyToFinalize reports whether both signatures are present. This is the
// only structural precondition for finalization: unanswered checklist items
// simply score zero.
func (a *Assessment) ReadyToFinalize() bool {
	return a.signatures[PartyInspector] != "" && a.signatures[PartyFacilityOwner] != ""
}

// UnansweredItems lists every checklist item still absent or unrated, in
// section order. Used to warn the inspector before signature collection.
func (a *Assessment) UnansweredItems() []ItemRef {
	var refs []ItemRef
	for _, def := range checklist.Definitions() {
		for _, item := range def.Items {
			if def.Kind == checklist.KindBoolean {
				if !a.booleans[def.Section][item.Key] {
					refs = append(refs, ItemRef{Section: def.Section, Key: item.Key})
				}
			} else if a.ratings[def.Section][item.Key] == checklist.RatingUnset {
				refs = append(refs, ItemRef{Section: def.Section, Key: item.Key})
			}
		}
	}
	return refs
}
