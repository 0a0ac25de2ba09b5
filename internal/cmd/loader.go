package cmd

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Techy233/FSE1/internal/checklist"
	"github.com/Techy233/FSE1/internal/models"
	"github.com/Techy233/FSE1/internal/signature"
)

// assessmentFile is the YAML input for a non-interactive scoring run. Section
// maps hold item keys as used on the form; rating values are the rating
// words. Signatures accept either an image file path or an already captured
// data URL.
type assessmentFile struct {
	FacilityName   string `yaml:"facility_name"`
	Address        string `yaml:"address"`
	OwnerName      string `yaml:"owner_name"`
	PhoneNumber    string `yaml:"phone_number"`
	Email          string `yaml:"email"`
	InspectorName  string `yaml:"inspector_name"`
	InspectionDate string `yaml:"inspection_date"`
	FacilityType   string `yaml:"facility_type"`

	Coordinates struct {
		Lat float64 `yaml:"lat"`
		Lng float64 `yaml:"lng"`
	} `yaml:"coordinates"`

	Documentation map[string]bool   `yaml:"documentation"`
	Hygiene       map[string]string `yaml:"hygiene"`
	Sourcing      map[string]string `yaml:"sourcing"`
	Water         map[string]string `yaml:"water"`
	Waste         map[string]string `yaml:"waste"`
	Cleaning      map[string]string `yaml:"cleaning"`

	Signatures struct {
		Inspector     string `yaml:"inspector"`
		FacilityOwner string `yaml:"facility_owner"`
	} `yaml:"signatures"`
}

// loadAssessmentFile reads and parses a YAML assessment file. Unknown keys
// are rejected so a typo in an item key cannot silently score zero.
func loadAssessmentFile(path string) (*assessmentFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading assessment file: %w", err)
	}

	var f assessmentFile
	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &f, nil
}

// apply fills an assessment model from the parsed file. The model's own
// validation applies, so a bad email or unknown item key fails here rather
// than at scoring time.
func (f *assessmentFile) apply(model *models.Assessment) error {
	background := map[models.BackgroundField]string{
		models.FieldFacilityName:   f.FacilityName,
		models.FieldAddress:        f.Address,
		models.FieldOwnerName:      f.OwnerName,
		models.FieldPhoneNumber:    f.PhoneNumber,
		models.FieldEmail:          f.Email,
		models.FieldInspectorName:  f.InspectorName,
		models.FieldInspectionDate: f.InspectionDate,
		models.FieldFacilityType:   f.FacilityType,
	}
	for field, value := range background {
		if value == "" {
			continue
		}
		if err := model.SetBackgroundField(field, value); err != nil {
			return fmt.Errorf("field %s: %w", field, err)
		}
	}

	if f.Coordinates.Lat != 0 || f.Coordinates.Lng != 0 {
		if err := model.SetCoordinates(f.Coordinates.Lat, f.Coordinates.Lng); err != nil {
			return err
		}
	}

	for key, present := range f.Documentation {
		if err := model.SetDocumentationItem(key, present); err != nil {
			return err
		}
	}

	rated := map[checklist.Section]map[string]string{
		checklist.Hygiene:  f.Hygiene,
		checklist.Sourcing: f.Sourcing,
		checklist.Water:    f.Water,
		checklist.Waste:    f.Waste,
		checklist.Cleaning: f.Cleaning,
	}
	for section, answers := range rated {
		for key, word := range answers {
			rating, err := checklist.ParseRating(word)
			if err != nil {
				return fmt.Errorf("section %s, item %s: %w", section, key, err)
			}
			if err := model.SetSectionRating(section, key, rating); err != nil {
				return err
			}
		}
	}

	if err := applySignature(model, models.PartyInspector, f.Signatures.Inspector); err != nil {
		return err
	}
	return applySignature(model, models.PartyFacilityOwner, f.Signatures.FacilityOwner)
}

// applySignature accepts a data URL as-is and treats anything else as an
// image file to capture.
func applySignature(model *models.Assessment, party models.SignatureParty, value string) error {
	if value == "" {
		return nil
	}
	handle := value
	if !strings.HasPrefix(value, "data:") {
		var err error
		handle, err = signature.Capture(value)
		if err != nil {
			return fmt.Errorf("%s signature: %w", party, err)
		}
	}
	return model.SetSignature(party, handle)
}
