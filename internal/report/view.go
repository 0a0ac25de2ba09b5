// Package report projects a completed assessment into displayable and
// exportable forms: a read-only view for the terminal, a markdown document,
// and an HTML rendering of that document. Nothing here mutates the result.
package report

import (
	"errors"

	"github.com/Techy233/FSE1/internal/models"
)

// ErrNoResult is returned when a projection is requested before completion.
var ErrNoResult = errors.New("report: assessment has no result")

// Row is one line of the score breakdown table.
type Row struct {
	Title  string
	Earned int
	Max    int
}

// View is the read-only projection of a completed assessment.
type View struct {
	AssessmentID string
	CompletedAt  string // YYYY-MM-DD HH:MM

	FacilityName   string
	OwnerName      string
	PhoneNumber    string
	Email          string
	Address        string
	InspectorName  string
	InspectionDate string
	FacilityType   string

	// HasLocation is false when coordinates were never set; the location
	// block is omitted entirely in that case.
	HasLocation bool
	Lat         float64
	Lng         float64

	Total int
	Stars int
	Tier  string
	Rows  []Row

	InspectorSignature string
	OwnerSignature     string
}

// NewView builds the projection for a completed result.
func NewView(result *models.Result) (*View, error) {
	if result == nil {
		return nil, ErrNoResult
	}

	v := &View{
		AssessmentID:   result.AssessmentID.String(),
		CompletedAt:    result.CompletedAt.Format("2006-01-02 15:04"),
		FacilityName:   result.Background.FacilityName,
		OwnerName:      result.Background.OwnerName,
		PhoneNumber:    result.Background.PhoneNumber,
		Email:          result.Background.Email,
		Address:        result.Background.Address,
		InspectorName:  result.Background.InspectorName,
		InspectionDate: result.Background.InspectionDate,
		FacilityType:   result.Background.FacilityType,
		Total:          result.Total,
		Stars:          result.Stars,
		Tier:           result.Tier,

		InspectorSignature: result.Signatures[models.PartyInspector],
		OwnerSignature:     result.Signatures[models.PartyFacilityOwner],
	}

	if !result.Background.Coordinates.IsZero() {
		v.HasLocation = true
		v.Lat = result.Background.Coordinates.Lat
		v.Lng = result.Background.Coordinates.Lng
	}

	for _, s := range result.Sections {
		v.Rows = append(v.Rows, Row{Title: s.Title, Earned: s.Earned, Max: s.Max})
	}

	return v, nil
}
