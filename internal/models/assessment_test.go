package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Techy233/FSE1/internal/checklist"
)

func TestNewAssessmentIsEmpty(t *testing.T) {
	a := NewAssessment()

	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", a.ID.String())
	assert.False(t, a.Frozen())
	assert.False(t, a.ReadyToFinalize())
	assert.Equal(t, BackgroundInfo{}, a.Background())

	// Every item starts unanswered: 4+5+4+2+4+2 = 21 items.
	assert.Len(t, a.UnansweredItems(), 21)
}

func TestSetBackgroundField(t *testing.T) {
	a := NewAssessment()

	require.NoError(t, a.SetBackgroundField(FieldFacilityName, "Mama's Chop Bar"))
	require.NoError(t, a.SetBackgroundField(FieldEmail, "owner@example.com"))
	require.NoError(t, a.SetBackgroundField(FieldPhoneNumber, "+233201234567"))
	require.NoError(t, a.SetBackgroundField(FieldInspectionDate, "2025-06-14"))

	bg := a.Background()
	assert.Equal(t, "Mama's Chop Bar", bg.FacilityName)
	assert.Equal(t, "owner@example.com", bg.Email)
	assert.Equal(t, "+233201234567", bg.PhoneNumber)
	assert.Equal(t, "2025-06-14", bg.InspectionDate)
}

func TestSetBackgroundFieldRejectsInvalidValues(t *testing.T) {
	a := NewAssessment()

	tests := []struct {
		field BackgroundField
		value string
	}{
		{FieldEmail, "not-an-email"},
		{FieldPhoneNumber, "call me"},
		{FieldInspectionDate, "14/06/2025"},
		{BackgroundField("favoriteColor"), "blue"},
	}

	for _, tt := range tests {
		err := a.SetBackgroundField(tt.field, tt.value)
		assert.Error(t, err, "field %s value %q", tt.field, tt.value)
	}

	// Rejected mutations leave the model unchanged.
	assert.Equal(t, BackgroundInfo{}, a.Background())
}

func TestSetBackgroundFieldAllowsClearing(t *testing.T) {
	a := NewAssessment()
	require.NoError(t, a.SetBackgroundField(FieldEmail, "owner@example.com"))
	require.NoError(t, a.SetBackgroundField(FieldEmail, ""))
	assert.Empty(t, a.Background().Email)
}

func TestSetDocumentationItem(t *testing.T) {
	a := NewAssessment()

	require.NoError(t, a.SetDocumentationItem("businessPermit", true))
	assert.True(t, a.DocumentationItem("businessPermit"))

	require.NoError(t, a.SetDocumentationItem("businessPermit", false))
	assert.False(t, a.DocumentationItem("businessPermit"))

	err := a.SetDocumentationItem("petLicense", true)
	assert.ErrorIs(t, err, ErrUnknownItem)
}

func TestSetSectionRating(t *testing.T) {
	a := NewAssessment()

	require.NoError(t, a.SetSectionRating(checklist.Hygiene, "handWashing", checklist.RatingGood))
	assert.Equal(t, checklist.RatingGood, a.Rating(checklist.Hygiene, "handWashing"))

	// Rating can be reset to unset.
	require.NoError(t, a.SetSectionRating(checklist.Hygiene, "handWashing", checklist.RatingUnset))
	assert.Equal(t, checklist.RatingUnset, a.Rating(checklist.Hygiene, "handWashing"))
}

func TestSetSectionRatingContractViolations(t *testing.T) {
	a := NewAssessment()

	err := a.SetSectionRating(checklist.Section("plumbing"), "pipes", checklist.RatingGood)
	assert.ErrorIs(t, err, ErrUnknownSection)

	err = a.SetSectionRating(checklist.Documentation, "businessPermit", checklist.RatingGood)
	assert.ErrorIs(t, err, ErrUnknownSection)

	err = a.SetSectionRating(checklist.Hygiene, "businessPermit", checklist.RatingGood)
	assert.ErrorIs(t, err, ErrUnknownItem)

	err = a.SetSectionRating(checklist.Hygiene, "handWashing", checklist.Rating("superb"))
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.Equal(t, checklist.RatingUnset, a.Rating(checklist.Hygiene, "handWashing"))
}

func TestSignatureGate(t *testing.T) {
	a := NewAssessment()
	assert.False(t, a.ReadyToFinalize())

	require.NoError(t, a.SetSignature(PartyInspector, "data:image/png;base64,aW5z"))
	assert.False(t, a.ReadyToFinalize(), "one signature must not satisfy the gate")

	require.NoError(t, a.SetSignature(PartyFacilityOwner, "data:image/png;base64,b3du"))
	assert.True(t, a.ReadyToFinalize())

	require.NoError(t, a.ClearSignature(PartyInspector))
	assert.False(t, a.ReadyToFinalize())

	err := a.SetSignature(SignatureParty("witness"), "x")
	assert.ErrorIs(t, err, ErrUnknownParty)
}

func TestFreezeBlocksAllMutations(t *testing.T) {
	a := NewAssessment()
	a.Freeze()

	assert.ErrorIs(t, a.SetBackgroundField(FieldFacilityName, "x"), ErrFrozen)
	assert.ErrorIs(t, a.SetCoordinates(5.6, -0.2), ErrFrozen)
	assert.ErrorIs(t, a.SetLocation(5.6, -0.2, "Accra"), ErrFrozen)
	assert.ErrorIs(t, a.SetDocumentationItem("businessPermit", true), ErrFrozen)
	assert.ErrorIs(t, a.SetSectionRating(checklist.Hygiene, "handWashing", checklist.RatingGood), ErrFrozen)
	assert.ErrorIs(t, a.SetSignature(PartyInspector, "x"), ErrFrozen)
}

func TestSetLocation(t *testing.T) {
	a := NewAssessment()
	require.NoError(t, a.SetLocation(5.603717, -0.186964, "Accra, Ghana"))

	bg := a.Background()
	assert.Equal(t, "Accra, Ghana", bg.Address)
	assert.False(t, bg.Coordinates.IsZero())
	assert.InDelta(t, 5.603717, bg.Coordinates.Lat, 1e-9)
}

func TestCoordinatesSentinel(t *testing.T) {
	assert.True(t, Coordinates{}.IsZero())
	assert.False(t, Coordinates{Lat: 0.0001}.IsZero())
	assert.False(t, Coordinates{Lng: -0.0001}.IsZero())
}

func TestUnansweredItemsShrinksAsItemsAreAnswered(t *testing.T) {
	a := NewAssessment()
	start := len(a.UnansweredItems())

	require.NoError(t, a.SetDocumentationItem("hygieneCertificate", true))
	require.NoError(t, a.SetSectionRating(checklist.Cleaning, "cleaningSchedule", checklist.RatingPoor))

	assert.Len(t, a.UnansweredItems(), start-2, "a poor rating still counts as answered")
}

func TestAnswerAccessorsReturnCopies(t *testing.T) {
	a := NewAssessment()
	require.NoError(t, a.SetDocumentationItem("businessPermit", true))

	answers := a.BooleanAnswers(checklist.Documentation)
	answers["businessPermit"] = false
	assert.True(t, a.DocumentationItem("businessPermit"))

	require.NoError(t, a.SetSectionRating(checklist.Water, "waterQuality", checklist.RatingFair))
	ratings := a.Ratings(checklist.Water)
	ratings["waterQuality"] = checklist.RatingPoor
	assert.Equal(t, checklist.RatingFair, a.Rating(checklist.Water, "waterQuality"))
}
