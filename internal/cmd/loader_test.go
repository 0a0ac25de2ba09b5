package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Techy233/FSE1/internal/checklist"
	"github.com/Techy233/FSE1/internal/models"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const fullAssessmentYAML = `
facility_name: Mama's Chop Bar
address: 12 Oxford Street, Osu, Accra
owner_name: Akosua Mensah
phone_number: "+233241234567"
email: akosua@example.com
inspector_name: Kofi Asante
inspection_date: "2026-08-15"
facility_type: Restaurant
coordinates:
  lat: 5.603717
  lng: -0.186964
documentation:
  hygieneCertificate: true
  businessPermit: true
  suitabilityPermit: false
  hygienePermit: true
hygiene:
  handWashing: excellent
  protectiveClothing: good
water:
  waterQuality: fair
signatures:
  inspector: "data:image/png;base64,aW5z"
  facility_owner: "data:image/png;base64,b3du"
`

func TestLoadAssessmentFileApply(t *testing.T) {
	path := writeTempFile(t, "audit.yaml", fullAssessmentYAML)

	file, err := loadAssessmentFile(path)
	require.NoError(t, err)

	model := models.NewAssessment()
	require.NoError(t, file.apply(model))

	bg := model.Background()
	assert.Equal(t, "Mama's Chop Bar", bg.FacilityName)
	assert.Equal(t, "+233241234567", bg.PhoneNumber)
	assert.Equal(t, "2026-08-15", bg.InspectionDate)
	assert.Equal(t, 5.603717, bg.Coordinates.Lat)

	assert.True(t, model.DocumentationItem("hygieneCertificate"))
	assert.False(t, model.DocumentationItem("suitabilityPermit"))
	assert.Equal(t, checklist.RatingExcellent, model.Rating(checklist.Hygiene, "handWashing"))
	assert.Equal(t, checklist.RatingFair, model.Rating(checklist.Water, "waterQuality"))

	assert.Equal(t, "data:image/png;base64,aW5z", model.Signature(models.PartyInspector))
	assert.True(t, model.ReadyToFinalize())
}

func TestLoadAssessmentFileRejectsUnknownKeys(t *testing.T) {
	path := writeTempFile(t, "typo.yaml", "facilty_name: Oops\n")

	_, err := loadAssessmentFile(path)
	assert.Error(t, err)
}

func TestLoadAssessmentFileMissing(t *testing.T) {
	_, err := loadAssessmentFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestApplyRejectsBadRating(t *testing.T) {
	path := writeTempFile(t, "bad.yaml", "hygiene:\n  handWashing: superb\n")

	file, err := loadAssessmentFile(path)
	require.NoError(t, err)

	err = file.apply(models.NewAssessment())
	assert.ErrorContains(t, err, "invalid rating")
}

func TestApplyRejectsUnknownItemKey(t *testing.T) {
	path := writeTempFile(t, "unknown.yaml", "documentation:\n  vipPass: true\n")

	file, err := loadAssessmentFile(path)
	require.NoError(t, err)

	err = file.apply(models.NewAssessment())
	assert.ErrorIs(t, err, models.ErrUnknownItem)
}

func TestApplySignatureFromImageFile(t *testing.T) {
	sig := writeTempFile(t, "sig.png", "not-really-a-png-but-nonempty")

	model := models.NewAssessment()
	require.NoError(t, applySignature(model, models.PartyInspector, sig))

	assert.Contains(t, model.Signature(models.PartyInspector), "data:image/png;base64,")
}
