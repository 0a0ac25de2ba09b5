package models

import (
	"fmt"
	"time"
)

// BackgroundField identifies one of the editable background text fields.
type BackgroundField string

const (
	FieldFacilityName   BackgroundField = "facilityName"
	FieldAddress        BackgroundField = "address"
	FieldOwnerName      BackgroundField = "ownerName"
	FieldPhoneNumber    BackgroundField = "phoneNumber"
	FieldEmail          BackgroundField = "email"
	FieldInspectorName  BackgroundField = "inspectorName"
	FieldInspectionDate BackgroundField = "inspectionDate"
	FieldFacilityType   BackgroundField = "facilityType"
)

// BackgroundFields lists the editable text fields in form order.
var BackgroundFields = []BackgroundField{
	FieldFacilityName,
	FieldOwnerName,
	FieldPhoneNumber,
	FieldEmail,
	FieldInspectorName,
	FieldInspectionDate,
	FieldFacilityType,
	FieldAddress,
}

// Coordinates is a WGS84 position. The zero value means "not set"; the form
// treats (0,0) as no location, matching the optional map pin on the original
// form.
type Coordinates struct {
	Lat float64
	Lng float64
}

// IsZero reports whether the coordinates are the unset sentinel.
func (c Coordinates) IsZero() bool {
	return c.Lat == 0 && c.Lng == 0
}

// BackgroundInfo is Part 1 of the audit form. It is never scored.
type BackgroundInfo struct {
	FacilityName   string
	Address        string
	OwnerName      string
	PhoneNumber    string
	Email          string
	InspectorName  string
	InspectionDate string // YYYY-MM-DD
	FacilityType   string
	Coordinates    Coordinates
}

// set applies a single field update after validating the value. Empty values
// always pass so a half-filled form can be revisited.
func (b *BackgroundInfo) set(field BackgroundField, value string) error {
	if value != "" {
		if err := validateField(field, value); err != nil {
			return err
		}
	}

	switch field {
	case FieldFacilityName:
		b.FacilityName = value
	case FieldAddress:
		b.Address = value
	case FieldOwnerName:
		b.OwnerName = value
	case FieldPhoneNumber:
		b.PhoneNumber = value
	case FieldEmail:
		b.Email = value
	case FieldInspectorName:
		b.InspectorName = value
	case FieldInspectionDate:
		b.InspectionDate = value
	case FieldFacilityType:
		b.FacilityType = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

func validateField(field BackgroundField, value string) error {
	switch field {
	case FieldEmail:
		if err := validate.Var(value, "email"); err != nil {
			return fmt.Errorf("%w: %q is not a valid email address", ErrInvalidValue, value)
		}
	case FieldPhoneNumber:
		// Accept international (+233...) or local digit-only numbers.
		if err := validate.Var(value, "e164|numeric"); err != nil {
			return fmt.Errorf("%w: %q is not a valid phone number", ErrInvalidValue, value)
		}
	case FieldInspectionDate:
		if _, err := time.Parse("2006-01-02", value); err != nil {
			return fmt.Errorf("%w: %q is not a valid date (expected YYYY-MM-DD)", ErrInvalidValue, value)
		}
	}
	return nil
}

// Label returns the display label for a background field.
func (f BackgroundField) Label() string {
	switch f {
	case FieldFacilityName:
		return "Facility Name"
	case FieldAddress:
		return "Facility Address"
	case FieldOwnerName:
		return "Owner/Manager Name"
	case FieldPhoneNumber:
		return "Phone Number"
	case FieldEmail:
		return "Email Address"
	case FieldInspectorName:
		return "Inspector Name"
	case FieldInspectionDate:
		return "Inspection Date"
	case FieldFacilityType:
		return "Facility Type"
	}
	return string(f)
}
