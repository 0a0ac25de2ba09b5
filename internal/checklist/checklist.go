// Package checklist defines the static structure of the food-safety audit
// checklist: the six scored sections, their items, and each item's mark value.
// The definitions are fixed; section maxima always sum to 100.
package checklist

import "fmt"

// Section identifies one of the six scored checklist sections.
type Section string

// Scored sections in traversal order.
const (
	Documentation Section = "documentation"
	Hygiene       Section = "hygiene"
	Sourcing      Section = "sourcing"
	Water         Section = "water"
	Waste         Section = "waste"
	Cleaning      Section = "cleaning"
)

// Kind distinguishes how a section's items are answered.
type Kind int

const (
	// KindBoolean items are either present or absent (full marks or zero).
	KindBoolean Kind = iota
	// KindOrdinal items are rated excellent/good/fair/poor.
	KindOrdinal
)

// Rating is an ordinal answer for a single checklist item.
type Rating string

const (
	RatingUnset     Rating = ""
	RatingExcellent Rating = "excellent"
	RatingGood      Rating = "good"
	RatingFair      Rating = "fair"
	RatingPoor      Rating = "poor"
)

// ParseRating validates a rating label. The empty string is accepted and
// means the item has not been answered.
func ParseRating(s string) (Rating, error) {
	switch Rating(s) {
	case RatingUnset, RatingExcellent, RatingGood, RatingFair, RatingPoor:
		return Rating(s), nil
	}
	return RatingUnset, fmt.Errorf("invalid rating %q: must be one of excellent, good, fair, poor", s)
}

// Item is a single question within a section.
type Item struct {
	Key   string // stable identifier used by the model and input files
	Label string // display label shown to the inspector
}

// Definition describes one scored section of the checklist.
type Definition struct {
	Section    Section
	Title      string // display title, e.g. "Part 2: Documentation"
	Kind       Kind
	PerItemMax int // marks awarded for a present/excellent item
	Items      []Item
}

// Max returns the maximum marks obtainable in the section.
func (d Definition) Max() int {
	return len(d.Items) * d.PerItemMax
}

// HasItem reports whether key names an item in the section.
func (d Definition) HasItem(key string) bool {
	for _, it := range d.Items {
		if it.Key == key {
			return true
		}
	}
	return false
}

// definitions holds the fixed audit checklist. Item keys and labels match the
// paper form parts 2 through 7.
var definitions = []Definition{
	{
		Section:    Documentation,
		Title:      "Part 2: Documentation",
		Kind:       KindBoolean,
		PerItemMax: 5,
		Items: []Item{
			{Key: "hygieneCertificate", Label: "Hygiene Certificate of Food Handlers"},
			{Key: "businessPermit", Label: "Business Operating Permit"},
			{Key: "suitabilityPermit", Label: "Suitability Permit"},
			{Key: "hygienePermit", Label: "Hygiene Permit"},
		},
	},
	{
		Section:    Hygiene,
		Title:      "Part 3: Personal Hygiene of Food Handlers",
		Kind:       KindOrdinal,
		PerItemMax: 4,
		Items: []Item{
			{Key: "handWashing", Label: "Hand Washing Practices"},
			{Key: "protectiveClothing", Label: "Protective Clothing"},
			{Key: "hairCovering", Label: "Hair Covering"},
			{Key: "jewelryRemoval", Label: "Jewelry Removal"},
			{Key: "healthStatus", Label: "Health Status Monitoring"},
		},
	},
	{
		Section:    Sourcing,
		Title:      "Part 4: Material Sourcing",
		Kind:       KindOrdinal,
		PerItemMax: 5,
		Items: []Item{
			{Key: "supplierApproval", Label: "Supplier Approval Process"},
			{Key: "ingredientQuality", Label: "Ingredient Quality Control"},
			{Key: "storageConditions", Label: "Storage Conditions"},
			{Key: "expiryDateCheck", Label: "Expiry Date Monitoring"},
		},
	},
	{
		Section:    Water,
		Title:      "Part 5: Water Sources and Storage",
		Kind:       KindOrdinal,
		PerItemMax: 5,
		Items: []Item{
			{Key: "waterQuality", Label: "Water Quality Testing"},
			{Key: "storageConditions", Label: "Water Storage Conditions"},
		},
	},
	{
		Section:    Waste,
		Title:      "Part 6: Waste Disposal",
		Kind:       KindOrdinal,
		PerItemMax: 5,
		Items: []Item{
			{Key: "wasteSegregation", Label: "Waste Segregation"},
			{Key: "disposalMethod", Label: "Disposal Methods"},
			{Key: "pestControl", Label: "Pest Control Measures"},
			{Key: "drainageMaintenance", Label: "Drainage Maintenance"},
		},
	},
	{
		Section:    Cleaning,
		Title:      "Part 7: Cleaning",
		Kind:       KindOrdinal,
		PerItemMax: 5,
		Items: []Item{
			{Key: "cleaningSchedule", Label: "Cleaning Schedule Adherence"},
			{Key: "sanitizationProcedures", Label: "Sanitization Procedures"},
		},
	},
}

// Definitions returns the six scored sections in fixed traversal order.
// Callers must not mutate the returned slice.
func Definitions() []Definition {
	return definitions
}

// Lookup finds a section definition by its identifier.
func Lookup(s Section) (Definition, bool) {
	for _, d := range definitions {
		if d.Section == s {
			return d, true
		}
	}
	return Definition{}, false
}

// TotalMax returns the combined maximum over all sections. It is always 100.
func TotalMax() int {
	total := 0
	for _, d := range definitions {
		total += d.Max()
	}
	return total
}
