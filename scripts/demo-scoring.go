//go:build ignore
// +build ignore

// Demo script showing the scoring engine and classifier on a sample audit.
// Run with: go run scripts/demo-scoring.go
package main

import (
	"fmt"

	"github.com/Techy233/FSE1/internal/checklist"
	"github.com/Techy233/FSE1/internal/scoring"
)

func main() {
	booleans := map[string]bool{
		"hygieneCertificate": true,
		"businessPermit":     true,
		"suitabilityPermit":  false,
		"hygienePermit":      true,
	}
	ratings := map[checklist.Section]map[string]checklist.Rating{
		checklist.Hygiene: {
			"handWashing":        checklist.RatingExcellent,
			"protectiveClothing": checklist.RatingGood,
			"hairCovering":       checklist.RatingGood,
			"jewelryRemoval":     checklist.RatingFair,
			"healthStatus":       checklist.RatingExcellent,
		},
		checklist.Sourcing: {
			"supplierApproval":  checklist.RatingGood,
			"ingredientQuality": checklist.RatingExcellent,
			"storageConditions": checklist.RatingGood,
			"expiryDateCheck":   checklist.RatingExcellent,
		},
		checklist.Water: {
			"waterQuality":      checklist.RatingExcellent,
			"storageConditions": checklist.RatingGood,
		},
		checklist.Waste: {
			"wasteSegregation":    checklist.RatingFair,
			"disposalMethod":      checklist.RatingGood,
			"pestControl":         checklist.RatingExcellent,
			"drainageMaintenance": checklist.RatingGood,
		},
		checklist.Cleaning: {
			"cleaningSchedule":       checklist.RatingExcellent,
			"sanitizationProcedures": checklist.RatingGood,
		},
	}

	total := 0
	for _, def := range checklist.Definitions() {
		answers := map[string]bool{}
		if def.Kind == checklist.KindBoolean {
			answers = booleans
		}
		earned, err := scoring.Section(def, answers, ratings[def.Section])
		if err != nil {
			panic(err)
		}
		fmt.Printf("%-45s %3d/%d\n", def.Title, earned, def.Max())
		total += earned
	}

	cls, err := scoring.Classify(total)
	if err != nil {
		panic(err)
	}
	fmt.Printf("\nTotal: %d/100  Stars: %d  Tier: %s  Compliant: %v\n",
		total, cls.Stars, cls.Tier, scoring.Compliant(total))
}
