// Package scoring implements the deterministic marking rules for the audit
// checklist: per-section sub-scores and the overall compliance classification.
// Everything here is a pure function over answer sets; errors signal contract
// violations by the caller, never user-facing conditions.
package scoring

import (
	"errors"
	"fmt"

	"github.com/Techy233/FSE1/internal/checklist"
)

// ErrUnknownItem is returned when an answer set contains a key the section
// does not define.
var ErrUnknownItem = errors.New("scoring: unknown item key")

// Fixed marks for the middle ordinal ratings. These are absolute values, not
// fractions of the item maximum: a "good" hygiene item (max 4) and a "good"
// sourcing item (max 5) both earn 3 marks.
const (
	goodMarks = 3
	fairMarks = 2
)

// ratingMarks maps an ordinal rating to the marks it earns for an item with
// the given maximum.
func ratingMarks(r checklist.Rating, perItemMax int) int {
	switch r {
	case checklist.RatingExcellent:
		return perItemMax
	case checklist.RatingGood:
		return goodMarks
	case checklist.RatingFair:
		return fairMarks
	default: // poor or unset
		return 0
	}
}

// Section computes the sub-score for one section from its answer set.
// For a boolean section, booleans is consulted and each present item earns
// the item maximum. For an ordinal section, ratings is consulted. Unanswered
// items earn zero. Keys not defined by the section are contract violations.
func Section(def checklist.Definition, booleans map[string]bool, ratings map[string]checklist.Rating) (int, error) {
	if err := checkKeys(def, booleans, ratings); err != nil {
		return 0, err
	}

	score := 0
	for _, item := range def.Items {
		if def.Kind == checklist.KindBoolean {
			if booleans[item.Key] {
				score += def.PerItemMax
			}
			continue
		}
		score += ratingMarks(ratings[item.Key], def.PerItemMax)
	}
	return score, nil
}

// checkKeys rejects answer keys the section does not define.
func checkKeys(def checklist.Definition, booleans map[string]bool, ratings map[string]checklist.Rating) error {
	for key := range booleans {
		if !def.HasItem(key) {
			return fmt.Errorf("%w: %q in section %s", ErrUnknownItem, key, def.Section)
		}
	}
	for key := range ratings {
		if !def.HasItem(key) {
			return fmt.Errorf("%w: %q in section %s", ErrUnknownItem, key, def.Section)
		}
	}
	return nil
}
