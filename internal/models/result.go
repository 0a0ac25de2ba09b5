package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/Techy233/FSE1/internal/checklist"
)

// SectionScore is the earned/max pair for one scored section.
type SectionScore struct {
	Section checklist.Section
	Title   string
	Earned  int
	Max     int
}

// Result is the frozen outcome of a completed audit: the total score, the
// star rating and compliance tier, the per-section breakdown, and a snapshot
// of the background information and signatures at the moment of completion.
// It is constructed once by the workflow controller and never mutated.
type Result struct {
	AssessmentID uuid.UUID
	CompletedAt  time.Time

	Background BackgroundInfo
	Signatures map[SignatureParty]string

	Sections []SectionScore
	Total    int
	Stars    int
	Tier     string
}
