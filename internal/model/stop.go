package model

import (
	"encoding/json"
	"math"
)

// NoBifurcation marks a stop criterion whose tracked bar has no pending
// bifurcation left; such a section can only terminate.
const NoBifurcation = -1

// StopCriterion tells a growing section when to bifurcate and when to
// terminate. BifID and TermID index the bars of the owning barcode, Ref is
// the metric value accumulated by the ancestors when the section started.
type StopCriterion struct {
	BifID  int
	Bif    float64
	TermID int
	Term   float64
	Ref    float64
}

// HasBifurcation reports whether the criterion still expects a bifurcation
// before its termination.
func (s StopCriterion) HasBifurcation() bool {
	return s.BifID != NoBifurcation && s.Bif < s.Term
}

// ExpectedBifurcation is the remaining metric distance to the bifurcation.
func (s StopCriterion) ExpectedBifurcation() float64 {
	if !s.HasBifurcation() {
		return math.Inf(1)
	}

	return s.Bif - s.Ref
}

// ExpectedTermination is the remaining metric distance to the termination.
func (s StopCriterion) ExpectedTermination() float64 {
	return s.Term - s.Ref
}

type stopDoc struct {
	BifID  int      `json:"bif_id"`
	Bif    *float64 `json:"bif"`
	TermID int      `json:"term_id"`
	Term   float64  `json:"term"`
	Ref    float64  `json:"ref"`
}

// MarshalJSON writes an infinite bif as null.
func (s StopCriterion) MarshalJSON() ([]byte, error) {
	doc := stopDoc{BifID: s.BifID, TermID: s.TermID, Term: s.Term, Ref: s.Ref}
	if !math.IsInf(s.Bif, 0) && !math.IsNaN(s.Bif) {
		bif := s.Bif
		doc.Bif = &bif
	}

	return json.Marshal(doc)
}

// UnmarshalJSON reads a null bif back as +Inf.
func (s *StopCriterion) UnmarshalJSON(data []byte) error {
	var doc stopDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	*s = StopCriterion{BifID: doc.BifID, Bif: math.Inf(1), TermID: doc.TermID, Term: doc.Term, Ref: doc.Ref}
	if doc.Bif != nil {
		s.Bif = *doc.Bif
	}

	return nil
}
