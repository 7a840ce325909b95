package model

import "time"

// FacetState caches the latest submission outcome for one facet. The
// authoritative record is the session history; these fields are the
// "latest" projection the state machine keeps current.
type FacetState struct {
	Facet         Facet        `json:"facet" bson:"facet"`
	QuestionIndex int          `json:"questionIndex" bson:"questionIndex"`
	Answer        string       `json:"answer,omitempty" bson:"answer,omitempty"`
	Passed        bool         `json:"passed" bson:"passed"`
	Level         QualityLevel `json:"level" bson:"level"`
	Nudges        []string     `json:"nudges" bson:"nudges"`
}

// HistoryEntry records one submitted answer. History is append-only.
type HistoryEntry struct {
	Facet     Facet        `json:"facet" bson:"facet"`
	Question  string       `json:"question" bson:"question"`
	Answer    string       `json:"answer" bson:"answer"`
	Passed    bool         `json:"passed" bson:"passed"`
	Level     QualityLevel `json:"level" bson:"level"`
	Nudges    []string     `json:"nudges" bson:"nudges"`
	Timestamp time.Time    `json:"timestamp" bson:"timestamp"`
}

// SessionState is the full per-session record. The cursor (CurrentIndex)
// never decreases; it advances only when the facet at the cursor has passed.
type SessionState struct {
	ID           string                `json:"id" bson:"_id"`
	CreatedAt    time.Time             `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt" bson:"updatedAt"`
	CurrentIndex int                   `json:"currentIndex" bson:"currentIndex"`
	Sequence     []Facet               `json:"sequence" bson:"sequence"`
	Facets       map[Facet]*FacetState `json:"facets" bson:"facets"`
	History      []HistoryEntry        `json:"history" bson:"history"`
}

// CurrentFacet returns the facet at the session cursor. The index is
// clamped because states can arrive from client-echoed snapshots.
func (s *SessionState) CurrentFacet() Facet {
	if len(s.Sequence) == 0 {
		return ""
	}
	i := s.CurrentIndex
	if i < 0 {
		i = 0
	}
	if i > len(s.Sequence)-1 {
		i = len(s.Sequence) - 1
	}
	return s.Sequence[i]
}

// NextQuestionInfo is what the question selector hands back to the caller.
type NextQuestionInfo struct {
	Facet    Facet  `json:"facet"`
	Question string `json:"question"`
	Done     bool   `json:"done"`
}
