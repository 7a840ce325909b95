package model

// PassThreshold selects the quality bar a facet answer must clear.
type PassThreshold string

const (
	// ThresholdMeetsAll requires the top rubric level (4).
	ThresholdMeetsAll PassThreshold = "meets_all"
	// ThresholdProficient requires level 3 or above.
	ThresholdProficient PassThreshold = "proficient"
	// ThresholdMeetsMost requires level 2 or above. This is the default
	// when a playbook item carries no explicit threshold.
	ThresholdMeetsMost PassThreshold = "meets_most"
)

// RubricLevel describes one quality level of a facet rubric.
type RubricLevel struct {
	Description string   `json:"description"`
	Criteria    []string `json:"criteria"`
}

// AnchoredExample pairs a weak answer with an improvement nudge,
// optionally with a strong rewrite.
type AnchoredExample struct {
	Weak   string `json:"weak"`
	Strong string `json:"strong,omitempty"`
	Nudge  string `json:"nudge"`
}

// PlaybookItem is the per-facet coaching configuration. Immutable after load.
type PlaybookItem struct {
	Facet            Facet                  `json:"facet"`
	Goal             string                 `json:"goal"`
	RubricLevels     map[string]RubricLevel `json:"rubricLevels,omitempty"`
	Checklist        []string               `json:"checklist"`
	PassThreshold    PassThreshold          `json:"passThreshold"`
	Questions        []string               `json:"questions"`
	Nudges           []string               `json:"nudges"`
	AnchoredExamples []AnchoredExample      `json:"anchoredExamples,omitempty"`
}

// PlaybookConfig is the root of the playbook JSON document.
type PlaybookConfig struct {
	Items []PlaybookItem `json:"items"`
}
