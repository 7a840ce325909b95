package model

import "strings"

// Facet is one stage of the six-part argument-structure rubric.
type Facet string

const (
	FacetClaim     Facet = "claim"
	FacetEvidence  Facet = "evidence"
	FacetReasoning Facet = "reasoning"
	FacetBacking   Facet = "backing"
	FacetQualifier Facet = "qualifier"
	FacetRebuttal  Facet = "rebuttal"
)

// Facets lists every facet in canonical dialogue order.
var Facets = []Facet{
	FacetClaim,
	FacetEvidence,
	FacetReasoning,
	FacetBacking,
	FacetQualifier,
	FacetRebuttal,
}

// ParseFacet validates a raw facet string from a request.
func ParseFacet(s string) (Facet, bool) {
	f := Facet(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Facets {
		if f == known {
			return f, true
		}
	}
	return "", false
}

// Title returns the capitalized facet name used in exported documents.
func (f Facet) Title() string {
	if f == "" {
		return ""
	}
	return strings.ToUpper(string(f[:1])) + string(f[1:])
}
