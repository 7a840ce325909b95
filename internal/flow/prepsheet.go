package flow

import (
	"strings"

	"sawa/internal/model"
)

const unansweredPlaceholder = "(not written)"

// BuildPrepSheet renders the session's latest answers into a markdown
// document: one heading, then one section per facet in sequence order.
// It is total over any state, including a freshly initialized one.
func BuildPrepSheet(state *model.SessionState) string {
	var b strings.Builder
	b.WriteString("# SAWA Prep Sheet")

	for _, facet := range state.Sequence {
		b.WriteString("\n\n## ")
		b.WriteString(facet.Title())
		b.WriteString("\n")

		if fs, ok := state.Facets[facet]; ok && fs.Answer != "" {
			b.WriteString(fs.Answer)
		} else {
			b.WriteString(unansweredPlaceholder)
		}
	}

	return b.String()
}
