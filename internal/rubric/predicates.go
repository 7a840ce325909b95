package rubric

import "regexp"

// Each predicate is a named boolean signal over the trimmed answer text.
// They are independent and unit-testable; the per-facet classifiers combine
// them into a quality level.

var (
	// Absolute language is matched narrowly to avoid false positives on
	// common words; "all" only counts when it quantifies a population.
	absoluteWordsRe = regexp.MustCompile(`(?i)\b(always|never|every|everything|completely|entirely|totally|absolutely|invariably|without exception)\b`)
	absoluteAllRe   = regexp.MustCompile(`(?i)\ball\s+(students|faculty|people|cases|research|studies|evidence)\b`)

	conditionMarkerRe = regexp.MustCompile(`(?i)(when|if|under|in cases where|provided that|given that|tends to|generally|typically|often|usually|in contexts)`)

	assertionRe  = regexp.MustCompile(`(?i)(predict|argue|claim|suggest|propose|assert|maintain|contend|hypothesis|theorize)`)
	causalVerbRe = regexp.MustCompile(`(?i)(cause|lead to|result in|increase|decrease|improve|reduce|enhance|affect|influence|impact)`)
	comparisonRe = regexp.MustCompile(`(?i)(better|worse|more effective|less effective|superior|inferior|outperform)`)

	sourceVocabRe   = regexp.MustCompile(`(?i)(study|studies|research|trial|experiment|survey|data|dataset|analysis|meta-analysis|review|database|PubMed|Google Scholar)`)
	methodVocabRe   = regexp.MustCompile(`(?i)(randomized|controlled|longitudinal|cross-sectional|qualitative|quantitative|sample|participants|subjects)`)
	criteriaVocabRe = regexp.MustCompile(`(?i)(reliable|valid|peer-reviewed|published|credible|trustworthy|methodology|quality)`)

	causalLinkRe = regexp.MustCompile(`(?i)(because|since|therefore|thus|hence|consequently|as a result|due to|owing to)`)
	mechanismRe  = regexp.MustCompile(`(?i)(mechanism|principle|rule|theory|process|pathway|explains why|reason that)`)

	theoryVocabRe = regexp.MustCompile(`(?i)(theory|model|framework|paradigm|research by|studies by|meta-analysis|systematic review)`)
	citationRe    = regexp.MustCompile(`\(\w+,?\s*\d{4}\)|[\w\s]+\s*\(\d{4}\)`)

	hedgingRe     = regexp.MustCompile(`(?i)(generally|typically|tends to|likely|probably|may|might|often|usually|sometimes|appears to|suggests that)`)
	conditionalRe = regexp.MustCompile(`(?i)(under certain conditions|in specific contexts|for some|among|approximately|around|roughly)`)

	counterTermRe  = regexp.MustCompile(`(?i)(critics|opponents|skeptics|however|conversely|on the other hand|counterargument|objection|limitation)`)
	responseTermRe = regexp.MustCompile(`(?i)(address|respond|counter|mitigate|acknowledge|account for)`)
)

// containsAbsoluteLanguage reports unqualified universal claims.
func containsAbsoluteLanguage(text string) bool {
	return absoluteWordsRe.MatchString(text) || absoluteAllRe.MatchString(text)
}

// hasConditionMarker reports that the claim is scoped to conditions.
func hasConditionMarker(text string) bool {
	return conditionMarkerRe.MatchString(text)
}

// isContestable reports a debatable assertion: an opinion, causal, or
// comparative statement rather than a bare observation.
func isContestable(text string) bool {
	return assertionRe.MatchString(text) || causalVerbRe.MatchString(text) || comparisonRe.MatchString(text)
}

// hasEvidenceSpecificity requires source vocabulary co-occurring with
// method or credibility terms.
func hasEvidenceSpecificity(text string) bool {
	return sourceVocabRe.MatchString(text) && (methodVocabRe.MatchString(text) || criteriaVocabRe.MatchString(text))
}

// hasExplicitWarrant requires a causal connective together with a
// mechanism or explanatory term.
func hasExplicitWarrant(text string) bool {
	return causalLinkRe.MatchString(text) && mechanismRe.MatchString(text)
}

// hasTheoreticalBacking accepts framework language or a rough
// (author, year) citation shape.
func hasTheoreticalBacking(text string) bool {
	return theoryVocabRe.MatchString(text) || citationRe.MatchString(text)
}

// hasQualifyingLanguage reports hedging or probabilistic phrasing.
func hasQualifyingLanguage(text string) bool {
	return hedgingRe.MatchString(text) || conditionalRe.MatchString(text)
}

// hasStrongCounterargument requires a counterargument term co-occurring
// with a response or mitigation term.
func hasStrongCounterargument(text string) bool {
	return counterTermRe.MatchString(text) && responseTermRe.MatchString(text)
}
