package rubric

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"sawa/internal/model"
)

// minAnswerLength is the gate below which an answer is rejected before any
// facet-specific classification runs.
const minAnswerLength = 10

const shortAnswerNudge = "Please provide a more detailed response."

// maxNudges caps how many improvement suggestions a single evaluation returns.
const maxNudges = 3

// Secondary vocabularies used only for issue detection, not for levels.
var (
	verifyVocabRe     = regexp.MustCompile(`(?i)(evidence|data|study|research|experiment|analysis|method)`)
	genericEvidenceRe = regexp.MustCompile(`(?i)(evidence|data|research|study)`)
	evalCriteriaRe    = regexp.MustCompile(`(?i)(reliable|valid|credible|peer-reviewed|quality|criteria)`)
	bareCausalRe      = regexp.MustCompile(`(?i)(because|since|therefore|thus|mechanism)`)
	scopeVocabRe      = regexp.MustCompile(`(?i)(condition|when|if|under)`)
	basicBackingRe    = regexp.MustCompile(`(?i)(research|study|theory)`)
	limitVocabRe      = regexp.MustCompile(`(?i)(limitation|condition|except|but|however)`)
	bareCounterRe     = regexp.MustCompile(`(?i)(counter|against|opposition|disagree|criticize)`)
	responseVocabRe   = regexp.MustCompile(`(?i)(response|address|counter|mitigate)`)
)

type levelResult struct {
	level  model.QualityLevel
	issues []string
}

// Evaluate scores one answer against a facet's rubric. It is a pure function
// of the playbook item and the answer text; a failing evaluation is an
// ordinary result, not an error.
func Evaluate(item model.PlaybookItem, answer string) model.FacetEvaluation {
	text := strings.TrimSpace(answer)

	// Lengths are counted in runes so multi-byte scripts are not inflated.
	if utf8.RuneCountInString(text) < minAnswerLength {
		return model.FacetEvaluation{
			Passed: false,
			Level:  model.LevelWeak,
			Nudges: []string{shortAnswerNudge},
		}
	}

	var result levelResult
	switch item.Facet {
	case model.FacetClaim:
		result = classifyClaim(text)
	case model.FacetEvidence:
		result = classifyEvidence(text)
	case model.FacetReasoning:
		result = classifyReasoning(text)
	case model.FacetBacking:
		result = classifyBacking(text)
	case model.FacetQualifier:
		result = classifyQualifier(text)
	case model.FacetRebuttal:
		result = classifyRebuttal(text)
	default:
		result = levelResult{level: model.LevelWeak, issues: []string{"Unknown facet type"}}
	}

	passed := meetsThreshold(result.level, item.PassThreshold)

	nudges := []string{}
	if !passed {
		// Answer-specific issues come first so the most actionable feedback
		// survives the cap, then the playbook defaults fill the remainder.
		nudges = mergeNudges(result.issues, item.Nudges)
	}

	return model.FacetEvaluation{
		Passed: passed,
		Level:  result.level,
		Nudges: nudges,
	}
}

func meetsThreshold(level model.QualityLevel, threshold model.PassThreshold) bool {
	switch threshold {
	case model.ThresholdMeetsAll:
		return level >= model.LevelSophisticated
	case model.ThresholdProficient:
		return level >= model.LevelProficient
	default:
		return level >= model.LevelEmerging
	}
}

// mergeNudges unions the two lists, preserving first-seen order, dropping
// duplicates, and truncating to maxNudges.
func mergeNudges(issues, defaults []string) []string {
	merged := make([]string, 0, maxNudges)
	seen := make(map[string]struct{}, len(issues)+len(defaults))

	for _, list := range [][]string{issues, defaults} {
		for _, n := range list {
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			merged = append(merged, n)
			if len(merged) == maxNudges {
				return merged
			}
		}
	}
	return merged
}

func classifyClaim(text string) levelResult {
	var issues []string
	hasAbsolute := containsAbsoluteLanguage(text)
	hasConditions := hasConditionMarker(text)
	debatable := isContestable(text)
	length := utf8.RuneCountInString(text)

	// Absolute language is only an issue when no conditions scope it.
	if hasAbsolute && !hasConditions {
		issues = append(issues, "I see absolute language (always/all/never). Please specify conditions.")
	}
	if !debatable {
		issues = append(issues, "Express a clear 'position' rather than just observational facts.")
	}
	if !hasConditions && !verifyVocabRe.MatchString(text) {
		issues = append(issues, "Add a sentence about what evidence could verify this claim.")
	}

	switch {
	case debatable && hasConditions && !hasAbsolute && length > 50 && len(issues) == 0:
		return levelResult{model.LevelSophisticated, issues}
	case debatable && (hasConditions || length > 30) && len(issues) <= 1:
		return levelResult{model.LevelProficient, issues}
	case (debatable || hasConditions) && len(issues) <= 2:
		return levelResult{model.LevelEmerging, issues}
	default:
		return levelResult{model.LevelWeak, issues}
	}
}

func classifyEvidence(text string) levelResult {
	var issues []string
	specific := hasEvidenceSpecificity(text)
	generic := genericEvidenceRe.MatchString(text)
	length := utf8.RuneCountInString(text)

	if !generic {
		issues = append(issues, "Specify the source or collection method of evidence.")
	}
	if !evalCriteriaRe.MatchString(text) {
		issues = append(issues, "State 1-2 evaluation criteria (reliability, validity, reproducibility, etc.).")
	}

	switch {
	case specific && length > 80:
		return levelResult{model.LevelSophisticated, issues}
	case specific || (generic && length > 50):
		return levelResult{model.LevelProficient, issues}
	case generic:
		return levelResult{model.LevelEmerging, issues}
	default:
		return levelResult{model.LevelWeak, issues}
	}
}

func classifyReasoning(text string) levelResult {
	var issues []string
	explicit := hasExplicitWarrant(text)
	causal := bareCausalRe.MatchString(text)
	length := utf8.RuneCountInString(text)

	if !causal {
		issues = append(issues, "Write the rule in one sentence using 'because/since/therefore'.")
	}
	if !scopeVocabRe.MatchString(text) {
		issues = append(issues, "Specify the conditions under which generalization holds.")
	}

	switch {
	case explicit && length > 60:
		return levelResult{model.LevelSophisticated, issues}
	case explicit || (causal && length > 40):
		return levelResult{model.LevelProficient, issues}
	case causal:
		return levelResult{model.LevelEmerging, issues}
	default:
		return levelResult{model.LevelWeak, issues}
	}
}

func classifyBacking(text string) levelResult {
	var issues []string
	theoretical := hasTheoreticalBacking(text)
	basic := basicBackingRe.MatchString(text)
	length := utf8.RuneCountInString(text)

	if !basic {
		issues = append(issues, "Briefly mention 1-2 prior studies/theories.")
	}
	if !theoretical {
		issues = append(issues, "If possible, provide simple citation format (author, year).")
	}

	switch {
	case theoretical && length > 80:
		return levelResult{model.LevelSophisticated, issues}
	case theoretical || (basic && length > 40):
		return levelResult{model.LevelProficient, issues}
	case basic:
		return levelResult{model.LevelEmerging, issues}
	default:
		return levelResult{model.LevelWeak, issues}
	}
}

func classifyQualifier(text string) levelResult {
	var issues []string
	hedged := hasQualifyingLanguage(text)
	hasAbsolute := containsAbsoluteLanguage(text)
	length := utf8.RuneCountInString(text)

	if hasAbsolute {
		issues = append(issues, "Use expressions like 'generally/tends to/likely' and conditional clauses.")
	}
	if !limitVocabRe.MatchString(text) {
		issues = append(issues, "Briefly mention situations where it might not hold.")
	}

	switch {
	case hedged && !hasAbsolute && length > 60:
		return levelResult{model.LevelSophisticated, issues}
	case hedged && !hasAbsolute:
		return levelResult{model.LevelProficient, issues}
	case hedged || length > 30:
		return levelResult{model.LevelEmerging, issues}
	default:
		return levelResult{model.LevelWeak, issues}
	}
}

func classifyRebuttal(text string) levelResult {
	var issues []string
	strong := hasStrongCounterargument(text)
	basic := bareCounterRe.MatchString(text)
	length := utf8.RuneCountInString(text)

	if !basic {
		issues = append(issues, "Make the counterargument stronger (focus on strengths, not weaknesses).")
	}
	if !responseVocabRe.MatchString(text) {
		issues = append(issues, "Summarize your response strategy in one sentence.")
	}

	switch {
	case strong && length > 100:
		return levelResult{model.LevelSophisticated, issues}
	case strong || (basic && length > 60):
		return levelResult{model.LevelProficient, issues}
	case basic:
		return levelResult{model.LevelEmerging, issues}
	default:
		return levelResult{model.LevelWeak, issues}
	}
}
