package rubric

import (
	"reflect"
	"testing"

	"sawa/internal/model"
)

func claimItem(threshold model.PassThreshold, nudges ...string) model.PlaybookItem {
	return model.PlaybookItem{
		Facet:         model.FacetClaim,
		PassThreshold: threshold,
		Nudges:        nudges,
	}
}

func TestEvaluateShortAnswer(t *testing.T) {
	tests := []struct {
		name   string
		answer string
	}{
		{"empty", ""},
		{"nine chars", "too short"},
		{"nine chars padded", "   too short   "},
		{"whitespace only", "      \n\t   "},
	}

	item := claimItem(model.ThresholdProficient, "default nudge")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eval := Evaluate(item, tt.answer)
			if eval.Passed {
				t.Fatalf("short answer passed: %q", tt.answer)
			}
			if eval.Level != model.LevelWeak {
				t.Errorf("level = %d, want %d", eval.Level, model.LevelWeak)
			}
			want := []string{"Please provide a more detailed response."}
			if !reflect.DeepEqual(eval.Nudges, want) {
				t.Errorf("nudges = %v, want %v", eval.Nudges, want)
			}
		})
	}
}

func TestEvaluateCountsRunesNotBytes(t *testing.T) {
	item := claimItem(model.ThresholdProficient, "default nudge")
	gateNudge := []string{"Please provide a more detailed response."}

	// Nine Hangul syllables are 27 bytes; the gate counts characters.
	eval := Evaluate(item, "아홉글자짜리답변임")
	if eval.Passed || eval.Level != model.LevelWeak {
		t.Fatalf("nine-rune answer = %+v, want weak/not-passed", eval)
	}
	if !reflect.DeepEqual(eval.Nudges, gateNudge) {
		t.Errorf("nudges = %v, want the length-gate nudge", eval.Nudges)
	}

	// Fourteen runes clear the gate and reach the claim classifier.
	eval = Evaluate(item, "재택근무가 생산성을 높인다")
	if reflect.DeepEqual(eval.Nudges, gateNudge) {
		t.Error("answer over the gate still got the length-gate nudge")
	}
}

func TestEvaluateClaimAbsoluteLanguage(t *testing.T) {
	item := claimItem(model.ThresholdProficient, "Make the claim debatable.")
	eval := Evaluate(item, "Remote work always improves productivity.")

	if eval.Passed {
		t.Fatal("unscoped absolute claim should not pass at proficient")
	}
	if eval.Level != model.LevelEmerging {
		t.Errorf("level = %d, want %d", eval.Level, model.LevelEmerging)
	}
	if len(eval.Nudges) == 0 {
		t.Fatal("expected nudges on a failing evaluation")
	}
	if eval.Nudges[0] != "I see absolute language (always/all/never). Please specify conditions." {
		t.Errorf("first nudge = %q, want the absolute-language issue", eval.Nudges[0])
	}
}

func TestEvaluateClaimScopedConditions(t *testing.T) {
	item := claimItem(model.ThresholdProficient)
	answer := "Remote work tends to improve productivity when employees have dedicated workspaces and clear evidence of progress."
	eval := Evaluate(item, answer)

	if !eval.Passed {
		t.Fatal("scoped, debatable claim should pass at proficient")
	}
	if eval.Level != model.LevelSophisticated {
		t.Errorf("level = %d, want %d", eval.Level, model.LevelSophisticated)
	}
	if len(eval.Nudges) != 0 {
		t.Errorf("passing evaluation carries nudges: %v", eval.Nudges)
	}
}

func TestEvaluateStrongAnswers(t *testing.T) {
	tests := []struct {
		facet  model.Facet
		answer string
	}{
		{
			model.FacetClaim,
			"Remote work tends to improve productivity when employees have dedicated workspaces and clear evidence of progress.",
		},
		{
			model.FacetEvidence,
			"A randomized controlled trial published in a peer-reviewed journal with 500 participants provides strong data for this claim.",
		},
		{
			model.FacetReasoning,
			"Because the underlying mechanism links focus time to output, fewer interruptions therefore increase productivity under these conditions.",
		},
		{
			model.FacetBacking,
			"Cognitive load theory and the meta-analysis by Smith (2019) provide a framework supporting this warrant across many prior studies.",
		},
		{
			model.FacetQualifier,
			"This effect generally holds and likely varies, but it might not hold under heavy meeting loads or poor home conditions.",
		},
		{
			model.FacetRebuttal,
			"Critics argue that remote work weakens collaboration; however, I address this objection by noting that structured check-ins mitigate coordination costs in distributed teams.",
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.facet), func(t *testing.T) {
			item := model.PlaybookItem{Facet: tt.facet, PassThreshold: model.ThresholdMeetsAll}
			eval := Evaluate(item, tt.answer)
			if eval.Level != model.LevelSophisticated {
				t.Errorf("level = %d, want %d", eval.Level, model.LevelSophisticated)
			}
			if !eval.Passed {
				t.Error("sophisticated answer should meet the meets_all threshold")
			}
		})
	}
}

func TestEvaluateThresholds(t *testing.T) {
	// Generic evidence vocabulary without method or credibility terms lands
	// at the emerging level regardless of threshold.
	answer := "There is data for this."

	tests := []struct {
		threshold model.PassThreshold
		wantPass  bool
	}{
		{model.ThresholdMeetsMost, true},
		{model.ThresholdProficient, false},
		{model.ThresholdMeetsAll, false},
		{"", true}, // empty threshold defaults to meets_most
	}

	for _, tt := range tests {
		t.Run(string(tt.threshold), func(t *testing.T) {
			item := model.PlaybookItem{Facet: model.FacetEvidence, PassThreshold: tt.threshold}
			eval := Evaluate(item, answer)
			if eval.Level != model.LevelEmerging {
				t.Fatalf("level = %d, want %d", eval.Level, model.LevelEmerging)
			}
			if eval.Passed != tt.wantPass {
				t.Errorf("passed = %v, want %v", eval.Passed, tt.wantPass)
			}
		})
	}
}

func TestEvaluateNudgeMerging(t *testing.T) {
	absoluteIssue := "I see absolute language (always/all/never). Please specify conditions."
	verifyIssue := "Add a sentence about what evidence could verify this claim."

	// The first default duplicates an answer-specific issue and must not
	// appear twice; the cap keeps the total at three.
	item := claimItem(model.ThresholdProficient, absoluteIssue, "first default", "second default")
	eval := Evaluate(item, "Remote work always improves productivity.")

	want := []string{absoluteIssue, verifyIssue, "first default"}
	if !reflect.DeepEqual(eval.Nudges, want) {
		t.Errorf("nudges = %v, want %v", eval.Nudges, want)
	}
}

func TestEvaluateDeterministic(t *testing.T) {
	item := claimItem(model.ThresholdProficient, "a", "b", "c")
	answer := "Remote work always improves productivity."

	first := Evaluate(item, answer)
	for i := 0; i < 10; i++ {
		if got := Evaluate(item, answer); !reflect.DeepEqual(got, first) {
			t.Fatalf("evaluation %d = %+v, want %+v", i, got, first)
		}
	}
}

func TestEvaluateUnknownFacet(t *testing.T) {
	item := model.PlaybookItem{Facet: model.Facet("nonsense"), PassThreshold: model.ThresholdMeetsMost}
	eval := Evaluate(item, "a perfectly reasonable answer of some length")
	if eval.Passed {
		t.Error("unknown facet should not pass")
	}
	if eval.Level != model.LevelWeak {
		t.Errorf("level = %d, want %d", eval.Level, model.LevelWeak)
	}
}
