package flow

import (
	"strings"
	"testing"

	"sawa/internal/model"
)

func TestBuildPrepSheetFreshSession(t *testing.T) {
	engine := testEngine(t)
	state := engine.InitializeSession("s-1")

	got := BuildPrepSheet(state)

	want := "# SAWA Prep Sheet" +
		"\n\n## Claim\n(not written)" +
		"\n\n## Evidence\n(not written)" +
		"\n\n## Reasoning\n(not written)" +
		"\n\n## Backing\n(not written)" +
		"\n\n## Qualifier\n(not written)" +
		"\n\n## Rebuttal\n(not written)"
	if got != want {
		t.Errorf("prep sheet:\n%s\nwant:\n%s", got, want)
	}
}

func TestBuildPrepSheetKeepsLatestAnswer(t *testing.T) {
	engine := testEngine(t)
	state := engine.InitializeSession("s-1")

	// A failing answer still counts as the latest text for its facet.
	if _, _, err := engine.ApplyAnswer(state, model.FacetClaim, failingClaim); err != nil {
		t.Fatal(err)
	}
	sheet := BuildPrepSheet(state)
	if !strings.Contains(sheet, "## Claim\n"+failingClaim) {
		t.Errorf("claim section missing failing answer:\n%s", sheet)
	}

	if _, _, err := engine.ApplyAnswer(state, model.FacetClaim, passingAnswers[model.FacetClaim]); err != nil {
		t.Fatal(err)
	}
	sheet = BuildPrepSheet(state)
	if strings.Contains(sheet, failingClaim) {
		t.Errorf("superseded answer still present:\n%s", sheet)
	}
	if !strings.Contains(sheet, "## Claim\n"+passingAnswers[model.FacetClaim]) {
		t.Errorf("claim section missing latest answer:\n%s", sheet)
	}
	if !strings.Contains(sheet, "## Evidence\n(not written)") {
		t.Errorf("unanswered facet lost its placeholder:\n%s", sheet)
	}
}

func TestBuildPrepSheetIdempotent(t *testing.T) {
	engine := testEngine(t)
	state := engine.InitializeSession("s-1")
	if _, _, err := engine.ApplyAnswer(state, model.FacetClaim, passingAnswers[model.FacetClaim]); err != nil {
		t.Fatal(err)
	}

	first := BuildPrepSheet(state)
	second := BuildPrepSheet(state)
	if first != second {
		t.Error("building the sheet twice produced different output")
	}
	if len(state.History) != 1 {
		t.Errorf("building the sheet changed history length: %d", len(state.History))
	}
}
