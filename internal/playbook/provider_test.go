package playbook

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"sawa/internal/model"
)

func TestNewValidConfig(t *testing.T) {
	cfg := model.PlaybookConfig{Items: []model.PlaybookItem{
		{Facet: model.FacetClaim, PassThreshold: model.ThresholdProficient, Questions: []string{"q1"}},
		{Facet: model.FacetEvidence, Questions: []string{"q2"}},
	}}

	p, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	seq := p.Sequence()
	if len(seq) != 2 || seq[0] != model.FacetClaim || seq[1] != model.FacetEvidence {
		t.Errorf("sequence = %v", seq)
	}

	item, err := p.Item(model.FacetClaim)
	if err != nil {
		t.Fatalf("Item: %v", err)
	}
	if item.PassThreshold != model.ThresholdProficient {
		t.Errorf("threshold = %q", item.PassThreshold)
	}
}

func TestNewDefaultsThreshold(t *testing.T) {
	cfg := model.PlaybookConfig{Items: []model.PlaybookItem{
		{Facet: model.FacetClaim},
	}}
	p, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	item, err := p.Item(model.FacetClaim)
	if err != nil {
		t.Fatal(err)
	}
	if item.PassThreshold != model.ThresholdMeetsMost {
		t.Errorf("threshold = %q, want %q", item.PassThreshold, model.ThresholdMeetsMost)
	}
}

func TestNewRejectsBadConfigs(t *testing.T) {
	tests := []struct {
		name string
		cfg  model.PlaybookConfig
	}{
		{"empty", model.PlaybookConfig{}},
		{"unknown facet", model.PlaybookConfig{Items: []model.PlaybookItem{
			{Facet: model.Facet("warrant")},
		}}},
		{"duplicate facet", model.PlaybookConfig{Items: []model.PlaybookItem{
			{Facet: model.FacetClaim},
			{Facet: model.FacetClaim},
		}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.cfg); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestItemUnknownFacet(t *testing.T) {
	p, err := New(model.PlaybookConfig{Items: []model.PlaybookItem{{Facet: model.FacetClaim}}})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Item(model.FacetRebuttal); !errors.Is(err, ErrFacetNotFound) {
		t.Errorf("err = %v, want ErrFacetNotFound", err)
	}
}

func TestSequenceReturnsCopy(t *testing.T) {
	p, err := New(model.PlaybookConfig{Items: []model.PlaybookItem{
		{Facet: model.FacetClaim},
		{Facet: model.FacetEvidence},
	}})
	if err != nil {
		t.Fatal(err)
	}
	seq := p.Sequence()
	seq[0] = model.FacetRebuttal
	if p.Sequence()[0] != model.FacetClaim {
		t.Error("mutating the returned sequence changed the provider")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playbook.json")
	doc := `{"items": [{"facet": "claim", "questions": ["What is your claim?"], "passThreshold": "proficient"}]}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	item, err := p.Item(model.FacetClaim)
	if err != nil {
		t.Fatal(err)
	}
	if len(item.Questions) != 1 || item.Questions[0] != "What is your claim?" {
		t.Errorf("questions = %v", item.Questions)
	}
	if item.PassThreshold != model.ThresholdProficient {
		t.Errorf("threshold = %q", item.PassThreshold)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadShippedPlaybook(t *testing.T) {
	p, err := Load(filepath.Join("..", "..", "config", "sawa-playbook.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	seq := p.Sequence()
	if len(seq) != len(model.Facets) {
		t.Fatalf("shipped playbook has %d facets, want %d", len(seq), len(model.Facets))
	}
	for i, f := range model.Facets {
		if seq[i] != f {
			t.Errorf("sequence[%d] = %s, want %s", i, seq[i], f)
		}
	}
	claim, err := p.Item(model.FacetClaim)
	if err != nil {
		t.Fatal(err)
	}
	if claim.PassThreshold != model.ThresholdProficient {
		t.Errorf("claim threshold = %q, want proficient", claim.PassThreshold)
	}
	if len(claim.Questions) == 0 || len(claim.Nudges) == 0 {
		t.Error("claim item missing questions or nudges")
	}
}
