package playbook

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"sawa/internal/model"
)

// ErrFacetNotFound is returned when a facet has no playbook item. The facet
// set is closed, so this indicates a misconfigured playbook rather than bad
// user input.
var ErrFacetNotFound = errors.New("playbook facet not found")

// Provider holds the coaching playbook. It is loaded once at bootstrap and
// injected into the services that need it; nothing mutates it afterwards.
type Provider struct {
	sequence []model.Facet
	items    map[model.Facet]model.PlaybookItem
}

// Load reads and parses a playbook JSON document from disk.
func Load(path string) (*Provider, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read playbook: %w", err)
	}

	var cfg model.PlaybookConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse playbook: %w", err)
	}

	return New(cfg)
}

// New builds a provider from an already-parsed config. Used directly by
// tests with synthetic playbooks.
func New(cfg model.PlaybookConfig) (*Provider, error) {
	if len(cfg.Items) == 0 {
		return nil, errors.New("playbook has no items")
	}

	p := &Provider{
		sequence: make([]model.Facet, 0, len(cfg.Items)),
		items:    make(map[model.Facet]model.PlaybookItem, len(cfg.Items)),
	}

	for _, item := range cfg.Items {
		if _, ok := model.ParseFacet(string(item.Facet)); !ok {
			return nil, fmt.Errorf("playbook item has unknown facet %q", item.Facet)
		}
		if _, dup := p.items[item.Facet]; dup {
			return nil, fmt.Errorf("playbook has duplicate facet %q", item.Facet)
		}
		if item.PassThreshold == "" {
			item.PassThreshold = model.ThresholdMeetsMost
		}
		p.sequence = append(p.sequence, item.Facet)
		p.items[item.Facet] = item
	}

	return p, nil
}

// Sequence returns the declared facet order. The slice is a copy; callers
// may keep it in their own state.
func (p *Provider) Sequence() []model.Facet {
	out := make([]model.Facet, len(p.sequence))
	copy(out, p.sequence)
	return out
}

// Item returns the playbook item for a facet.
func (p *Provider) Item(facet model.Facet) (model.PlaybookItem, error) {
	item, ok := p.items[facet]
	if !ok {
		return model.PlaybookItem{}, fmt.Errorf("%w: %s", ErrFacetNotFound, facet)
	}
	return item, nil
}
