package flow

import (
	"fmt"
	"time"

	"sawa/internal/model"
	"sawa/internal/playbook"
	"sawa/internal/rubric"
)

// timeNow is overridden in tests for deterministic timestamps.
var timeNow = time.Now

// Engine drives the facet dialogue for one session at a time. It owns no
// state of its own beyond the read-only playbook; every transition takes a
// caller-owned SessionState and mutates that value. Callers must serialize
// ApplyAnswer per session id.
type Engine struct {
	playbook *playbook.Provider
}

// NewEngine creates a flow engine over a loaded playbook.
func NewEngine(pb *playbook.Provider) *Engine {
	return &Engine{playbook: pb}
}

// InitializeSession builds a fresh session: cursor at the first facet, one
// default FacetState per facet in the playbook sequence, empty history.
func (e *Engine) InitializeSession(id string) *model.SessionState {
	now := timeNow().UTC()
	sequence := e.playbook.Sequence()

	facets := make(map[model.Facet]*model.FacetState, len(sequence))
	for _, f := range sequence {
		facets[f] = &model.FacetState{
			Facet:         f,
			QuestionIndex: 0,
			Passed:        false,
			Level:         model.LevelWeak,
			Nudges:        []string{},
		}
	}

	return &model.SessionState{
		ID:           id,
		CreatedAt:    now,
		UpdatedAt:    now,
		CurrentIndex: 0,
		Sequence:     sequence,
		Facets:       facets,
		History:      []model.HistoryEntry{},
	}
}

// ApplyAnswer evaluates one submitted answer and advances the session.
// A failing evaluation is a normal outcome: the cursor stays put and the
// facet cycles to its next follow-up question, clamped at the last one.
// Every submission, passing or not, appends exactly one history entry.
func (e *Engine) ApplyAnswer(state *model.SessionState, facet model.Facet, answer string) (model.FacetEvaluation, string, error) {
	item, err := e.playbook.Item(facet)
	if err != nil {
		return model.FacetEvaluation{}, "", fmt.Errorf("apply answer: %w", err)
	}

	evaluation := rubric.Evaluate(item, answer)

	// Sessions created by this engine always carry the full facet map, but
	// client-echoed snapshots may arrive without it or with partial entries.
	if state.Facets == nil {
		state.Facets = make(map[model.Facet]*model.FacetState, len(state.Sequence))
	}
	fs, ok := state.Facets[facet]
	if !ok {
		fs = &model.FacetState{Facet: facet}
		state.Facets[facet] = fs
	}

	question := questionAt(item, fs.QuestionIndex)

	fs.Answer = answer
	fs.Level = evaluation.Level
	fs.Passed = evaluation.Passed
	fs.Nudges = evaluation.Nudges

	state.History = append(state.History, model.HistoryEntry{
		Facet:     facet,
		Question:  question,
		Answer:    answer,
		Passed:    evaluation.Passed,
		Level:     evaluation.Level,
		Nudges:    evaluation.Nudges,
		Timestamp: timeNow().UTC(),
	})

	if evaluation.Passed {
		// Saturate at the last facet; passing it again does not move past bounds.
		if state.CurrentIndex < len(state.Sequence)-1 {
			state.CurrentIndex++
		}
	} else if fs.QuestionIndex < len(item.Questions)-1 {
		fs.QuestionIndex++
	}

	state.UpdatedAt = timeNow().UTC()
	return evaluation, question, nil
}

// NextQuestion picks the prompt to present for the current facet. Done is an
// order-independent check over every facet: the cursor saturates at the last
// index, so completion cannot be inferred from cursor position.
func (e *Engine) NextQuestion(state *model.SessionState) (model.NextQuestionInfo, error) {
	facet := state.CurrentFacet()
	item, err := e.playbook.Item(facet)
	if err != nil {
		return model.NextQuestionInfo{}, fmt.Errorf("next question: %w", err)
	}

	questionIndex := 0
	if fs, ok := state.Facets[facet]; ok {
		questionIndex = fs.QuestionIndex
	}

	done := true
	for _, f := range state.Sequence {
		fs, ok := state.Facets[f]
		if !ok || !fs.Passed {
			done = false
			break
		}
	}

	return model.NextQuestionInfo{
		Facet:    facet,
		Question: questionAt(item, questionIndex),
		Done:     done,
	}, nil
}

// questionAt clamps the index at both bounds: repeated failures never run
// past the last follow-up question, and deserialized states can carry a
// negative index. An empty playbook question list yields "".
func questionAt(item model.PlaybookItem, index int) string {
	if len(item.Questions) == 0 {
		return ""
	}
	if index < 0 {
		index = 0
	}
	if index > len(item.Questions)-1 {
		index = len(item.Questions) - 1
	}
	return item.Questions[index]
}
