package debate

import (
	"context"
	"sync"

	"github.com/hugo-lorenzo-mato/debate-ai/internal/core"
)

// fakeParticipant is a scripted agent for tests. Reply, when set, is
// invoked with the prompt; otherwise Content is returned for every call.
type fakeParticipant struct {
	name    string
	content string
	reply   func(prompt string) string
	err     error
	cost    float64
	tokens  int

	mu    sync.Mutex
	calls int
}

func (f *fakeParticipant) Name() string     { return f.name }
func (f *fakeParticipant) Models() []string { return []string{"fake-model-1"} }

func (f *fakeParticipant) Generate(_ context.Context, prompt, _ string) (*core.Response, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}
	content := f.content
	if f.reply != nil {
		content = f.reply(prompt)
	}
	return &core.Response{
		Content:   content,
		Model:     "fake-model-1",
		TokensIn:  f.tokens,
		TokensOut: f.tokens,
		CostUSD:   f.cost,
	}, nil
}

func (f *fakeParticipant) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// scriptedScorer returns the scripted scores in order, repeating the
// last one when the script runs out.
type scriptedScorer struct {
	scores []float64

	mu        sync.Mutex
	calls     int
	lastTexts []string
}

func (s *scriptedScorer) Method() string { return "scripted" }

func (s *scriptedScorer) Score(_ context.Context, texts []string) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastTexts = append([]string(nil), texts...)
	idx := s.calls
	s.calls++
	if len(texts) < 2 {
		return 0, nil
	}
	if idx >= len(s.scores) {
		idx = len(s.scores) - 1
	}
	if idx < 0 {
		return 0, nil
	}
	return s.scores[idx], nil
}

func (s *scriptedScorer) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func (s *scriptedScorer) scoredTexts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.lastTexts...)
}

// newTestEngine assembles an engine over fakes with a fresh store and
// cost recorder.
func newTestEngine(scorer core.Scorer, participants ...core.Participant) (*Engine, *recorderSpy, *MemoryStore) {
	rec := newRecorderSpy()
	store := NewMemoryStore()
	conductor := NewConductor(participants, rec, scorer, nil)
	return NewEngine(conductor, store, rec, nil), rec, store
}

// recorderSpy implements core.CostRecorder with simple accumulation.
type recorderSpy struct {
	mu      sync.Mutex
	totals  map[core.SessionID]float64
	entries []costEntry
}

type costEntry struct {
	session     core.SessionID
	participant string
	costUSD     float64
	tokens      int
	round       int
}

func newRecorderSpy() *recorderSpy {
	return &recorderSpy{totals: make(map[core.SessionID]float64)}
}

func (r *recorderSpy) InitSession(core.SessionID) {}

func (r *recorderSpy) RecordCost(id core.SessionID, participant string, costUSD float64, tokens, round int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.totals[id] += costUSD
	r.entries = append(r.entries, costEntry{id, participant, costUSD, tokens, round})
}

func (r *recorderSpy) CurrentCost(id core.SessionID) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.totals[id]
}

func (r *recorderSpy) entriesFor(id core.SessionID) []costEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []costEntry
	for _, e := range r.entries {
		if e.session == id {
			out = append(out, e)
		}
	}
	return out
}
