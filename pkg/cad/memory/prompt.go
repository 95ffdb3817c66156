package memory

import (
	"context"
	"sync"

	"github.com/cadkit/cadkit/pkg/errors"
	"github.com/cadkit/cadkit/pkg/geom"
)

// Prompter answers the document's modal input requests. Implementations
// block until the user responds or the context is cancelled.
type Prompter interface {
	PromptPoint(ctx context.Context, prompt string) (geom.Point, error)
	PromptString(ctx context.Context, prompt string) (string, error)
	PromptInt(ctx context.Context, prompt string) (int, error)
}

// PromptPoint asks the attached prompter to pick a point.
func (d *Document) PromptPoint(ctx context.Context, prompt string) (geom.Point, error) {
	p := d.currentPrompter()
	if p == nil {
		return geom.Point{}, noPrompter()
	}
	return p.PromptPoint(ctx, prompt)
}

// PromptString asks the attached prompter for a line of text.
func (d *Document) PromptString(ctx context.Context, prompt string) (string, error) {
	p := d.currentPrompter()
	if p == nil {
		return "", noPrompter()
	}
	return p.PromptString(ctx, prompt)
}

// PromptInt asks the attached prompter for an integer.
func (d *Document) PromptInt(ctx context.Context, prompt string) (int, error) {
	p := d.currentPrompter()
	if p == nil {
		return 0, noPrompter()
	}
	return p.PromptInt(ctx, prompt)
}

func (d *Document) currentPrompter() Prompter {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.prompter
}

func noPrompter() error {
	return errors.New(errors.ErrCodeUnsupported, "document has no prompter attached")
}

// =============================================================================
// ScriptedPrompter
// =============================================================================

// ScriptedPrompter replays queued responses, for tests and headless runs.
// Queue methods return the prompter for chaining. Running out of queued
// responses fails with PROMPT_CANCELLED.
type ScriptedPrompter struct {
	mu      sync.Mutex
	points  []geom.Point
	strings []string
	ints    []int
}

// NewScriptedPrompter creates an empty scripted prompter.
func NewScriptedPrompter() *ScriptedPrompter {
	return &ScriptedPrompter{}
}

// QueuePoint appends a point response.
func (s *ScriptedPrompter) QueuePoint(p geom.Point) *ScriptedPrompter {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.points = append(s.points, p)
	return s
}

// QueueString appends a string response.
func (s *ScriptedPrompter) QueueString(v string) *ScriptedPrompter {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.strings = append(s.strings, v)
	return s
}

// QueueInt appends an integer response.
func (s *ScriptedPrompter) QueueInt(n int) *ScriptedPrompter {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ints = append(s.ints, n)
	return s
}

// PromptPoint returns the next queued point.
func (s *ScriptedPrompter) PromptPoint(_ context.Context, _ string) (geom.Point, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.points) == 0 {
		return geom.Point{}, exhausted("point")
	}
	p := s.points[0]
	s.points = s.points[1:]
	return p, nil
}

// PromptString returns the next queued string.
func (s *ScriptedPrompter) PromptString(_ context.Context, _ string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.strings) == 0 {
		return "", exhausted("string")
	}
	v := s.strings[0]
	s.strings = s.strings[1:]
	return v, nil
}

// PromptInt returns the next queued integer.
func (s *ScriptedPrompter) PromptInt(_ context.Context, _ string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.ints) == 0 {
		return 0, exhausted("integer")
	}
	n := s.ints[0]
	s.ints = s.ints[1:]
	return n, nil
}

func exhausted(kind string) error {
	return errors.New(errors.ErrCodePromptCancelled, "no scripted %s response left", kind)
}

var _ Prompter = (*ScriptedPrompter)(nil)
