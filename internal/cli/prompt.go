package cli

import (
	"context"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cadkit/cadkit/pkg/cad/memory"
	"github.com/cadkit/cadkit/pkg/errors"
	"github.com/cadkit/cadkit/pkg/geom"
)

// =============================================================================
// inputModel - single-line prompt
// =============================================================================

// inputModel is the bubbletea model for one line of user input.
type inputModel struct {
	prompt    string
	value     []rune
	cancelled bool
}

func newInputModel(prompt string) inputModel {
	return inputModel{prompt: prompt}
}

func (m inputModel) Init() tea.Cmd {
	return nil
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyEnter:
		return m, tea.Quit
	case tea.KeyCtrlC, tea.KeyEsc:
		m.cancelled = true
		return m, tea.Quit
	case tea.KeyBackspace:
		if len(m.value) > 0 {
			m.value = m.value[:len(m.value)-1]
		}
	case tea.KeyRunes, tea.KeySpace:
		m.value = append(m.value, key.Runes...)
	}
	return m, nil
}

func (m inputModel) View() string {
	return StyleHighlight.Render(m.prompt+" ") + string(m.value) + StyleDim.Render("▏")
}

// =============================================================================
// terminalPrompter
// =============================================================================

// terminalPrompter satisfies [memory.Prompter] with interactive line input.
// Point and integer prompts re-ask until the input parses.
type terminalPrompter struct{}

func newTerminalPrompter() *terminalPrompter {
	return &terminalPrompter{}
}

var _ memory.Prompter = (*terminalPrompter)(nil)

// ask runs one prompt round trip.
func (t *terminalPrompter) ask(ctx context.Context, prompt string) (string, error) {
	p := tea.NewProgram(newInputModel(prompt),
		tea.WithContext(ctx),
		tea.WithOutput(os.Stderr),
	)
	final, err := p.Run()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodePromptCancelled, err, "prompt aborted")
	}

	m := final.(inputModel)
	if m.cancelled {
		return "", errors.New(errors.ErrCodePromptCancelled, "prompt cancelled")
	}
	return strings.TrimSpace(string(m.value)), nil
}

// PromptPoint asks for a point as "x,y" or "x,y,z".
func (t *terminalPrompter) PromptPoint(ctx context.Context, prompt string) (geom.Point, error) {
	for {
		raw, err := t.ask(ctx, prompt)
		if err != nil {
			return geom.Point{}, err
		}
		p, err := parsePoint(raw)
		if err == nil {
			return p, nil
		}
		printWarning("expected a point like 10,20 or 10,20,5")
	}
}

// PromptString asks for a line of text.
func (t *terminalPrompter) PromptString(ctx context.Context, prompt string) (string, error) {
	return t.ask(ctx, prompt)
}

// PromptInt asks for an integer.
func (t *terminalPrompter) PromptInt(ctx context.Context, prompt string) (int, error) {
	for {
		raw, err := t.ask(ctx, prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(raw)
		if err == nil {
			return n, nil
		}
		printWarning("expected an integer")
	}
}
