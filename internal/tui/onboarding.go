package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/keepsake-app/keepsake/internal/i18n"
)

// onboardingStep is the wizard phase.
type onboardingStep int

const (
	stepWelcome onboardingStep = iota
	stepName
	stepPIN
)

// onboardingResult is produced when the wizard finishes.
type onboardingResult struct {
	Name string
	PIN  string
}

// onboardingModel is the first-run wizard sub-model. It owns its text
// input; the parent model only cares about the final result.
type onboardingModel struct {
	step  onboardingStep
	input textinput.Model
	name  string
	warn  string
}

func newOnboardingModel() onboardingModel {
	ti := textinput.New()
	ti.CharLimit = 40
	ti.Focus()
	return onboardingModel{step: stepWelcome, input: ti}
}

func isPIN(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Update advances the wizard. A non-nil result means onboarding finished
// this turn.
func (o onboardingModel) Update(msg tea.Msg) (onboardingModel, tea.Cmd, *onboardingResult) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		o.input, cmd = o.input.Update(msg)
		return o, cmd, nil
	}

	if key.Type == tea.KeyEnter {
		switch o.step {
		case stepWelcome:
			o.step = stepName
			return o, nil, nil
		case stepName:
			name := strings.TrimSpace(o.input.Value())
			if name == "" {
				o.warn = i18n.T("branch.onboarding.name")
				return o, nil, nil
			}
			o.name = name
			o.warn = ""
			o.input.Reset()
			o.input.CharLimit = 4
			o.input.EchoMode = textinput.EchoPassword
			o.step = stepPIN
			return o, nil, nil
		case stepPIN:
			pin := o.input.Value()
			if !isPIN(pin) {
				o.warn = i18n.T("branch.onboarding.pin")
				return o, nil, nil
			}
			return o, nil, &onboardingResult{Name: o.name, PIN: pin}
		}
	}

	var cmd tea.Cmd
	o.input, cmd = o.input.Update(msg)
	return o, cmd, nil
}

func (o onboardingModel) View(s styleSet) string {
	var sb strings.Builder
	sb.WriteString(s.Title.Render(i18n.T("branch.onboarding.welcome")) + "\n\n")
	switch o.step {
	case stepWelcome:
		sb.WriteString(s.Dim.Render("Press enter to begin.") + "\n")
	case stepName:
		sb.WriteString(i18n.T("branch.onboarding.name") + "\n\n")
		sb.WriteString(o.input.View() + "\n")
	case stepPIN:
		sb.WriteString(i18n.T("branch.onboarding.pin") + "\n\n")
		sb.WriteString(o.input.View() + "\n")
	}
	if o.warn != "" {
		sb.WriteString("\n" + s.Error.Render(o.warn) + "\n")
	}
	return sb.String()
}
