package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/keepsake-app/keepsake/internal/i18n"
)

// loginModel is the PIN prompt sub-model.
type loginModel struct {
	input textinput.Model
	warn  string
}

func newLoginModel() loginModel {
	ti := textinput.New()
	ti.CharLimit = 4
	ti.EchoMode = textinput.EchoPassword
	ti.Focus()
	return loginModel{input: ti}
}

// Update collects the PIN. A non-empty string return means the user
// submitted; the parent performs the actual login.
func (l loginModel) Update(msg tea.Msg) (loginModel, tea.Cmd, string) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEnter {
		pin := l.input.Value()
		l.input.Reset()
		if !isPIN(pin) {
			l.warn = i18n.T("branch.login.prompt")
			return l, nil, ""
		}
		l.warn = ""
		return l, nil, pin
	}
	var cmd tea.Cmd
	l.input, cmd = l.input.Update(msg)
	return l, cmd, ""
}

func (l loginModel) View(s styleSet) string {
	var sb strings.Builder
	sb.WriteString(s.Title.Render(i18n.T("branch.login.prompt")) + "\n\n")
	sb.WriteString(l.input.View() + "\n")
	if l.warn != "" {
		sb.WriteString("\n" + s.Error.Render(l.warn) + "\n")
	}
	return sb.String()
}
