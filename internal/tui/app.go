// Package tui is the terminal shell over the navigation core. It mounts
// whatever the routers say is visible and turns key presses into typed
// navigation requests. All routing decisions live in internal/nav; the
// shell never touches a stack or overlay directly.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"github.com/keepsake-app/keepsake/internal/i18n"
	"github.com/keepsake-app/keepsake/internal/logging"
	"github.com/keepsake-app/keepsake/internal/nav"
	"github.com/keepsake-app/keepsake/internal/route"
	"github.com/keepsake-app/keepsake/internal/session"
)

type (
	sessionMsg       session.Snapshot
	sessionClosedMsg struct{}
	loginResultMsg   struct{ err error }
	onboardResultMsg struct{ err error }
)

// Model is the bubbletea model for the whole application.
type Model struct {
	root      *nav.Root
	resolver  *session.Resolver
	sessionCh <-chan session.Snapshot
	cancelSub func()

	theme    Theme
	styles   styleSet
	markdown *glamour.TermRenderer

	spinner    spinner.Model
	onboarding onboardingModel
	login      loginModel

	// cursor indexes the focused row of the visible list screen. It resets
	// whenever the visible screen changes.
	cursor int

	flash string

	width  int
	height int
}

// NewModel wires the shell over an already-built router tree and resolver.
func NewModel(root *nav.Root, resolver *session.Resolver, themeName string) Model {
	theme := LoadTheme(themeName)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = newStyles(theme).Title

	renderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)

	ch, cancel := resolver.Subscribe()
	return Model{
		root:       root,
		resolver:   resolver,
		sessionCh:  ch,
		cancelSub:  cancel,
		theme:      theme,
		styles:     newStyles(theme),
		markdown:   renderer,
		spinner:    sp,
		onboarding: newOnboardingModel(),
		login:      newLoginModel(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitForSession())
}

func (m *Model) waitForSession() tea.Cmd {
	ch := m.sessionCh
	return func() tea.Msg {
		snap, ok := <-ch
		if !ok {
			return sessionClosedMsg{}
		}
		return sessionMsg(snap)
	}
}

// dispatch sends a typed request through the root router. A rejected
// request is a caller bug; it is logged and briefly surfaced, never acted
// on.
func (m *Model) dispatch(target string, params map[string]any) {
	if err := m.root.Dispatch(route.Request{Target: target, Params: params}); err != nil {
		logging.L().Warn("navigation rejected", zap.String("route", target), zap.Error(err))
		m.flash = err.Error()
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case sessionMsg:
		m.root.Apply(session.Snapshot(msg))
		return m, m.waitForSession()

	case sessionClosedMsg:
		return m, nil

	case loginResultMsg:
		if msg.err != nil {
			m.login.warn = i18n.T("branch.login.wrong_pin")
		}
		return m, nil

	case onboardResultMsg:
		if msg.err != nil {
			logging.L().Error("onboarding failed", zap.Error(msg.err))
			m.flash = msg.err.Error()
		}
		return m, nil

	case spinner.TickMsg:
		if m.root.State() == nav.StateLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.cancelSub()
			return m, tea.Quit
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.root.State() {
	case nav.StateLoading:
		return m, nil

	case nav.StateOnboarding:
		var cmd tea.Cmd
		var done *onboardingResult
		m.onboarding, cmd, done = m.onboarding.Update(msg)
		if done != nil {
			res := *done
			resolver := m.resolver
			return m, func() tea.Msg {
				return onboardResultMsg{err: resolver.CompleteOnboarding(res.Name, res.PIN)}
			}
		}
		return m, cmd

	case nav.StateLogin:
		var cmd tea.Cmd
		var pin string
		m.login, cmd, pin = m.login.Update(msg)
		if pin != "" {
			resolver := m.resolver
			return m, func() tea.Msg {
				return loginResultMsg{err: resolver.Login(pin)}
			}
		}
		return m, cmd

	default:
		return m.handleAuthenticatedKey(msg)
	}
}

func (m Model) handleAuthenticatedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.flash = ""
	tabs := m.root.Tabs()
	before := m.visibleKey()

	// While an overlay is up only back/quit-level keys apply.
	if _, overlayUp := m.root.Overlays().Top(); overlayUp {
		switch msg.String() {
		case "esc":
			m.root.Back()
		case "ctrl+d":
			m.resolver.Logout()
		}
		return m, nil
	}

	switch key := msg.String(); key {
	case "ctrl+d":
		m.resolver.Logout()

	case "esc":
		m.root.Back()

	case "1", "2", "3", "4", "5":
		tabs.Select(nav.Tabs[int(key[0]-'1')])

	case "tab":
		next := (int(tabs.Active()) + 1) % len(nav.Tabs)
		tabs.Select(nav.Tabs[next])

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < m.visibleListLen()-1 {
			m.cursor++
		}

	case "enter":
		m.openFocusedRow()

	case "a":
		if actions := tabs.ActiveStack().Actions(); len(actions) > 0 {
			req := actions[0].Request()
			m.dispatch(req.Target, req.Params)
		}

	case "v":
		m.dispatch(route.VoiceCompanion, nil)

	case "l":
		params := map[string]any{}
		if tabs.Active() == nav.TabGames && m.cursor < len(gameRoutes) {
			params["gameType"] = strings.ToLower(gameRoutes[m.cursor])
		}
		m.dispatch(route.Leaderboard, params)
	}

	// The cursor belongs to the screen, not the session. It resets whenever
	// the visible screen changes.
	if m.visibleKey() != before {
		m.cursor = 0
	}
	return m, nil
}

// visibleListLen is the row count of the currently visible list screen.
func (m *Model) visibleListLen() int {
	switch m.root.Tabs().Visible().Route {
	case route.Home, route.Moments:
		return len(moments)
	case route.Games:
		return len(gameRoutes)
	case route.Family:
		return len(familyMembers)
	default:
		return 0
	}
}

// openFocusedRow issues the navigation request for the focused row.
func (m *Model) openFocusedRow() {
	visible := m.root.Tabs().Visible()
	switch visible.Route {
	case route.Home, route.Moments:
		if m.cursor < len(moments) {
			m.dispatch(route.MomentDetail, map[string]any{"momentId": moments[m.cursor].ID})
		}
	case route.Games:
		if m.cursor < len(gameRoutes) {
			m.dispatch(gameRoutes[m.cursor], nil)
		}
	case route.Family:
		if m.cursor < len(familyMembers) {
			m.dispatch(route.FamilyMemberDetail, map[string]any{"memberId": familyMembers[m.cursor].ID})
		}
	case route.MomentDetail:
		m.dispatch(route.PlayMoment, map[string]any{"momentId": visible.Params["momentId"]})
	}
}

// visibleKey identifies the visible screen for cursor bookkeeping.
func (m *Model) visibleKey() string {
	return m.root.Tabs().Active().String() + "/" + m.root.Tabs().Visible().Route
}

func (m Model) View() string {
	switch m.root.State() {
	case nav.StateLoading:
		return m.styles.Body.Render(m.spinner.View() + " " + i18n.T("branch.loading"))

	case nav.StateOnboarding:
		return m.styles.Body.Render(m.onboarding.View(m.styles))

	case nav.StateLogin:
		return m.styles.Body.Render(m.login.View(m.styles))

	default:
		return m.viewAuthenticated()
	}
}

func (m Model) viewAuthenticated() string {
	tabs := m.root.Tabs()

	var bar strings.Builder
	bar.WriteString(m.styles.Title.Render(i18n.T("app.title")) + "  ")
	for _, tab := range nav.Tabs {
		label := i18n.T("tab." + tab.String())
		if tab == tabs.Active() {
			bar.WriteString(m.styles.TabActive.Render(label))
		} else {
			bar.WriteString(m.styles.TabIdle.Render(label))
		}
	}
	for _, action := range tabs.ActiveStack().Actions() {
		bar.WriteString("  " + m.styles.Dim.Render(action.Icon+" "+i18n.T(action.LabelKey)+" (a)"))
	}
	header := m.styles.Header.Width(max(m.width, 0)).Render(bar.String())

	var content string
	if overlay, ok := m.root.Overlays().Top(); ok {
		content = m.styles.OverlayBox.Render(renderScreen(&m, overlay.Route, overlay.Params))
	} else {
		visible := tabs.Visible()
		content = renderScreen(&m, visible.Route, visible.Params)
	}

	footer := m.styles.Help.Render(i18n.T("help.keys"))
	if m.flash != "" {
		footer = m.styles.Error.Render(m.flash) + "\n" + footer
	}

	return header + "\n" + m.styles.Body.Render(content) + "\n" + footer
}
