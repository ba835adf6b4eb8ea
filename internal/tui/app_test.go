package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/keepsake-app/keepsake/internal/i18n"
	"github.com/keepsake-app/keepsake/internal/nav"
	"github.com/keepsake-app/keepsake/internal/route"
	"github.com/keepsake-app/keepsake/internal/session"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	registry, err := route.NewTableRegistry()
	if err != nil {
		t.Fatalf("route table: %v", err)
	}
	root, err := nav.NewRoot(registry, nil)
	if err != nil {
		t.Fatalf("router: %v", err)
	}
	dir := t.TempDir()
	tokens, err := session.NewTokenService(dir)
	if err != nil {
		t.Fatalf("token service: %v", err)
	}
	resolver := session.NewResolver(session.NewStore(dir), tokens, nil)
	m := NewModel(root, resolver, "warm")
	t.Cleanup(m.cancelSub)
	return m
}

func authenticate(t *testing.T, m Model) Model {
	t.Helper()
	snap := session.Snapshot{
		Onboarded: true,
		User:      &session.User{ID: uuid.New(), Name: "Rose"},
	}
	updated, _ := m.Update(sessionMsg(snap))
	out := updated.(Model)
	if out.root.State() != nav.StateAuthenticated {
		t.Fatalf("state = %s, want authenticated", out.root.State())
	}
	return out
}

func press(t *testing.T, m Model, key string) Model {
	t.Helper()
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+d":
		msg = tea.KeyMsg{Type: tea.KeyCtrlD}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func TestStartsInLoadingBranch(t *testing.T) {
	m := newTestModel(t)
	if m.root.State() != nav.StateLoading {
		t.Errorf("state = %s, want loading", m.root.State())
	}
	if m.View() == "" {
		t.Error("loading branch should still render something")
	}
}

func TestSessionSnapshotSwitchesBranch(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(sessionMsg(session.Snapshot{}))
	m = updated.(Model)
	if m.root.State() != nav.StateOnboarding {
		t.Errorf("state = %s, want onboarding", m.root.State())
	}

	updated, _ = m.Update(sessionMsg(session.Snapshot{Onboarded: true}))
	m = updated.(Model)
	if m.root.State() != nav.StateLogin {
		t.Errorf("state = %s, want login", m.root.State())
	}
}

func TestDigitKeysSwitchTabs(t *testing.T) {
	m := authenticate(t, newTestModel(t))

	m = press(t, m, "3")
	if m.root.Tabs().Active() != nav.TabMoments {
		t.Errorf("active tab = %s, want moments", m.root.Tabs().Active())
	}

	m = press(t, m, "tab")
	if m.root.Tabs().Active() != nav.TabFamily {
		t.Errorf("active tab = %s, want family", m.root.Tabs().Active())
	}
}

func TestEnterOpensFocusedMoment(t *testing.T) {
	m := authenticate(t, newTestModel(t))

	m = press(t, m, "3")
	m = press(t, m, "down")
	m = press(t, m, "enter")

	visible := m.root.Tabs().Visible()
	if visible.Route != route.MomentDetail {
		t.Fatalf("visible = %s, want MomentDetail", visible.Route)
	}
	if visible.Params["momentId"] != moments[1].ID {
		t.Errorf("momentId = %v, want %s", visible.Params["momentId"], moments[1].ID)
	}

	m = press(t, m, "esc")
	if m.root.Tabs().Visible().Route != route.Moments {
		t.Error("esc should pop back to the moments list")
	}
}

func TestEnterOnGamesMountsOverlay(t *testing.T) {
	m := authenticate(t, newTestModel(t))

	m = press(t, m, "2")
	m = press(t, m, "enter")

	top, ok := m.root.Overlays().Top()
	if !ok {
		t.Fatal("expected a mounted game overlay")
	}
	if top.Route != gameRoutes[0] {
		t.Errorf("overlay = %s, want %s", top.Route, gameRoutes[0])
	}
	if m.root.Tabs().ActiveStack().Depth() != 1 {
		t.Error("game overlays must not touch the games stack")
	}

	m = press(t, m, "esc")
	if _, ok := m.root.Overlays().Top(); ok {
		t.Error("esc should dismiss the overlay")
	}
}

func TestCursorResetsOnScreenChange(t *testing.T) {
	m := authenticate(t, newTestModel(t))

	m = press(t, m, "down")
	if m.cursor != 1 {
		t.Fatalf("cursor = %d, want 1", m.cursor)
	}

	m = press(t, m, "4")
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0 after switching screens", m.cursor)
	}
}

func TestCursorStaysInBounds(t *testing.T) {
	m := authenticate(t, newTestModel(t))

	m = press(t, m, "up")
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0 at top", m.cursor)
	}
	for i := 0; i < 20; i++ {
		m = press(t, m, "down")
	}
	if m.cursor != len(moments)-1 {
		t.Errorf("cursor = %d, want %d at bottom", m.cursor, len(moments)-1)
	}
}

func TestHeaderActionKey(t *testing.T) {
	m := authenticate(t, newTestModel(t))

	m = press(t, m, "3")
	m = press(t, m, "a")

	if !m.root.Overlays().IsMounted(route.AddMoment) {
		t.Error("expected the moments header action to present AddMoment")
	}
}

func TestVoiceAndLeaderboardShortcuts(t *testing.T) {
	m := authenticate(t, newTestModel(t))

	m = press(t, m, "v")
	if !m.root.Overlays().IsMounted(route.VoiceCompanion) {
		t.Error("v should present the voice companion")
	}
	m = press(t, m, "esc")

	m = press(t, m, "l")
	if !m.root.Overlays().IsMounted(route.Leaderboard) {
		t.Error("l should present the leaderboard")
	}
}

func TestLogoutTearsDownTree(t *testing.T) {
	m := authenticate(t, newTestModel(t))

	m = press(t, m, "3")
	m = press(t, m, "enter")
	m = press(t, m, "v")

	// The resolver is not logged in here, so drive the snapshot directly the
	// way the session pump would.
	updated, _ := m.Update(sessionMsg(session.Snapshot{Onboarded: true}))
	m = updated.(Model)

	if m.root.State() != nav.StateLogin {
		t.Fatalf("state = %s, want login", m.root.State())
	}

	m = authenticate(t, m)
	if m.root.Tabs().Active() != nav.TabHome {
		t.Error("a fresh login must start on the home tab")
	}
	if _, ok := m.root.Overlays().Top(); ok {
		t.Error("no overlay may survive logout")
	}
}

func TestAuthenticatedViewShowsTabs(t *testing.T) {
	m := authenticate(t, newTestModel(t))
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = updated.(Model)

	view := m.View()
	for _, tab := range nav.Tabs {
		if !strings.Contains(view, i18n.T("tab."+tab.String())) {
			t.Errorf("view is missing the %s tab label", tab)
		}
	}
}

func TestRejectedDispatchKeepsRunning(t *testing.T) {
	m := authenticate(t, newTestModel(t))
	before := m.root.Tabs().Visible()

	m.dispatch(route.MomentDetail, nil)

	if m.root.Tabs().Visible().Route != before.Route {
		t.Error("a rejected dispatch must not move the router")
	}
	if m.flash == "" {
		t.Error("a rejected dispatch should surface a message")
	}
}
