package tui

import (
	"reflect"
	"strings"
	"testing"

	"github.com/keepsake-app/keepsake/internal/i18n"
	"github.com/keepsake-app/keepsake/internal/route"
)

func TestRenderBoundaryRecoversFromPanic(t *testing.T) {
	m := authenticate(t, newTestModel(t))

	const broken = "BrokenScreen"
	screenViews[broken] = func(*Model, map[string]any) string {
		panic("screen blew up")
	}
	defer delete(screenViews, broken)

	stackBefore := m.root.Tabs().ActiveStack().Entries()
	tabBefore := m.root.Tabs().Active()

	out := renderScreen(&m, broken, nil)

	if !strings.Contains(out, i18n.T("screen.render_failure")) {
		t.Errorf("expected the fallback panel, got %q", out)
	}
	if !reflect.DeepEqual(stackBefore, m.root.Tabs().ActiveStack().Entries()) {
		t.Error("a panicking screen must not perturb the active stack")
	}
	if m.root.Tabs().Active() != tabBefore {
		t.Error("a panicking screen must not change the active tab")
	}
}

func TestRenderBoundaryAfterPanicBackStillWorks(t *testing.T) {
	m := authenticate(t, newTestModel(t))
	m = press(t, m, "3")
	m = press(t, m, "enter")

	const broken = "BrokenScreen"
	screenViews[broken] = func(*Model, map[string]any) string {
		panic("screen blew up")
	}
	defer delete(screenViews, broken)
	renderScreen(&m, broken, nil)

	// Router state survived the failure, so back navigation still works.
	m = press(t, m, "esc")
	if m.root.Tabs().Visible().Route != route.Moments {
		t.Errorf("visible = %s, want Moments after esc", m.root.Tabs().Visible().Route)
	}
}

func TestRenderUnknownRouteFallsBack(t *testing.T) {
	m := authenticate(t, newTestModel(t))

	out := renderScreen(&m, "NeverRegisteredScreen", nil)
	if out == "" {
		t.Error("a route without a renderer should still produce a panel")
	}
}
