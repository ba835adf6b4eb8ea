package tui

import (
	"go.uber.org/zap"

	"github.com/keepsake-app/keepsake/internal/i18n"
	"github.com/keepsake-app/keepsake/internal/logging"
)

// renderScreen runs a leaf screen's renderer behind a recover boundary.
// A panicking screen produces a fallback panel; the routers are never
// touched, so back navigation and retry keep working.
func renderScreen(m *Model, routeName string, params map[string]any) (out string) {
	defer func() {
		if r := recover(); r != nil {
			logging.L().Error("screen render panicked",
				zap.String("route", routeName),
				zap.Any("panic", r))
			out = m.styles.Error.Render(i18n.T("screen.render_failure"))
		}
	}()

	view, ok := screenViews[routeName]
	if !ok {
		// Registered route without a renderer is a wiring gap, not a crash.
		return m.styles.Dim.Render("Nothing to show for " + routeName + ".")
	}
	return view(m, params)
}
