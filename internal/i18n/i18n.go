// Package i18n provides the t(key) contract for user-facing strings.
// Routers consume it for header titles and tab labels only; routing logic
// never depends on a localized value.
package i18n

import (
	"embed"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

var localizer *goi18n.Localizer

func init() {
	// Default to English until Init picks the configured locale.
	Init("en")
}

// Init selects the active locale. English is always the fallback.
func Init(locale string) {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	for _, file := range []string{"locales/en.toml", "locales/es.toml"} {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			panic("i18n: bad embedded locale file " + file + ": " + err.Error())
		}
	}
	localizer = goi18n.NewLocalizer(bundle, locale, "en")
}

// T returns the localized string for a message key. Unknown keys return the
// key itself so a missing translation is visible, not fatal.
func T(key string) string {
	msg, err := localizer.Localize(&goi18n.LocalizeConfig{MessageID: key})
	if err != nil {
		return key
	}
	return msg
}
