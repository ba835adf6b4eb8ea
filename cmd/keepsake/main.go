package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/keepsake-app/keepsake/internal/config"
	"github.com/keepsake-app/keepsake/internal/i18n"
	"github.com/keepsake-app/keepsake/internal/logging"
	"github.com/keepsake-app/keepsake/internal/nav"
	"github.com/keepsake-app/keepsake/internal/route"
	"github.com/keepsake-app/keepsake/internal/session"
	"github.com/keepsake-app/keepsake/internal/tui"
)

var (
	version = "0.3.0"
	commit  = "dev"
)

func main() {
	localeFlag := flag.String("locale", "", "Interface language (en, es)")
	themeFlag := flag.String("theme", "", "Color theme (warm, calm)")
	dataDirFlag := flag.String("data-dir", "", "Override the data directory")
	versionFlag := flag.Bool("version", false, "Print version")
	helpFlag := flag.Bool("help", false, "Show help")
	flag.BoolVar(helpFlag, "h", false, "Show help")

	flag.Usage = showHelp
	flag.Parse()

	if *helpFlag {
		showHelp()
		os.Exit(0)
	}

	if *versionFlag {
		fmt.Printf("keepsake %s (%s)\n", version, commit)
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fatal("config error: %s", err)
	}
	if *localeFlag != "" {
		cfg.Locale = *localeFlag
	}
	if *themeFlag != "" {
		cfg.Theme = *themeFlag
	}
	if *dataDirFlag != "" {
		cfg.DataDir = *dataDirFlag
		cfg.Logging.File = filepath.Join(cfg.DataDir, "keepsake.log")
	}

	args := flag.Args()
	if len(args) > 0 {
		switch args[0] {
		case "routes":
			cmdRoutes()
			return
		case "reset":
			cmdReset(cfg)
			return
		case "init-config":
			cmdInitConfig()
			return
		case "help":
			showHelp()
			return
		default:
			fatal("unknown command: %s", args[0])
		}
	}

	if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
		fatal("data dir: %s", err)
	}

	if _, err := logging.Init(cfg.Logging); err != nil {
		fatal("logging error: %s", err)
	}
	defer logging.Sync()

	i18n.Init(cfg.Locale)

	registry, err := route.NewTableRegistry()
	if err != nil {
		// A broken route table is a programming error, not a runtime
		// condition. Refuse to start.
		fatal("route table: %s", err)
	}

	store := session.NewStore(cfg.DataDir)
	tokens, err := session.NewTokenService(cfg.DataDir)
	if err != nil {
		fatal("token service: %s", err)
	}
	resolver := session.NewResolver(store, tokens, logging.L())

	root, err := nav.NewRoot(registry, logging.L())
	if err != nil {
		fatal("router: %s", err)
	}

	resolver.Start()

	m := tui.NewModel(root, resolver, cfg.Theme)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logging.L().Error("tui exited", zap.Error(err))
		fatal("tui error: %s", err)
	}
}

func cmdRoutes() {
	registry, err := route.NewTableRegistry()
	if err != nil {
		fatal("route table: %s", err)
	}
	for _, name := range registry.Names() {
		def, _ := registry.Lookup(name)
		fmt.Printf("  %-22s %s\n", name, def.Presentation)
	}
}

// cmdReset removes the stored profile and device token, returning the app
// to first-run state.
func cmdReset(cfg *config.Config) {
	for _, name := range []string{"profile.json", "session.jwt", "device.key"} {
		path := filepath.Join(cfg.DataDir, name)
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			fatal("remove %s: %s", path, err)
		}
	}
	fmt.Println("reset complete")
}

func cmdInitConfig() {
	path, err := config.WriteDefault()
	if err != nil {
		fatal("write config: %s", err)
	}
	fmt.Printf("wrote %s\n", path)
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}

func showHelp() {
	fmt.Println(`keepsake - a memory companion for your terminal

USAGE:
  keepsake [flags]            Start the app
  keepsake <command>          Run a command

COMMANDS:
  routes                      List registered routes
  reset                       Remove local profile and device token
  init-config                 Write a default config file
  help                        Show this help

FLAGS:
  --locale <code>             Interface language (en, es)
  --theme <name>              Color theme (warm, calm)
  --data-dir <path>           Override the data directory
  --version                   Show version
  --help, -h                  Show this help

KEYBOARD SHORTCUTS:
  1-5 / Tab                   Switch tabs
  Up/Down                     Move selection
  Enter                       Open the selected item
  Esc                         Go back / dismiss
  a                           Tab action (add, leaderboard)
  v                           Voice companion
  l                           Leaderboard
  Ctrl+D                      Log out
  Ctrl+C                      Quit`)
}
