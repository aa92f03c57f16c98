// Package profilecard wires the profile list and detail screens to a
// rendering backend. It handles configuration, logging, theming, strings,
// navigation and the image loader, then hands the screens to either the SDL
// backend or the terminal backend.
package profilecard

import (
	"fmt"
	"log/slog"

	"github.com/BrandonKowalski/profilecard/pkg/profilecard/config"
	"github.com/BrandonKowalski/profilecard/pkg/profilecard/i18n"
	"github.com/BrandonKowalski/profilecard/pkg/profilecard/internal/logging"
	"github.com/BrandonKowalski/profilecard/pkg/profilecard/platform/cannoli"
	"github.com/BrandonKowalski/profilecard/pkg/profilecard/profile"
	"github.com/BrandonKowalski/profilecard/pkg/profilecard/router"
	"github.com/BrandonKowalski/profilecard/pkg/profilecard/screens"
	"github.com/BrandonKowalski/profilecard/pkg/profilecard/theme"
)

// Options configures initialization.
type Options struct {
	Config     config.Config
	StartRoute string // Deep link ("list", "detail/3"); overrides config start_route
	Terminal   bool   // Run the terminal backend instead of SDL
}

// App holds everything shared by the backends.
type App struct {
	options Options
	logger  *slog.Logger
	theme   theme.Theme
	catalog *i18n.Catalog
	store   *profile.Store
	router  *router.Router
	session *screens.Session
}

// Init sets up logging and builds the store, strings, theme and navigator.
// Nothing graphical is touched until Run.
func Init(options Options) (*App, error) {
	cfg := options.Config

	if cfg.Log.Path != "" {
		logging.SetLogPath(cfg.Log.Path)
	}
	logging.SetRawLogLevel(cfg.Log.Level)
	logging.SetInternalLogLevel(logging.ParseLevel(cfg.Log.BackendLevel))
	logger := logging.GetLogger()

	th, err := buildTheme(cfg)
	if err != nil {
		return nil, err
	}

	catalog, err := i18n.New(cfg.Locale)
	if err != nil {
		return nil, fmt.Errorf("load strings: %w", err)
	}

	store, err := loadStore(cfg.SeedFile)
	if err != nil {
		return nil, err
	}

	raw := options.StartRoute
	if raw == "" {
		raw = cfg.StartRoute
	}
	start, err := router.ParseRoute(raw)
	if err != nil {
		return nil, err
	}

	r := router.New(logger)
	r.OnTransition(func(from, to router.Route) {
		logger.Info("Navigated", "from", from.String(), "to", to.String())
	})
	r.Start(start)

	logger.Info("Initialized",
		"profiles", store.Len(),
		"language", catalog.Language().String(),
		"route", start.String(),
		"terminal", options.Terminal,
	)

	return &App{
		options: options,
		logger:  logger,
		theme:   th,
		catalog: catalog,
		store:   store,
		router:  r,
		session: screens.NewSession(store, r, catalog, th),
	}, nil
}

func buildTheme(cfg config.Config) (theme.Theme, error) {
	th := cannoli.InitCannoliTheme(cfg.Theme.FontPath)
	th.BackgroundImagePath = cfg.Theme.BackgroundImage

	accent, err := cfg.AccentHex()
	if err != nil {
		return theme.Theme{}, err
	}
	if accent != 0 {
		th.AppBarColor = theme.Hex(accent)
	}
	return th, nil
}

func loadStore(seedFile string) (*profile.Store, error) {
	if seedFile == "" {
		return profile.Seed(), nil
	}
	store, err := profile.Load(seedFile)
	if err != nil {
		return nil, fmt.Errorf("load seed file: %w", err)
	}
	return store, nil
}

// Session exposes the navigation state the backends drive.
func (a *App) Session() *screens.Session {
	return a.session
}

// Router exposes the navigator.
func (a *App) Router() *router.Router {
	return a.router
}

// Close flushes and closes the log file.
func (a *App) Close() {
	logging.CloseLogger()
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return logging.GetLogger()
}
