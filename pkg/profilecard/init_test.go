package profilecard

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/profilecard/pkg/profilecard/config"
	"github.com/BrandonKowalski/profilecard/pkg/profilecard/profile"
	"github.com/BrandonKowalski/profilecard/pkg/profilecard/router"
	"github.com/BrandonKowalski/profilecard/pkg/profilecard/theme"
)

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Log.Level = "error"
	return cfg
}

func TestInit_Defaults(t *testing.T) {
	app, err := Init(Options{Config: testConfig()})
	require.NoError(t, err)
	t.Cleanup(app.Close)

	assert.Equal(t, router.List(), app.Router().Current())
	assert.Equal(t, profile.Seed().Len(), app.store.Len())
	assert.Equal(t, "en", app.catalog.Language().String())

	tree, err := app.Session().Render()
	require.NoError(t, err)
	assert.Contains(t, tree.Texts(), "Messaging Application Users")
}

func TestInit_StartRoute(t *testing.T) {
	cfg := testConfig()
	cfg.StartRoute = "detail/1"

	app, err := Init(Options{Config: cfg})
	require.NoError(t, err)
	assert.Equal(t, router.Detail(1), app.Router().Current())
	assert.True(t, app.Router().CanGoBack())

	app, err = Init(Options{Config: cfg, StartRoute: "detail/2"})
	require.NoError(t, err)
	assert.Equal(t, router.Detail(2), app.Router().Current(), "flag beats config")

	_, err = Init(Options{Config: cfg, StartRoute: "settings"})
	require.ErrorIs(t, err, router.ErrInvalidRoute)
}

func TestInit_SeedFileAndLocale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "people.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[profile]]
id = 7
name = "Zed"
picture_url = ""
online = false
`), 0o644))

	cfg := testConfig()
	cfg.SeedFile = path
	cfg.Locale = "de_DE.UTF-8"

	app, err := Init(Options{Config: cfg, StartRoute: "detail/7"})
	require.NoError(t, err)

	tree, err := app.Session().Render()
	require.NoError(t, err)
	assert.Contains(t, tree.Texts(), "Zed")
	assert.Equal(t, "de", app.catalog.Language().String())

	cfg.SeedFile = filepath.Join(t.TempDir(), "missing.toml")
	_, err = Init(Options{Config: cfg})
	require.Error(t, err)
}

func TestInit_MissingProfileFailsOnRender(t *testing.T) {
	app, err := Init(Options{Config: testConfig(), StartRoute: "detail/99"})
	require.NoError(t, err)

	_, err = app.Session().Render()
	require.ErrorIs(t, err, profile.ErrNotFound)
}

func TestBuildTheme(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Theme.Accent = "#123456"
	cfg.Theme.BackgroundImage = "/tmp/bg.png"
	cfg.Theme.FontPath = "/tmp/font.ttf"

	th, err := buildTheme(cfg)
	require.NoError(t, err)
	assert.Equal(t, theme.Hex(0x123456), th.AppBarColor)
	assert.Equal(t, "/tmp/bg.png", th.BackgroundImagePath)
	assert.Equal(t, "/tmp/font.ttf", th.FontPath)

	cfg.Theme.Accent = "nope"
	_, err = buildTheme(cfg)
	require.Error(t, err)
}
