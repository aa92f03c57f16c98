package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/profilecard/pkg/profilecard/constants"
	"github.com/BrandonKowalski/profilecard/pkg/profilecard/i18n"
)

// clearEnv blanks every variable Load reads so the host environment does not leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		constants.EnvironmentEnvVar,
		constants.ConfigPathEnvVar,
		constants.WindowWidthEnvVar,
		constants.WindowHeightEnvVar,
		constants.LogLevelEnvVar,
		constants.LocaleEnvVar,
		"LANG",
		constants.BackgroundPathEnvVar,
	} {
		t.Setenv(name, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "list", cfg.StartRoute)
	assert.Equal(t, 32, cfg.Images.CacheSize)
	assert.Equal(t, 300*time.Millisecond, cfg.Images.Crossfade.Duration)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)

	path := writeConfig(t, `
locale = "de"
seed_file = "/tmp/people.toml"
start_route = "detail/3"

[window]
title = "People"
width = 640
height = 480
borderless = true

[log]
path = "/tmp/profilecard.log"
level = "debug"

[theme]
accent = "#336699"

[images]
cache_size = 8
timeout = "2s"
crossfade = "150ms"

[input]
evdev_device = "/dev/input/event3"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "de", cfg.Locale)
	assert.Equal(t, "/tmp/people.toml", cfg.SeedFile)
	assert.Equal(t, "detail/3", cfg.StartRoute)
	assert.Equal(t, Window{Title: "People", Width: 640, Height: 480, Borderless: true, ShowBackground: true}, cfg.Window)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "error", cfg.Log.BackendLevel, "unset keys keep their defaults")
	assert.Equal(t, 8, cfg.Images.CacheSize)
	assert.Equal(t, 2*time.Second, cfg.Images.Timeout.Duration)
	assert.Equal(t, 150*time.Millisecond, cfg.Images.Crossfade.Duration)
	assert.Equal(t, "/dev/input/event3", cfg.Input.EvdevDevice)

	accent, err := cfg.AccentHex()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x336699), accent)
}

func TestLoad_PathFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv(constants.ConfigPathEnvVar, writeConfig(t, `locale = "es"`))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "es", cfg.Locale)
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	missing := filepath.Join(t.TempDir(), "nope.toml")

	_, err := Load(missing)
	require.Error(t, err, "an explicit path must exist")

	t.Setenv(constants.ConfigPathEnvVar, missing)
	cfg, err := Load("")
	require.NoError(t, err, "a stale environment path falls back to defaults")
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"syntax":         `locale = `,
		"bad duration":   "[images]\ntimeout = \"soon\"",
		"negative cache": "[images]\ncache_size = -1",
		"bad accent":     "[theme]\naccent = \"#12\"",
		"non-hex accent": "[theme]\naccent = \"zzzzzz\"",
		"negative width": "[window]\nwidth = -5",
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			_, err := Load(writeConfig(t, body))
			require.Error(t, err)
		})
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(constants.LogLevelEnvVar, "warn")
	t.Setenv(constants.LocaleEnvVar, "de_DE.UTF-8")
	t.Setenv(constants.BackgroundPathEnvVar, "/tmp/bg.png")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "de_DE.UTF-8", cfg.Locale)
	assert.Equal(t, "/tmp/bg.png", cfg.Theme.BackgroundImage)
	assert.Zero(t, cfg.Window.Width, "window size is only forced in dev mode")
}

func TestLoad_LocaleEnvironmentBeatsFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `locale = "es"`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "es", cfg.Locale)

	t.Setenv(constants.LocaleEnvVar, "de")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "de", cfg.Locale)
}

func TestLoad_HostLangKeepsEnglish(t *testing.T) {
	clearEnv(t)
	t.Setenv("LANG", "de_DE.UTF-8")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Empty(t, cfg.Locale)

	catalog, err := i18n.New(cfg.Locale)
	require.NoError(t, err)
	assert.Equal(t, "Messaging Application Users", catalog.T(i18n.ListTitle))
	assert.Equal(t, "User Detail", catalog.T(i18n.DetailTitle))
	assert.Equal(t, "Active Now", catalog.T(i18n.StatusOnline))
	assert.Equal(t, "Offline", catalog.T(i18n.StatusOffline))
}

func TestLoad_DevMode(t *testing.T) {
	clearEnv(t)
	t.Setenv(constants.EnvironmentEnvVar, constants.Development)

	cfg, err := Load(writeConfig(t, "[window]\nborderless = true\nfullscreen = true"))
	require.NoError(t, err)
	assert.False(t, cfg.Window.Borderless)
	assert.False(t, cfg.Window.Fullscreen)
	assert.Equal(t, int32(1024), cfg.Window.Width)
	assert.Equal(t, int32(768), cfg.Window.Height)

	t.Setenv(constants.WindowWidthEnvVar, "800")
	t.Setenv(constants.WindowHeightEnvVar, "600")
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, int32(800), cfg.Window.Width)
	assert.Equal(t, int32(600), cfg.Window.Height)

	t.Setenv(constants.WindowWidthEnvVar, "wide")
	_, err = Load("")
	require.Error(t, err)
}

func TestDuration_RoundTrip(t *testing.T) {
	t.Parallel()

	var d Duration
	require.NoError(t, d.UnmarshalText([]byte("1m30s")))
	assert.Equal(t, 90*time.Second, d.Duration)

	text, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "1m30s", string(text))
}
