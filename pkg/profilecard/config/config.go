// Package config loads the TOML configuration file and applies environment
// overrides on top of it.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/profilecard/pkg/profilecard/constants"
)

// Duration is a time.Duration that reads from TOML strings such as "300ms".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

type Window struct {
	Title          string `toml:"title"`
	Width          int32  `toml:"width"`  // 0 uses the display mode
	Height         int32  `toml:"height"` // 0 uses the display mode
	Borderless     bool   `toml:"borderless"`
	Fullscreen     bool   `toml:"fullscreen"`
	ShowBackground bool   `toml:"show_background"`
}

type Log struct {
	Path         string `toml:"path"`
	Level        string `toml:"level"`
	BackendLevel string `toml:"backend_level"`
}

type Theme struct {
	FontPath        string `toml:"font_path"`
	Accent          string `toml:"accent"` // hex, "#8BC34A" or "8BC34A"
	BackgroundImage string `toml:"background_image"`
}

type Images struct {
	CacheSize int      `toml:"cache_size"`
	Timeout   Duration `toml:"timeout"`
	Crossfade Duration `toml:"crossfade"`
}

type Input struct {
	EvdevDevice string `toml:"evdev_device"`
}

// Config is the whole file.
type Config struct {
	Locale     string `toml:"locale"`
	SeedFile   string `toml:"seed_file"`
	StartRoute string `toml:"start_route"`

	Window Window `toml:"window"`
	Log    Log    `toml:"log"`
	Theme  Theme  `toml:"theme"`
	Images Images `toml:"images"`
	Input  Input  `toml:"input"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		StartRoute: "list",
		Window: Window{
			Title:          "Profile Cards",
			ShowBackground: true,
		},
		Log: Log{
			Level:        "info",
			BackendLevel: "error",
		},
		Images: Images{
			CacheSize: 32,
			Timeout:   Duration{15 * time.Second},
			Crossfade: Duration{300 * time.Millisecond},
		},
	}
}

// Load reads path over the defaults. An empty path falls back to the
// PROFILECARD_CONFIG environment variable; if that is empty too, or names a
// file that does not exist, the defaults are used. Environment overrides are
// applied last.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = os.Getenv(constants.ConfigPathEnvVar)
	}

	if path != "" {
		_, err := toml.DecodeFile(path, &cfg)
		switch {
		case err == nil:
		case errors.Is(err, fs.ErrNotExist) && !explicit:
		default:
			return Config{}, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(constants.LogLevelEnvVar); v != "" {
		c.Log.Level = v
	}

	if v := os.Getenv(constants.LocaleEnvVar); v != "" {
		c.Locale = v
	}

	if v := os.Getenv(constants.BackgroundPathEnvVar); v != "" {
		c.Theme.BackgroundImage = v
	}

	if !constants.IsDevMode() {
		return nil
	}

	c.Window.Borderless = false
	c.Window.Fullscreen = false
	if c.Window.Width == 0 {
		c.Window.Width = 1024
	}
	if c.Window.Height == 0 {
		c.Window.Height = 768
	}

	for name, dst := range map[string]*int32{
		constants.WindowWidthEnvVar:  &c.Window.Width,
		constants.WindowHeightEnvVar: &c.Window.Height,
	} {
		v := os.Getenv(name)
		if v == "" {
			continue
		}
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid %s %q", name, v)
		}
		*dst = int32(n)
	}

	return nil
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	if c.Window.Width < 0 || c.Window.Height < 0 {
		return fmt.Errorf("window size must not be negative: %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Images.CacheSize < 0 {
		return fmt.Errorf("images.cache_size must not be negative: %d", c.Images.CacheSize)
	}
	if c.Images.Timeout.Duration < 0 || c.Images.Crossfade.Duration < 0 {
		return errors.New("image durations must not be negative")
	}
	if c.Theme.Accent != "" {
		if _, err := c.AccentHex(); err != nil {
			return err
		}
	}
	return nil
}

// AccentHex parses theme.accent. It returns 0 when the accent is unset.
func (c Config) AccentHex() (uint32, error) {
	s := strings.TrimPrefix(strings.TrimSpace(c.Theme.Accent), "#")
	if s == "" {
		return 0, nil
	}
	if len(s) != 6 {
		return 0, fmt.Errorf("theme.accent %q: want six hex digits", c.Theme.Accent)
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("theme.accent %q: %w", c.Theme.Accent, err)
	}
	return uint32(n), nil
}
