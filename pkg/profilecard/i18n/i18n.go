// Package i18n serves the localized UI strings. English is the bundle default;
// German and Spanish ship alongside it. Missing messages fall back to English.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var locales embed.FS

// Message ids.
const (
	ListTitle     = "ListTitle"
	DetailTitle   = "DetailTitle"
	StatusOnline  = "StatusOnline"
	StatusOffline = "StatusOffline"
	HelpSelect    = "HelpSelect"
	HelpBack      = "HelpBack"
	HelpMove      = "HelpMove"
	HelpQuit      = "HelpQuit"
)

var supported = []language.Tag{
	language.English,
	language.German,
	language.Spanish,
}

var matcher = language.NewMatcher(supported)

// Catalog resolves message ids for one language.
type Catalog struct {
	tag       language.Tag
	localizer *goi18n.Localizer
}

// New builds a catalog for a locale string such as "de", "es-MX" or a POSIX
// value like "de_DE.UTF-8". Unknown or empty locales resolve to English.
func New(locale string) (*Catalog, error) {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(locales, "locales/*.toml")
	if err != nil {
		return nil, fmt.Errorf("list locales: %w", err)
	}
	for _, file := range files {
		if _, err := bundle.LoadMessageFileFS(locales, file); err != nil {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
	}

	tag := Match(locale)
	return &Catalog{
		tag:       tag,
		localizer: goi18n.NewLocalizer(bundle, tag.String()),
	}, nil
}

// Match maps a locale string onto the closest supported language.
func Match(locale string) language.Tag {
	normalized := normalize(locale)
	if normalized == "" {
		return language.English
	}

	requested, err := language.Parse(normalized)
	if err != nil {
		return language.English
	}

	_, index, confidence := matcher.Match(requested)
	if confidence == language.No {
		return language.English
	}
	return supported[index]
}

// normalize turns POSIX locale values into BCP 47: "de_DE.UTF-8@euro" -> "de-DE".
func normalize(locale string) string {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	if locale == "C" || locale == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(locale, "_", "-")
}

// Language returns the resolved language.
func (c *Catalog) Language() language.Tag {
	return c.tag
}

// T returns the message for id, or the id itself when nothing matches.
func (c *Catalog) T(id string) string {
	msg, err := c.localizer.Localize(&goi18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return id
	}
	return msg
}
