// localize contains what the commands need to localize their messages.
// It is based on nicksnyder i18n library
package localize

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	yaml "gopkg.in/yaml.v2"
)

//go:embed locales/*.yaml
var localeFS embed.FS

const DefaultLocale = "en"

type Localizer interface {
	Localize(key string, locale string, data map[string]interface{}) (string, error)
}

type I18nLocalizer struct {
	bundle *i18n.Bundle
}

// NewI18nLocalizer loads the embedded message files, en.yaml has to be one of them.
func NewI18nLocalizer() (*I18nLocalizer, error) {
	files, err := fs.Glob(localeFS, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("Error initializing localization, %s", err)
	}
	if len(files) < 1 {
		return nil, fmt.Errorf("No locale files found")
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	for _, file := range files {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			return nil, fmt.Errorf("Unable to read translation file %s: %s", file, err)
		}
	}

	return &I18nLocalizer{bundle}, nil
}

// Localize returns the message for key in locale, falling back to english.
func (l *I18nLocalizer) Localize(key string, locale string, data map[string]interface{}) (string, error) {
	localizer := i18n.NewLocalizer(l.bundle, locale, DefaultLocale)
	msg, err := localizer.Localize(
		&i18n.LocalizeConfig{
			MessageID:    key,
			TemplateData: data,
		},
	)
	if msg == "" {
		msg = "<< Cannot find translation for item " + key + " >>"
	}
	return msg, err
}

// Message is Localize for callers that show the placeholder rather than fail.
func Message(l Localizer, key string, locale string, data map[string]interface{}) string {
	msg, _ := l.Localize(key, locale, data)
	return msg
}

// LocaleFromEnv picks the message locale the way gettext does: LC_ALL, then
// LC_MESSAGES, then LANG.
func LocaleFromEnv() string {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if value := os.Getenv(name); value != "" {
			return normalizeLocale(value)
		}
	}
	return DefaultLocale
}

// normalizeLocale turns a POSIX locale such as fr_FR.UTF-8 into a BCP 47 tag.
func normalizeLocale(value string) string {
	if i := strings.IndexAny(value, ".@"); i >= 0 {
		value = value[:i]
	}
	if value == "" || value == "C" || value == "POSIX" {
		return DefaultLocale
	}
	tag, err := language.Parse(strings.ReplaceAll(value, "_", "-"))
	if err != nil {
		return DefaultLocale
	}
	return tag.String()
}
