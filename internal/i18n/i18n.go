// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Bruno Moraes

package i18n

import (
	"embed"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

// DefaultLanguage is the language every lookup ultimately falls back to.
const DefaultLanguage = "en"

// supported lists the language codes shipped with the binary, in display
// order. DefaultLanguage must be first.
var supported = []string{"en", "pt"}

// Supported returns the language codes the viewer ships catalogues for.
func Supported() []string {
	out := make([]string, len(supported))
	copy(out, supported)
	return out
}

// IsSupported reports whether code (case-insensitive) has a catalogue.
func IsSupported(code string) bool {
	code = strings.ToLower(strings.TrimSpace(code))
	for _, s := range supported {
		if s == code {
			return true
		}
	}
	return false
}

// Normalize lowercases code and clamps it to the supported set, falling back
// to [DefaultLanguage] for anything unknown or empty.
func Normalize(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if IsSupported(code) {
		return code
	}
	return DefaultLanguage
}

// Translator resolves message keys to localized text for one language.
type Translator struct {
	lang      string
	localizer *i18n.Localizer
}

// New builds a Translator for lang. Unsupported codes are clamped to
// English; the constructor never fails on user input, only on a broken
// embedded catalogue.
func New(lang string) (*Translator, error) {
	lang = Normalize(lang)

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	for _, code := range supported {
		if _, err := bundle.LoadMessageFileFS(localeFS, fmt.Sprintf("locales/messages.%s.toml", code)); err != nil {
			return nil, fmt.Errorf("error loading embedded catalogue for %q: %w", code, err)
		}
	}

	return &Translator{
		lang:      lang,
		localizer: i18n.NewLocalizer(bundle, lang, DefaultLanguage),
	}, nil
}

// Language returns the resolved language code the Translator serves.
func (t *Translator) Language() string {
	return t.lang
}

// T resolves key without template data.
func (t *Translator) T(key string) string {
	return t.TData(key, nil)
}

// TData resolves key, interpolating data into the message template.
// Unknown keys come back verbatim.
func (t *Translator) TData(key string, data map[string]any) string {
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:      key,
		DefaultMessage: &i18n.Message{ID: key, Other: key},
		TemplateData:   data,
	})
	if err != nil || msg == "" {
		return key
	}
	return msg
}
