// Package translate loads per-language message files from a directory tree
// and renders messages by key, falling back to a default language when a
// language or a message is missing.
//
// Rendering never fails: when no message can be produced the caller gets
// TranslationFailed and the cause is logged.
package translate

import (
	"errors"
	"sort"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	i18ntemplate "github.com/nicksnyder/go-i18n/v2/i18n/template"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
)

// TranslationFailed is returned in place of a message that could not be
// found or rendered.
const TranslationFailed = "An error has occurred while trying to translate the message"

// LanguageKey identifies a message. Each feature usually declares its own
// key type, e.g.
//
//	type CommandKey int
//
//	func (k CommandKey) Key() string { return commandKeys[k] }
type LanguageKey interface {
	Key() string
}

// Key is a LanguageKey for plain message ids.
type Key string

func (k Key) Key() string {
	return string(k)
}

// Translator holds the bundles of every loaded language. It is immutable
// once built and safe for concurrent use.
type Translator struct {
	translations    map[string]*LanguageBundle
	defaultLanguage string
	logger          zerolog.Logger
	metrics         *metrics
	matcher         language.Matcher
	matchOrder      []string
}

// DefaultLanguage returns the language used when a translation is missing.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLanguage
}

// Languages returns the names of the loaded languages, sorted.
func (t *Translator) Languages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// Bundle returns the bundle loaded for language.
func (t *Translator) Bundle(language string) (*LanguageBundle, bool) {
	b, ok := t.translations[language]
	return b, ok
}

func (t *Translator) defaultBundle() *LanguageBundle {
	return t.translations[t.defaultLanguage]
}

// GetMessage looks key up in language. An unknown language is replaced by
// the default language; a message missing from a known language is looked
// up in the default language.
//
// The returned bundle is always the one selected for language, even when the
// message itself came from the default language. The message may be nil.
func (t *Translator) GetMessage(language string, key LanguageKey) (*i18n.Message, *LanguageBundle) {
	id := key.Key()

	bundle, ok := t.translations[language]
	if !ok {
		t.logger.Debug().Str("language", language).Str("default", t.defaultLanguage).
			Msg("Attempted to translate to unknown language, falling back to default")
		t.metrics.fallback(reasonUnknownLanguage)
		bundle = t.defaultBundle()
		language = t.defaultLanguage
	}

	msg := bundle.Message(id)
	if msg == nil && language != t.defaultLanguage {
		msg = t.defaultBundle().Message(id)
		if msg != nil {
			t.logger.Debug().Str("language", language).Str("key", id).
				Msg("Message missing from language, using default language")
			t.metrics.fallback(reasonMissingKey)
		}
	}

	return msg, bundle
}

// Translate starts a translation of key that arguments can be added to.
func (t *Translator) Translate(language string, key LanguageKey) *MessageTranslator {
	msg, bundle := t.GetMessage(language, key)
	return &MessageTranslator{
		translator: t,
		key:        key,
		bundle:     bundle,
		message:    msg,
	}
}

// TranslateWithoutArgs renders key with no arguments.
func (t *Translator) TranslateWithoutArgs(language string, key LanguageKey) string {
	msg, bundle := t.GetMessage(language, key)
	if msg == nil {
		t.logger.Error().Str("key", key.Key()).Msg("Tried to translate non existing language key")
		t.metrics.failure(reasonNotFound)
		return TranslationFailed
	}

	translated, err := bundle.format(msg, nil, nil)
	if err != nil {
		t.logger.Error().Err(err).Str("key", key.Key()).
			Msg("Translation failure when translating without arguments")
		t.metrics.failure(reasonFormat)
		return TranslationFailed
	}
	return translated
}

// format renders msg with the bundle's plural rules and template functions.
// msg does not have to belong to b. A placeholder without a matching
// argument is an error.
func (b *LanguageBundle) format(msg *i18n.Message, args map[string]any, count any) (string, error) {
	localizer := i18n.NewLocalizer(b.bundle, b.pluralTag.String())
	translated, err := localizer.Localize(&i18n.LocalizeConfig{
		DefaultMessage: msg,
		TemplateData:   args,
		PluralCount:    count,
		TemplateParser: &i18ntemplate.TextParser{
			Funcs:  b.funcs,
			Option: "missingkey=error",
		},
	})

	// Rendering a message this bundle does not contain reports the miss
	// alongside a valid result.
	var notFound *i18n.MessageNotFoundErr
	if errors.As(err, &notFound) {
		err = nil
	}
	return translated, err
}
