package translate

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"
)

// MessageTranslator collects arguments for one message and renders it with
// Build. It is not safe for concurrent use and must not be reused after
// Build.
//
//	text := tr.Translate("es-ES", Key("welcome")).
//		AddArgument("name", "Alice").
//		Build()
type MessageTranslator struct {
	translator *Translator
	key        LanguageKey
	bundle     *LanguageBundle
	message    *i18n.Message
	args       map[string]any
	count      any
	built      bool
}

// AddArgument sets the template value name. Setting the same name again
// replaces the earlier value.
func (m *MessageTranslator) AddArgument(name string, value any) *MessageTranslator {
	if m.args == nil {
		m.args = make(map[string]any)
	}
	m.args[name] = value
	return m
}

// Count selects the plural form of the message for n. n is also available to
// the template as .PluralCount unless an argument of that name was added.
func (m *MessageTranslator) Count(n any) *MessageTranslator {
	m.count = n
	return m
}

// Build renders the message. It returns TranslationFailed if the message
// does not exist, cannot be rendered, or was already built.
func (m *MessageTranslator) Build() string {
	t := m.translator
	if m.built {
		t.logger.Warn().Str("key", m.key.Key()).Msg("Message translator used after Build")
		t.metrics.failure(reasonRebuild)
		return TranslationFailed
	}
	m.built = true

	if m.message == nil {
		t.logger.Error().Str("key", m.key.Key()).Msg("Tried to translate non existing language key")
		t.metrics.failure(reasonNotFound)
		return TranslationFailed
	}

	args := m.args
	if _, ok := args["PluralCount"]; m.count != nil && !ok {
		args = make(map[string]any, len(m.args)+1)
		for name, value := range m.args {
			args[name] = value
		}
		args["PluralCount"] = m.count
	}

	translated, err := m.bundle.format(m.message, args, m.count)
	if err != nil {
		t.logger.Error().Err(err).Str("key", m.key.Key()).Interface("args", m.args).
			Msg("Translation failure when translating with arguments")
		t.metrics.failure(reasonFormat)
		return TranslationFailed
	}
	return translated
}
