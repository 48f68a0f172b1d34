package translate

import (
	"context"
	"net/http"

	"golang.org/x/text/language"
)

type contextKey string

func (c contextKey) String() string {
	return "translate/" + string(c)
}

const ctxKeyLanguage = contextKey("language")

// ToContext stores the language chosen for a request in ctx.
func ToContext(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, ctxKeyLanguage, lang)
}

// FromContext returns the language stored by ToContext, or "".
func FromContext(ctx context.Context) string {
	lang, ok := ctx.Value(ctxKeyLanguage).(string)
	if !ok {
		return ""
	}
	return lang
}

// LanguageFromHTTPRequest returns the language preferences of r: the "lang"
// query value first, then the Accept-Language header. The result can be
// passed to Translator.Match.
func LanguageFromHTTPRequest(r *http.Request) []string {
	var prefs []string
	if lang := r.URL.Query().Get("lang"); lang != "" {
		prefs = append(prefs, lang)
	}
	if accept := r.Header.Get("Accept-Language"); accept != "" {
		prefs = append(prefs, accept)
	}
	return prefs
}

func newMatcher(translations map[string]*LanguageBundle, defaultLanguage string, names []string) (language.Matcher, []string) {
	// The matcher reports index 0 when nothing matches, so the default
	// language goes first.
	order := []string{defaultLanguage}
	tags := []language.Tag{translations[defaultLanguage].Tag()}
	for _, name := range names {
		if name == defaultLanguage {
			continue
		}
		order = append(order, name)
		tags = append(tags, translations[name].Tag())
	}
	return language.NewMatcher(tags), order
}

// Match returns the loaded language that best fits preferences. Each
// preference is a tag or an Accept-Language value such as
// "fr-CH, fr;q=0.9, en;q=0.8". The default language is returned when
// nothing fits.
func (t *Translator) Match(preferences ...string) string {
	var desired []language.Tag
	for _, pref := range preferences {
		tags, _, err := language.ParseAcceptLanguage(pref)
		if err != nil {
			t.logger.Debug().Err(err).Str("preference", pref).Msg("Ignoring invalid language preference")
			continue
		}
		desired = append(desired, tags...)
	}
	if len(desired) == 0 {
		return t.defaultLanguage
	}

	_, idx, conf := t.matcher.Match(desired...)
	if conf == language.No {
		return t.defaultLanguage
	}
	return t.matchOrder[idx]
}
