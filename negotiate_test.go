package translate_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lifei6671/translate"
)

func TestTranslator_Match(t *testing.T) {
	tr := newFixtureTranslator(t)

	tests := []struct {
		name        string
		preferences []string
		expected    string
	}{
		{"no preference", nil, "en-US"},
		{"exact", []string{"es-ES"}, "es-ES"},
		{"base language", []string{"fr"}, "fr-FR"},
		{"regional variant", []string{"fr-CH, fr;q=0.9, en;q=0.8"}, "fr-FR"},
		{"quality order", []string{"de;q=0.5, es;q=0.9"}, "es-ES"},
		{"unsupported", []string{"de-DE"}, "en-US"},
		{"invalid preference ignored", []string{"!!", "es"}, "es-ES"},
		{"first preference wins", []string{"fr", "es"}, "fr-FR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tr.Match(tt.preferences...))
		})
	}
}

func TestLanguageContext(t *testing.T) {
	ctx := translate.ToContext(context.Background(), "es-ES")
	assert.Equal(t, "es-ES", translate.FromContext(ctx))
	assert.Equal(t, "", translate.FromContext(context.Background()))
}

func TestLanguageFromHTTPRequest(t *testing.T) {
	tr := newFixtureTranslator(t)

	t.Run("header only", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Language", "fr-FR,en-US;q=0.8")

		prefs := translate.LanguageFromHTTPRequest(req)
		assert.Equal(t, []string{"fr-FR,en-US;q=0.8"}, prefs)
		assert.Equal(t, "fr-FR", tr.Match(prefs...))
	})

	t.Run("query before header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?lang=es-ES", nil)
		req.Header.Set("Accept-Language", "fr-FR")

		prefs := translate.LanguageFromHTTPRequest(req)
		assert.Equal(t, []string{"es-ES", "fr-FR"}, prefs)
		assert.Equal(t, "es-ES", tr.Match(prefs...))
	})

	t.Run("nothing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		assert.Empty(t, translate.LanguageFromHTTPRequest(req))
	})
}
