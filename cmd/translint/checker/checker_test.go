package checker

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifei6671/translate"
)

const localesDir = "../../../testdata/locales"

func TestCheckLocales(t *testing.T) {
	t.Run("CheckLocales_Success", func(t *testing.T) {
		res, err := CheckLocales(localesDir, "en-US", zerolog.Nop())
		require.NoError(t, err)

		assert.Equal(t, "en-US", res.DefaultLanguage)
		assert.Equal(t, []string{"en-US", "es-ES", "fr-FR"}, res.Languages)
		assert.Equal(t, []string{
			"bad_template", "goodbye", "hello", "items", "not_found", "only_es", "price", "welcome",
		}, res.AllKeys)

		assert.Equal(t, []string{"bad_template", "only_es"}, res.MissingKeys["en-US"])
		assert.Equal(t, []string{"bad_template", "goodbye", "not_found", "price"}, res.MissingKeys["es-ES"])
		assert.Equal(t, []string{"goodbye", "items", "not_found", "only_es", "price", "welcome"}, res.MissingKeys["fr-FR"])

		assert.Empty(t, res.RedundantKeys["en-US"])
		assert.Equal(t, []string{"only_es"}, res.RedundantKeys["es-ES"])
		assert.Equal(t, []string{"bad_template"}, res.RedundantKeys["fr-FR"])

		require.Len(t, res.SyntaxErrors["fr-FR"], 1)
		assert.Error(t, res.SyntaxErrors["fr-FR"]["bad_template"])
		assert.Empty(t, res.SyntaxErrors["en-US"])

		assert.True(t, res.HasIssues())
	})

	t.Run("CheckLocales_Fail", func(t *testing.T) {
		_, err := CheckLocales(localesDir, "de-DE", zerolog.Nop())
		assert.ErrorIs(t, err, translate.ErrDefaultLanguage)
	})
}

func TestResult_HasIssues(t *testing.T) {
	assert.False(t, (&Result{}).HasIssues())
	assert.False(t, (&Result{MissingKeys: map[string][]string{"en": nil}}).HasIssues())
	assert.True(t, (&Result{RedundantKeys: map[string][]string{"en": {"a"}}}).HasIssues())
}
