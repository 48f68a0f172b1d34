package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

const localesDir = "../../testdata/locales"

func TestRun(t *testing.T) {
	t.Run("report", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		code := run([]string{"-d", localesDir, "-default", "en-US"}, &stdout, &stderr)

		assert.Equal(t, 0, code)
		out := stdout.String()
		assert.Contains(t, out, "Languages: [en-US es-ES fr-FR]")
		assert.Contains(t, out, "--- [es-ES] ---")
		assert.Contains(t, out, "  - only_es")
		assert.Contains(t, out, "  - bad_template:")
	})

	t.Run("fail on issues", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		code := run([]string{"-d", localesDir, "-default", "en-US", "-fail"}, &stdout, &stderr)
		assert.Equal(t, 1, code)
	})

	t.Run("load error", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		code := run([]string{"-d", localesDir, "-default", "de-DE"}, &stdout, &stderr)
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr.String(), "DEFAULT_LANGUAGE_ERROR")
	})

	t.Run("bad flag", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		assert.Equal(t, 2, run([]string{"-nope"}, &stdout, &stderr))
	})
}
