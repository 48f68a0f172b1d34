package checker

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/lifei6671/translate"
)

type Result struct {
	DefaultLanguage string
	Languages       []string
	MissingKeys     map[string][]string
	RedundantKeys   map[string][]string
	SyntaxErrors    map[string]map[string]error // lang -> key -> err
	AllKeys         []string
}

// HasIssues reports whether any language has missing or redundant keys or
// a template that does not parse.
func (r *Result) HasIssues() bool {
	for _, arr := range r.MissingKeys {
		if len(arr) > 0 {
			return true
		}
	}
	for _, arr := range r.RedundantKeys {
		if len(arr) > 0 {
			return true
		}
	}
	for _, errs := range r.SyntaxErrors {
		if len(errs) > 0 {
			return true
		}
	}
	return false
}

// CheckLocales loads dir the way the application would and performs:
//  1. key alignment check: keys missing from a language compared to the
//     union of all keys, and keys absent from the default language
//  2. template syntax check via translate.ValidateMessage()
func CheckLocales(dir, defaultLanguage string, logger zerolog.Logger) (*Result, error) {
	tr, err := translate.New(dir, defaultLanguage, translate.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	langs := tr.Languages()
	langKeys := make(map[string]map[string]struct{}, len(langs))
	allKeysSet := make(map[string]struct{})

	for _, lang := range langs {
		bundle, _ := tr.Bundle(lang)
		kset := make(map[string]struct{}, bundle.Len())
		for _, k := range bundle.MessageIDs() {
			kset[k] = struct{}{}
			allKeysSet[k] = struct{}{}
		}
		langKeys[lang] = kset
	}

	allKeys := make([]string, 0, len(allKeysSet))
	for k := range allKeysSet {
		allKeys = append(allKeys, k)
	}
	sort.Strings(allKeys)

	missing := make(map[string][]string)
	redundant := make(map[string][]string)
	defaultKeys := langKeys[defaultLanguage]

	for _, lang := range langs {
		kset := langKeys[lang]
		for _, k := range allKeys {
			if _, ok := kset[k]; !ok {
				missing[lang] = append(missing[lang], k)
			}
		}
		if lang == defaultLanguage {
			continue
		}
		for _, k := range allKeys {
			if _, inLang := kset[k]; !inLang {
				continue
			}
			if _, ok := defaultKeys[k]; !ok {
				redundant[lang] = append(redundant[lang], k)
			}
		}
	}

	syntaxErrors := make(map[string]map[string]error)
	for _, lang := range langs {
		bundle, _ := tr.Bundle(lang)
		for _, key := range bundle.MessageIDs() {
			if err := translate.ValidateMessage(bundle.Tag(), bundle.Message(key), nil); err != nil {
				if syntaxErrors[lang] == nil {
					syntaxErrors[lang] = make(map[string]error)
				}
				syntaxErrors[lang][key] = err
			}
		}
	}

	return &Result{
		DefaultLanguage: defaultLanguage,
		Languages:       langs,
		MissingKeys:     missing,
		RedundantKeys:   redundant,
		SyntaxErrors:    syntaxErrors,
		AllKeys:         allKeys,
	}, nil
}
