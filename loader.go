package translate

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
	"text/template"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
)

// New loads translations from dir. Every immediate subdirectory of dir whose
// name is a language tag becomes one language, e.g.
//
//	locales/en-US/common.toml
//	locales/en-US/errors.toml
//	locales/es-ES/common.yaml
//
// defaultLanguage must name one of those directories.
func New(dir string, defaultLanguage string, opts ...Option) (*Translator, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, newError(NameReadDir, err, "an error has occurred while reading translations directory %s", dir)
	}
	if !info.IsDir() {
		return nil, newError(NameReadDir, nil, "translations path %s is not a directory", dir)
	}
	return NewFS(os.DirFS(dir), defaultLanguage, opts...)
}

// NewFS is like New but reads the language directories from the root of fsys,
// which lets translations be embedded with go:embed.
func NewFS(fsys fs.FS, defaultLanguage string, opts ...Option) (*Translator, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	m, err := newMetrics(o.registerer)
	if err != nil {
		return nil, fmt.Errorf("translate: register metrics: %w", err)
	}

	l := &loader{
		fsys:      fsys,
		logger:    o.logger,
		unmarshal: o.unmarshal,
		funcs:     o.funcs,
	}

	translations, err := l.load()
	if err != nil {
		return nil, err
	}

	if _, ok := translations[defaultLanguage]; !ok {
		return nil, newError(NameDefaultLanguage, nil,
			"%s was designated as default language, but no translations were provided for this language", defaultLanguage)
	}

	t := &Translator{
		translations:    translations,
		defaultLanguage: defaultLanguage,
		logger:          o.logger,
		metrics:         m,
	}
	t.matcher, t.matchOrder = newMatcher(translations, defaultLanguage, t.Languages())
	return t, nil
}

type loader struct {
	fsys      fs.FS
	logger    zerolog.Logger
	unmarshal map[string]i18n.UnmarshalFunc
	funcs     template.FuncMap
}

func (l *loader) load() (map[string]*LanguageBundle, error) {
	l.logger.Info().Msg("Loading translations...")

	entries, err := fs.ReadDir(l.fsys, ".")
	if err != nil {
		return nil, newError(NameReadDir, err, "an error has occurred while reading translations directory")
	}

	translations := make(map[string]*LanguageBundle)
	for _, entry := range entries {
		name := entry.Name()

		isDir, err := l.isDir(entry)
		if err != nil {
			return nil, err
		}
		if !isDir {
			l.logger.Warn().Str("entry", name).Msg("Ignoring entry because it is not a directory")
			continue
		}

		tag, err := language.Parse(name)
		if err != nil {
			l.logger.Warn().Str("directory", name).Err(err).
				Msg("Ignoring directory as it is not a valid language identifier")
			continue
		}

		bundle, err := l.loadLanguage(name, tag)
		if err != nil {
			return nil, err
		}
		translations[name] = bundle
	}

	l.logger.Info().Int("languages", len(translations)).Msg("Successfully loaded languages")
	return translations, nil
}

// isDir follows symlinks, which fs.DirEntry does not.
func (l *loader) isDir(entry fs.DirEntry) (bool, error) {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.IsDir(), nil
	}
	info, err := fs.Stat(l.fsys, entry.Name())
	if err != nil {
		return false, newError(NameFileType, err, "could not get file type from %s", entry.Name())
	}
	return info.IsDir(), nil
}

func (l *loader) loadLanguage(name string, tag language.Tag) (*LanguageBundle, error) {
	l.logger.Debug().Str("language", name).Msg("Loading translations")

	files, err := fs.ReadDir(l.fsys, name)
	if err != nil {
		return nil, newError(NameReadDir, err, "an error has occurred while trying to read %s", name)
	}

	bundle := newLanguageBundle(name, tag)
	if bundle.PluralTag() != tag {
		l.logger.Warn().Str("language", name).
			Msg("No plural rule known for language, every message uses its \"other\" form")
	}
	bundle.funcs = formatterFuncs(tag)
	for fn, f := range l.funcs {
		bundle.funcs[fn] = f
	}

	for _, file := range files {
		fileName := file.Name()
		filePath := path.Join(name, fileName)

		if strings.HasPrefix(fileName, ".") {
			l.logger.Trace().Str("language", name).Str("file", fileName).Msg("Ignoring hidden file")
			continue
		}

		if file.IsDir() {
			l.logger.Warn().Str("language", name).Str("file", fileName).
				Msg("Ignoring nested directory in language directory")
			continue
		}

		l.logger.Trace().Str("language", name).Str("file", fileName).Msg("Loading file")

		content, err := fs.ReadFile(l.fsys, filePath)
		if err != nil {
			l.logger.Error().Err(err).Str("language", name).Str("file", fileName).
				Msg("An error has occurred while reading file")
			continue
		}

		// go-i18n reads the format from the extension and the language from
		// the name part before it. The directory decides the language.
		ext := path.Ext(fileName)
		tagged := path.Join(name, strings.TrimSuffix(fileName, ext)+"."+name+ext)
		parsed, err := i18n.ParseMessageFileBytes(content, tagged, l.unmarshal)
		if err != nil {
			l.logger.Error().Err(err).Str("language", name).Str("file", fileName).
				Msg("Corrupt entry encountered")
			continue
		}

		if err := bundle.add(fileName, parsed.Messages); err != nil {
			return nil, err
		}
	}

	return bundle, nil
}

// MustNew is like New but panics on error. It is meant for process start-up.
func MustNew(dir string, defaultLanguage string, opts ...Option) *Translator {
	t, err := New(dir, defaultLanguage, opts...)
	if err != nil {
		panic(err)
	}
	return t
}
