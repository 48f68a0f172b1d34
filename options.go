package translate

import (
	"text/template"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Option configures a Translator at construction time.
type Option func(*options)

type options struct {
	logger     zerolog.Logger
	unmarshal  map[string]i18n.UnmarshalFunc
	funcs      template.FuncMap
	registerer prometheus.Registerer
}

func defaultOptions() *options {
	return &options{
		logger: log.Logger,
		unmarshal: map[string]i18n.UnmarshalFunc{
			"toml": toml.Unmarshal,
			"yaml": yaml.Unmarshal,
			"yml":  yaml.Unmarshal,
		},
		funcs: template.FuncMap{},
	}
}

// WithLogger sets the logger used for load diagnostics and render failures.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithUnmarshalFunc registers a decoder for files with the given extension
// (without the dot). JSON is always available.
func WithUnmarshalFunc(format string, fn i18n.UnmarshalFunc) Option {
	return func(o *options) {
		o.unmarshal[format] = fn
	}
}

// WithFuncs adds template functions available to every message. They take
// precedence over registered formatters of the same name.
func WithFuncs(funcs template.FuncMap) Option {
	return func(o *options) {
		for name, fn := range funcs {
			o.funcs[name] = fn
		}
	}
}

// WithMetrics registers fallback and failure counters on reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(o *options) {
		o.registerer = reg
	}
}
