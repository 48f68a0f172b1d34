package translate

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"text/template"
	"time"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

///////////////////////////////////////////////////////////////////////////////
// FORMATTER REGISTRY
///////////////////////////////////////////////////////////////////////////////

// FormatterFunc formats input for the language tag. arg is the optional
// formatter argument, e.g. the precision of "number".
type FormatterFunc func(tag language.Tag, input any, arg string) (any, error)

var (
	formatterRegistry = map[string]FormatterFunc{}
	regMutex          sync.RWMutex
)

// RegisterFormatter makes f available to message templates as name.
// Translators capture the registry when they are built, so formatters must
// be registered before New is called.
//
// Inside a template a formatter is used as a function or in a pipeline. The
// formatted value always comes last, so both of these round to 2 digits:
//
//	{{number 2 .Price}}
//	{{.Price | number 2}}
//	{{.Name | upper}}
func RegisterFormatter(name string, f FormatterFunc) {
	regMutex.Lock()
	defer regMutex.Unlock()
	formatterRegistry[name] = f
}

// formatterFuncs binds every registered formatter to tag.
func formatterFuncs(tag language.Tag) template.FuncMap {
	regMutex.RLock()
	defer regMutex.RUnlock()

	funcs := make(template.FuncMap, len(formatterRegistry))
	for name, f := range formatterRegistry {
		funcs[name] = bindFormatter(name, tag, f)
	}
	return funcs
}

// bindFormatter adapts f to a template function. The piped value is always
// the last argument; an optional formatter argument may precede it.
func bindFormatter(name string, tag language.Tag, f FormatterFunc) func(args ...any) (any, error) {
	return func(args ...any) (any, error) {
		switch len(args) {
		case 1:
			return f(tag, args[0], "")
		case 2:
			return f(tag, args[1], fmt.Sprint(args[0]))
		default:
			return nil, fmt.Errorf("formatter %s: expected 1 or 2 arguments, got %d", name, len(args))
		}
	}
}

///////////////////////////////////////////////////////////////////////////////
// DEFAULT FORMATTERS REGISTERED AT INIT
///////////////////////////////////////////////////////////////////////////////

func init() {
	RegisterFormatter("upper", func(tag language.Tag, v any, _ string) (any, error) {
		return cases.Upper(tag).String(fmt.Sprint(v)), nil
	})
	RegisterFormatter("lower", func(tag language.Tag, v any, _ string) (any, error) {
		return cases.Lower(tag).String(fmt.Sprint(v)), nil
	})
	RegisterFormatter("title", func(tag language.Tag, v any, _ string) (any, error) {
		return cases.Title(tag).String(fmt.Sprint(v)), nil
	})
	RegisterFormatter("number", formatNumber)
	RegisterFormatter("currency", formatCurrency)
	RegisterFormatter("date", formatDate)
}

func formatNumber(tag language.Tag, v any, precision string) (any, error) {
	f, err := toFloat(v, "")
	if err != nil {
		return nil, fmt.Errorf("number formatter: %w", err)
	}

	p := 0
	if precision != "" {
		if p, err = strconv.Atoi(precision); err != nil || p < 0 {
			return nil, fmt.Errorf("number formatter: invalid precision %q", precision)
		}
	}

	return localizedDecimal(tag, f, p), nil
}

func formatCurrency(tag language.Tag, v any, symbol string) (any, error) {
	if symbol == "" {
		symbol = "$"
	}

	f, err := toFloat(v, symbol)
	if err != nil {
		return nil, fmt.Errorf("currency formatter: %w", err)
	}

	return symbol + localizedDecimal(tag, f, 2), nil
}

func formatDate(_ language.Tag, v any, layout string) (any, error) {
	if layout == "" {
		layout = "2006-01-02"
	}
	switch t := v.(type) {
	case time.Time:
		return t.Format(layout), nil
	case *time.Time:
		return t.Format(layout), nil
	case string:
		tt, err := time.Parse(time.RFC3339, t)
		if err != nil {
			return nil, fmt.Errorf("date formatter: %w", err)
		}
		return tt.Format(layout), nil
	default:
		return nil, fmt.Errorf("date formatter: not a time: %v", v)
	}
}

func localizedDecimal(tag language.Tag, f float64, precision int) string {
	p := message.NewPrinter(tag)
	return p.Sprint(number.Decimal(f,
		number.MinFractionDigits(precision),
		number.MaxFractionDigits(precision),
	))
}

// toFloat accepts numeric kinds and numeric strings. symbol, when set, is
// stripped from strings along with the common currency signs.
func toFloat(v any, symbol string) (float64, error) {
	switch n := v.(type) {
	case int:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case float32:
		return float64(n), nil
	case float64:
		return n, nil
	case string:
		s := strings.TrimSpace(n)
		if symbol != "" {
			for _, sign := range []string{"$", "¥", "€", "£", symbol} {
				s = strings.TrimPrefix(s, sign)
			}
		}
		s = strings.ReplaceAll(s, ",", "")
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot parse %q", n)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("requires numeric or numeric-string type, got %T", v)
	}
}

///////////////////////////////////////////////////////////////////////////////
// VALIDATION
///////////////////////////////////////////////////////////////////////////////

// ValidateMessage parses every plural form of msg as a template, using the
// formatters registered for tag plus extra. It reports the first form that
// does not parse.
func ValidateMessage(tag language.Tag, msg *i18n.Message, extra template.FuncMap) error {
	funcs := formatterFuncs(tag)
	for name, fn := range extra {
		funcs[name] = fn
	}

	left, right := msg.LeftDelim, msg.RightDelim
	if left == "" {
		left = "{{"
	}
	if right == "" {
		right = "}}"
	}

	forms := []struct {
		name string
		src  string
	}{
		{"zero", msg.Zero},
		{"one", msg.One},
		{"two", msg.Two},
		{"few", msg.Few},
		{"many", msg.Many},
		{"other", msg.Other},
	}
	for _, form := range forms {
		if form.src == "" || !strings.Contains(form.src, left) {
			continue
		}
		_, err := template.New(msg.ID).Delims(left, right).Funcs(funcs).Parse(form.src)
		if err != nil {
			return fmt.Errorf("%s: %w", form.name, err)
		}
	}
	return nil
}
