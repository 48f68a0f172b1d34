package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/lifei6671/translate/cmd/translint/checker"
	"github.com/lifei6671/translate/cmd/translint/config"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load(context.Background(), ".env")
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}

	fset := flag.NewFlagSet("translint", flag.ContinueOnError)
	fset.SetOutput(stderr)
	fset.StringVar(&cfg.Dir, "d", cfg.Dir, "directory containing one subdirectory per language")
	fset.StringVar(&cfg.DefaultLanguage, "default", cfg.DefaultLanguage, "default language directory")
	fset.BoolVar(&cfg.FailOnIssues, "fail", cfg.FailOnIssues, "exit with code 1 if any issue found")
	fset.BoolVar(&cfg.Debug, "debug", cfg.Debug, "log every loaded file")
	if err := fset.Parse(args); err != nil {
		return 2
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}

	logLvl := zerolog.WarnLevel
	if cfg.Debug {
		logLvl = zerolog.TraceLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.RFC3339}).
		Level(logLvl).With().Timestamp().Logger()

	res, err := checker.CheckLocales(cfg.Dir, cfg.DefaultLanguage, logger)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}

	printResult(stdout, res)

	if cfg.FailOnIssues && res.HasIssues() {
		return 1
	}
	return 0
}

func printResult(w io.Writer, res *checker.Result) {
	fmt.Fprintln(w, "=== TRANSLATION CHECK RESULT ===")
	fmt.Fprintln(w, "Default language:", res.DefaultLanguage)
	fmt.Fprintln(w, "Languages:", res.Languages)
	fmt.Fprintln(w, "Total keys:", len(res.AllKeys))

	for _, lang := range res.Languages {
		fmt.Fprintf(w, "\n--- [%s] ---\n", lang)

		// missing keys
		if arr := res.MissingKeys[lang]; len(arr) > 0 {
			fmt.Fprintln(w, "Missing keys:")
			for _, k := range arr {
				fmt.Fprintln(w, "  -", k)
			}
		} else {
			fmt.Fprintln(w, "Missing keys: None")
		}

		// not in the default language, so never reachable through fallback
		if arr := res.RedundantKeys[lang]; len(arr) > 0 {
			fmt.Fprintln(w, "Redundant keys:")
			for _, k := range arr {
				fmt.Fprintln(w, "  -", k)
			}
		} else {
			fmt.Fprintln(w, "Redundant keys: None")
		}

		if errs := res.SyntaxErrors[lang]; len(errs) > 0 {
			fmt.Fprintln(w, "Syntax errors:")
			keys := make([]string, 0, len(errs))
			for key := range errs {
				keys = append(keys, key)
			}
			sort.Strings(keys)
			for _, key := range keys {
				fmt.Fprintf(w, "  - %s: %v\n", key, errs[key])
			}
		} else {
			fmt.Fprintln(w, "Syntax errors: None")
		}
	}
}
