// Command valibot-lint smoke-tests a schema's example fixtures from the
// command line. It does not read schema definitions from disk: the schema
// it checks against is the small user-registration example wired below; the
// YAML file only supplies input fixtures and their expected outcome.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/jussisaurio/valibot"
	"github.com/jussisaurio/valibot/dsl"
	"github.com/jussisaurio/valibot/rules"
)

// fixture is one case loaded from the YAML file at -fixtures.
type fixture struct {
	Name    string         `yaml:"name"`
	Input   map[string]any `yaml:"input"`
	WantOK  bool           `yaml:"wantOk"`
	WantMsg string         `yaml:"wantValidation,omitempty"`
}

// checkJSONInput decodes a raw JSON document at path through DecodeJSON
// (rather than the fixtures' YAML path) and runs it against schema, so a
// caller can lint a captured request body alongside the fixture suite.
func checkJSONInput(logger zerolog.Logger, schema valibot.Schema[map[string]any], path string) bool {
	raw, err := os.Open(path)
	if err != nil {
		logger.Error().Err(err).Str("path", path).Msg("open json input")
		return false
	}
	defer raw.Close()

	decoded, err := dsl.DecodeJSON(raw)
	if err != nil {
		logger.Error().Err(err).Str("path", path).Msg("decode json input")
		return false
	}
	input, ok := decoded.(map[string]any)
	if !ok {
		logger.Error().Str("path", path).Msg("json input is not an object")
		return false
	}
	_, issues, ok := valibot.SafeParse(schema, input)
	if !ok {
		logger.Error().Str("path", path).Str("issues", issues.Error()).Msg("json input failed validation")
		return false
	}
	logger.Info().Str("path", path).Msg("json input passed validation")
	return true
}

func registrationSchema() valibot.Schema[map[string]any] {
	return dsl.Object([]dsl.Field{
		dsl.F("username", dsl.String(rules.MinLength(3), rules.MaxLength(32))),
		dsl.F("email", dsl.String(rules.Email())),
		dsl.F("age", dsl.Number(rules.Min(0), rules.Max(150), rules.Integer())),
		dsl.FOptional("nickname", dsl.String()),
	})
}

func main() {
	fixturesPath := flag.String("fixtures", "", "path to a YAML fixtures file")
	jsonPath := flag.String("json", "", "optional path to a single raw JSON document to check against the schema")
	verbose := flag.Bool("v", false, "log every fixture, not just failures")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	if *jsonPath != "" {
		if !checkJSONInput(logger, registrationSchema(), *jsonPath) {
			os.Exit(1)
		}
	}

	if *fixturesPath == "" {
		if *jsonPath != "" {
			return
		}
		logger.Error().Msg("missing -fixtures path")
		os.Exit(2)
	}

	raw, err := os.ReadFile(*fixturesPath)
	if err != nil {
		logger.Error().Err(err).Str("path", *fixturesPath).Msg("read fixtures")
		os.Exit(1)
	}

	var fixtures []fixture
	if err := yaml.Unmarshal(raw, &fixtures); err != nil {
		logger.Error().Err(err).Msg("parse fixtures yaml")
		os.Exit(1)
	}

	schema := registrationSchema()
	failed := 0
	for _, fx := range fixtures {
		_, issues, ok := valibot.SafeParse(schema, any(fx.Input))
		switch {
		case ok && fx.WantOK:
			if *verbose {
				logger.Info().Str("fixture", fx.Name).Msg("pass")
			}
		case !ok && !fx.WantOK && matchesWant(issues, fx.WantMsg):
			if *verbose {
				logger.Info().Str("fixture", fx.Name).Msg("pass (expected failure)")
			}
		default:
			failed++
			event := logger.Error().Str("fixture", fx.Name).Bool("ok", ok).Bool("wantOk", fx.WantOK)
			if !ok {
				event = event.Str("issues", issues.Error())
			}
			event.Msg("fixture mismatch")
		}
	}

	if failed > 0 {
		logger.Error().Int("failed", failed).Int("total", len(fixtures)).Msg("lint failed")
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, "valibot-lint: %d fixtures passed\n", len(fixtures))
}

func matchesWant(issues valibot.Issues, want string) bool {
	if want == "" {
		return len(issues) > 0
	}
	for _, iss := range issues {
		if iss.Validation == want {
			return true
		}
	}
	return false
}
