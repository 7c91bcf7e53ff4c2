// Package config loads CLI configuration from defaults, an optional YAML
// file, the environment, and command-line flags.
package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Defaults.
const (
	DefaultInput     = "data.csv"
	DefaultFormat    = "json"
	DefaultDelimiter = ","
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// Config holds all CLI configuration options.
type Config struct {
	// Input is the path of the tabular input file.
	Input string `koanf:"input" validate:"required"`
	// Output is the destination file; empty means standard output.
	Output string `koanf:"output"`
	// Pretty indents JSON output.
	Pretty bool `koanf:"pretty"`
	// Format is the output format: json or table.
	Format string `koanf:"format" validate:"oneof=json table"`
	// InputFormat is the input parser: auto, csv, or xlsx.
	InputFormat string `koanf:"input_format" validate:"oneof=auto csv xlsx"`
	// Sheet is the worksheet to read from xlsx input.
	Sheet string `koanf:"sheet"`
	// Delimiter is the single-character CSV field separator.
	Delimiter string `koanf:"delimiter" validate:"len=1"`
	// LogLevel is the minimum log level.
	LogLevel string `koanf:"log_level" validate:"oneof=debug info warn warning error"`
	// LogFormat is the log encoding: text or json.
	LogFormat string `koanf:"log_format" validate:"oneof=text json"`
	// Verbose forces debug logging.
	Verbose bool `koanf:"verbose"`
}

// Defaults returns the configuration used when nothing else is set.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"input":        DefaultInput,
		"output":       "",
		"pretty":       false,
		"format":       DefaultFormat,
		"input_format": "auto",
		"sheet":        "",
		"delimiter":    DefaultDelimiter,
		"log_level":    DefaultLogLevel,
		"log_format":   DefaultLogFormat,
		"verbose":      false,
	}
}

// DelimiterRune returns the CSV delimiter as a rune.
func (c *Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	if r == utf8.RuneError {
		return ','
	}
	return r
}

// Validate checks field values against their allowed sets.
func (c *Config) Validate() error {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("koanf"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	err := v.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, formatFieldError(fe))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", fe.Field(), fe.Param(), fe.Value())
	case "len":
		return fmt.Sprintf("%s must be exactly %s character, got %q", fe.Field(), fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}
