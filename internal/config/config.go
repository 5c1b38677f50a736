// Package config loads and saves the project configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/eykd/dslint-go/internal/propcheck"
)

// FileName is the configuration file looked up at the project root.
const FileName = ".dslint.yaml"

// Output formats.
const (
	FormatHuman = "human"
	FormatJSON  = "json"
)

// Config holds project-level settings for dslint commands.
type Config struct {
	Include        []string `yaml:"include" validate:"dive,required"`
	Concurrency    int      `yaml:"concurrency" validate:"min=1,max=64"`
	FailOnWarnings bool     `yaml:"fail_on_warnings"`
	MinScore       int      `yaml:"min_score" validate:"min=0,max=100"`
	Format         string   `yaml:"format" validate:"oneof=human json"`
}

// Default returns the settings used when no configuration file exists.
func Default() *Config {
	return &Config{
		Include:     []string{"**/*.tsx", "**/*.jsx"},
		Concurrency: propcheck.DefaultConcurrency,
		Format:      FormatHuman,
	}
}

// ConfigError reports configuration values that failed validation.
type ConfigError struct {
	Path     string
	Problems []string
}

func (e *ConfigError) Error() string {
	msg := "invalid config"
	if e.Path != "" {
		msg += " " + e.Path
	}
	return msg + ": " + strings.Join(e.Problems, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks every field against its constraints.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validating config: %w", err)
	}

	cfgErr := &ConfigError{}
	for _, fe := range fieldErrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		cfgErr.Problems = append(cfgErr.Problems, fmt.Sprintf("%s: must satisfy %s (got %v)", fe.Field(), rule, fe.Value()))
	}
	return cfgErr
}

// Parse decodes YAML configuration over the defaults. Unknown keys are
// rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Marshal encodes cfg as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return buf.Bytes(), nil
}
