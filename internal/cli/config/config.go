package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/yndnr/ut-go/internal/core/domain"
	"github.com/yndnr/ut-go/internal/infra/confloader"
)

// CLIConfig is the configuration for ut.
type CLIConfig struct {
	// Precision is the default precision name, matched ignoring case.
	Precision string `koanf:"precision" yaml:"precision" validate:"required"`

	// Timezone is "Local", "UTC" or an IANA zone name.
	Timezone string `koanf:"timezone" yaml:"timezone"`

	// Output is the result format: text, json, yaml.
	Output string `koanf:"output" yaml:"output" validate:"oneof=text json yaml"`

	Log     LogConfig     `koanf:"log" yaml:"log"`
	Metrics MetricsConfig `koanf:"metrics" yaml:"metrics"`
}

// LogConfig configures the stderr logger.
type LogConfig struct {
	Level  string `koanf:"level" yaml:"level" validate:"oneof=debug info warn warning error"`
	Format string `koanf:"format" yaml:"format" validate:"oneof=text json"`
}

// MetricsConfig configures the Prometheus textfile export.
type MetricsConfig struct {
	// Textfile is written after each command when non-empty.
	Textfile string `koanf:"textfile" yaml:"textfile"`
}

// Default returns the default CLI configuration.
func Default() *CLIConfig {
	return &CLIConfig{
		Precision: domain.DefaultPrecision.String(),
		Timezone:  "Local",
		Output:    "text",
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// defaultsMap flattens Default() for the loader.
func defaultsMap() map[string]any {
	d := Default()
	return map[string]any{
		"precision":        d.Precision,
		"timezone":         d.Timezone,
		"output":           d.Output,
		"log.level":        d.Log.Level,
		"log.format":       d.Log.Format,
		"metrics.textfile": d.Metrics.Textfile,
	}
}

// EnvPrefix marks the environment variables read as configuration.
const EnvPrefix = "UT_"

// DefaultConfigPath returns the default CLI config file path.
func DefaultConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".ut", "config.yaml")
}

// Load reads configuration from defaults, the file at path, UT_*
// environment variables and overrides, in increasing priority. An empty
// path means DefaultConfigPath and tolerates a missing file; an explicit
// path must exist.
func Load(path string, overrides map[string]any) (*CLIConfig, error) {
	fileOpt := confloader.WithConfigFile(path)
	if path == "" {
		fileOpt = confloader.WithOptionalFile(DefaultConfigPath())
	}

	loader := confloader.NewLoader(
		confloader.WithDefaults(defaultsMap()),
		fileOpt,
		confloader.WithEnvPrefix(EnvPrefix),
		confloader.WithOverrides(overrides),
	)

	cfg := &CLIConfig{}
	if err := loader.Load(cfg); err != nil {
		return nil, domain.ErrInvalidConfig.WithCause(err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var (
	validate   *validator.Validate
	translator ut.Translator
)

func init() {
	enLoc := en.New()
	uni := ut.New(enLoc, enLoc)
	var found bool
	translator, found = uni.GetTranslator("en")
	if !found {
		panic("config: english translator not registered")
	}

	validate = validator.New(validator.WithRequiredStructEnabled())

	// report koanf keys, which are what users write in files and env
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if tag := fld.Tag.Get("koanf"); tag != "" && tag != "-" {
			return tag
		}
		return fld.Name
	})

	if err := en_translations.RegisterDefaultTranslations(validate, translator); err != nil {
		panic(fmt.Sprintf("config: register validation translations: %v", err))
	}
}

// Validate checks field constraints and that the precision and timezone
// names resolve.
func (c *CLIConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s (got %q)", fe.Translate(translator), fmt.Sprint(fe.Value())))
			}
			return domain.ErrInvalidConfig.WithDetails(strings.Join(msgs, "; "))
		}
		return domain.ErrInvalidConfig.WithCause(err)
	}

	if _, err := domain.FindPrecisionFold(c.Precision); err != nil {
		return domain.ErrInvalidConfig.WithDetails("precision").WithCause(err)
	}
	if _, err := domain.LoadLocation(c.Timezone); err != nil {
		return domain.ErrInvalidConfig.WithDetails("timezone").WithCause(err)
	}
	return nil
}

// DefaultPrecision resolves the configured precision.
func (c *CLIConfig) DefaultPrecision() (domain.Precision, error) {
	return domain.FindPrecisionFold(c.Precision)
}

// Location resolves the configured timezone.
func (c *CLIConfig) Location() (*time.Location, error) {
	return domain.LoadLocation(c.Timezone)
}
