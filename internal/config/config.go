// Package config resolves boardchain settings from defaults, an optional
// YAML file and BOARDCHAIN_ environment variables. CLI flags are layered on
// top by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/aretw0/boardchain/pkg/domain"
	"github.com/aretw0/boardchain/pkg/schema"
	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "BOARDCHAIN_"

// Config holds everything needed to build and analyse a board.
type Config struct {
	Size         int    `yaml:"size" env:"SIZE" validate:"min=2,max=1000"`
	Dice         int    `yaml:"dice" env:"DICE" validate:"min=1,max=30"`
	Jail         int    `yaml:"jail" env:"JAIL" validate:"min=0,ltfield=Size,nefield=GoToJail"`
	GoToJail     int    `yaml:"goto_jail" env:"GOTO_JAIL" validate:"min=0,ltfield=Size"`
	ChanceSpaces []int  `yaml:"chance_spaces" env:"CHANCE_SPACES" envSeparator:"," validate:"max=1000,dive,min=0"`
	Power        int    `yaml:"power" env:"POWER" validate:"min=1,max=256"`
	LogLevel     string `yaml:"log_level" env:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	HTTPPort     int    `yaml:"http_port" env:"HTTP_PORT" validate:"min=1,max=65535"`
}

// DefaultPower is the matrix power used by the regularity check.
const DefaultPower = 6

// Default returns the standard Monopoly configuration.
func Default() Config {
	chance := domain.DefaultChanceSpaces()
	spaces := make([]int, len(chance))
	for i, s := range chance {
		spaces[i] = int(s)
	}
	return Config{
		Size:         domain.DefaultSize,
		Dice:         domain.DefaultDice,
		Jail:         int(domain.DefaultJail),
		GoToJail:     int(domain.DefaultGoToJail),
		ChanceSpaces: spaces,
		Power:        DefaultPower,
		LogLevel:     "info",
		HTTPPort:     8080,
	}
}

// Load resolves defaults, then the YAML file at path (skipped when empty),
// then the environment. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// Validate checks field constraints and then the board topology they
// describe. Every failure is reported, wrapped as domain.ErrConfig.
func (c Config) Validate() error {
	var errs []error

	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("validate config: %w", err)
		}
		for _, fe := range fieldErrs {
			errs = append(errs, &schema.ValidationError{
				Key:    fe.Field(),
				Reason: reason(fe),
				Value:  fe.Value(),
				Cause:  domain.ErrConfig,
			})
		}
		// Topology checks would only repeat the field failures.
		return schema.Join(errs...)
	}

	if _, err := c.Topology(); err != nil {
		errs = append(errs, &schema.ValidationError{
			Key:    "topology",
			Reason: err.Error(),
			Cause:  domain.ErrConfig,
		})
	}
	return schema.Join(errs...)
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "ltfield":
		return "must be less than " + fe.Param()
	case "nefield":
		return "must differ from " + fe.Param()
	case "oneof":
		return "must be one of " + fe.Param()
	default:
		return "failed " + fe.Tag()
	}
}

// Topology converts the board fields to a validated domain.Topology.
func (c Config) Topology() (domain.Topology, error) {
	chance := make([]domain.State, len(c.ChanceSpaces))
	for i, s := range c.ChanceSpaces {
		chance[i] = domain.State(s)
	}
	return domain.NewTopology(c.Size, c.Dice, domain.State(c.Jail), domain.State(c.GoToJail), chance)
}
