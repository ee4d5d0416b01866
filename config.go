package roggle

import (
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pkg/errors"
)

// EnvConfig maps ROGGLE_* environment variables onto the default
// pipeline's options.
type EnvConfig struct {
	Name            string `env:"ROGGLE_NAME"`
	Level           string `env:"ROGGLE_LEVEL" env-default:"info"`
	Colors          bool   `env:"ROGGLE_COLORS" env-default:"false"`
	Caller          bool   `env:"ROGGLE_CALLER" env-default:"true"`
	Emojis          bool   `env:"ROGGLE_EMOJIS" env-default:"true"`
	Labels          bool   `env:"ROGGLE_LABELS" env-default:"true"`
	Timestamp       bool   `env:"ROGGLE_TIMESTAMP" env-default:"false"`
	StackTraceLevel string `env:"ROGGLE_STACKTRACE_LEVEL" env-default:"off"`
	MaxStackFrames  int    `env:"ROGGLE_MAX_STACK_FRAMES" env-default:"-1"`
}

// ReadEnvConfig reads the ROGGLE_* environment.
func ReadEnvConfig() (EnvConfig, error) {
	var c EnvConfig
	if err := cleanenv.ReadEnv(&c); err != nil {
		return EnvConfig{}, errors.Wrap(err, "roggle: read env config")
	}
	return c, nil
}

// NewFromEnv builds a logger from the ROGGLE_* environment: a
// PrettyPrinter configured by the decoration variables, a console sink,
// and ROGGLE_LEVEL as the minimum severity.
func NewFromEnv() (*Logger, error) {
	c, err := ReadEnvConfig()
	if err != nil {
		return nil, err
	}
	printer := NewPrettyPrinter(
		WithName(c.Name),
		WithColors(c.Colors),
		WithCaller(c.Caller),
		WithEmojis(c.Emojis),
		WithLabels(c.Labels),
		WithTimestamp(c.Timestamp),
		WithStackTraceLevel(ParseLevel(c.StackTraceLevel)),
		WithMaxStackFrames(c.MaxStackFrames),
	)
	return NewBuilder().
		WithMinLevel(ParseLevel(c.Level)).
		WithPrinter(printer).
		Build()
}
