package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/subcmd/pkg/dispatch"
)

type AppConfig struct {
	Debug   bool `env:"SUBCMD_DEBUG" envDefault:"false"`
	NoColor bool `env:"NO_COLOR"`

	// Resolution policy
	ErrorMode       string `env:"SUBCMD_ERROR_MODE" envDefault:"return"`
	SuggestDistance int    `env:"SUBCMD_SUGGEST_DISTANCE" envDefault:"3"`
}

func NewAppConfig() (*AppConfig, error) {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		return nil, fmt.Errorf("failed to parse app config: %w", err)
	}
	if _, err := c.GetErrorMode(); err != nil {
		return nil, err
	}
	if c.SuggestDistance < 0 {
		return nil, fmt.Errorf("SUBCMD_SUGGEST_DISTANCE must not be negative, got %d", c.SuggestDistance)
	}
	return c, nil
}

func (c AppConfig) GetErrorMode() (dispatch.ErrorMode, error) {
	switch c.ErrorMode {
	case "", "return":
		return dispatch.ModeReturn, nil
	case "callback":
		return dispatch.ModeCallback, nil
	default:
		return 0, fmt.Errorf("unknown SUBCMD_ERROR_MODE %q (want return or callback)", c.ErrorMode)
	}
}

// DispatchOptions translates the resolution policy into registry options.
func (c AppConfig) DispatchOptions() []dispatch.Option {
	mode, _ := c.GetErrorMode()
	return []dispatch.Option{
		dispatch.WithErrorMode(mode),
		dispatch.WithSuggestDistance(c.SuggestDistance),
	}
}
