package config

import (
	"fmt"
	"log/slog"

	"github.com/spf13/viper"

	"github.com/imishinist/tplgen/internal/parser"
)

type Config struct {
	ParamsFile string
	Prompt     bool
	Verbose    bool
}

func New() *Config {
	return &Config{
		ParamsFile: viper.GetString("params_file"),
		Prompt:     viper.GetBool("prompt"),
		Verbose:    viper.GetBool("verbose"),
	}
}

func (c *Config) Validate() error {
	// Validate default parameters file
	if c.ParamsFile != "" && !parser.IsSupported(c.ParamsFile) {
		return fmt.Errorf("invalid params file: %s (supported: .json, .yaml, .yml, .toml)", c.ParamsFile)
	}

	return nil
}

// LogLevel is the minimum level written to the diagnostic log.
func (c *Config) LogLevel() slog.Level {
	if c.Verbose {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}
