package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	caterr "github.com/StricklySoft/errcatalog/pkg/errors"
)

// EnvPrefix prefixes every environment variable read by errcat.
const EnvPrefix = "ERRCAT"

// Output formats accepted by --output.
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

// LogConfig configures the diagnostic logger.
type LogConfig struct {
	Level  string `env:"LEVEL" envDefault:"warn" yaml:"level" json:"level"`
	Format string `env:"FORMAT" envDefault:"text" yaml:"format" json:"format"`
}

// Config is the errcat configuration, loaded from defaults, an optional
// file (--config), and ERRCAT_* environment variables. Command-line flags
// override all three.
type Config struct {
	Output string    `env:"OUTPUT" envDefault:"table" yaml:"output" json:"output"`
	Log    LogConfig `env:"LOG" yaml:"log" json:"log"`
}

// Validate implements config.Validator.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputTable, OutputJSON, OutputYAML:
	default:
		return caterr.Wrap(fmt.Errorf("output %q (want table, json, or yaml)", c.Output),
			caterr.CodeIllegalParameter).WithDetail("output", c.Output)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return caterr.Wrap(fmt.Errorf("log format %q (want text or json)", c.Log.Format),
			caterr.CodeIllegalParameter).WithDetail("log.format", c.Log.Format)
	}
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, caterr.Wrap(fmt.Errorf("log level %q: %w", s, err), caterr.CodeIllegalParameter).
			WithDetail("log.level", s)
	}
	return level, nil
}

// NewLogger builds the slog logger described by cfg, writing to w.
func NewLogger(cfg LogConfig, w io.Writer) (*slog.Logger, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}
